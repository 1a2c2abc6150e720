package game

import "fmt"

// Input is a single physical input fed into the engine.
type Input int

const (
	KeyUp Input = iota
	KeyDown
	Enter
	Other
	EOF
)

func (i Input) String() string {
	switch i {
	case KeyUp:
		return "KeyUp"
	case KeyDown:
		return "KeyDown"
	case Enter:
		return "Enter"
	case Other:
		return "Other"
	case EOF:
		return "EOF"
	default:
		return "???"
	}
}

// Mode is the game mode selected at startup.
type Mode int

const (
	// ModeNormal starts with a random student, no parameter prompt.
	ModeNormal Mode = iota
	// ModeSelectInitialParameters prompts among the four play styles.
	ModeSelectInitialParameters
	// ModeGod adds the fifth, all-stats-30 option to the prompt.
	ModeGod
)

// ActionKind discriminates menu choices. The numeric values are part of
// the replay wire format and must stay stable.
type ActionKind uint8

const (
	ActionAnyKey ActionKind = iota

	// Scene router.
	ActionStudy
	ActionViewTimetable
	ActionRest
	ActionGoToBed
	ActionGoFromDormToPunk
	ActionGoToPDMI
	ActionGoToMausoleum
	ActionGoToProfessor
	ActionLookAtBaobab
	ActionGoFromPunkToDorm
	ActionGoToComputerClass
	ActionGoToCafePUNK
	ActionGoToWork
	ActionLookAtBulletinBoard
	ActionRestInCafePDMI
	ActionGoToPUNKFromPDMI
	ActionGoFromMausoleumToPunk
	ActionGoFromMausoleumToDorm
	ActionLeaveComputerClass
	ActionSurfInternet
	ActionPlayMmheroes
	ActionInteractWithClassmate // Arg: Classmate
	ActionTakeExam              // Arg: Subject
	ActionIAmDone
	ActionWhatToDo

	// Study submenu.
	ActionDoStudy // Arg: Subject
	ActionDontStudy
	ActionUseLectureNotes
	ActionDontUseLectureNotes

	// Cafes and the mausoleum.
	ActionOrderItem // Arg: menu item index
	ActionRestInCafe
	ActionLeaveCafe

	// Train.
	ActionGatecrashTrain
	ActionBuyRoundtripTrainTicket

	// Exams.
	ActionSufferMore
	ActionExitExam

	// TERKOM.
	ActionEarnAtTerkom
	ActionPlayMmheroesAtTerkom
	ActionSurfInternetAtTerkom
	ActionExitTerkom

	// Generic dialogue replies.
	ActionYes
	ActionNo

	// Help screens.
	ActionWhereToGoAndWhy
	ActionAboutProfessors
	ActionAboutCharacters
	ActionAboutThisProgram
	ActionThanksButNothing

	// Initial parameters and end game.
	ActionSelectPlayStyle // Arg: PlayStyle
	ActionTryAgain
	ActionQuitGame

	// Help submenu, continued. Appended late; see the stability note
	// above.
	ActionAboutTheScreen
)

// Action is one concrete menu choice, an action kind with an optional
// small payload (subject, classmate, play style or menu index).
type Action struct {
	Kind ActionKind
	Arg  uint8
}

// Act builds a payload-free action.
func Act(kind ActionKind) Action { return Action{Kind: kind} }

// StudyAction builds a "study this subject" choice.
func StudyAction(s Subject) Action {
	return Action{Kind: ActionDoStudy, Arg: uint8(s)}
}

// ExamAction builds a "take this exam" choice.
func ExamAction(s Subject) Action {
	return Action{Kind: ActionTakeExam, Arg: uint8(s)}
}

// InteractAction builds an "approach this classmate" choice.
func InteractAction(c Classmate) Action {
	return Action{Kind: ActionInteractWithClassmate, Arg: uint8(c)}
}

// OrderAction builds a cafe menu purchase.
func OrderAction(item int) Action {
	return Action{Kind: ActionOrderItem, Arg: uint8(item)}
}

// StyleAction builds a play-style selection.
func StyleAction(s PlayStyle) Action {
	return Action{Kind: ActionSelectPlayStyle, Arg: uint8(s)}
}

// Subject returns the subject payload of a study/exam action.
func (a Action) Subject() Subject { return Subject(a.Arg) }

// Classmate returns the classmate payload of an interaction action.
func (a Action) Classmate() Classmate { return Classmate(a.Arg) }

// PlayStyle returns the style payload of a selection action.
func (a Action) PlayStyle() PlayStyle { return PlayStyle(a.Arg) }

func (a Action) String() string {
	switch a.Kind {
	case ActionDoStudy:
		return fmt.Sprintf("Study %v", a.Subject())
	case ActionTakeExam:
		return fmt.Sprintf("Take the %v exam", a.Subject())
	case ActionInteractWithClassmate:
		return fmt.Sprintf("Approach %v", a.Classmate())
	case ActionOrderItem:
		return fmt.Sprintf("Order item %d", a.Arg)
	case ActionSelectPlayStyle:
		return fmt.Sprintf("Play as %v", a.PlayStyle())
	default:
		return fmt.Sprintf("Action(%d)", a.Kind)
	}
}

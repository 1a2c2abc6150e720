package game

// ScreenKind identifies every distinct user-visible panel.
type ScreenKind int

const (
	ScreenIntro ScreenKind = iota
	ScreenInitialParameters
	ScreenDing
	ScreenTimetable
	ScreenSceneRouter
	ScreenStudy
	ScreenPromptUseLectureNotes
	ScreenHighScores
	ScreenRestInMausoleum
	ScreenCafe
	ScreenMidnight
	ScreenTrainToPDMI
	ScreenTrainFromPDMI
	ScreenPashaInteraction
	ScreenDiamondInteraction
	ScreenRAIInteraction
	ScreenMishaInteraction
	ScreenSerjInteraction
	ScreenSashaInteraction
	ScreenNiLInteraction
	ScreenKolyaInteraction
	ScreenGrishaInteraction
	ScreenAndrewInteraction
	ScreenDJuGInteraction
	ScreenKuzmenkoInteraction
	ScreenTerkom
	ScreenGoToProfessor
	ScreenExamIntro
	ScreenExam
	ScreenBaltiyskiyRailwayStation
	ScreenDontWantToSleep
	ScreenCantStayAwake
	ScreenNeighborInvites
	ScreenDreaming
	ScreenSurfInternet
	ScreenPlayMmheroes
	ScreenComputerClassClosing
	ScreenIAmDone
	ScreenGameEnd
	ScreenWannaTryAgain
	ScreenDisclaimer
	ScreenWhatToDo
	ScreenAboutScreen
	ScreenWhereToGoAndWhy
	ScreenAboutProfessors
	ScreenAboutCharacters
	ScreenAboutThisProgram
	ScreenTerminal
)

// Screen is the tagged union of user-visible panels. Screens that carry
// state own a cloned snapshot; the UI layer reads it without holding a
// live reference into the engine.
type Screen interface {
	Kind() ScreenKind
}

// staticScreen implements the payload-free panels.
type staticScreen ScreenKind

func (s staticScreen) Kind() ScreenKind { return ScreenKind(s) }

// Payload-free screens.
var (
	Intro            Screen = staticScreen(ScreenIntro)
	Ding             Screen = staticScreen(ScreenDing)
	Midnight         Screen = staticScreen(ScreenMidnight)
	DontWantToSleep  Screen = staticScreen(ScreenDontWantToSleep)
	CantStayAwake    Screen = staticScreen(ScreenCantStayAwake)
	Disclaimer       Screen = staticScreen(ScreenDisclaimer)
	Terminal         Screen = staticScreen(ScreenTerminal)
	WhatToDo         Screen = staticScreen(ScreenWhatToDo)
	AboutScreen      Screen = staticScreen(ScreenAboutScreen)
	WhereToGoAndWhy  Screen = staticScreen(ScreenWhereToGoAndWhy)
	AboutProfessors  Screen = staticScreen(ScreenAboutProfessors)
	AboutCharacters  Screen = staticScreen(ScreenAboutCharacters)
	AboutThisProgram Screen = staticScreen(ScreenAboutThisProgram)
	WannaTryAgain    Screen = staticScreen(ScreenWannaTryAgain)
	SurfInternet     Screen = staticScreen(ScreenSurfInternet)
	PlayMmheroes     Screen = staticScreen(ScreenPlayMmheroes)
	NeighborInvites  Screen = staticScreen(ScreenNeighborInvites)
)

// InitialParametersScreen prompts for a play style.
type InitialParametersScreen struct {
	Mode Mode
}

func (InitialParametersScreen) Kind() ScreenKind { return ScreenInitialParameters }

// SceneRouterScreen is the location menu.
type SceneRouterScreen struct {
	State State
}

func (SceneRouterScreen) Kind() ScreenKind { return ScreenSceneRouter }

// TimetableScreen shows the week's schedule.
type TimetableScreen struct {
	State State
}

func (TimetableScreen) Kind() ScreenKind { return ScreenTimetable }

// StudyScreen is the subject-selection menu in the dorm.
type StudyScreen struct {
	State State
}

func (StudyScreen) Kind() ScreenKind { return ScreenStudy }

// PromptUseLectureNotesScreen asks whether to study with lecture notes.
type PromptUseLectureNotesScreen struct {
	SubjectToStudy Subject
}

func (PromptUseLectureNotesScreen) Kind() ScreenKind { return ScreenPromptUseLectureNotes }

// HighScoresScreen shows the hall of fame.
type HighScoresScreen struct {
	Scores []HighScore
}

func (HighScoresScreen) Kind() ScreenKind { return ScreenHighScores }

// CafeKind distinguishes the two cafes and the mausoleum buffet.
type CafeKind int

const (
	CafePUNK CafeKind = iota
	CafePDMI
	MausoleumBuffet
)

// CafeScreen is a cafe (or mausoleum) menu.
type CafeScreen struct {
	State State
	Cafe  CafeKind
}

func (c CafeScreen) Kind() ScreenKind {
	if c.Cafe == MausoleumBuffet {
		return ScreenRestInMausoleum
	}
	return ScreenCafe
}

// TrainScreenVariant covers the outcomes of boarding the train.
type TrainScreenVariant int

const (
	NoPointToGoToPDMI TrainScreenVariant = iota
	GatecrashBecauseNoMoney
	GatecrashByChoice
	BoughtRoundtripTicket
	PromptTicketOrGatecrash
	NightTrainHome
)

// TrainScreen is a train-ride panel, to or from PDMI.
type TrainScreen struct {
	State   State
	Variant TrainScreenVariant
	Caught  bool // inspectors caught the player
	ToPDMI  bool
}

func (t TrainScreen) Kind() ScreenKind {
	if t.ToPDMI {
		return ScreenTrainToPDMI
	}
	return ScreenTrainFromPDMI
}

// BaltiyskiyRailwayStationScreen is shown after inspectors throw the
// player off at the Baltic station.
type BaltiyskiyRailwayStationScreen struct {
	State State
}

func (BaltiyskiyRailwayStationScreen) Kind() ScreenKind { return ScreenBaltiyskiyRailwayStation }

// GoToProfessorScreen lists the exams available here and now.
type GoToProfessorScreen struct {
	State State
}

func (GoToProfessorScreen) Kind() ScreenKind { return ScreenGoToProfessor }

// ExamIntroScreen is the pre-exam animation.
type ExamIntroScreen struct {
	Subject        Subject
	Location       Location
	RunningLecture bool // PE professor lectures on the benefits of running
}

func (ExamIntroScreen) Kind() ScreenKind { return ScreenExamIntro }

// ExamPhase tells what the exam panel is currently showing.
type ExamPhase int

const (
	ExamSuffering ExamPhase = iota
	ExamClassmateApproaches
	ExamPassed
	ExamEnds
)

// ExamScreen is the in-exam panel.
type ExamScreen struct {
	State       State
	Subject     Subject
	Phase       ExamPhase
	Approaching Classmate      // valid in the approach phase
	Grade       ExamAssessment // valid when passed
}

func (ExamScreen) Kind() ScreenKind { return ScreenExam }

// TerkomScreenVariant covers the TERKOM work-loop panels.
type TerkomScreenVariant int

const (
	TerkomAgainNoFreeComputers TerkomScreenVariant = iota
	TerkomNoFreeComputers
	TerkomWorkLoop
	TerkomEarned
	TerkomEndOfWorkDay
)

// TerkomScreen is the paid-work panel. HiccupIndex paces the dialogue:
// 5 minus the rank of the current hour among 10, 14, 16 and 18.
type TerkomScreen struct {
	State       State
	Variant     TerkomScreenVariant
	Earned      Money
	HiccupIndex int
}

func (TerkomScreen) Kind() ScreenKind { return ScreenTerkom }

// DreamingScreen is a sleep dream. Themed dreams name a subject.
type DreamingScreen struct {
	Themed  bool
	Subject Subject
}

func (DreamingScreen) Kind() ScreenKind { return ScreenDreaming }

// ComputerClassClosingScreen is shown when the class closes under the
// player.
type ComputerClassClosingScreen struct {
	State State
}

func (ComputerClassClosingScreen) Kind() ScreenKind { return ScreenComputerClassClosing }

// IAmDoneScreen confirms giving up.
type IAmDoneScreen struct {
	State State
}

func (IAmDoneScreen) Kind() ScreenKind { return ScreenIAmDone }

// GameEndScreen is the final report.
type GameEndScreen struct {
	State State
}

func (GameEndScreen) Kind() ScreenKind { return ScreenGameEnd }

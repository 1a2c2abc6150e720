package game

// SashaInteraction is the variant of Sasha's dialogue.
type SashaInteraction int

const (
	// SashaPromptNotes: Sasha lists the lecture notes he can lend.
	SashaPromptNotes SashaInteraction = iota
	// SashaGivesNotes: the player gets the notes for the chosen subject.
	SashaGivesNotes
	// SashaRefuses: Sasha has already promised these notes to someone
	// else. They are gone for the rest of the game.
	SashaRefuses
	// SashaNothingToLend: no notes the player still needs.
	SashaNothingToLend
)

// SashaInteractionScreen is Sasha's dialogue panel.
type SashaInteractionScreen struct {
	State       State
	Interaction SashaInteraction
	Subject     Subject // valid for the give/refuse variants
}

func (SashaInteractionScreen) Kind() ScreenKind { return ScreenSashaInteraction }

// interactSasha: Sasha lends lecture notes for the first three subjects.
// A failed charisma roll means the notes go to someone else for good.
func (e *Engine) interactSasha() {
	player := &e.state.Player

	var actions []Action
	for s := Subject(0); s < NumSubjects; s++ {
		if s.LectureNotesSubject() &&
			e.state.SashaHasLectureNotes(s) &&
			!player.Status(s).HasLectureNotes() {
			actions = append(actions, StudyAction(s))
		}
	}
	if len(actions) == 0 {
		e.waitAnyKey(SashaInteractionScreen{
			State:       e.state,
			Interaction: SashaNothingToLend,
		})
		return
	}
	actions = append(actions, Act(ActionThanksButNothing))

	chosen := e.publish(SashaInteractionScreen{
		State:       e.state,
		Interaction: SashaPromptNotes,
	}, actions...)
	if chosen.Kind == ActionThanksButNothing {
		return
	}

	subject := chosen.Subject()
	if int(player.Charisma) > e.rng.Index(19) {
		player.Status(subject).SetHasLectureNotes()
		e.waitAnyKey(SashaInteractionScreen{
			State:       e.state,
			Interaction: SashaGivesNotes,
			Subject:     subject,
		})
		return
	}
	e.state.clearSashaLectureNotes(subject)
	e.waitAnyKey(SashaInteractionScreen{
		State:       e.state,
		Interaction: SashaRefuses,
		Subject:     subject,
	})
}

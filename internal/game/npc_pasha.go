package game

// PashaInteraction is the variant of Pasha's dialogue.
type PashaInteraction int

const (
	// PashaStipend: the headman hands out the stipend, once per game.
	PashaStipend PashaInteraction = iota
	// PashaInspiration: a pep talk that firms the body and muddles the
	// mind.
	PashaInspiration
)

// PashaInteractionScreen is Pasha's dialogue panel.
type PashaInteractionScreen struct {
	State       State
	Interaction PashaInteraction
}

func (PashaInteractionScreen) Kind() ScreenKind { return ScreenPashaInteraction }

// stipendAmount is what Pasha hands out on the first encounter.
const stipendAmount Money = 50

// interactPasha: the first meeting pays the stipend. Every later one is
// an inspirational speech: stamina grows by one, and knowledge above 3
// in each subject shrinks by a small roll.
func (e *Engine) interactPasha() {
	player := &e.state.Player
	if !player.Bits().GotStipend() {
		player.SetGotStipend()
		player.Money += stipendAmount
		e.waitAnyKey(PashaInteractionScreen{
			State:       e.state,
			Interaction: PashaStipend,
		})
		return
	}

	player.Stamina++
	for s := Subject(0); s < NumSubjects; s++ {
		status := player.Status(s)
		if status.Knowledge > 3 {
			status.Knowledge -= int16(e.rng.Index(4))
			if status.Knowledge < 0 {
				status.Knowledge = 0
			}
		}
	}
	e.waitAnyKey(PashaInteractionScreen{
		State:       e.state,
		Interaction: PashaInspiration,
	})
}

package game

// KolyaInteraction is the variant of Kolya's dialogue.
type KolyaInteraction int

const (
	// KolyaSolvedProblems: Kolya solves two algebra problems for free.
	KolyaSolvedProblems KolyaInteraction = iota
	// KolyaBrakeFluid: no money for a treat, so it's brake fluid. Brain
	// drops; at zero the player dies.
	KolyaBrakeFluid
	// KolyaPromptOatTincture: Kolya names his price, an oat tincture.
	KolyaPromptOatTincture
	// KolyaSolvedForTincture: the tincture is bought and two problems get
	// solved.
	KolyaSolvedForTincture
	// KolyaBrakeFluidNoDeath: the refusal (or a failed pitch) ends in
	// brake fluid anyway, but this branch never records a death. A
	// remake would add the check; this build reproduces the original.
	KolyaBrakeFluidNoDeath
)

// KolyaInteractionScreen is Kolya's dialogue panel.
type KolyaInteractionScreen struct {
	State       State
	Interaction KolyaInteraction
}

func (KolyaInteractionScreen) Kind() ScreenKind { return ScreenKolyaInteraction }

// oatTinctureCost is Kolya's fee for solving algebra problems.
const oatTinctureCost Money = 15

func (e *Engine) kolyaWillSolve() bool {
	remaining := Subjects[AlgebraAndNumberTheory].RequiredProblems -
		e.state.Player.Status(AlgebraAndNumberTheory).ProblemsDone()
	return int(e.state.Player.Charisma) > e.rng.Index(11) && remaining >= 2
}

// interactKolya: on a good roll Kolya solves two algebra problems for
// free. Without money the encounter degenerates into brake fluid.
// With money he offers to solve for an oat tincture.
func (e *Engine) interactKolya() {
	player := &e.state.Player

	if e.kolyaWillSolve() {
		player.Status(AlgebraAndNumberTheory).AddProblemsDone(2)
		e.waitAnyKey(KolyaInteractionScreen{
			State:       e.state,
			Interaction: KolyaSolvedProblems,
		})
		return
	}

	if player.Money < oatTinctureCost {
		player.Brain--
		if player.Brain <= 0 {
			player.Health = 0
			player.Die(DrankTooMuch)
			return
		}
		e.waitAnyKey(KolyaInteractionScreen{
			State:       e.state,
			Interaction: KolyaBrakeFluid,
		})
		return
	}

	chosen := e.publish(KolyaInteractionScreen{
		State:       e.state,
		Interaction: KolyaPromptOatTincture,
	}, Act(ActionYes), Act(ActionNo))

	if chosen.Kind == ActionYes && e.kolyaWillSolve() {
		player.Money -= oatTinctureCost
		player.Status(AlgebraAndNumberTheory).AddProblemsDone(2)
		e.waitAnyKey(KolyaInteractionScreen{
			State:       e.state,
			Interaction: KolyaSolvedForTincture,
		})
		return
	}

	// Refusal, or the deal fell through: brake fluid without the death
	// check, as the original had it.
	player.Brain--
	e.waitAnyKey(KolyaInteractionScreen{
		State:       e.state,
		Interaction: KolyaBrakeFluidNoDeath,
	})
}

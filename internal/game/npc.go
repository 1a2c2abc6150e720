package game

// interact routes an approach to the classmate's dialogue machine.
func (e *Engine) interact(c Classmate) {
	switch c {
	case Pasha:
		e.interactPasha()
	case Kolya:
		e.interactKolya()
	case Grisha:
		e.interactGrisha()
	case Sasha:
		e.interactSasha()
	case Kuzmenko:
		e.interactKuzmenko()
	case Diamond:
		e.interactDiamond()
	case RAI:
		e.interactRAI()
	case Misha:
		e.interactMisha()
	case Serj:
		e.interactSerj()
	case Andrew:
		e.interactAndrew()
	case NiL:
		e.interactNiL()
	case DJuG:
		e.interactDJuG()
	default:
		panic("game: unknown classmate")
	}
}

// --- Diamond ---------------------------------------------------------

// DiamondInteraction is the variant of Diamond's dialogue.
type DiamondInteraction int

const (
	// DiamondGivesFloppy: Diamond hands over the MMHEROES floppy.
	DiamondGivesFloppy DiamondInteraction = iota
	// DiamondReply: small talk about the game.
	DiamondReply
)

// DiamondInteractionScreen is Diamond's dialogue panel.
type DiamondInteractionScreen struct {
	State       State
	Interaction DiamondInteraction
	ReplyIndex  int
}

func (DiamondInteractionScreen) Kind() ScreenKind { return ScreenDiamondInteraction }

var diamondReplies = []string{
	"Diamond is debugging something unspeakable.",
	"\"MMHEROES is almost done, I swear.\"",
	"\"Don't touch that terminal, it bites.\"",
	"Diamond shows you a new level he drew.",
}

// interactDiamond: on a good roll, Diamond gives away the MMHEROES
// floppy; otherwise he is busy with the game itself.
func (e *Engine) interactDiamond() {
	player := &e.state.Player
	if !player.Bits().HasMmheroesFloppy() &&
		int(player.Charisma) > e.rng.Index(11) {
		player.SetFloppy()
		e.waitAnyKey(DiamondInteractionScreen{
			State:       e.state,
			Interaction: DiamondGivesFloppy,
		})
		return
	}
	e.waitAnyKey(DiamondInteractionScreen{
		State:       e.state,
		Interaction: DiamondReply,
		ReplyIndex:  e.rng.Index(len(diamondReplies)),
	})
}

// --- RAI -------------------------------------------------------------

// RAIInteraction is the variant of RAI's dialogue.
type RAIInteraction int

const (
	// RAISolvesProblem: RAI grudgingly solves an algebra problem.
	RAISolvesProblem RAIInteraction = iota
	// RAIDrones: RAI drones on; it costs health to listen.
	RAIDrones
)

// RAIInteractionScreen is RAI's dialogue panel.
type RAIInteractionScreen struct {
	State       State
	Interaction RAIInteraction
}

func (RAIInteractionScreen) Kind() ScreenKind { return ScreenRAIInteraction }

// interactRAI: listening to RAI always costs a little health; a strong
// charisma roll gets an algebra problem solved.
func (e *Engine) interactRAI() {
	player := &e.state.Player
	player.SpendHealth(HealthLevel(e.rng.Index(3)), TorturedByProfessor)
	if player.IsDead() {
		return
	}
	status := player.Status(AlgebraAndNumberTheory)
	if int(player.Charisma) > e.rng.Index(16) &&
		status.ProblemsDone() < Subjects[AlgebraAndNumberTheory].RequiredProblems {
		status.AddProblemsDone(1)
		e.waitAnyKey(RAIInteractionScreen{State: e.state, Interaction: RAISolvesProblem})
		return
	}
	e.waitAnyKey(RAIInteractionScreen{State: e.state, Interaction: RAIDrones})
}

// --- Misha -----------------------------------------------------------

// MishaInteraction is the variant of Misha's dialogue.
type MishaInteraction int

const (
	// MishaGoodCompany: pleasant company, charisma grows.
	MishaGoodCompany MishaInteraction = iota
	// MishaTiresome: the conversation drags, health drops.
	MishaTiresome
)

// MishaInteractionScreen is Misha's dialogue panel.
type MishaInteractionScreen struct {
	State       State
	Interaction MishaInteraction
	ReplyIndex  int
}

func (MishaInteractionScreen) Kind() ScreenKind { return ScreenMishaInteraction }

var mishaReplies = []string{
	"Misha tells a long story about the sports camp.",
	"Misha shows off a new chess opening.",
	"\"Have you tried actually attending lectures?\"",
}

func (e *Engine) interactMisha() {
	player := &e.state.Player
	reply := e.rng.Index(len(mishaReplies))
	if int(player.Charisma) > e.rng.Index(11) {
		player.Charisma++
		e.waitAnyKey(MishaInteractionScreen{
			State:       e.state,
			Interaction: MishaGoodCompany,
			ReplyIndex:  reply,
		})
		return
	}
	player.SpendHealth(1, TorturedByProfessor)
	if player.IsDead() {
		return
	}
	e.waitAnyKey(MishaInteractionScreen{
		State:       e.state,
		Interaction: MishaTiresome,
		ReplyIndex:  reply,
	})
}

// --- Serj ------------------------------------------------------------

// SerjInteraction is the variant of Serj's dialogue.
type SerjInteraction int

const (
	// SerjSharesGarlic: Serj hands over a head of garlic.
	SerjSharesGarlic SerjInteraction = iota
	// SerjReply: mausoleum small talk.
	SerjReply
)

// SerjInteractionScreen is Serj's dialogue panel.
type SerjInteractionScreen struct {
	State       State
	Interaction SerjInteraction
	ReplyIndex  int
}

func (SerjInteractionScreen) Kind() ScreenKind { return ScreenSerjInteraction }

var serjReplies = []string{
	"\"The beer here is warm again.\"",
	"Serj hums something from a concert.",
	"\"Calculus? I'll pass it in September.\"",
	"Serj recounts last night's adventures.",
	"\"Want to hear a joke about limits?\"",
}

// interactSerj: one time in three Serj shares garlic, which keeps the
// classmates at bay during exams.
func (e *Engine) interactSerj() {
	if e.rng.RollDice(3) {
		e.state.Player.Garlic++
		e.waitAnyKey(SerjInteractionScreen{
			State:       e.state,
			Interaction: SerjSharesGarlic,
		})
		return
	}
	e.waitAnyKey(SerjInteractionScreen{
		State:       e.state,
		Interaction: SerjReply,
		ReplyIndex:  e.rng.Index(len(serjReplies)),
	})
}

// --- Andrew ----------------------------------------------------------

// AndrewInteraction is the variant of Andrew's dialogue.
type AndrewInteraction int

const (
	// AndrewExplains: Andrew explains a calculus trick.
	AndrewExplains AndrewInteraction = iota
	// AndrewPredicts: Andrew predicts the professor's mood. He always
	// talks about the algebra professor, even at the calculus exam.
	AndrewPredicts
)

// AndrewInteractionScreen is Andrew's dialogue panel.
type AndrewInteractionScreen struct {
	State       State
	Interaction AndrewInteraction
	// PredictedSubject is always algebra. Kept for the UI.
	PredictedSubject Subject
}

func (AndrewInteractionScreen) Kind() ScreenKind { return ScreenAndrewInteraction }

func (e *Engine) interactAndrew() {
	player := &e.state.Player
	if int(player.Charisma) > e.rng.Index(11) {
		player.Status(Calculus).Knowledge += int16(e.rng.Index(3))
		e.waitAnyKey(AndrewInteractionScreen{
			State:       e.state,
			Interaction: AndrewExplains,
		})
		return
	}
	e.waitAnyKey(AndrewInteractionScreen{
		State:            e.state,
		Interaction:      AndrewPredicts,
		PredictedSubject: AlgebraAndNumberTheory,
	})
}

// --- NiL -------------------------------------------------------------

// NiLInteraction is the variant of NiL's dialogue.
type NiLInteraction int

const (
	// NiLDrains: the encounter drains health and charisma.
	NiLDrains NiLInteraction = iota
	// NiLMumbles: nothing happens.
	NiLMumbles
)

// NiLInteractionScreen is NiL's dialogue panel.
type NiLInteractionScreen struct {
	State       State
	Interaction NiLInteraction
}

func (NiLInteractionScreen) Kind() ScreenKind { return ScreenNiLInteraction }

// interactNiL drains stats without ever killing: the levels floor at
// zero and no cause of death is recorded. Dying here would be fixed in
// a remake; this build keeps the behavior as shipped.
func (e *Engine) interactNiL() {
	player := &e.state.Player
	if e.rng.RollDice(2) {
		player.Health -= HealthLevel(e.rng.Index(4))
		if player.Health < 0 {
			player.Health = 0
		}
		player.Charisma -= CharismaLevel(e.rng.Index(2))
		if player.Charisma < 0 {
			player.Charisma = 0
		}
		e.waitAnyKey(NiLInteractionScreen{State: e.state, Interaction: NiLDrains})
		return
	}
	e.waitAnyKey(NiLInteractionScreen{State: e.state, Interaction: NiLMumbles})
}

// --- DJuG ------------------------------------------------------------

// DJuGInteraction is the variant of DJuG's dialogue.
type DJuGInteraction int

const (
	// DJuGLectures: an impromptu topology lecture.
	DJuGLectures DJuGInteraction = iota
	// DJuGIntimidates: the encounter merely takes its toll.
	DJuGIntimidates
)

// DJuGInteractionScreen is DJuG's dialogue panel.
type DJuGInteractionScreen struct {
	State       State
	Interaction DJuGInteraction
}

func (DJuGInteractionScreen) Kind() ScreenKind { return ScreenDJuGInteraction }

func (e *Engine) interactDJuG() {
	player := &e.state.Player
	player.SetKnowsDJuG()
	player.SpendHealth(3, DjugIsDeadly)
	if player.IsDead() {
		return
	}
	if int(player.Charisma) > e.rng.Index(13) {
		player.Status(GeometryAndTopology).Knowledge += int16(e.rng.Index(3))
		e.waitAnyKey(DJuGInteractionScreen{State: e.state, Interaction: DJuGLectures})
		return
	}
	e.waitAnyKey(DJuGInteractionScreen{State: e.state, Interaction: DJuGIntimidates})
}

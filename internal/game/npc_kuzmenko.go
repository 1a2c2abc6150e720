package game

// KuzmenkoInteraction is the variant of Kuzmenko's dialogue.
type KuzmenkoInteraction int

const (
	// KuzmenkoSchedulesExam: an extra computer science sitting appears on
	// a future day.
	KuzmenkoSchedulesExam KuzmenkoInteraction = iota
	// KuzmenkoReply: small talk about computers.
	KuzmenkoReply
)

// KuzmenkoInteractionScreen is Kuzmenko's dialogue panel.
type KuzmenkoInteractionScreen struct {
	State       State
	Interaction KuzmenkoInteraction
	Day         int // day of the new sitting
	ReplyIndex  int
}

func (KuzmenkoInteractionScreen) Kind() ScreenKind { return ScreenKuzmenkoInteraction }

var kuzmenkoReplies = []string{
	"\"The turbo button on that 286 does nothing, you know.\"",
	"Kuzmenko praises the new Pentium lab that never arrives.",
	"\"Backups? Real students don't make backups.\"",
	"Kuzmenko complains about students formatting the wrong disk.",
	"\"In my day we booted from tape.\"",
}

// kuzmenkoOffersExam: a convincing student can talk Kuzmenko into an
// extra sitting. The intended cap is two extra sittings, but the counter
// is compared before it is incremented, so a third one can slip in; the
// original shipped that way and so does this build.
func (e *Engine) kuzmenkoOffersExam() bool {
	return e.state.AdditionalCSExams() < 3 &&
		int(e.state.Player.Charisma) > e.rng.Index(16)
}

// interactKuzmenko: the computer science professor sometimes arranges an
// extra sitting on a future day.
func (e *Engine) interactKuzmenko() {
	if e.kuzmenkoOffersExam() {
		if day, ok := e.kuzmenkoPickDay(); ok {
			from := Time(e.rng.InRangeInclusive(10, 16))
			duration := Duration(e.rng.InRangeInclusive(1, 2))
			exam := NewExam(ComputerScience, from, from.Add(duration), ComputerClass)
			if e.state.Timetable().AddExam(day, exam) {
				e.state.addAdditionalCSExam()
				e.waitAnyKey(KuzmenkoInteractionScreen{
					State:       e.state,
					Interaction: KuzmenkoSchedulesExam,
					Day:         day,
				})
				return
			}
		}
	}
	e.waitAnyKey(KuzmenkoInteractionScreen{
		State:       e.state,
		Interaction: KuzmenkoReply,
		ReplyIndex:  e.rng.Index(len(kuzmenkoReplies)),
	})
}

// kuzmenkoPickDay finds a future day with no computer science exam yet.
func (e *Engine) kuzmenkoPickDay() (int, bool) {
	var free []int
	for day := e.state.currentDay + 1; day < NumDays; day++ {
		if !e.state.Timetable().Day(day).HasExam(ComputerScience) {
			free = append(free, day)
		}
	}
	if len(free) == 0 {
		return 0, false
	}
	return free[e.rng.Index(len(free))], true
}

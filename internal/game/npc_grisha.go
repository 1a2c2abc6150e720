package game

// GrishaInteraction is the variant of Grisha's dialogue.
type GrishaInteraction int

const (
	// GrishaOfferEmployment: Grisha offers a job at TERKOM.
	GrishaOfferEmployment GrishaInteraction = iota
	// GrishaEmployed: the offer is accepted.
	GrishaEmployed
	// GrishaProxyAddress: Grisha shares the proxy address; the player
	// gains internet access.
	GrishaProxyAddress
	// GrishaReply: one of the canned philosophical replies.
	GrishaReply
)

// GrishaInteractionScreen is Grisha's dialogue panel.
type GrishaInteractionScreen struct {
	State       State
	Interaction GrishaInteraction
	ReplyIndex  int
}

func (GrishaInteractionScreen) Kind() ScreenKind { return ScreenGrishaInteraction }

// grishaReply tags a canned line with its side effects.
type grishaReply struct {
	text      string
	drinkBeer bool
	hourPass  bool
}

var grishaReplies = [15]grishaReply{
	{text: "\"A diploma is just a piece of paper.\"", drinkBeer: true, hourPass: true},
	{text: "\"Working is far more fun than studying.\"", drinkBeer: true},
	{text: "\"You won't need any of this after graduation.\"", drinkBeer: true},
	{text: "Grisha raises a toast to academic freedom.", drinkBeer: true, hourPass: true},
	{text: "\"I haven't opened a textbook in two years.\"", drinkBeer: true},
	{text: "\"Exams are a conspiracy of the deans' office.\"", drinkBeer: true, hourPass: true},
	{text: "Grisha explains why lectures are optional.", hourPass: true},
	{text: "\"Sleep at lectures, work at night.\"", drinkBeer: true},
	{text: "Grisha praises the mausoleum's beer at length.", drinkBeer: true, hourPass: true},
	{text: "\"Real education happens at TERKOM.\"", hourPass: true},
	{text: "\"Take it easy. Everything is pass-able.\"", drinkBeer: true},
	{text: "Grisha retells an office legend.", hourPass: true},
	{text: "\"They can't expel all of us.\"", drinkBeer: true, hourPass: true},
	{text: "\"Health first, grades last.\"", drinkBeer: true},
	{text: "Grisha stares into his glass philosophically.", hourPass: true},
}

// interactGrisha: Grisha may offer a TERKOM job, share the proxy
// address, or just talk over a beer.
func (e *Engine) interactGrisha() {
	player := &e.state.Player

	if !player.Bits().IsEmployedAtTerkom() &&
		int(player.Charisma) > e.rng.Index(21) {
		chosen := e.publish(GrishaInteractionScreen{
			State:       e.state,
			Interaction: GrishaOfferEmployment,
		}, Act(ActionYes), Act(ActionNo))
		if chosen.Kind == ActionYes {
			player.SetEmployedAtTerkom()
			e.waitAnyKey(GrishaInteractionScreen{
				State:       e.state,
				Interaction: GrishaEmployed,
			})
		}
		return
	}

	if !player.Bits().HasInternet() &&
		int(player.Charisma) > e.rng.Index(21) {
		player.SetInternet()
		e.waitAnyKey(GrishaInteractionScreen{
			State:       e.state,
			Interaction: GrishaProxyAddress,
		})
		return
	}

	idx := e.rng.Index(len(grishaReplies))
	reply := &grishaReplies[idx]
	if reply.drinkBeer {
		player.Brain -= BrainLevel(e.rng.Index(3))
		if player.Brain <= 0 {
			player.Health = 0
			player.Die(DrankTooMuchBeer)
			return
		}
		player.Charisma += CharismaLevel(e.rng.Index(3))
	}
	e.waitAnyKey(GrishaInteractionScreen{
		State:       e.state,
		Interaction: GrishaReply,
		ReplyIndex:  idx,
	})
	if reply.hourPass {
		e.hourPass()
	}
}

package game

// CafeItem is one purchasable menu entry.
type CafeItem struct {
	Name       string
	Cost       Money
	HealthGain HealthLevel
	// Beer rolls extra side effects instead of a plain health gain.
	IsBeer bool
}

// CafeMenu returns the static menu of a cafe.
func CafeMenu(kind CafeKind) []CafeItem {
	switch kind {
	case CafePUNK, CafePDMI:
		return []CafeItem{
			{Name: "a cup of tea", Cost: 2, HealthGain: 2},
			{Name: "a cake", Cost: 4, HealthGain: 4},
			{Name: "tea and a cake", Cost: 6, HealthGain: 7},
		}
	case MausoleumBuffet:
		return []CafeItem{
			{Name: "a glass of cola", Cost: 4, HealthGain: 3},
			{Name: "soup", Cost: 6, HealthGain: 5},
			{Name: "a beer", Cost: 8, IsBeer: true},
		}
	default:
		panic("game: unknown cafe")
	}
}

// cafe runs a cafe visit: order what you can afford, rest in place, or
// leave. Every order and every rest consumes an hour.
func (e *Engine) cafe(kind CafeKind) {
	menu := CafeMenu(kind)
	for !e.state.Player.IsDead() {
		var actions []Action
		for i, item := range menu {
			if e.state.Player.Money >= item.Cost {
				actions = append(actions, OrderAction(i))
			}
		}
		actions = append(actions, Act(ActionRestInCafe), Act(ActionLeaveCafe))

		chosen := e.publish(CafeScreen{State: e.state, Cafe: kind}, actions...)
		switch chosen.Kind {
		case ActionOrderItem:
			item := menu[chosen.Arg]
			e.state.Player.Money -= item.Cost
			e.cafeRestGain()
			if item.IsBeer {
				e.drinkBeer()
			} else {
				e.state.Player.Health += item.HealthGain
			}
			e.hourPass()
		case ActionRestInCafe:
			e.cafeRestGain()
			e.hourPass()
		case ActionLeaveCafe:
			return
		}
		if kind == CafePUNK && !e.state.currentTime.IsCafeOpen() {
			return
		}
	}
}

// cafeRestGain is the base recovery of sitting in a cafe.
func (e *Engine) cafeRestGain() {
	if e.state.Player.Charisma > 0 {
		e.state.Player.Health += HealthLevel(e.rng.Index(int(e.state.Player.Charisma) + 1))
	}
}

// drinkBeer rolls the three independent one-in-three beer effects.
func (e *Engine) drinkBeer() {
	player := &e.state.Player
	if e.rng.RollDice(3) {
		player.Brain--
	}
	if e.rng.RollDice(3) {
		player.Charisma++
	}
	if e.rng.RollDice(3) {
		player.Stamina += 2
	}
	if player.Brain <= 0 {
		player.Health = 0
		player.Die(BeerAlcoholism)
	}
}

// mausoleumRest is the mausoleum buffet.
func (e *Engine) mausoleumRest() {
	e.cafe(MausoleumBuffet)
}

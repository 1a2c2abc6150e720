package game

// terkomHiccupHours pace the work-day dialogue.
var terkomHiccupHours = [4]Time{10, 14, 16, 18}

// terkomHiccupIndex is 5 minus the rank of the current hour among the
// hiccup hours.
func terkomHiccupIndex(now Time) int {
	rank := 0
	for _, h := range terkomHiccupHours {
		if now >= h {
			rank++
		}
	}
	return 5 - rank
}

// terkom runs the paid-work loop at the computing bureau.
func (e *Engine) terkom() {
	if !e.state.terkomHasPlaces {
		e.waitAnyKey(TerkomScreen{
			State:       e.state,
			Variant:     TerkomAgainNoFreeComputers,
			HiccupIndex: terkomHiccupIndex(e.state.currentTime),
		})
		return
	}
	if !e.rng.RollDice(3) {
		e.state.terkomHasPlaces = false
		e.waitAnyKey(TerkomScreen{
			State:       e.state,
			Variant:     TerkomNoFreeComputers,
			HiccupIndex: terkomHiccupIndex(e.state.currentTime),
		})
		return
	}

	for !e.state.Player.IsDead() {
		actions := []Action{Act(ActionEarnAtTerkom)}
		if e.state.Player.Bits().HasMmheroesFloppy() {
			actions = append(actions, Act(ActionPlayMmheroesAtTerkom))
		}
		if e.state.Player.Bits().HasInternet() {
			actions = append(actions, Act(ActionSurfInternetAtTerkom))
		}
		actions = append(actions, Act(ActionExitTerkom))

		chosen := e.publish(TerkomScreen{
			State:       e.state,
			Variant:     TerkomWorkLoop,
			HiccupIndex: terkomHiccupIndex(e.state.currentTime),
		}, actions...)

		switch chosen.Kind {
		case ActionEarnAtTerkom:
			income := e.terkomIncome()
			e.state.Player.Money += income
			e.state.Player.SpendHealth(HealthLevel(2*income), Burnout)
			if e.state.Player.IsDead() {
				return
			}
			e.waitAnyKey(TerkomScreen{
				State:       e.state,
				Variant:     TerkomEarned,
				Earned:      income,
				HiccupIndex: terkomHiccupIndex(e.state.currentTime),
			})
			e.hourPass()
		case ActionPlayMmheroesAtTerkom:
			e.state.Player.SetInception()
			e.waitAnyKey(PlayMmheroes)
			e.hourPass()
		case ActionSurfInternetAtTerkom:
			e.waitAnyKey(SurfInternet)
			e.hourPass()
		case ActionExitTerkom:
			return
		}

		if e.state.currentTime >= TerkomClosesAt {
			e.waitAnyKey(TerkomScreen{
				State:       e.state,
				Variant:     TerkomEndOfWorkDay,
				HiccupIndex: terkomHiccupIndex(e.state.currentTime),
			})
			return
		}
	}
}

// terkomIncome rolls one hour's pay.
func (e *Engine) terkomIncome() Money {
	base := int(e.state.Player.Brain) + int(e.state.Player.Charisma)
	if base < 0 {
		base = 0
	}
	income := e.rng.Index(base + 1)
	income = e.rng.Index(income + 1)
	income++
	for income > 4 {
		income = e.rng.InRangeInclusive(2, income-1)
	}
	return Money(income)
}

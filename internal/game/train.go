package game

// roundtripTicketCost is the price of a train ticket to PDMI and back.
const roundtripTicketCost Money = 10

// goToPDMI is the train ride from anywhere except PDMI.
func (e *Engine) goToPDMI() {
	if e.state.currentTime > 20 {
		e.waitAnyKey(TrainScreen{State: e.state, Variant: NoPointToGoToPDMI, ToPDMI: true})
		return
	}

	e.state.Player.SpendHealth(HealthLevel(e.rng.Index(11)), CorpseFoundInTheTrain)
	if e.state.Player.IsDead() {
		return
	}
	e.state.location = PDMI

	caught := false
	if e.state.Player.Money < roundtripTicketCost {
		caught = e.inspectorsCatch()
		if caught {
			e.state.Player.SpendHealth(10, KilledByInspectors)
		}
		e.waitAnyKey(TrainScreen{
			State:   e.state,
			Variant: GatecrashBecauseNoMoney,
			Caught:  caught,
			ToPDMI:  true,
		})
	} else {
		chosen := e.publish(
			TrainScreen{State: e.state, Variant: PromptTicketOrGatecrash, ToPDMI: true},
			Act(ActionGatecrashTrain), Act(ActionBuyRoundtripTrainTicket),
		)
		if chosen.Kind == ActionGatecrashTrain {
			caught = e.inspectorsCatch()
			if caught {
				e.hourPass()
			}
			e.waitAnyKey(TrainScreen{
				State:   e.state,
				Variant: GatecrashByChoice,
				Caught:  caught,
				ToPDMI:  true,
			})
		} else {
			e.state.Player.Money -= roundtripTicketCost
			e.state.Player.SetRoundtripTrainTicket()
			e.waitAnyKey(TrainScreen{
				State:   e.state,
				Variant: BoughtRoundtripTicket,
				ToPDMI:  true,
			})
		}
	}

	if e.state.Player.IsDead() {
		return
	}
	e.hourPass()
	if caught {
		e.hourPass()
	}
}

// trainFromPDMI rides back to PUNK. A held roundtrip ticket covers the
// fare; otherwise the gatecrash rules apply again.
func (e *Engine) trainFromPDMI() {
	if e.state.Player.Bits().HasRoundtripTrainTicket() {
		e.state.location = PUNK
		e.hourPass()
		return
	}

	caught := e.inspectorsCatch()
	if caught {
		e.state.Player.SpendHealth(10, KilledByInspectors)
		if e.state.Player.IsDead() {
			return
		}
		e.waitAnyKey(TrainScreen{
			State:   e.state,
			Variant: GatecrashBecauseNoMoney,
			Caught:  true,
			ToPDMI:  false,
		})
		e.baltiyskiyStation()
		return
	}

	e.waitAnyKey(TrainScreen{
		State:   e.state,
		Variant: GatecrashByChoice,
		Caught:  false,
		ToPDMI:  false,
	})
	e.state.location = PUNK
	e.hourPass()
}

// inspectorsCatch rolls the inspector check: the player is caught when
// charisma fails the roll.
func (e *Engine) inspectorsCatch() bool {
	return int(e.state.Player.Charisma) < e.rng.Index(11)
}

// baltiyskiyStation is where inspectors dump gatecrashers. The player
// picks where to go next.
func (e *Engine) baltiyskiyStation() {
	chosen := e.publish(
		BaltiyskiyRailwayStationScreen{State: e.state},
		Act(ActionGoToPUNKFromPDMI), Act(ActionGoToPDMI),
	)
	if chosen.Kind == ActionGoToPUNKFromPDMI {
		e.state.location = PUNK
	} else {
		e.state.location = PDMI
	}
	e.hourPass()
	e.hourPass()
}

// trainAlgebraExam governs leaving the PDMI algebra exam mid-session:
// the ride home runs while the exam clock keeps ticking.
func (e *Engine) trainAlgebraExam() {
	if e.state.Player.Bits().HasRoundtripTrainTicket() {
		e.state.location = PUNK
		e.hourPass()
		return
	}
	caught := e.inspectorsCatch()
	if caught {
		e.state.Player.SpendHealth(10, KilledByInspectors)
		if e.state.Player.IsDead() {
			return
		}
	}
	e.waitAnyKey(TrainScreen{
		State:   e.state,
		Variant: GatecrashByChoice,
		Caught:  caught,
		ToPDMI:  false,
	})
	e.state.location = PUNK
	e.hourPass()
	if caught {
		e.hourPass()
	}
}

package game

// trySleep handles the GoToBed action. The student refuses to sleep in
// the middle of the day.
func (e *Engine) trySleep() {
	if e.state.currentTime > 3 && e.state.currentTime < 20 {
		e.waitAnyKey(DontWantToSleep)
		return
	}
	e.sleep()
}

// sleep runs the night: health recovery, the day rollover, dreams and
// waking up. Only ever invoked in the dormitory.
func (e *Engine) sleep() {
	if e.state.location != Dorm {
		panic("game: sleeping outside the dormitory")
	}
	if e.state.currentDay >= NumDays {
		e.state.Player.Die(TimeOut)
		return
	}

	player := &e.state.Player
	if player.Health > 40 {
		player.Health = 40
	}
	gain := HealthLevel(e.rng.InRange(15, 35))
	player.Health += gain
	if player.Health > 50 {
		player.Health = 50
	}

	asleep := Duration(7 + e.rng.Index(int(gain)/4+1))
	woken := e.state.currentTime.Add(asleep)
	if woken >= 24 {
		woken -= 24
		e.state.currentDay++
		if e.state.currentDay >= NumDays {
			e.state.Player.Die(TimeOut)
			return
		}
	}
	e.state.currentTime = woken

	e.dreams()

	if e.state.currentTime < 5 {
		e.state.currentTime = 5
	}
	if player.Garlic > 0 {
		player.Garlic--
		player.Charisma += CharismaLevel(e.rng.Index(3))
	}
	e.state.refreshClassmateLocations()
}

// dreams optionally shows a themed dream. The last exam haunts the
// student; otherwise a random subject may slip into the night.
func (e *Engine) dreams() {
	if last, ok := e.state.Player.Bits().LastExam(); ok {
		if e.rng.RollDice(3) {
			e.waitAnyKey(DreamingScreen{Themed: true, Subject: last})
		}
		return
	}
	if e.rng.RollDice(4) {
		e.waitAnyKey(DreamingScreen{Themed: false})
	}
}

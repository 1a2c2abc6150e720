package game

// Travel health penalties. Hops within the campus cost 3; the walk
// between the dormitory and the mausoleum crosses the whole campus and
// costs 10. PDMI is only reachable by train, which charges its own way.
const (
	smallTravelPenalty HealthLevel = 3
	largeTravelPenalty HealthLevel = 10
)

// sceneRouter publishes the menu for the current location and dispatches
// the chosen action. One call handles exactly one player decision.
func (e *Engine) sceneRouter() {
	var actions []Action
	switch e.state.location {
	case Dorm:
		actions = e.dormActions()
	case PUNK:
		actions = e.punkActions()
	case PDMI:
		actions = e.pdmiActions()
	case Mausoleum:
		actions = e.mausoleumActions()
	case ComputerClass:
		actions = e.computerClassActions()
	}

	chosen := e.publish(SceneRouterScreen{State: e.state}, actions...)
	e.dispatch(chosen)
}

func (e *Engine) dormActions() []Action {
	return []Action{
		Act(ActionStudy),
		Act(ActionViewTimetable),
		Act(ActionRest),
		Act(ActionGoToBed),
		Act(ActionGoFromDormToPunk),
		Act(ActionGoToPDMI),
		Act(ActionGoToMausoleum),
		Act(ActionIAmDone),
		Act(ActionWhatToDo),
	}
}

func (e *Engine) punkActions() []Action {
	actions := []Action{
		Act(ActionGoToProfessor),
		Act(ActionLookAtBaobab),
		Act(ActionGoFromPunkToDorm),
		Act(ActionGoToPDMI),
		Act(ActionGoToMausoleum),
	}
	if e.state.currentTime < ComputerClassClosesAt {
		actions = append(actions, Act(ActionGoToComputerClass))
	}
	if e.state.currentTime.IsCafeOpen() {
		actions = append(actions, Act(ActionGoToCafePUNK))
	}
	for _, c := range e.state.ClassmatesAt(PUNK) {
		actions = append(actions, InteractAction(c))
	}
	if e.state.Player.Bits().IsEmployedAtTerkom() {
		actions = append(actions, Act(ActionGoToWork))
	}
	return append(actions, Act(ActionIAmDone))
}

func (e *Engine) pdmiActions() []Action {
	actions := []Action{
		Act(ActionGoToProfessor),
		Act(ActionLookAtBulletinBoard),
		Act(ActionRestInCafePDMI),
		Act(ActionGoToPUNKFromPDMI),
	}
	for _, c := range e.state.ClassmatesAt(PDMI) {
		actions = append(actions, InteractAction(c))
	}
	return append(actions, Act(ActionIAmDone))
}

func (e *Engine) mausoleumActions() []Action {
	actions := []Action{
		Act(ActionGoFromMausoleumToPunk),
		Act(ActionGoToPDMI),
		Act(ActionGoFromMausoleumToDorm),
		Act(ActionRest),
	}
	for _, c := range e.state.ClassmatesAt(Mausoleum) {
		actions = append(actions, InteractAction(c))
	}
	return append(actions, Act(ActionIAmDone))
}

func (e *Engine) computerClassActions() []Action {
	var actions []Action
	if exam := e.examHereNow(ComputerScience); exam != NoExam {
		actions = append(actions, ExamAction(ComputerScience))
	}
	actions = append(actions,
		Act(ActionGoFromPunkToDorm),
		Act(ActionLeaveComputerClass),
		Act(ActionGoToPDMI),
		Act(ActionGoToMausoleum),
	)
	if e.state.Player.Bits().HasInternet() {
		actions = append(actions, Act(ActionSurfInternet))
	}
	if e.state.Player.Bits().HasMmheroesFloppy() {
		actions = append(actions, Act(ActionPlayMmheroes))
	}
	for _, c := range e.state.ClassmatesAt(ComputerClass) {
		actions = append(actions, InteractAction(c))
	}
	return append(actions, Act(ActionIAmDone))
}

// examHereNow returns a subject's exam if it runs at the player's
// location right now.
func (e *Engine) examHereNow(s Subject) Exam {
	if e.state.currentDay >= NumDays {
		return NoExam
	}
	exam := e.state.CurrentDay().Exam(s)
	if exam == NoExam || exam.Location() != e.state.location {
		return NoExam
	}
	if e.state.currentTime < exam.From() || e.state.currentTime >= exam.To() {
		return NoExam
	}
	return exam
}

// dispatch routes one chosen action to its handler.
func (e *Engine) dispatch(a Action) {
	switch a.Kind {
	case ActionStudy:
		e.study()
	case ActionViewTimetable:
		e.waitAnyKey(TimetableScreen{State: e.state})
	case ActionRest:
		if e.state.location == Mausoleum {
			e.mausoleumRest()
		} else {
			e.restInDorm()
		}
	case ActionGoToBed:
		e.trySleep()
	case ActionGoFromDormToPunk:
		e.travel(PUNK, smallTravelPenalty, OnTheWayToPUNK)
	case ActionGoToPDMI:
		e.goToPDMI()
	case ActionGoToMausoleum:
		e.travel(Mausoleum, e.mausoleumPenalty(), OnTheWayToMausoleum)
	case ActionGoToProfessor:
		e.goToProfessor()
	case ActionLookAtBaobab:
		// Staring at the baobab costs an hour.
		e.waitAnyKey(SceneRouterScreen{State: e.state})
		e.hourPass()
	case ActionLookAtBulletinBoard:
		e.waitAnyKey(SceneRouterScreen{State: e.state})
		e.hourPass()
	case ActionGoFromPunkToDorm:
		e.travel(Dorm, smallTravelPenalty, OnTheWayToDorm)
	case ActionGoToComputerClass:
		e.travel(ComputerClass, smallTravelPenalty, FellFromStairs)
	case ActionGoToCafePUNK:
		e.cafe(CafePUNK)
	case ActionRestInCafePDMI:
		e.cafe(CafePDMI)
	case ActionGoToWork:
		e.terkom()
	case ActionGoToPUNKFromPDMI:
		e.trainFromPDMI()
	case ActionGoFromMausoleumToPunk:
		e.travel(PUNK, smallTravelPenalty, OnTheWayToPUNK)
	case ActionGoFromMausoleumToDorm:
		e.travel(Dorm, largeTravelPenalty, OnTheWayToDorm)
	case ActionLeaveComputerClass:
		e.travel(PUNK, smallTravelPenalty, CouldntLeaveTheComputer)
	case ActionSurfInternet:
		e.surfInternet()
	case ActionPlayMmheroes:
		e.state.Player.SetInception()
		e.waitAnyKey(PlayMmheroes)
		e.hourPass()
	case ActionInteractWithClassmate:
		e.interact(a.Classmate())
	case ActionTakeExam:
		e.enterExam(a.Subject())
	case ActionIAmDone:
		e.iAmDone()
	case ActionWhatToDo:
		e.help()
	default:
		panic("game: scene router cannot dispatch " + a.String())
	}
}

// mausoleumPenalty is the cost of walking to the mausoleum: a long haul
// from the dormitory, a short hop from everywhere else.
func (e *Engine) mausoleumPenalty() HealthLevel {
	if e.state.location == Dorm {
		return largeTravelPenalty
	}
	return smallTravelPenalty
}

// travel moves the player, charging the edge's health penalty.
func (e *Engine) travel(to Location, penalty HealthLevel, cause CauseOfDeath) {
	e.state.Player.SpendHealth(penalty, cause)
	if e.state.Player.IsDead() {
		return
	}
	e.state.location = to
}

// restInDorm is the one-hour nap available in the dormitory. One time
// in four the neighbor barges in with an invitation instead.
func (e *Engine) restInDorm() {
	if e.state.location == Dorm && e.rng.RollDice(4) {
		chosen := e.publish(NeighborInvites, Act(ActionYes), Act(ActionNo))
		if chosen.Kind == ActionYes {
			e.state.Player.SetInvited()
			e.state.Player.Charisma += CharismaLevel(e.rng.Index(3))
			e.hourPass()
			e.hourPass()
			return
		}
	}
	gain := HealthLevel(e.rng.InRangeInclusive(7, 14))
	e.state.Player.Health += gain
	if e.state.Player.Health > 50 {
		e.state.Player.Health = 50
	}
	e.hourPass()
}

// surfInternet burns an hour online. A rare find bumps a random
// subject's knowledge.
func (e *Engine) surfInternet() {
	found := e.rng.RollDice(10)
	if found {
		s := Subject(e.rng.Index(NumSubjects))
		e.state.Player.Status(s).Knowledge++
	}
	e.waitAnyKey(SurfInternet)
	e.hourPass()
}

// iAmDone is the give-up flow: confirm, then end the week.
func (e *Engine) iAmDone() {
	chosen := e.publish(IAmDoneScreen{State: e.state}, Act(ActionNo), Act(ActionYes))
	if chosen.Kind == ActionYes {
		e.surrendered = true
	}
}

// help shows the "what to do" submenu until the player backs out.
func (e *Engine) help() {
	for {
		chosen := e.publish(WhatToDo,
			Act(ActionWhereToGoAndWhy),
			Act(ActionAboutTheScreen),
			Act(ActionAboutProfessors),
			Act(ActionAboutCharacters),
			Act(ActionAboutThisProgram),
			Act(ActionThanksButNothing),
		)
		switch chosen.Kind {
		case ActionWhereToGoAndWhy:
			e.waitAnyKey(WhereToGoAndWhy)
		case ActionAboutTheScreen:
			e.waitAnyKey(AboutScreen)
		case ActionAboutProfessors:
			e.waitAnyKey(AboutProfessors)
		case ActionAboutCharacters:
			e.waitAnyKey(AboutCharacters)
		case ActionAboutThisProgram:
			e.waitAnyKey(AboutThisProgram)
		case ActionThanksButNothing:
			return
		}
	}
}

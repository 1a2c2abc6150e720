package game

import "github.com/mmheroes/mmheroes-go/internal/render"

// renderPrompt redraws the published screen and its action menu into the
// command stream. cursor is the highlighted menu index.
func (e *Engine) renderPrompt(cursor int) {
	b := &e.commands
	b.ClearScreen()
	e.renderScreen()
	e.renderActions(cursor)
	b.Flush()
}

// menuLine is where the action menu starts.
const menuLine = 14

func (e *Engine) writeAt(line, col int, fg render.Color, text string) {
	e.commands.MoveCursor(line, col)
	e.commands.SetColor(fg, render.Black)
	e.commands.Write(text)
}

// renderStatusBar draws the one-line summary of the player's situation.
func (e *Engine) renderStatusBar(s *State) {
	b := &e.commands
	b.MoveCursor(0, 0)
	b.SetColor(render.White, render.Black)
	b.Writef("Day %d  %v  ", s.CurrentDayIndex()+1, s.CurrentTime())
	b.SetColor(render.BrightCyan, render.Black)
	b.Writef("%v", s.Location())

	b.MoveCursor(1, 0)
	b.SetColor(render.BrightGreen, render.Black)
	b.Writef("Health: %v  ", s.Player.Health.Assessment())
	b.SetColor(render.Yellow, render.Black)
	b.Writef("Money: %v  ", s.Player.Money.Assessment())
	b.SetColor(render.BrightCyan, render.Black)
	b.Writef("Brain: %v  ", s.Player.Brain.Assessment())
	b.SetColor(render.BrightMagenta, render.Black)
	b.Writef("Stamina: %v  ", s.Player.Stamina.Assessment())
	b.SetColor(render.BrightRed, render.Black)
	b.Writef("Charisma: %v", s.Player.Charisma.Assessment())
}

func (e *Engine) renderScreen() {
	b := &e.commands
	switch s := e.screen.(type) {
	case staticScreen:
		e.renderStaticScreen(ScreenKind(s))

	case InitialParametersScreen:
		e.writeAt(3, 10, render.White, "Who are you?")

	case SceneRouterScreen:
		e.renderStatusBar(&s.State)
		e.writeAt(3, 0, render.White, "You are in "+s.State.Location().String()+".")
		if present := s.State.ClassmatesAt(s.State.Location()); len(present) > 0 {
			e.writeAt(4, 0, render.Gray, "Around you:")
			for i, c := range present {
				e.writeAt(5+i, 2, render.Cyan, c.String())
			}
		}

	case TimetableScreen:
		e.writeAt(0, 25, render.White, "Exam timetable")
		for day := 0; day < NumDays; day++ {
			e.writeAt(2, 12+day*11, render.BrightCyan, dayName(day))
		}
		for subj := Subject(0); subj < NumSubjects; subj++ {
			line := 4 + int(subj)*2
			e.writeAt(line, 0, render.White, subj.String())
			for day := 0; day < NumDays; day++ {
				exam := s.State.Timetable().ExamOn(day, subj)
				if exam == NoExam {
					continue
				}
				e.writeAt(line, 12+day*11, render.Yellow,
					exam.From().String()+"-"+exam.To().String())
				e.writeAt(line+1, 12+day*11, render.Gray, exam.Location().String())
			}
		}

	case StudyScreen:
		e.renderStatusBar(&s.State)
		e.writeAt(3, 0, render.White, "What will you study?")
		for subj := Subject(0); subj < NumSubjects; subj++ {
			st := s.State.Player.Status(subj)
			b.MoveCursor(menuLine+int(subj), 45)
			b.SetColor(render.Gray, render.Black)
			b.Writef("%d/%d solved", st.ProblemsDone(), Subjects[subj].RequiredProblems)
		}

	case PromptUseLectureNotesScreen:
		e.writeAt(3, 0, render.White,
			"You have the lecture notes for "+s.SubjectToStudy.String()+".")
		e.writeAt(4, 0, render.White, "Use them?")

	case HighScoresScreen:
		e.writeAt(1, 30, render.Yellow, "Hall of fame")
		for i, score := range s.Scores {
			b.MoveCursor(3+i, 20)
			b.SetColor(render.White, render.Black)
			b.Writef("%-32s %6d", score.Name, score.Score)
		}

	case CafeScreen:
		e.renderStatusBar(&s.State)
		switch s.Cafe {
		case CafePUNK:
			e.writeAt(3, 0, render.White, "The PUNK cafe. It smells of fresh cake.")
		case CafePDMI:
			e.writeAt(3, 0, render.White, "The PDMI cafe. Quiet and academic.")
		case MausoleumBuffet:
			e.writeAt(3, 0, render.White, "The mausoleum buffet. The beer is questionable.")
		}

	case TrainScreen:
		e.renderStatusBar(&s.State)
		switch s.Variant {
		case NoPointToGoToPDMI:
			e.writeAt(3, 0, render.White, "No point in going to PDMI this late.")
		case GatecrashBecauseNoMoney:
			e.writeAt(3, 0, render.White, "No money for a ticket. You ride as a hare.")
		case GatecrashByChoice:
			e.writeAt(3, 0, render.White, "You ride without a ticket.")
		case BoughtRoundtripTicket:
			e.writeAt(3, 0, render.White, "You buy a roundtrip ticket.")
		case PromptTicketOrGatecrash:
			e.writeAt(3, 0, render.White, "The electric train to PDMI is at the platform.")
		case NightTrainHome:
			e.writeAt(3, 0, render.White, "The last train crawls back to the city.")
		}
		if s.Caught {
			e.writeAt(5, 0, render.BrightRed, "The inspectors catch you!")
		}

	case BaltiyskiyRailwayStationScreen:
		e.renderStatusBar(&s.State)
		e.writeAt(3, 0, render.White,
			"The inspectors throw you off at the Baltiyskiy railway station.")
		e.writeAt(4, 0, render.White, "Where to now?")

	case GoToProfessorScreen:
		e.renderStatusBar(&s.State)
		e.writeAt(3, 0, render.White, "Which professor do you approach?")

	case ExamIntroScreen:
		e.writeAt(3, 0, render.White,
			"The "+s.Subject.String()+" exam at "+s.Location.String()+".")
		if s.RunningLecture {
			e.writeAt(5, 0, render.Cyan,
				"The professor lectures at length on the benefits of running.")
			b.Sleep(1000)
		}
		b.Sleep(500)

	case ExamScreen:
		e.renderStatusBar(&s.State)
		status := s.State.Player.Status(s.Subject)
		switch s.Phase {
		case ExamSuffering:
			e.writeAt(3, 0, render.White, "The "+s.Subject.String()+" exam.")
			b.MoveCursor(4, 0)
			b.SetColor(render.Yellow, render.Black)
			b.Writef("Problems solved: %d out of %d",
				status.ProblemsDone(), Subjects[s.Subject].RequiredProblems)
		case ExamClassmateApproaches:
			e.writeAt(3, 0, render.Cyan, s.Approaching.String()+" makes their way towards you.")
		case ExamPassed:
			e.writeAt(3, 0, render.BrightGreen, "The exam is passed!")
			b.MoveCursor(4, 0)
			b.SetColor(render.White, render.Black)
			b.Writef("Your performance: %v", s.Grade)
			b.Sleep(500)
		case ExamEnds:
			e.writeAt(3, 0, render.White, "The professor gathers the papers and leaves.")
		}

	case TerkomScreen:
		e.renderStatusBar(&s.State)
		switch s.Variant {
		case TerkomAgainNoFreeComputers:
			e.writeAt(3, 0, render.White, "Still no free computers at TERKOM.")
		case TerkomNoFreeComputers:
			e.writeAt(3, 0, render.White, "No free computers at TERKOM today.")
		case TerkomWorkLoop:
			e.writeAt(3, 0, render.White, "TERKOM. The terminals hum.")
		case TerkomEarned:
			b.MoveCursor(3, 0)
			b.SetColor(render.BrightGreen, render.Black)
			b.Writef("An hour of work earns you %d rubles.", int(s.Earned))
		case TerkomEndOfWorkDay:
			e.writeAt(3, 0, render.White, "The work day at TERKOM is over.")
		}
		if s.HiccupIndex > 0 {
			b.MoveCursor(5, 0)
			b.SetColor(render.Gray, render.Black)
			b.Writef("The sysadmin hiccups %d times.", s.HiccupIndex)
		}

	case DreamingScreen:
		if s.Themed {
			e.writeAt(3, 0, render.BrightMagenta,
				"You dream of "+s.Subject.String()+" all night.")
		} else {
			e.writeAt(3, 0, render.BrightMagenta, "You dream of something pleasantly vague.")
		}
		b.Sleep(1000)

	case ComputerClassClosingScreen:
		e.renderStatusBar(&s.State)
		e.writeAt(3, 0, render.White, "The computer class is closing. Everybody out.")

	case IAmDoneScreen:
		e.renderStatusBar(&s.State)
		e.writeAt(3, 0, render.White, "Give up on the exam week?")

	case GameEndScreen:
		e.renderGameEnd(&s.State)

	case PashaInteractionScreen:
		e.renderStatusBar(&s.State)
		switch s.Interaction {
		case PashaStipend:
			e.writeAt(3, 0, render.White, "Pasha the headman hands you the stipend. 50 rubles!")
		case PashaInspiration:
			e.writeAt(3, 0, render.White,
				"Pasha delivers an inspirational speech about discipline.")
			e.writeAt(4, 0, render.Gray, "Your body firms up. Your head feels emptier.")
		}

	case DiamondInteractionScreen:
		e.renderStatusBar(&s.State)
		if s.Interaction == DiamondGivesFloppy {
			e.writeAt(3, 0, render.White, "Diamond hands you a floppy labeled MMHEROES.")
		} else {
			e.writeAt(3, 0, render.White, diamondReplies[s.ReplyIndex])
		}

	case RAIInteractionScreen:
		e.renderStatusBar(&s.State)
		if s.Interaction == RAISolvesProblem {
			e.writeAt(3, 0, render.White, "RAI grudgingly solves an algebra problem for you.")
		} else {
			e.writeAt(3, 0, render.White, "RAI drones on and on. Your head hurts.")
		}

	case MishaInteractionScreen:
		e.renderStatusBar(&s.State)
		e.writeAt(3, 0, render.White, mishaReplies[s.ReplyIndex])
		if s.Interaction == MishaGoodCompany {
			e.writeAt(5, 0, render.BrightGreen, "Good company. You feel wittier.")
		}

	case SerjInteractionScreen:
		e.renderStatusBar(&s.State)
		if s.Interaction == SerjSharesGarlic {
			e.writeAt(3, 0, render.White, "Serj shares a head of garlic. \"Keeps people away.\"")
		} else {
			e.writeAt(3, 0, render.White, serjReplies[s.ReplyIndex])
		}

	case SashaInteractionScreen:
		e.renderStatusBar(&s.State)
		switch s.Interaction {
		case SashaPromptNotes:
			e.writeAt(3, 0, render.White, "Sasha has excellent lecture notes. Which ones?")
		case SashaGivesNotes:
			e.writeAt(3, 0, render.White,
				"Sasha lends you the "+s.Subject.String()+" notes.")
		case SashaRefuses:
			e.writeAt(3, 0, render.White,
				"\"Sorry, I promised the "+s.Subject.String()+" notes to someone else.\"")
		case SashaNothingToLend:
			e.writeAt(3, 0, render.White, "Sasha has nothing you still need.")
		}

	case NiLInteractionScreen:
		e.renderStatusBar(&s.State)
		if s.Interaction == NiLDrains {
			e.writeAt(3, 0, render.White, "Talking to NiL is strangely exhausting.")
		} else {
			e.writeAt(3, 0, render.White, "NiL mumbles something unintelligible.")
		}

	case KolyaInteractionScreen:
		e.renderStatusBar(&s.State)
		switch s.Interaction {
		case KolyaSolvedProblems:
			e.writeAt(3, 0, render.White, "Kolya solves two algebra problems out of sheer boredom.")
		case KolyaBrakeFluid:
			e.writeAt(3, 0, render.White, "No money for a treat. Kolya pours the brake fluid.")
		case KolyaPromptOatTincture:
			e.writeAt(3, 0, render.White, "\"Algebra? Sure. For an oat tincture. 15 rubles.\"")
		case KolyaSolvedForTincture:
			e.writeAt(3, 0, render.White, "The tincture disappears. So do two algebra problems.")
		case KolyaBrakeFluidNoDeath:
			e.writeAt(3, 0, render.White, "The deal is off, but the brake fluid is already poured.")
		}

	case GrishaInteractionScreen:
		e.renderStatusBar(&s.State)
		switch s.Interaction {
		case GrishaOfferEmployment:
			e.writeAt(3, 0, render.White, "\"Come work at TERKOM. Real money, real computers.\"")
		case GrishaEmployed:
			e.writeAt(3, 0, render.White, "You are now employed at TERKOM.")
		case GrishaProxyAddress:
			e.writeAt(3, 0, render.White, "Grisha scribbles a proxy address on a napkin.")
		case GrishaReply:
			e.writeAt(3, 0, render.White, grishaReplies[s.ReplyIndex].text)
		}

	case AndrewInteractionScreen:
		e.renderStatusBar(&s.State)
		if s.Interaction == AndrewExplains {
			e.writeAt(3, 0, render.White, "Andrew patiently explains a calculus trick.")
		} else {
			e.writeAt(3, 0, render.White,
				"Andrew predicts the mood of the "+s.PredictedSubject.String()+" professor.")
			e.writeAt(4, 0, render.Gray, "You are fairly sure that's the wrong professor.")
		}

	case DJuGInteractionScreen:
		e.renderStatusBar(&s.State)
		if s.Interaction == DJuGLectures {
			e.writeAt(3, 0, render.White, "DJuG improvises a lecture on point-set topology.")
		} else {
			e.writeAt(3, 0, render.White, "DJuG's stare alone drains your will to live.")
		}

	case KuzmenkoInteractionScreen:
		e.renderStatusBar(&s.State)
		if s.Interaction == KuzmenkoSchedulesExam {
			b.MoveCursor(3, 0)
			b.SetColor(render.White, render.Black)
			b.Writef("\"Splendid! An extra computer science sitting on day %d.\"", s.Day+1)
		} else {
			e.writeAt(3, 0, render.White, kuzmenkoReplies[s.ReplyIndex])
		}

	default:
		// A screen without a dedicated body still gets the menu below.
	}
}

func (e *Engine) renderStaticScreen(kind ScreenKind) {
	b := &e.commands
	switch kind {
	case ScreenIntro:
		e.writeAt(2, 20, render.BrightRed, "HEROES OF MATH-MECH")
		e.writeAt(4, 16, render.White, "A simulation of the exam week")
		e.writeAt(6, 16, render.Gray, "Survive six days. Pass six exams.")
		b.Sleep(700)
	case ScreenDing:
		e.writeAt(5, 30, render.Yellow, "DING!")
		b.Sleep(500)
		e.writeAt(7, 20, render.White, "A new day of the exam week begins.")
	case ScreenMidnight:
		e.writeAt(5, 25, render.BrightBlue, "Midnight.")
		e.writeAt(7, 15, render.White, "The building empties. You drag yourself home.")
	case ScreenDontWantToSleep:
		e.writeAt(5, 15, render.White, "You don't feel like sleeping yet.")
	case ScreenCantStayAwake:
		e.writeAt(5, 15, render.White, "Your eyes close on their own...")
		b.Sleep(700)
	case ScreenNeighborInvites:
		e.writeAt(3, 0, render.White, "Your neighbor pokes his head in:")
		e.writeAt(4, 0, render.Cyan, "\"Come over, we're having tea and arguments!\"")
	case ScreenSurfInternet:
		e.writeAt(5, 15, render.White, "You surf the early internet. It is slow.")
		b.Sleep(500)
	case ScreenPlayMmheroes:
		e.writeAt(5, 15, render.White, "You play MMHEROES instead of living your own week.")
		b.Sleep(500)
	case ScreenWannaTryAgain:
		e.writeAt(5, 20, render.White, "Wanna try again?")
	case ScreenDisclaimer:
		e.writeAt(3, 0, render.White, "All characters are fictitious.")
		e.writeAt(4, 0, render.White, "Any resemblance to real students is a coincidence.")
	case ScreenWhatToDo:
		e.writeAt(2, 25, render.Yellow, "HELP")
	case ScreenWhereToGoAndWhy:
		e.writeAt(2, 0, render.White, "PUNK is where most exams happen. PDMI is a train ride away.")
		e.writeAt(3, 0, render.White, "The dorm is for studying and sleeping, the mausoleum for neither.")
	case ScreenAboutScreen:
		e.writeAt(2, 0, render.White, "The top line shows the day, the time and where you are.")
		e.writeAt(3, 0, render.White, "Below it: health, money, brain, stamina and charisma.")
		e.writeAt(4, 0, render.White, "Watch the colors. Red means trouble.")
	case ScreenAboutProfessors:
		e.writeAt(2, 0, render.White, "Six professors, six exams, six chances to fail.")
	case ScreenAboutCharacters:
		e.writeAt(2, 0, render.White, "Your classmates can help, harm, or merely waste your time.")
	case ScreenAboutThisProgram:
		e.writeAt(2, 0, render.White, "A text-mode simulation of the math-mech exam week.")
	case ScreenTerminal:
		// Nothing to draw; the game is over.
	}
}

func dayName(day int) string {
	names := [NumDays]string{"Mon 22", "Tue 23", "Wed 24", "Thu 25", "Fri 26", "Sat 27"}
	return names[day]
}

// renderGameEnd draws the final report: survival or the cause of death,
// plus the exam tally.
func (e *Engine) renderGameEnd(s *State) {
	b := &e.commands
	if cause, dead := s.Player.CauseOfDeath(); dead {
		e.writeAt(3, 10, render.BrightRed, "GAME OVER")
		e.writeAt(5, 5, render.White, cause.String())
	} else if s.Player.PassedAllExams() {
		e.writeAt(3, 10, render.BrightGreen, "CONGRATULATIONS!")
		e.writeAt(5, 5, render.White, "You survived the exam week and passed everything.")
	} else {
		e.writeAt(3, 10, render.Yellow, "The week is over.")
	}
	b.MoveCursor(7, 5)
	b.SetColor(render.White, render.Black)
	b.Writef("Exams passed: %d out of %d", s.Player.PassedExamCount(), NumSubjects)
}

// renderActions draws the menu, highlighting the cursor row. A lone
// any-key action renders as a hint instead of a menu.
func (e *Engine) renderActions(cursor int) {
	b := &e.commands
	actions := e.actions.Slice()
	if len(actions) == 1 && actions[0].Kind == ActionAnyKey {
		b.MoveCursor(23, 0)
		b.SetColor(render.DarkGray, render.Black)
		b.Write("Press any key...")
		return
	}
	for i, a := range actions {
		b.MoveCursor(menuLine+i, 2)
		if i == cursor {
			b.SetColor(render.Black, render.Gray)
		} else {
			b.SetColor(render.White, render.Black)
		}
		b.Write(e.menuLabel(a))
	}
}

// menuLabel is the display text of one menu entry.
func (e *Engine) menuLabel(a Action) string {
	switch a.Kind {
	case ActionStudy:
		return "Study"
	case ActionViewTimetable:
		return "View the timetable"
	case ActionRest:
		return "Rest"
	case ActionGoToBed:
		return "Go to bed"
	case ActionGoFromDormToPunk, ActionGoToPUNKFromPDMI, ActionGoFromMausoleumToPunk:
		return "Go to PUNK"
	case ActionGoToPDMI:
		return "Go to PDMI"
	case ActionGoToMausoleum:
		return "Go to the mausoleum"
	case ActionGoToProfessor:
		return "Go see a professor"
	case ActionLookAtBaobab:
		return "Look at the baobab"
	case ActionGoFromPunkToDorm, ActionGoFromMausoleumToDorm:
		return "Go to the dorm"
	case ActionGoToComputerClass:
		return "Go to the computer class"
	case ActionGoToCafePUNK, ActionRestInCafePDMI:
		return "Go to the cafe"
	case ActionGoToWork:
		return "Go to work at TERKOM"
	case ActionLookAtBulletinBoard:
		return "Look at the bulletin board"
	case ActionLeaveComputerClass:
		return "Leave the computer class"
	case ActionSurfInternet, ActionSurfInternetAtTerkom:
		return "Surf the internet"
	case ActionPlayMmheroes, ActionPlayMmheroesAtTerkom:
		return "Play MMHEROES"
	case ActionInteractWithClassmate:
		return "Approach " + a.Classmate().String()
	case ActionTakeExam:
		return "Take the " + a.Subject().String() + " exam"
	case ActionIAmDone:
		return "I'm done with all this"
	case ActionWhatToDo:
		return "What am I supposed to do?"
	case ActionDoStudy:
		return a.Subject().String()
	case ActionDontStudy:
		return "Don't study"
	case ActionUseLectureNotes:
		return "Use the lecture notes"
	case ActionDontUseLectureNotes:
		return "Manage without the notes"
	case ActionOrderItem:
		if cafe, ok := e.screen.(CafeScreen); ok {
			item := CafeMenu(cafe.Cafe)[a.Arg]
			return "Order " + item.Name
		}
		return "Order"
	case ActionRestInCafe:
		return "Just sit here for a while"
	case ActionLeaveCafe:
		return "Leave"
	case ActionGatecrashTrain:
		return "Ride without a ticket"
	case ActionBuyRoundtripTrainTicket:
		return "Buy a roundtrip ticket"
	case ActionSufferMore:
		return "Keep suffering"
	case ActionExitExam:
		return "Leave the exam"
	case ActionEarnAtTerkom:
		return "Get to work"
	case ActionExitTerkom:
		return "Leave TERKOM"
	case ActionYes:
		return "Yes"
	case ActionNo:
		return "No"
	case ActionWhereToGoAndWhy:
		return "Where to go, and why?"
	case ActionAboutTheScreen:
		return "About the screen"
	case ActionAboutProfessors:
		return "About the professors"
	case ActionAboutCharacters:
		return "About the characters"
	case ActionAboutThisProgram:
		return "About this program"
	case ActionThanksButNothing:
		return "Thanks, but nothing"
	case ActionSelectPlayStyle:
		return "Play as " + a.PlayStyle().String()
	case ActionTryAgain:
		return "Try again"
	case ActionQuitGame:
		return "Quit"
	default:
		return a.String()
	}
}

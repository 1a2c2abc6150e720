package game

import "github.com/mmheroes/mmheroes-go/internal/tiny"

// goToProfessor lists the exams running at this location right now.
func (e *Engine) goToProfessor() {
	var actions []Action
	for s := Subject(0); s < NumSubjects; s++ {
		if e.examHereNow(s) != NoExam && !e.state.Player.Status(s).PassedExam() {
			actions = append(actions, ExamAction(s))
		}
	}
	actions = append(actions, Act(ActionThanksButNothing))

	chosen := e.publish(GoToProfessorScreen{State: e.state}, actions...)
	if chosen.Kind == ActionThanksButNothing {
		return
	}
	e.enterExam(chosen.Subject())
}

// enterExam starts an exam sitting and runs its loop.
func (e *Engine) enterExam(subject Subject) {
	if e.rng.RollDice(2) {
		e.examIntro(subject)
	}
	e.state.Player.SetLastExam(subject)
	if e.state.Player.IsDead() {
		return
	}

	e.state.examInProgress = subject
	e.state.hasExamInProgress = true
	defer func() {
		e.state.hasExamInProgress = false
	}()

	var approached tiny.BitSet16
	timesApproached := 0

	for !e.state.Player.IsDead() {
		status := e.state.Player.Status(subject)
		if status.ProblemsDone() >= Subjects[subject].RequiredProblems {
			if !status.PassedExam() {
				status.SetPassedExamDayIndex(e.state.currentDay)
			}
			e.examPassed(subject)
			return
		}

		exam := e.state.CurrentDay().Exam(subject)
		if exam == NoExam || e.state.currentTime >= exam.To() {
			e.examEnds(subject)
			return
		}

		e.npcTryApproach(subject, &approached, &timesApproached)
		if e.state.Player.IsDead() {
			return
		}
		if exam := e.state.CurrentDay().Exam(subject); exam == NoExam ||
			e.state.currentTime >= exam.To() {
			e.examEnds(subject)
			return
		}

		actions := []Action{Act(ActionSufferMore)}
		for _, c := range e.state.ClassmatesAtExam(subject) {
			actions = append(actions, InteractAction(c))
		}
		actions = append(actions, Act(ActionExitExam))

		chosen := e.publish(ExamScreen{
			State:   e.state,
			Subject: subject,
			Phase:   ExamSuffering,
		}, actions...)

		switch chosen.Kind {
		case ActionSufferMore:
			e.sufferExam(subject)
		case ActionInteractWithClassmate:
			e.interact(chosen.Classmate())
		case ActionExitExam:
			if subject == AlgebraAndNumberTheory && e.state.location == PDMI {
				e.state.hasExamInProgress = false
				e.trainAlgebraExam()
			}
			return
		}
	}
}

// examIntro plays the pre-exam animation. The physical education
// professor sometimes lectures on the benefits of running, which extends
// the exam by an hour and consumes one.
func (e *Engine) examIntro(subject Subject) {
	runningLecture := subject == PhysicalEducation && e.rng.RollDice(3)
	e.waitAnyKey(ExamIntroScreen{
		Subject:        subject,
		Location:       e.state.location,
		RunningLecture: runningLecture,
	})
	if runningLecture {
		exam := e.state.CurrentDay().Exam(subject)
		if exam != NoExam && exam.To() < 24 {
			e.state.CurrentDay().SetExam(exam.WithOneHourMore())
		}
		e.hourPass()
	}
}

// sufferExam is one hour of work in front of the professor. Progress
// depends on knowledge relative to the subject's mental load; solving
// costs knowledge, and the professor costs health.
func (e *Engine) sufferExam(subject Subject) {
	info := &Subjects[subject]
	status := e.state.Player.Status(subject)

	capacity := int(status.Knowledge)/int(info.MentalLoad) + 1
	solved := e.rng.Index(capacity + 1)
	remaining := info.RequiredProblems - status.ProblemsDone()
	if solved > remaining {
		solved = remaining
	}
	if solved > 0 {
		status.AddProblemsDone(solved)
		status.Knowledge -= int16(solved * info.SingleProblemMentalFactor)
		if status.Knowledge < 0 {
			status.Knowledge = 0
		}
	}

	penalty := HealthLevel(e.rng.Index(int(info.HealthPenalty) + 1))
	e.state.Player.SpendHealth(penalty, TorturedByProfessor)

	e.hourPass()
}

// examPassed reports the grade and leaves the exam.
func (e *Engine) examPassed(subject Subject) {
	grade := subject.Assess(e.state.Player.Status(subject).Knowledge)
	e.waitAnyKey(ExamScreen{
		State:   e.state,
		Subject: subject,
		Phase:   ExamPassed,
		Grade:   grade,
	})
}

// examEnds is the professor leaving when the exam time runs out. No
// grading happens here; it only returns control to the scene router.
func (e *Engine) examEnds(subject Subject) {
	e.waitAnyKey(ExamScreen{
		State:   e.state,
		Subject: subject,
		Phase:   ExamEnds,
	})
}

// npcTryApproach lets classmates interrupt the suffering. A bitset
// tracks who already approached this sitting; the player endures at most
// charisma/2 approaches, at most 3 rounds, and a coin flip may end the
// harassment early.
func (e *Engine) npcTryApproach(subject Subject, approached *tiny.BitSet16, timesApproached *int) {
	for round := 0; round < 3; round++ {
		if int(e.state.Player.Charisma)/2 <= *timesApproached || *timesApproached > 3 {
			return
		}
		for _, c := range e.state.ClassmatesAtExam(subject) {
			if approached.Has(int(c)) {
				continue
			}
			threshold := c.Annoyance() - *timesApproached/2 - e.state.Player.Garlic
			if threshold > e.rng.Index(11) {
				approached.Set(int(c))
				*timesApproached++
				e.state.Player.SpendHealth(c.ApproachHealthPenalty(), TorturedByProfessor)
				e.waitAnyKey(ExamScreen{
					State:       e.state,
					Subject:     subject,
					Phase:       ExamClassmateApproaches,
					Approaching: c,
				})
				if e.state.Player.IsDead() {
					return
				}
				if exam := e.state.CurrentDay().Exam(subject); exam == NoExam ||
					e.state.currentTime >= exam.To() {
					return
				}
			}
		}
		if int(e.state.Player.Charisma)/2 <= *timesApproached || *timesApproached > 3 {
			return
		}
		if e.rng.RollDice(2) {
			return
		}
	}
}

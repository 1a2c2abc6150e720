package game

// study runs the dormitory study flow: pick a subject, optionally use
// lecture notes, then apply the knowledge and health updates.
func (e *Engine) study() {
	var actions []Action
	for s := Subject(0); s < NumSubjects; s++ {
		actions = append(actions, StudyAction(s))
	}
	actions = append(actions, Act(ActionDontStudy))

	chosen := e.publish(StudyScreen{State: e.state}, actions...)
	if chosen.Kind == ActionDontStudy {
		return
	}
	subject := chosen.Subject()

	useNotes := false
	if e.state.Player.Status(subject).HasLectureNotes() {
		reply := e.publish(PromptUseLectureNotesScreen{SubjectToStudy: subject},
			Act(ActionUseLectureNotes), Act(ActionDontUseLectureNotes))
		useNotes = reply.Kind == ActionUseLectureNotes
	}

	e.studySubject(subject, useNotes)
}

// studySubject applies one hour of studying.
func (e *Engine) studySubject(subject Subject, useLectureNotes bool) {
	player := &e.state.Player
	k := player.StudyLevel(subject)
	if k <= 0 {
		return
	}

	kEff := k
	if !e.state.currentTime.IsOptimalStudyTime() {
		kEff = k * 2 / 3
	}

	status := player.Status(subject)
	status.Knowledge += kEff
	status.Knowledge -= int16(e.rng.Index(int(k)/2 + 1))
	if player.Health > 0 {
		status.Knowledge += int16(e.rng.Index(int(player.Health)/18 + 1))
	}
	if useLectureNotes {
		status.Knowledge += 10
	}
	if status.Knowledge < 0 {
		status.Knowledge = 0
	}

	penalty := HealthLevel(10 - e.rng.Index(int(player.Stamina)+1))
	if penalty < 0 {
		penalty = 0
	}
	if e.state.currentTime.IsSuboptimalStudyTime() {
		penalty += 12
	}
	if useLectureNotes {
		penalty = 0
	}
	player.SpendHealth(penalty, Overstudied)

	if status.Knowledge > 45 {
		player.SpendHealth(10, StudiedTooWell)
	}

	e.hourPass()
}

package game

import "github.com/mmheroes/mmheroes-go/internal/random"

// State is the complete game state. It is a value type: every screen
// that needs to display state carries a copy, so the UI layer never
// holds a live reference into the engine.
type State struct {
	Player Player

	currentDay  int // 0..=6; 6 means the week timed out
	currentTime Time
	timetable   Timetable
	location    Location

	classmateLocations [NumClassmates]ClassmateLocation

	examInProgress    Subject
	hasExamInProgress bool

	terkomHasPlaces bool

	// misc packs two counters into one byte:
	//   bits 0..4  additional computer science exams added by Kuzmenko
	//   bits 5..7  whether Sasha still has lecture notes per subject
	misc uint8
}

const (
	miscCSExamsMask     = 0x1F
	miscSashaNotesShift = 5
)

// newState builds the initial state for a fresh player.
func newState(rng *random.Rng, player Player) State {
	s := State{
		Player:          player,
		currentDay:      0,
		currentTime:     8,
		timetable:       NewTimetable(rng),
		location:        Dorm,
		terkomHasPlaces: true,
	}
	// Sasha starts with notes for all three lecture-notes subjects.
	s.misc = 0x7 << miscSashaNotesShift
	s.refreshClassmateLocations()
	return s
}

// CurrentDayIndex returns the current day, 0-based; 6 means time-out.
func (s *State) CurrentDayIndex() int { return s.currentDay }

// CurrentTime returns the hour of day.
func (s *State) CurrentTime() Time { return s.currentTime }

// CurrentDay returns today's timetable entry. During the time-out day
// the last real day is returned.
func (s *State) CurrentDay() *Day {
	if s.currentDay >= NumDays {
		return s.timetable.Day(NumDays - 1)
	}
	return s.timetable.Day(s.currentDay)
}

// Timetable returns the week's schedule.
func (s *State) Timetable() *Timetable { return &s.timetable }

// Location returns where the player is.
func (s *State) Location() Location { return s.location }

// ClassmateLocation returns a classmate's current whereabouts.
func (s *State) ClassmateLocation(c Classmate) ClassmateLocation {
	return s.classmateLocations[c]
}

// ClassmatesAt lists the classmates present at a location right now, in
// roster order.
func (s *State) ClassmatesAt(l Location) []Classmate {
	var present []Classmate
	for c := Classmate(0); c < NumClassmates; c++ {
		loc := s.classmateLocations[c]
		if loc.Kind == ClassmateAt && loc.Location == l {
			present = append(present, c)
		}
	}
	return present
}

// ClassmatesAtExam lists the classmates sitting the given exam.
func (s *State) ClassmatesAtExam(subject Subject) []Classmate {
	var present []Classmate
	for c := Classmate(0); c < NumClassmates; c++ {
		loc := s.classmateLocations[c]
		if loc.Kind == ClassmateAtExam && loc.Subject == subject {
			present = append(present, c)
		}
	}
	return present
}

// ExamInProgress returns the exam the player is sitting, or ok=false.
func (s *State) ExamInProgress() (Subject, bool) {
	return s.examInProgress, s.hasExamInProgress
}

// TerkomHasPlaces reports whether TERKOM currently has free computers.
func (s *State) TerkomHasPlaces() bool { return s.terkomHasPlaces }

// AdditionalCSExams returns how many extra computer science exams
// Kuzmenko has arranged.
func (s *State) AdditionalCSExams() int { return int(s.misc & miscCSExamsMask) }

// SashaHasLectureNotes reports whether Sasha still has notes for a
// subject.
func (s *State) SashaHasLectureNotes(subject Subject) bool {
	if !subject.LectureNotesSubject() {
		return false
	}
	return s.misc&(1<<(miscSashaNotesShift+uint(subject))) != 0
}

// MiscByte exposes the packed counters byte for encoding tests.
func (s *State) MiscByte() uint8 { return s.misc }

func (s *State) addAdditionalCSExam() {
	n := s.AdditionalCSExams() + 1
	if n > miscCSExamsMask {
		n = miscCSExamsMask
	}
	s.misc = s.misc&^uint8(miscCSExamsMask) | uint8(n)
}

func (s *State) clearSashaLectureNotes(subject Subject) {
	s.misc &^= 1 << (miscSashaNotesShift + uint(subject))
}

func (s *State) refreshClassmateLocations() {
	day := s.CurrentDay()
	for c := Classmate(0); c < NumClassmates; c++ {
		s.classmateLocations[c] = c.refreshLocation(day, s.currentTime)
	}
}

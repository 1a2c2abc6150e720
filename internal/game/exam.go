package game

import (
	"fmt"

	"github.com/mmheroes/mmheroes-go/internal/random"
)

// Exam is a single scheduled examination, packed into 16 bits:
//
//	bits 0..2   subject
//	bits 3..7   start hour
//	bits 8..12  end hour
//	bits 13..15 location
//
// The packed layout is part of the engine contract; tests assert the
// exact encodings.
type Exam uint16

// NoExam marks the absence of an exam in a day slot.
const NoExam Exam = 0xFFFF

// NewExam packs an exam record. Panics when the invariant
// from < to <= 24 is violated.
func NewExam(subject Subject, from, to Time, location Location) Exam {
	if from >= to || to > 24 {
		panic(fmt.Sprintf("game: invalid exam interval %d..%d", from, to))
	}
	return Exam(uint16(subject)&0x7 |
		uint16(from)&0x1F<<3 |
		uint16(to)&0x1F<<8 |
		uint16(location)&0x7<<13)
}

// Subject returns the examined subject.
func (e Exam) Subject() Subject { return Subject(e & 0x7) }

// From returns the start hour.
func (e Exam) From() Time { return Time(e >> 3 & 0x1F) }

// To returns the end hour.
func (e Exam) To() Time { return Time(e >> 8 & 0x1F) }

// Location returns where the exam takes place.
func (e Exam) Location() Location { return Location(e >> 13 & 0x7) }

// WithOneHourMore returns the same exam ending one hour later, used when
// the physical education professor lectures on the benefits of running.
func (e Exam) WithOneHourMore() Exam {
	return NewExam(e.Subject(), e.From(), e.To()+1, e.Location())
}

// NumDays is the length of the exam week.
const NumDays = 6

// Day is one day of the timetable: at most one exam per subject.
type Day struct {
	index int
	exams [NumSubjects]Exam
}

// Index returns the day's position in the week, 0-based.
func (d *Day) Index() int { return d.index }

// Exam returns the scheduled exam for a subject, or NoExam.
func (d *Day) Exam(s Subject) Exam { return d.exams[s] }

// HasExam reports whether the subject is examined on this day.
func (d *Day) HasExam(s Subject) bool { return d.exams[s] != NoExam }

// SetExam schedules an exam for its subject on this day.
func (d *Day) SetExam(e Exam) { d.exams[e.Subject()] = e }

// Timetable is the randomized schedule of the whole exam week.
type Timetable struct {
	days [NumDays]Day
}

// NewTimetable generates a random timetable: each subject gets ExamDays
// distinct days; on each day the start time is uniform in
// [9, 18-maxDuration], the duration uniform in min..=max, and the
// location uniform over the subject's candidate places.
func NewTimetable(rng *random.Rng) Timetable {
	var t Timetable
	for i := range t.days {
		t.days[i].index = i
		for s := range t.days[i].exams {
			t.days[i].exams[s] = NoExam
		}
	}
	for s := Subject(0); s < NumSubjects; s++ {
		info := &Subjects[s]
		for _, day := range pickDistinctDays(rng, info.ExamDays) {
			from := Time(rng.InRangeInclusive(9, 18-int(info.ExamMaxDuration)))
			duration := Duration(rng.InRangeInclusive(int(info.ExamMinDuration), int(info.ExamMaxDuration)))
			location := random.Element(rng, info.ExamPlaces[:])
			t.days[day].SetExam(NewExam(s, from, from.Add(duration), location))
		}
	}
	return t
}

// pickDistinctDays draws n distinct day indices uniformly without
// replacement.
func pickDistinctDays(rng *random.Rng, n int) []int {
	var picked []int
	for len(picked) < n {
		candidate := rng.Index(NumDays)
		duplicate := false
		for _, d := range picked {
			if d == candidate {
				duplicate = true
				break
			}
		}
		if !duplicate {
			picked = append(picked, candidate)
		}
	}
	return picked
}

// Day returns the day at the given index.
func (t *Timetable) Day(i int) *Day { return &t.days[i] }

// ExamOn returns a subject's exam on the given day, or NoExam.
func (t *Timetable) ExamOn(day int, s Subject) Exam {
	if day < 0 || day >= NumDays {
		return NoExam
	}
	return t.days[day].Exam(s)
}

// AddExam schedules an extra exam (Kuzmenko's additional computer
// science sittings). Reports whether the slot was free.
func (t *Timetable) AddExam(day int, e Exam) bool {
	if day < 0 || day >= NumDays || t.days[day].HasExam(e.Subject()) {
		return false
	}
	t.days[day].SetExam(e)
	return true
}

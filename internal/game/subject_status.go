package game

import "fmt"

// SubjectStatus tracks the player's progress in one subject. The flags
// part is packed into 16 bits:
//
//	bits 0..2   subject
//	bits 3..10  problems done (0..=255)
//	bits 11..13 passed-exam day index (7 = not passed)
//	bit  14     has lecture notes
//
// Knowledge is kept alongside as a plain 16-bit level.
type SubjectStatus struct {
	bits      uint16
	Knowledge int16
}

// notPassed is the 3-bit sentinel for an exam not yet passed.
const notPassed = 7

// NewSubjectStatus creates a status for a subject with the given initial
// knowledge.
func NewSubjectStatus(s Subject, knowledge int16) SubjectStatus {
	return SubjectStatus{
		bits:      uint16(s)&0x7 | notPassed<<11,
		Knowledge: knowledge,
	}
}

// Subject returns which subject this status tracks.
func (st *SubjectStatus) Subject() Subject { return Subject(st.bits & 0x7) }

// ProblemsDone returns the number of solved problems.
func (st *SubjectStatus) ProblemsDone() int { return int(st.bits >> 3 & 0xFF) }

// AddProblemsDone increments the solved-problem counter, saturating at
// the 8-bit cap.
func (st *SubjectStatus) AddProblemsDone(n int) {
	done := st.ProblemsDone() + n
	if done > 255 {
		done = 255
	}
	st.bits = st.bits&^(0xFF<<3) | uint16(done)<<3
}

// PassedExamDayIndex returns the day the exam was passed on, or -1.
func (st *SubjectStatus) PassedExamDayIndex() int {
	idx := int(st.bits >> 11 & 0x7)
	if idx == notPassed {
		return -1
	}
	return idx
}

// PassedExam reports whether the exam is already passed.
func (st *SubjectStatus) PassedExam() bool { return st.bits>>11&0x7 != notPassed }

// SetPassedExamDayIndex records the passing day. The field is set-once:
// passing twice is a programmer error.
func (st *SubjectStatus) SetPassedExamDayIndex(day int) {
	if st.PassedExam() {
		panic(fmt.Sprintf("game: %v exam passed twice", st.Subject()))
	}
	if day < 0 || day >= NumDays {
		panic(fmt.Sprintf("game: invalid passing day %d", day))
	}
	st.bits = st.bits&^(0x7<<11) | uint16(day)<<11
}

// HasLectureNotes reports whether the player holds lecture notes for the
// subject.
func (st *SubjectStatus) HasLectureNotes() bool { return st.bits&1<<14 != 0 }

// SetHasLectureNotes marks the notes as obtained. Monotonic.
func (st *SubjectStatus) SetHasLectureNotes() { st.bits |= 1 << 14 }

// Bits exposes the raw packed value for encoding tests.
func (st *SubjectStatus) Bits() uint16 { return st.bits }

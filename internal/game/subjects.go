package game

// Subject is one of the six exam subjects.
type Subject uint8

const (
	AlgebraAndNumberTheory Subject = iota
	Calculus
	GeometryAndTopology
	ComputerScience
	English
	PhysicalEducation

	// NumSubjects is the size of every per-subject array.
	NumSubjects = 6

	// noSubject is the 3-bit encoding for "no subject" in packed records.
	noSubject = 7
)

func (s Subject) String() string {
	switch s {
	case AlgebraAndNumberTheory:
		return "Algebra & number theory"
	case Calculus:
		return "Calculus"
	case GeometryAndTopology:
		return "Geometry & topology"
	case ComputerScience:
		return "Computer science"
	case English:
		return "English"
	case PhysicalEducation:
		return "Physical education"
	default:
		return "???"
	}
}

// ExamAssessment is a relative grade shown when an exam is passed.
type ExamAssessment int

const (
	AssessmentBad ExamAssessment = iota
	AssessmentSatisfactory
	AssessmentGood
	AssessmentExcellent
)

func (a ExamAssessment) String() string {
	switch a {
	case AssessmentBad:
		return "bad"
	case AssessmentSatisfactory:
		return "satisfactory"
	case AssessmentGood:
		return "good"
	default:
		return "excellent"
	}
}

// SubjectInfo is the static per-subject record.
type SubjectInfo struct {
	RequiredProblems          int
	ExamDays                  int // days the exam appears on the timetable
	ExamMinDuration           Duration
	ExamMaxDuration           Duration
	ExamPlaces                [3]Location
	MentalLoad                BrainLevel
	HealthPenalty             HealthLevel
	SingleProblemMentalFactor int

	// AssessmentBounds are (threshold, grade) pairs for relative grading:
	// knowledge below bound i earns the i-th grade, anything above the
	// last bound is excellent.
	AssessmentBounds [3]int16
}

// Subjects is the authoritative subject table.
var Subjects = [NumSubjects]SubjectInfo{
	AlgebraAndNumberTheory: {
		RequiredProblems:          12,
		ExamDays:                  4,
		ExamMinDuration:           2,
		ExamMaxDuration:           4,
		ExamPlaces:                [3]Location{PUNK, PUNK, PDMI},
		MentalLoad:                10,
		HealthPenalty:             17,
		SingleProblemMentalFactor: 3,
		AssessmentBounds:          [3]int16{11, 21, 51},
	},
	Calculus: {
		RequiredProblems:          10,
		ExamDays:                  4,
		ExamMinDuration:           2,
		ExamMaxDuration:           3,
		ExamPlaces:                [3]Location{PUNK, PUNK, PUNK},
		MentalLoad:                8,
		HealthPenalty:             14,
		SingleProblemMentalFactor: 2,
		AssessmentBounds:          [3]int16{9, 19, 41},
	},
	GeometryAndTopology: {
		RequiredProblems:          3,
		ExamDays:                  2,
		ExamMinDuration:           1,
		ExamMaxDuration:           3,
		ExamPlaces:                [3]Location{PUNK, PDMI, PDMI},
		MentalLoad:                4,
		HealthPenalty:             8,
		SingleProblemMentalFactor: 3,
		AssessmentBounds:          [3]int16{6, 11, 31},
	},
	ComputerScience: {
		RequiredProblems:          2,
		ExamDays:                  2,
		ExamMinDuration:           1,
		ExamMaxDuration:           2,
		ExamPlaces:                [3]Location{ComputerClass, ComputerClass, ComputerClass},
		MentalLoad:                5,
		HealthPenalty:             6,
		SingleProblemMentalFactor: 3,
		AssessmentBounds:          [3]int16{10, 16, 31},
	},
	English: {
		RequiredProblems:          3,
		ExamDays:                  2,
		ExamMinDuration:           2,
		ExamMaxDuration:           2,
		ExamPlaces:                [3]Location{PUNK, PUNK, PUNK},
		MentalLoad:                7,
		HealthPenalty:             10,
		SingleProblemMentalFactor: 1,
		AssessmentBounds:          [3]int16{5, 9, 16},
	},
	PhysicalEducation: {
		RequiredProblems:          1,
		ExamDays:                  2,
		ExamMinDuration:           1,
		ExamMaxDuration:           1,
		ExamPlaces:                [3]Location{PUNK, PUNK, PUNK},
		MentalLoad:                7,
		HealthPenalty:             20,
		SingleProblemMentalFactor: 1,
		AssessmentBounds:          [3]int16{5, 9, 16},
	},
}

// Assess grades a knowledge level relative to the subject's bounds.
func (s Subject) Assess(knowledge int16) ExamAssessment {
	info := &Subjects[s]
	switch {
	case knowledge < info.AssessmentBounds[0]:
		return AssessmentBad
	case knowledge < info.AssessmentBounds[1]:
		return AssessmentSatisfactory
	case knowledge < info.AssessmentBounds[2]:
		return AssessmentGood
	default:
		return AssessmentExcellent
	}
}

// LectureNotesSubject reports whether Sasha can hold lecture notes for
// this subject.
func (s Subject) LectureNotesSubject() bool {
	return s == AlgebraAndNumberTheory || s == Calculus || s == GeometryAndTopology
}

package game

// Classmate is one of the twelve fixed NPC identities.
type Classmate uint8

const (
	Pasha Classmate = iota
	Diamond
	RAI
	Misha
	Serj
	Sasha
	NiL
	Kolya
	Grisha
	Andrew
	DJuG
	Kuzmenko

	// NumClassmates is the size of the roster.
	NumClassmates = 12
)

func (c Classmate) String() string {
	switch c {
	case Pasha:
		return "Pasha"
	case Diamond:
		return "Diamond"
	case RAI:
		return "RAI"
	case Misha:
		return "Misha"
	case Serj:
		return "Serj"
	case Sasha:
		return "Sasha"
	case NiL:
		return "NiL"
	case Kolya:
		return "Kolya"
	case Grisha:
		return "Grisha"
	case Andrew:
		return "Andrew"
	case DJuG:
		return "DJuG"
	case Kuzmenko:
		return "Kuzmenko"
	default:
		return "???"
	}
}

// ClassmateLocationKind discriminates where a classmate currently is.
type ClassmateLocationKind int

const (
	// ClassmateNowhere: not reachable this hour.
	ClassmateNowhere ClassmateLocationKind = iota
	// ClassmateAt: present at a world location.
	ClassmateAt
	// ClassmateAtExam: sitting the given subject's exam.
	ClassmateAtExam
)

// ClassmateLocation is a classmate's current whereabouts.
type ClassmateLocation struct {
	Kind     ClassmateLocationKind
	Location Location // valid when Kind == ClassmateAt
	Subject  Subject  // valid when Kind == ClassmateAtExam
}

func nowhere() ClassmateLocation {
	return ClassmateLocation{Kind: ClassmateNowhere}
}

func at(l Location) ClassmateLocation {
	return ClassmateLocation{Kind: ClassmateAt, Location: l}
}

func atExam(s Subject) ClassmateLocation {
	return ClassmateLocation{Kind: ClassmateAtExam, Subject: s}
}

// classmateInfo is the static per-classmate record.
type classmateInfo struct {
	// annoyance feeds the exam-approach roll: higher means more likely
	// to interrupt the player's suffering.
	annoyance int
	// approachHealthPenalty is subtracted when the classmate approaches
	// during an exam.
	approachHealthPenalty HealthLevel
	// daytimeHome is the location the classmate haunts between 9:00 and
	// 19:00, if any.
	daytimeHome    Location
	hasDaytimeHome bool
	// examSubject is the exam the classmate shows up at, if any.
	examSubject Subject
	sitsExams   bool
}

var classmates = [NumClassmates]classmateInfo{
	Pasha:    {annoyance: 3, approachHealthPenalty: 1, daytimeHome: PUNK, hasDaytimeHome: true},
	Diamond:  {annoyance: 2, approachHealthPenalty: 1, daytimeHome: ComputerClass, hasDaytimeHome: true, examSubject: ComputerScience, sitsExams: true},
	RAI:      {annoyance: 8, approachHealthPenalty: 3, examSubject: AlgebraAndNumberTheory, sitsExams: true},
	Misha:    {annoyance: 4, approachHealthPenalty: 2, daytimeHome: PUNK, hasDaytimeHome: true},
	Serj:     {annoyance: 5, approachHealthPenalty: 2, daytimeHome: Mausoleum, hasDaytimeHome: true, examSubject: Calculus, sitsExams: true},
	Sasha:    {annoyance: 2, approachHealthPenalty: 1, daytimeHome: PUNK, hasDaytimeHome: true},
	NiL:      {annoyance: 6, approachHealthPenalty: 3, daytimeHome: PDMI, hasDaytimeHome: true, examSubject: English, sitsExams: true},
	Kolya:    {annoyance: 5, approachHealthPenalty: 2, daytimeHome: Mausoleum, hasDaytimeHome: true, examSubject: AlgebraAndNumberTheory, sitsExams: true},
	Grisha:   {annoyance: 1, approachHealthPenalty: 1, daytimeHome: Mausoleum, hasDaytimeHome: true},
	Andrew:   {annoyance: 7, approachHealthPenalty: 2, examSubject: Calculus, sitsExams: true},
	DJuG:     {annoyance: 9, approachHealthPenalty: 4, examSubject: GeometryAndTopology, sitsExams: true},
	Kuzmenko: {annoyance: 3, approachHealthPenalty: 1, daytimeHome: ComputerClass, hasDaytimeHome: true},
}

// Annoyance returns the classmate's static annoyance score.
func (c Classmate) Annoyance() int { return classmates[c].annoyance }

// ApproachHealthPenalty is the health cost of being approached by this
// classmate during an exam.
func (c Classmate) ApproachHealthPenalty() HealthLevel {
	return classmates[c].approachHealthPenalty
}

// refreshLocation computes where a classmate is this hour. A classmate
// that sits exams shows up wherever their subject is examined right now;
// otherwise they are at their daytime haunt between 9:00 and 19:00.
func (c Classmate) refreshLocation(day *Day, now Time) ClassmateLocation {
	info := &classmates[c]
	if info.sitsExams {
		exam := day.Exam(info.examSubject)
		if exam != NoExam && now >= exam.From() && now < exam.To() {
			return atExam(info.examSubject)
		}
	}
	if info.hasDaytimeHome && now.IsBetween9And19() {
		return at(info.daytimeHome)
	}
	return nowhere()
}

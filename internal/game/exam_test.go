package game

import (
	"testing"

	"github.com/mmheroes/mmheroes-go/internal/random"
)

func TestExamPacking(t *testing.T) {
	cases := []struct {
		subject  Subject
		from, to Time
		location Location
	}{
		{AlgebraAndNumberTheory, 9, 12, PUNK},
		{Calculus, 10, 13, PUNK},
		{GeometryAndTopology, 14, 15, PDMI},
		{ComputerScience, 11, 12, ComputerClass},
		{English, 9, 11, PUNK},
		{PhysicalEducation, 17, 18, PUNK},
	}
	for _, c := range cases {
		e := NewExam(c.subject, c.from, c.to, c.location)
		if e.Subject() != c.subject {
			t.Errorf("subject: got %v, want %v", e.Subject(), c.subject)
		}
		if e.From() != c.from || e.To() != c.to {
			t.Errorf("%v: got %v..%v, want %v..%v", c.subject, e.From(), e.To(), c.from, c.to)
		}
		if e.Location() != c.location {
			t.Errorf("%v: got location %v, want %v", c.subject, e.Location(), c.location)
		}
	}
}

func TestExamPackedEncoding(t *testing.T) {
	// subject | from<<3 | to<<8 | location<<13
	e := NewExam(Calculus, 9, 12, PUNK)
	want := Exam(uint16(Calculus) | 9<<3 | 12<<8 | uint16(PUNK)<<13)
	if e != want {
		t.Fatalf("packed value: got %#04x, want %#04x", uint16(e), uint16(want))
	}
	if NoExam != 0xFFFF {
		t.Fatalf("NoExam: got %#04x", uint16(NoExam))
	}
}

func TestExamInvalidInterval(t *testing.T) {
	for _, c := range []struct{ from, to Time }{{12, 12}, {13, 12}, {20, 25}} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("NewExam(%d..%d): expected panic", c.from, c.to)
				}
			}()
			NewExam(English, c.from, c.to, PUNK)
		}()
	}
}

func TestExamWithOneHourMore(t *testing.T) {
	e := NewExam(PhysicalEducation, 10, 11, PUNK)
	longer := e.WithOneHourMore()
	if longer.From() != 10 || longer.To() != 12 {
		t.Fatalf("got %v..%v, want 10..12", longer.From(), longer.To())
	}
	if longer.Subject() != PhysicalEducation || longer.Location() != PUNK {
		t.Fatalf("subject or location changed: %v at %v", longer.Subject(), longer.Location())
	}
}

func TestNewTimetableInvariants(t *testing.T) {
	for seed := uint64(0); seed < 50; seed++ {
		tt := NewTimetable(random.New(seed))
		for s := Subject(0); s < NumSubjects; s++ {
			info := &Subjects[s]
			days := 0
			for d := 0; d < NumDays; d++ {
				exam := tt.ExamOn(d, s)
				if exam == NoExam {
					continue
				}
				days++
				if exam.Subject() != s {
					t.Fatalf("seed %d: day %d slot holds %v, want %v", seed, d, exam.Subject(), s)
				}
				if exam.From() < 9 || exam.To() > 18 {
					t.Errorf("seed %d: %v exam at %v..%v outside 9..18", seed, s, exam.From(), exam.To())
				}
				dur := Duration(exam.To() - exam.From())
				if dur < info.ExamMinDuration || dur > info.ExamMaxDuration {
					t.Errorf("seed %d: %v exam lasts %d hours, want %d..%d",
						seed, s, dur, info.ExamMinDuration, info.ExamMaxDuration)
				}
				valid := false
				for _, place := range info.ExamPlaces {
					if exam.Location() == place {
						valid = true
					}
				}
				if !valid {
					t.Errorf("seed %d: %v exam at %v, not a candidate place", seed, s, exam.Location())
				}
			}
			if days != info.ExamDays {
				t.Errorf("seed %d: %v scheduled on %d days, want %d", seed, s, days, info.ExamDays)
			}
		}
	}
}

func TestTimetableAddExam(t *testing.T) {
	tt := NewTimetable(random.New(1))
	day := -1
	for d := 0; d < NumDays; d++ {
		if !tt.Day(d).HasExam(ComputerScience) {
			day = d
			break
		}
	}
	if day < 0 {
		t.Skip("no free day for this seed")
	}
	extra := NewExam(ComputerScience, 10, 11, ComputerClass)
	if !tt.AddExam(day, extra) {
		t.Fatal("AddExam on a free slot failed")
	}
	if tt.AddExam(day, extra) {
		t.Fatal("AddExam on an occupied slot succeeded")
	}
	if tt.ExamOn(day, ComputerScience) != extra {
		t.Fatal("added exam not found")
	}
}

func TestSubjectStatusPacking(t *testing.T) {
	st := NewSubjectStatus(GeometryAndTopology, 5)
	if st.Subject() != GeometryAndTopology {
		t.Fatalf("subject: got %v", st.Subject())
	}
	if st.PassedExam() || st.PassedExamDayIndex() != -1 {
		t.Fatal("fresh status claims a passed exam")
	}
	if st.ProblemsDone() != 0 {
		t.Fatalf("fresh status has %d problems done", st.ProblemsDone())
	}

	st.AddProblemsDone(3)
	if st.ProblemsDone() != 3 {
		t.Fatalf("got %d problems done, want 3", st.ProblemsDone())
	}
	st.AddProblemsDone(300)
	if st.ProblemsDone() != 255 {
		t.Fatalf("counter did not saturate: %d", st.ProblemsDone())
	}

	if st.HasLectureNotes() {
		t.Fatal("fresh status has lecture notes")
	}
	st.SetHasLectureNotes()
	if !st.HasLectureNotes() {
		t.Fatal("lecture notes bit not set")
	}

	st.SetPassedExamDayIndex(4)
	if !st.PassedExam() || st.PassedExamDayIndex() != 4 {
		t.Fatalf("passed day: got %d, want 4", st.PassedExamDayIndex())
	}
}

func TestSubjectStatusPassTwicePanics(t *testing.T) {
	st := NewSubjectStatus(English, 0)
	st.SetPassedExamDayIndex(2)
	defer func() {
		if recover() == nil {
			t.Fatal("passing twice did not panic")
		}
	}()
	st.SetPassedExamDayIndex(3)
}

func TestPlayerBits(t *testing.T) {
	var knowledge [NumSubjects]int16
	p := NewPlayer(50, 10, 5, 5, 5, knowledge, 0)

	if _, ok := p.Bits().LastExam(); ok {
		t.Fatal("fresh player has a last exam")
	}
	getters := []func(PlayerBits) bool{
		PlayerBits.HasMmheroesFloppy,
		PlayerBits.HasInternet,
		PlayerBits.IsInvited,
		PlayerBits.Inception,
		PlayerBits.IsEmployedAtTerkom,
		PlayerBits.GotStipend,
		PlayerBits.HasRoundtripTrainTicket,
		PlayerBits.KnowsDJuG,
	}
	setters := []func(){
		p.SetFloppy, p.SetInternet, p.SetInvited, p.SetInception,
		p.SetEmployedAtTerkom, p.SetGotStipend,
		p.SetRoundtripTrainTicket, p.SetKnowsDJuG,
	}
	for i := range setters {
		if getters[i](p.Bits()) {
			t.Fatalf("bit %d set before setter ran", i)
		}
		setters[i]()
		if !getters[i](p.Bits()) {
			t.Fatalf("bit %d not set by its setter", i)
		}
	}
	// None of the setters may have clobbered another bit.
	for i, get := range getters {
		if !get(p.Bits()) {
			t.Errorf("bit %d lost after setting all flags", i)
		}
	}

	p.SetLastExam(Calculus)
	if last, ok := p.Bits().LastExam(); !ok || last != Calculus {
		t.Fatalf("last exam: got %v, %v", last, ok)
	}
	p.SetLastExam(English)
	if last, _ := p.Bits().LastExam(); last != English {
		t.Fatalf("last exam not overwritten: %v", last)
	}
}

func TestGodModeNeverDies(t *testing.T) {
	p := NewPlayerWithStyle(random.New(0), GodMode)
	if !p.Bits().GodMode() {
		t.Fatal("god mode bit not set")
	}
	p.SpendHealth(1000, TorturedByProfessor)
	if p.IsDead() {
		t.Fatal("god mode player died")
	}
	if p.Health != 30 {
		t.Fatalf("god mode health changed: %d", p.Health)
	}
}

func TestFirstCauseOfDeathWins(t *testing.T) {
	var knowledge [NumSubjects]int16
	p := NewPlayer(5, 0, 5, 5, 5, knowledge, 0)
	p.SpendHealth(10, Burnout)
	if !p.IsDead() {
		t.Fatal("player survived a lethal penalty")
	}
	p.Die(Paranoia)
	if cause, _ := p.CauseOfDeath(); cause != Burnout {
		t.Fatalf("cause of death overwritten: %v", cause)
	}
}

func TestNewPlayerKnowledgeInvariant(t *testing.T) {
	var knowledge [NumSubjects]int16
	knowledge[Calculus] = 5
	defer func() {
		if recover() == nil {
			t.Fatal("knowledge >= brain did not panic")
		}
	}()
	NewPlayer(50, 10, 5, 5, 5, knowledge, 0)
}

func TestStateMiscByte(t *testing.T) {
	s := newState(random.New(0), NewPlayerWithStyle(random.New(0), CleverStudent))

	for _, subj := range []Subject{AlgebraAndNumberTheory, Calculus, GeometryAndTopology} {
		if !s.SashaHasLectureNotes(subj) {
			t.Errorf("Sasha should start with %v notes", subj)
		}
	}
	if s.SashaHasLectureNotes(English) {
		t.Error("Sasha has notes for a non-lecture subject")
	}

	s.clearSashaLectureNotes(Calculus)
	if s.SashaHasLectureNotes(Calculus) {
		t.Error("calculus notes not cleared")
	}
	if !s.SashaHasLectureNotes(AlgebraAndNumberTheory) {
		t.Error("clearing calculus clobbered algebra")
	}

	if s.AdditionalCSExams() != 0 {
		t.Fatalf("fresh state has %d extra exams", s.AdditionalCSExams())
	}
	for i := 0; i < 40; i++ {
		s.addAdditionalCSExam()
	}
	if s.AdditionalCSExams() != 0x1F {
		t.Fatalf("extra exam counter did not saturate: %d", s.AdditionalCSExams())
	}
	if !s.SashaHasLectureNotes(AlgebraAndNumberTheory) {
		t.Error("exam counter overflowed into the notes bits")
	}
}

func TestTerkomIncomeBounds(t *testing.T) {
	e := &Engine{rng: random.New(7)}
	e.state.Player = NewPlayerWithStyle(random.New(7), SociableStudent)
	for i := 0; i < 200; i++ {
		income := e.terkomIncome()
		if income < 1 || income > 4 {
			t.Fatalf("income %d outside 1..4", income)
		}
	}
}

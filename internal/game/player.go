package game

import (
	"fmt"

	"github.com/mmheroes/mmheroes-go/internal/random"
)

// PlayerBits packs the player's boolean state into 16 bits:
//
//	bit  0      has the MMHEROES floppy
//	bit  1      has internet access
//	bit  2      invited by the neighbor
//	bit  3      inception (dreaming inside a dream)
//	bit  4      employed at TERKOM
//	bit  5      got the stipend
//	bit  6      has a roundtrip train ticket
//	bit  7      knows DJuG
//	bits 8..10  last exam subject (7 = none)
//	bit  11     god mode
type PlayerBits uint16

const (
	bitFloppy PlayerBits = 1 << iota
	bitInternet
	bitInvited
	bitInception
	bitEmployed
	bitStipend
	bitTicket
	bitKnowsDJuG
)

const (
	lastExamShift      = 8
	lastExamMask       = 0x7 << lastExamShift
	bitGodMode         = PlayerBits(1 << 11)
	lastExamNone       = PlayerBits(noSubject << lastExamShift)
)

// HasMmheroesFloppy reports whether the player owns the MMHEROES floppy.
func (b PlayerBits) HasMmheroesFloppy() bool { return b&bitFloppy != 0 }

// HasInternet reports whether the player has internet access.
func (b PlayerBits) HasInternet() bool { return b&bitInternet != 0 }

// IsInvited reports whether the neighbor's invitation is pending.
func (b PlayerBits) IsInvited() bool { return b&bitInvited != 0 }

// Inception reports whether the player is dreaming inside a dream.
func (b PlayerBits) Inception() bool { return b&bitInception != 0 }

// IsEmployedAtTerkom reports whether the player works at TERKOM.
func (b PlayerBits) IsEmployedAtTerkom() bool { return b&bitEmployed != 0 }

// GotStipend reports whether Pasha already handed out the stipend.
func (b PlayerBits) GotStipend() bool { return b&bitStipend != 0 }

// HasRoundtripTrainTicket reports whether a ticket to PDMI is held.
func (b PlayerBits) HasRoundtripTrainTicket() bool { return b&bitTicket != 0 }

// KnowsDJuG reports whether the player has met DJuG.
func (b PlayerBits) KnowsDJuG() bool { return b&bitKnowsDJuG != 0 }

// GodMode reports whether the game runs with all stats boosted.
func (b PlayerBits) GodMode() bool { return b&bitGodMode != 0 }

// LastExam returns the most recent exam subject, or ok=false.
func (b PlayerBits) LastExam() (Subject, bool) {
	v := b & lastExamMask >> lastExamShift
	if v == noSubject {
		return 0, false
	}
	return Subject(v), true
}

// Player is the full student state.
type Player struct {
	status [NumSubjects]SubjectStatus
	bits   PlayerBits

	Garlic int

	Health   HealthLevel
	Money    Money
	Brain    BrainLevel
	Stamina  StaminaLevel
	Charisma CharismaLevel

	causeOfDeath    CauseOfDeath
	hasCauseOfDeath bool
}

// NewPlayer constructs a player, verifying the construction invariant
// that per-subject knowledge stays below the brain level.
func NewPlayer(
	health HealthLevel,
	money Money,
	brain BrainLevel,
	stamina StaminaLevel,
	charisma CharismaLevel,
	knowledge [NumSubjects]int16,
	bits PlayerBits,
) Player {
	p := Player{
		bits:     bits | lastExamNone,
		Health:   health,
		Money:    money,
		Brain:    brain,
		Stamina:  stamina,
		Charisma: charisma,
	}
	for s := Subject(0); s < NumSubjects; s++ {
		if knowledge[s] >= int16(brain) {
			panic(fmt.Sprintf("game: initial %v knowledge %d not below brain %d",
				s, knowledge[s], brain))
		}
		p.status[s] = NewSubjectStatus(s, knowledge[s])
	}
	return p
}

// PlayStyle selects the initial-parameter preset.
type PlayStyle int

const (
	RandomStudent PlayStyle = iota
	CleverStudent
	ImpudentStudent
	SociableStudent
	GodMode

	// NumPlayStyles counts the regular presets; GodMode is offered only
	// in god mode.
	NumPlayStyles = 4
)

func (s PlayStyle) String() string {
	switch s {
	case RandomStudent:
		return "an ordinary student"
	case CleverStudent:
		return "a clever student"
	case ImpudentStudent:
		return "an impudent student"
	case SociableStudent:
		return "a sociable student"
	case GodMode:
		return "GOD mode"
	default:
		return "???"
	}
}

// NewPlayerWithStyle rolls a fresh player for a play style.
func NewPlayerWithStyle(rng *random.Rng, style PlayStyle) Player {
	health := HealthLevel(rng.InRangeInclusive(40, 55))
	var money Money
	var brain BrainLevel
	var stamina StaminaLevel
	var charisma CharismaLevel
	var bits PlayerBits

	switch style {
	case RandomStudent:
		money = Money(rng.InRangeInclusive(10, 20))
		brain = BrainLevel(rng.InRangeInclusive(4, 9))
		stamina = StaminaLevel(rng.InRangeInclusive(4, 9))
		charisma = CharismaLevel(rng.InRangeInclusive(4, 9))
	case CleverStudent:
		brain = 10
		stamina = 4
		charisma = 4
	case ImpudentStudent:
		brain = 5
		stamina = 10
		charisma = 6
	case SociableStudent:
		brain = 5
		stamina = 6
		charisma = 10
	case GodMode:
		health = 30
		brain = 30
		stamina = 30
		charisma = 30
		bits |= bitGodMode
	default:
		panic(fmt.Sprintf("game: unknown play style %d", style))
	}

	var knowledge [NumSubjects]int16
	for s := range knowledge {
		knowledge[s] = int16(rng.Index(int(brain)))
	}
	return NewPlayer(health, money, brain, stamina, charisma, knowledge, bits)
}

// Status returns the subject status for reading.
func (p *Player) Status(s Subject) *SubjectStatus { return &p.status[s] }

// Bits returns the packed player flags.
func (p *Player) Bits() PlayerBits { return p.bits }

// Level of the characteristic used when studying a subject: stamina for
// physical education, brain otherwise.
func (p *Player) StudyLevel(s Subject) int16 {
	if s == PhysicalEducation {
		return int16(p.Stamina)
	}
	return int16(p.Brain)
}

func (p *Player) setBit(bit PlayerBits)    { p.bits |= bit }
func (p *Player) SetFloppy()               { p.setBit(bitFloppy) }
func (p *Player) SetInternet()             { p.setBit(bitInternet) }
func (p *Player) SetInvited()              { p.setBit(bitInvited) }
func (p *Player) ClearInvited()            { p.bits &^= bitInvited }
func (p *Player) SetInception()            { p.setBit(bitInception) }
func (p *Player) SetEmployedAtTerkom()     { p.setBit(bitEmployed) }
func (p *Player) SetGotStipend()           { p.setBit(bitStipend) }
func (p *Player) SetRoundtripTrainTicket() { p.setBit(bitTicket) }
func (p *Player) SetKnowsDJuG()            { p.setBit(bitKnowsDJuG) }

// SetLastExam records the most recently attended exam subject.
func (p *Player) SetLastExam(s Subject) {
	p.bits = p.bits&^PlayerBits(lastExamMask) | PlayerBits(s)<<lastExamShift
}

// IsDead reports whether a cause of death is recorded.
func (p *Player) IsDead() bool { return p.hasCauseOfDeath }

// CauseOfDeath returns the recorded cause, or ok=false.
func (p *Player) CauseOfDeath() (CauseOfDeath, bool) {
	return p.causeOfDeath, p.hasCauseOfDeath
}

// Die records the cause of death. The first cause wins.
func (p *Player) Die(cause CauseOfDeath) {
	if p.hasCauseOfDeath {
		return
	}
	p.causeOfDeath = cause
	p.hasCauseOfDeath = true
}

// SpendHealth subtracts a health penalty and records the cause if the
// player does not survive it. In god mode health never drops.
func (p *Player) SpendHealth(penalty HealthLevel, cause CauseOfDeath) {
	if p.bits.GodMode() {
		return
	}
	p.Health -= penalty
	if p.Health <= 0 {
		p.Health = 0
		p.Die(cause)
	}
}

// PassedAllExams reports whether every subject's exam is passed.
func (p *Player) PassedAllExams() bool {
	for s := Subject(0); s < NumSubjects; s++ {
		if !p.status[s].PassedExam() {
			return false
		}
	}
	return true
}

// PassedExamCount counts passed subjects.
func (p *Player) PassedExamCount() int {
	n := 0
	for s := Subject(0); s < NumSubjects; s++ {
		if p.status[s].PassedExam() {
			n++
		}
	}
	return n
}

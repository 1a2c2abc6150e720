package game

// CauseOfDeath enumerates every way the week can end badly.
type CauseOfDeath int

const (
	// TimeOut: the sixth day ended with exams still unpassed.
	TimeOut CauseOfDeath = iota
	// Paranoia: charisma dropped to zero.
	Paranoia
	// Overstudied: studying drained the last health.
	Overstudied
	// StudiedTooWell: the brain gave out above 45 knowledge.
	StudiedTooWell
	// OnTheWayToPUNK: died commuting to the faculty.
	OnTheWayToPUNK
	// OnTheWayToMausoleum: died commuting to the mausoleum.
	OnTheWayToMausoleum
	// OnTheWayToDorm: died commuting home.
	OnTheWayToDorm
	// FellFromStairs: died on the faculty stairs.
	FellFromStairs
	// CouldntLeaveTheComputer: died at the keyboard.
	CouldntLeaveTheComputer
	// CorpseFoundInTheTrain: died riding the train to PDMI.
	CorpseFoundInTheTrain
	// KilledByInspectors: the ticket inspectors were not gentle.
	KilledByInspectors
	// DjugIsDeadly: too many hours near DJuG at PDMI.
	DjugIsDeadly
	// TorturedByProfessor: the exam took the last strength.
	TorturedByProfessor
	// Burnout: earned money at TERKOM until the end.
	Burnout
	// BeerAlcoholism: one beer too many in the mausoleum.
	BeerAlcoholism
	// DrankTooMuch: Kolya's brake fluid.
	DrankTooMuch
	// DrankTooMuchBeer: Grisha's rounds.
	DrankTooMuchBeer
	// TurnedToVegetable: the brain level dropped to nothing.
	TurnedToVegetable
	// SoftwareBug: reserved for paths the engine fails closed on.
	SoftwareBug
)

func (c CauseOfDeath) String() string {
	switch c {
	case TimeOut:
		return "ran out of time"
	case Paranoia:
		return "paranoia got the better of you"
	case Overstudied:
		return "overstudied"
	case StudiedTooWell:
		return "studied too well"
	case OnTheWayToPUNK:
		return "died on the way to PUNK"
	case OnTheWayToMausoleum:
		return "died on the way to the mausoleum"
	case OnTheWayToDorm:
		return "died on the way home"
	case FellFromStairs:
		return "fell from the stairs"
	case CouldntLeaveTheComputer:
		return "couldn't leave the computer"
	case CorpseFoundInTheTrain:
		return "a corpse was found in the train"
	case KilledByInspectors:
		return "killed by ticket inspectors"
	case DjugIsDeadly:
		return "DJuG is deadly"
	case TorturedByProfessor:
		return "tortured to death by the professor"
	case Burnout:
		return "burned out at TERKOM"
	case BeerAlcoholism:
		return "beer alcoholism"
	case DrankTooMuch:
		return "drank too much brake fluid"
	case DrankTooMuchBeer:
		return "drank too much beer"
	case TurnedToVegetable:
		return "turned into a vegetable"
	case SoftwareBug:
		return "killed by a software bug"
	default:
		return "???"
	}
}

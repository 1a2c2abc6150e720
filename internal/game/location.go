package game

// Location is one of the five places the player can be.
type Location uint8

const (
	PUNK Location = iota
	PDMI
	ComputerClass
	Dorm
	Mausoleum
)

// Opening constraints baked into the world.
const (
	ComputerClassClosesAt Time = 20
	TerkomClosesAt        Time = 19
)

func (l Location) String() string {
	switch l {
	case PUNK:
		return "PUNK"
	case PDMI:
		return "PDMI"
	case ComputerClass:
		return "computer class"
	case Dorm:
		return "dormitory"
	case Mausoleum:
		return "mausoleum"
	default:
		return "???"
	}
}

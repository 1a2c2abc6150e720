package game

// The five player characteristics are signed 16-bit quantities. Each has
// a display-only assessment derived from a fixed threshold table.

// HealthLevel is the player's health.
type HealthLevel int16

// Money is the player's cash in rubles.
type Money int16

// BrainLevel measures how much the player can absorb while studying.
type BrainLevel int16

// StaminaLevel measures resistance to the grind.
type StaminaLevel int16

// CharismaLevel measures social standing; dropping to zero is fatal.
type CharismaLevel int16

// HealthAssessment is the display bucket for health.
type HealthAssessment int

const (
	HealthLivingDead HealthAssessment = iota
	HealthBarelyAlive
	HealthPoor
	HealthSoSo
	HealthOkay
	HealthGreat
)

// Assessment buckets health by the fixed thresholds.
func (h HealthLevel) Assessment() HealthAssessment {
	switch {
	case h <= 8:
		return HealthLivingDead
	case h <= 17:
		return HealthBarelyAlive
	case h <= 26:
		return HealthPoor
	case h <= 35:
		return HealthSoSo
	case h <= 44:
		return HealthOkay
	default:
		return HealthGreat
	}
}

func (a HealthAssessment) String() string {
	switch a {
	case HealthLivingDead:
		return "living dead"
	case HealthBarelyAlive:
		return "barely alive"
	case HealthPoor:
		return "poor"
	case HealthSoSo:
		return "so-so"
	case HealthOkay:
		return "okay"
	default:
		return "great"
	}
}

// MoneyAssessment is the display bucket for money.
type MoneyAssessment int

const (
	MoneyBroke MoneyAssessment = iota
	MoneyCoins
	MoneySome
	MoneyDecent
	MoneyLoads
)

// Assessment buckets money by the fixed thresholds.
func (m Money) Assessment() MoneyAssessment {
	switch {
	case m == 0:
		return MoneyBroke
	case m < 15:
		return MoneyCoins
	case m < 50:
		return MoneySome
	case m < 100:
		return MoneyDecent
	default:
		return MoneyLoads
	}
}

func (a MoneyAssessment) String() string {
	switch a {
	case MoneyBroke:
		return "broke"
	case MoneyCoins:
		return "a few coins"
	case MoneySome:
		return "some cash"
	case MoneyDecent:
		return "decent money"
	default:
		return "loads of money"
	}
}

// BrainAssessment is the display bucket for brain.
type BrainAssessment int

const (
	BrainClinical BrainAssessment = iota
	BrainDim
	BrainAverage
	BrainSharp
	BrainGenius
)

// Assessment buckets brain by the fixed thresholds.
func (b BrainLevel) Assessment() BrainAssessment {
	switch {
	case b <= 1:
		return BrainClinical
	case b <= 3:
		return BrainDim
	case b <= 5:
		return BrainAverage
	case b <= 8:
		return BrainSharp
	default:
		return BrainGenius
	}
}

func (a BrainAssessment) String() string {
	switch a {
	case BrainClinical:
		return "clinical case"
	case BrainDim:
		return "dim"
	case BrainAverage:
		return "average"
	case BrainSharp:
		return "sharp"
	default:
		return "genius"
	}
}

// StaminaAssessment is the display bucket for stamina.
type StaminaAssessment int

const (
	StaminaExhausted StaminaAssessment = iota
	StaminaTired
	StaminaEnough
	StaminaPlenty
	StaminaIron
)

// Assessment buckets stamina by the fixed thresholds.
func (s StaminaLevel) Assessment() StaminaAssessment {
	switch {
	case s <= 1:
		return StaminaExhausted
	case s <= 3:
		return StaminaTired
	case s <= 5:
		return StaminaEnough
	case s <= 8:
		return StaminaPlenty
	default:
		return StaminaIron
	}
}

func (a StaminaAssessment) String() string {
	switch a {
	case StaminaExhausted:
		return "exhausted"
	case StaminaTired:
		return "tired"
	case StaminaEnough:
		return "good enough"
	case StaminaPlenty:
		return "plenty"
	default:
		return "iron"
	}
}

// CharismaAssessment is the display bucket for charisma.
type CharismaAssessment int

const (
	CharismaRepellent CharismaAssessment = iota
	CharismaAwkward
	CharismaPlain
	CharismaPleasant
	CharismaMagnetic
)

// Assessment buckets charisma by the fixed thresholds.
func (c CharismaLevel) Assessment() CharismaAssessment {
	switch {
	case c <= 1:
		return CharismaRepellent
	case c <= 3:
		return CharismaAwkward
	case c <= 5:
		return CharismaPlain
	case c <= 8:
		return CharismaPleasant
	default:
		return CharismaMagnetic
	}
}

func (a CharismaAssessment) String() string {
	switch a {
	case CharismaRepellent:
		return "repellent"
	case CharismaAwkward:
		return "awkward"
	case CharismaPlain:
		return "plain"
	case CharismaPleasant:
		return "pleasant"
	default:
		return "magnetic"
	}
}

package contracts

// Classification is the ordinal governance rating of a company
// ⭐ SSOT: 문자열 → enum 매핑은 ParseClassification에서만
type Classification int

const (
	// ClassificationUnknown covers empty cells and any unrecognised label
	ClassificationUnknown Classification = iota
	Weak
	BelowAverage
	Adequate
	Strong
)

// Classifications lists the known ratings worst-to-best
var Classifications = []Classification{Weak, BelowAverage, Adequate, Strong}

var classificationLabels = map[Classification]string{
	Weak:         "Weak",
	BelowAverage: "Below Average",
	Adequate:     "Adequate",
	Strong:       "Strong",
}

// ParseClassification maps a dataset label to a Classification.
// Matching is exact; anything else is ClassificationUnknown.
func ParseClassification(s string) Classification {
	switch s {
	case "Weak":
		return Weak
	case "Below Average":
		return BelowAverage
	case "Adequate":
		return Adequate
	case "Strong":
		return Strong
	default:
		return ClassificationUnknown
	}
}

// String returns the dataset label, or "Unknown"
func (c Classification) String() string {
	if label, ok := classificationLabels[c]; ok {
		return label
	}
	return "Unknown"
}

// Ordinal returns 1..4 for known ratings and 0 for unknown
func (c Classification) Ordinal() int {
	if c < Weak || c > Strong {
		return 0
	}
	return int(c)
}

// Known reports whether c is one of the four ratings
func (c Classification) Known() bool {
	return c.Ordinal() != 0
}

// MarshalText encodes the dataset label
func (c Classification) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText decodes a dataset label; unrecognised labels become ClassificationUnknown
func (c *Classification) UnmarshalText(text []byte) error {
	*c = ParseClassification(string(text))
	return nil
}

// Outcome is performance relative to the benchmark index
type Outcome int

const (
	OutcomeUnknown Outcome = iota
	Better
	Worse
)

// ParseOutcome maps exactly "Better" or "Worse"; anything else is OutcomeUnknown
func ParseOutcome(s string) Outcome {
	switch s {
	case "Better":
		return Better
	case "Worse":
		return Worse
	default:
		return OutcomeUnknown
	}
}

func (o Outcome) String() string {
	switch o {
	case Better:
		return "Better"
	case Worse:
		return "Worse"
	default:
		return "Unknown"
	}
}

// MarshalText encodes the outcome label
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText decodes "Better" or "Worse"; anything else becomes OutcomeUnknown
func (o *Outcome) UnmarshalText(text []byte) error {
	*o = ParseOutcome(string(text))
	return nil
}

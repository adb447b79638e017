package bounds

import "fmt"

// IntervalType is the two-character tag describing endpoint openness of a
// bound: first character for the lower endpoint, second for the upper;
// 'o' excludes the endpoint (strict inequality), 'c' includes it.
type IntervalType string

const (
	// OpenOpen excludes both endpoints: lower < v < upper.
	OpenOpen IntervalType = "oo"
	// OpenClosed excludes the lower endpoint only: lower < v ≤ upper.
	OpenClosed IntervalType = "oc"
	// ClosedOpen excludes the upper endpoint only: lower ≤ v < upper.
	ClosedOpen IntervalType = "co"
	// ClosedClosed includes both endpoints: lower ≤ v ≤ upper.
	ClosedClosed IntervalType = "cc"
)

// Bounds constrains a model parameter to an interval. Upper must exceed
// Lower (see Check). An empty Type means ClosedClosed.
type Bounds struct {
	Lower float64
	Upper float64
	Type  IntervalType
}

// ErrorCase identifies which bound inequality a classified value violates.
// InBounds (the zero value) is the only non-violation.
type ErrorCase int

const (
	// InBounds means the value satisfies both endpoint inequalities.
	InBounds ErrorCase = iota
	// BelowLower means the value is below a closed lower bound.
	BelowLower
	// AtOrBelowLower means the value is at or below an open lower bound.
	AtOrBelowLower
	// AboveUpper means the value is above a closed upper bound.
	AboveUpper
	// AtOrAboveUpper means the value is at or above an open upper bound.
	AtOrAboveUpper
)

// String renders the error case for diagnostics.
func (c ErrorCase) String() string {
	switch c {
	case InBounds:
		return "in bounds"
	case BelowLower:
		return "below lower bound"
	case AtOrBelowLower:
		return "at or below open lower bound"
	case AboveUpper:
		return "above upper bound"
	case AtOrAboveUpper:
		return "at or above open upper bound"
	default:
		return fmt.Sprintf("ErrorCase(%d)", int(c))
	}
}

// Model is the contract a covariance model exposes to bound checking:
// the bounds of its named parameters and read access to their current
// values. This package ships no concrete model.
type Model interface {
	// ArgBounds returns the bounds of every constrained parameter,
	// keyed by parameter name.
	ArgBounds() map[string]Bounds

	// Arg returns the current value of the named parameter.
	Arg(name string) (float64, error)
}

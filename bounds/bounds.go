package bounds

import (
	"fmt"
	"math"
)

// Check reports whether b is a well-formed bound spec: Upper strictly
// exceeds Lower (zero-width intervals are rejected even when closed) and
// Type is one of the four interval tags or empty (meaning ClosedClosed).
// Malformed bounds yield false; Check never returns an error.
func Check(b Bounds) bool {
	if b.Upper <= b.Lower {
		return false
	}
	switch b.Type {
	case "", OpenOpen, OpenClosed, ClosedOpen, ClosedClosed:
		return true
	}

	return false
}

// Classify places val against b and returns the violated inequality, or
// InBounds when none is. An empty Type is treated as ClosedClosed; any
// endpoint character other than 'c' is treated as open.
//
// Both endpoint checks are evaluated unconditionally and a triggered
// upper check overwrites the result of the lower one. For well-formed
// bounds (Check) at most one can trigger, but callers handing over
// inverted bounds get the upper verdict.
func Classify(b Bounds, val float64) ErrorCase {
	typ := b.Type
	if typ == "" {
		typ = ClosedClosed
	}

	res := InBounds
	if len(typ) > 0 && typ[0] == 'c' {
		if val < b.Lower {
			res = BelowLower
		}
	} else if val <= b.Lower {
		res = AtOrBelowLower
	}
	if len(typ) > 1 && typ[1] == 'c' {
		if val > b.Upper {
			res = AboveUpper
		}
	} else if val >= b.Upper {
		res = AtOrAboveUpper
	}

	return res
}

// CheckArg classifies val against the bounds of the named parameter of m.
// An unknown name yields ErrUnknownArg wrapping the name.
func CheckArg(m Model, arg string, val float64) (ErrorCase, error) {
	bnd, ok := m.ArgBounds()[arg]
	if !ok {
		return InBounds, fmt.Errorf("%w: %q", ErrUnknownArg, arg)
	}

	return Classify(bnd, val), nil
}

// CheckModelArg classifies the current value of the named parameter of m,
// read through Model.Arg, against its bounds.
func CheckModelArg(m Model, arg string) (ErrorCase, error) {
	bnd, ok := m.ArgBounds()[arg]
	if !ok {
		return InBounds, fmt.Errorf("%w: %q", ErrUnknownArg, arg)
	}
	val, err := m.Arg(arg)
	if err != nil {
		return InBounds, fmt.Errorf("bounds: reading current value of %q: %w", arg, err)
	}

	return Classify(bnd, val), nil
}

// Default derives a representative value inside b: the midpoint when both
// endpoints are finite, one unit inside the finite endpoint when only one
// is, and 0 when neither is. Default assumes b passed Check and performs
// no ordering validation of its own.
func Default(b Bounds) float64 {
	switch {
	case b.Lower > math.Inf(-1) && b.Upper < math.Inf(1):
		return (b.Lower + b.Upper) / 2
	case b.Lower > math.Inf(-1):
		return b.Lower + 1
	case b.Upper < math.Inf(1):
		return b.Upper - 1
	}

	return 0
}

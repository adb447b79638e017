package anis

import "errors"

// Sentinel errors for anisotropy normalization.
// Use errors.Is to check: errors.Is(err, anis.ErrInvalidRatio)
var (
	// ErrDimension indicates a spatial dimension below 1.
	ErrDimension = errors.New("anis: spatial dimension must be at least 1")
	// ErrEmptyLenScale indicates a length-scale spec with no values.
	ErrEmptyLenScale = errors.New("anis: length-scale spec must contain at least one value")
	// ErrInvalidRatio indicates a derived or supplied anisotropy ratio ≤ 0.
	ErrInvalidRatio = errors.New("anis: anisotropy ratios must be > 0")
)

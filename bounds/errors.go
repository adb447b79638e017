package bounds

import "errors"

// Sentinel errors for bound checking.
// Use errors.Is to check: errors.Is(err, bounds.ErrUnknownArg)
var (
	// ErrUnknownArg indicates a parameter name absent from the model's
	// arg bounds.
	ErrUnknownArg = errors.New("bounds: unknown argument")
)

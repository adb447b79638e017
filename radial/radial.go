package radial

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Factor returns the volume element of n-dimensional spherical coordinates
// evaluated at each radius in r, as a freshly allocated slice of the same
// length. It is the weight for integrating a radially symmetric function
// over dim-dimensional space.
//
// dim must be positive; behavior for dim < 1 is undefined. Radii are
// expected to be non-negative.
func Factor(dim int, r []float64) []float64 {
	fac := make([]float64, len(r))
	switch dim {
	case 1:
		for i := range fac {
			fac[i] = 2.0
		}
	case 2:
		floats.ScaleTo(fac, 2*math.Pi, r)
	case 3:
		floats.MulTo(fac, r, r)
		floats.Scale(4*math.Pi, fac)
	default:
		// general n-sphere surface element
		d := float64(dim)
		c := d * math.Pow(math.Sqrt(math.Pi), d) / math.Gamma(d/2+1)
		for i, ri := range r {
			fac[i] = c * math.Pow(ri, d-1)
		}
	}

	return fac
}

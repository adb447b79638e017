package anis

import "fmt"

// SetAnis expands an anisotropy spec to exactly dim−1 ratios, one per
// transversal axis. When fewer values are supplied, the missing leading
// entries are filled with 1 (isotropic); surplus entries are truncated.
// A nil or empty spec yields a fully isotropic result.
//
// SetAnis performs no positivity validation; SetLenAnis does.
func SetAnis(dim int, anis []float64) []float64 {
	if dim < 1 {
		return nil
	}
	if len(anis) > dim-1 {
		anis = anis[:dim-1]
	}
	out := make([]float64, dim-1)
	fill := (dim - 1) - len(anis)
	for i := range out {
		if i < fill {
			out[i] = 1.0
			continue
		}
		out[i] = anis[i-fill]
	}

	return out
}

// SetLenAnis reconciles a length-scale spec and an anisotropy spec for the
// given dimension, returning the primary length scale (x-direction) and
// the dim−1 anisotropy ratios of the transversal axes.
//
// lenScale holds one or more per-axis length scales; entries beyond dim
// are ignored. With exactly one entry, the ratios come solely from the
// anis spec via SetAnis. With two or more entries, lenScale is padded on
// the right by repeating its last value up to dim, the ratios are derived
// as lenScale[i]/lenScale[0], and anis is ignored entirely.
//
// Every resulting ratio must be strictly positive, otherwise
// ErrInvalidRatio is returned wrapping the full ratio list.
func SetLenAnis(dim int, lenScale, anis []float64) (float64, []float64, error) {
	if dim < 1 {
		return 0, nil, ErrDimension
	}
	if len(lenScale) == 0 {
		return 0, nil, ErrEmptyLenScale
	}

	ls := make([]float64, 0, dim)
	ls = append(ls, lenScale...)
	if len(ls) > dim {
		ls = ls[:dim]
	}
	primary := ls[0]

	var ratios []float64
	if len(ls) == 1 {
		// a single scalar length scale: isotropy is user-specified directly
		ratios = SetAnis(dim, anis)
	} else {
		// multiple explicit scales: anisotropy is a derived quantity
		for len(ls) < dim {
			ls = append(ls, ls[len(ls)-1])
		}
		ratios = make([]float64, dim-1)
		for i := 1; i < dim; i++ {
			ratios[i-1] = ls[i] / ls[0]
		}
	}

	for _, ratio := range ratios {
		if !(ratio > 0) {
			return 0, nil, fmt.Errorf("%w: got %v", ErrInvalidRatio, ratios)
		}
	}

	return primary, ratios, nil
}

// Package anis normalizes length-scale and anisotropy specifications of
// spatial random fields into one canonical form.
//
// 🚀 What is anisotropy here?
//
//	A random field with a single length scale ℓ looks the same in every
//	direction. Anisotropic fields stretch differently along each axis;
//	the convention is one primary length scale (the x-direction) plus
//	dim−1 positive ratios, one per transversal axis:
//	  ℓ_i = ratio_{i−1} · ℓ_x
//
// Users may specify either form:
//   - a single length scale plus explicit anisotropy ratios, or
//   - per-axis length scales, from which the ratios are derived.
//
// The two modes are mutually exclusive: as soon as more than one length
// scale is given, anisotropy becomes a derived quantity and any explicit
// ratios are ignored. SetLenAnis reconciles both modes; SetAnis expands a
// partial ratio spec to the full dim−1 form, filling missing leading
// entries with 1 (isotropic).
//
// ⚙️ Usage:
//
//	import "github.com/srfkit/covmodel/anis"
//
//	// explicit ratios: 3D field, primary ℓ=2, y-axis isotropic, z squashed
//	l, ratios, err := anis.SetLenAnis(3, []float64{2}, []float64{0.5})
//	// l=2, ratios=[1, 0.5]
//
//	// derived ratios: per-axis scales, last value repeated up to dim
//	l, ratios, err = anis.SetLenAnis(3, []float64{2, 4}, nil)
//	// l=2, ratios=[2, 2]
//
// All ratios must be strictly positive; violations surface as
// ErrInvalidRatio carrying the offending ratio list.
package anis

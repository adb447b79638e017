// Package radial computes the volume element of n-dimensional spherical
// coordinates, given as a factor for integrating a radially symmetric
// function over n-dimensional space.
//
// 🚀 What is a radial factor?
//
//	Integrating f(‖x‖) over ℝⁿ reduces to a one-dimensional integral
//	∫ f(r)·w(r) dr, where w(r) is the surface area of the n-sphere of
//	radius r. Factor returns w evaluated at each given radius:
//	  • dim=1 → 2            (two half-lines)
//	  • dim=2 → 2π·r         (circumference)
//	  • dim=3 → 4π·r²        (sphere surface)
//	  • dim≥4 → dim·r^(dim−1)·√π^dim / Γ(dim/2+1)
//
// The low dimensions use their closed forms directly; higher dimensions
// fall back to the general n-sphere formula via the gamma function.
//
// ⚙️ Usage:
//
//	import "github.com/srfkit/covmodel/radial"
//
//	w := radial.Factor(3, []float64{0, 1, 2.5})
//	// w == [0, 4π, 25π]
//
// Complexity: O(len(r)) time, O(len(r)) memory.
package radial

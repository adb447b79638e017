package radial_test

import (
	"testing"

	"github.com/srfkit/covmodel/radial"
)

// benchmarkFactor runs Factor over n radii for the given dimension.
// It resets the timer before entering the loop.
func benchmarkFactor(b *testing.B, dim, n int) {
	r := make([]float64, n)
	for i := range r {
		r[i] = float64(i) * 0.01
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = radial.Factor(dim, r)
	}
}

// BenchmarkFactor_Dim2 benchmarks the vectorized two-dimensional branch.
func BenchmarkFactor_Dim2(b *testing.B) { benchmarkFactor(b, 2, 10_000) }

// BenchmarkFactor_Dim3 benchmarks the vectorized three-dimensional branch.
func BenchmarkFactor_Dim3(b *testing.B) { benchmarkFactor(b, 3, 10_000) }

// BenchmarkFactor_Dim6 benchmarks the general n-sphere branch.
func BenchmarkFactor_Dim6(b *testing.B) { benchmarkFactor(b, 6, 10_000) }

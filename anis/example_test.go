package anis_test

import (
	"fmt"

	"github.com/srfkit/covmodel/anis"
)

// ExampleSetLenAnis demonstrates both specification modes: explicit
// anisotropy ratios versus per-axis length scales.
func ExampleSetLenAnis() {
	// one length scale: ratios taken from the explicit spec
	l, ratios, _ := anis.SetLenAnis(3, []float64{2}, []float64{0.5})
	fmt.Println(l, ratios)

	// per-axis scales: ratios derived, explicit spec ignored
	l, ratios, _ = anis.SetLenAnis(3, []float64{2, 4}, []float64{0.5})
	fmt.Println(l, ratios)
	// Output:
	// 2 [1 0.5]
	// 2 [2 2]
}

package radial_test

import (
	"fmt"

	"github.com/srfkit/covmodel/radial"
)

// ExampleFactor demonstrates the spherical-coordinate volume element in
// three dimensions: the surface of a unit sphere is 4π.
func ExampleFactor() {
	w := radial.Factor(3, []float64{0, 1, 2})
	fmt.Printf("%.4f %.4f %.4f\n", w[0], w[1], w[2])
	// Output:
	// 0.0000 12.5664 50.2655
}

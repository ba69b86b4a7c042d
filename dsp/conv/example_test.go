package conv_test

import (
	"fmt"

	"github.com/cwbudde/algo-denoise/dsp/conv"
)

func ExampleConvolveMode() {
	signal := []float64{1, 2, 3, 4, 5, 4, 3, 2, 1}
	kernel := []float64{0.25, 0.5, 0.25}

	result, _ := conv.ConvolveMode(signal, kernel, conv.ModeSame)

	fmt.Printf("Output length: %d\n", len(result))
	fmt.Printf("Middle values: %.2f, %.2f, %.2f\n", result[3], result[4], result[5])

	// Output:
	// Output length: 9
	// Middle values: 4.00, 4.50, 4.00
}

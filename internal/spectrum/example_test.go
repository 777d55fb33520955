package spectrum_test

import (
	"fmt"

	"spectralcli/internal/spectrum"
	"spectralcli/pkg/contracts/domain"
)

func ExampleResample() {
	curve := domain.Curve{
		Channel:    domain.ChannelReference,
		Wavelength: []float64{400, 500, 600},
		Response:   []float64{0.1, 0.5, 0.3},
	}

	r, err := spectrum.Resample(curve)
	if err != nil {
		fmt.Println(err)
		return
	}
	for i := range r.Grid {
		fmt.Printf("%.2f nm -> %.4f\n", r.Grid[i], r.Values[i])
	}
	// Output:
	// 400.00 nm -> 0.1000
	// 466.67 nm -> 0.3667
	// 533.33 nm -> 0.4333
}

func ExampleNormalize() {
	norm, _ := spectrum.Normalize([]float64{0.2, 0.8, 0.4})
	fmt.Println(norm)
	// Output:
	// [25 100 50]
}

package sdof_test

import (
	"fmt"

	"github.com/cwbudde/algo-rspectra/dsp/sdof"
)

func ExampleSolve() {
	accel := []float64{0, 1, 0, -1, 0}

	p, err := sdof.Solve(accel, 0.25, 1, 0.05)
	if err != nil {
		panic(err)
	}

	fmt.Printf("T=%.2f s, Sv/Sd=%.4f\n", p.Period, p.Sv/p.Sd)

	// Output:
	// T=1.00 s, Sv/Sd=6.2832
}

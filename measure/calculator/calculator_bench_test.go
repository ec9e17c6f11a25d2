package calculator

import (
	"testing"

	"github.com/cwbudde/algo-rspectra/dsp/resample"
	"github.com/cwbudde/algo-rspectra/internal/testutil"
)

func BenchmarkCalculate(b *testing.B) {
	hs := map[string]resample.History{
		"ns": {Time: testutil.IrregularTimes(1, 0.01, 2000), Value: testutil.DeterministicNoise(1, 3, 2000)},
		"ew": {Time: testutil.IrregularTimes(2, 0.01, 2000), Value: testutil.DeterministicNoise(2, 3, 2000)},
	}
	cfg := NewConfig(WithRegularizeDt(0.005))

	for b.Loop() {
		if _, err := Calculate(hs, cfg); err != nil {
			b.Fatal(err)
		}
	}
}

package sdof

import (
	"testing"

	"github.com/cwbudde/algo-rspectra/internal/testutil"
)

func BenchmarkOscillatorPeak(b *testing.B) {
	accel := testutil.DeterministicNoise(1, 1, 4000)
	o, err := NewOscillator(2, 0.05, 0.005)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()

	for b.Loop() {
		_ = o.Peak(accel, Pseudo)
	}
}

func BenchmarkNewOscillator(b *testing.B) {
	for b.Loop() {
		if _, err := NewOscillator(2, 0.05, 0.005); err != nil {
			b.Fatal(err)
		}
	}
}

package motion

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-rspectra/dsp/resample"
	"github.com/cwbudde/algo-rspectra/internal/testutil"
)

func series(t *testing.T, values []float64, dt float64) resample.Series {
	t.Helper()
	s, err := resample.Uniform(values, 0, dt)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestComputeConstant(t *testing.T) {
	m := Compute(series(t, testutil.DC(1, 101), 0.01))

	if m.Samples != 101 {
		t.Fatalf("Samples = %d, want 101", m.Samples)
	}
	checks := []struct {
		name      string
		got, want float64
	}{
		{"Duration", m.Duration, 1},
		{"PGA", m.PGA, 1},
		{"PeakTime", m.PeakTime, 0},
		{"RMS", m.RMS, 1},
		{"AriasIntensity", m.AriasIntensity, math.Pi / (2 * StandardGravity)},
		{"CAV", m.CAV, 1},
		{"SignificantDuration", m.SignificantDuration, 0.9},
	}
	for _, c := range checks {
		if math.Abs(c.got-c.want) > 1e-9 {
			t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}
	if m.ZeroCrossings != 0 {
		t.Errorf("ZeroCrossings = %d, want 0", m.ZeroCrossings)
	}
}

func TestComputeSineCycle(t *testing.T) {
	const dt = 0.001
	m := Compute(series(t, testutil.DeterministicSine(1, dt, 1, 1001), dt))

	if math.Abs(m.PGA-1) > 1e-6 {
		t.Fatalf("PGA = %v, want 1", m.PGA)
	}
	if math.Abs(m.PeakTime-0.25) > dt/2 {
		t.Fatalf("PeakTime = %v, want 0.25", m.PeakTime)
	}
	// ∫sin² over one cycle = 1/2, ∫|sin| = 2/π.
	if want := math.Pi / (2 * StandardGravity) * 0.5; testutil.RelErr(m.AriasIntensity, want) > 1e-5 {
		t.Fatalf("AriasIntensity = %v, want %v", m.AriasIntensity, want)
	}
	if testutil.RelErr(m.CAV, 2/math.Pi) > 1e-5 {
		t.Fatalf("CAV = %v, want %v", m.CAV, 2/math.Pi)
	}
	if testutil.RelErr(m.RMS, math.Sqrt(0.5)) > 1e-2 {
		t.Fatalf("RMS = %v, want %v", m.RMS, math.Sqrt(0.5))
	}
	if m.SignificantDuration <= 0 || m.SignificantDuration >= 1 {
		t.Fatalf("SignificantDuration = %v, want in (0, 1)", m.SignificantDuration)
	}
}

func TestComputeNegativePeak(t *testing.T) {
	m := Compute(series(t, []float64{0, -3, 2, 0}, 0.5))
	if m.PGA != 3 || m.PeakTime != 0.5 {
		t.Fatalf("PGA = %v at %v, want 3 at 0.5", m.PGA, m.PeakTime)
	}
	if m.ZeroCrossings != 1 {
		t.Fatalf("ZeroCrossings = %d, want 1", m.ZeroCrossings)
	}
	// Segments: 0..-3 (1.5 mean), -3..2 crossing (13/10), 2..0 (1 mean).
	want := 0.5 * (1.5 + 13.0/10 + 1)
	if math.Abs(m.CAV-want) > 1e-12 {
		t.Fatalf("CAV = %v, want %v", m.CAV, want)
	}
}

func TestComputeAlternating(t *testing.T) {
	m := Compute(series(t, []float64{1, -1, 1, -1}, 0.1))
	if m.ZeroCrossings != 3 {
		t.Fatalf("ZeroCrossings = %d, want 3", m.ZeroCrossings)
	}
	if m.RMS != 1 {
		t.Fatalf("RMS = %v, want 1", m.RMS)
	}
}

func TestComputeZeroCrossingsThroughZeroSamples(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   int
	}{
		{"through zero sample", []float64{0, 1, 0, -1, 0}, 1},
		{"run of zeros", []float64{2, 0, 0, 0, -2}, 1},
		{"touch and return", []float64{1, 0, 1, 0, 1}, 0},
		{"all zero", []float64{0, 0, 0}, 0},
		{"mixed", []float64{-1, 0, 1, -1, 0, 0, 1}, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := Compute(series(t, tt.values, 0.25))
			if m.ZeroCrossings != tt.want {
				t.Fatalf("ZeroCrossings = %d, want %d", m.ZeroCrossings, tt.want)
			}
		})
	}
}

func TestComputeDegenerate(t *testing.T) {
	if m := Compute(resample.Series{Dt: 0.01}); m != (Measures{}) {
		t.Fatalf("empty: got %+v", m)
	}

	m := Compute(series(t, []float64{-2}, 0.01))
	if m.PGA != 2 || m.RMS != 2 || m.AriasIntensity != 0 || m.Duration != 0 {
		t.Fatalf("single sample: got %+v", m)
	}

	z := Compute(series(t, make([]float64, 50), 0.01))
	if z.PGA != 0 || z.AriasIntensity != 0 || z.SignificantDuration != 0 || z.CAV != 0 {
		t.Fatalf("zero record: got %+v", z)
	}
}

func TestWithGravity(t *testing.T) {
	s := series(t, testutil.DeterministicNoise(3, 1, 200), 0.01)
	base := Compute(s)
	scaled := Compute(s, WithGravity(2*StandardGravity))
	if testutil.RelErr(scaled.AriasIntensity, base.AriasIntensity/2) > 1e-12 {
		t.Fatalf("Arias with 2g = %v, want %v", scaled.AriasIntensity, base.AriasIntensity/2)
	}
	ignored := Compute(s, WithGravity(-1))
	if ignored.AriasIntensity != base.AriasIntensity {
		t.Fatal("non-positive gravity should be ignored")
	}
}

func TestMeanPeriod(t *testing.T) {
	tests := []struct {
		name string
		freq []float64
		amp  []float64
		want float64
	}{
		{name: "single bin", freq: []float64{0.1, 2, 30}, amp: []float64{5, 1, 5}, want: 0.5},
		{name: "two equal bins", freq: []float64{1, 4}, amp: []float64{1, 1}, want: (1 + 0.25) / 2},
		{name: "outside band", freq: []float64{0.1, 25}, amp: []float64{1, 1}, want: 0},
		{name: "empty", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MeanPeriod(tt.freq, tt.amp); math.Abs(got-tt.want) > 1e-12 {
				t.Fatalf("MeanPeriod = %v, want %v", got, tt.want)
			}
		})
	}
}

package rspec

import (
	"errors"
	"slices"
	"testing"

	"github.com/cwbudde/algo-rspectra/dsp/resample"
	"github.com/cwbudde/algo-rspectra/dsp/sdof"
	"github.com/cwbudde/algo-rspectra/internal/testutil"
)

func noiseSeries(t testing.TB, n int, dt float64) resample.Series {
	t.Helper()
	s, err := resample.Uniform(testutil.DeterministicNoise(7, 2, n), 0, dt)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestSweepMatchesSolve(t *testing.T) {
	s := noiseSeries(t, 800, 0.01)
	g, err := NewGrid(0.5, 20, 16, Logarithmic)
	if err != nil {
		t.Fatal(err)
	}

	sp, err := Sweep(s, g, 0.05, WithWorkers(3))
	if err != nil {
		t.Fatal(err)
	}
	if sp.Len() != g.Len() {
		t.Fatalf("Len = %d, want %d", sp.Len(), g.Len())
	}

	for i, f := range g.Frequency {
		want, err := sdof.Solve(s.Values, s.Dt, f, 0.05)
		if err != nil {
			t.Fatal(err)
		}
		got := sp.Point(i)
		if got.Period != want.Period || got.Sd != want.Sd {
			t.Fatalf("index %d: got %+v, want %+v", i, got, want)
		}
		if testutil.RelErr(got.Sv, want.Sv) > 1e-14 || testutil.RelErr(got.Sa, want.Sa) > 1e-14 {
			t.Fatalf("index %d: got %+v, want %+v", i, got, want)
		}
	}
}

func TestSweepIndependentOfWorkers(t *testing.T) {
	s := noiseSeries(t, 500, 0.02)
	g, err := NewGrid(0.1, 25, 37, Logarithmic)
	if err != nil {
		t.Fatal(err)
	}

	ref, err := Sweep(s, g, 0.05, WithWorkers(1))
	if err != nil {
		t.Fatal(err)
	}

	for _, w := range []int{2, 5, 64} {
		sp, err := Sweep(s, g, 0.05, WithWorkers(w))
		if err != nil {
			t.Fatal(err)
		}
		if !slices.Equal(sp.Sd, ref.Sd) || !slices.Equal(sp.Sv, ref.Sv) || !slices.Equal(sp.Sa, ref.Sa) {
			t.Fatalf("workers=%d: spectrum differs from single worker", w)
		}
	}
}

func TestSweepAbsoluteMethod(t *testing.T) {
	s := noiseSeries(t, 400, 0.01)
	g, err := NewGrid(1, 10, 6, Linear)
	if err != nil {
		t.Fatal(err)
	}

	pseudo, err := Sweep(s, g, 0.05)
	if err != nil {
		t.Fatal(err)
	}
	abs, err := Sweep(s, g, 0.05, WithMethod(sdof.Absolute))
	if err != nil {
		t.Fatal(err)
	}

	for i, f := range g.Frequency {
		o, err := sdof.NewOscillator(f, 0.05, s.Dt)
		if err != nil {
			t.Fatal(err)
		}
		want := o.Peak(s.Values, sdof.Absolute)
		if abs.Point(i) != want {
			t.Fatalf("index %d: got %+v, want %+v", i, abs.Point(i), want)
		}
		if testutil.RelErr(abs.Sd[i], pseudo.Sd[i]) > 1e-12 {
			t.Fatalf("index %d: Sd %v vs pseudo %v", i, abs.Sd[i], pseudo.Sd[i])
		}
	}
}

func TestSweepZeroExcitation(t *testing.T) {
	s, err := resample.Uniform(make([]float64, 300), 0, 0.01)
	if err != nil {
		t.Fatal(err)
	}
	g, err := NewGrid(0.1, 50, 12, Logarithmic)
	if err != nil {
		t.Fatal(err)
	}

	for _, m := range []sdof.Method{sdof.Pseudo, sdof.Absolute} {
		sp, err := Sweep(s, g, 0.05, WithMethod(m))
		if err != nil {
			t.Fatal(err)
		}
		for i := range sp.Len() {
			if p := sp.Point(i); p.Sd != 0 || p.Sv != 0 || p.Sa != 0 {
				t.Fatalf("%v index %d: got %+v, want zeros", m, i, p)
			}
		}
	}
}

func TestSweepErrors(t *testing.T) {
	s := noiseSeries(t, 100, 0.01)
	g, err := NewGrid(1, 10, 4, Logarithmic)
	if err != nil {
		t.Fatal(err)
	}

	if _, err := Sweep(s, nil, 0.05); !errors.Is(err, ErrNilGrid) {
		t.Fatalf("nil grid: err = %v", err)
	}

	bad := s
	bad.Dt = 0
	if _, err := Sweep(bad, g, 0.05); !errors.Is(err, resample.ErrInvalidStep) {
		t.Fatalf("zero dt: err = %v", err)
	}

	for _, xi := range []float64{0, -0.1, sdof.MaxDamping} {
		_, err := Sweep(s, g, xi)
		var perr *sdof.ParameterError
		if !errors.As(err, &perr) || !errors.Is(err, sdof.ErrInvalidDamping) {
			t.Fatalf("damping %v: err = %v", xi, err)
		}
	}
}

func TestSpectrumPeakSa(t *testing.T) {
	g, err := NewGrid(1, 4, 4, Linear)
	if err != nil {
		t.Fatal(err)
	}
	sp := newSpectrum(g)
	copy(sp.Sa, []float64{0.2, 0.9, 0.9, 0.1})

	i, v := sp.PeakSa()
	if i != 1 || v != 0.9 {
		t.Fatalf("PeakSa = (%d, %v), want (1, 0.9)", i, v)
	}
	if sp.Grid() != g {
		t.Fatal("Grid() does not return the sweep grid")
	}

	empty := &Spectrum{}
	if i, v := empty.PeakSa(); i != -1 || v != 0 {
		t.Fatalf("empty PeakSa = (%d, %v)", i, v)
	}
}

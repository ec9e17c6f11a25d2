package motion

// Frequency band of the Fourier mean period.
const (
	meanPeriodLow  = 0.25 // Hz
	meanPeriodHigh = 20.0 // Hz
)

// MeanPeriod returns the Fourier mean period
//
//	Tm = Σ(C_i²/f_i) / ΣC_i²,  0.25 Hz ≤ f_i ≤ 20 Hz
//
// of a Fourier amplitude spectrum C sampled at freq. It returns 0 when no
// energy falls inside the band.
func MeanPeriod(freq, amp []float64) float64 {
	var num, den float64
	for i, f := range freq {
		if f < meanPeriodLow || f > meanPeriodHigh || i >= len(amp) {
			continue
		}
		c2 := amp[i] * amp[i]
		num += c2 / f
		den += c2
	}
	if den == 0 {
		return 0
	}
	return num / den
}

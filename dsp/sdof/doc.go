// Package sdof computes the peak response of a damped single-degree-of-freedom
// oscillator to base acceleration.
//
// The relative displacement u of an oscillator with natural frequency f
// (ω = 2πf) and damping ratio ξ under ground acceleration a(t) obeys
//
//	ü + 2ξω·u̇ + ω²·u = -a(t)
//
// Between samples the excitation is taken to vary linearly. For that
// excitation the equation has a closed-form solution, so the state
// (u, u̇) advances by a constant 2×2 transition matrix A plus a load
// matrix B applied to the current and next excitation sample:
//
//	[u, u̇]ᵢ₊₁ = A·[u, u̇]ᵢ + B·[aᵢ, aᵢ₊₁]
//
// (Nigam & Jennings, 1969). A and B depend only on ω, ξ and dt and are
// computed once per [Oscillator]. The recursion is exact for the
// interpolated excitation and unconditionally stable: accuracy depends on how
// well the samples describe the excitation, not on dt·f. Under-, critically-
// and over-damped oscillators all use their own closed forms; damping ratios
// up to [MaxDamping] are accepted.
//
// Two response conventions are available through [Method]:
//
//   - [Pseudo]: Sd = max|u|, Sv = ω·Sd, Sa = ω²·Sd (the default)
//   - [Absolute]: Sd = max|u|, Sv = max|u̇|, Sa = max|ü + a|
package sdof

// Package analysis inspects recorded swing traces.
//
//   - [PowerSpectrum]: magnitude spectrum of a trace via go-dsp
//   - [DominantPeriod]: strongest period in ticks
//   - [SwingPeriod]: analytic period of the bang-bang oscillator
//   - [NewPhasePortrait]: angle against per-tick angular velocity
//
// A trace whose spectral period disagrees with the analytic one usually
// means the rig was retuned mid-run:
//
//	got := analysis.DominantPeriod(result.Swing())
//	want := analysis.SwingPeriod(p.SwingSpeed, p.MaxAngle)
package analysis

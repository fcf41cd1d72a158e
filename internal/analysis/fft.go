package analysis

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// PowerSpectrum returns the magnitudes of the first half of the spectrum.
// The mean is removed first so bin 0 does not dominate.
func PowerSpectrum(data []float64) []float64 {
	if len(data) < 2 {
		return []float64{}
	}

	mean := 0.0
	for _, v := range data {
		mean += v
	}
	mean /= float64(len(data))

	centered := make([]float64, len(data))
	for i, v := range data {
		centered[i] = v - mean
	}

	spectrum := fft.FFTReal(centered)
	ps := make([]float64, len(spectrum)/2)
	for i := range ps {
		ps[i] = cmplx.Abs(spectrum[i])
	}

	return ps
}

// DominantPeriod returns the period, in samples, of the strongest
// non-DC component. Zero means no periodic content was found.
func DominantPeriod(data []float64) float64 {
	ps := PowerSpectrum(data)
	best, bestMag := 0, 0.0
	for k := 1; k < len(ps); k++ {
		if ps[k] > bestMag {
			best, bestMag = k, ps[k]
		}
	}
	if best == 0 || bestMag < 1e-12 {
		return 0
	}
	return float64(len(data)) / float64(best)
}

// SwingPeriod is the analytic period in ticks of a triangle wave sweeping
// between -maxAngle and +maxAngle at speed radians per tick.
func SwingPeriod(speed, maxAngle float64) float64 {
	if speed <= 0 || maxAngle <= 0 {
		return math.Inf(1)
	}
	return 4 * maxAngle / speed
}

// Frequency converts a period in ticks to hertz at the given frame rate.
func Frequency(periodTicks float64, fps int) float64 {
	if periodTicks <= 0 || math.IsInf(periodTicks, 0) || fps <= 0 {
		return 0
	}
	return float64(fps) / periodTicks
}

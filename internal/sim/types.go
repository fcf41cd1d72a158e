package sim

import "github.com/san-kum/propsim/internal/motion"

type Metric interface {
	Name() string
	Observe(f motion.Frame)
	Value() float64
	Reset()
}

type Observer interface {
	OnFrame(f motion.Frame)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(f motion.Frame)

func (fn ObserverFunc) OnFrame(f motion.Frame) { fn(f) }

type Config struct {
	Frames        int
	ValidateState bool
}

func DefaultConfig() Config {
	return Config{
		Frames:        600,
		ValidateState: true,
	}
}

type Result struct {
	Frames     []motion.Frame
	Metrics    map[string]float64
	StepsTaken int
	Errors     []error
}

// Swing returns the swing angle of every recorded frame.
func (r *Result) Swing() []float64 {
	out := make([]float64, len(r.Frames))
	for i, f := range r.Frames {
		out[i] = f.Swing
	}
	return out
}

// Spin returns the rotor angle of every recorded frame.
func (r *Result) Spin() []float64 {
	out := make([]float64, len(r.Frames))
	for i, f := range r.Frames {
		out[i] = f.Spin
	}
	return out
}

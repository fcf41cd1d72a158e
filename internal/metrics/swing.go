package metrics

import (
	"math"

	"github.com/san-kum/propsim/internal/motion"
	"github.com/san-kum/propsim/internal/sim"
)

// Overshoot is the largest distance the swing angle went past its bound.
type Overshoot struct {
	maxAngle float64
	worst    float64
}

func NewOvershoot(maxAngle float64) *Overshoot {
	return &Overshoot{maxAngle: maxAngle}
}

func (o *Overshoot) Name() string { return "overshoot" }

func (o *Overshoot) Observe(f motion.Frame) {
	o.worst = math.Max(o.worst, math.Abs(f.Swing)-o.maxAngle)
}

func (o *Overshoot) Value() float64 { return o.worst }
func (o *Overshoot) Reset()         { o.worst = 0 }

// Reversals counts direction flips.
type Reversals struct {
	last  motion.Direction
	count int
}

func NewReversals() *Reversals { return &Reversals{} }

func (r *Reversals) Name() string { return "reversals" }

func (r *Reversals) Observe(f motion.Frame) {
	if r.last != 0 && f.Direction != r.last {
		r.count++
	}
	r.last = f.Direction
}

func (r *Reversals) Value() float64 { return float64(r.count) }

func (r *Reversals) Reset() {
	r.last = 0
	r.count = 0
}

// SwingRange is max - min of the observed swing angle.
type SwingRange struct {
	lo, hi float64
	seen   bool
}

func NewSwingRange() *SwingRange { return &SwingRange{} }

func (s *SwingRange) Name() string { return "swing_range" }

func (s *SwingRange) Observe(f motion.Frame) {
	if !s.seen {
		s.lo, s.hi, s.seen = f.Swing, f.Swing, true
		return
	}
	s.lo = math.Min(s.lo, f.Swing)
	s.hi = math.Max(s.hi, f.Swing)
}

func (s *SwingRange) Value() float64 {
	if !s.seen {
		return 0
	}
	return s.hi - s.lo
}

func (s *SwingRange) Reset() { *s = SwingRange{} }

// Defaults returns the metrics recorded for every stored run.
func Defaults(maxAngle float64) []sim.Metric {
	return []sim.Metric{
		NewOvershoot(maxAngle),
		NewReversals(),
		NewSwingRange(),
		NewContainment(maxAngle),
		NewRevolutions(),
	}
}

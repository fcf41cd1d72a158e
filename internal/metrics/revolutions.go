package metrics

import "github.com/san-kum/propsim/internal/motion"

// Revolutions reports how many whole turns the rotor has made since the rig
// was reset, in either direction.
type Revolutions struct {
	turns int
}

func NewRevolutions() *Revolutions {
	return &Revolutions{}
}

func (r *Revolutions) Name() string { return "revolutions" }

func (r *Revolutions) Observe(f motion.Frame) {
	r.turns = f.Turns
	if r.turns < 0 {
		r.turns = -r.turns
	}
}

func (r *Revolutions) Value() float64 { return float64(r.turns) }

func (r *Revolutions) Reset() { r.turns = 0 }

package motion

import "math"

const (
	DefaultSpinSpeed = 0.1
	TwoPi            = 2 * math.Pi
)

// Spin is the rotor's continuous rotation. Angle is kept in [0, 2π); Turns
// counts completed revolutions.
type Spin struct {
	Angle float64
	Speed float64
	Turns int
}

func NewSpin(speed float64) *Spin {
	return &Spin{Speed: speed}
}

func (s *Spin) Tick() float64 {
	s.Angle += s.Speed
	if s.Angle >= 0 && s.Angle < TwoPi {
		return s.Angle
	}

	raw := s.Angle
	a := math.Mod(raw, TwoPi)
	if a < 0 {
		a += TwoPi
	}
	// -tiny + 2π rounds up to 2π
	if a >= TwoPi {
		a = 0
	}
	s.Angle = a
	s.Turns += int(math.Round((raw - a) / TwoPi))
	return s.Angle
}

// Total returns the accumulated rotation without wrapping.
func (s *Spin) Total() float64 {
	return float64(s.Turns)*TwoPi + s.Angle
}

func (s *Spin) Validate() error {
	if math.IsNaN(s.Speed) || math.IsInf(s.Speed, 0) {
		return boundsError("spin_speed", s.Speed, "must be finite")
	}
	return nil
}

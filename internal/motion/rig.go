package motion

import (
	"errors"
	"math"
)

// Params are the constants a rig is created from.
type Params struct {
	SwingSpeed       float64
	MaxAngle         float64
	SpinSpeed        float64
	InitialAngle     float64
	InitialDirection Direction
}

func DefaultParams() Params {
	return Params{
		SwingSpeed:       DefaultSwingSpeed,
		MaxAngle:         DefaultMaxAngle,
		SpinSpeed:        DefaultSpinSpeed,
		InitialDirection: Forward,
	}
}

// Frame is the rig's state after a tick.
type Frame struct {
	Tick      int
	Swing     float64
	Direction Direction
	Spin      float64
	Turns     int // whole rotor turns since reset, negative when spinning backwards
}

func (f Frame) IsValid() bool {
	for _, v := range []float64{f.Swing, f.Spin} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Rig owns the swing oscillator and the rotor spin.
type Rig struct {
	Swing  Oscillator
	Rotor  Spin
	tick   int
	params Params
}

func NewRig(p Params) *Rig {
	r := &Rig{params: p}
	r.Reset()
	return r
}

func (r *Rig) Params() Params { return r.params }

func (r *Rig) Validate() error {
	return errors.Join(r.Swing.Validate(), r.Rotor.Validate())
}

// Step advances both rotations by one tick. Spin goes first, matching the
// order the transforms are applied to the scene.
func (r *Rig) Step() Frame {
	r.Rotor.Tick()
	r.Swing.Tick()
	r.tick++
	return r.Frame()
}

func (r *Rig) Frame() Frame {
	return Frame{
		Tick:      r.tick,
		Swing:     r.Swing.Angle,
		Direction: r.Swing.Direction,
		Spin:      r.Rotor.Angle,
		Turns:     r.Rotor.Turns,
	}
}

func (r *Rig) Ticks() int { return r.tick }

func (r *Rig) Reset() {
	dir := r.params.InitialDirection
	if dir == 0 {
		dir = Forward
	}
	r.Swing = Oscillator{
		Angle:     r.params.InitialAngle,
		Direction: dir,
		Speed:     r.params.SwingSpeed,
		MaxAngle:  r.params.MaxAngle,
	}
	r.Rotor = Spin{Speed: r.params.SpinSpeed}
	r.tick = 0
}

// SetSpeeds changes the per-tick increments without resetting the angles.
func (r *Rig) SetSpeeds(swing, spin float64) {
	r.params.SwingSpeed, r.params.SpinSpeed = swing, spin
	r.Swing.Speed, r.Rotor.Speed = swing, spin
}

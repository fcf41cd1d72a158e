package motion

import "math"

const (
	DefaultSwingSpeed = 0.01
	DefaultMaxAngle   = 0.9
)

// Direction is the sign of the swing's angular velocity.
type Direction int

const (
	Reverse Direction = -1
	Forward Direction = 1
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "+1"
	case Reverse:
		return "-1"
	default:
		return "invalid"
	}
}

// Valid reports whether d is Forward or Reverse.
func (d Direction) Valid() bool { return d == Forward || d == Reverse }

// Oscillator swings an angle back and forth between -MaxAngle and +MaxAngle.
type Oscillator struct {
	Angle     float64
	Direction Direction
	Speed     float64
	MaxAngle  float64
}

func NewOscillator(speed, maxAngle float64) *Oscillator {
	return &Oscillator{
		Direction: Forward,
		Speed:     speed,
		MaxAngle:  maxAngle,
	}
}

func DefaultOscillator() *Oscillator {
	return NewOscillator(DefaultSwingSpeed, DefaultMaxAngle)
}

// Next is the oscillator's transition function. The increment is applied
// first; crossing a bound flips the direction but leaves the angle where it
// landed.
func Next(angle float64, dir Direction, speed, maxAngle float64) (float64, Direction) {
	angle += speed * float64(dir)
	if angle > maxAngle {
		dir = Reverse
	} else if angle < -maxAngle {
		dir = Forward
	}
	return angle, dir
}

// Tick advances one frame and returns the new angle.
func (o *Oscillator) Tick() float64 {
	o.Angle, o.Direction = Next(o.Angle, o.Direction, o.Speed, o.MaxAngle)
	return o.Angle
}

// Bounds returns the envelope the angle can reach, including overshoot.
func (o *Oscillator) Bounds() (lo, hi float64) {
	return -o.MaxAngle - o.Speed, o.MaxAngle + o.Speed
}

func (o *Oscillator) Validate() error {
	switch {
	case math.IsNaN(o.Speed) || math.IsInf(o.Speed, 0) || o.Speed <= 0:
		return boundsError("speed", o.Speed, "must be positive and finite")
	case math.IsNaN(o.MaxAngle) || math.IsInf(o.MaxAngle, 0) || o.MaxAngle <= 0:
		return boundsError("max_angle", o.MaxAngle, "must be positive and finite")
	case math.IsNaN(o.Angle) || math.IsInf(o.Angle, 0):
		return boundsError("angle", o.Angle, "must be finite")
	case !o.Direction.Valid():
		return boundsError("direction", float64(o.Direction), "must be +1 or -1")
	}
	if lo, hi := o.Bounds(); o.Angle < lo || o.Angle > hi {
		return boundsError("angle", o.Angle, "outside swing envelope")
	}
	return nil
}

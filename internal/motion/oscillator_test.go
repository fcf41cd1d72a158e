package motion

import (
	"errors"
	"math"
	"testing"
)

func TestNextAppliesIncrementInDirection(t *testing.T) {
	const speed, maxAngle = DefaultSwingSpeed, DefaultMaxAngle

	for _, dir := range []Direction{Forward, Reverse} {
		for i := -90; i <= 90; i++ {
			angle := float64(i) / 100
			next, _ := Next(angle, dir, speed, maxAngle)
			want := speed * float64(dir)
			if math.Abs((next-angle)-want) > 1e-12 {
				t.Errorf("angle %.2f dir %v: delta %.15f, want %.15f", angle, dir, next-angle, want)
			}
		}
	}
}

func TestNextFlipsOnlyPastBound(t *testing.T) {
	tests := []struct {
		name    string
		angle   float64
		dir     Direction
		wantDir Direction
	}{
		{"inside forward", 0.5, Forward, Forward},
		{"inside reverse", -0.5, Reverse, Reverse},
		{"lands on bound", 0.89, Forward, Forward},
		{"crosses upper", 0.895, Forward, Reverse},
		{"crosses lower", -0.895, Reverse, Forward},
		{"overshot moving back", 0.905, Reverse, Reverse},
		{"below lower moving forward", -0.91, Forward, Forward},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, dir := Next(tt.angle, tt.dir, 0.01, 0.9)
			if dir != tt.wantDir {
				t.Errorf("expected direction %v, got %v", tt.wantDir, dir)
			}
		})
	}
}

func TestOscillatorDoesNotClamp(t *testing.T) {
	o := &Oscillator{Angle: 0.895, Direction: Forward, Speed: 0.01, MaxAngle: 0.9}
	got := o.Tick()

	if got <= 0.9 {
		t.Fatalf("expected overshoot past 0.9, got %.6f", got)
	}
	if o.Direction != Reverse {
		t.Errorf("expected reverse after overshoot, got %v", o.Direction)
	}

	// The next increment starts from the overshot value, not from the bound.
	got = o.Tick()
	if math.Abs(got-0.895) > 1e-12 {
		t.Errorf("expected 0.895 after reversing, got %.15f", got)
	}
}

func TestFirstReversal(t *testing.T) {
	o := DefaultOscillator()

	for tick := 1; tick <= 200; tick++ {
		o.Tick()
		if o.Angle > o.MaxAngle {
			if tick != 90 {
				t.Fatalf("expected first excursion past bound at tick 90, got %d", tick)
			}
			if o.Direction != Reverse {
				t.Fatalf("expected direction to flip on the same tick, got %v", o.Direction)
			}
			return
		}
		if o.Direction != Forward {
			t.Fatalf("direction flipped early at tick %d", tick)
		}
	}
	t.Fatal("angle never exceeded bound")
}

func TestDirectionChangesAtMostOncePerTick(t *testing.T) {
	o := DefaultOscillator()
	prev := o.Direction

	for tick := 1; tick <= 5000; tick++ {
		o.Tick()
		if o.Direction != prev {
			if math.Abs(o.Angle) <= o.MaxAngle {
				t.Fatalf("tick %d: direction changed inside bounds (angle %.6f)", tick, o.Angle)
			}
			if (o.Direction == Reverse) != (o.Angle > 0) {
				t.Fatalf("tick %d: flipped towards the bound it crossed", tick)
			}
		}
		prev = o.Direction
	}
}

func TestLongRunBoundedness(t *testing.T) {
	tests := []struct {
		speed, maxAngle float64
	}{
		{0.01, 0.9},
		{0.03, 0.5},
		{0.2, 1.0},
		{0.7, 0.3},
	}

	for _, tt := range tests {
		o := NewOscillator(tt.speed, tt.maxAngle)
		lo, hi := o.Bounds()
		for tick := 0; tick < 100000; tick++ {
			a := o.Tick()
			if a < lo-1e-9 || a > hi+1e-9 {
				t.Fatalf("speed %.2f max %.2f: angle %.6f escaped [%.6f, %.6f] at tick %d",
					tt.speed, tt.maxAngle, a, lo, hi, tick)
			}
		}
	}
}

func TestOscillatorValidate(t *testing.T) {
	tests := []struct {
		name string
		osc  Oscillator
		ok   bool
	}{
		{"default", *DefaultOscillator(), true},
		{"zero speed", Oscillator{Direction: Forward, Speed: 0, MaxAngle: 0.9}, false},
		{"negative max", Oscillator{Direction: Forward, Speed: 0.01, MaxAngle: -1}, false},
		{"nan angle", Oscillator{Angle: math.NaN(), Direction: Forward, Speed: 0.01, MaxAngle: 0.9}, false},
		{"zero direction", Oscillator{Speed: 0.01, MaxAngle: 0.9}, false},
		{"overshoot allowed", Oscillator{Angle: 0.905, Direction: Reverse, Speed: 0.01, MaxAngle: 0.9}, true},
		{"outside envelope", Oscillator{Angle: 2, Direction: Reverse, Speed: 0.01, MaxAngle: 0.9}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.osc.Validate()
			if tt.ok && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tt.ok {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !errors.Is(err, ErrParameterBounds) {
					t.Errorf("expected ErrParameterBounds, got %v", err)
				}
			}
		})
	}
}

package sim

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/san-kum/propsim/internal/motion"
	"github.com/san-kum/propsim/internal/scene"
)

type countMetric struct {
	count int
	max   float64
}

func (c *countMetric) Name() string { return "count" }
func (c *countMetric) Observe(f motion.Frame) {
	c.count++
	c.max = math.Max(c.max, f.Swing)
}
func (c *countMetric) Value() float64 { return float64(c.count) }
func (c *countMetric) Reset()         { c.count, c.max = 0, 0 }

func TestSimulatorRun(t *testing.T) {
	s := New(motion.NewRig(motion.DefaultParams()), nil)

	result, err := s.Run(context.Background(), Config{Frames: 200, ValidateState: true})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if len(result.Frames) != 201 {
		t.Errorf("expected 201 frames, got %d", len(result.Frames))
	}
	if result.StepsTaken != 200 {
		t.Errorf("expected 200 steps, got %d", result.StepsTaken)
	}

	last := result.Frames[len(result.Frames)-1]
	if last.Tick != 200 || math.Abs(last.Swing-(-0.2)) > 1e-9 || last.Direction != motion.Reverse {
		t.Errorf("unexpected final frame %+v", last)
	}
}

func TestSimulatorInvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		params motion.Params
		cfg    Config
	}{
		{"zero frames", motion.DefaultParams(), Config{Frames: 0}},
		{"negative frames", motion.DefaultParams(), Config{Frames: -5}},
		{"zero swing speed", motion.Params{MaxAngle: 0.9, SpinSpeed: 0.1}, Config{Frames: 10}},
		{"negative bound", motion.Params{SwingSpeed: 0.01, MaxAngle: -1}, Config{Frames: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(motion.NewRig(tt.params), nil)
			if _, err := s.Run(context.Background(), tt.cfg); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestSimulatorMetricsAndObservers(t *testing.T) {
	s := New(motion.NewRig(motion.DefaultParams()), nil)

	metric := &countMetric{}
	s.AddMetric(metric)

	seen := 0
	s.AddObserver(ObserverFunc(func(motion.Frame) { seen++ }))

	result, err := s.Run(context.Background(), Config{Frames: 50})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if result.Metrics["count"] != 50 {
		t.Errorf("expected 50 observations, got %v", result.Metrics["count"])
	}
	if seen != 50 {
		t.Errorf("expected observer to see 50 frames, got %d", seen)
	}
}

func TestSimulatorAppliesToScene(t *testing.T) {
	sc := scene.New(800, 600)
	s := New(motion.NewRig(motion.DefaultParams()), sc)

	result, err := s.Run(context.Background(), Config{Frames: 10})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	last := result.Frames[len(result.Frames)-1]
	if sc.Propeller.Group.Rotation.Y() != last.Swing {
		t.Errorf("expected swing %.6f on scene, got %.6f", last.Swing, sc.Propeller.Group.Rotation.Y())
	}
	if sc.Propeller.Shape.Rotation.Z() != last.Spin {
		t.Errorf("expected spin %.6f on scene, got %.6f", last.Spin, sc.Propeller.Shape.Rotation.Z())
	}
}

func TestSimulatorCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := New(motion.NewRig(motion.DefaultParams()), nil)
	result, err := s.Run(ctx, Config{Frames: 100})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if result == nil || len(result.Frames) != 1 {
		t.Errorf("expected only the initial frame on cancel")
	}
}

func TestSimulatorInvalidState(t *testing.T) {
	p := motion.DefaultParams()
	rig := motion.NewRig(p)
	s := New(rig, nil)

	result, err := s.Run(context.Background(), Config{Frames: 5, ValidateState: true})
	if err != nil || len(result.Errors) != 0 {
		t.Fatalf("unexpected failure on a healthy rig: %v %v", err, result.Errors)
	}

	rig.Swing.Angle = math.Inf(1)
	err = s.RunWithCallback(context.Background(), Config{Frames: 5, ValidateState: true}, func(motion.Frame) bool { return true })
	if err == nil {
		t.Fatal("expected error for infinite angle")
	}
}

func TestRunWithCallbackStops(t *testing.T) {
	s := New(motion.NewRig(motion.DefaultParams()), nil)

	calls := 0
	err := s.RunWithCallback(context.Background(), Config{}, func(f motion.Frame) bool {
		calls++
		return f.Tick < 25
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if calls != 25 {
		t.Errorf("expected 25 calls, got %d", calls)
	}
}

func TestRunWithCallbackTicker(t *testing.T) {
	s := New(motion.NewRig(motion.DefaultParams()), nil)
	tk := NewTicker(1000)
	defer tk.Stop()
	s.SetScheduler(tk)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := s.RunWithCallback(ctx, Config{}, func(motion.Frame) bool { return true })
	if !errors.Is(err, motion.ErrContextCanceled) {
		t.Fatalf("expected ErrContextCanceled, got %v", err)
	}
	if s.Rig().Ticks() == 0 {
		t.Error("expected some ticks before the deadline")
	}
}

func TestEnsemble(t *testing.T) {
	slow := motion.DefaultParams()
	fast := motion.DefaultParams()
	fast.SwingSpeed = 0.03

	e := NewEnsemble([]motion.Params{slow, fast}, func(motion.Params) []Metric {
		return []Metric{&countMetric{}}
	})

	results, err := e.Run(context.Background(), Config{Frames: 100})
	if err != nil {
		t.Fatalf("ensemble failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	for i, r := range results {
		if r.Metrics["count"] != 100 {
			t.Errorf("run %d: expected 100 observations, got %v", i, r.Metrics["count"])
		}
	}
	if results[0].Frames[10].Swing == results[1].Frames[10].Swing {
		t.Error("runs with different speeds should diverge")
	}
}

package sim

import (
	"context"
	"errors"
	"fmt"

	"github.com/san-kum/propsim/internal/motion"
	"github.com/san-kum/propsim/internal/scene"
)

type Simulator struct {
	rig       *motion.Rig
	scene     *scene.Scene
	scheduler Scheduler
	metrics   []Metric
	observers []Observer
}

// New creates a simulator driving rig. The scene may be nil for headless
// runs; when set, every frame is applied to it.
func New(rig *motion.Rig, sc *scene.Scene) *Simulator {
	return &Simulator{
		rig:       rig,
		scene:     sc,
		scheduler: Immediate{},
		metrics:   make([]Metric, 0),
		observers: make([]Observer, 0),
	}
}

func (s *Simulator) AddMetric(m Metric)     { s.metrics = append(s.metrics, m) }
func (s *Simulator) AddObserver(o Observer) { s.observers = append(s.observers, o) }

func (s *Simulator) SetScheduler(sch Scheduler) {
	if sch == nil {
		sch = Immediate{}
	}
	s.scheduler = sch
}

func (s *Simulator) Rig() *motion.Rig { return s.rig }

func (s *Simulator) Run(ctx context.Context, cfg Config) (*Result, error) {
	if err := s.validate(cfg); err != nil {
		return nil, err
	}

	result := &Result{
		Frames:  make([]motion.Frame, 0, cfg.Frames+1),
		Metrics: make(map[string]float64),
		Errors:  make([]error, 0),
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	first := s.rig.Frame()
	result.Frames = append(result.Frames, first)
	s.apply(first)

	for i := 0; i < cfg.Frames; i++ {
		if err := s.scheduler.Next(ctx); err != nil {
			s.collect(result)
			return result, err
		}

		f := s.rig.Step()
		if cfg.ValidateState && !f.IsValid() {
			result.Errors = append(result.Errors, &motion.SimulationError{
				Tick:    f.Tick,
				Frame:   f,
				Wrapped: motion.ErrInvalidState,
			})
			break
		}

		s.apply(f)
		for _, m := range s.metrics {
			m.Observe(f)
		}
		for _, obs := range s.observers {
			obs.OnFrame(f)
		}

		result.Frames = append(result.Frames, f)
		result.StepsTaken++
	}

	s.collect(result)
	return result, nil
}

// RunWithCallback steps until fn returns false, the context ends, or
// cfg.Frames ticks have run. Frames <= 0 runs until stopped.
func (s *Simulator) RunWithCallback(ctx context.Context, cfg Config, fn func(motion.Frame) bool) error {
	if err := s.rig.Validate(); err != nil {
		return err
	}

	for i := 0; cfg.Frames <= 0 || i < cfg.Frames; i++ {
		if err := s.scheduler.Next(ctx); err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return fmt.Errorf("%w: %w", motion.ErrContextCanceled, err)
			}
			return err
		}

		f := s.rig.Step()
		if cfg.ValidateState && !f.IsValid() {
			return &motion.SimulationError{Tick: f.Tick, Frame: f, Wrapped: motion.ErrInvalidState}
		}
		s.apply(f)

		if !fn(f) {
			return nil
		}
	}

	return nil
}

func (s *Simulator) validate(cfg Config) error {
	if cfg.Frames <= 0 {
		return fmt.Errorf("frames must be positive, got %d", cfg.Frames)
	}
	return s.rig.Validate()
}

func (s *Simulator) apply(f motion.Frame) {
	if s.scene != nil {
		s.scene.Apply(f)
	}
}

func (s *Simulator) collect(result *Result) {
	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
}

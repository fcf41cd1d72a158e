package automation

import (
	"context"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/propsim/internal/config"
	"github.com/san-kum/propsim/internal/metrics"
	"github.com/san-kum/propsim/internal/motion"
	"github.com/san-kum/propsim/internal/sim"
	"github.com/san-kum/propsim/internal/storage"
)

// Scenario is a scripted sequence of headless runs.
type Scenario struct {
	Name        string    `yaml:"name"`
	Description string    `yaml:"description"`
	Segments    []Segment `yaml:"segments"`
}

// Segment runs one preset, optionally with some values overridden. Unset
// overrides keep the preset's value.
type Segment struct {
	Preset     string   `yaml:"preset"`
	SwingSpeed *float64 `yaml:"swing_speed"`
	MaxAngle   *float64 `yaml:"max_angle"`
	SpinSpeed  *float64 `yaml:"spin_speed"`
	Frames     int      `yaml:"frames"`
	SaveAs     string   `yaml:"save_as"`
}

// SegmentResult pairs a segment's outcome with the run id it was stored
// under, if any.
type SegmentResult struct {
	Name   string
	RunID  string
	Params motion.Params
	Result *sim.Result
}

func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(scenario.Segments) == 0 {
		return nil, fmt.Errorf("scenario %q has no segments", scenario.Name)
	}

	return &scenario, nil
}

// Config resolves the segment against its preset.
func (s Segment) Config() (*config.Config, error) {
	name := s.Preset
	if name == "" {
		name = "default"
	}
	cfg := config.GetPreset(name)
	if cfg == nil {
		return nil, fmt.Errorf("unknown preset %q", name)
	}

	if s.SwingSpeed != nil {
		cfg.Swing.Speed = *s.SwingSpeed
	}
	if s.MaxAngle != nil {
		cfg.Swing.MaxAngle = *s.MaxAngle
	}
	if s.SpinSpeed != nil {
		cfg.Spin.Speed = *s.SpinSpeed
	}
	if s.Frames > 0 {
		cfg.Frames = s.Frames
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// RunScenario runs every segment in order. Segments with save_as are
// stored when st is non-nil. Progress lines go to out.
func RunScenario(ctx context.Context, scenario *Scenario, st *storage.Store, out io.Writer) ([]SegmentResult, error) {
	results := make([]SegmentResult, 0, len(scenario.Segments))

	for i, seg := range scenario.Segments {
		name := seg.SaveAs
		if name == "" {
			name = seg.Preset
		}
		if name == "" {
			name = "default"
		}
		fmt.Fprintf(out, "Running segment %d/%d: %s\n", i+1, len(scenario.Segments), name)

		cfg, err := seg.Config()
		if err != nil {
			return results, fmt.Errorf("segment %d: %w", i+1, err)
		}

		p := cfg.Params()
		s := sim.New(motion.NewRig(p), nil)
		for _, m := range metrics.Defaults(p.MaxAngle) {
			s.AddMetric(m)
		}

		result, err := s.Run(ctx, sim.Config{Frames: cfg.Frames, ValidateState: true})
		if err != nil {
			return results, fmt.Errorf("segment %d run: %w", i+1, err)
		}

		sr := SegmentResult{Name: name, Params: p, Result: result}
		if st != nil && seg.SaveAs != "" {
			id, err := st.Save(storage.NewMetadata(seg.SaveAs, p, result), result)
			if err != nil {
				return results, fmt.Errorf("segment %d save: %w", i+1, err)
			}
			sr.RunID = id
		}

		results = append(results, sr)
	}

	return results, nil
}

// ParameterSweep varies one rig parameter linearly across Steps runs.
type ParameterSweep struct {
	Base   motion.Params
	Param  string // swing_speed, max_angle or spin_speed
	Min    float64
	Max    float64
	Steps  int
	Frames int
}

type SweepResult struct {
	Value   float64
	Metrics map[string]float64
}

func setParam(p *motion.Params, name string, v float64) error {
	switch name {
	case "swing_speed":
		p.SwingSpeed = v
	case "max_angle":
		p.MaxAngle = v
	case "spin_speed":
		p.SpinSpeed = v
	default:
		return fmt.Errorf("unknown parameter %q", name)
	}
	return nil
}

// RunSweep runs all sweep points concurrently and returns them in order.
func RunSweep(ctx context.Context, sweep *ParameterSweep) ([]SweepResult, error) {
	if sweep.Steps < 2 {
		return nil, fmt.Errorf("sweep needs at least 2 steps, got %d", sweep.Steps)
	}

	step := (sweep.Max - sweep.Min) / float64(sweep.Steps-1)
	values := make([]float64, sweep.Steps)
	params := make([]motion.Params, sweep.Steps)
	for i := range params {
		values[i] = sweep.Min + float64(i)*step
		params[i] = sweep.Base
		if err := setParam(&params[i], sweep.Param, values[i]); err != nil {
			return nil, err
		}
	}

	ens := sim.NewEnsemble(params, func(p motion.Params) []sim.Metric {
		return metrics.Defaults(p.MaxAngle)
	})
	runs, err := ens.Run(ctx, sim.Config{Frames: sweep.Frames, ValidateState: true})
	if err != nil {
		return nil, err
	}

	results := make([]SweepResult, len(runs))
	for i, r := range runs {
		results[i] = SweepResult{Value: values[i], Metrics: r.Metrics}
	}
	return results, nil
}

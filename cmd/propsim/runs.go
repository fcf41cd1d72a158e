package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/propsim/internal/analysis"
	"github.com/san-kum/propsim/internal/automation"
	"github.com/san-kum/propsim/internal/config"
	"github.com/san-kum/propsim/internal/export"
	"github.com/san-kum/propsim/internal/metrics"
	"github.com/san-kum/propsim/internal/motion"
	"github.com/san-kum/propsim/internal/sim"
	"github.com/san-kum/propsim/internal/storage"
)

var metricOrder = []string{"reversals", "overshoot", "swing_range", "containment", "revolutions"}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	p := cfg.Params()
	s := sim.New(motion.NewRig(p), nil)
	for _, m := range metrics.Defaults(p.MaxAngle) {
		s.AddMetric(m)
	}
	if cfg.Paced {
		ticker := sim.NewTicker(cfg.FPS)
		defer ticker.Stop()
		s.SetScheduler(ticker)
	}

	fmt.Printf("running %d frames...\n", cfg.Frames)
	start := time.Now()

	result, err := s.Run(ctx, sim.Config{Frames: cfg.Frames, ValidateState: true})
	if err != nil {
		return err
	}
	for _, e := range result.Errors {
		fmt.Fprintf(os.Stderr, "warning: %v\n", e)
	}

	elapsed := time.Since(start)

	name := preset
	if name == "" {
		name = "swing"
	}
	runID, err := st.Save(storage.NewMetadata(name, p, result), result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("steps: %d\n", result.StepsTaken)
	fmt.Println("\nmetrics:")
	for _, name := range metricOrder {
		fmt.Printf("  %s: %.6f\n", name, result.Metrics[name])
	}

	return nil
}

func runTrace(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rig := motion.NewRig(cfg.Params())
	s := sim.New(rig, nil)
	if cfg.Paced {
		ticker := sim.NewTicker(cfg.FPS)
		defer ticker.Stop()
		s.SetScheduler(ticker)
	}

	row := func(f motion.Frame) {
		fmt.Printf("%d,%s,%d,%s\n", f.Tick,
			strconv.FormatFloat(f.Swing, 'g', -1, 64),
			int(f.Direction),
			strconv.FormatFloat(f.Spin, 'g', -1, 64))
	}

	fmt.Println("tick,angle,direction,spin")
	row(rig.Frame())
	return s.RunWithCallback(ctx, sim.Config{Frames: cfg.Frames, ValidateState: true}, func(f motion.Frame) bool {
		row(f)
		return true
	})
}

func listRuns(cmd *cobra.Command, args []string) error {
	if _, err := resolveConfig(cmd); err != nil {
		return err
	}

	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPRESET\tTIME\tFRAMES\tSPEED\tMAX\tSPIN")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%.4f\t%.3f\t%.4f\n",
			run.ID,
			run.Preset,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Frames,
			run.SwingSpeed,
			run.MaxAngle,
			run.SpinSpeed,
		)
	}

	return w.Flush()
}

// loadRun resolves the configuration, for the data directory, and reads a
// stored run.
func loadRun(cmd *cobra.Command, runID string) (*config.Config, *storage.RunMetadata, []motion.Frame, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, nil, nil, err
	}

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return nil, nil, nil, err
	}

	frames, err := st.LoadFrames(runID)
	if err != nil {
		return nil, nil, nil, err
	}
	if len(frames) == 0 {
		return nil, nil, nil, fmt.Errorf("run %s has no frames", runID)
	}

	return cfg, meta, frames, nil
}

func plotRun(cmd *cobra.Command, args []string) error {
	_, meta, frames, err := loadRun(cmd, args[0])
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("preset: %s\n", meta.Preset)
	fmt.Printf("samples: %d\n\n", len(frames))

	swing := make([]float64, len(frames))
	spin := make([]float64, len(frames))
	for i, f := range frames {
		swing[i] = f.Swing
		spin[i] = f.Spin
	}

	fmt.Println(asciigraph.Plot(swing,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("swing angle (rad)"),
	))
	fmt.Println()
	fmt.Println(asciigraph.Plot(spin,
		asciigraph.Height(6),
		asciigraph.Width(80),
		asciigraph.Caption("rotor angle (rad, wrapped)"),
	))

	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	if _, err := resolveConfig(cmd); err != nil {
		return err
	}

	meta, err := storage.New(dataDir).Load(args[0])
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "id\t%s\n", meta.ID)
	fmt.Fprintf(w, "preset\t%s\n", meta.Preset)
	fmt.Fprintf(w, "timestamp\t%s\n", meta.Timestamp.Format(time.RFC3339))
	fmt.Fprintf(w, "frames\t%d\n", meta.Frames)
	fmt.Fprintf(w, "swing_speed\t%g\n", meta.SwingSpeed)
	fmt.Fprintf(w, "max_angle\t%g\n", meta.MaxAngle)
	fmt.Fprintf(w, "spin_speed\t%g\n", meta.SpinSpeed)
	for _, name := range metricOrder {
		if v, ok := meta.Metrics[name]; ok {
			fmt.Fprintf(w, "%s\t%.6f\n", name, v)
		}
	}
	return w.Flush()
}

func exportCSV(cmd *cobra.Command, args []string) error {
	_, _, frames, err := loadRun(cmd, args[0])
	if err != nil {
		return err
	}
	return storage.WriteFramesCSV(os.Stdout, frames)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	_, meta, frames, err := loadRun(cmd, args[0])
	if err != nil {
		return err
	}
	return storage.ExportJSON(os.Stdout, meta, frames)
}

func analyzeRun(cmd *cobra.Command, args []string) error {
	cfg, meta, frames, err := loadRun(cmd, args[0])
	if err != nil {
		return err
	}

	swing := make([]float64, len(frames))
	for i, f := range frames {
		swing[i] = f.Swing
	}

	fmt.Printf("period analysis: %s\n\n", meta.ID)

	ps := analysis.PowerSpectrum(swing)
	if len(ps) > 8 {
		fmt.Println(asciigraph.Plot(ps[:len(ps)/4],
			asciigraph.Height(12),
			asciigraph.Width(80),
			asciigraph.Caption("power spectrum (swing)"),
		))
		fmt.Println()
	}

	measured := analysis.DominantPeriod(swing)
	expected := analysis.SwingPeriod(meta.SwingSpeed, meta.MaxAngle)
	fmt.Printf("dominant period: %.1f ticks (%.3f hz at %d fps)\n", measured, analysis.Frequency(measured, cfg.FPS), cfg.FPS)
	fmt.Printf("analytic period: %.1f ticks\n", expected)

	rev := analysis.Reversals(frames)
	fmt.Printf("reversals: %d %v\n\n", len(rev), rev)

	fmt.Println("phase portrait (angle vs angle/tick):")
	fmt.Print(analysis.NewPhasePortrait(frames).ToASCII(60, 12))

	return nil
}

func writeSVG(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	var svg string
	if runID, _ := cmd.Flags().GetString("run"); runID != "" {
		_, meta, frames, err := loadRun(cmd, runID)
		if err != nil {
			return err
		}
		svg = export.SwingToSVG(frames, meta.MaxAngle, 800, 300, "#00ccff")
	} else {
		svg = export.CanvasToSVG(export.Still(cfg.Params(), tick, cols, rows), scale)
	}

	if args[0] == "-" {
		_, err = fmt.Println(svg)
		return err
	}
	if err := os.WriteFile(args[0], []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", args[0])
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSPEED\tMAX\tSPIN\tFRAMES")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%.4f\t%.3f\t%.4f\t%d\n", name, p.Swing.Speed, p.Swing.MaxAngle, p.Spin.Speed, p.Frames)
	}
	return w.Flush()
}

func comparePresets(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	header := "NAME"
	for _, name := range metricOrder {
		header += "\t" + name
	}
	fmt.Fprintln(w, header)

	row := func(label string, m map[string]float64) {
		line := label
		for _, name := range metricOrder {
			line += fmt.Sprintf("\t%.4f", m[name])
		}
		fmt.Fprintln(w, line)
	}

	if sweepParam != "" {
		results, err := automation.RunSweep(ctx, &automation.ParameterSweep{
			Base:   cfg.Params(),
			Param:  sweepParam,
			Min:    sweepMin,
			Max:    sweepMax,
			Steps:  sweepSteps,
			Frames: cfg.Frames,
		})
		if err != nil {
			return err
		}
		for _, r := range results {
			row(fmt.Sprintf("%s=%.4f", sweepParam, r.Value), r.Metrics)
		}
		return w.Flush()
	}

	params := make([]motion.Params, len(args))
	for i, name := range args {
		p := config.GetPreset(name)
		if p == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", name, config.ListPresets())
		}
		params[i] = p.Params()
	}

	ens := sim.NewEnsemble(params, func(p motion.Params) []sim.Metric {
		return metrics.Defaults(p.MaxAngle)
	})
	results, err := ens.Run(ctx, sim.Config{Frames: cfg.Frames, ValidateState: true})
	if err != nil {
		return err
	}

	fmt.Printf("comparing %d presets over %d frames\n\n", len(args), cfg.Frames)
	for i, r := range results {
		row(args[i], r.Metrics)
	}
	return w.Flush()
}

func runScenario(cmd *cobra.Command, args []string) error {
	if _, err := resolveConfig(cmd); err != nil {
		return err
	}

	scenario, err := automation.LoadScenario(args[0])
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	fmt.Printf("scenario: %s\n", scenario.Name)
	if scenario.Description != "" {
		fmt.Printf("%s\n", scenario.Description)
	}

	results, err := automation.RunScenario(ctx, scenario, st, os.Stdout)
	if err != nil {
		return err
	}

	fmt.Println()
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SEGMENT\tRUN\tSTEPS\tREVERSALS\tREVOLUTIONS")
	for _, r := range results {
		id := r.RunID
		if id == "" {
			id = "-"
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%.0f\t%.0f\n", r.Name, id, r.Result.StepsTaken,
			r.Result.Metrics["reversals"], r.Result.Metrics["revolutions"])
	}
	return w.Flush()
}

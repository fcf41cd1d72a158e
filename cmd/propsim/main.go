package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/san-kum/propsim/internal/config"
	"github.com/san-kum/propsim/internal/gui"
	"github.com/san-kum/propsim/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string
	swingSpeed float64
	maxAngle   float64
	spinSpeed  float64
	frames     int
	frameRate  int
	paced      bool
	withAudio  bool
	theme      string
	tick       int
	scale      float64
	cols, rows int
	sweepParam string
	sweepMin   float64
	sweepMax   float64
	sweepSteps int
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "propsim",
		Short:        "swinging propeller simulator",
		SilenceUsage: true,
		RunE:         runGUI,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&dataDir, "data", ".propsim", "data directory")
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "use preset configuration")
	pf.Float64Var(&swingSpeed, "speed", config.DefaultConfig().Swing.Speed, "swing increment per tick (rad)")
	pf.Float64Var(&maxAngle, "max-angle", config.DefaultConfig().Swing.MaxAngle, "swing bound (rad)")
	pf.Float64Var(&spinSpeed, "spin", config.DefaultConfig().Spin.Speed, "rotor increment per tick (rad)")
	pf.IntVar(&frames, "frames", config.DefaultFrames, "ticks to simulate")
	pf.IntVar(&frameRate, "fps", config.DefaultFPS, "frame rate")
	pf.BoolVar(&paced, "paced", false, "advance at a fixed rate instead of once per frame")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "open the 3D window",
		RunE:  runGUI,
	}
	guiCmd.Flags().BoolVar(&withAudio, "audio", false, "play the propeller hum")
	rootCmd.Flags().AddFlagSet(guiCmd.Flags())

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "animate the propeller in the terminal",
		RunE:  runLive,
	}
	liveCmd.Flags().StringVar(&theme, "theme", "night", fmt.Sprintf("color theme %v", viz.ThemeNames()))

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run headless and store the frames",
		RunE:  runSimulation,
	}

	traceCmd := &cobra.Command{
		Use:   "trace",
		Short: "print tick, angle, direction and spin for each tick",
		RunE:  runTrace,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot run results",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run frames to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run frames to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	analyzeCmd := &cobra.Command{
		Use:   "analyze [run_id]",
		Short: "period and phase analysis",
		Args:  cobra.ExactArgs(1),
		RunE:  analyzeRun,
	}

	svgCmd := &cobra.Command{
		Use:   "svg [file]",
		Short: "render a still frame, or a stored run's swing trace, to SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  writeSVG,
	}
	svgCmd.Flags().IntVar(&tick, "tick", 0, "tick to render")
	svgCmd.Flags().Float64Var(&scale, "scale", 4, "pixels per braille dot")
	svgCmd.Flags().IntVar(&cols, "cols", 60, "canvas width in cells")
	svgCmd.Flags().IntVar(&rows, "rows", 22, "canvas height in cells")
	svgCmd.Flags().String("run", "", "plot the swing trace of this run instead")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE:  listPresets,
	}

	compareCmd := &cobra.Command{
		Use:   "compare [preset] [preset] ...",
		Short: "run presets side by side and compare metrics",
		Args:  cobra.MinimumNArgs(1),
		RunE:  comparePresets,
	}
	compareCmd.Flags().StringVar(&sweepParam, "sweep", "", "sweep swing_speed, max_angle or spin_speed instead")
	compareCmd.Flags().Float64Var(&sweepMin, "min", 0.3, "sweep start")
	compareCmd.Flags().Float64Var(&sweepMax, "max", 1.2, "sweep end")
	compareCmd.Flags().IntVar(&sweepSteps, "steps", 4, "sweep points")

	scenarioCmd := &cobra.Command{
		Use:   "scenario [file]",
		Short: "run a YAML scenario",
		Args:  cobra.ExactArgs(1),
		RunE:  runScenario,
	}

	rootCmd.AddCommand(guiCmd, liveCmd, runCmd, traceCmd, listCmd, plotCmd, exportCmd,
		exportCSVCmd, exportJSONCmd, analyzeCmd, svgCmd, presetsCmd, compareCmd, scenarioCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveConfig layers the configuration: defaults, then preset, then
// config file, then environment, then any flag the user actually set.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	e, err := config.ParseEnv()
	if err != nil {
		return nil, err
	}

	cfg := config.DefaultConfig()

	name := preset
	if !cmd.Flags().Changed("preset") && e.Preset != "" {
		name = e.Preset
	}
	if name != "" {
		cfg = config.GetPreset(name)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", name, config.ListPresets())
		}
	}

	path := configFile
	if !cmd.Flags().Changed("config") && e.ConfigFile != "" {
		path = e.ConfigFile
	}
	if path != "" {
		cfg, err = config.Load(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	cfg.ApplyEnv(e)

	flags := cmd.Flags()
	if flags.Changed("speed") {
		cfg.Swing.Speed = swingSpeed
	}
	if flags.Changed("max-angle") {
		cfg.Swing.MaxAngle = maxAngle
	}
	if flags.Changed("spin") {
		cfg.Spin.Speed = spinSpeed
	}
	if flags.Changed("frames") {
		cfg.Frames = frames
	}
	if flags.Changed("fps") {
		cfg.FPS = frameRate
	}
	if flags.Changed("paced") {
		cfg.Paced = paced
	}
	if flags.Lookup("audio") != nil && flags.Changed("audio") {
		cfg.Audio = withAudio
	}

	if !flags.Changed("data") {
		dataDir = e.DataDir
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	return gui.Run(cfg)
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	return viz.Run(cfg.Params(), viz.Options{FPS: cfg.FPS, Paced: cfg.Paced, Theme: theme})
}

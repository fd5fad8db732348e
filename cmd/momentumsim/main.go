package main

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/akl-leul/momentumsimu/internal/config"
	"github.com/akl-leul/momentumsimu/internal/door"
	"github.com/akl-leul/momentumsimu/internal/export"
	"github.com/akl-leul/momentumsimu/internal/metrics"
	"github.com/akl-leul/momentumsimu/internal/sim"
	"github.com/akl-leul/momentumsimu/internal/storage"
	"github.com/akl-leul/momentumsimu/internal/store"
	"github.com/akl-leul/momentumsimu/internal/viz"
)

var (
	dataDir       string
	dt            float64
	duration      float64
	doorMass      float64
	doorWidth     float64
	slidingMass   float64
	initialRadius float64
	finalRadius   float64
	slideDuration float64
	omega0        float64
	configFile    string
	preset        string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "momentumsim",
		Short: "angular momentum conservation with two rotating doors",
		Run: func(cmd *cobra.Command, args []string) {
			cfg := config.DefaultConfig()
			if err := viz.Run(cfg.DoorParams(), cfg.Dt); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".momentumsim", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a simulation and persist the result",
		RunE:  runSimulation,
	}
	addParamFlags(runCmd)
	runCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	runCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "write a stored run's states to stdout as CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "write a stored run to stdout as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [run_id] [file]",
		Short: "render a stored run's trace to an SVG chart",
		Args:  cobra.ExactArgs(2),
		RunE:  exportSVG,
	}

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run with live terminal visualization",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			return viz.Run(cfg.DoorParams(), cfg.Dt)
		},
	}
	addParamFlags(liveCmd)
	liveCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	liveCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
		},
	}

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, exportCSVCmd, exportJSONCmd, exportSVGCmd, liveCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addParamFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep")
	cmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "max duration")
	cmd.Flags().Float64Var(&doorMass, "door-mass", config.DefaultDoorMass, "door mass (kg)")
	cmd.Flags().Float64Var(&doorWidth, "door-width", config.DefaultDoorWidth, "door width (m)")
	cmd.Flags().Float64Var(&slidingMass, "sliding-mass", config.DefaultSlidingMass, "sliding mass (kg)")
	cmd.Flags().Float64Var(&initialRadius, "initial-radius", config.DefaultInitialRadius, "initial mass radius (m)")
	cmd.Flags().Float64Var(&finalRadius, "final-radius", config.DefaultFinalRadius, "final mass radius (m)")
	cmd.Flags().Float64Var(&slideDuration, "slide-duration", config.DefaultSlideDuration, "slide duration (s)")
	cmd.Flags().Float64Var(&omega0, "omega", config.DefaultOmega, "initial angular velocity (rad/s)")
}

// resolveConfig layers preset, config file, and explicit flags, flags
// winning.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		c := *p // flags below must not write through to the preset table
		cfg = &c
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("dt") {
		cfg.Dt = dt
	}
	if cmd.Flags().Changed("time") {
		cfg.Duration = duration
	}
	if cmd.Flags().Changed("door-mass") {
		cfg.Params.DoorMass = doorMass
	}
	if cmd.Flags().Changed("door-width") {
		cfg.Params.DoorWidth = doorWidth
	}
	if cmd.Flags().Changed("sliding-mass") {
		cfg.Params.SlidingMass = slidingMass
	}
	if cmd.Flags().Changed("initial-radius") {
		cfg.Params.InitialRadius = initialRadius
	}
	if cmd.Flags().Changed("final-radius") {
		cfg.Params.FinalRadius = finalRadius
	}
	if cmd.Flags().Changed("slide-duration") {
		cfg.Params.SlideDuration = slideDuration
	}
	if cmd.Flags().Changed("omega") {
		cfg.Params.InitialAngularVelocity = omega0
	}

	return cfg, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	params := cfg.DoorParams()
	runner := sim.NewRunner(params)
	for _, m := range metrics.Defaults() {
		runner.AddMetric(m)
	}

	fmt.Println("running door simulation...")
	start := time.Now()

	result, err := runner.Run(context.Background(), sim.Config{Dt: cfg.Dt, Duration: cfg.Duration})
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	runID, err := st.Save(params, sim.Config{Dt: cfg.Dt, Duration: cfg.Duration}, result)
	if err != nil {
		return err
	}

	final := result.States[len(result.States)-1]

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("steps: %d\n", len(result.States))
	fmt.Printf("final phase: %s (t=%.2fs)\n", final.Phase, final.Time)
	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6f\n", name, val)
	}

	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tDT\tDURATION\tDOOR MASS\tSLIDING MASS\tOMEGA0")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%.4fs\t%.2fs\t%.1f\t%.1f\t%.2f\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Dt,
			run.Duration,
			run.Params.DoorMass,
			run.Params.SlidingMass,
			run.Params.InitialAngularVelocity,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	states, err := st.LoadStates(runID)
	if err != nil {
		return err
	}

	if len(states) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("samples: %d\n\n", len(states))

	series := []struct {
		caption string
		extract func(door.State) float64
	}{
		{"door A angle (rad)", func(s door.State) float64 { return s.DoorA.Angle }},
		{"door A angular velocity (rad/s)", func(s door.State) float64 { return s.DoorA.AngularVelocity }},
		{"door A moment of inertia (kg·m²)", func(s door.State) float64 { return s.DoorA.MomentOfInertia }},
		{"sliding mass radius (m)", func(s door.State) float64 { return s.DoorA.MassRadius }},
		{"door B angle (rad)", func(s door.State) float64 { return s.DoorB.Angle }},
		{"door B angular velocity (rad/s)", func(s door.State) float64 { return s.DoorB.AngularVelocity }},
	}

	for _, sp := range series {
		data := make([]float64, len(states))
		for i, s := range states {
			data[i] = sp.extract(s)
		}

		graph := asciigraph.Plot(data,
			asciigraph.Height(8),
			asciigraph.Width(80),
			asciigraph.Caption(sp.caption),
		)
		fmt.Println(graph)
		fmt.Println()
	}

	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	states, err := st.LoadStates(runID)
	if err != nil {
		return err
	}

	if len(states) == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	header := []string{
		"time", "phase",
		"angle_a", "omega_a", "inertia_a", "momentum_a", "mass_radius",
		"angle_b", "omega_b", "inertia_b", "momentum_b",
	}
	if err := w.Write(header); err != nil {
		return err
	}

	f := func(v float64) string { return strconv.FormatFloat(v, 'f', 6, 64) }
	for _, s := range states {
		row := []string{
			f(s.Time), string(s.Phase),
			f(s.DoorA.Angle), f(s.DoorA.AngularVelocity),
			f(s.DoorA.MomentOfInertia), f(s.DoorA.AngularMomentum), f(s.DoorA.MassRadius),
			f(s.DoorB.Angle), f(s.DoorB.AngularVelocity),
			f(s.DoorB.MomentOfInertia), f(s.DoorB.AngularMomentum),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	states, err := st.LoadStates(runID)
	if err != nil {
		return err
	}

	result := &sim.Result{
		States:  states,
		Metrics: meta.Metrics,
	}

	return store.ExportJSONStdout(meta.ID, meta.Params, meta.Dt, result)
}

func exportSVG(cmd *cobra.Command, args []string) error {
	runID, path := args[0], args[1]

	st := storage.New(dataDir)
	states, err := st.LoadStates(runID)
	if err != nil {
		return err
	}

	if err := export.WriteTraceSVG(path, states, 800, 400); err != nil {
		return err
	}

	fmt.Printf("wrote %s\n", path)
	return nil
}

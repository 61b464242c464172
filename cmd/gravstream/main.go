package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/skm-dev/gravstream/internal/config"
	"github.com/skm-dev/gravstream/internal/metrics"
	"github.com/skm-dev/gravstream/internal/phase"
	"github.com/skm-dev/gravstream/internal/sim"
	"github.com/skm-dev/gravstream/internal/solver"
	"github.com/skm-dev/gravstream/internal/storage"
	"github.com/skm-dev/gravstream/internal/tui"
)

var (
	dataDir    string
	configFile string
	solverName string
	dt         float64
	duration   float64
	numBodies  int
	scale      float64
	tolerance  float64
	minDt      float64
	maxDt      float64
	capacity   int
	frameRate  int
	save       bool
	plot       bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gravstream",
		Short: "gravitational n-body simulation lab",
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".gravstream", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "yaml config file")

	runCmd := &cobra.Command{
		Use:   "run [preset]",
		Short: "run a simulation and report conservation metrics",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSimulation,
	}
	runCmd.Flags().StringVar(&solverName, "solver", "rk4", "solver variant")
	runCmd.Flags().Float64Var(&dt, "dt", 0, "timestep override")
	runCmd.Flags().Float64Var(&duration, "time", 10.0, "simulated duration")
	runCmd.Flags().IntVar(&numBodies, "bodies", 3, "body count for parameterized presets")
	runCmd.Flags().Float64Var(&scale, "scale", 1.0, "scale for parameterized presets")
	runCmd.Flags().Float64Var(&tolerance, "tol", 0, "adaptive tolerance override")
	runCmd.Flags().Float64Var(&minDt, "min-dt", 0, "adaptive dt floor override")
	runCmd.Flags().Float64Var(&maxDt, "max-dt", 0, "adaptive dt ceiling override")
	runCmd.Flags().BoolVar(&save, "save", false, "archive the run under the data directory")
	runCmd.Flags().BoolVar(&plot, "plot", true, "plot the energy drift series")

	watchCmd := &cobra.Command{
		Use:   "watch [preset]",
		Short: "stream a simulation into a live terminal view",
		Args:  cobra.MaximumNArgs(1),
		RunE:  watchSimulation,
	}
	watchCmd.Flags().StringVar(&solverName, "solver", "leapfrog", "solver variant")
	watchCmd.Flags().Float64Var(&dt, "dt", 0, "timestep override")
	watchCmd.Flags().IntVar(&numBodies, "bodies", 3, "body count for parameterized presets")
	watchCmd.Flags().Float64Var(&scale, "scale", 1.0, "scale for parameterized presets")
	watchCmd.Flags().IntVar(&capacity, "capacity", sim.DefaultStreamCapacity, "snapshot buffer capacity")
	watchCmd.Flags().IntVar(&frameRate, "fps", 30, "display frame rate")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list canonical configurations",
		Run: func(cmd *cobra.Command, args []string) {
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "PRESET\tSOLVERS\t")
			for _, name := range config.PresetNames() {
				fmt.Fprintf(w, "%s\tany\t\n", name)
			}
			w.Flush()
			fmt.Println("\nsolver variants:")
			for _, k := range solver.Kinds() {
				fmt.Printf("  %s\n", k)
			}
		},
	}

	rootCmd.AddCommand(runCmd, watchCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadConfig(args []string) (*config.Config, error) {
	var cfg *config.Config
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	} else {
		cfg = config.DefaultConfig()
	}

	if len(args) > 0 {
		cfg.Preset = args[0]
	}
	cfg.Solver = solverName
	if dt > 0 {
		cfg.Dt = dt
	}
	cfg.Bodies = numBodies
	cfg.Scale = scale
	if tolerance > 0 {
		cfg.Adaptive.Tolerance = tolerance
	}
	if minDt > 0 {
		cfg.Adaptive.MinDt = minDt
	}
	if maxDt > 0 {
		cfg.Adaptive.MaxDt = maxDt
	}
	return cfg, nil
}

func buildSystem(cfg *config.Config) (*sim.System, float64, error) {
	def, err := cfg.SystemDef()
	if err != nil {
		return nil, 0, err
	}
	kind, err := cfg.SolverKind()
	if err != nil {
		return nil, 0, err
	}
	system, err := sim.New(def, sim.WithSolver(kind), sim.WithAdaptive(cfg.AdaptiveSolverConfig()))
	if err != nil {
		return nil, 0, err
	}
	return system, def.Dt, nil
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}
	system, nominalDt, err := buildSystem(cfg)
	if err != nil {
		return err
	}

	energy := metrics.NewEnergyDrift(system.Force())
	momentum := metrics.NewMomentumDrift(system.Force())
	extent := metrics.NewExtent()
	for _, m := range []metrics.Metric{energy, momentum, extent} {
		system.AddObserver(m)
	}

	snaps := make([]sim.Snapshot, 0, 1024)
	snaps = append(snaps, system.Snapshot())

	for system.Elapsed() < duration {
		if err := system.Step(); err != nil {
			if errors.Is(err, phase.ErrStepUnderflow) {
				fmt.Fprintf(os.Stderr, "run aborted: %v\n", err)
				break
			}
			return err
		}
		snaps = append(snaps, system.Snapshot())
		if system.Crashed() {
			fmt.Fprintf(os.Stderr, "body left the ±%.0f boundary at t=%.3f, stopping\n", sim.Boundary, system.Elapsed())
			break
		}
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "preset\t%s\t\n", cfg.Preset)
	fmt.Fprintf(w, "solver\t%s\t\n", cfg.Solver)
	fmt.Fprintf(w, "elapsed\t%.4f\t\n", system.Elapsed())
	fmt.Fprintf(w, "steps\t%d\t\n", len(snaps)-1)
	fmt.Fprintf(w, "crashed\t%v\t\n", system.Crashed())
	fmt.Fprintf(w, "energy drift\t%.3e\t\n", energy.Value())
	fmt.Fprintf(w, "momentum drift\t%.3e\t\n", momentum.Value())
	fmt.Fprintf(w, "max extent\t%.2f\t\n", extent.Value())
	w.Flush()

	if plot && len(energy.Series()) > 1 {
		fmt.Println("\nenergy drift:")
		fmt.Println(asciigraph.Plot(energy.Series(), asciigraph.Height(10), asciigraph.Width(70)))
	}

	if save {
		store := storage.New(dataDir)
		if err := store.Init(); err != nil {
			return err
		}
		runID, err := store.Save(storage.RunMetadata{
			Preset:   cfg.Preset,
			Solver:   cfg.Solver,
			Dt:       nominalDt,
			Duration: system.Elapsed(),
			Bodies:   len(system.Bodies()),
			Crashed:  system.Crashed(),
			Metrics: map[string]float64{
				energy.Name():   energy.Value(),
				momentum.Name(): momentum.Value(),
				extent.Name():   extent.Value(),
			},
		}, snaps)
		if err != nil {
			return err
		}
		fmt.Printf("\nsaved run %s\n", runID)
	}
	return nil
}

func watchSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}
	system, _, err := buildSystem(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	snaps, err := system.AutoStep(ctx, capacity)
	if err != nil {
		return err
	}
	return tui.Run(cfg.Preset, snaps, cancel, frameRate)
}

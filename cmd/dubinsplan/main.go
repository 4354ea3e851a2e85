// Command dubinsplan plans a path between two configurations and writes it
// out as a trajectory, plots, or an SVG path.
//
// Usage:
//
//	dubinsplan [-config plan.json] [-start x,y,heading] [-goal x,y,heading] [flags]
//
// Headings are in degrees. Flags override the values of the config file.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/sync/errgroup"

	"honnef.co/go/dubins"
	"honnef.co/go/dubins/trajectory"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, "dubinsplan:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("dubinsplan", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configPath = fs.String("config", "", "JSON plan configuration")
		start      Pose
		goal       Pose
		kappa      = fs.Float64("kappa", 0, "maximum curvature")
		sigma      = fs.Float64("sigma", 0, "maximum curvature derivative, 0 for discontinuous curvature")
		strict     = fs.Bool("strict", false, "return precondition violations as errors")
		traj       = fs.String("trajectory", "", "write the aimed trajectory to this file")
		png        = fs.String("png", "", "plot the path to this PNG file")
		curvPNG    = fs.String("curvature-png", "", "plot the curvature profile to this PNG file")
		svg        = fs.String("svg", "", "write the path as SVG path data to this file")
		logLevel   = fs.String("log-level", "", "log level (debug, info, warn, error)")
	)
	fs.Var(&start, "start", "start configuration x,y,heading")
	fs.Var(&goal, "goal", "goal configuration x,y,heading")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = LoadConfig(*configPath); err != nil {
			return err
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "start":
			cfg.Start = start
		case "goal":
			cfg.Goal = goal
		case "kappa":
			cfg.MaxCurvature = *kappa
		case "sigma":
			cfg.MaxCurvatureDerivative = *sigma
		case "strict":
			cfg.Strict = *strict
		case "trajectory":
			cfg.Trajectory = *traj
		case "png":
			cfg.PNG = *png
		case "curvature-png":
			cfg.CurvaturePNG = *curvPNG
		case "svg":
			cfg.SVG = *svg
		case "log-level":
			cfg.LogLevel = *logLevel
		}
	})
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	lvl, _ := cfg.Level()
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: lvl}))
	dubins.SetLogger(logger)
	defer dubins.SetLogger(nil)

	return plan(cfg, logger, stdout)
}

func plan(cfg *PlanConfig, logger *slog.Logger, stdout io.Writer) error {
	planner, err := cfg.Planner()
	if err != nil {
		return fmt.Errorf("failed to create planner: %w", err)
	}
	start, goal := cfg.Start.config(), cfg.Goal.config()

	var (
		path   *dubins.DubinsLikePath
		states []trajectory.State
	)
	if cfg.Trajectory != "" {
		sp, err := trajectory.PlanSmooth(start, goal, cfg.Profile(), planner)
		if err != nil {
			return fmt.Errorf("failed to plan: %w", err)
		}
		if states, err = sp.Aim(); err != nil {
			return fmt.Errorf("failed to sample trajectory: %w", err)
		}
		path = sp.Path
	} else {
		path = planner.Connect(start, goal)
	}

	logger.Info("planned path",
		"kind", path.Kind(),
		"type", path.Type(),
		"length", path.Length(),
		"deflection", path.Deflection(),
		"pieces", path.NumPieces())
	if !dubins.IsPositive(path.Length()) && !start.Equal(goal) {
		logger.Warn("no path found", "start", start, "goal", goal)
	}

	fmt.Fprintf(stdout, "%v %v path of length %g\n", path.Kind(), path.Type(), path.Length())
	for i, piece := range dubins.Pieces(path) {
		fmt.Fprintf(stdout, "%d: %v\n", i, piece)
	}

	// The path is immutable, so the outputs are written concurrently.
	var g errgroup.Group
	if cfg.Trajectory != "" {
		g.Go(func() error {
			if err := writeFile(cfg.Trajectory, func(w io.Writer) error {
				return trajectory.WriteStates(w, states)
			}); err != nil {
				return fmt.Errorf("failed to write trajectory: %w", err)
			}
			logger.Info("wrote trajectory", "file", cfg.Trajectory, "states", len(states))
			return nil
		})
	}
	if cfg.SVG != "" {
		g.Go(func() error {
			if err := writeFile(cfg.SVG, func(w io.Writer) error {
				return dubins.WriteSVG(w, path, cfg.SampleStep, dubins.SVGOptions{MaxPrecision: 6, FlipY: true})
			}); err != nil {
				return fmt.Errorf("failed to write SVG: %w", err)
			}
			return nil
		})
	}
	if cfg.PNG != "" {
		g.Go(func() error {
			cs, err := circles(planner, path.Start().OrientedConfig, path.End().OrientedConfig)
			if err != nil {
				return err
			}
			return savePathPlot(path, cs, cfg.SampleStep, cfg.PNG)
		})
	}
	if cfg.CurvaturePNG != "" {
		g.Go(func() error {
			return saveCurvaturePlot(path, cfg.SampleStep, cfg.CurvaturePNG)
		})
	}
	return g.Wait()
}

func writeFile(name string, write func(io.Writer) error) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

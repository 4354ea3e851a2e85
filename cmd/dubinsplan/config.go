package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"honnef.co/go/dubins"
	"honnef.co/go/dubins/trajectory"
)

// Pose is a configuration as written in config files. The heading is in
// degrees.
type Pose struct {
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Heading float64 `json:"heading"`
}

func (p Pose) config() dubins.OrientedConfig {
	return dubins.OrPt(p.X, p.Y, dubins.Deg2Rad(p.Heading))
}

// String and Set make Pose a flag.Value, parsed from "x,y,heading".
func (p *Pose) String() string {
	return fmt.Sprintf("%g,%g,%g", p.X, p.Y, p.Heading)
}

func (p *Pose) Set(s string) error {
	fields := strings.Split(s, ",")
	if len(fields) != 3 {
		return fmt.Errorf("pose %q: want x,y,heading", s)
	}
	var vals [3]float64
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return fmt.Errorf("pose %q: %w", s, err)
		}
		vals[i] = v
	}
	*p = Pose{X: vals[0], Y: vals[1], Heading: vals[2]}
	return nil
}

// PlanConfig describes a planning run.
type PlanConfig struct {
	Start Pose `json:"start"`
	Goal  Pose `json:"goal"`

	MaxCurvature float64 `json:"max_curvature"`
	// A zero curvature derivative bound selects discontinuous paths.
	MaxCurvatureDerivative float64 `json:"max_curvature_derivative,omitempty"`
	Strict                 bool    `json:"strict,omitempty"`

	// The velocity profile is only needed to write a trajectory.
	TimeStep        float64 `json:"time_step,omitempty"`
	MaxVelocity     float64 `json:"max_velocity,omitempty"`
	MaxAcceleration float64 `json:"max_acceleration,omitempty"`
	MaxDeceleration float64 `json:"max_deceleration,omitempty"`

	SampleStep   float64 `json:"sample_step,omitempty"`
	Trajectory   string  `json:"trajectory,omitempty"`
	PNG          string  `json:"png,omitempty"`
	CurvaturePNG string  `json:"curvature_png,omitempty"`
	SVG          string  `json:"svg,omitempty"`

	LogLevel string `json:"log_level,omitempty"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *PlanConfig {
	return &PlanConfig{
		Goal:         Pose{X: 4},
		MaxCurvature: 1,
		SampleStep:   0.05,
		LogLevel:     "info",
	}
}

// LoadConfig reads a JSON configuration. Fields missing from the file keep
// their default value.
func LoadConfig(path string) (*PlanConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024 // 1MB
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks the bounds and the consistency of the outputs.
func (c *PlanConfig) Validate() error {
	if !(c.MaxCurvature > 0) || math.IsInf(c.MaxCurvature, 0) {
		return fmt.Errorf("max_curvature must be strictly positive, got %g", c.MaxCurvature)
	}
	if c.MaxCurvatureDerivative < 0 {
		return fmt.Errorf("max_curvature_derivative must be non-negative, got %g", c.MaxCurvatureDerivative)
	}
	if c.SampleStep <= 0 {
		return fmt.Errorf("sample_step must be strictly positive, got %g", c.SampleStep)
	}
	if c.Trajectory != "" {
		if err := c.Profile().Validate(); err != nil {
			return fmt.Errorf("trajectory output needs a velocity profile: %w", err)
		}
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Profile returns the velocity profile.
func (c *PlanConfig) Profile() trajectory.Profile {
	return trajectory.Profile{
		MaxVel:   c.MaxVelocity,
		MaxAcc:   c.MaxAcceleration,
		MaxDec:   c.MaxDeceleration,
		TimeStep: c.TimeStep,
	}
}

// Level parses LogLevel.
func (c *PlanConfig) Level() (slog.Level, error) {
	var lvl slog.Level
	if c.LogLevel == "" {
		return slog.LevelInfo, nil
	}
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}

// Planner returns the planner selected by the bounds.
func (c *PlanConfig) Planner() (dubins.Planner, error) {
	mode := dubins.Permissive
	if c.Strict {
		mode = dubins.Strict
	}
	if c.MaxCurvatureDerivative > 0 {
		p, err := dubins.NewFSC(c.MaxCurvature, c.MaxCurvatureDerivative, dubins.WithMode(mode))
		if err != nil {
			return nil, err
		}
		return p, nil
	}
	p, err := dubins.NewDubins(c.MaxCurvature, dubins.WithMode(mode))
	if err != nil {
		return nil, err
	}
	return p, nil
}

var errNoCircles = errors.New("planner has no turning circles")

// circles returns the turning circles of the start and goal configurations.
func circles(p dubins.Planner, start, goal dubins.OrientedConfig) ([]dubins.Circle, error) {
	type circler interface {
		Circles(q dubins.OrientedConfig, goal bool) (left, right dubins.Circle)
	}
	c, ok := p.(circler)
	if !ok {
		return nil, errNoCircles
	}
	sl, sr := c.Circles(start, false)
	gl, gr := c.Circles(goal, true)
	return []dubins.Circle{sl, sr, gl, gr}, nil
}

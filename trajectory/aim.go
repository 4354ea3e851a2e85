package trajectory

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"honnef.co/go/dubins"
)

// Profile bounds the translation velocity of a vehicle.
type Profile struct {
	// MaxVel is the cruise velocity.
	MaxVel float64
	// MaxAcc and MaxDec are the magnitudes of the acceleration used to
	// reach the cruise velocity and to stop.
	MaxAcc float64
	MaxDec float64
	// TimeStep is the duration between two consecutive states.
	TimeStep float64
}

// Validate reports an error if one of the bounds isn't strictly positive.
func (p Profile) Validate() error {
	var errs []error
	check := func(name string, v float64) {
		if !(v > 0) || math.IsInf(v, 0) {
			errs = append(errs, fmt.Errorf("%s must be strictly positive, got %g", name, v))
		}
	}
	check("max velocity", p.MaxVel)
	check("max acceleration", p.MaxAcc)
	check("max deceleration", p.MaxDec)
	check("time step", p.TimeStep)
	return errors.Join(errs...)
}

// AccDist returns the distance needed to reach the cruise velocity.
func (p Profile) AccDist() float64 { return p.MaxVel * p.MaxVel / (2 * p.MaxAcc) }

// DecDist returns the distance needed to stop from the cruise velocity.
func (p Profile) DecDist() float64 { return p.MaxVel * p.MaxVel / (2 * p.MaxDec) }

// Extend returns the path made of a straight lead-in segment of length
// lead ending at the start of p, p itself, and a straight lead-out segment
// of length trail starting at the end of p.
func Extend(p dubins.Path, lead, trail float64) (*dubins.ArrayPaths, error) {
	in := dubins.Straight(p.Start().Forward(-lead), lead)
	out := dubins.Straight(p.End().OrientedConfig, trail)
	return dubins.ArrayOf([]dubins.Path{in, p, out})
}

// Plan is a path planned for a vehicle that accelerates in a straight line,
// follows the path at cruise velocity, then brakes in a straight line.
type Plan struct {
	// Path connects the configuration reached after accelerating to the
	// one where braking starts.
	Path *dubins.DubinsLikePath
	// Extended is Path with its straight lead-in and lead-out segments.
	Extended *dubins.ArrayPaths
	Profile  Profile
}

// PlanSmooth plans a path from start to goal, leaving room at both ends to
// accelerate and brake along straight segments.
func PlanSmooth(start, goal dubins.OrientedConfig, prof Profile, planner dubins.Planner) (*Plan, error) {
	if err := prof.Validate(); err != nil {
		return nil, fmt.Errorf("invalid profile: %w", err)
	}
	acc, dec := prof.AccDist(), prof.DecDist()
	path := planner.Connect(start.Forward(acc), goal.Forward(-dec))
	ext, err := Extend(path, acc, dec)
	if err != nil {
		return nil, err
	}
	l := dubins.Logger()
	if l.Enabled(context.Background(), slog.LevelDebug) {
		l.Debug("planned smooth path",
			"type", path.Type(), "length", path.Length(), "acc_dist", acc, "dec_dist", dec)
	}
	return &Plan{Path: path, Extended: ext, Profile: prof}, nil
}

// Length returns the total distance covered, including the lead-in and
// lead-out segments.
func (p *Plan) Length() float64 { return p.Extended.Length() }

// Aim returns the trajectory of the plan, sampled every time step.
func (p *Plan) Aim() ([]State, error) {
	return Aim(p.Path, p.Profile)
}

// Aim returns the states of a vehicle accelerating along the straight line
// ending at the start of path, following path at the cruise velocity, then
// braking along the straight line starting at its end. While following
// path, the rotation velocity is the product of the curvature and the
// translation velocity.
func Aim(path dubins.Path, prof Profile) ([]State, error) {
	if err := prof.Validate(); err != nil {
		return nil, fmt.Errorf("invalid profile: %w", err)
	}
	var (
		dt    = prof.TimeStep
		dt2   = dt / 2
		l     = path.Length()
		start = path.Start().OrientedConfig
		end   = path.End().OrientedConfig

		states []State
		t      float64
		v      float64
		d      = -prof.AccDist()
	)

	dv := prof.MaxAcc * dt
	for d < 0 {
		states = append(states, State{Date: t, Config: start.Forward(d), TransVel: v})
		t += dt
		d += v*dt + dv*dt2
		v += dv
	}
	d -= (v - prof.MaxVel) * dt2
	v = prof.MaxVel

	for d < l {
		q, err := path.At(d)
		if err != nil {
			return nil, err
		}
		states = append(states, State{Date: t, Config: q.OrientedConfig, TransVel: v, RotVel: q.Curvature() * v})
		t += dt
		d += v * dt
	}
	d -= l
	lost := math.Sqrt(2 * d * prof.MaxDec)
	v -= lost
	d -= lost * dt2

	dv = prof.MaxDec * dt
	for v > 0 {
		states = append(states, State{Date: t, Config: end.Forward(d), TransVel: v})
		t += dt
		d += v*dt - dv*dt2
		v -= dv
	}
	states = append(states, State{Date: t, Config: end.Forward(prof.DecDist())})
	return states, nil
}

// Package trajectory converts paths into timed trajectories and reads and
// writes them as text.
//
// The text format starts with a header line, followed by one state per line
// made of six whitespace-separated fields: the date, the position x and y,
// the orientation, the translation velocity and the rotation velocity.
// Extra fields are ignored.
package trajectory

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"honnef.co/go/dubins"
)

// Header is the first line written by [WriteStates].
const Header = "t x y th v om"

// State is a configuration reached at a given date, with the velocities of
// the vehicle at that date.
type State struct {
	Date     float64
	Config   dubins.OrientedConfig
	TransVel float64
	RotVel   float64
}

func (s State) String() string {
	return fmt.Sprintf("%g: %v v=%g ω=%g", s.Date, s.Config, s.TransVel, s.RotVel)
}

// ReadStates reads states from r. The first line is skipped. Each
// configuration is expressed in frame, that is, projected into the local
// frame of the configuration frame.
func ReadStates(r io.Reader, frame dubins.OrientedConfig) ([]State, error) {
	sc := bufio.NewScanner(r)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("failed to read header: %w", err)
		}
		return nil, nil
	}

	var states []State
	line := 1
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) < 6 {
			return nil, fmt.Errorf("line %d: got %d fields, want 6", line, len(fields))
		}
		var vals [6]float64
		for i := range vals {
			v, err := strconv.ParseFloat(fields[i], 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
			vals[i] = v
		}
		q := frame.Project(dubins.OrPt(vals[1], vals[2], vals[3]))
		states = append(states, State{Date: vals[0], Config: q, TransVel: vals[4], RotVel: vals[5]})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read states: %w", err)
	}
	return states, nil
}

// WriteStates writes states to w, preceded by [Header].
func WriteStates(w io.Writer, states []State) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, Header)
	for _, s := range states {
		p := s.Config.Position()
		fmt.Fprintf(bw, "%s %s %s %s %s %s\n",
			format(s.Date), format(p.X), format(p.Y), format(s.Config.Orientation()),
			format(s.TransVel), format(s.RotVel))
	}
	return bw.Flush()
}

func format(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

package dubins

import (
	"sync/atomic"
)

// Live holds the path currently followed by a vehicle. Readers always see a
// complete path: replanning builds a new path and swaps it in atomically.
//
// Live is safe for concurrent use.
type Live struct {
	planner Planner
	path    atomic.Pointer[DubinsLikePath]
}

// NewLive returns a Live that plans its paths with p.
func NewLive(p Planner) *Live {
	return &Live{planner: p}
}

// Replan connects start to goal and makes the result the current path,
// which it returns.
func (l *Live) Replan(start, goal OrientedConfig) *DubinsLikePath {
	p := l.planner.Connect(start, goal)
	l.path.Store(p)
	return p
}

// Path returns the current path, or nil if Replan was never called.
func (l *Live) Path() *DubinsLikePath {
	return l.path.Load()
}

package dubins

import (
	"errors"
	"math"
	"testing"
)

func TestSVG(t *testing.T) {
	tests := []struct {
		name string
		p    Path
		step float64
		opts SVGOptions
		want string
	}{
		{
			name: "segment",
			p:    Straight(OrPt(0, 1, 0), 2),
			step: 1,
			want: "M0,1 L1,1 L2,1",
		},
		{
			name: "flipped",
			p:    Straight(OrPt(0, 1, 0), 2),
			step: 1,
			opts: SVGOptions{FlipY: true},
			want: "M0,-1 L1,-1 L2,-1",
		},
		{
			name: "flipped zero",
			p:    Straight(OrPt(0, 0, 0), 1),
			step: 0,
			opts: SVGOptions{FlipY: true},
			want: "M0,0 L1,0",
		},
		{
			name: "quarter arc",
			p:    mustLinCurv(t, CurvPt(0, 0, 0, 1), 0, math.Pi/2),
			step: math.Pi / 4,
			opts: SVGOptions{MaxPrecision: 3},
			want: "M0,0 L0.707,0.293 L1,1",
		},
		{
			name: "empty",
			p:    Straight(OrPt(3, 4, 0), 0),
			step: 1,
			want: "M3,4",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SVG(tt.p, tt.step, tt.opts); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

type failingWriter struct{}

var errWrite = errors.New("write failed")

func (failingWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestWriteSVGError(t *testing.T) {
	err := WriteSVG(failingWriter{}, Straight(OrPt(0, 0, 0), 3), 1, SVGOptions{})
	if !errors.Is(err, errWrite) {
		t.Errorf("got %v, want %v", err, errWrite)
	}
}

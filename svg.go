package dubins

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// SVGOptions specifies optional settings for [SVG] and [WriteSVG].
type SVGOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int
	// FlipY negates y coordinates, for viewers whose y axis points down.
	FlipY bool
}

// SVG converts a path to a string of SVG path commands, approximating it by
// line segments joining samples taken every step units of arc length.
//
// See [WriteSVG] for a version that writes to an [io.Writer] instead of
// returning a string.
func SVG(p Path, step float64, opts SVGOptions) string {
	sb := &strings.Builder{}
	WriteSVG(sb, p, step, opts)
	return sb.String()
}

// WriteSVG converts a path to a string of SVG path commands and writes it to
// w.
//
// See [SVG] for a version that returns a string instead.
func WriteSVG(w io.Writer, p Path, step float64, opts SVGOptions) error {
	var err error
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	format := func(n float64) string {
		maxPrec := opts.MaxPrecision
		if maxPrec <= 0 {
			return strconv.FormatFloat(n, 'f', -1, 64)
		} else {
			s := strconv.FormatFloat(n, 'f', maxPrec, 64)
			s = strings.TrimRight(s, "0")
			return strings.TrimSuffix(s, ".")
		}
	}
	cmd := "M"
	for q := range Samples(p, step) {
		if err != nil {
			return err
		}
		x, y := q.Position().Splat()
		if opts.FlipY {
			// 0 - y rather than -y, so that 0 doesn't become -0.
			y = 0 - y
		}
		writef("%s%s,%s", cmd, format(x), format(y))
		cmd = " L"
	}
	return err
}

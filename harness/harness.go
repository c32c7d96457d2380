// Package harness drives the slope interpolator over every recorded sweep
// position of a hardware capture and reports scanlines where the generated
// span disagrees with what the hardware captured.
//
// A SlopeMismatch is the expected failure mode under test, not a fatal
// error: Run always walks every sweep position and every scanline,
// collecting every mismatch rather than stopping at the first one, because
// a full report is more valuable than a single failure.
package harness

import (
	"fmt"
	"io"

	"github.com/retrogfx/ndsslope/capture"
	"github.com/retrogfx/ndsslope/slope"
)

// Mismatch describes one scanline where the generated span disagrees with
// the captured hardware span.
type Mismatch struct {
	SweepX, SweepY int
	ScanY          int32

	GenStart, GenEnd int32
	CapExists        bool
	CapStart, CapEnd int32
	DiffStart        int32
	DiffEnd          int32

	RawStart, RawEnd       int32 // fixed-point X, pre-shift
	MaskedStart, MaskedEnd int32 // RawStart/RawEnd modulo slope.One
	DX                     int32
}

// Report summarizes the result of running the harness over one capture.
type Report struct {
	Corner     capture.Corner
	Mismatches []Mismatch
}

// OK reports whether the run produced zero mismatches.
func (r *Report) OK() bool { return len(r.Mismatches) == 0 }

// Run drives slope.Slope over every (sweepX, sweepY) recorded in c, from
// the screen corner c.Type anchors from, and compares the generated span
// against the captured one on every scanline.
func Run(c *capture.Capture) *Report {
	report := &Report{Corner: c.Type}

	anchorX, anchorY := c.Type.Anchor(capture.Width, capture.Height)

	for sweepY := int(c.MinY); sweepY <= int(c.MaxY); sweepY++ {
		for sweepX := int(c.MinX); sweepX <= int(c.MaxX); sweepX++ {
			report.Mismatches = append(report.Mismatches, checkEdge(c, anchorX, anchorY, sweepX, sweepY)...)
		}
	}

	return report
}

func checkEdge(c *capture.Capture, anchorX, anchorY int32, sweepX, sweepY int) []Mismatch {
	x0, y0 := anchorX, anchorY
	x1, y1 := int32(sweepX), int32(sweepY)

	// Rasterize top to bottom, same as Slope.Setup does internally -- done
	// here too because the horizontal-edge adjustment below must see the
	// normalized endpoints.
	if y0 > y1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}
	// A horizontal edge is rasterized as a single scanline.
	if y0 == y1 {
		y1++
	}

	var s slope.Slope
	s.Setup(x0, y0, x1, y1)

	var mismatches []Mismatch
	for y := y0; y < y1; y++ {
		fs, fe := s.FracXStart(y), s.FracXEnd(y)
		ss, se := s.XStart(y), s.XEnd(y)
		if s.IsNegative() {
			fs, fe = fe, fs
			ss, se = se, ss
		}

		if ss >= capture.Width {
			continue
		}
		if y == capture.Height {
			break
		}

		captured, ok := c.At(sweepX, sweepY, int(y))
		if ok && captured.Exists && int32(captured.Start) == ss && int32(captured.End) == se {
			continue
		}

		m := Mismatch{
			SweepX: sweepX, SweepY: sweepY, ScanY: y,
			GenStart: ss, GenEnd: se,
			CapExists: ok && captured.Exists,
			RawStart:  fs, RawEnd: fe,
			MaskedStart: fs % slope.One, MaskedEnd: fe % slope.One,
			DX: s.DX(),
		}
		if m.CapExists {
			m.CapStart, m.CapEnd = int32(captured.Start), int32(captured.End)
			m.DiffStart, m.DiffEnd = ss-m.CapStart, se-m.CapEnd
		}
		mismatches = append(mismatches, m)
	}
	return mismatches
}

// cornerLabel names a corner the way the bit-semantics convention does
// (bit 0 = right, bit 1 = bottom), not the inconsistent human-readable
// strings the on-device generator's own file reader prints in one place.
func cornerLabel(c capture.Corner) string {
	switch c {
	case capture.TopLeft:
		return "top left"
	case capture.TopRight:
		return "top right"
	case capture.BottomLeft:
		return "bottom left"
	case capture.BottomRight:
		return "bottom right"
	default:
		return "unknown"
	}
}

// Fprint writes a human-readable report to w: a "Testing <corner>
// slopes... " banner followed by either "OK!" or one line per mismatch.
func (r *Report) Fprint(w io.Writer) {
	fmt.Fprintf(w, "Testing %s slopes... ", cornerLabel(r.Corner))
	if r.OK() {
		fmt.Fprintln(w, "OK!")
		return
	}
	fmt.Fprintln(w, "found mismatch")

	for _, m := range r.Mismatches {
		if !m.CapExists {
			fmt.Fprintf(w, "%3dx%3d Y=%3d: span doesn't exist\n", m.SweepX, m.SweepY, m.ScanY)
			continue
		}
		fmt.Fprintf(w,
			"%3dx%3d Y=%3d: %3d..%3d  !=  %3d..%3d  (%+d..%+d)  raw X = %10d  lastX = %10d  masked X = %10d  lastX = %10d  inc = %10d\n",
			m.SweepX, m.SweepY, m.ScanY,
			m.GenStart, m.GenEnd,
			m.CapStart, m.CapEnd,
			m.DiffStart, m.DiffEnd,
			m.RawEnd, m.RawStart,
			m.MaskedEnd, m.MaskedStart,
			m.DX,
		)
	}
}

package harness

import (
	"bytes"
	"fmt"

	"github.com/32bitkid/bitreader"
	"github.com/retrogfx/ndsslope/capture"
)

// EncodeGolden and DecodeGolden implement a compact regression-fixture
// format for one edge's per-scanline spans: one bit for Exists, 8 bits for
// Start, 8 bits for End, per scanline, with no byte alignment between
// scanlines. This lets slope regression tests for X-major slopes that
// exhibit one-pixel gaps, like the 69x49 edge, ship a handful of packed
// bytes instead of a full width*height capture grid.
//
// Golden is test-only infrastructure; it is not part of the capture file
// format described by the capture package.

// EncodeGolden packs spans, in scanline order, into a bit-dense stream.
func EncodeGolden(spans []capture.Span) []byte {
	w := newBitWriter()
	for _, s := range spans {
		w.writeBit(s.Exists)
		w.writeBits(uint64(s.Start), 8)
		w.writeBits(uint64(s.End), 8)
	}
	return w.bytes()
}

// DecodeGolden unpacks n spans from a stream produced by EncodeGolden,
// using bitreader.BitReader the same way the teacher's picture-opcode
// decoder reads its bitstream.
func DecodeGolden(data []byte, n int) ([]capture.Span, error) {
	br := bitreader.NewReader(bytes.NewReader(data))

	spans := make([]capture.Span, n)
	for i := range spans {
		exists, err := br.Read1()
		if err != nil {
			return nil, fmt.Errorf("golden: read exists bit %d: %w", i, err)
		}
		start, err := br.Read8(8)
		if err != nil {
			return nil, fmt.Errorf("golden: read start %d: %w", i, err)
		}
		end, err := br.Read8(8)
		if err != nil {
			return nil, fmt.Errorf("golden: read end %d: %w", i, err)
		}
		spans[i] = capture.Span{Exists: exists, Start: start, End: end}
	}
	return spans, nil
}

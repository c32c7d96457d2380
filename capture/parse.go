package capture

import (
	"bufio"
	"encoding/binary"
	"io"
	"os"
)

// Width and Height are the fixed dimensions of the screen a capture was
// taken against.
const (
	Width  = 256
	Height = 192
)

// Load opens path and parses it as a capture file. If path does not exist
// or is not a regular file, Load returns an *ErrMissingFile so callers can
// skip that corner and continue rather than treat it as fatal.
func Load(path string) (*Capture, error) {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return nil, &ErrMissingFile{Path: path}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Parse(f)
}

type fileHeader struct {
	Type       uint8
	MinX, MaxX uint16
	MinY, MaxY uint8
}

type coordPair struct {
	X, Y uint8
}

type rawSpan struct {
	Exists     uint8
	Start, End uint8
}

// Parse reads a capture file from r. The format is little-endian and
// packed; see the capture package doc comment for the record layout.
//
// A record's leading coordinate pair is validated against the position
// that was swept one step earlier in the recording (not the position the
// outer loop variables currently name) -- the on-device generator writes
// each position's captured spans on the frame after it drew that position,
// so the stream is offset by one record relative to the sweep sequence. A
// mismatch is a hard "invalid file" error; see ErrCoordMismatch.
func Parse(r io.Reader) (*Capture, error) {
	br := bufio.NewReader(r)

	var hdr fileHeader
	if err := binary.Read(br, binary.LittleEndian, &hdr); err != nil {
		return nil, &ErrTruncated{Field: "header"}
	}

	if hdr.Type > uint8(BottomRight) {
		return nil, &ErrInvalidType{Type: hdr.Type}
	}

	c := &Capture{
		Type: Corner(hdr.Type),
		MinX: hdr.MinX,
		MaxX: hdr.MaxX,
		MinY: hdr.MinY,
		MaxY: hdr.MaxY,
	}
	c.Spans = make([][][]Span, int(hdr.MaxY)+1)
	for y := range c.Spans {
		c.Spans[y] = make([][]Span, int(hdr.MaxX)+1)
		for x := range c.Spans[y] {
			c.Spans[y][x] = make([]Span, Height)
		}
	}

	prevX, prevY := 0, 0

	readSpanBlock := func() error {
		startY, endY := c.ScanRange(prevY, Height)
		for scanY := startY; scanY <= endY; scanY++ {
			var raw rawSpan
			if err := binary.Read(br, binary.LittleEndian, &raw); err != nil {
				return &ErrTruncated{Field: "span", X: prevX, Y: prevY}
			}
			c.Spans[prevY][prevX][scanY] = Span{
				Exists: raw.Exists != 0,
				Start:  raw.Start,
				End:    raw.End,
			}
		}
		return nil
	}

	for y := int(hdr.MinY); y <= int(hdr.MaxY); y++ {
		for x := int(hdr.MinX); x <= int(hdr.MaxX); x++ {
			var coord coordPair
			if err := binary.Read(br, binary.LittleEndian, &coord); err != nil {
				return nil, &ErrTruncated{Field: "coords", X: x, Y: y}
			}
			if coord.X != uint8(prevX) || coord.Y != uint8(prevY) {
				return nil, &ErrCoordMismatch{
					GotX: coord.X, GotY: coord.Y,
					WantX: uint8(prevX), WantY: uint8(prevY),
				}
			}

			if err := readSpanBlock(); err != nil {
				return nil, err
			}

			prevX, prevY = x, y
		}
	}

	// The final sweep position's spans have no leading coordinate pair;
	// they were written after the loop's last frame was captured.
	if err := readSpanBlock(); err != nil {
		return nil, err
	}

	return c, nil
}

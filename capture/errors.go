package capture

import "fmt"

// ErrMissingFile is returned by Load when the given path is not a regular
// file. Callers driving multiple corners should skip that corner and
// continue rather than treat this as fatal.
type ErrMissingFile struct {
	Path string
}

func (e *ErrMissingFile) Error() string {
	return fmt.Sprintf("%s does not exist or is not a file", e.Path)
}

// ErrInvalidType is returned when a capture file's type byte is not one of
// the four known corners.
type ErrInvalidType struct {
	Type uint8
}

func (e *ErrInvalidType) Error() string {
	return fmt.Sprintf("invalid capture type (%d)", e.Type)
}

// ErrCoordMismatch is returned when a record's coordinate pair does not
// match the expected (prevX, prevY) -- the capture file is corrupt or was
// generated by an incompatible sweep.
type ErrCoordMismatch struct {
	GotX, GotY   uint8
	WantX, WantY uint8
}

func (e *ErrCoordMismatch) Error() string {
	return fmt.Sprintf("invalid file: record coords (%d,%d) != expected (%d,%d)", e.GotX, e.GotY, e.WantX, e.WantY)
}

// ErrTruncated is returned when the stream ends before a record the header's
// sweep bounds promised was fully read.
type ErrTruncated struct {
	// Field names the record component that was cut short: "header",
	// "coords" or "span".
	Field string
	X, Y  int
}

func (e *ErrTruncated) Error() string {
	return fmt.Sprintf("invalid file: truncated %s at (%d,%d)", e.Field, e.X, e.Y)
}

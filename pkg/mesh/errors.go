package mesh

import (
	"errors"
	"fmt"
)

// Mesh errors.
var (
	ErrNotFound        = errors.New("part not found")
	ErrIndexOutOfRange = errors.New("index out of range")
)

// IndexError reports an index that addresses past the end of a buffer.
type IndexError struct {
	Attribute string // "position", "uv" or "part"
	Index     int
	Bound     int // number of addressable elements
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s index %d out of range [0, %d)", e.Attribute, e.Index, e.Bound)
}

// Unwrap returns ErrIndexOutOfRange.
func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}

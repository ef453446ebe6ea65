package piece

import (
	"errors"
	"fmt"
)

// Sentinel errors returned (wrapped in *ShapeError) by New.
var (
	ErrEmpty       = errors.New("piece has no cells")
	ErrOutOfBounds = errors.New("cell outside the piece working area")
	ErrDuplicate   = errors.New("duplicate cell")
	ErrNotAnchored = errors.New("piece does not touch column 0 and row 0")
)

// ShapeError describes a rejected piece definition.
type ShapeError struct {
	Code string
	Cell Point
	Err  error
}

func (e *ShapeError) Error() string {
	if e.Err == ErrEmpty {
		return fmt.Sprintf("[%s] %v", e.Code, e.Err)
	}
	return fmt.Sprintf("[%s] %v: %v", e.Code, e.Err, e.Cell)
}

func (e *ShapeError) Unwrap() error {
	return e.Err
}

package piece

import (
	"slices"
	"strconv"
	"strings"
)

// MaxSpan is the size of the square working area, per axis, that every piece
// cell must fit in. It bounds the local occupancy lookup used to find
// attachment cells and covers pieces of up to five cells.
const MaxSpan = 5

// Shape is the canonical description of one piece orientation.
// The zero value is not a valid shape; use New or MustNew.
type Shape struct {
	points []Point // sorted row-major
	attach []Point // sorted row-major, subset of points
	width  int     // max x
	height int     // max y
}

// New builds a shape from a piece definition. The cells must be non-empty,
// unique and lie within [0, MaxSpan) on both axes, and must touch x=0 and
// y=0. Definitions are not re-anchored.
func New(cells []Point) (Shape, error) {
	if len(cells) == 0 {
		return Shape{}, &ShapeError{Code: "EMPTY", Err: ErrEmpty}
	}

	var occupied [MaxSpan][MaxSpan]bool
	minX, minY := MaxSpan, MaxSpan
	for _, c := range cells {
		if c.X < 0 || c.X >= MaxSpan || c.Y < 0 || c.Y >= MaxSpan {
			return Shape{}, &ShapeError{Code: "OUT_OF_BOUNDS", Cell: c, Err: ErrOutOfBounds}
		}
		if occupied[c.Y][c.X] {
			return Shape{}, &ShapeError{Code: "DUPLICATE", Cell: c, Err: ErrDuplicate}
		}
		occupied[c.Y][c.X] = true
		minX, minY = min(minX, c.X), min(minY, c.Y)
	}
	if minX != 0 || minY != 0 {
		return Shape{}, &ShapeError{Code: "NOT_ANCHORED", Cell: P(minX, minY), Err: ErrNotAnchored}
	}

	points := slices.Clone(cells)
	slices.SortFunc(points, Compare)

	s := Shape{
		points: points,
		height: points[len(points)-1].Y,
	}
	for _, p := range points {
		s.width = max(s.width, p.X)
	}

	free := func(x, y int) bool {
		if x < 0 || x >= MaxSpan || y < 0 || y >= MaxSpan {
			return true
		}
		return !occupied[y][x]
	}

	for _, p := range points {
		if !free(p.X-1, p.Y) && !free(p.X+1, p.Y) {
			continue
		}
		if !free(p.X, p.Y-1) && !free(p.X, p.Y+1) {
			continue
		}
		s.attach = append(s.attach, p)
	}

	return s, nil
}

// MustNew is like New but panics on an invalid definition.
// Intended for package-level piece tables.
func MustNew(cells ...Point) Shape {
	s, err := New(cells)
	if err != nil {
		panic("piece: " + err.Error())
	}
	return s
}

// Points returns a copy of the occupied cells in row-major order.
func (s Shape) Points() []Point {
	return slices.Clone(s.points)
}

// Attach returns a copy of the attachment cells in row-major order.
func (s Shape) Attach() []Point {
	return slices.Clone(s.attach)
}

// Width returns the largest x coordinate of the shape.
func (s Shape) Width() int {
	return s.width
}

// Height returns the largest y coordinate of the shape.
func (s Shape) Height() int {
	return s.height
}

// Size returns the number of cells.
func (s Shape) Size() int {
	return len(s.points)
}

// Contains returns true if p is one of the shape's cells.
func (s Shape) Contains(p Point) bool {
	_, ok := slices.BinarySearchFunc(s.points, p, Compare)
	return ok
}

// IsAttach returns true if p is an attachment cell.
func (s Shape) IsAttach(p Point) bool {
	_, ok := slices.BinarySearchFunc(s.attach, p, Compare)
	return ok
}

// Last returns the row-major last cell. Shapes are ordered by it.
func (s Shape) Last() Point {
	return s.points[len(s.points)-1]
}

// Less orders shapes by their last cell only. Distinct shapes may compare
// equal, so it must not be used on its own to detect duplicates.
func (s Shape) Less(other Shape) bool {
	return s.Last().Less(other.Last())
}

// Equal reports whether both shapes have the same bounding box, cells and
// attachment cells.
func (s Shape) Equal(other Shape) bool {
	return s.width == other.width &&
		s.height == other.height &&
		slices.Equal(s.points, other.points) &&
		slices.Equal(s.attach, other.attach)
}

// Key returns a canonical string identifying the shape, usable as a map key.
// Equal shapes have equal keys.
func (s Shape) Key() string {
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(s.width))
	sb.WriteByte('x')
	sb.WriteString(strconv.Itoa(s.height))
	sb.WriteByte(':')
	writePoints(&sb, s.points)
	sb.WriteByte('/')
	writePoints(&sb, s.attach)
	return sb.String()
}

func writePoints(sb *strings.Builder, points []Point) {
	for i, p := range points {
		if i > 0 {
			sb.WriteByte(';')
		}
		sb.WriteString(strconv.Itoa(p.X))
		sb.WriteByte(',')
		sb.WriteString(strconv.Itoa(p.Y))
	}
}

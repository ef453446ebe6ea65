// Package piece describes polyomino shapes: their cells, the cells through
// which another piece of the same owner may touch them corner-to-corner, and
// the set of distinct orientations reachable by reflection and rotation.
//
// Shapes are immutable values. Every transform returns a new Shape.
package piece

import (
	"cmp"
	"fmt"
)

// Point is a cell of a piece. X is the column, Y the row, both 0-based.
// Points are ordered row-major: by Y first, then X.
type Point struct {
	X int
	Y int
}

// P is a convenience constructor for Point.
func P(x, y int) Point {
	return Point{X: x, Y: y}
}

// String returns a string representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Less reports whether p comes before other in row-major order.
func (p Point) Less(other Point) bool {
	return Compare(p, other) < 0
}

// Compare orders points row-major. Suitable for slices.SortFunc.
func Compare(a, b Point) int {
	if c := cmp.Compare(a.Y, b.Y); c != 0 {
		return c
	}
	return cmp.Compare(a.X, b.X)
}

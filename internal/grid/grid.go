// Package grid provides the bit-parallel occupancy mask used for the game board.
// The whole board is packed into one fixed-size bit vector so that adjacency
// (outline and corners) is computed with word-level shifts instead of
// per-cell neighbor walks. It has no external dependencies.
package grid

import (
	"math/bits"
	"strings"
)

// Board dimensions. Index = y*Width + x.
const (
	Width  = 20
	Height = 20
	Cells  = Width * Height

	wordBits = 64
	words    = (Cells + wordBits - 1) / wordBits
)

// Cell is a board coordinate. X is the column, Y the row, both 0-based.
type Cell struct {
	X int
	Y int
}

// C is a convenience constructor for Cell.
func C(x, y int) Cell {
	return Cell{X: x, Y: y}
}

// InBounds returns true if the cell lies on the board.
func (c Cell) InBounds() bool {
	return c.X >= 0 && c.X < Width && c.Y >= 0 && c.Y < Height
}

// Index converts a board coordinate to its bit index.
func Index(x, y int) int {
	return y*Width + x
}

// Mask is a Width×Height occupancy bit grid. It is a value type: every
// operation returns a new Mask and the receiver is never modified.
// Bits beyond Cells are always zero.
type Mask [words]uint64

// New creates a mask with the given cells occupied.
// Cells outside the board are ignored.
func New(cells ...Cell) Mask {
	var m Mask
	for _, c := range cells {
		if c.InBounds() {
			m = m.setIndex(Index(c.X, c.Y))
		}
	}
	return m
}

// FromIndices creates a mask from raw bit indices.
// Indices outside [0, Cells) are ignored.
func FromIndices(indices ...int) Mask {
	var m Mask
	for _, i := range indices {
		if i >= 0 && i < Cells {
			m = m.setIndex(i)
		}
	}
	return m
}

func (m Mask) setIndex(i int) Mask {
	m[i/wordBits] |= 1 << uint(i%wordBits)
	return m
}

func (m Mask) testIndex(i int) bool {
	return m[i/wordBits]&(1<<uint(i%wordBits)) != 0
}

// Set returns a copy of the mask with (x, y) occupied.
func (m Mask) Set(x, y int) Mask {
	if !C(x, y).InBounds() {
		return m
	}
	return m.setIndex(Index(x, y))
}

// Clear returns a copy of the mask with (x, y) free.
func (m Mask) Clear(x, y int) Mask {
	if !C(x, y).InBounds() {
		return m
	}
	i := Index(x, y)
	m[i/wordBits] &^= 1 << uint(i%wordBits)
	return m
}

// Test returns true if (x, y) is occupied. Off-board cells are never occupied.
func (m Mask) Test(x, y int) bool {
	if !C(x, y).InBounds() {
		return false
	}
	return m.testIndex(Index(x, y))
}

// Count returns the number of occupied cells.
func (m Mask) Count() int {
	n := 0
	for _, w := range m {
		n += bits.OnesCount64(w)
	}
	return n
}

// IsEmpty returns true if no cell is occupied.
func (m Mask) IsEmpty() bool {
	return m == Mask{}
}

// Equal returns true if both masks occupy the same cells.
func (m Mask) Equal(other Mask) bool {
	return m == other
}

// Occupied returns the occupied cells in row-major order.
func (m Mask) Occupied() []Cell {
	cells := make([]Cell, 0, m.Count())
	for wi, w := range m {
		for w != 0 {
			i := wi*wordBits + bits.TrailingZeros64(w)
			cells = append(cells, C(i%Width, i/Width))
			w &= w - 1
		}
	}
	return cells
}

// String renders the mask as Height lines of '0'/'1', row-major.
func (m Mask) String() string {
	var sb strings.Builder
	sb.Grow(Cells + Height)
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if m.testIndex(Index(x, y)) {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

package grid

// Process-wide masks, built once during package initialization and
// read-only afterwards.
var (
	// Full has every board cell set. Shifts and complements are trimmed
	// against it so no bit ever lands beyond Cells.
	Full = fullMask()

	// WestMask clears column 0. Applied to shifts that move bits towards
	// higher indices, where column 0 would receive the previous row's last column.
	WestMask = Full.AndNot(column(0))

	// EastMask clears column Width-1. Applied to shifts that move bits towards
	// lower indices, where the last column would receive the next row's column 0.
	EastMask = Full.AndNot(column(Width - 1))
)

func fullMask() Mask {
	var m Mask
	for i := 0; i < Cells; i++ {
		m = m.setIndex(i)
	}
	return m
}

func column(x int) Mask {
	var m Mask
	for y := 0; y < Height; y++ {
		m = m.setIndex(Index(x, y))
	}
	return m
}

// Or returns the union of m and other.
func (m Mask) Or(other Mask) Mask {
	for i := range m {
		m[i] |= other[i]
	}
	return m
}

// And returns the intersection of m and other.
func (m Mask) And(other Mask) Mask {
	for i := range m {
		m[i] &= other[i]
	}
	return m
}

// AndNot returns the cells of m that are not in other.
func (m Mask) AndNot(other Mask) Mask {
	for i := range m {
		m[i] &^= other[i]
	}
	return m
}

// Not returns the complement of m over the board's cells.
func (m Mask) Not() Mask {
	for i := range m {
		m[i] = ^m[i]
	}
	return m.And(Full)
}

// Union returns the cells occupied in a or b.
func Union(a, b Mask) Mask {
	return a.Or(b)
}

// Intersect returns the cells occupied in both a and b.
func Intersect(a, b Mask) Mask {
	return a.And(b)
}

// Complement returns every board cell not occupied in a.
func Complement(a Mask) Mask {
	return a.Not()
}

// shl moves every bit n positions towards higher indices (0 < n < 64).
func (m Mask) shl(n uint) Mask {
	var r Mask
	for i := words - 1; i >= 0; i-- {
		r[i] = m[i] << n
		if i > 0 {
			r[i] |= m[i-1] >> (wordBits - n)
		}
	}
	return r.And(Full)
}

// shr moves every bit n positions towards lower indices (0 < n < 64).
func (m Mask) shr(n uint) Mask {
	var r Mask
	for i := 0; i < words; i++ {
		r[i] = m[i] >> n
		if i < words-1 {
			r[i] |= m[i+1] << (wordBits - n)
		}
	}
	return r
}

// Outline returns every cell reachable from an occupied cell of m by at most
// one orthogonal step. The occupied cells themselves are included.
func (m Mask) Outline() Mask {
	flood := m
	flood = flood.Or(m.shr(1).And(EastMask))
	flood = flood.Or(m.shl(1).And(WestMask))
	flood = flood.Or(m.shr(Width))
	flood = flood.Or(m.shl(Width))
	return flood
}

// Corners returns every cell diagonally adjacent to an occupied cell of m
// that is not already part of m's outline.
func (m Mask) Corners() Mask {
	west := m.shl(Width - 1).Or(m.shr(Width + 1)).And(EastMask)
	east := m.shr(Width - 1).Or(m.shl(Width + 1)).And(WestMask)
	return west.Or(east).AndNot(m.Outline())
}

// Outline returns the orthogonal neighborhood of a, including a itself.
func Outline(a Mask) Mask {
	return a.Outline()
}

// Corners returns the diagonal-only neighborhood of a.
func Corners(a Mask) Mask {
	return a.Corners()
}

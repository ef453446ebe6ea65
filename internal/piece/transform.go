package piece

import "slices"

// mapPoints applies f to every cell and attachment cell and returns the
// re-sorted result. The receiver's slices are never touched.
func (s Shape) mapPoints(f func(Point) Point) Shape {
	out := Shape{
		points: make([]Point, len(s.points)),
		attach: make([]Point, len(s.attach)),
		width:  s.width,
		height: s.height,
	}
	for i, p := range s.points {
		out.points[i] = f(p)
	}
	for i, p := range s.attach {
		out.attach[i] = f(p)
	}
	slices.SortFunc(out.points, Compare)
	slices.SortFunc(out.attach, Compare)
	return out
}

// FlipHorizontal mirrors the shape left to right.
func (s Shape) FlipHorizontal() Shape {
	return s.mapPoints(func(p Point) Point {
		return P(s.width-p.X, p.Y)
	})
}

// FlipVertical mirrors the shape top to bottom.
func (s Shape) FlipVertical() Shape {
	return s.mapPoints(func(p Point) Point {
		return P(p.X, s.height-p.Y)
	})
}

// Turn swaps the axes of the shape (a reflection about the main diagonal).
// Combined with the flips it generates every square symmetry.
func (s Shape) Turn() Shape {
	out := s.mapPoints(func(p Point) Point {
		return P(p.Y, p.X)
	})
	out.width, out.height = s.height, s.width
	return out
}

// Rotate turns the shape 90 degrees clockwise. Four rotations give back the
// original shape.
func (s Shape) Rotate() Shape {
	return s.Turn().FlipHorizontal()
}

// Orientations returns every distinct shape reachable from s by reflection
// and 90 degree rotation, between 1 and 8 of them. Callers must not rely on
// the order of the result.
func (s Shape) Orientations() []Shape {
	horizontal := s.FlipHorizontal()
	vertical := s.FlipVertical()
	turned := s.Turn()
	turnedVertical := turned.FlipVertical()

	candidates := []Shape{
		s,
		horizontal,
		vertical,
		vertical.FlipHorizontal(),
		turned,
		turned.FlipHorizontal(),
		turnedVertical,
		turnedVertical.FlipHorizontal(),
	}

	// The last-cell order is weak: shapes that tie may still differ, so
	// duplicates are checked against every kept shape, not just neighbors.
	slices.SortStableFunc(candidates, func(a, b Shape) int {
		return Compare(a.Last(), b.Last())
	})

	unique := candidates[:0]
	for _, c := range candidates {
		if !slices.ContainsFunc(unique, c.Equal) {
			unique = append(unique, c)
		}
	}
	return slices.Clip(unique)
}

package piece

import "fmt"

// Definition is a named piece as listed in a piece set.
type Definition struct {
	ID    string
	Name  string
	Cells []Point
}

// Shape builds the definition's base shape.
func (d Definition) Shape() (Shape, error) {
	s, err := New(d.Cells)
	if err != nil {
		return Shape{}, fmt.Errorf("piece %s: %w", d.ID, err)
	}
	return s, nil
}

// Standard returns the 21 pieces of the classic set, smallest first.
// A fresh slice is returned on every call.
func Standard() []Definition {
	return []Definition{
		{ID: "I1", Name: "Monomino", Cells: []Point{{0, 0}}},
		{ID: "I2", Name: "Domino", Cells: []Point{{0, 0}, {1, 0}}},
		{ID: "V3", Name: "Corner tromino", Cells: []Point{{0, 0}, {1, 0}, {1, 1}}},
		{ID: "I3", Name: "Straight tromino", Cells: []Point{{0, 0}, {1, 0}, {2, 0}}},
		{ID: "O4", Name: "Square tetromino", Cells: []Point{{0, 0}, {1, 0}, {0, 1}, {1, 1}}},
		{ID: "T4", Name: "T tetromino", Cells: []Point{{1, 0}, {0, 1}, {1, 1}, {2, 1}}},
		{ID: "I4", Name: "Straight tetromino", Cells: []Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}}},
		{ID: "L4", Name: "L tetromino", Cells: []Point{{2, 0}, {0, 1}, {1, 1}, {2, 1}}},
		{ID: "Z4", Name: "Skew tetromino", Cells: []Point{{1, 0}, {2, 0}, {0, 1}, {1, 1}}},
		{ID: "L5", Name: "L pentomino", Cells: []Point{{0, 0}, {0, 1}, {1, 1}, {2, 1}, {3, 1}}},
		{ID: "T5", Name: "T pentomino", Cells: []Point{{1, 0}, {1, 1}, {0, 2}, {1, 2}, {2, 2}}},
		{ID: "V5", Name: "V pentomino", Cells: []Point{{0, 0}, {0, 1}, {0, 2}, {1, 2}, {2, 2}}},
		{ID: "N5", Name: "N pentomino", Cells: []Point{{1, 0}, {2, 0}, {3, 0}, {0, 1}, {1, 1}}},
		{ID: "Z5", Name: "Z pentomino", Cells: []Point{{2, 0}, {0, 1}, {1, 1}, {2, 1}, {0, 2}}},
		{ID: "I5", Name: "Straight pentomino", Cells: []Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {4, 0}}},
		{ID: "P5", Name: "P pentomino", Cells: []Point{{0, 0}, {0, 1}, {1, 1}, {0, 2}, {1, 2}}},
		{ID: "W5", Name: "W pentomino", Cells: []Point{{1, 0}, {2, 0}, {0, 1}, {1, 1}, {0, 2}}},
		{ID: "U5", Name: "U pentomino", Cells: []Point{{0, 0}, {1, 0}, {0, 1}, {0, 2}, {1, 2}}},
		{ID: "F5", Name: "F pentomino", Cells: []Point{{1, 0}, {2, 0}, {0, 1}, {1, 1}, {1, 2}}},
		{ID: "X5", Name: "X pentomino", Cells: []Point{{1, 0}, {0, 1}, {1, 1}, {2, 1}, {1, 2}}},
		{ID: "Y5", Name: "Y pentomino", Cells: []Point{{1, 0}, {0, 1}, {1, 1}, {2, 1}, {3, 1}}},
	}
}

package grid

import (
	"math/rand"
	"slices"
	"strings"
	"testing"
)

func TestNewAndTest(t *testing.T) {
	m := New(C(0, 0), C(19, 0), C(5, 7), C(19, 19), C(-1, 3), C(20, 0), C(0, 20))

	testCases := []struct {
		x, y     int
		expected bool
	}{
		{0, 0, true},
		{19, 0, true},
		{5, 7, true},
		{19, 19, true},
		{1, 0, false},
		{0, 1, false},
		{-1, 3, false},
		{20, 0, false},
	}

	for _, tc := range testCases {
		if got := m.Test(tc.x, tc.y); got != tc.expected {
			t.Errorf("Test(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
		}
	}

	if m.Count() != 4 {
		t.Errorf("expected 4 occupied cells, got %d", m.Count())
	}
}

func TestSetClearAreValueOperations(t *testing.T) {
	var empty Mask
	m := empty.Set(3, 4)

	if !empty.IsEmpty() {
		t.Error("Set must not modify the receiver")
	}
	if !m.Test(3, 4) {
		t.Error("expected (3,4) to be set")
	}

	cleared := m.Clear(3, 4)
	if !m.Test(3, 4) {
		t.Error("Clear must not modify the receiver")
	}
	if !cleared.IsEmpty() {
		t.Error("expected mask to be empty after Clear")
	}

	if m.Set(25, 0) != m {
		t.Error("Set outside the board should be a no-op")
	}
}

func TestFromIndices(t *testing.T) {
	m := FromIndices(0, 21, 399, 400, -1)
	want := New(C(0, 0), C(1, 1), C(19, 19))
	if !m.Equal(want) {
		t.Errorf("FromIndices mismatch:\n%s\nexpected:\n%s", m, want)
	}
}

func TestOccupiedRowMajor(t *testing.T) {
	m := New(C(3, 2), C(0, 5), C(19, 0), C(1, 2))
	got := m.Occupied()
	want := []Cell{C(19, 0), C(1, 2), C(3, 2), C(0, 5)}
	if !slices.Equal(got, want) {
		t.Errorf("Occupied() = %v, expected %v", got, want)
	}
}

func TestUnionAndComplement(t *testing.T) {
	a := New(C(0, 0), C(1, 1))
	b := New(C(1, 1), C(2, 2))

	u := Union(a, b)
	if u.Count() != 3 {
		t.Errorf("expected union of 3 cells, got %d", u.Count())
	}

	c := Complement(a)
	if c.Count() != Cells-2 {
		t.Errorf("expected complement of %d cells, got %d", Cells-2, c.Count())
	}
	if c.Test(0, 0) || c.Test(1, 1) {
		t.Error("complement must not contain original cells")
	}
	if !Complement(c).Equal(a) {
		t.Error("double complement should give back the original mask")
	}
	if !Complement(Mask{}).Equal(Full) {
		t.Error("complement of the empty mask should be the full board")
	}
	if Full.Count() != Cells {
		t.Errorf("Full should have %d cells, got %d", Cells, Full.Count())
	}
}

func TestIntersect(t *testing.T) {
	a := New(C(0, 0), C(1, 1))
	b := New(C(1, 1), C(2, 2))
	if !Intersect(a, b).Equal(New(C(1, 1))) {
		t.Errorf("unexpected intersection:\n%s", Intersect(a, b))
	}
}

func TestOutlineSingleCorner(t *testing.T) {
	m := New(C(0, 0))

	outline := Outline(m)
	want := New(C(0, 0), C(1, 0), C(0, 1))
	if !outline.Equal(want) {
		t.Errorf("Outline mismatch:\n%s\nexpected:\n%s", outline, want)
	}

	corners := Corners(m)
	if !corners.Equal(New(C(1, 1))) {
		t.Errorf("Corners mismatch:\n%s", corners)
	}
}

func TestOutlineInteriorCell(t *testing.T) {
	m := New(C(10, 10))

	want := New(C(10, 10), C(9, 10), C(11, 10), C(10, 9), C(10, 11))
	if got := m.Outline(); !got.Equal(want) {
		t.Errorf("Outline mismatch:\n%s", got)
	}

	wantCorners := New(C(9, 9), C(11, 9), C(9, 11), C(11, 11))
	if got := m.Corners(); !got.Equal(wantCorners) {
		t.Errorf("Corners mismatch:\n%s", got)
	}
}

func TestNoHorizontalWrap(t *testing.T) {
	tests := []struct {
		name    string
		cell    Cell
		outline []Cell
		corners []Cell
	}{
		{
			name:    "last column",
			cell:    C(19, 5),
			outline: []Cell{C(19, 5), C(18, 5), C(19, 4), C(19, 6)},
			corners: []Cell{C(18, 4), C(18, 6)},
		},
		{
			name:    "first column",
			cell:    C(0, 5),
			outline: []Cell{C(0, 5), C(1, 5), C(0, 4), C(0, 6)},
			corners: []Cell{C(1, 4), C(1, 6)},
		},
		{
			name:    "bottom right corner",
			cell:    C(19, 19),
			outline: []Cell{C(19, 19), C(18, 19), C(19, 18)},
			corners: []Cell{C(18, 18)},
		},
		{
			name:    "top right corner",
			cell:    C(19, 0),
			outline: []Cell{C(19, 0), C(18, 0), C(19, 1)},
			corners: []Cell{C(18, 1)},
		},
		{
			name:    "bottom left corner",
			cell:    C(0, 19),
			outline: []Cell{C(0, 19), C(1, 19), C(0, 18)},
			corners: []Cell{C(1, 18)},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := New(tc.cell)
			if got := m.Outline(); !got.Equal(New(tc.outline...)) {
				t.Errorf("Outline mismatch:\n%s", got)
			}
			if got := m.Corners(); !got.Equal(New(tc.corners...)) {
				t.Errorf("Corners mismatch:\n%s", got)
			}
		})
	}
}

func TestLastColumnDoesNotReachNextRow(t *testing.T) {
	m := New(C(19, 3))
	outline := m.Outline()
	if outline.Test(0, 3) || outline.Test(0, 4) {
		t.Error("outline of the last column leaked into column 0")
	}

	m = New(C(0, 3))
	outline = m.Outline()
	if outline.Test(19, 3) || outline.Test(19, 2) {
		t.Error("outline of column 0 leaked into the last column")
	}
}

func TestAdjacencyProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 200; i++ {
		var m Mask
		n := rng.Intn(40)
		for j := 0; j < n; j++ {
			m = m.Set(rng.Intn(Width), rng.Intn(Height))
		}

		outline := m.Outline()
		corners := m.Corners()

		if !outline.And(m).Equal(m) {
			t.Fatalf("outline does not contain the mask:\n%s", m)
		}
		if !outline.And(corners).IsEmpty() {
			t.Fatalf("corners intersect outline:\n%s", m)
		}
		if !outline.AndNot(Full).IsEmpty() || !corners.AndNot(Full).IsEmpty() {
			t.Fatal("adjacency produced bits beyond the board")
		}

		// Compare against a per-cell neighbor walk.
		for y := 0; y < Height; y++ {
			for x := 0; x < Width; x++ {
				orth := m.Test(x, y) || m.Test(x-1, y) || m.Test(x+1, y) || m.Test(x, y-1) || m.Test(x, y+1)
				diag := m.Test(x-1, y-1) || m.Test(x+1, y-1) || m.Test(x-1, y+1) || m.Test(x+1, y+1)
				if outline.Test(x, y) != orth {
					t.Fatalf("outline(%d,%d) = %v, expected %v", x, y, outline.Test(x, y), orth)
				}
				if corners.Test(x, y) != (diag && !orth) {
					t.Fatalf("corners(%d,%d) = %v, expected %v", x, y, corners.Test(x, y), diag && !orth)
				}
			}
		}
	}
}

func TestString(t *testing.T) {
	s := New(C(0, 0), C(19, 19)).String()
	lines := strings.Split(strings.TrimSuffix(s, "\n"), "\n")
	if len(lines) != Height {
		t.Fatalf("expected %d lines, got %d", Height, len(lines))
	}
	if lines[0] != "1"+strings.Repeat("0", Width-1) {
		t.Errorf("unexpected first line %q", lines[0])
	}
	if lines[Height-1] != strings.Repeat("0", Width-1)+"1" {
		t.Errorf("unexpected last line %q", lines[Height-1])
	}
}

package piece

import (
	"slices"
	"testing"
)

func keys(shapes []Shape) []string {
	out := make([]string, len(shapes))
	for i, s := range shapes {
		out[i] = s.Key()
	}
	slices.Sort(out)
	return out
}

func TestFlipsAndTurn(t *testing.T) {
	s := MustNew(P(0, 0), P(0, 1), P(1, 1), P(2, 1), P(3, 1)) // L5

	tests := []struct {
		name     string
		shape    Shape
		expected string
	}{
		{"identity", s, "A   \nAPPA\n"},
		{"flip horizontal", s.FlipHorizontal(), "   A\nAPPA\n"},
		{"flip vertical", s.FlipVertical(), "APPA\nA   \n"},
		{"turn", s.Turn(), "AA\n P\n P\n A\n"},
		{"rotate", s.Rotate(), "AA\nP \nP \nA \n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.shape.Render(); got != tc.expected {
				t.Errorf("Render() = %q, expected %q", got, tc.expected)
			}
		})
	}

	turned := s.Turn()
	if turned.Width() != s.Height() || turned.Height() != s.Width() {
		t.Errorf("Turn should swap bounds, got %dx%d", turned.Width(), turned.Height())
	}
}

func TestTransformsDoNotModifyReceiver(t *testing.T) {
	s := MustNew(P(0, 0), P(1, 0), P(1, 1))
	before := s.Key()

	s.FlipHorizontal()
	s.FlipVertical()
	s.Turn()
	s.Rotate()
	s.Orientations()

	if s.Key() != before {
		t.Errorf("shape changed from %q to %q", before, s.Key())
	}
}

func TestRoundTrips(t *testing.T) {
	for _, def := range Standard() {
		s, err := def.Shape()
		if err != nil {
			t.Fatalf("%s: %v", def.ID, err)
		}

		if !s.FlipHorizontal().FlipHorizontal().Equal(s) {
			t.Errorf("%s: double horizontal flip is not identity", def.ID)
		}
		if !s.FlipVertical().FlipVertical().Equal(s) {
			t.Errorf("%s: double vertical flip is not identity", def.ID)
		}
		if !s.Turn().Turn().Equal(s) {
			t.Errorf("%s: double turn is not identity", def.ID)
		}
		if !s.Rotate().Rotate().Rotate().Rotate().Equal(s) {
			t.Errorf("%s: four rotations are not identity", def.ID)
		}
	}
}

func TestTransformsPreserveAttachment(t *testing.T) {
	// Transformed attachment cells must match what construction would
	// compute for the transformed cells.
	for _, def := range Standard() {
		s, err := def.Shape()
		if err != nil {
			t.Fatalf("%s: %v", def.ID, err)
		}
		for _, o := range s.Orientations() {
			rebuilt, err := New(o.Points())
			if err != nil {
				t.Fatalf("%s: %v", def.ID, err)
			}
			if !rebuilt.Equal(o) {
				t.Errorf("%s: orientation\n%s\ndiffers from rebuilt\n%s", def.ID, o, rebuilt)
			}
		}
	}
}

func TestOrientationCounts(t *testing.T) {
	expected := map[string]int{
		"I1": 1, "I2": 2, "V3": 4, "I3": 2, "O4": 1, "T4": 4, "I4": 2,
		"L4": 8, "Z4": 4, "L5": 8, "T5": 4, "V5": 4, "N5": 8, "Z5": 4,
		"I5": 2, "P5": 8, "W5": 4, "U5": 4, "F5": 8, "X5": 1, "Y5": 8,
	}

	total := 0
	for _, def := range Standard() {
		t.Run(def.ID, func(t *testing.T) {
			s, err := def.Shape()
			if err != nil {
				t.Fatalf("Shape() failed: %v", err)
			}
			got := len(s.Orientations())
			total += got
			if got != expected[def.ID] {
				t.Errorf("expected %d orientations, got %d", expected[def.ID], got)
			}
		})
	}

	if total != 91 {
		t.Errorf("expected 91 orientations in the standard set, got %d", total)
	}
}

func TestOrientationsAreDistinct(t *testing.T) {
	for _, def := range Standard() {
		s, _ := def.Shape()
		orients := s.Orientations()
		for i := range orients {
			for j := i + 1; j < len(orients); j++ {
				if orients[i].Equal(orients[j]) {
					t.Errorf("%s: orientations %d and %d are equal", def.ID, i, j)
				}
			}
		}
	}
}

func TestOrientationsClosure(t *testing.T) {
	for _, def := range Standard() {
		s, _ := def.Shape()
		orients := s.Orientations()
		want := keys(orients)

		if len(orients) < 1 || len(orients) > 8 {
			t.Errorf("%s: %d orientations out of range", def.ID, len(orients))
		}

		for _, o := range orients {
			if got := keys(o.Orientations()); !slices.Equal(got, want) {
				t.Errorf("%s: orientations of\n%s\ngave a different set", def.ID, o.Render())
			}
		}
	}
}

func TestOrientationsContainsIdentity(t *testing.T) {
	for _, def := range Standard() {
		s, _ := def.Shape()
		if !slices.ContainsFunc(s.Orientations(), s.Equal) {
			t.Errorf("%s: orientations should include the base shape", def.ID)
		}
	}
}

func TestSpecificOrientations(t *testing.T) {
	mono := MustNew(P(0, 0))
	if got := mono.Orientations(); len(got) != 1 || !slices.Equal(got[0].Attach(), got[0].Points()) {
		t.Errorf("monomino should have one orientation attached everywhere, got %v", got)
	}

	line := MustNew(P(0, 0), P(1, 0), P(2, 0), P(3, 0))
	got := line.Orientations()
	if len(got) != 2 {
		t.Fatalf("straight tetromino should have 2 orientations, got %d", len(got))
	}
	renders := []string{got[0].Render(), got[1].Render()}
	slices.Sort(renders)
	want := []string{"A\nP\nP\nA\n", "APPA\n"}
	if !slices.Equal(renders, want) {
		t.Errorf("unexpected straight tetromino orientations %q", renders)
	}

	corner := MustNew(P(0, 0), P(1, 0), P(1, 1))
	if corner.Width() != 1 || corner.Height() != 1 {
		t.Errorf("expected 1x1 corner tromino, got %dx%d", corner.Width(), corner.Height())
	}
	if len(corner.Attach()) != 3 {
		t.Errorf("all corner tromino cells should attach, got %v", corner.Attach())
	}
	cornerRenders := make([]string, 0, 4)
	for _, o := range corner.Orientations() {
		cornerRenders = append(cornerRenders, o.Render())
	}
	slices.Sort(cornerRenders)
	wantCorners := []string{" A\nAA\n", "A \nAA\n", "AA\n A\n", "AA\nA \n"}
	if !slices.Equal(cornerRenders, wantCorners) {
		t.Errorf("unexpected corner tromino orientations %q", cornerRenders)
	}
}

func TestString(t *testing.T) {
	s := MustNew(P(0, 0), P(1, 0), P(1, 1))
	want := "AA\n A\n(0, 0)\n(1, 0)\n(1, 1)\n"
	if s.String() != want {
		t.Errorf("String() = %q, expected %q", s.String(), want)
	}
}

func TestStandardDefinitions(t *testing.T) {
	defs := Standard()
	if len(defs) != 21 {
		t.Fatalf("expected 21 standard pieces, got %d", len(defs))
	}

	seen := make(map[string]bool)
	cells := 0
	for _, d := range defs {
		if seen[d.ID] {
			t.Errorf("duplicate id %s", d.ID)
		}
		seen[d.ID] = true
		cells += len(d.Cells)
	}
	if cells != 89 {
		t.Errorf("expected 89 cells in the standard set, got %d", cells)
	}

	defs[0].Cells[0] = P(3, 3)
	if Standard()[0].Cells[0] != P(0, 0) {
		t.Error("Standard() should return fresh definitions")
	}
}

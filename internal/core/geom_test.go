package core

import "testing"

// box builds a Box at (x, y, z) with the given extent.
func box(x, y, z, width, height, depth int) Box {
	return Box{
		Pos:  Point{X: x, Y: y, Z: z},
		Size: Extent{Width: width, Height: height, Depth: depth},
	}
}

func TestBoxIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Box
		expected bool
	}{
		{
			name:     "identical boxes",
			a:        box(0, 0, 0, 18, 12, 1),
			b:        box(0, 0, 0, 18, 12, 1),
			expected: true,
		},
		{
			name:     "partial overlap",
			a:        box(0, 0, 0, 18, 12, 1),
			b:        box(9, 10, 0, 18, 12, 1),
			expected: true,
		},
		{
			name:     "x uses height not width",
			a:        box(0, 0, 0, 18, 4, 1),
			b:        box(10, 0, 0, 18, 4, 1),
			expected: false,
		},
		{
			name:     "y uses width not height",
			a:        box(0, 0, 0, 4, 18, 1),
			b:        box(0, 10, 0, 4, 18, 1),
			expected: false,
		},
		{
			name:     "different z layers",
			a:        box(0, 0, 0, 18, 12, 1),
			b:        box(0, 0, 3, 18, 12, 1),
			expected: false,
		},
		{
			name:     "deep box reaches other layer",
			a:        box(0, 0, 0, 18, 12, 4),
			b:        box(0, 0, 3, 18, 12, 1),
			expected: true,
		},
		{
			name:     "adjacent on x (exclusive edge)",
			a:        box(0, 0, 0, 5, 5, 1),
			b:        box(5, 0, 0, 5, 5, 1),
			expected: false,
		},
		{
			name:     "contained box",
			a:        box(0, 0, 0, 20, 20, 5),
			b:        box(5, 5, 2, 2, 2, 1),
			expected: true,
		},
		{
			name:     "zero depth never intersects",
			a:        box(0, 0, 0, 5, 5, 0),
			b:        box(0, 0, 0, 5, 5, 0),
			expected: false,
		},
		{
			name:     "negative coordinates",
			a:        box(-3, -3, 0, 4, 4, 1),
			b:        box(0, 0, 0, 4, 4, 1),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Intersects(tc.b)
			if result != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			resultReverse := tc.b.Intersects(tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

func TestBoxIntersectsSequence(t *testing.T) {
	a := box(0, 0, 0, 18, 12, 1)
	b := box(0, 0, 0, 18, 12, 1)
	if !a.Intersects(b) {
		t.Fatal("identical boxes should intersect")
	}

	b.Pos.X += 9
	b.Pos.Y += 10
	if !a.Intersects(b) {
		t.Error("half-translated box should still intersect")
	}

	a.Pos.X += 5
	a.Pos.Y += 3
	if !a.Intersects(b) {
		t.Error("moving a towards b should keep the intersection")
	}

	b.Pos.Z = 3
	if a.Intersects(b) {
		t.Error("boxes on different layers should not intersect")
	}

	a.Size.Depth = 4
	if !a.Intersects(b) {
		t.Error("deeper box should reach the other layer")
	}
}

func TestBoxIntersectsBoundary(t *testing.T) {
	sizes := []Extent{{1, 1, 1}, {3, 7, 2}, {18, 12, 1}, {10, 2, 5}}

	for _, size := range sizes {
		a := Box{Size: size}
		shifts := []Point{
			{X: size.Height},
			{Y: size.Width},
			{Z: size.Depth},
		}
		for _, shift := range shifts {
			b := Box{Pos: shift, Size: size}
			if a.Intersects(b) {
				t.Errorf("size %+v shifted by %+v should not intersect", size, shift)
			}
			b.Pos = Point{X: shift.X - min(shift.X, 1), Y: shift.Y - min(shift.Y, 1), Z: shift.Z - min(shift.Z, 1)}
			if !a.Intersects(b) {
				t.Errorf("size %+v shifted by %+v minus one should intersect", size, b.Pos)
			}
		}
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		v, bound, expected int
	}{
		{5, 80, 5},    // within range
		{0, 80, 0},    // at lower edge
		{80, 80, 0},   // at upper bound
		{81, 80, 1},   // past upper bound
		{-1, 80, 79},  // negative wraps to far edge
		{-80, 80, 0},  // exact negative multiple
		{-81, 80, 79}, // past negative multiple
		{165, 80, 5},  // multiple wraps
		{-7, 0, -7},   // zero bound leaves value
		{12, -3, 12},  // negative bound leaves value
	}

	for _, tc := range tests {
		result := Wrap(tc.v, tc.bound)
		if result != tc.expected {
			t.Errorf("Wrap(%d, %d) = %d, expected %d", tc.v, tc.bound, result, tc.expected)
		}
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(10, 10, 20, 15)
	if r.Right() != 30 {
		t.Errorf("Right() = %d, expected 30", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %d, expected 25", r.Bottom())
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

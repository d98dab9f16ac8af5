package geom

import "testing"

func TestRectOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping rects",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "disjoint horizontal",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(15, 0, 10, 10),
			expected: false,
		},
		{
			name:     "disjoint vertical",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(0, 15, 10, 10),
			expected: false,
		},
		{
			name:     "touching edges do not overlap",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: false,
		},
		{
			name:     "contained rect",
			a:        NewRect(0, 0, 20, 20),
			b:        NewRect(5, 5, 5, 5),
			expected: true,
		},
		{
			name:     "zero-size rect overlaps nothing",
			a:        NewRect(5, 5, 0, 0),
			b:        NewRect(0, 0, 10, 10),
			expected: false,
		},
		{
			name:     "negative coordinates, signed comparison",
			a:        NewRect(-10, -10, 8, 8),
			b:        NewRect(-5, -5, 10, 10),
			expected: true,
		},
		{
			name:     "negative coordinates, disjoint",
			a:        NewRect(-20, 0, 5, 5),
			b:        NewRect(5, 0, 5, 5),
			expected: false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			// The signed test is symmetric by construction
			if got := tc.b.Overlaps(tc.a); got != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestAbsOverlap(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping positive rects",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(5, 5, 10, 10),
			expected: true,
		},
		{
			name:     "touching edges count as overlap",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(10, 0, 10, 10),
			expected: true,
		},
		{
			name:     "disjoint positive rects",
			a:        NewRect(0, 0, 10, 10),
			b:        NewRect(25, 0, 10, 10),
			expected: false,
		},
		{
			// Signed positions overlap on (-3, -2), but the folded
			// extents (10, 18) and (3, 7) do not. Pins the legacy
			// abs-normalization for negative coordinate space.
			name:     "false rejection in negative space",
			a:        NewRect(-10, 0, 8, 8),
			b:        NewRect(-3, 0, 4, 8),
			expected: false,
		},
		{
			// Signed positions are disjoint, but folding -20 onto 20
			// lands inside (15, 25). The exact edge tests behind this
			// pre-check are what keep final answers correct.
			name:     "false acceptance across the axis",
			a:        NewRect(-20, 0, 5, 5),
			b:        NewRect(15, 0, 10, 5),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := absOverlap(tc.a, tc.b); got != tc.expected {
				t.Errorf("absOverlap() = %v, expected %v", got, tc.expected)
			}
			if got := absOverlap(tc.b, tc.a); got != tc.expected {
				t.Errorf("absOverlap() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestRectContainsPoint(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     float64
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner (inclusive)", 10, 10, true},
		{"bottom-right corner (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.ContainsPoint(tc.x, tc.y); got != tc.expected {
				t.Errorf("ContainsPoint(%v, %v) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(5, 10, 20, 15)

	if r.Right() != 25 {
		t.Errorf("Right() = %v, expected 25", r.Right())
	}
	if r.Bottom() != 25 {
		t.Errorf("Bottom() = %v, expected 25", r.Bottom())
	}
	if r.Empty() {
		t.Error("Empty() = true for a rect with positive area")
	}
	if !(Rect{}).Empty() {
		t.Error("Empty() = false for the zero rect")
	}
}

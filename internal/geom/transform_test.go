package geom

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func pointsClose(a, b Point) bool {
	return math.Abs(a.X-b.X) < epsilon && math.Abs(a.Y-b.Y) < epsilon
}

func TestTransformApply(t *testing.T) {
	tests := []struct {
		name     string
		tr       Transform
		in       Point
		expected Point
	}{
		{
			name:     "identity leaves points unchanged",
			tr:       Identity(),
			in:       Pt(3, -7),
			expected: Pt(3, -7),
		},
		{
			name:     "translation",
			tr:       Translation(10, -5),
			in:       Pt(1, 2),
			expected: Pt(11, -3),
		},
		{
			name:     "quarter turn about the origin",
			tr:       Rotation(math.Pi / 2),
			in:       Pt(1, 0),
			expected: Pt(0, 1),
		},
		{
			name:     "half turn about the origin",
			tr:       Rotation(math.Pi),
			in:       Pt(2, 3),
			expected: Pt(-2, -3),
		},
		{
			name:     "rotation about a pivot",
			tr:       RotationAround(math.Pi, 5, 5),
			in:       Pt(6, 5),
			expected: Pt(4, 5),
		},
		{
			name:     "scaling",
			tr:       Scaling(2, 3),
			in:       Pt(4, 5),
			expected: Pt(8, 15),
		},
		{
			name:     "shear x by y",
			tr:       Shearing(1, 0),
			in:       Pt(2, 3),
			expected: Pt(5, 3),
		},
		{
			name:     "chained translate then rotate applies rotation first",
			tr:       Translation(10, 0).Rotate(math.Pi / 2),
			in:       Pt(1, 0),
			expected: Pt(10, 1),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.tr.Apply(tc.in); !pointsClose(got, tc.expected) {
				t.Errorf("Apply(%v) = %v, expected %v", tc.in, got, tc.expected)
			}
		})
	}
}

func TestTransformCombineMatchesSequentialApply(t *testing.T) {
	transforms := []Transform{
		Translation(3, -2),
		Rotation(0.7),
		Scaling(1.5, 0.25),
		Shearing(0.3, -0.1),
		RotationAround(-1.2, 4, 4),
	}
	points := []Point{Pt(0, 0), Pt(1, 1), Pt(-5, 2.5), Pt(100, -40)}

	for i, a := range transforms {
		for j, b := range transforms {
			combined := a.Combine(b)
			for _, p := range points {
				sequential := a.Apply(b.Apply(p))
				if got := combined.Apply(p); !pointsClose(got, sequential) {
					t.Errorf("transforms %d∘%d at %v: Combine gave %v, sequential gave %v",
						i, j, p, got, sequential)
				}
			}
		}
	}
}

func TestTransformIdentityComposition(t *testing.T) {
	tr := Translation(2, 3).Rotate(0.5).Scale(2, 2)
	p := Pt(7, -1)

	if got := Identity().Combine(tr).Apply(p); !pointsClose(got, tr.Apply(p)) {
		t.Errorf("Identity.Combine(t) differs from t: %v vs %v", got, tr.Apply(p))
	}
	if got := tr.Combine(Identity()).Apply(p); !pointsClose(got, tr.Apply(p)) {
		t.Errorf("t.Combine(Identity) differs from t: %v vs %v", got, tr.Apply(p))
	}
}

package shape

import (
	"math"
	"testing"

	"github.com/andrewsmnv/polyarena/internal/geom"
)

const epsilon = 1e-9

func pointsClose(a, b geom.Point) bool {
	return math.Abs(a.X-b.X) < epsilon && math.Abs(a.Y-b.Y) < epsilon
}

func TestPolygonUpdateDoesNotTouchReference(t *testing.T) {
	p := New(geom.Pt(0, 0), geom.Pt(4, 0), geom.Pt(4, 4), geom.Pt(0, 4))

	p.SetPosition(100, 50)
	p.Rotate(1.3)
	p.Update()
	p.Update() // repeated updates must not accumulate

	ref := p.Reference().Points()
	expected := []geom.Point{geom.Pt(0, 0), geom.Pt(4, 0), geom.Pt(4, 4), geom.Pt(0, 4)}
	for i := range expected {
		if !pointsClose(ref[i], expected[i]) {
			t.Errorf("reference point %d changed: %v, expected %v", i, ref[i], expected[i])
		}
	}
}

func TestPolygonTransformOrder(t *testing.T) {
	// Square with its pivot at the center: after moving to (10, 10)
	// and a quarter turn, the center must sit exactly at (10, 10).
	p := New(geom.Pt(0, 0), geom.Pt(2, 0), geom.Pt(2, 2), geom.Pt(0, 2))
	p.SetOrigin(1, 1)
	p.SetPosition(10, 10)
	p.SetRotation(math.Pi / 2)
	p.Update()

	b := p.Bounds()
	cx, cy := b.X+b.W/2, b.Y+b.H/2
	if math.Abs(cx-10) > epsilon || math.Abs(cy-10) > epsilon {
		t.Errorf("world center = (%v, %v), expected (10, 10)", cx, cy)
	}
	if math.Abs(b.W-2) > epsilon || math.Abs(b.H-2) > epsilon {
		t.Errorf("bounds size = (%v, %v), expected (2, 2)", b.W, b.H)
	}
}

func TestPolygonScaleAboutOrigin(t *testing.T) {
	p := New(geom.Pt(0, 0), geom.Pt(2, 0), geom.Pt(2, 2), geom.Pt(0, 2))
	p.SetOrigin(1, 1)
	p.SetScale(3, 3)
	p.Update()

	b := p.Bounds()
	if math.Abs(b.W-6) > epsilon || math.Abs(b.H-6) > epsilon {
		t.Errorf("scaled bounds = %v, expected 6x6", b)
	}
	// Pivot stays fixed, so the box is centered on it.
	if math.Abs(b.X+3) > epsilon || math.Abs(b.Y+3) > epsilon {
		t.Errorf("scaled bounds corner = (%v, %v), expected (-3, -3)", b.X, b.Y)
	}
}

func TestPolygonCollisionQueries(t *testing.T) {
	a := FromCollider(geom.Rectangle(10, 10))
	b := FromCollider(geom.Rectangle(10, 10))

	b.SetPosition(5, 5)
	b.Update()
	if !a.Collides(b) || !b.Collides(a) {
		t.Error("offset squares should collide")
	}
	if !a.Intersects(b) {
		t.Error("offset squares should intersect")
	}

	b.SetPosition(25, 25)
	b.Update()
	if a.Collides(b) {
		t.Error("distant squares should not collide")
	}

	if !a.Contains(geom.Pt(5, 5)) {
		t.Error("world point (5, 5) should be inside the unmoved square")
	}

	a.SetPosition(100, 0)
	a.Update()
	if a.Contains(geom.Pt(5, 5)) {
		t.Error("containment must follow the working collider after Update")
	}
	if !a.Contains(geom.Pt(105, 5)) {
		t.Error("moved square should contain (105, 5)")
	}
}

func TestPolygonSetColliderClones(t *testing.T) {
	c := geom.Circle(5, 16)
	p := FromCollider(c)

	// Mutating the source collider must not leak into the polygon.
	c.Apply(geom.Translation(1000, 1000))

	b := p.Bounds()
	if b.X > 100 {
		t.Errorf("polygon aliased the source collider: bounds %v", b)
	}
}

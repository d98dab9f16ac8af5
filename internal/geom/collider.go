package geom

import "math"

// circleSegments is the default point count for the Circle factory.
const circleSegments = 128

// Collider is a polygonal collision shape: an ordered point sequence
// plus a cached axis-aligned bounding box. Consecutive points form the
// polygon's edges and the sequence is implicitly closed (the last point
// connects back to the first). No validation is performed; non-convex
// and even self-intersecting point sets are tolerated by every query.
//
// The bounding box is recomputed eagerly on every mutation, so a read
// always observes up-to-date bounds. Queries never mutate state and an
// empty collider never collides with, intersects, or contains anything.
//
// Copy a Collider with Clone; plain struct assignment shares the
// underlying point storage.
type Collider struct {
	points []Point
	bounds Rect
}

// Circle returns a collider whose points sample a circle of the given
// radius at evenly spaced angles. segments <= 0 selects the default of
// 128 points. Points are offset by +radius on both axes, so the circle's
// bounding square has its top-left corner at the local origin.
func Circle(radius float64, segments int) *Collider {
	if segments <= 0 {
		segments = circleSegments
	}

	step := 2 * math.Pi / float64(segments)

	var c Collider
	for i := 0; i < segments; i++ {
		sin, cos := math.Sincos(step * float64(i))
		c.Append(Point{
			X: sin*radius + radius,
			Y: cos*radius + radius,
		})
	}
	return &c
}

// Rectangle returns a 4-point collider for an axis-aligned box anchored
// at the local origin.
func Rectangle(w, h float64) *Collider {
	var c Collider
	c.Append(
		Point{X: 0, Y: 0},
		Point{X: w, Y: 0},
		Point{X: w, Y: h},
		Point{X: 0, Y: h},
	)
	return &c
}

// Append adds points to the polygon and refreshes the bounding box.
func (c *Collider) Append(pts ...Point) {
	c.points = append(c.points, pts...)
	c.updateBounds()
}

// Clear removes all points and resets the bounding box.
func (c *Collider) Clear() {
	c.points = c.points[:0]
	c.updateBounds()
}

// Apply maps every point through the transform in place and refreshes
// the bounding box. Degenerate transforms (zero scale, singular
// matrices) are applied as-is; the resulting coincident points are
// handled gracefully by all queries.
func (c *Collider) Apply(t Transform) {
	for i, p := range c.points {
		c.points[i] = t.Apply(p)
	}
	c.updateBounds()
}

// Clone returns an independent deep copy. Mutating the clone never
// affects the original.
func (c *Collider) Clone() *Collider {
	clone := &Collider{bounds: c.bounds}
	if len(c.points) > 0 {
		clone.points = make([]Point, len(c.points))
		copy(clone.points, c.points)
	}
	return clone
}

// Len returns the number of points.
func (c *Collider) Len() int {
	return len(c.points)
}

// Points returns a copy of the point sequence.
func (c *Collider) Points() []Point {
	pts := make([]Point, len(c.points))
	copy(pts, c.points)
	return pts
}

// Bounds returns the cached bounding box. It is the tight axis-aligned
// box enclosing all current points; an empty collider yields the zero
// Rect.
func (c *Collider) Bounds() Rect {
	return c.bounds
}

// updateBounds recomputes the tight bounding box over all points.
func (c *Collider) updateBounds() {
	if len(c.points) == 0 {
		c.bounds = Rect{}
		return
	}

	min := c.points[0]
	max := c.points[0]
	for _, p := range c.points[1:] {
		min.X = math.Min(min.X, p.X)
		min.Y = math.Min(min.Y, p.Y)
		max.X = math.Max(max.X, p.X)
		max.Y = math.Max(max.Y, p.Y)
	}

	c.bounds = Rect{X: min.X, Y: min.Y, W: max.X - min.X, H: max.Y - min.Y}
}

// orientation classifies the turn formed by the ordered triple p, q, r:
// 0 for collinear, 1 for clockwise, 2 for counter-clockwise. In screen
// coordinates (y grows downward) a negative cross product of the edge
// vectors is a clockwise turn.
func orientation(p, q, r Point) int {
	cross := q.Sub(p).Cross(r.Sub(q))
	switch {
	case cross < 0:
		return 1
	case cross > 0:
		return 2
	default:
		return 0
	}
}

// onSegment reports whether q lies within the bounding rectangle of the
// segment pr, inclusive on all four bounds. Only meaningful when p, q
// and r are already known to be collinear.
func onSegment(p, q, r Point) bool {
	return q.X <= math.Max(p.X, r.X) && q.X >= math.Min(p.X, r.X) &&
		q.Y <= math.Max(p.Y, r.Y) && q.Y >= math.Min(p.Y, r.Y)
}

// SegmentsIntersect reports whether the closed segments p1q1 and p2q2
// intersect. The general case uses the four orientation tests; if any
// triple is collinear the segments intersect only when the third point
// falls inside the other segment's bounding rectangle, so touching
// endpoints and collinear overlaps count as intersections. Zero-length
// segments are handled by the same rules.
func SegmentsIntersect(p1, q1, p2, q2 Point) bool {
	o1 := orientation(p1, q1, p2)
	o2 := orientation(p1, q1, q2)
	o3 := orientation(p2, q2, p1)
	o4 := orientation(p2, q2, q1)

	if o1 != o2 && o3 != o4 {
		return true
	}

	if o1 == 0 && onSegment(p1, p2, q1) {
		return true
	}
	if o2 == 0 && onSegment(p1, q2, q1) {
		return true
	}
	if o3 == 0 && onSegment(p2, p1, q2) {
		return true
	}
	if o4 == 0 && onSegment(p2, q1, q2) {
		return true
	}

	return false
}

// Intersects reports whether any edge of c crosses any edge of other.
// Both point sequences are treated as closed polygons and every edge
// pair is tested, O(n*m). Empty colliders never intersect anything.
//
// The broad-phase pre-check is absOverlap, which folds coordinates
// through abs before comparing; shapes that only overlap in negative
// coordinate space can therefore be rejected without reaching the edge
// tests. Collides runs its own signed pre-check, so the two queries can
// disagree for such shapes.
func (c *Collider) Intersects(other *Collider) bool {
	if !absOverlap(c.bounds, other.bounds) ||
		len(c.points) == 0 || len(other.points) == 0 {
		return false
	}

	a := append(append([]Point(nil), c.points...), c.points[0])
	b := append(append([]Point(nil), other.points...), other.points[0])

	for i := 1; i < len(a); i++ {
		p1, q1 := a[i-1], a[i]

		for j := 1; j < len(b); j++ {
			p2, q2 := b[j-1], b[j]

			if SegmentsIntersect(p1, q1, p2, q2) {
				return true
			}
		}
	}

	return false
}

// Contains reports whether the point lies inside the polygon, using the
// crossing-number test over the closed edge list. An edge is counted
// only when its endpoints' y-coordinates straddle point.Y under the
// half-open convention (one endpoint >= point.Y, the other <), which
// keeps shared vertices from double-toggling and guarantees the edge's
// y-span is non-zero before it is divided by. Horizontal edges never
// straddle and contribute nothing. Points exactly on a boundary resolve
// per the same convention: the left test uses <=, so a point on an edge
// to its right counts as inside. An empty collider contains nothing.
func (c *Collider) Contains(point Point) bool {
	inside := false

	for i, j := 0, len(c.points)-1; i < len(c.points); j, i = i, i+1 {
		pi := c.points[i]
		pj := c.points[j]

		if (pi.Y >= point.Y) != (pj.Y >= point.Y) &&
			point.X <= (pj.X-pi.X)*(point.Y-pi.Y)/(pj.Y-pi.Y)+pi.X {
			inside = !inside
		}
	}

	return inside
}

// Collides reports whether the two shapes overlap. Bounding boxes are
// checked first with the signed strict Overlaps test (an empty collider
// has a zero-size box and so collides with nothing), then any crossing
// edge pair counts as a collision, and finally other is considered
// fully inside c when every one of other's points is contained in c.
//
// The containment step is one-directional: c fully inside other is NOT
// detected here, so a.Collides(b) and b.Collides(a) differ when one
// shape surrounds the other without edge contact. Callers that need the
// symmetric answer must query both directions.
func (c *Collider) Collides(other *Collider) bool {
	if !c.bounds.Overlaps(other.bounds) {
		return false
	}

	if c.Intersects(other) {
		return true
	}

	for _, p := range other.points {
		if !c.Contains(p) {
			return false
		}
	}

	return true
}

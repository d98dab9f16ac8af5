// Package shape provides the scene-side owner of collision geometry.
// A Polygon holds local-space vertices authored once, plus
// position/rotation/scale state, and rederives world-space collision
// geometry each update tick without mutating the local original.
package shape

import (
	"github.com/andrewsmnv/polyarena/internal/geom"
)

// Transformable is the capability a Polygon needs from anything that
// drives it: produce the current local-to-world transform.
type Transformable interface {
	Transform() geom.Transform
}

// Polygon owns a reference collider in local coordinates and a working
// collider in world coordinates. Update regenerates the working
// collider by cloning the reference and applying the current transform,
// so local geometry is authored once and world geometry is rederived
// per tick. Queries always run against the working collider.
//
// Polygon is not safe for concurrent mutation; the intended pattern is
// a single Update per tick followed by read-only query fan-out.
type Polygon struct {
	pos    geom.Point
	origin geom.Point
	rot    float64 // radians
	scale  geom.Point

	local *geom.Collider // reference, local space
	world *geom.Collider // working, world space
}

// New creates a polygon whose reference collider is built from the
// given local-space vertices.
func New(vertices ...geom.Point) *Polygon {
	var local geom.Collider
	local.Append(vertices...)
	return newPolygon(&local)
}

// FromCollider creates a polygon that adopts c as its reference
// collider. The collider is cloned; the caller keeps ownership of c.
func FromCollider(c *geom.Collider) *Polygon {
	return newPolygon(c.Clone())
}

func newPolygon(local *geom.Collider) *Polygon {
	p := &Polygon{
		scale: geom.Pt(1, 1),
		local: local,
		world: local.Clone(),
	}
	p.Update()
	return p
}

// SetCollider replaces the reference collider (cloned) and refreshes
// the working collider.
func (p *Polygon) SetCollider(c *geom.Collider) {
	p.local = c.Clone()
	p.Update()
}

// Position returns the polygon's world position.
func (p *Polygon) Position() geom.Point {
	return p.pos
}

// SetPosition moves the polygon to the given world position.
func (p *Polygon) SetPosition(x, y float64) {
	p.pos = geom.Pt(x, y)
}

// Move shifts the polygon by (dx, dy).
func (p *Polygon) Move(dx, dy float64) {
	p.pos.X += dx
	p.pos.Y += dy
}

// Rotation returns the current rotation in radians.
func (p *Polygon) Rotation() float64 {
	return p.rot
}

// SetRotation sets the rotation in radians.
func (p *Polygon) SetRotation(rad float64) {
	p.rot = rad
}

// Rotate adds to the current rotation.
func (p *Polygon) Rotate(rad float64) {
	p.rot += rad
}

// SetScale sets the scale factors.
func (p *Polygon) SetScale(sx, sy float64) {
	p.scale = geom.Pt(sx, sy)
}

// SetOrigin sets the local pivot used for rotation and scaling.
func (p *Polygon) SetOrigin(x, y float64) {
	p.origin = geom.Pt(x, y)
}

// Transform returns the current local-to-world transform: translate to
// position, rotate, scale, all about the origin pivot.
func (p *Polygon) Transform() geom.Transform {
	return geom.Translation(p.pos.X, p.pos.Y).
		Rotate(p.rot).
		Scale(p.scale.X, p.scale.Y).
		Translate(-p.origin.X, -p.origin.Y)
}

// Update rederives the world collider from the reference collider and
// the current transform. Call once per tick after moving the polygon.
func (p *Polygon) Update() {
	p.world = p.local.Clone()
	p.world.Apply(p.Transform())
}

// Collider returns the working (world-space) collider.
func (p *Polygon) Collider() *geom.Collider {
	return p.world
}

// Reference returns the reference (local-space) collider.
func (p *Polygon) Reference() *geom.Collider {
	return p.local
}

// Bounds returns the world-space bounding box.
func (p *Polygon) Bounds() geom.Rect {
	return p.world.Bounds()
}

// WorldVertices returns the world-space point set for rendering.
func (p *Polygon) WorldVertices() []geom.Point {
	return p.world.Points()
}

// Contains reports whether a world-space point is inside the polygon.
func (p *Polygon) Contains(pt geom.Point) bool {
	return p.world.Contains(pt)
}

// Intersects reports whether any edges of the two polygons cross.
func (p *Polygon) Intersects(o *Polygon) bool {
	return p.world.Intersects(o.world)
}

// Collides reports whether the two polygons overlap, including o fully
// inside p. Like the underlying collider query, containment of p
// inside o is not detected from this direction.
func (p *Polygon) Collides(o *Polygon) bool {
	return p.world.Collides(o.world)
}

package arena

import (
	"math"
	"math/rand"

	"github.com/andrewsmnv/polyarena/internal/geom"
	"github.com/andrewsmnv/polyarena/internal/shape"
)

// Ship is the player's vessel: a triangle polygon with heading-based
// movement. The reference collider is authored once around the local
// origin; the world collider is rederived from position/rotation each
// tick.
type Ship struct {
	Poly        *shape.Polygon
	Vel         geom.Point // Cells per second
	Cooldown    int        // Ticks until the next shot is allowed
	InvulnTicks int        // Remaining invulnerability after respawn
}

// NewShip creates a ship of the given size pointing along +X at zero
// rotation.
func NewShip(size float64) *Ship {
	poly := shape.New(
		geom.Pt(size, 0),
		geom.Pt(-size*0.6, size*0.55),
		geom.Pt(-size*0.6, -size*0.55),
	)
	return &Ship{Poly: poly}
}

// Heading returns the unit direction the ship's nose points at.
func (s *Ship) Heading() geom.Point {
	sin, cos := math.Sincos(s.Poly.Rotation())
	return geom.Pt(cos, sin)
}

// Nose returns the world position of the ship's tip, used as the shot
// spawn point.
func (s *Ship) Nose() geom.Point {
	verts := s.Poly.WorldVertices()
	return verts[0]
}

// Invulnerable reports whether the ship currently ignores rock hits.
func (s *Ship) Invulnerable() bool {
	return s.InvulnTicks > 0
}

// Rock is a drifting asteroid with an irregular polygon collider.
type Rock struct {
	Poly      *shape.Polygon
	Vel       geom.Point
	Spin      float64 // Radians per second
	Radius    float64 // Nominal radius used for splitting and scoring
	Destroyed bool
}

// NewRock creates a rock at (x, y) with an irregular outline sampled at
// segments angles, each radius varied by ±jaggedness.
func NewRock(rng *rand.Rand, x, y, radius float64, segments int, jaggedness float64) *Rock {
	if segments < 3 {
		segments = 3
	}

	var c geom.Collider
	step := 2 * math.Pi / float64(segments)
	for i := 0; i < segments; i++ {
		r := radius * (1 - jaggedness + rng.Float64()*2*jaggedness)
		sin, cos := math.Sincos(step * float64(i))
		c.Append(geom.Pt(cos*r, sin*r))
	}

	poly := shape.FromCollider(&c)
	poly.SetPosition(x, y)
	poly.Update()

	return &Rock{
		Poly:   poly,
		Spin:   (rng.Float64() - 0.5) * 2,
		Radius: radius,
	}
}

// Shot is a projectile with a small square collider centered on its
// position.
type Shot struct {
	Poly  *shape.Polygon
	Vel   geom.Point
	TTL   int // Remaining lifetime in ticks
	Spent bool
}

// NewShot creates a shot at (x, y) moving along the given velocity.
func NewShot(x, y float64, vel geom.Point, size float64, ttl int) *Shot {
	half := size / 2
	poly := shape.New(
		geom.Pt(-half, -half),
		geom.Pt(half, -half),
		geom.Pt(half, half),
		geom.Pt(-half, half),
	)
	poly.SetPosition(x, y)
	poly.Update()

	return &Shot{Poly: poly, Vel: vel, TTL: ttl}
}

// wrap folds a coordinate into [0, limit).
func wrap(v, limit float64) float64 {
	if limit <= 0 {
		return v
	}
	v = math.Mod(v, limit)
	if v < 0 {
		v += limit
	}
	return v
}

package arena

// handleCollisions runs the per-tick hit tests. All queries go through
// the polygon colliders; the larger body is always the receiver so the
// containment half of Collides can catch a small body fully inside a
// big one.
func (g *Game) handleCollisions() {
	for _, rock := range g.rocks {
		if rock.Destroyed {
			continue
		}
		for _, shot := range g.shots {
			if shot.Spent {
				continue
			}
			if rock.Poly.Collides(shot.Poly) {
				shot.Spent = true
				g.destroyRock(rock)
				break
			}
		}
	}

	if g.ship.Invulnerable() || g.gameOver {
		return
	}
	for _, rock := range g.rocks {
		if rock.Destroyed {
			continue
		}
		if rock.Poly.Collides(g.ship.Poly) {
			g.destroyRock(rock)
			g.shipHit()
			break
		}
	}
}

// destroyRock scores the rock and splits it into smaller fragments if
// it is large enough.
func (g *Game) destroyRock(rock *Rock) {
	rock.Destroyed = true
	g.score += g.rockScore(rock.Radius)

	childRadius := rock.Radius / 2
	if childRadius < g.cfg.Rocks.MinRadius {
		return
	}

	pos := rock.Poly.Position()
	for i := 0; i < g.cfg.Rocks.SplitChildren; i++ {
		child := NewRock(g.rng, pos.X, pos.Y, childRadius, g.cfg.Rocks.Segments, g.cfg.Rocks.Jaggedness)
		g.assignRockVelocity(child)
		g.rocks = append(g.rocks, child)
	}
}

// rockScore returns the points awarded for a rock of the given radius.
// Smaller rocks are harder to hit and worth more.
func (g *Game) rockScore(radius float64) int {
	base := g.cfg.Rocks.ScorePerRock
	switch {
	case radius <= g.cfg.Rocks.MinRadius*1.5:
		return base * 3
	case radius <= g.cfg.Rocks.MaxRadius*0.6:
		return base * 2
	default:
		return base
	}
}

func (g *Game) shipHit() {
	g.lives--
	if g.lives <= 0 {
		g.gameOver = true
		return
	}
	g.respawnShip()
}

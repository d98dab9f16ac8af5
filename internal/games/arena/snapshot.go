package arena

// Snapshot captures the full simulation state at a tick. Float fields
// are quantized to fixed point so snapshots hash identically across
// runs with the same seed and input sequence.
type Snapshot struct {
	Tick     int
	Score    int
	Lives    int
	Wave     int
	GameOver bool

	ShipX, ShipY   int64
	ShipVX, ShipVY int64
	ShipAngle      int64

	Rocks []RockSnapshot
	Shots []ShotSnapshot
}

// RockSnapshot captures a single rock's state.
type RockSnapshot struct {
	X, Y   int64
	VX, VY int64
	Radius int64
}

// ShotSnapshot captures a single shot's state.
type ShotSnapshot struct {
	X, Y int64
	TTL  int
}

// quantize converts a float to fixed point with 3 decimal digits.
func quantize(v float64) int64 {
	return int64(v * 1000)
}

// Snapshot returns the current simulation state.
func (g *Game) Snapshot() Snapshot {
	shipPos := g.ship.Poly.Position()
	snap := Snapshot{
		Tick:      g.tick,
		Score:     g.score,
		Lives:     g.lives,
		Wave:      g.wave,
		GameOver:  g.gameOver,
		ShipX:     quantize(shipPos.X),
		ShipY:     quantize(shipPos.Y),
		ShipVX:    quantize(g.ship.Vel.X),
		ShipVY:    quantize(g.ship.Vel.Y),
		ShipAngle: quantize(g.ship.Poly.Rotation()),
	}

	for _, rock := range g.rocks {
		pos := rock.Poly.Position()
		snap.Rocks = append(snap.Rocks, RockSnapshot{
			X:      quantize(pos.X),
			Y:      quantize(pos.Y),
			VX:     quantize(rock.Vel.X),
			VY:     quantize(rock.Vel.Y),
			Radius: quantize(rock.Radius),
		})
	}
	for _, shot := range g.shots {
		pos := shot.Poly.Position()
		snap.Shots = append(snap.Shots, ShotSnapshot{
			X:   quantize(pos.X),
			Y:   quantize(pos.Y),
			TTL: shot.TTL,
		})
	}

	return snap
}

// Hash returns a deterministic hash of the snapshot, used to verify
// that two runs with the same seed and inputs stay in lockstep.
func (s Snapshot) Hash() uint64 {
	h := uint64(17)
	mix := func(v int64) {
		h = h*31 + uint64(v)
	}

	mix(int64(s.Tick))
	mix(int64(s.Score))
	mix(int64(s.Lives))
	mix(int64(s.Wave))
	if s.GameOver {
		mix(1)
	} else {
		mix(0)
	}

	mix(s.ShipX)
	mix(s.ShipY)
	mix(s.ShipVX)
	mix(s.ShipVY)
	mix(s.ShipAngle)

	for _, r := range s.Rocks {
		mix(r.X)
		mix(r.Y)
		mix(r.VX)
		mix(r.VY)
		mix(r.Radius)
	}
	for _, sh := range s.Shots {
		mix(sh.X)
		mix(sh.Y)
		mix(int64(sh.TTL))
	}

	return h
}

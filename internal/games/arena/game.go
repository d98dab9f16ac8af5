// Package arena implements Vector Arena, an asteroids-style game built
// on polygon collision geometry. The ship, rocks and shots are all
// polygons; every hit test goes through the collider queries.
package arena

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/andrewsmnv/polyarena/internal/config"
	"github.com/andrewsmnv/polyarena/internal/core"
	"github.com/andrewsmnv/polyarena/internal/geom"
	"github.com/andrewsmnv/polyarena/internal/registry"
)

// Package-level configuration, set by CLI flags before game creation.
var (
	configPath       string
	difficultyPreset string
)

// SetConfigPath sets a custom config file path (empty = search defaults).
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset to apply
// ("easy", "normal", "hard", "fixed").
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

func init() {
	registry.Register("arena", func() registry.Game {
		return NewGame()
	})
}

// Game implements the Vector Arena simulation.
type Game struct {
	cfg     config.ArenaConfig
	runtime core.RuntimeConfig
	diff    *config.DifficultyManager
	rng     *rand.Rand

	ship  *Ship
	rocks []*Rock
	shots []*Shot

	score int
	lives int
	wave  int
	tick  int

	gameOver bool
	paused   bool
}

// NewGame creates a Vector Arena game with configuration loaded from
// YAML (or embedded defaults).
func NewGame() *Game {
	cfg, err := config.LoadArena(configPath)
	if err != nil {
		cfg = config.DefaultArenaConfig()
	}
	if difficultyPreset != "" {
		config.ApplyArenaPreset(&cfg, config.DifficultyPreset(difficultyPreset))
	}
	return NewGameWithConfig(cfg)
}

// NewGameWithConfig creates a game with an explicit configuration,
// bypassing file loading. Used by tests.
func NewGameWithConfig(cfg config.ArenaConfig) *Game {
	return &Game{
		cfg:  cfg,
		diff: config.NewDifficultyManager(cfg.Difficulty),
	}
}

// ApplyDifficultyPreset reapplies a named preset on top of the current
// configuration. Takes effect on the next Reset.
func (g *Game) ApplyDifficultyPreset(preset string) {
	if preset == "" {
		return
	}
	config.ApplyArenaPreset(&g.cfg, config.DifficultyPreset(preset))
	g.diff = config.NewDifficultyManager(g.cfg.Difficulty)
}

// ID returns the unique game identifier.
func (g *Game) ID() string {
	return "arena"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Vector Arena"
}

// Reset initializes the game state for a new session.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	g.runtime = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))

	g.score = 0
	g.lives = g.cfg.Ship.Lives
	g.wave = 1
	g.tick = 0
	g.gameOver = false
	g.paused = false

	g.ship = NewShip(g.cfg.Ship.Size)
	g.respawnShip()
	g.ship.InvulnTicks = 0

	g.shots = nil
	g.rocks = nil
	g.spawnWave(g.cfg.Rocks.InitialCount)
}

// Step advances the simulation by one fixed tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		if in.Has(core.ActionRestart) {
			g.Reset(g.runtime)
		}
		return g.result()
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return g.result()
	}

	g.tick++
	dt := 1.0 / float64(g.runtime.TickRate)

	g.stepShip(in, dt)
	g.stepShots(dt)
	g.stepRocks(dt)
	g.handleCollisions()
	g.prune()

	if len(g.rocks) == 0 {
		g.wave++
		count := g.cfg.Rocks.InitialCount + g.wave - 1
		if max := g.diff.MaxRocks(g.cfg.Rocks.MaxCount, g.score, g.tick); count > max {
			count = max
		}
		g.spawnWave(count)
	}

	return g.result()
}

func (g *Game) stepShip(in core.InputFrame, dt float64) {
	ship := g.ship
	cfg := g.cfg.Ship

	if in.Has(core.ActionLeft) {
		ship.Poly.Rotate(-cfg.TurnRate * dt)
	}
	if in.Has(core.ActionRight) {
		ship.Poly.Rotate(cfg.TurnRate * dt)
	}
	if in.Has(core.ActionThrust) {
		ship.Vel = ship.Vel.Add(ship.Heading().Scale(cfg.Thrust * dt))
	}

	// Friction and speed clamp
	damp := 1 - cfg.Friction*dt
	if damp < 0 {
		damp = 0
	}
	ship.Vel = ship.Vel.Scale(damp)
	if speed := math.Hypot(ship.Vel.X, ship.Vel.Y); speed > cfg.MaxSpeed {
		ship.Vel = ship.Vel.Scale(cfg.MaxSpeed / speed)
	}

	pos := ship.Poly.Position()
	step := ship.Vel.Scale(dt)
	ship.Poly.SetPosition(
		wrap(pos.X+step.X, float64(g.runtime.ScreenW)),
		wrap(pos.Y+step.Y, float64(g.runtime.ScreenH)),
	)
	ship.Poly.Update()

	if ship.Cooldown > 0 {
		ship.Cooldown--
	}
	if ship.InvulnTicks > 0 {
		ship.InvulnTicks--
	}

	if in.Has(core.ActionFire) && ship.Cooldown == 0 {
		g.fire()
		ship.Cooldown = cfg.FireCooldownTicks
	}
}

func (g *Game) fire() {
	nose := g.ship.Nose()
	vel := g.ship.Heading().Scale(g.cfg.Shots.Speed).Add(g.ship.Vel)

	shot := NewShot(nose.X, nose.Y, vel, g.cfg.Shots.Size, g.cfg.Shots.TTLTicks)
	g.shots = append(g.shots, shot)
}

func (g *Game) stepShots(dt float64) {
	for _, shot := range g.shots {
		shot.TTL--
		if shot.TTL <= 0 {
			shot.Spent = true
			continue
		}
		pos := shot.Poly.Position()
		step := shot.Vel.Scale(dt)
		shot.Poly.SetPosition(
			wrap(pos.X+step.X, float64(g.runtime.ScreenW)),
			wrap(pos.Y+step.Y, float64(g.runtime.ScreenH)),
		)
		shot.Poly.Update()
	}
}

func (g *Game) stepRocks(dt float64) {
	for _, rock := range g.rocks {
		pos := rock.Poly.Position()
		step := rock.Vel.Scale(dt)
		rock.Poly.SetPosition(
			wrap(pos.X+step.X, float64(g.runtime.ScreenW)),
			wrap(pos.Y+step.Y, float64(g.runtime.ScreenH)),
		)
		rock.Poly.Rotate(rock.Spin * dt)
		rock.Poly.Update()
	}
}

// Keep-out box half-size around the ship for new rocks, and how many
// times an edge pick is re-rolled before it is accepted anyway.
const (
	spawnKeepOut = 8.0
	spawnRerolls = 16
)

// spawnWave creates count rocks along the screen border, moving in
// random directions at difficulty-scaled speeds. Picks that land inside
// the keep-out box around the ship are re-rolled, so a wave never drops
// a rock onto a ship parked near an edge.
func (g *Game) spawnWave(count int) {
	w := float64(g.runtime.ScreenW)
	h := float64(g.runtime.ScreenH)
	rocksCfg := g.cfg.Rocks

	shipPos := g.ship.Poly.Position()
	keepOut := geom.NewRect(
		shipPos.X-spawnKeepOut, shipPos.Y-spawnKeepOut,
		2*spawnKeepOut, 2*spawnKeepOut,
	)

	for i := 0; i < count; i++ {
		radius := rocksCfg.MinRadius + g.rng.Float64()*(rocksCfg.MaxRadius-rocksCfg.MinRadius)

		var x, y float64
		for try := 0; try < spawnRerolls; try++ {
			switch g.rng.Intn(4) {
			case 0:
				x, y = g.rng.Float64()*w, 0
			case 1:
				x, y = g.rng.Float64()*w, h-1
			case 2:
				x, y = 0, g.rng.Float64()*h
			default:
				x, y = w-1, g.rng.Float64()*h
			}
			if !keepOut.ContainsPoint(x, y) {
				break
			}
		}

		rock := NewRock(g.rng, x, y, radius, rocksCfg.Segments, rocksCfg.Jaggedness)
		g.assignRockVelocity(rock)
		g.rocks = append(g.rocks, rock)
	}
}

func (g *Game) assignRockVelocity(rock *Rock) {
	rocksCfg := g.cfg.Rocks
	base := rocksCfg.MinSpeed + g.rng.Float64()*(rocksCfg.MaxSpeed-rocksCfg.MinSpeed)
	speed := g.diff.RockSpeed(base, g.score, g.tick)
	angle := g.rng.Float64() * 2 * math.Pi

	sin, cos := math.Sincos(angle)
	rock.Vel = geom.Pt(cos, sin).Scale(speed)
}

// prune removes spent shots and destroyed rocks.
func (g *Game) prune() {
	shots := g.shots[:0]
	for _, s := range g.shots {
		if !s.Spent {
			shots = append(shots, s)
		}
	}
	g.shots = shots

	rocks := g.rocks[:0]
	for _, r := range g.rocks {
		if !r.Destroyed {
			rocks = append(rocks, r)
		}
	}
	g.rocks = rocks
}

func (g *Game) respawnShip() {
	g.ship.Poly.SetPosition(float64(g.runtime.ScreenW)/2, float64(g.runtime.ScreenH)/2)
	g.ship.Poly.SetRotation(-math.Pi / 2)
	g.ship.Vel = geom.Point{}
	g.ship.InvulnTicks = g.cfg.Ship.RespawnInvulnTicks
	g.ship.Poly.Update()
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Render draws the arena into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	for _, rock := range g.rocks {
		drawPolygon(dst, rock.Poly.WorldVertices(), '#', core.ColorGray)
	}
	for _, shot := range g.shots {
		pos := shot.Poly.Position()
		dst.SetCell(int(pos.X), int(pos.Y), '*', core.ColorBrightYellow)
	}

	shipColor := core.ColorBrightCyan
	if g.ship.Invulnerable() && g.tick%10 < 5 {
		shipColor = core.ColorGray // Flash while invulnerable
	}
	drawPolygon(dst, g.ship.Poly.WorldVertices(), '+', shipColor)

	dst.DrawTextColored(1, 0, fmt.Sprintf("SCORE %d", g.score), core.ColorBrightWhite)
	dst.DrawTextColored(1, 1, fmt.Sprintf("LIVES %d  WAVE %d", g.lives, g.wave), core.ColorWhite)

	if g.paused {
		drawBanner(dst, "PAUSED")
	}
	if g.gameOver {
		drawBanner(dst, "GAME OVER", "Press R to restart, B for menu")
	}
}

// drawBanner clears a boxed region in the middle of the screen and
// centers the given lines inside it.
func drawBanner(dst *core.Screen, lines ...string) {
	widest := 0
	for _, s := range lines {
		if len(s) > widest {
			widest = len(s)
		}
	}

	boxW := widest + 6
	boxH := len(lines) + 4
	x := (dst.Width() - boxW) / 2
	y := (dst.Height() - boxH) / 2

	for row := y + 1; row < y+boxH-1; row++ {
		for col := x + 1; col < x+boxW-1; col++ {
			dst.SetCell(col, row, ' ', core.ColorDefault)
		}
	}
	dst.DrawBox(x, y, boxW, boxH)

	for i, s := range lines {
		dst.DrawTextCentered(y+2+i, s)
	}
}

// drawPolygon renders a closed polygon outline with Bresenham lines
// between consecutive world vertices.
func drawPolygon(dst *core.Screen, verts []geom.Point, r rune, c core.Color) {
	n := len(verts)
	if n == 0 {
		return
	}
	if n == 1 {
		dst.SetCell(int(verts[0].X), int(verts[0].Y), r, c)
		return
	}
	for i := 0; i < n; i++ {
		a := verts[i]
		b := verts[(i+1)%n]
		dst.DrawLine(int(a.X), int(a.Y), int(b.X), int(b.Y), r, c)
	}
}

// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

// ArenaConfig contains all configuration for the Vector Arena game.
type ArenaConfig struct {
	Ship       ArenaShip        `yaml:"ship"`
	Shots      ArenaShots       `yaml:"shots"`
	Rocks      ArenaRocks       `yaml:"rocks"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ArenaShip defines the player ship parameters.
type ArenaShip struct {
	TurnRate           float64 `yaml:"turn_rate"`            // Radians per second
	Thrust             float64 `yaml:"thrust"`               // Acceleration, cells/sec^2
	MaxSpeed           float64 `yaml:"max_speed"`            // Cells per second
	Friction           float64 `yaml:"friction"`             // Velocity damping per second
	Size               float64 `yaml:"size"`                 // Ship triangle length in cells
	FireCooldownTicks  int     `yaml:"fire_cooldown_ticks"`  // Ticks between shots
	Lives              int     `yaml:"lives"`
	RespawnInvulnTicks int     `yaml:"respawn_invuln_ticks"` // Invulnerability after respawn
}

// ArenaShots defines projectile parameters.
type ArenaShots struct {
	Speed    float64 `yaml:"speed"`     // Cells per second
	TTLTicks int     `yaml:"ttl_ticks"` // Lifetime in ticks
	Size     float64 `yaml:"size"`      // Collider edge length in cells
}

// ArenaRocks defines asteroid parameters.
type ArenaRocks struct {
	InitialCount  int     `yaml:"initial_count"`
	MaxCount      int     `yaml:"max_count"`
	MinRadius     float64 `yaml:"min_radius"`
	MaxRadius     float64 `yaml:"max_radius"`
	Segments      int     `yaml:"segments"`       // Collider points per rock
	Jaggedness    float64 `yaml:"jaggedness"`     // Radial variation, 0..1
	MinSpeed      float64 `yaml:"min_speed"`      // Cells per second
	MaxSpeed      float64 `yaml:"max_speed"`      // Cells per second
	SplitChildren int     `yaml:"split_children"` // Fragments per destroyed rock
	ScorePerRock  int     `yaml:"score_per_rock"` // Base score, scaled by size tier
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to rock speed at max difficulty
	ExtraRocks      int     `yaml:"extra_rocks"`      // Additional live rocks allowed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// Package config provides YAML-based game configuration loading and
// difficulty presets for Vector Dash.
package config

import "time"

// DashConfig contains all tuning for a Vector Dash round.
// Distances are world units, Y grows upward from the lane floor.
type DashConfig struct {
	Lane       LaneConfig       `yaml:"lane"`
	Player     PlayerConfig     `yaml:"player"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Obstacles  ObstacleConfig   `yaml:"obstacles"`
	Coins      CoinConfig       `yaml:"coins"`
	Boost      BoostConfig      `yaml:"boost"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Effects    EffectsConfig    `yaml:"effects"`
	Controls   Controls         `yaml:"controls"`
}

// LaneConfig defines the size of one player's lane.
type LaneConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlayerConfig defines the player box and its vertical bounds.
type PlayerConfig struct {
	X             float64 `yaml:"x"`
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	FloorY        float64 `yaml:"floor_y"`
	CeilingMargin float64 `yaml:"ceiling_margin"` // ceilingY = lane height - margin
}

// PhysicsConfig defines per-tick integration constants.
type PhysicsConfig struct {
	Gravity        float64 `yaml:"gravity"`         // magnitude, applied toward the active surface
	LaunchVelocity float64 `yaml:"launch_velocity"` // speed away from the surface on a flip
	ScorePerTick   float64 `yaml:"score_per_tick"`
}

// ObstacleConfig defines pattern geometry.
type ObstacleConfig struct {
	Width             float64 `yaml:"width"`
	SingleMinHeight   float64 `yaml:"single_min_height"`
	SingleHeightRange float64 `yaml:"single_height_range"`
	GateSafeZone      float64 `yaml:"gate_safe_zone"`
	GateMargin        float64 `yaml:"gate_margin"`
	StairsBaseHeight  float64 `yaml:"stairs_base_height"`
	StairsStepHeight  float64 `yaml:"stairs_step_height"`
	TunnelWidth       float64 `yaml:"tunnel_width"`
	TunnelHeight      float64 `yaml:"tunnel_height"`
	TunnelMinY        float64 `yaml:"tunnel_min_y"`
	TunnelMargin      float64 `yaml:"tunnel_margin"`
}

// CoinConfig defines coin spawning and pickup.
type CoinConfig struct {
	SpawnChance   float64 `yaml:"spawn_chance"`
	Size          float64 `yaml:"size"`
	OffsetY       float64 `yaml:"offset_y"`
	RangeY        float64 `yaml:"range_y"`
	TopInset      float64 `yaml:"top_inset"`  // gap between upper coins and the lane top
	SpawnLead     float64 `yaml:"spawn_lead"` // extra distance past the right edge
	HitboxPadding float64 `yaml:"hitbox_padding"`
	PointerSize   float64 `yaml:"pointer_size"`
}

// BoostConfig defines the coin-funded speed boost.
type BoostConfig struct {
	Cost       int     `yaml:"cost"`
	Multiplier float64 `yaml:"multiplier"`
	DurationMs int     `yaml:"duration_ms"`
}

// DifficultyConfig defines how scroll speed and spawn cadence evolve.
type DifficultyConfig struct {
	Enabled            bool    `yaml:"enabled"`
	BaseSpeed          float64 `yaml:"base_speed"` // speed slider value, 1-10
	ScoreStep          int     `yaml:"score_step"`
	SpeedIncrease      float64 `yaml:"speed_increase"`
	IntervalDecreaseMs int     `yaml:"interval_decrease_ms"`
	BaseIntervalMs     int     `yaml:"base_interval_ms"`
	IntervalPerSpeedMs int     `yaml:"interval_per_speed_ms"`
	MinIntervalMs      int     `yaml:"min_interval_ms"`
}

// EffectsConfig defines durations of purely visual effects.
type EffectsConfig struct {
	FlipHighlightMs int `yaml:"flip_highlight_ms"`
	TrailEvery      int `yaml:"trail_every"` // ticks between trail marks
	TrailMs         int `yaml:"trail_ms"`
	SparkleMs       int `yaml:"sparkle_ms"`
	FloatTextMs     int `yaml:"float_text_ms"`
}

// Duration returns the boost length.
func (c BoostConfig) Duration() time.Duration {
	return ms(c.DurationMs)
}

// SpawnInterval returns the starting spawn interval for a base speed:
// max(min, base - speed*perSpeed).
func (c DifficultyConfig) SpawnInterval(baseSpeed float64) time.Duration {
	interval := float64(c.BaseIntervalMs) - baseSpeed*float64(c.IntervalPerSpeedMs)
	return max(ms(c.MinIntervalMs), time.Duration(interval*float64(time.Millisecond)))
}

// CeilingY returns the highest resting position of the player.
func (c DashConfig) CeilingY() float64 {
	return c.Lane.Height - c.Player.CeilingMargin
}

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}

// Millis converts a millisecond count from the config into a duration.
func Millis(n int) time.Duration {
	return ms(n)
}

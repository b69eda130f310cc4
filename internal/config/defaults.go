package config

import (
	_ "embed"
)

//go:embed defaults/dash.yaml
var defaultDashYAML []byte

// DefaultDashConfig returns the default Vector Dash configuration.
func DefaultDashConfig() DashConfig {
	return DashConfig{
		Lane: LaneConfig{
			Width:  800,
			Height: 400,
		},
		Player: PlayerConfig{
			X:             100,
			Width:         30,
			Height:        30,
			FloorY:        35,
			CeilingMargin: 35,
		},
		Physics: PhysicsConfig{
			Gravity:        0.6,
			LaunchVelocity: 15,
			ScorePerTick:   0.5,
		},
		Obstacles: ObstacleConfig{
			Width:             40,
			SingleMinHeight:   50,
			SingleHeightRange: 100,
			GateSafeZone:      170,
			GateMargin:        100,
			StairsBaseHeight:  50,
			StairsStepHeight:  40,
			TunnelWidth:       80,
			TunnelHeight:      30,
			TunnelMinY:        60,
			TunnelMargin:      150,
		},
		Coins: CoinConfig{
			SpawnChance:   0.2,
			Size:          20,
			OffsetY:       120,
			RangeY:        10,
			TopInset:      5,
			SpawnLead:     50,
			HitboxPadding: 15,
			PointerSize:   1,
		},
		Boost: BoostConfig{
			Cost:       5,
			Multiplier: 2.5,
			DurationMs: 1500,
		},
		Difficulty: DifficultyConfig{
			Enabled:            true,
			BaseSpeed:          5,
			ScoreStep:          100,
			SpeedIncrease:      0.05,
			IntervalDecreaseMs: 10,
			BaseIntervalMs:     2000,
			IntervalPerSpeedMs: 150,
			MinIntervalMs:      800,
		},
		Effects: EffectsConfig{
			FlipHighlightMs: 750,
			TrailEvery:      5,
			TrailMs:         500,
			SparkleMs:       800,
			FloatTextMs:     1000,
		},
		Controls: DefaultControls(),
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "dash", "vectordash":
		return defaultDashYAML
	default:
		return nil
	}
}

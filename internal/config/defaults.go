package config

import (
	_ "embed"
)

//go:embed defaults/neonstrike.yaml
var defaultNeonStrikeYAML []byte

//go:embed defaults/voidrunner.yaml
var defaultVoidRunnerYAML []byte

// DefaultNeonStrikeConfig returns the default Neon Strike configuration.
func DefaultNeonStrikeConfig() NeonStrikeConfig {
	return NeonStrikeConfig{
		Spawn: NeonSpawn{
			BaseIntervalMs: 2000,
			MinIntervalMs:  300,
			ScoreDivisor:   5,
			StageFactor:    0.5,
			Margin:         100,
		},
		Enemies: NeonEnemies{
			PhantomRatio:      0.6,
			BaseSpeed:         1.2,
			ScoreSpeedDivisor: 1000,
			BossSpeed:         0.5,
			StageSpeedFactor:  0.2,
			MinRadius:         15,
			MaxRadius:         25,
			BossRadius:        60,
			Health:            1,
			BossHealth:        20,
			HealthStageStep:   3,
			BossEvery:         1000,
			KillScore:         10,
			BossScore:         500,
			CoreRadius:        40,
			HitPadding:        10,
			Limit:             128,
		},
		Weapons: NeonWeapons{
			BulletSpeed:     12,
			MuzzleOffset:    45,
			DoubleSpread:    0.1,
			TripleSpread:    0.2,
			DoubleFromStage: 2,
			TripleFromStage: 4,
			AimSpeed:        0.08,
			RapidCooldown:   6,
			Limit:           256,
		},
		PowerUps: NeonPowerUps{
			DropChance:     0.15,
			PickupRadius:   40,
			DurationFrames: 600,
			Decay:          0.005,
			Limit:          32,
		},
		Gameplay: NeonGameplay{
			Lives:           3,
			StageScore:      1000,
			MaxStage:        5,
			GameOverDelayMs: 1000,
			ParticleLimit:   600,
		},
		Difficulty: DifficultyConfig{SpeedScale: 1, SpawnScale: 1},
	}
}

// DefaultVoidRunnerConfig returns the default Void Runner configuration.
func DefaultVoidRunnerConfig() VoidRunnerConfig {
	return VoidRunnerConfig{
		Player: VoidPlayer{
			Size:         24,
			Accel:        1.2,
			Friction:     0.94,
			SeekDeadzone: 5,
		},
		Walls: VoidWalls{
			BaseSpeed:       3,
			StageSpeed:      0.5,
			MinWidth:        80,
			WidthRange:      150,
			MinHeight:       15,
			HeightRange:     30,
			ScaleBase:       0.8,
			ScaleStage:      0.2,
			SpawnOffset:     150,
			Jitter:          200,
			EdgeBias:        0.8,
			CullMargin:      500,
			MorphMinSeconds: 2,
			MorphMaxSeconds: 4,
			MorphMinScale:   0.7,
			MorphMaxScale:   1.3,
			Limit:           64,
		},
		Spawn: VoidSpawn{
			BaseIntervalMs: 2500,
			MinIntervalMs:  400,
			StageStepMs:    300,
			IntensityMs:    500,
		},
		Gameplay: VoidGameplay{
			StageSeconds:   30,
			MaxStage:       5,
			FramesPerPoint: 10,
			DisplayStep:    10,
		},
		Difficulty: DifficultyConfig{SpeedScale: 1, SpawnScale: 1},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "neonstrike":
		return defaultNeonStrikeYAML
	case "voidrunner":
		return defaultVoidRunnerYAML
	default:
		return nil
	}
}

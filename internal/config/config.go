// Package config provides YAML-based game configuration loading and
// difficulty presets for the arcade platform.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// NeonStrikeConfig contains all configuration for Neon Strike.
type NeonStrikeConfig struct {
	Spawn      NeonSpawn        `yaml:"spawn"`
	Enemies    NeonEnemies      `yaml:"enemies"`
	Weapons    NeonWeapons      `yaml:"weapons"`
	PowerUps   NeonPowerUps     `yaml:"powerups"`
	Gameplay   NeonGameplay     `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// NeonSpawn defines enemy spawn cadence.
// interval = max(min_interval_ms, (base_interval_ms - score/score_divisor) / (1 + (stage-1)*stage_factor))
type NeonSpawn struct {
	BaseIntervalMs float64 `yaml:"base_interval_ms"`
	MinIntervalMs  float64 `yaml:"min_interval_ms"`
	ScoreDivisor   float64 `yaml:"score_divisor"`
	StageFactor    float64 `yaml:"stage_factor"`
	Margin         float64 `yaml:"margin"` // Pixels outside the canvas edge
}

// NeonEnemies defines enemy attributes. Speeds are pixels per frame.
type NeonEnemies struct {
	PhantomRatio      float64 `yaml:"phantom_ratio"`
	BaseSpeed         float64 `yaml:"base_speed"`
	ScoreSpeedDivisor float64 `yaml:"score_speed_divisor"` // speed += score / divisor
	BossSpeed         float64 `yaml:"boss_speed"`
	StageSpeedFactor  float64 `yaml:"stage_speed_factor"`
	MinRadius         float64 `yaml:"min_radius"`
	MaxRadius         float64 `yaml:"max_radius"`
	BossRadius        float64 `yaml:"boss_radius"`
	Health            int     `yaml:"health"`
	BossHealth        int     `yaml:"boss_health"`
	HealthStageStep   int     `yaml:"health_stage_step"` // health *= 1 + stage/step
	BossEvery         int     `yaml:"boss_every"`        // Boss spawns on exact multiples of this score
	KillScore         int     `yaml:"kill_score"`
	BossScore         int     `yaml:"boss_score"`
	CoreRadius        float64 `yaml:"core_radius"`
	HitPadding        float64 `yaml:"hit_padding"`
	Limit             int     `yaml:"limit"`
}

// NeonWeapons defines the core's blaster.
type NeonWeapons struct {
	BulletSpeed     float64 `yaml:"bullet_speed"`
	MuzzleOffset    float64 `yaml:"muzzle_offset"`
	DoubleSpread    float64 `yaml:"double_spread"`
	TripleSpread    float64 `yaml:"triple_spread"`
	DoubleFromStage int     `yaml:"double_from_stage"`
	TripleFromStage int     `yaml:"triple_from_stage"`
	AimSpeed        float64 `yaml:"aim_speed"`      // Radians per frame for keyboard aiming
	RapidCooldown   float64 `yaml:"rapid_cooldown"` // Frames between shots while fire is held with RAPID
	Limit           int     `yaml:"limit"`
}

// NeonPowerUps defines pickups dropped by enemies.
type NeonPowerUps struct {
	DropChance     float64 `yaml:"drop_chance"`
	PickupRadius   float64 `yaml:"pickup_radius"`
	DurationFrames float64 `yaml:"duration_frames"`
	Decay          float64 `yaml:"decay"` // Life lost per frame
	Limit          int     `yaml:"limit"`
}

// NeonGameplay defines lives and stage progression.
type NeonGameplay struct {
	Lives           int `yaml:"lives"`
	StageScore      int `yaml:"stage_score"`
	MaxStage        int `yaml:"max_stage"`
	GameOverDelayMs int `yaml:"game_over_delay_ms"`
	ParticleLimit   int `yaml:"particle_limit"`
}

// Validate reports the first nonsensical value.
func (c NeonStrikeConfig) Validate() error {
	switch {
	case c.Spawn.MinIntervalMs <= 0:
		return fmt.Errorf("%w: spawn.min_interval_ms must be positive", ErrInvalidConfig)
	case c.Spawn.ScoreDivisor <= 0:
		return fmt.Errorf("%w: spawn.score_divisor must be positive", ErrInvalidConfig)
	case c.Enemies.ScoreSpeedDivisor <= 0:
		return fmt.Errorf("%w: enemies.score_speed_divisor must be positive", ErrInvalidConfig)
	case c.Enemies.MaxRadius < c.Enemies.MinRadius:
		return fmt.Errorf("%w: enemies.max_radius below min_radius", ErrInvalidConfig)
	case c.Enemies.Health < 1 || c.Enemies.BossHealth < 1:
		return fmt.Errorf("%w: enemy health must be at least 1", ErrInvalidConfig)
	case c.Enemies.HealthStageStep < 1:
		return fmt.Errorf("%w: enemies.health_stage_step must be at least 1", ErrInvalidConfig)
	case c.Enemies.BossEvery < 1:
		return fmt.Errorf("%w: enemies.boss_every must be at least 1", ErrInvalidConfig)
	case c.Enemies.Limit < 1 || c.Weapons.Limit < 1 || c.PowerUps.Limit < 1:
		return fmt.Errorf("%w: entity limits must be at least 1", ErrInvalidConfig)
	case c.Gameplay.Lives < 1:
		return fmt.Errorf("%w: gameplay.lives must be at least 1", ErrInvalidConfig)
	case c.Gameplay.StageScore < 1:
		return fmt.Errorf("%w: gameplay.stage_score must be at least 1", ErrInvalidConfig)
	case c.Gameplay.MaxStage < 1:
		return fmt.Errorf("%w: gameplay.max_stage must be at least 1", ErrInvalidConfig)
	}
	return nil
}

// VoidRunnerConfig contains all configuration for Void Runner.
type VoidRunnerConfig struct {
	Player     VoidPlayer       `yaml:"player"`
	Walls      VoidWalls        `yaml:"walls"`
	Spawn      VoidSpawn        `yaml:"spawn"`
	Gameplay   VoidGameplay     `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// VoidPlayer defines the avatar's movement.
type VoidPlayer struct {
	Size         float64 `yaml:"size"`
	Accel        float64 `yaml:"accel"`    // Pixels per frame squared
	Friction     float64 `yaml:"friction"` // Velocity multiplier per frame
	SeekDeadzone float64 `yaml:"seek_deadzone"`
}

// VoidWalls defines obstacle shape and motion.
type VoidWalls struct {
	BaseSpeed       float64 `yaml:"base_speed"`
	StageSpeed      float64 `yaml:"stage_speed"`
	MinWidth        float64 `yaml:"min_width"`
	WidthRange      float64 `yaml:"width_range"`
	MinHeight       float64 `yaml:"min_height"`
	HeightRange     float64 `yaml:"height_range"`
	ScaleBase       float64 `yaml:"scale_base"` // size and speed multiplier = scale_base + stage*scale_stage
	ScaleStage      float64 `yaml:"scale_stage"`
	SpawnOffset     float64 `yaml:"spawn_offset"`
	Jitter          float64 `yaml:"jitter"`
	EdgeBias        float64 `yaml:"edge_bias"`
	CullMargin      float64 `yaml:"cull_margin"`
	MorphMinSeconds float64 `yaml:"morph_min_seconds"`
	MorphMaxSeconds float64 `yaml:"morph_max_seconds"`
	MorphMinScale   float64 `yaml:"morph_min_scale"`
	MorphMaxScale   float64 `yaml:"morph_max_scale"`
	Limit           int     `yaml:"limit"`
}

// VoidSpawn defines wall spawn cadence.
// interval = max(min_interval_ms, base_interval_ms - stage*stage_step_ms - intensity*intensity_ms)
type VoidSpawn struct {
	BaseIntervalMs float64 `yaml:"base_interval_ms"`
	MinIntervalMs  float64 `yaml:"min_interval_ms"`
	StageStepMs    float64 `yaml:"stage_step_ms"`
	IntensityMs    float64 `yaml:"intensity_ms"`
}

// VoidGameplay defines scoring and stages.
type VoidGameplay struct {
	StageSeconds   int `yaml:"stage_seconds"`
	MaxStage       int `yaml:"max_stage"`
	FramesPerPoint int `yaml:"frames_per_point"`
	DisplayStep    int `yaml:"display_step"`
}

// Validate reports the first nonsensical value.
func (c VoidRunnerConfig) Validate() error {
	switch {
	case c.Player.Size <= 0:
		return fmt.Errorf("%w: player.size must be positive", ErrInvalidConfig)
	case c.Player.Friction <= 0 || c.Player.Friction > 1:
		return fmt.Errorf("%w: player.friction must be in (0, 1]", ErrInvalidConfig)
	case c.Walls.MorphMaxSeconds < c.Walls.MorphMinSeconds || c.Walls.MorphMinSeconds <= 0:
		return fmt.Errorf("%w: walls morph duration range is invalid", ErrInvalidConfig)
	case c.Walls.CullMargin <= 0:
		return fmt.Errorf("%w: walls.cull_margin must be positive", ErrInvalidConfig)
	case c.Walls.Limit < 1:
		return fmt.Errorf("%w: walls.limit must be at least 1", ErrInvalidConfig)
	case c.Spawn.MinIntervalMs <= 0:
		return fmt.Errorf("%w: spawn.min_interval_ms must be positive", ErrInvalidConfig)
	case c.Gameplay.StageSeconds < 1:
		return fmt.Errorf("%w: gameplay.stage_seconds must be at least 1", ErrInvalidConfig)
	case c.Gameplay.MaxStage < 1:
		return fmt.Errorf("%w: gameplay.max_stage must be at least 1", ErrInvalidConfig)
	case c.Gameplay.FramesPerPoint < 1:
		return fmt.Errorf("%w: gameplay.frames_per_point must be at least 1", ErrInvalidConfig)
	}
	return nil
}

package neonstrike

import "github.com/vovakirdan/neon-arcade/internal/core"

// EnemyKind identifies an enemy archetype.
type EnemyKind uint8

const (
	EnemyPhantom EnemyKind = iota
	EnemyReaper
	EnemyBoss
)

func (k EnemyKind) String() string {
	switch k {
	case EnemyPhantom:
		return "PHANTOM"
	case EnemyReaper:
		return "REAPER"
	case EnemyBoss:
		return "BOSS"
	default:
		return "UNKNOWN"
	}
}

// Enemy homes in on the core. MaxHealth is fixed at spawn.
type Enemy struct {
	ID        int
	Pos       core.Vec
	Kind      EnemyKind
	Speed     float64 // Pixels per frame
	Radius    float64
	Angle     float64 // Spin, cosmetic
	Health    int
	MaxHealth int
	Pulse     float64 // Pulse phase, cosmetic
}

// BulletKind records whether a bullet was fired under a power-up.
type BulletKind uint8

const (
	BulletNormal BulletKind = iota
	BulletPower
)

// Bullet travels in a straight line until it leaves the canvas or hits an enemy.
type Bullet struct {
	Pos  core.Vec
	Vel  core.Vec
	Kind BulletKind
}

// PowerKind identifies a pickup.
type PowerKind uint8

const (
	PowerTriple PowerKind = iota
	PowerRapid
	PowerShield
)

func (k PowerKind) String() string {
	switch k {
	case PowerTriple:
		return "TRIPLE"
	case PowerRapid:
		return "RAPID"
	case PowerShield:
		return "SHIELD"
	default:
		return "UNKNOWN"
	}
}

// PowerUp is a pickup that decays where it dropped.
type PowerUp struct {
	Pos  core.Vec
	Kind PowerKind
	Life float64
}

// FireMode is the blaster mode granted by a timed power-up.
type FireMode uint8

const (
	FireNormal FireMode = iota
	FireTriple
	FireRapid
)

// Label returns the HUD label for an active mode, empty for normal fire.
func (m FireMode) Label() string {
	switch m {
	case FireTriple:
		return "TRIPLE SHOT"
	case FireRapid:
		return "RAPID FIRE"
	default:
		return ""
	}
}

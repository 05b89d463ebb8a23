// Package shooter implements the arcade shooter simulation: a craft sliding
// along the bottom of the field fires upward at enemies that sway down from
// the top. The engine is host-agnostic; terminal and window hosts feed it a
// held-keys snapshot once per frame and render it through a gfx.Surface.
package shooter

import "github.com/vovakirdan/star-shooter/internal/theme"

// Field dimensions in logical pixels. Collision bounds and spawn margins are
// expressed in these units.
const (
	FieldWidth  = 480
	FieldHeight = 640
)

// Player constants
const (
	PlayerWidth        = 36
	PlayerHeight       = 18
	PlayerSpeed        = 6
	PlayerBottomOffset = 60 // Spawn y is FieldHeight minus this
	FireCooldown       = 13 // Ticks between shots
)

// Bullet constants
const (
	BulletRadius = 4
	BulletSpeed  = 10
	MuzzleOffset = 8   // Gap between the craft's nose and a new bullet
	BulletCullY  = -20 // Bullets at or above this y are dropped
)

// Enemy constants
const (
	SpawnInterval   = 48 // Ticks between spawns
	SpawnMargin     = 30
	SpawnY          = -16
	EnemyMinRadius  = 16
	EnemyMaxRadius  = 24
	EnemyMinSpeed   = 2.2
	EnemyMaxSpeed   = 3.7
	EnemyMinSway    = 1
	EnemyMaxSway    = 3.5
	SwayPeriod      = 32 // Vertical distance per radian of sway
	EnemyCullMargin = 30 // Enemies below FieldHeight+this are dropped
)

// Session constants
const (
	StartingLives = 3
	PointsPerKill = 10
	HitInset      = 4 // Forgiveness margin of the player contact test
)

// Player is the craft controlled by the host input. Y never changes after spawn.
type Player struct {
	X, Y     float64
	W, H     float64
	Speed    float64
	Cooldown int // Ticks until the next shot is allowed
}

// newPlayer returns the craft at its spawn point.
func newPlayer() Player {
	return Player{
		X:     FieldWidth / 2,
		Y:     FieldHeight - PlayerBottomOffset,
		W:     PlayerWidth,
		H:     PlayerHeight,
		Speed: PlayerSpeed,
	}
}

// Bullet is a projectile travelling straight up.
type Bullet struct {
	X, Y  float64
	R     float64
	Speed float64
}

// Enemy descends at a constant speed while swaying sideways.
type Enemy struct {
	X, Y    float64
	R       float64
	Speed   float64
	Sway    float64
	Variant theme.Variant // Only used for drawing
}

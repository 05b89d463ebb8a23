package shooter

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Snapshot is a flat copy of the session for determinism checks.
// Uses primitive types only for stable hashing.
type Snapshot struct {
	Tick       uint64
	Score      int
	Lives      int
	State      string
	SpawnTimer int

	PlayerX  float64
	Cooldown int

	// Each bullet is 2 floats: X, Y
	BulletCount int
	BulletData  []float64

	// Each enemy is 5 floats: X, Y, R, Speed, Sway
	EnemyCount int
	EnemyData  []float64
}

// Snapshot returns the current session state.
func (e *Engine) Snapshot() Snapshot {
	bulletData := make([]float64, 0, len(e.bullets)*2)
	for _, b := range e.bullets {
		bulletData = append(bulletData, b.X, b.Y)
	}

	enemyData := make([]float64, 0, len(e.enemies)*5)
	for _, en := range e.enemies {
		enemyData = append(enemyData, en.X, en.Y, en.R, en.Speed, en.Sway)
	}

	return Snapshot{
		Tick:       e.ticks,
		Score:      e.score,
		Lives:      e.lives,
		State:      e.state.String(),
		SpawnTimer: e.spawnTimer,

		PlayerX:  e.player.X,
		Cooldown: e.player.Cooldown,

		BulletCount: len(e.bullets),
		BulletData:  bulletData,
		EnemyCount:  len(e.enemies),
		EnemyData:   enemyData,
	}
}

// Hash returns an xxhash digest of the snapshot.
func (snap *Snapshot) Hash() uint64 {
	d := xxhash.New()
	buf := make([]byte, 0, 8)

	putInt := func(v uint64) {
		buf = binary.LittleEndian.AppendUint64(buf[:0], v)
		_, _ = d.Write(buf)
	}
	putFloat := func(v float64) {
		putInt(math.Float64bits(v))
	}

	putInt(snap.Tick)
	putInt(uint64(snap.Score))      //#nosec G115 -- hash computation
	putInt(uint64(snap.Lives))      //#nosec G115 -- hash computation
	putInt(uint64(snap.SpawnTimer)) //#nosec G115 -- hash computation
	putInt(uint64(snap.Cooldown))   //#nosec G115 -- hash computation
	_, _ = d.WriteString(snap.State)
	putFloat(snap.PlayerX)

	putInt(uint64(snap.BulletCount)) //#nosec G115 -- hash computation
	for _, v := range snap.BulletData {
		putFloat(v)
	}
	putInt(uint64(snap.EnemyCount)) //#nosec G115 -- hash computation
	for _, v := range snap.EnemyData {
		putFloat(v)
	}

	return d.Sum64()
}

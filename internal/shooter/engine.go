package shooter

import (
	"io"
	"math"
	"math/rand"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/star-shooter/internal/core"
	"github.com/vovakirdan/star-shooter/internal/theme"
)

// Engine owns one shooter session. It is not safe for concurrent use; each
// host drives its own engine from a single goroutine.
type Engine struct {
	player     Player
	bullets    []Bullet
	enemies    []Enemy
	score      int
	lives      int
	spawnTimer int
	state      State
	ticks      uint64

	spawner *Spawner
	keys    Keys
	loop    Loop
	logger  *log.Logger
}

type options struct {
	rng      *rand.Rand
	variants []theme.Variant
	logger   *log.Logger
}

// Option configures an Engine.
type Option func(*options)

// WithRand sets the random source used for enemy spawns.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) {
		o.rng = rng
	}
}

// WithSeed seeds a private random source; equal seeds and inputs give equal games.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.rng = rand.New(rand.NewSource(seed)) //#nosec G404 -- gameplay randomness
	}
}

// WithVariants sets the enemy kinds the spawner picks from.
func WithVariants(variants ...theme.Variant) Option {
	return func(o *options) {
		o.variants = variants
	}
}

// WithLogger sets the logger for session events. The default discards output.
func WithLogger(l *log.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// New creates an engine in the menu state.
func New(opts ...Option) *Engine {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(time.Now().UnixNano())) //#nosec G404 -- gameplay randomness
	}
	if o.logger == nil {
		o.logger = log.New(io.Discard)
	}

	e := &Engine{
		spawner: NewSpawner(o.rng, o.variants...),
		keys:    NewKeys(),
		logger:  o.logger,
	}
	e.reset()
	return e
}

// Tick advances the simulation by one step. It does nothing outside play.
func (e *Engine) Tick(in Input) {
	if e.state != StatePlaying {
		return
	}
	e.ticks++

	e.movePlayer(in)
	e.fire(in)
	e.advanceBullets()
	e.advanceSpawnTimer()
	e.advanceEnemies()
	e.resolveBulletHits()
	e.resolvePlayerContacts()
}

// Frame samples the held keys once and ticks. Hosts call it once per refresh.
func (e *Engine) Frame() {
	e.Tick(e.keys.Input())
}

func (e *Engine) movePlayer(in Input) {
	p := &e.player
	if in.Left && p.X-p.W/2 > 0 {
		p.X -= p.Speed
	}
	if in.Right && p.X+p.W/2 < FieldWidth {
		p.X += p.Speed
	}
}

func (e *Engine) fire(in Input) {
	p := &e.player
	if in.Fire && p.Cooldown <= 0 {
		e.bullets = append(e.bullets, Bullet{
			X:     p.X,
			Y:     p.Y - p.H/2 - MuzzleOffset,
			R:     BulletRadius,
			Speed: BulletSpeed,
		})
		p.Cooldown = FireCooldown
	}
	if p.Cooldown > 0 {
		p.Cooldown--
	}
}

func (e *Engine) advanceBullets() {
	kept := e.bullets[:0]
	for _, b := range e.bullets {
		b.Y -= b.Speed
		if b.Y > BulletCullY {
			kept = append(kept, b)
		}
	}
	e.bullets = kept
}

func (e *Engine) advanceSpawnTimer() {
	e.spawnTimer++
	if e.spawnTimer >= SpawnInterval {
		e.enemies = append(e.enemies, e.spawner.Spawn())
		e.spawnTimer = 0
	}
}

// advanceEnemies moves enemies down; the sideways drift is a function of the
// new y so the sway stays in phase with height.
func (e *Engine) advanceEnemies() {
	for i := range e.enemies {
		en := &e.enemies[i]
		en.Y += en.Speed
		en.X += math.Sin(en.Y/SwayPeriod) * en.Sway
	}
}

// resolveBulletHits pairs each enemy, newest first, with at most one bullet.
func (e *Engine) resolveBulletHits() {
	for i := len(e.enemies) - 1; i >= 0; i-- {
		en := e.enemies[i]
		for j := len(e.bullets) - 1; j >= 0; j-- {
			b := e.bullets[j]
			if !core.CirclesOverlap(en.X, en.Y, en.R, b.X, b.Y, b.R) {
				continue
			}
			e.enemies = slices.Delete(e.enemies, i, i+1)
			e.bullets = slices.Delete(e.bullets, j, j+1)
			e.score += PointsPerKill
			break
		}
	}
}

// resolvePlayerContacts drops enemies that left the field and charges a life
// for each one touching the craft. Once the last life is gone no further
// contacts are tested, but exited enemies are still dropped.
func (e *Engine) resolvePlayerContacts() {
	p := e.player
	over := false
	for i := len(e.enemies) - 1; i >= 0; i-- {
		en := e.enemies[i]
		if en.Y > FieldHeight+EnemyCullMargin {
			e.enemies = slices.Delete(e.enemies, i, i+1)
			continue
		}
		if over {
			continue
		}
		halfW := en.R + p.W/2 - HitInset
		halfH := en.R + p.H/2 - HitInset
		if !core.WithinBox(en.X, en.Y, p.X, p.Y, halfW, halfH) {
			continue
		}
		e.enemies = slices.Delete(e.enemies, i, i+1)
		e.lives--
		e.logger.Debug("player hit", "lives", e.lives)
		if e.lives <= 0 {
			e.lives = 0
			e.gameOver()
			over = true
		}
	}
}

// OnKeyDown records a key press in the held-keys snapshot.
// It reports whether the code is one the engine reacts to.
func (e *Engine) OnKeyDown(code string) bool {
	return e.keys.Down(code)
}

// OnKeyUp records a key release.
func (e *Engine) OnKeyUp(code string) bool {
	return e.keys.Up(code)
}

// Keys returns the held-keys snapshot.
func (e *Engine) Keys() *Keys {
	return &e.keys
}

// Loop returns the frame-loop handle.
func (e *Engine) Loop() *Loop {
	return &e.loop
}

// Score returns the current score.
func (e *Engine) Score() int {
	return e.score
}

// Lives returns the remaining lives.
func (e *Engine) Lives() int {
	return e.lives
}

// State returns the session phase.
func (e *Engine) State() State {
	return e.state
}

// Ticks returns the number of ticks simulated since the last start.
func (e *Engine) Ticks() uint64 {
	return e.ticks
}

// Player returns a copy of the craft.
func (e *Engine) Player() Player {
	return e.player
}

// Bullets returns a copy of the live bullets.
func (e *Engine) Bullets() []Bullet {
	return slices.Clone(e.bullets)
}

// Enemies returns a copy of the live enemies, oldest first.
func (e *Engine) Enemies() []Enemy {
	return slices.Clone(e.enemies)
}

// PlaceBullet adds a bullet at an explicit position. Used by scripted
// scenarios and hosts restoring a session.
func (e *Engine) PlaceBullet(b Bullet) {
	e.bullets = append(e.bullets, b)
}

// PlaceEnemy adds an enemy at an explicit position.
func (e *Engine) PlaceEnemy(en Enemy) {
	e.enemies = append(e.enemies, en)
}

// SetLives overrides the remaining lives, clamped to [0, StartingLives].
func (e *Engine) SetLives(n int) {
	e.lives = core.Clamp(n, 0, StartingLives)
}

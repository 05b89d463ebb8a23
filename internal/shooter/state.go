package shooter

// State is the session phase.
type State int

const (
	StateMenu State = iota
	StatePlaying
	StateGameOver
)

// String returns the lowercase phase name.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Start resets the session and begins play. It is valid from any state.
func (e *Engine) Start() {
	e.reset()
	e.state = StatePlaying
	gen := e.loop.Start()
	e.logger.Debug("session started", "gen", gen)
}

// Restart is identical to Start; hosts bind it to the restart control.
func (e *Engine) Restart() {
	e.Start()
}

// OnStart is the start-control trigger.
func (e *Engine) OnStart() {
	e.Start()
}

// OnRestart is the restart-control trigger.
func (e *Engine) OnRestart() {
	e.Restart()
}

// reset restores every session field to its starting value.
// Held keys survive so a control already pressed keeps acting.
func (e *Engine) reset() {
	e.player = newPlayer()
	e.bullets = e.bullets[:0]
	e.enemies = e.enemies[:0]
	e.score = 0
	e.lives = StartingLives
	e.spawnTimer = 0
	e.ticks = 0
}

// gameOver ends the session and stops the frame loop.
func (e *Engine) gameOver() {
	e.state = StateGameOver
	e.loop.Stop()
	e.logger.Info("game over", "score", e.score, "ticks", e.ticks)
}

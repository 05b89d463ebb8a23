package shooter

// Loop is the handle of the self-perpetuating frame loop.
//
// Hosts tag every scheduled frame callback with the generation returned by
// Start and drop callbacks for which Current reports false. Starting again
// bumps the generation, so a callback scheduled by a previous session becomes
// harmless and two loops can never run at once.
type Loop struct {
	gen     uint64
	running bool
}

// Start begins a new generation, superseding any previous one.
func (l *Loop) Start() uint64 {
	l.gen++
	l.running = true
	return l.gen
}

// Stop cancels the current generation. Stopping a stopped loop is a no-op.
func (l *Loop) Stop() {
	l.running = false
}

// Running reports whether frames should still be scheduled.
func (l *Loop) Running() bool {
	return l.running
}

// Generation returns the latest generation handed out by Start.
func (l *Loop) Generation() uint64 {
	return l.gen
}

// Current reports whether a callback scheduled with gen should still run.
func (l *Loop) Current(gen uint64) bool {
	return l.running && gen == l.gen
}

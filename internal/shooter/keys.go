package shooter

// Key is a physical key code, named after the DOM KeyboardEvent.code values
// so every host maps its own key events onto the same set.
type Key string

// Recognized key codes. Both fire codes are equivalent.
const (
	KeyArrowLeft  Key = "ArrowLeft"
	KeyArrowRight Key = "ArrowRight"
	KeySpace      Key = "Space"
	KeyZ          Key = "KeyZ"
)

// Input is the per-tick control sample consumed by Engine.Tick.
type Input struct {
	Left  bool
	Right bool
	Fire  bool
}

// Keys is the held-state snapshot updated by key press/release events.
// The engine samples it once per frame, never mid-tick.
type Keys struct {
	held map[Key]bool
}

// NewKeys returns an empty snapshot.
func NewKeys() Keys {
	return Keys{held: make(map[Key]bool)}
}

// Recognized reports whether code is one of the keys the engine reacts to.
func Recognized(code string) bool {
	switch Key(code) {
	case KeyArrowLeft, KeyArrowRight, KeySpace, KeyZ:
		return true
	}
	return false
}

// Down marks code as held. Unrecognized codes are ignored; the return value
// tells hosts whether the event was consumed.
func (k *Keys) Down(code string) bool {
	if !Recognized(code) {
		return false
	}
	if k.held == nil {
		k.held = make(map[Key]bool)
	}
	k.held[Key(code)] = true
	return true
}

// Up marks code as released. Unrecognized codes are ignored.
func (k *Keys) Up(code string) bool {
	if !Recognized(code) {
		return false
	}
	delete(k.held, Key(code))
	return true
}

// Held reports whether key is currently down.
func (k Keys) Held(key Key) bool {
	return k.held[key]
}

// Input samples the snapshot into a tick input.
func (k Keys) Input() Input {
	return Input{
		Left:  k.held[KeyArrowLeft],
		Right: k.held[KeyArrowRight],
		Fire:  k.held[KeySpace] || k.held[KeyZ],
	}
}

// Reset releases every key.
func (k *Keys) Reset() {
	clear(k.held)
}

// Package input defines the game's input events and decodes raw terminal
// bytes into them.
package input

// EventType identifies the kind of input event.
type EventType int

const (
	EventQuit    EventType = iota // Window close or interrupt
	EventKeyDown                  // Key pressed
	EventKeyUp                    // Key released
	EventClick                    // Pointer button pressed at X, Y
)

// Key identifies a game key.
type Key int

const (
	KeyNone  Key = iota
	KeyLeft      // Move ship left
	KeyRight     // Move ship right
	KeyFire      // Fire a bullet
	KeyQuit      // Quit the game
	KeyPlay      // Start a game from the title screen
)

// Event is a single input event.
type Event struct {
	Type EventType
	Key  Key
	X, Y int // Pointer position for EventClick
}

// KeyDown returns a key press event.
func KeyDown(k Key) Event { return Event{Type: EventKeyDown, Key: k} }

// KeyUp returns a key release event.
func KeyUp(k Key) Event { return Event{Type: EventKeyUp, Key: k} }

// Click returns a pointer click event.
func Click(x, y int) Event { return Event{Type: EventClick, X: x, Y: y} }

// Quit returns a quit event.
func Quit() Event { return Event{Type: EventQuit} }

func (k Key) String() string {
	switch k {
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyFire:
		return "fire"
	case KeyQuit:
		return "quit"
	case KeyPlay:
		return "play"
	default:
		return "none"
	}
}

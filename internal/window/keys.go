package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/tomz197/alien-invasion/internal/input"
)

// keyMap binds window keys to game keys.
var keyMap = map[ebiten.Key]input.Key{
	ebiten.KeyArrowLeft:  input.KeyLeft,
	ebiten.KeyArrowRight: input.KeyRight,
	ebiten.KeySpace:      input.KeyFire,
	ebiten.KeyQ:          input.KeyQuit,
	ebiten.KeyP:          input.KeyPlay,
	ebiten.KeyEnter:      input.KeyPlay,
}

// frameInput is the raw input of one tick.
type frameInput struct {
	closing  bool
	pressed  []ebiten.Key
	released []ebiten.Key
	click    bool
	x, y     int // Cursor position in screen pixels
}

// events converts a tick of raw input into game events: the close request
// first, then presses, releases and the click.
func (in frameInput) events() []input.Event {
	var events []input.Event
	if in.closing {
		events = append(events, input.Quit())
	}
	for _, k := range in.pressed {
		if key, ok := keyMap[k]; ok {
			events = append(events, input.KeyDown(key))
		}
	}
	for _, k := range in.released {
		if key, ok := keyMap[k]; ok {
			events = append(events, input.KeyUp(key))
		}
	}
	if in.click {
		events = append(events, input.Click(in.x, in.y))
	}
	return events
}

// Package input handles SDL2 input events.
package input

import (
	"github.com/veandco/go-sdl2/sdl"
)

// EventType classifies a processed event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
	EventMouseMove
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	Width  int
	Height int
	DX     int // relative mouse motion
	DY     int
}

// Input tracks held keys and accumulated mouse motion for one frame.
type Input struct {
	events []Event
	held   map[sdl.Scancode]bool
	dx, dy int
	quit   bool
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		events: make([]Event, 0, 16),
		held:   make(map[sdl.Scancode]bool),
	}
}

// Update polls SDL events for this frame.
// Returns true if the application should quit.
func (i *Input) Update() bool {
	i.begin()
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		if e, ok := translate(event); ok {
			i.apply(e)
		}
	}
	return i.quit
}

// begin resets per-frame state. Held keys persist across frames.
func (i *Input) begin() {
	i.events = i.events[:0]
	i.dx, i.dy = 0, 0
}

// apply records one event.
func (i *Input) apply(e Event) {
	i.events = append(i.events, e)
	switch e.Type {
	case EventQuit:
		i.quit = true
	case EventKeyDown:
		i.held[e.Key] = true
		if e.Key == sdl.SCANCODE_ESCAPE {
			i.quit = true
		}
	case EventKeyUp:
		delete(i.held, e.Key)
	case EventMouseMove:
		i.dx += e.DX
		i.dy += e.DY
	}
}

func translate(event sdl.Event) (Event, bool) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return Event{Type: EventQuit}, true

	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
			return Event{Type: EventWindowResize, Width: int(e.Data1), Height: int(e.Data2)}, true
		}

	case *sdl.KeyboardEvent:
		if e.Repeat != 0 {
			return Event{}, false
		}
		if e.Type == sdl.KEYDOWN {
			return Event{Type: EventKeyDown, Key: e.Keysym.Scancode}, true
		}
		if e.Type == sdl.KEYUP {
			return Event{Type: EventKeyUp, Key: e.Keysym.Scancode}, true
		}

	case *sdl.MouseMotionEvent:
		return Event{Type: EventMouseMove, DX: int(e.XRel), DY: int(e.YRel)}, true
	}
	return Event{}, false
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// KeyDown reports whether a key is currently held.
func (i *Input) KeyDown(sc sdl.Scancode) bool {
	return i.held[sc]
}

// Pressed reports whether a key went down during the last Update.
func (i *Input) Pressed(sc sdl.Scancode) bool {
	for _, e := range i.events {
		if e.Type == EventKeyDown && e.Key == sc {
			return true
		}
	}
	return false
}

// MouseDelta returns the relative mouse motion accumulated this frame.
func (i *Input) MouseDelta() (dx, dy int) {
	return i.dx, i.dy
}

// Resized returns the latest window size reported this frame, if any.
func (i *Input) Resized() (width, height int, ok bool) {
	for n := len(i.events) - 1; n >= 0; n-- {
		if e := i.events[n]; e.Type == EventWindowResize {
			return e.Width, e.Height, true
		}
	}
	return 0, 0, false
}

// Package input holds the keyboard and mouse state shared between a host's
// event source and the frame loop.
package input

import (
	"slices"
	"time"
)

// Key identifies a keyboard key by name, e.g. "w" or "space".
type Key string

// State is the set of held keys plus the current mouse-drag state.
//
// State is not safe for concurrent use; hosts deliver events to the frame
// loop, which applies them on its own goroutine.
type State struct {
	held map[Key]time.Time // key -> last press (or repeat) time

	// HoldTimeout expires a held key that has not been pressed again within
	// the timeout, for hosts that never report releases. Zero keeps keys held
	// until released. It stops applying after the first Release.
	HoldTimeout time.Duration
	releases    bool

	Dragging   bool
	LastMouseX int
	LastMouseY int
}

// NewState creates an empty input state.
func NewState(holdTimeout time.Duration) *State {
	return &State{
		held:        make(map[Key]time.Time),
		HoldTimeout: holdTimeout,
	}
}

// Press marks k as held at time now. Repeated presses refresh the hold.
func (s *State) Press(k Key, now time.Time) {
	s.held[k] = now
}

// Release marks k as no longer held. Once a release has been seen, keys
// stay held until their own release regardless of HoldTimeout.
func (s *State) Release(k Key) {
	s.releases = true
	delete(s.held, k)
}

// Held reports whether k is held at time now.
func (s *State) Held(k Key, now time.Time) bool {
	pressed, ok := s.held[k]
	if !ok {
		return false
	}
	if s.HoldTimeout > 0 && !s.releases && now.Sub(pressed) > s.HoldTimeout {
		delete(s.held, k)
		return false
	}
	return true
}

// Keys returns the held keys in sorted order, without applying HoldTimeout.
func (s *State) Keys() []Key {
	keys := make([]Key, 0, len(s.held))
	for k := range s.held {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// BeginDrag starts a drag at (x, y).
func (s *State) BeginDrag(x, y int) {
	s.Dragging = true
	s.LastMouseX = x
	s.LastMouseY = y
}

// Drag moves the cursor to (x, y) and returns the delta since the last
// position. ok is false when no drag is active.
func (s *State) Drag(x, y int) (dx, dy int, ok bool) {
	if !s.Dragging {
		return 0, 0, false
	}
	dx = x - s.LastMouseX
	dy = y - s.LastMouseY
	s.LastMouseX = x
	s.LastMouseY = y
	return dx, dy, true
}

// EndDrag stops the current drag.
func (s *State) EndDrag() {
	s.Dragging = false
}

package input

// Event is an input event delivered by a host.
type Event interface {
	event()
}

// KeyDown reports a key press (or auto-repeat).
type KeyDown struct{ Key Key }

// KeyUp reports a key release.
type KeyUp struct{ Key Key }

// MouseDown reports a primary button press at (X, Y).
type MouseDown struct{ X, Y int }

// MouseMove reports cursor motion to (X, Y).
type MouseMove struct{ X, Y int }

// MouseUp reports the primary button release.
type MouseUp struct{}

// Quit asks the frame loop to stop.
type Quit struct{}

func (KeyDown) event()   {}
func (KeyUp) event()     {}
func (MouseDown) event() {}
func (MouseMove) event() {}
func (MouseUp) event()   {}
func (Quit) event()      {}

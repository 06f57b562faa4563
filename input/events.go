package input

// Key identifies a keyboard key the simulation reacts to
type Key int

const (
	KeyUnknown Key = iota
	// KeySpace toggles between running and paused
	KeySpace
	// KeyEscape quits
	KeyEscape
)

// Button identifies a pointer button
type Button int

const (
	ButtonPrimary Button = iota
	ButtonSecondary
	ButtonMiddle
)

// Point is a position in window pixel space
type Point struct {
	X, Y float64
}

// Event is one discrete input delivered by the window system
type Event interface {
	isEvent()
}

// PointerMove reports the pointer's new position
type PointerMove struct {
	Pos Point
}

// KeyPress reports a key going down
type KeyPress struct {
	Key Key
}

// KeyRelease reports a key going up
type KeyRelease struct {
	Key Key
}

// ButtonPress reports a pointer button going down
type ButtonPress struct {
	Button Button
}

// ButtonRelease reports a pointer button going up
type ButtonRelease struct {
	Button Button
}

func (PointerMove) isEvent()   {}
func (KeyPress) isEvent()      {}
func (KeyRelease) isEvent()    {}
func (ButtonPress) isEvent()   {}
func (ButtonRelease) isEvent() {}

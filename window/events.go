package window

import "github.com/gogpu/gpucontext"

// Event is a window event delivered to the Handler. The concrete type
// is one of the *Event structs in this package.
type Event interface {
	isEvent()
}

// Handler receives window events on the event loop goroutine.
type Handler func(Event)

// MouseButton identifies a pointer button.
type MouseButton uint8

const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
)

func (b MouseButton) String() string {
	switch b {
	case MouseButtonLeft:
		return "left"
	case MouseButtonRight:
		return "right"
	case MouseButtonMiddle:
		return "middle"
	default:
		return "unknown"
	}
}

// ResizeEvent reports the new drawable size in pixels.
type ResizeEvent struct {
	Width  uint32
	Height uint32
}

// KeyEvent reports a key press.
type KeyEvent struct {
	Key       gpucontext.Key
	Modifiers gpucontext.Modifiers
}

// MouseButtonEvent reports a button press or release at a position in
// window coordinates.
type MouseButtonEvent struct {
	X       float64
	Y       float64
	Button  MouseButton
	Pressed bool
}

// MouseMoveEvent reports pointer motion in window coordinates.
type MouseMoveEvent struct {
	X float64
	Y float64
}

// CloseEvent reports that the window is about to close.
type CloseEvent struct{}

// RedrawEvent reports that a frame is about to be drawn.
type RedrawEvent struct{}

func (ResizeEvent) isEvent()      {}
func (KeyEvent) isEvent()         {}
func (MouseButtonEvent) isEvent() {}
func (MouseMoveEvent) isEvent()   {}
func (CloseEvent) isEvent()       {}
func (RedrawEvent) isEvent()      {}

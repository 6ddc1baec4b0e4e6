// Package toast implements the notification window engine. The engine
// core is a platform-free state machine: window-system input arrives as
// tagged events, and all effects go through the Surface interface. The
// Windows surface translates real window messages into events; tests
// drive the same machine with a fake surface.
package toast

import "time"

// Handle identifies a native window. Handles are comparable across
// processes: the numerically smallest visible toast handle is the one
// created earliest, which sits closest to the taskbar.
type Handle uintptr

// Rect is a window rectangle in screen coordinates.
type Rect struct {
	Left, Top, Right, Bottom int32
}

func (r Rect) Width() int32  { return r.Right - r.Left }
func (r Rect) Height() int32 { return r.Bottom - r.Top }

// Edge is the screen edge the taskbar is docked to.
type Edge int

const (
	EdgeLeft Edge = iota
	EdgeTop
	EdgeRight
	EdgeBottom
)

// Sibling is a snapshot of another visible toast window, possibly owned
// by a different process.
type Sibling struct {
	Handle Handle
	Rect   Rect
}

// TimerID names the engine's timers. The values double as native timer
// ids on Windows.
type TimerID int

const (
	// TimerFade drives one opacity step per tick.
	TimerFade TimerID = 1
	// TimerDisplay fires once when the display period ends.
	TimerDisplay TimerID = 2
	// TimerReposition drives the slide animation toward targetTop.
	TimerReposition TimerID = 3
	// TimerStackPoll re-checks whether this toast has become the lowest.
	TimerStackPoll TimerID = 4
)

// NoteKind tags a cross-toast notification.
type NoteKind int

const (
	// NoteClosed announces that a toast at Top is going away.
	NoteClosed NoteKind = iota
	// NotePause pauses or resumes the display countdown.
	NotePause
)

// Note is a message posted between toast windows, including to self.
type Note struct {
	Kind   NoteKind
	Top    int32
	Paused bool
}

// View is everything the surface needs to paint the toast.
type View struct {
	Title      string
	Message    string
	Input      bool
	FontFamily string
	Icon       Handle
	IconPath   string
}

// Surface is the engine's window abstraction. All methods are called
// from the surface's own event loop, so implementations need no locking.
type Surface interface {
	// Self returns this toast's own handle.
	Self() Handle
	// Rect returns the current window rectangle in screen coordinates.
	Rect() Rect
	// Siblings snapshots the other visible toast windows.
	Siblings() []Sibling

	StartTimer(id TimerID, interval time.Duration)
	StopTimer(id TimerID)

	// SetOpacity sets the whole-window alpha.
	SetOpacity(alpha byte)
	// MoveTo repositions the window without resizing or activating it.
	MoveTo(x, y int32)
	Hide()
	// Close destroys the window and ends the event loop.
	Close()
	Draw(v View)
	// TrackMouseLeave arms a one-shot mouse-leave notification.
	TrackMouseLeave()
	// Post delivers a note to a toast window, which may be Self.
	Post(target Handle, n Note)
}

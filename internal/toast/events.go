package toast

// Event is window-system input, translated by the surface.
type Event interface{ isEvent() }

// Paint asks the toast to describe itself for drawing.
type Paint struct{}

// TimerFired reports that one of the engine timers ticked.
type TimerFired struct{ ID TimerID }

// MouseMoved reports cursor movement inside the client area.
type MouseMoved struct{}

// MouseLeft reports that the cursor left the client area.
type MouseLeft struct{}

// Button identifies a mouse button.
type Button int

const (
	ButtonLeftClick Button = iota
	ButtonRightClick
)

// ButtonUp reports a mouse button release at client coordinates.
type ButtonUp struct {
	X, Y   int32
	Button Button
}

// SiblingClosed reports that another toast at Top is going away.
type SiblingClosed struct{ Top int32 }

// PauseState pauses or resumes the display countdown. Delivered to
// every toast, including the one whose hover triggered it.
type PauseState struct{ Paused bool }

func (Paint) isEvent()         {}
func (TimerFired) isEvent()    {}
func (MouseMoved) isEvent()    {}
func (MouseLeft) isEvent()     {}
func (ButtonUp) isEvent()      {}
func (SiblingClosed) isEvent() {}
func (PauseState) isEvent()    {}

// Handle dispatches one event against the state machine. It must be
// called from the surface's event loop.
func (t *Toast) Handle(ev Event) {
	if t.closed {
		return
	}

	switch e := ev.(type) {
	case Paint:
		t.s.Draw(t.view())

	case TimerFired:
		t.handleTimer(e.ID)

	case MouseMoved:
		if !t.mouseInside {
			t.mouseInside = true
			t.s.TrackMouseLeave()
			t.postPauseAll(true)
		}

	case MouseLeft:
		t.mouseInside = false
		t.postPauseAll(false)

	case ButtonUp:
		t.handleButtonUp(e)

	case SiblingClosed:
		t.handleSiblingClosed(e.Top)

	case PauseState:
		t.handlePause(e.Paused)
	}
}

func (t *Toast) handleTimer(id TimerID) {
	switch id {
	case TimerDisplay:
		t.s.StopTimer(TimerDisplay)
		t.fading = true
		t.s.StartTimer(TimerFade, fadeTick)

	case TimerFade:
		if t.opacity > t.fadeStep {
			t.opacity -= t.fadeStep
			t.s.SetOpacity(byte(t.opacity))
		} else {
			t.fading = false
			t.s.StopTimer(TimerFade)
			t.destroy()
		}

	case TimerReposition:
		t.stepTowardTarget()

	case TimerStackPoll:
		if IsLowest(t.s.Self(), t.s.Siblings()) {
			t.lowest = true
			t.s.StopTimer(TimerStackPoll)
			t.s.StartTimer(TimerDisplay, t.display)
		}
	}
}

func (t *Toast) handleButtonUp(e ButtonUp) {
	t.stopCountdown()

	if e.Button == ButtonRightClick || inCloseGlyph(e.X, e.Y) {
		t.destroy()
		return
	}

	// Body click: hide first so the toast is gone before focus moves.
	t.clicked = true
	t.notifyClosing()
	t.s.Hide()
	if t.p.Activate != nil {
		t.p.Activate()
	}
	t.closed = true
	t.s.Close()
}

func (t *Toast) handleSiblingClosed(closedTop int32) {
	rect := t.s.Rect()

	// Slide toward the taskbar to take the closed toast's slot. With a
	// top-docked taskbar the stack grows downward, otherwise upward.
	if t.p.Edge == EdgeTop {
		if rect.Top > closedTop {
			t.targetTop = rect.Top - Height
			t.s.StartTimer(TimerReposition, repositionTick)
		}
	} else {
		if rect.Top < closedTop {
			t.targetTop = rect.Top + Height
			t.s.StartTimer(TimerReposition, repositionTick)
		}
	}

	if !t.lowest && IsLowest(t.s.Self(), t.s.Siblings()) {
		t.lowest = true
		t.s.StopTimer(TimerStackPoll)
		if !t.mouseInside {
			t.s.StartTimer(TimerDisplay, t.display)
		}
	}
}

func (t *Toast) handlePause(paused bool) {
	if paused {
		t.paused = true
		if t.fading {
			t.s.StopTimer(TimerFade)
			t.fading = false
			t.opacity = maxOpacity
			t.s.SetOpacity(maxOpacity)
		}
		t.s.StopTimer(TimerDisplay)
		return
	}

	t.paused = false
	if t.lowest && !t.mouseInside {
		t.s.StartTimer(TimerDisplay, t.display)
	}
}

func (t *Toast) stepTowardTarget() {
	rect := t.s.Rect()
	diff := t.targetTop - rect.Top
	if diff == 0 {
		t.s.StopTimer(TimerReposition)
		return
	}

	step := diff * 2 / 5
	if step == 0 {
		if diff > 0 {
			step = 2
		} else {
			step = -2
		}
	}

	newTop := rect.Top + step
	if abs32(t.targetTop-newTop) < snapDistance {
		newTop = t.targetTop
	}

	t.s.MoveTo(rect.Left, newTop)
	if newTop == t.targetTop {
		t.s.StopTimer(TimerReposition)
	}
}

func (t *Toast) stopCountdown() {
	t.s.StopTimer(TimerDisplay)
	t.s.StopTimer(TimerFade)
	t.fading = false
}

func (t *Toast) destroy() {
	t.notifyClosing()
	t.closed = true
	t.s.Close()
}

// notifyClosing tells every other toast where this one sat so they can
// slide into the gap.
func (t *Toast) notifyClosing() {
	top := t.s.Rect().Top
	for _, sib := range t.s.Siblings() {
		t.s.Post(sib.Handle, Note{Kind: NoteClosed, Top: top})
	}
}

// postPauseAll pauses or resumes every toast. Self is included so the
// pause path is identical for all windows.
func (t *Toast) postPauseAll(paused bool) {
	t.s.Post(t.s.Self(), Note{Kind: NotePause, Paused: paused})
	for _, sib := range t.s.Siblings() {
		t.s.Post(sib.Handle, Note{Kind: NotePause, Paused: paused})
	}
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

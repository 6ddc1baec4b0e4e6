package toast

import "time"

const (
	// Width and Height are the fixed toast window dimensions.
	Width  = 300
	Height = 80

	// maxOpacity is the resting window alpha, slightly translucent.
	maxOpacity = 230

	// DefaultDisplay and DefaultFade are used when a Params duration is
	// zero or negative.
	DefaultDisplay = 3 * time.Second
	DefaultFade    = time.Second

	// fadeTick is the interval between opacity steps, and also the
	// reposition animation interval.
	fadeTick       = 16 * time.Millisecond
	repositionTick = 16 * time.Millisecond

	// stackPollInterval is how often a waiting toast re-checks whether
	// it has become the lowest in the stack.
	stackPollInterval = 200 * time.Millisecond

	// Close glyph hit box, anchored to the top-right corner.
	closeGlyphSize   = 20
	closeGlyphMargin = 6

	// snapDistance is how close the slide animation gets before it
	// jumps to the target.
	snapDistance = 4
)

// Params configures a toast.
type Params struct {
	Title      string
	Message    string
	Input      bool
	FontFamily string
	Icon       Handle
	IconPath   string

	Display time.Duration
	Fade    time.Duration

	// Edge is where the taskbar is docked; it decides stacking direction.
	Edge Edge

	// Activate is invoked on a body click, after the window hides but
	// before it is destroyed.
	Activate func()
}

// Toast is the engine state machine. Create one with New, then feed it
// events via Handle from the surface's event loop.
type Toast struct {
	s Surface
	p Params

	display  time.Duration
	fadeStep int

	opacity     int
	fading      bool
	paused      bool
	mouseInside bool
	lowest      bool
	clicked     bool
	closed      bool

	targetTop int32
}

// New builds a toast bound to its surface. Call Start once the surface's
// window exists and is visible.
func New(s Surface, p Params) *Toast {
	if p.Display <= 0 {
		p.Display = DefaultDisplay
	}
	if p.Fade <= 0 {
		p.Fade = DefaultFade
	}

	ticks := int(p.Fade / fadeTick)
	if ticks < 1 {
		ticks = 1
	}
	step := (maxOpacity + ticks - 1) / ticks
	if step > 255 {
		step = 255
	}

	return &Toast{
		s:        s,
		p:        p,
		display:  p.Display,
		fadeStep: step,
		opacity:  maxOpacity,
	}
}

// Start arms the initial timers. The lowest toast begins its display
// countdown immediately; any other toast polls until the stack beneath
// it drains.
func (t *Toast) Start() {
	t.s.SetOpacity(maxOpacity)

	if IsLowest(t.s.Self(), t.s.Siblings()) {
		t.lowest = true
		t.s.StartTimer(TimerDisplay, t.display)
	} else {
		t.s.StartTimer(TimerStackPoll, stackPollInterval)
	}
}

// Clicked reports whether the toast was dismissed by a body click.
func (t *Toast) Clicked() bool { return t.clicked }

func (t *Toast) view() View {
	return View{
		Title:      t.p.Title,
		Message:    t.p.Message,
		Input:      t.p.Input,
		FontFamily: t.p.FontFamily,
		Icon:       t.p.Icon,
		IconPath:   t.p.IconPath,
	}
}

// inCloseGlyph reports whether a client-area point hits the close glyph.
func inCloseGlyph(x, y int32) bool {
	left := int32(Width - closeGlyphMargin - closeGlyphSize)
	top := int32(closeGlyphMargin)
	return x >= left && x <= left+closeGlyphSize && y >= top && y <= top+closeGlyphSize
}

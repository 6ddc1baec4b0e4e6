//go:build windows

package toast

import (
	"fmt"
	"runtime"
	"time"
	"unsafe"

	"golang.org/x/sys/windows"
)

// ClassName is the toast window class. Stacking coordination finds
// sibling toasts from other processes by this class name, so it is part
// of the cross-process contract.
const ClassName = "KnockToastWindow"

const (
	wmPaint      = 0x000F
	wmDestroy    = 0x0002
	wmTimer      = 0x0113
	wmMouseMove  = 0x0200
	wmLButtonUp  = 0x0202
	wmRButtonUp  = 0x0205
	wmMouseLeave = 0x02A3
	wmUser       = 0x0400

	// Cross-process toast messages. Values are shared with sibling
	// toast processes and must not change.
	msgPositionChanged = wmUser + 101
	msgPauseResume     = wmUser + 102
)

const (
	wsPopup        = 0x80000000
	wsExTopmost    = 0x00000008
	wsExToolWindow = 0x00000080
	wsExNoActivate = 0x08000000
	wsExLayered    = 0x00080000

	lwaAlpha = 0x0002

	swpNoSize     = 0x0001
	swpNoZOrder   = 0x0004
	swpNoActivate = 0x0010

	swHide           = 0
	swShowNoActivate = 4

	idcHand = 32649

	tmeLeave = 0x0002

	monitorDefaultToPrimary = 1

	abmGetTaskbarPos = 5
	abeLeft          = 0
	abeTop           = 1
	abeRight         = 2
)

const (
	iconSize    = 48
	iconPadding = 16
	borderWidth = 2

	colorBG           = 0x00333333
	colorBorderNormal = 0x004B64B2
	colorBorderInput  = 0x0000CFCF
	colorTitle        = 0x00FFFFFF
	colorMessage      = 0x00CCCCCC
	colorClose        = 0x00888888

	fwNormal = 400
	fwBold   = 700

	dtCenter     = 0x0001
	dtVCenter    = 0x0004
	dtSingleLine = 0x0020

	bkTransparent = 1

	diNormal       = 0x0003
	imageIcon      = 1
	lrLoadFromFile = 0x0010
)

var (
	user32  = windows.NewLazySystemDLL("user32.dll")
	gdi32   = windows.NewLazySystemDLL("gdi32.dll")
	shell32 = windows.NewLazySystemDLL("shell32.dll")

	procRegisterClassExW      = user32.NewProc("RegisterClassExW")
	procCreateWindowExW       = user32.NewProc("CreateWindowExW")
	procDefWindowProcW        = user32.NewProc("DefWindowProcW")
	procDestroyWindow         = user32.NewProc("DestroyWindow")
	procShowWindow            = user32.NewProc("ShowWindow")
	procUpdateWindow          = user32.NewProc("UpdateWindow")
	procGetMessageW           = user32.NewProc("GetMessageW")
	procTranslateMessage      = user32.NewProc("TranslateMessage")
	procDispatchMessageW      = user32.NewProc("DispatchMessageW")
	procPostQuitMessage       = user32.NewProc("PostQuitMessage")
	procSetTimer              = user32.NewProc("SetTimer")
	procKillTimer             = user32.NewProc("KillTimer")
	procSetLayeredWindowAttrs = user32.NewProc("SetLayeredWindowAttributes")
	procSetWindowPos          = user32.NewProc("SetWindowPos")
	procGetWindowRect         = user32.NewProc("GetWindowRect")
	procSendMessageW          = user32.NewProc("SendMessageW")
	procLoadCursorW           = user32.NewProc("LoadCursorW")
	procGetCursorPos          = user32.NewProc("GetCursorPos")
	procMonitorFromPoint      = user32.NewProc("MonitorFromPoint")
	procGetMonitorInfoW       = user32.NewProc("GetMonitorInfoW")
	procTrackMouseEvent       = user32.NewProc("TrackMouseEvent")
	procBeginPaint            = user32.NewProc("BeginPaint")
	procEndPaint              = user32.NewProc("EndPaint")
	procFillRect              = user32.NewProc("FillRect")
	procDrawTextW             = user32.NewProc("DrawTextW")
	procDrawIconEx            = user32.NewProc("DrawIconEx")
	procLoadImageW            = user32.NewProc("LoadImageW")
	procDestroyIcon           = user32.NewProc("DestroyIcon")

	procCreateSolidBrush = gdi32.NewProc("CreateSolidBrush")
	procDeleteObject     = gdi32.NewProc("DeleteObject")
	procCreateFontW      = gdi32.NewProc("CreateFontW")
	procSelectObject     = gdi32.NewProc("SelectObject")
	procSetBkMode        = gdi32.NewProc("SetBkMode")
	procSetTextColor     = gdi32.NewProc("SetTextColor")

	procSHAppBarMessage = shell32.NewProc("SHAppBarMessage")
)

type wndClassExW struct {
	Size       uint32
	Style      uint32
	WndProc    uintptr
	ClsExtra   int32
	WndExtra   int32
	Instance   windows.Handle
	Icon       uintptr
	Cursor     uintptr
	Background uintptr
	MenuName   *uint16
	ClassName  *uint16
	IconSm     uintptr
}

type msgW struct {
	Hwnd    windows.HWND
	Message uint32
	WParam  uintptr
	LParam  uintptr
	Time    uint32
	Pt      point
}

type point struct {
	X, Y int32
}

type paintStruct struct {
	HDC         uintptr
	Erase       int32
	Paint       Rect
	Restore     int32
	IncUpdate   int32
	RgbReserved [32]byte
}

type monitorInfo struct {
	Size    uint32
	Monitor Rect
	Work    Rect
	Flags   uint32
}

type appBarData struct {
	Size     uint32
	Hwnd     windows.HWND
	Callback uint32
	Edge     uint32
	Rect     Rect
	Param    uintptr
}

type trackMouseEvent struct {
	Size      uint32
	Flags     uint32
	HwndTrack windows.HWND
	HoverTime uint32
}

// winSurface owns the native window and translates between window
// messages and engine events. One toast per process, driven by a single
// OS thread.
type winSurface struct {
	hwnd  windows.HWND
	toast *Toast
}

// current is the surface the package wndproc dispatches to. Window
// creation and the message loop run on one locked thread, so plain
// assignment is fine.
var current *winSurface

// Show creates the toast window and blocks in its message loop until
// the toast is dismissed. It reports whether the body was clicked.
func Show(p Params) (clicked bool, err error) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	p.Edge = detectTaskbarEdge()
	work := cursorWorkArea()

	className, err := windows.UTF16PtrFromString(ClassName)
	if err != nil {
		return false, fmt.Errorf("encode class name: %w", err)
	}
	title, err := windows.UTF16PtrFromString("Toast")
	if err != nil {
		return false, fmt.Errorf("encode window title: %w", err)
	}

	instance, err := windows.GetModuleHandle(nil)
	if err != nil {
		return false, fmt.Errorf("get module handle: %w", err)
	}

	cursor, _, _ := procLoadCursorW.Call(0, uintptr(idcHand))

	wc := wndClassExW{
		Size:      uint32(unsafe.Sizeof(wndClassExW{})),
		WndProc:   windows.NewCallback(wndProc),
		Instance:  instance,
		Cursor:    cursor,
		ClassName: className,
	}
	// Registration fails harmlessly when another toast process in the
	// same session already registered the class for this process.
	procRegisterClassExW.Call(uintptr(unsafe.Pointer(&wc)))

	surface := &winSurface{}
	current = surface
	defer func() { current = nil }()

	x, y := InitialPosition(work, p.Edge, enumSiblings(0))

	hwnd, _, callErr := procCreateWindowExW.Call(
		wsExTopmost|wsExToolWindow|wsExLayered|wsExNoActivate,
		uintptr(unsafe.Pointer(className)),
		uintptr(unsafe.Pointer(title)),
		wsPopup,
		uintptr(x), uintptr(y), Width, Height,
		0, 0, uintptr(instance), 0,
	)
	if hwnd == 0 {
		return false, fmt.Errorf("create toast window: %w", callErr)
	}

	surface.hwnd = windows.HWND(hwnd)
	surface.toast = New(surface, p)

	surface.toast.Start()

	procShowWindow.Call(hwnd, swShowNoActivate)
	procUpdateWindow.Call(hwnd)

	var m msgW
	for {
		r, _, _ := procGetMessageW.Call(uintptr(unsafe.Pointer(&m)), 0, 0, 0)
		if int32(r) <= 0 {
			break
		}
		procTranslateMessage.Call(uintptr(unsafe.Pointer(&m)))
		procDispatchMessageW.Call(uintptr(unsafe.Pointer(&m)))
	}

	return surface.toast.Clicked(), nil
}

func wndProc(hwnd, msg, wparam, lparam uintptr) uintptr {
	s := current
	if s == nil || s.toast == nil || uintptr(s.hwnd) != hwnd {
		r, _, _ := procDefWindowProcW.Call(hwnd, msg, wparam, lparam)
		return r
	}

	switch msg {
	case wmPaint:
		s.toast.Handle(Paint{})
	case wmTimer:
		s.toast.Handle(TimerFired{ID: TimerID(wparam)})
	case wmMouseMove:
		s.toast.Handle(MouseMoved{})
	case wmMouseLeave:
		s.toast.Handle(MouseLeft{})
	case wmLButtonUp:
		s.toast.Handle(ButtonUp{X: clientX(lparam), Y: clientY(lparam), Button: ButtonLeftClick})
	case wmRButtonUp:
		s.toast.Handle(ButtonUp{X: clientX(lparam), Y: clientY(lparam), Button: ButtonRightClick})
	case msgPositionChanged:
		s.toast.Handle(SiblingClosed{Top: int32(wparam)})
	case msgPauseResume:
		s.toast.Handle(PauseState{Paused: wparam == 1})
	case wmDestroy:
		procPostQuitMessage.Call(0)
	default:
		r, _, _ := procDefWindowProcW.Call(hwnd, msg, wparam, lparam)
		return r
	}
	return 0
}

func clientX(lparam uintptr) int32 { return int32(int16(lparam & 0xFFFF)) }
func clientY(lparam uintptr) int32 { return int32(int16((lparam >> 16) & 0xFFFF)) }

func (s *winSurface) Self() Handle { return Handle(s.hwnd) }

func (s *winSurface) Rect() Rect {
	var r Rect
	procGetWindowRect.Call(uintptr(s.hwnd), uintptr(unsafe.Pointer(&r)))
	return r
}

func (s *winSurface) Siblings() []Sibling { return enumSiblings(s.hwnd) }

func (s *winSurface) StartTimer(id TimerID, interval time.Duration) {
	procSetTimer.Call(uintptr(s.hwnd), uintptr(id), uintptr(interval.Milliseconds()), 0)
}

func (s *winSurface) StopTimer(id TimerID) {
	procKillTimer.Call(uintptr(s.hwnd), uintptr(id))
}

func (s *winSurface) SetOpacity(alpha byte) {
	procSetLayeredWindowAttrs.Call(uintptr(s.hwnd), 0, uintptr(alpha), lwaAlpha)
}

func (s *winSurface) MoveTo(x, y int32) {
	procSetWindowPos.Call(uintptr(s.hwnd), 0, uintptr(x), uintptr(y), 0, 0,
		swpNoSize|swpNoZOrder|swpNoActivate)
}

func (s *winSurface) Hide() {
	procShowWindow.Call(uintptr(s.hwnd), swHide)
}

func (s *winSurface) Close() {
	procDestroyWindow.Call(uintptr(s.hwnd))
}

func (s *winSurface) TrackMouseLeave() {
	tme := trackMouseEvent{
		Size:      uint32(unsafe.Sizeof(trackMouseEvent{})),
		Flags:     tmeLeave,
		HwndTrack: s.hwnd,
	}
	procTrackMouseEvent.Call(uintptr(unsafe.Pointer(&tme)))
}

func (s *winSurface) Post(target Handle, n Note) {
	switch n.Kind {
	case NoteClosed:
		procSendMessageW.Call(uintptr(target), msgPositionChanged, uintptr(n.Top), 0)
	case NotePause:
		var w uintptr
		if n.Paused {
			w = 1
		}
		procSendMessageW.Call(uintptr(target), msgPauseResume, w, 0)
	}
}

// enumState carries the in-progress snapshot for collectSibling.
// Enumeration always runs on the locked window thread, so a package
// variable needs no locking.
var enumState struct {
	self     windows.HWND
	siblings []Sibling
}

// enumSiblingsProc is registered once at init. Callback registrations
// are never released and the runtime caps them, so the stack-poll and
// broadcast paths must not register a new one per enumeration.
var enumSiblingsProc = windows.NewCallback(collectSibling)

func collectSibling(hwnd windows.HWND, _ uintptr) uintptr {
	if hwnd == enumState.self {
		return 1
	}
	var buf [256]uint16
	n, err := windows.GetClassName(hwnd, &buf[0], int32(len(buf)))
	if err != nil || windows.UTF16ToString(buf[:n]) != ClassName {
		return 1
	}
	if !isWindowVisible(hwnd) {
		return 1
	}
	var r Rect
	procGetWindowRect.Call(uintptr(hwnd), uintptr(unsafe.Pointer(&r)))
	enumState.siblings = append(enumState.siblings, Sibling{Handle: Handle(hwnd), Rect: r})
	return 1
}

// enumSiblings snapshots every other visible toast window, across all
// processes, by class name.
func enumSiblings(self windows.HWND) []Sibling {
	enumState.self = self
	enumState.siblings = nil
	windows.EnumWindows(enumSiblingsProc, nil)
	return enumState.siblings
}

var procIsWindowVisible = user32.NewProc("IsWindowVisible")

func isWindowVisible(hwnd windows.HWND) bool {
	r, _, _ := procIsWindowVisible.Call(uintptr(hwnd))
	return r != 0
}

// detectTaskbarEdge asks the shell where the taskbar is docked. When
// the call fails (no taskbar, remote session) the bottom edge is a safe
// default.
func detectTaskbarEdge() Edge {
	abd := appBarData{Size: uint32(unsafe.Sizeof(appBarData{}))}
	r, _, _ := procSHAppBarMessage.Call(abmGetTaskbarPos, uintptr(unsafe.Pointer(&abd)))
	if r == 0 {
		return EdgeBottom
	}
	switch abd.Edge {
	case abeLeft:
		return EdgeLeft
	case abeTop:
		return EdgeTop
	case abeRight:
		return EdgeRight
	default:
		return EdgeBottom
	}
}

// cursorWorkArea returns the work area of the monitor under the cursor,
// so the toast shows where the user is looking on multi-monitor setups.
func cursorWorkArea() Rect {
	var pt point
	procGetCursorPos.Call(uintptr(unsafe.Pointer(&pt)))

	monitor, _, _ := procMonitorFromPoint.Call(uintptr(pt.X), uintptr(pt.Y), monitorDefaultToPrimary)

	mi := monitorInfo{Size: uint32(unsafe.Sizeof(monitorInfo{}))}
	procGetMonitorInfoW.Call(monitor, uintptr(unsafe.Pointer(&mi)))
	return mi.Work
}

// Draw paints the whole client area: background, border, icon, title,
// message, and the close glyph.
func (s *winSurface) Draw(v View) {
	var ps paintStruct
	hdc, _, _ := procBeginPaint.Call(uintptr(s.hwnd), uintptr(unsafe.Pointer(&ps)))
	if hdc == 0 {
		return
	}
	defer procEndPaint.Call(uintptr(s.hwnd), uintptr(unsafe.Pointer(&ps)))

	fillRect(hdc, Rect{0, 0, Width, Height}, colorBG)

	borderColor := uintptr(colorBorderNormal)
	if v.Input {
		borderColor = colorBorderInput
	}
	for _, r := range []Rect{
		{0, 0, Width, borderWidth},
		{0, Height - borderWidth, Width, Height},
		{0, 0, borderWidth, Height},
		{Width - borderWidth, 0, Width, Height},
	} {
		fillRect(hdc, r, borderColor)
	}

	drawIcon(hdc, v)

	procSetBkMode.Call(hdc, bkTransparent)
	textLeft := int32(iconPadding + iconSize + iconPadding)

	drawText(hdc, v.Title, Rect{textLeft, 15, Width - 10, 40},
		colorTitle, 18, true, v.FontFamily, 0)
	drawText(hdc, v.Message, Rect{textLeft, 42, Width - 10, Height - 10},
		colorMessage, 14, false, v.FontFamily, 0)

	glyphLeft := int32(Width - closeGlyphMargin - closeGlyphSize)
	drawText(hdc, "×",
		Rect{glyphLeft, closeGlyphMargin, glyphLeft + closeGlyphSize, closeGlyphMargin + closeGlyphSize},
		colorClose, 16, true, "Segoe UI", dtCenter|dtVCenter|dtSingleLine)
}

func drawIcon(hdc uintptr, v View) {
	x := uintptr(iconPadding)
	y := uintptr((Height - iconSize) / 2)

	if v.Icon != 0 {
		procDrawIconEx.Call(hdc, x, y, uintptr(v.Icon), iconSize, iconSize, 0, 0, diNormal)
		return
	}
	if v.IconPath == "" {
		return
	}

	path, err := windows.UTF16PtrFromString(v.IconPath)
	if err != nil {
		return
	}
	icon, _, _ := procLoadImageW.Call(0, uintptr(unsafe.Pointer(path)), imageIcon,
		iconSize, iconSize, lrLoadFromFile)
	if icon == 0 {
		return
	}
	procDrawIconEx.Call(hdc, x, y, icon, iconSize, iconSize, 0, 0, diNormal)
	procDestroyIcon.Call(icon)
}

func fillRect(hdc uintptr, r Rect, color uintptr) {
	brush, _, _ := procCreateSolidBrush.Call(color)
	procFillRect.Call(hdc, uintptr(unsafe.Pointer(&r)), brush)
	procDeleteObject.Call(brush)
}

func drawText(hdc uintptr, text string, r Rect, color uintptr, height int32, bold bool, family string, format uintptr) {
	if text == "" {
		return
	}

	procSetTextColor.Call(hdc, color)

	font := makeFont(height, bold, family)
	if font != 0 {
		defer procDeleteObject.Call(font)
		old, _, _ := procSelectObject.Call(hdc, font)
		defer procSelectObject.Call(hdc, old)
	}

	buf, err := windows.UTF16FromString(text)
	if err != nil {
		return
	}
	// Exclude the trailing NUL from the length DrawTextW sees.
	procDrawTextW.Call(hdc, uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)-1),
		uintptr(unsafe.Pointer(&r)), format)
}

func makeFont(height int32, bold bool, family string) uintptr {
	weight := uintptr(fwNormal)
	if bold {
		weight = fwBold
	}

	face, err := windows.UTF16PtrFromString(family)
	if err != nil {
		return 0
	}

	font, _, _ := procCreateFontW.Call(
		uintptr(height), 0, 0, 0,
		weight,
		0, 0, 0, 0, 0, 0, 0, 0,
		uintptr(unsafe.Pointer(face)),
	)
	return font
}

//go:build windows

package uia

import (
	"fmt"
	"syscall"
	"unsafe"

	ole "github.com/go-ole/go-ole"
)

var (
	clsidCUIAutomation      = ole.NewGUID("{FF48DBA4-60EF-4201-AA87-54103EEF594E}")
	iidIUIAutomation        = ole.NewGUID("{30CBE57D-D9D0-452A-AB13-7AC5AC4825EE}")
	iidSelectionItemPattern = ole.NewGUID("{A8EFA66A-0FDA-421A-9194-38021F3578EA}")
)

const (
	propControlType      = 30003
	controlTypeTabItem   = 50019
	patternSelectionItem = 10010
	treeScopeDescendants = 0x4
)

// iUIAutomation wraps the raw IUIAutomation interface. Only the slots
// this package calls are named; the rest are laid out to keep the
// vtable offsets right.
type iUIAutomation struct {
	ole.IUnknown
}

type iUIAutomationVtbl struct {
	ole.IUnknownVtbl
	CompareElements             uintptr
	CompareRuntimeIds           uintptr
	GetRootElement              uintptr
	ElementFromHandle           uintptr
	ElementFromPoint            uintptr
	GetFocusedElement           uintptr
	GetRootElementBuildCache    uintptr
	ElementFromHandleBuildCache uintptr
	ElementFromPointBuildCache  uintptr
	GetFocusedElementBuildCache uintptr
	CreateTreeWalker            uintptr
	GetControlViewWalker        uintptr
	GetContentViewWalker        uintptr
	GetRawViewWalker            uintptr
	GetRawViewCondition         uintptr
	GetControlViewCondition     uintptr
	GetContentViewCondition     uintptr
	CreateCacheRequest          uintptr
	CreateTrueCondition         uintptr
	CreateFalseCondition        uintptr
	CreatePropertyCondition     uintptr
}

func (a *iUIAutomation) vtbl() *iUIAutomationVtbl {
	return (*iUIAutomationVtbl)(unsafe.Pointer(a.RawVTable))
}

type iUIAutomationElement struct {
	ole.IUnknown
}

type iUIAutomationElementVtbl struct {
	ole.IUnknownVtbl
	SetFocus                  uintptr
	GetRuntimeId              uintptr
	FindFirst                 uintptr
	FindAll                   uintptr
	FindFirstBuildCache       uintptr
	FindAllBuildCache         uintptr
	BuildUpdatedCache         uintptr
	GetCurrentPropertyValue   uintptr
	GetCurrentPropertyValueEx uintptr
	GetCachedPropertyValue    uintptr
	GetCachedPropertyValueEx  uintptr
	GetCurrentPatternAs       uintptr
}

func (e *iUIAutomationElement) vtbl() *iUIAutomationElementVtbl {
	return (*iUIAutomationElementVtbl)(unsafe.Pointer(e.RawVTable))
}

type iUIAutomationElementArray struct {
	ole.IUnknown
}

type iUIAutomationElementArrayVtbl struct {
	ole.IUnknownVtbl
	GetLength  uintptr
	GetElement uintptr
}

func (a *iUIAutomationElementArray) vtbl() *iUIAutomationElementArrayVtbl {
	return (*iUIAutomationElementArrayVtbl)(unsafe.Pointer(a.RawVTable))
}

type iUIAutomationSelectionItemPattern struct {
	ole.IUnknown
}

type iUIAutomationSelectionItemPatternVtbl struct {
	ole.IUnknownVtbl
	Select               uintptr
	AddToSelection       uintptr
	RemoveFromSelection  uintptr
	GetCurrentIsSelected uintptr
}

func (p *iUIAutomationSelectionItemPattern) vtbl() *iUIAutomationSelectionItemPatternVtbl {
	return (*iUIAutomationSelectionItemPatternVtbl)(unsafe.Pointer(p.RawVTable))
}

type locator struct {
	auto *iUIAutomation
}

// NewLocator creates an automation client. The caller must Close it on
// the same thread.
func NewLocator() (Locator, error) {
	if err := ole.CoInitialize(0); err != nil {
		return nil, fmt.Errorf("initialize COM: %w", err)
	}

	unk, err := ole.CreateInstance(clsidCUIAutomation, iidIUIAutomation)
	if err != nil {
		ole.CoUninitialize()
		return nil, fmt.Errorf("create automation client: %w", err)
	}

	return &locator{auto: (*iUIAutomation)(unsafe.Pointer(unk))}, nil
}

func (l *locator) Close() {
	if l.auto != nil {
		l.auto.Release()
		l.auto = nil
	}
	ole.CoUninitialize()
}

func (l *locator) SelectedTabIdentity(host uintptr) string {
	var identity string
	l.eachTab(host, func(tab *iUIAutomationElement) bool {
		pattern := selectionPattern(tab)
		if pattern == nil {
			return false
		}
		defer pattern.Release()

		if !pattern.isSelected() {
			return false
		}
		identity = runtimeIdentity(tab)
		return true
	})
	return identity
}

func (l *locator) SelectTab(host uintptr, identity string) bool {
	if identity == "" {
		return false
	}

	found := false
	l.eachTab(host, func(tab *iUIAutomationElement) bool {
		if runtimeIdentity(tab) != identity {
			return false
		}
		pattern := selectionPattern(tab)
		if pattern == nil {
			return false
		}
		defer pattern.Release()

		pattern.selectIt()
		found = true
		return true
	})
	return found
}

// eachTab walks every tab item under the host window, stopping when fn
// returns true. Automation failures end the walk silently.
func (l *locator) eachTab(host uintptr, fn func(tab *iUIAutomationElement) bool) {
	root := l.elementFromHandle(host)
	if root == nil {
		return
	}
	defer root.Release()

	cond := l.tabItemCondition()
	if cond == nil {
		return
	}
	defer cond.Release()

	tabs := root.findAll(treeScopeDescendants, cond)
	if tabs == nil {
		return
	}
	defer tabs.Release()

	for i := int32(0); i < tabs.length(); i++ {
		tab := tabs.element(i)
		if tab == nil {
			continue
		}
		done := fn(tab)
		tab.Release()
		if done {
			return
		}
	}
}

func (l *locator) elementFromHandle(host uintptr) *iUIAutomationElement {
	var elem *iUIAutomationElement
	hr, _, _ := syscall.SyscallN(l.auto.vtbl().ElementFromHandle,
		uintptr(unsafe.Pointer(l.auto)), host, uintptr(unsafe.Pointer(&elem)))
	if int32(hr) < 0 {
		return nil
	}
	return elem
}

// tabItemCondition builds a ControlType == TabItem property condition.
// The VARIANT argument is passed by pointer: on x64 any struct wider
// than a register goes by reference.
func (l *locator) tabItemCondition() *ole.IUnknown {
	value := ole.NewVariant(ole.VT_I4, controlTypeTabItem)

	var cond *ole.IUnknown
	hr, _, _ := syscall.SyscallN(l.auto.vtbl().CreatePropertyCondition,
		uintptr(unsafe.Pointer(l.auto)), propControlType,
		uintptr(unsafe.Pointer(&value)), uintptr(unsafe.Pointer(&cond)))
	if int32(hr) < 0 {
		return nil
	}
	return cond
}

func (e *iUIAutomationElement) findAll(scope uintptr, cond *ole.IUnknown) *iUIAutomationElementArray {
	var arr *iUIAutomationElementArray
	hr, _, _ := syscall.SyscallN(e.vtbl().FindAll,
		uintptr(unsafe.Pointer(e)), scope,
		uintptr(unsafe.Pointer(cond)), uintptr(unsafe.Pointer(&arr)))
	if int32(hr) < 0 {
		return nil
	}
	return arr
}

func (a *iUIAutomationElementArray) length() int32 {
	var n int32
	hr, _, _ := syscall.SyscallN(a.vtbl().GetLength,
		uintptr(unsafe.Pointer(a)), uintptr(unsafe.Pointer(&n)))
	if int32(hr) < 0 {
		return 0
	}
	return n
}

func (a *iUIAutomationElementArray) element(i int32) *iUIAutomationElement {
	var elem *iUIAutomationElement
	hr, _, _ := syscall.SyscallN(a.vtbl().GetElement,
		uintptr(unsafe.Pointer(a)), uintptr(i), uintptr(unsafe.Pointer(&elem)))
	if int32(hr) < 0 {
		return nil
	}
	return elem
}

// runtimeIdentity reads the element's runtime id array and renders it
// as the dotted identity string.
func runtimeIdentity(e *iUIAutomationElement) string {
	var sa *ole.SafeArray
	hr, _, _ := syscall.SyscallN(e.vtbl().GetRuntimeId,
		uintptr(unsafe.Pointer(e)), uintptr(unsafe.Pointer(&sa)))
	if int32(hr) < 0 || sa == nil {
		return ""
	}

	conv := &ole.SafeArrayConversion{Array: sa}
	values := conv.ToValueArray()
	conv.Release()

	parts := make([]int32, 0, len(values))
	for _, v := range values {
		if n, ok := v.(int32); ok {
			parts = append(parts, n)
		}
	}
	return FormatIdentity(parts)
}

func selectionPattern(e *iUIAutomationElement) *iUIAutomationSelectionItemPattern {
	var pattern *iUIAutomationSelectionItemPattern
	hr, _, _ := syscall.SyscallN(e.vtbl().GetCurrentPatternAs,
		uintptr(unsafe.Pointer(e)), patternSelectionItem,
		uintptr(unsafe.Pointer(iidSelectionItemPattern)),
		uintptr(unsafe.Pointer(&pattern)))
	if int32(hr) < 0 {
		return nil
	}
	return pattern
}

func (p *iUIAutomationSelectionItemPattern) isSelected() bool {
	var selected int32
	hr, _, _ := syscall.SyscallN(p.vtbl().GetCurrentIsSelected,
		uintptr(unsafe.Pointer(p)), uintptr(unsafe.Pointer(&selected)))
	return int32(hr) >= 0 && selected != 0
}

func (p *iUIAutomationSelectionItemPattern) selectIt() {
	syscall.SyscallN(p.vtbl().Select, uintptr(unsafe.Pointer(p)))
}

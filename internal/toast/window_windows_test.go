//go:build windows

package toast

import (
	"testing"

	"golang.org/x/sys/windows"
)

// A waiting toast enumerates siblings every 200 ms for as long as it
// sits in the stack, so enumeration must reuse one callback
// registration: the runtime never releases them and panics past its
// cap.
func TestEnumSiblingsReusesOneCallback(t *testing.T) {
	if enumSiblingsProc != windows.NewCallback(collectSibling) {
		t.Fatal("sibling enumeration must register its callback once")
	}

	// Well past the runtime's callback limit; a per-call registration
	// would panic long before the loop finishes.
	for i := 0; i < 2100; i++ {
		enumSiblings(0)
	}
}

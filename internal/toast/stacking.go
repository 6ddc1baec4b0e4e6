package toast

// InitialPosition picks where a new toast appears given the monitor work
// area, the taskbar edge, and the other visible toasts. The first toast
// hugs the corner nearest the taskbar; later ones extend the stack away
// from it. A left- or right-docked taskbar stacks from the bottom like
// the default bottom dock, it only changes the X anchor.
func InitialPosition(work Rect, edge Edge, siblings []Sibling) (x, y int32) {
	if edge == EdgeLeft {
		x = work.Left
	} else {
		x = work.Right - Width
	}

	if len(siblings) == 0 {
		if edge == EdgeTop {
			y = work.Top
		} else {
			y = work.Bottom - Height
		}
		return x, y
	}

	if edge == EdgeTop {
		// Stack grows downward: appear below the lowest sibling.
		lowestBottom := work.Top
		for _, sib := range siblings {
			if sib.Rect.Bottom > lowestBottom {
				lowestBottom = sib.Rect.Bottom
			}
		}
		return x, lowestBottom
	}

	// Stack grows upward: appear above the highest sibling.
	highestTop := work.Bottom
	for _, sib := range siblings {
		if sib.Rect.Top < highestTop {
			highestTop = sib.Rect.Top
		}
	}
	return x, highestTop - Height
}

// IsLowest reports whether self is the stack's lowest toast, the one
// whose display countdown may run. The earliest-created window has the
// numerically smallest handle, so any smaller sibling handle means
// someone else is still below us.
func IsLowest(self Handle, siblings []Sibling) bool {
	for _, sib := range siblings {
		if sib.Handle < self {
			return false
		}
	}
	return true
}

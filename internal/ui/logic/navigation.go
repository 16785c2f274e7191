package logic

// NoFocus marks the absence of a keyboard-focused row
const NoFocus = -1

// MoveDown advances the focused index, stopping at the last row.
// With an empty list the result is NoFocus.
func MoveDown(index, count int) int {
	return min(index+1, count-1)
}

// MoveUp moves the focused index back, stopping at the first row.
// Moving up from NoFocus lands on the first row.
func MoveUp(index int) int {
	return max(index-1, 0)
}

// InRange reports whether index points into a list of count rows
func InRange(index, count int) bool {
	return index >= 0 && index < count
}

// Viewport is a scroll window over a list
type Viewport struct {
	Offset int
	Height int
}

// Follow scrolls so that focus stays visible. An out-of-range focus only
// clamps the offset.
func (v *Viewport) Follow(focus, total int) {
	if v.Height < 1 {
		v.Height = 1
	}

	maxOffset := max(total-v.Height, 0)
	if v.Offset > maxOffset {
		v.Offset = maxOffset
	}
	if v.Offset < 0 {
		v.Offset = 0
	}

	if !InRange(focus, total) {
		return
	}
	if focus < v.Offset {
		v.Offset = focus
	}
	if focus >= v.Offset+v.Height {
		v.Offset = focus - v.Height + 1
	}
}

// Window returns the half-open range of visible rows
func (v Viewport) Window(total int) (start, end int) {
	start = min(v.Offset, total)
	end = min(start+v.Height, total)
	return start, end
}

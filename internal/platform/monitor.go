package platform

// Bounds is a signed rectangle in virtual-screen coordinates. Monitors left
// of or above the primary one have negative origins.
type Bounds struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Contains reports whether the point lies inside b.
func (b Bounds) Contains(x, y int) bool {
	return x >= b.X && x < b.X+b.Width && y >= b.Y && y < b.Y+b.Height
}

// Intersect returns the overlap of a and b, or the zero Bounds when they do
// not overlap.
func (b Bounds) Intersect(o Bounds) Bounds {
	x1 := max(b.X, o.X)
	y1 := max(b.Y, o.Y)
	x2 := min(b.X+b.Width, o.X+o.Width)
	y2 := min(b.Y+b.Height, o.Y+o.Height)
	if x2 <= x1 || y2 <= y1 {
		return Bounds{}
	}
	return Bounds{X: x1, Y: y1, Width: x2 - x1, Height: y2 - y1}
}

// Empty reports whether b has no area.
func (b Bounds) Empty() bool {
	return b.Width <= 0 || b.Height <= 0
}

// Monitor is one active output.
type Monitor struct {
	Name     string
	Primary  bool
	Bounds   Bounds
	WorkArea Bounds // Bounds minus panels, docks and taskbars
}

// Center returns the position that centers a client area of size in the
// monitor's work area. The result is clamped to the unsigned position range,
// so monitors at negative offsets place the window at the origin edge.
func (m Monitor) Center(size Rect) Rect {
	area := m.WorkArea
	if area.Empty() {
		area = m.Bounds
	}
	x := area.X + (area.Width-int(size.X))/2
	y := area.Y + (area.Height-int(size.Y))/2
	return Rect{X: clampU16(max(x, area.X)), Y: clampU16(max(y, area.Y))}
}

// PrimaryMonitor returns the primary monitor, or the first one when none is
// flagged. ok is false for an empty list.
func PrimaryMonitor(monitors []Monitor) (Monitor, bool) {
	if len(monitors) == 0 {
		return Monitor{}, false
	}
	for _, m := range monitors {
		if m.Primary {
			return m, true
		}
	}
	return monitors[0], true
}

// MonitorAt returns the first monitor whose bounds contain the point.
func MonitorAt(monitors []Monitor, x, y int) (Monitor, bool) {
	for _, m := range monitors {
		if m.Bounds.Contains(x, y) {
			return m, true
		}
	}
	return Monitor{}, false
}

func clampU16(v int) uint16 {
	switch {
	case v < 0:
		return 0
	case v > 0xFFFF:
		return 0xFFFF
	default:
		return uint16(v)
	}
}

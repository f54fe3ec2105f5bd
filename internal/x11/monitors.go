package x11

import (
	"fmt"
	"slices"

	"github.com/1broseidon/nativewin/internal/platform"
	"github.com/BurntSushi/xgb/randr"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/ewmh"
)

// Monitors connects to the display named in opts and lists its active
// outputs.
func Monitors(opts platform.Options) ([]platform.Monitor, error) {
	conn, err := NewConnection(opts.Display)
	if err != nil {
		return nil, platform.NewError(platform.KindConnect, "connect "+displayName(opts.Display), err)
	}
	defer conn.Close()
	return conn.Monitors()
}

// Monitors retrieves all active monitors using XRandR. Each work area is
// the monitor minus dock struts, or the intersection with _NET_WORKAREA when
// no dock advertises struts.
func (c *Connection) Monitors() ([]platform.Monitor, error) {
	xc := c.Conn()
	if err := randr.Init(xc); err != nil {
		return nil, platform.NewError(platform.KindReply, "randr init", err)
	}

	resources, err := randr.GetScreenResources(xc, c.Root).Reply()
	if err != nil {
		return nil, platform.NewError(platform.KindReply, "randr get screen resources", err)
	}

	var primary randr.Output
	if reply, err := randr.GetOutputPrimary(xc, c.Root).Reply(); err == nil {
		primary = reply.Output
	}

	struts, rootW, rootH := c.dockStruts()

	var monitors []platform.Monitor
	for i, crtc := range resources.Crtcs {
		info, err := randr.GetCrtcInfo(xc, crtc, resources.ConfigTimestamp).Reply()
		if err != nil {
			continue
		}
		// Disabled CRTC.
		if info.Width == 0 || info.Height == 0 || len(info.Outputs) == 0 {
			continue
		}

		name := fmt.Sprintf("Monitor%d", i)
		if out, err := randr.GetOutputInfo(xc, info.Outputs[0], resources.ConfigTimestamp).Reply(); err == nil {
			name = string(out.Name)
		}

		isPrimary := false
		for _, out := range info.Outputs {
			if primary != 0 && out == primary {
				isPrimary = true
			}
		}

		bounds := platform.Bounds{
			X:      int(info.X),
			Y:      int(info.Y),
			Width:  int(info.Width),
			Height: int(info.Height),
		}
		work, trimmed := trimStruts(bounds, rootW, rootH, struts)
		if !trimmed {
			work = c.workareaFallback(bounds)
		}

		monitors = append(monitors, platform.Monitor{
			Name:     name,
			Primary:  isPrimary,
			Bounds:   bounds,
			WorkArea: work,
		})
	}

	return monitors, nil
}

// dockStruts collects the strut reservations of every dock client, along
// with the root window size.
func (c *Connection) dockStruts() ([]ewmh.WmStrutPartial, int, int) {
	rootGeom, err := xproto.GetGeometry(c.Conn(), xproto.Drawable(c.Root)).Reply()
	if err != nil {
		return nil, 0, 0
	}
	rootWidth := int(rootGeom.Width)
	rootHeight := int(rootGeom.Height)

	clients, err := ewmh.ClientListGet(c.XUtil)
	if err != nil {
		return nil, rootWidth, rootHeight
	}

	var struts []ewmh.WmStrutPartial
	for _, id := range clients {
		types, err := ewmh.WmWindowTypeGet(c.XUtil, id)
		if err != nil || !slices.Contains(types, "_NET_WM_WINDOW_TYPE_DOCK") {
			continue
		}

		if sp, err := ewmh.WmStrutPartialGet(c.XUtil, id); err == nil {
			struts = append(struts, *sp)
			continue
		}

		// Some docks only set _NET_WM_STRUT (no partial ranges).
		if s, err := ewmh.WmStrutGet(c.XUtil, id); err == nil {
			struts = append(struts, fullStrut(s, rootWidth, rootHeight))
		}
	}
	return struts, rootWidth, rootHeight
}

func (c *Connection) workareaFallback(bounds platform.Bounds) platform.Bounds {
	areas, err := ewmh.WorkareaGet(c.XUtil)
	if err != nil || len(areas) == 0 {
		return bounds
	}
	desktop := 0
	if cur, err := ewmh.CurrentDesktopGet(c.XUtil); err == nil && int(cur) < len(areas) {
		desktop = int(cur)
	}
	wa := areas[desktop]
	return workareaIntersect(bounds, platform.Bounds{
		X:      wa.X,
		Y:      wa.Y,
		Width:  int(wa.Width),
		Height: int(wa.Height),
	})
}

// workareaIntersect trims bounds to the desktop work area, leaving it
// unchanged when the two do not overlap.
func workareaIntersect(bounds, area platform.Bounds) platform.Bounds {
	if isect := bounds.Intersect(area); !isect.Empty() {
		return isect
	}
	return bounds
}

func fullStrut(s *ewmh.WmStrut, rootWidth, rootHeight int) ewmh.WmStrutPartial {
	return ewmh.WmStrutPartial{
		Left:       s.Left,
		Right:      s.Right,
		Top:        s.Top,
		Bottom:     s.Bottom,
		LeftEndY:   uint(rootHeight - 1),
		RightEndY:  uint(rootHeight - 1),
		TopEndX:    uint(rootWidth - 1),
		BottomEndX: uint(rootWidth - 1),
	}
}

// trimStruts removes the parts of mon covered by dock struts. Struts are
// anchored to the root window edges; each one only trims the monitors it
// actually overlaps. trimmed is false when no strut touches mon.
func trimStruts(mon platform.Bounds, rootWidth, rootHeight int, struts []ewmh.WmStrutPartial) (platform.Bounds, bool) {
	var left, right, top, bottom int
	for _, sp := range struts {
		// Top strut: y=[0,Top), x=[TopStartX,TopEndX]
		if sp.Top > 0 {
			r := platform.Bounds{X: int(sp.TopStartX), Width: int(sp.TopEndX) + 1 - int(sp.TopStartX), Height: int(sp.Top)}
			top = max(top, mon.Intersect(r).Height)
		}
		// Bottom strut: y=[rootHeight-Bottom,rootHeight)
		if sp.Bottom > 0 {
			r := platform.Bounds{X: int(sp.BottomStartX), Y: rootHeight - int(sp.Bottom), Width: int(sp.BottomEndX) + 1 - int(sp.BottomStartX), Height: int(sp.Bottom)}
			bottom = max(bottom, mon.Intersect(r).Height)
		}
		// Left strut: x=[0,Left), y=[LeftStartY,LeftEndY]
		if sp.Left > 0 {
			r := platform.Bounds{Y: int(sp.LeftStartY), Width: int(sp.Left), Height: int(sp.LeftEndY) + 1 - int(sp.LeftStartY)}
			left = max(left, mon.Intersect(r).Width)
		}
		// Right strut: x=[rootWidth-Right,rootWidth)
		if sp.Right > 0 {
			r := platform.Bounds{X: rootWidth - int(sp.Right), Y: int(sp.RightStartY), Width: int(sp.Right), Height: int(sp.RightEndY) + 1 - int(sp.RightStartY)}
			right = max(right, mon.Intersect(r).Width)
		}
	}

	if left == 0 && right == 0 && top == 0 && bottom == 0 {
		return mon, false
	}

	work := platform.Bounds{
		X:      mon.X + left,
		Y:      mon.Y + top,
		Width:  max(mon.Width-left-right, 1),
		Height: max(mon.Height-top-bottom, 1),
	}
	return work, true
}

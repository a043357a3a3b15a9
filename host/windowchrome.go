package host

import "github.com/1broseidon/glhost/embedder"

var _ embedder.WindowHandler = (*WindowChrome)(nil)

// WindowChrome implements embedder.WindowHandler: lifecycle and geometry
// pass-throughs plus the drag-to-move state machine driven by pointer-move
// events from the host event loop. The drag state is owned by this value and
// only touched on the dispatcher's thread; the window itself is shared and
// lock-guarded.
type WindowChrome struct {
	window *Window

	dragging     bool
	startCursorX float64
	startCursorY float64
}

// NewWindowChrome returns a window handler over the shared window, with no
// drag session active.
func NewWindowChrome(window *Window) *WindowChrome {
	return &WindowChrome{window: window}
}

// Close marks the window as should-close. Actual teardown is deferred to the
// host's main loop.
func (c *WindowChrome) Close() {
	c.window.SetShouldClose(true)
}

// Show makes the window visible.
func (c *WindowChrome) Show() { c.window.Show() }

// Hide hides the window.
func (c *WindowChrome) Hide() { c.window.Hide() }

// Maximize maximizes the window.
func (c *WindowChrome) Maximize() { c.window.Maximize() }

// Iconify minimizes the window.
func (c *WindowChrome) Iconify() { c.window.Iconify() }

// Restore restores the window from the maximized or iconified state.
func (c *WindowChrome) Restore() { c.window.Restore() }

// Maximized reports whether the window is maximized.
func (c *WindowChrome) Maximized() bool { return c.window.Maximized() }

// Iconified reports whether the window is iconified.
func (c *WindowChrome) Iconified() bool { return c.window.Iconified() }

// Visible reports whether the window is visible.
func (c *WindowChrome) Visible() bool { return c.window.Visible() }

// SetPos moves the window to the given screen position.
func (c *WindowChrome) SetPos(pos embedder.PositionParams) {
	c.window.SetPos(int(pos.X), int(pos.Y))
}

// Pos returns the current window position.
func (c *WindowChrome) Pos() embedder.PositionParams {
	x, y := c.window.Pos()
	return embedder.PositionParams{X: float32(x), Y: float32(y)}
}

// StartDrag records the current cursor position as the drag anchor and
// activates the drag session.
func (c *WindowChrome) StartDrag() {
	c.dragging = true
	c.startCursorX, c.startCursorY = c.window.CursorPos()
}

// DragWindow moves the window by the raw displacement of (x, y) from the
// drag anchor, applied to the position read at call time. The anchor stays
// fixed for the whole session, so repeated calls with the same coordinates
// add no further movement unless the position changed externally in
// between. Reports whether a drag session is active.
func (c *WindowChrome) DragWindow(x, y float64) bool {
	if c.dragging {
		dx := int(x - c.startCursorX)
		dy := int(y - c.startCursorY)
		wx, wy := c.window.Pos()
		c.window.SetPos(wx+dx, wy+dy)
	}
	return c.dragging
}

// EndDrag deactivates the drag session. No-op when none is active.
func (c *WindowChrome) EndDrag() {
	c.dragging = false
}

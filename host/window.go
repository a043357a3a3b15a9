// Package host implements the adapters that sit between a rendering engine
// and the native windowing toolkit: the engine callback surface the engine
// invokes on its render threads, and the platform/window chrome operations
// the platform-channel dispatcher invokes on the UI thread.
package host

import "sync"

// Window wraps a NativeWindow with the mutual-exclusion lock that every
// adapter shares. The engine's render thread and the host's UI thread both
// mutate the same native window; each exported method takes the lock for
// exactly one native call and releases it before returning, so the lock is
// never held across a blocking wait or a re-entrant toolkit call.
//
// The resource window uses the same type with its own independent lock.
type Window struct {
	mu  sync.Mutex
	win NativeWindow
}

// NewWindow wraps win for shared use across threads.
func NewWindow(win NativeWindow) *Window {
	return &Window{win: win}
}

// SwapBuffers presents the back buffer.
func (w *Window) SwapBuffers() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.win.SwapBuffers()
}

// MakeContextCurrent binds this window's GL context to the calling thread.
func (w *Window) MakeContextCurrent() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.win.MakeContextCurrent()
}

// SetShouldClose marks the window for teardown by the host's main loop.
func (w *Window) SetShouldClose(v bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.win.SetShouldClose(v)
}

// Show makes the window visible.
func (w *Window) Show() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.win.Show()
}

// Hide hides the window.
func (w *Window) Hide() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.win.Hide()
}

// Maximize maximizes the window.
func (w *Window) Maximize() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.win.Maximize()
}

// Iconify minimizes the window.
func (w *Window) Iconify() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.win.Iconify()
}

// Restore restores the window from the maximized or iconified state.
func (w *Window) Restore() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.win.Restore()
}

// Maximized reports whether the window is maximized.
func (w *Window) Maximized() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.win.Maximized()
}

// Iconified reports whether the window is iconified.
func (w *Window) Iconified() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.win.Iconified()
}

// Visible reports whether the window is visible.
func (w *Window) Visible() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.win.Visible()
}

// SetPos moves the window to (x, y) in screen coordinates.
func (w *Window) SetPos(x, y int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.win.SetPos(x, y)
}

// Pos returns the window position in screen coordinates.
func (w *Window) Pos() (x, y int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.win.Pos()
}

// CursorPos returns the cursor position relative to the window.
func (w *Window) CursorPos() (x, y float64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.win.CursorPos()
}

// SetTitle sets the window title.
func (w *Window) SetTitle(title string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.win.SetTitle(title)
}

// SetClipboard writes text to the OS clipboard.
func (w *Window) SetClipboard(text string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.win.SetClipboard(text)
}

// Clipboard reads the OS clipboard, "" when empty.
func (w *Window) Clipboard() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.win.Clipboard()
}

// Package glfwwin implements host.NativeWindow and host.Toolkit on GLFW,
// and creates the main/resource window pair the engine adapters share.
//
// GLFW requires Init, window creation, and event polling to happen on the
// main thread; callers are expected to lock the main goroutine to its OS
// thread before calling Init.
package glfwwin

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/1broseidon/glhost/host"
)

var (
	_ host.NativeWindow = (*Window)(nil)
	_ host.Toolkit      = Toolkit{}
)

// Options configures the main window. The resource window is always created
// hidden and undecorated, sharing the main window's GL context group.
type Options struct {
	Title     string
	Width     int
	Height    int
	Decorated bool
	Resizable bool
	Visible   bool
}

// DefaultOptions returns the options used when the host supplies none.
func DefaultOptions() Options {
	return Options{
		Title:     "glhost",
		Width:     800,
		Height:    600,
		Decorated: true,
		Resizable: true,
		Visible:   true,
	}
}

// Window adapts a *glfw.Window to host.NativeWindow.
type Window struct {
	win *glfw.Window
}

// Wrap adapts an existing GLFW window.
func Wrap(win *glfw.Window) *Window {
	return &Window{win: win}
}

// GLFW returns the underlying GLFW window, for event-callback registration
// on the main thread.
func (w *Window) GLFW() *glfw.Window {
	return w.win
}

// SwapBuffers presents the back buffer. GLFW reports no failure here.
func (w *Window) SwapBuffers() { w.win.SwapBuffers() }

// MakeContextCurrent binds the window's GL context to the calling thread.
func (w *Window) MakeContextCurrent() { w.win.MakeContextCurrent() }

// SetShouldClose marks the window for teardown by the main loop.
func (w *Window) SetShouldClose(v bool) { w.win.SetShouldClose(v) }

// Show makes the window visible.
func (w *Window) Show() { w.win.Show() }

// Hide hides the window.
func (w *Window) Hide() { w.win.Hide() }

// Maximize maximizes the window.
func (w *Window) Maximize() { w.win.Maximize() }

// Iconify minimizes the window.
func (w *Window) Iconify() { w.win.Iconify() }

// Restore restores the window from the maximized or iconified state.
func (w *Window) Restore() { w.win.Restore() }

// Maximized reports the GLFW maximized attribute.
func (w *Window) Maximized() bool { return w.win.GetAttrib(glfw.Maximized) == glfw.True }

// Iconified reports the GLFW iconified attribute.
func (w *Window) Iconified() bool { return w.win.GetAttrib(glfw.Iconified) == glfw.True }

// Visible reports the GLFW visible attribute.
func (w *Window) Visible() bool { return w.win.GetAttrib(glfw.Visible) == glfw.True }

// SetPos moves the window to (x, y) in screen coordinates.
func (w *Window) SetPos(x, y int) { w.win.SetPos(x, y) }

// Pos returns the window position in screen coordinates.
func (w *Window) Pos() (int, int) { return w.win.GetPos() }

// CursorPos returns the cursor position relative to the window's content
// area.
func (w *Window) CursorPos() (float64, float64) { return w.win.GetCursorPos() }

// SetTitle sets the window title.
func (w *Window) SetTitle(title string) { w.win.SetTitle(title) }

// SetClipboard writes text to the system clipboard.
func (w *Window) SetClipboard(text string) { w.win.SetClipboardString(text) }

// Clipboard reads the system clipboard. GLFW yields "" when the clipboard is
// empty or holds no convertible text.
func (w *Window) Clipboard() string { return w.win.GetClipboardString() }

// Destroy destroys the underlying GLFW window. Main thread only.
func (w *Window) Destroy() { w.win.Destroy() }

// Toolkit implements host.Toolkit on GLFW's global entry points, all of
// which are callable from any thread.
type Toolkit struct{}

// DetachCurrentContext unbinds any GL context from the calling thread.
func (Toolkit) DetachCurrentContext() { glfw.DetachCurrentContext() }

// ProcAddress resolves a GL function pointer through GLFW's loader. GLFW
// returns nil for names it cannot resolve; that is not validated further
// here.
func (Toolkit) ProcAddress(name string) unsafe.Pointer { return glfw.GetProcAddress(name) }

// PostEmptyEvent wakes a thread blocked in glfw.WaitEvents.
func (Toolkit) PostEmptyEvent() { glfw.PostEmptyEvent() }

// CreatePair creates the visible main window and the hidden resource window
// whose GL context shares objects with the main one. Main thread only. The
// main window's context is left current on the calling thread so the host
// can finish setup; the engine rebinds it on its own threads afterwards.
func CreatePair(opts Options) (main, resource *Window, err error) {
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.Decorated, boolHint(opts.Decorated))
	glfw.WindowHint(glfw.Resizable, boolHint(opts.Resizable))
	glfw.WindowHint(glfw.Visible, boolHint(opts.Visible))

	mainWin, err := glfw.CreateWindow(opts.Width, opts.Height, opts.Title, nil, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create main window: %w", err)
	}

	// The resource window exists only to carry the shared context for
	// background GL work; it is never shown.
	glfw.WindowHint(glfw.Decorated, glfw.False)
	glfw.WindowHint(glfw.Visible, glfw.False)
	resWin, err := glfw.CreateWindow(1, 1, opts.Title+" (resources)", nil, mainWin)
	if err != nil {
		mainWin.Destroy()
		return nil, nil, fmt.Errorf("failed to create resource window: %w", err)
	}

	mainWin.MakeContextCurrent()
	return Wrap(mainWin), Wrap(resWin), nil
}

func boolHint(v bool) int {
	if v {
		return glfw.True
	}
	return glfw.False
}

package host

import "unsafe"

// NativeWindow abstracts the per-window operations of the windowing toolkit.
// The GLFW implementation lives in host/glfwwin; tests use an in-memory fake.
// Implementations are not required to be goroutine-safe: callers go through
// Window, which serializes access.
type NativeWindow interface {
	// SwapBuffers presents the back buffer. The toolkit exposes no failure
	// signal for this.
	SwapBuffers()

	// MakeContextCurrent binds this window's GL context to the calling
	// thread.
	MakeContextCurrent()

	// SetShouldClose marks the window for teardown by the host's main loop.
	SetShouldClose(v bool)

	Show()
	Hide()
	Maximize()
	Iconify()
	Restore()
	Maximized() bool
	Iconified() bool
	Visible() bool

	SetPos(x, y int)
	Pos() (x, y int)
	CursorPos() (x, y float64)

	SetTitle(title string)

	SetClipboard(text string)
	// Clipboard returns the clipboard's text content, or "" when it is
	// empty or holds no convertible text.
	Clipboard() string
}

// Toolkit abstracts the toolkit operations that are not tied to a single
// window. All three must be callable from any thread.
type Toolkit interface {
	// DetachCurrentContext unbinds any GL context from the calling thread.
	DetachCurrentContext()

	// ProcAddress resolves a GL function pointer by name, or nil if the
	// toolkit cannot resolve it.
	ProcAddress(name string) unsafe.Pointer

	// PostEmptyEvent wakes a thread blocked waiting for OS events. Must not
	// allocate or block.
	PostEmptyEvent()
}

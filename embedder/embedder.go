// Package embedder defines the capability contracts between a rendering
// engine and its host. The engine calls EngineHandler on its internal
// threads; the host's platform-channel dispatcher calls PlatformHandler and
// WindowHandler on the UI thread. Concrete adapters live in package host.
package embedder

import (
	"errors"
	"unsafe"

	"github.com/1broseidon/glhost/texture"
)

// MimeTextPlain is the only clipboard format the platform handler serves.
const MimeTextPlain = "text/plain"

// ErrUnsupportedMime is returned by ClipboardData for any MIME type other
// than text/plain. Callers must not retry the same request.
var ErrUnsupportedMime = errors.New("embedder: unsupported clipboard MIME type")

// AppSwitcherDescription describes how the application appears in the OS
// app switcher. Only Label is consumed by desktop hosts; PrimaryColor is
// carried for mobile parity.
type AppSwitcherDescription struct {
	Label        string
	PrimaryColor uint32
}

// PositionParams is a window position in screen coordinates.
type PositionParams struct {
	X float32
	Y float32
}

// EngineHandler is the host callback surface the rendering engine drives.
// Every method is synchronous and must be safe to call from a thread other
// than the one that created the window.
type EngineHandler interface {
	// SwapBuffers presents the current framebuffer on the main window.
	// The toolkit's swap never signals failure, so this always reports true;
	// callers must not rely on failure detection here.
	SwapBuffers() bool

	// MakeCurrent binds the main window's GL context to the calling thread.
	// The engine pairs it with ClearCurrent; the handler never unbinds on
	// the engine's behalf.
	MakeCurrent() bool

	// ClearCurrent unbinds whatever GL context is current on the calling
	// thread, regardless of which window owned it.
	ClearCurrent() bool

	// FBO returns the framebuffer id to render into. Always 0: on-screen
	// rendering only, no dynamic FBO management.
	FBO() uint32

	// MakeResourceCurrent binds the resource window's shared context to the
	// calling thread, for GL resource work off the main render context.
	MakeResourceCurrent() bool

	// GLProcResolver resolves a GL function pointer by name. Returns nil if
	// the toolkit cannot resolve it.
	GLProcResolver(name string) unsafe.Pointer

	// WakePlatformThread posts an empty event to the toolkit's event queue
	// so a thread blocked in the event wait re-checks its work. Safe from
	// any thread; never allocates or blocks.
	WakePlatformThread()

	// RunInBackground schedules task on a pool that is not the window's
	// owning thread. Fire and forget: no result, no cancellation. GL work
	// inside the task must bracket itself with MakeResourceCurrent and
	// ClearCurrent.
	RunInBackground(task func())

	// TextureFrame asks the texture bridge for a frame of the given pixel
	// size. Reports false if the id is unknown or the source cannot produce
	// one; that is a normal degraded state, not an error.
	TextureFrame(textureID int64, width, height uint32) (texture.Frame, bool)
}

// PlatformHandler serves OS-chrome requests arriving over the platform
// channel. Instances are handed off to the dispatcher's thread; they are not
// shared concurrently.
type PlatformHandler interface {
	// SetApplicationSwitcherDescription applies the description's label as
	// the window title. No other field is consumed.
	SetApplicationSwitcherDescription(desc AppSwitcherDescription)

	// SetClipboardData writes plain text to the OS clipboard.
	SetClipboardData(text string)

	// ClipboardData reads the clipboard as the given MIME type. Only
	// text/plain is supported; an empty clipboard yields "" with no error,
	// any other MIME type yields ErrUnsupportedMime.
	ClipboardData(mime string) (string, error)
}

// WindowHandler serves window lifecycle, geometry, and drag-to-move requests
// arriving over the window channel.
type WindowHandler interface {
	// Close marks the window as should-close; teardown is deferred to the
	// host's main loop.
	Close()

	Show()
	Hide()
	Maximize()
	Iconify()
	Restore()
	Maximized() bool
	Iconified() bool
	Visible() bool

	SetPos(pos PositionParams)
	Pos() PositionParams

	// StartDrag records the current cursor position as the drag anchor and
	// begins a drag session.
	StartDrag()

	// DragWindow moves the window by the displacement of (x, y) from the
	// drag anchor, applied to the window position read at call time. Reports
	// whether a drag session is active; when none is, the window is left
	// untouched.
	DragWindow(x, y float64) bool

	// EndDrag ends the drag session. No-op when none is active.
	EndDrag()
}

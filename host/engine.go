package host

import (
	"unsafe"

	"github.com/1broseidon/glhost/embedder"
	"github.com/1broseidon/glhost/texture"
)

var _ embedder.EngineHandler = (*EngineCallbacks)(nil)

// EngineCallbacks implements embedder.EngineHandler on top of the shared
// window pair, the texture registry, and the background pool. The engine
// invokes it synchronously on whichever internal thread it designates, so
// every method that touches a window goes through that window's lock.
//
// None of these operations surface engine-visible errors beyond the
// boolean/optional results: the toolkit's swap and context binds carry no
// failure signal, and misses (unknown proc name, unknown texture id) degrade
// to nil/empty results the engine tolerates.
type EngineCallbacks struct {
	toolkit  Toolkit
	window   *Window
	resource *Window
	textures *texture.Registry
	pool     *Pool
}

// NewEngineCallbacks wires the engine callback surface. resource is the
// hidden window whose GL context shares objects with window's; pool receives
// RunInBackground tasks.
func NewEngineCallbacks(tk Toolkit, window, resource *Window, textures *texture.Registry, pool *Pool) *EngineCallbacks {
	return &EngineCallbacks{
		toolkit:  tk,
		window:   window,
		resource: resource,
		textures: textures,
		pool:     pool,
	}
}

// SwapBuffers presents the current framebuffer on the main window.
func (e *EngineCallbacks) SwapBuffers() bool {
	e.window.SwapBuffers()
	return true
}

// MakeCurrent binds the main window's GL context to the calling thread.
func (e *EngineCallbacks) MakeCurrent() bool {
	e.window.MakeContextCurrent()
	return true
}

// ClearCurrent unbinds any GL context from the calling thread, independent
// of which window owned it, so no window lock is needed.
func (e *EngineCallbacks) ClearCurrent() bool {
	e.toolkit.DetachCurrentContext()
	return true
}

// FBO returns the default framebuffer id for on-screen rendering.
func (e *EngineCallbacks) FBO() uint32 {
	return 0
}

// MakeResourceCurrent binds the resource window's shared GL context to the
// calling thread.
func (e *EngineCallbacks) MakeResourceCurrent() bool {
	e.resource.MakeContextCurrent()
	return true
}

// GLProcResolver resolves a GL function pointer through the toolkit's
// loader. Returns nil for names the toolkit cannot resolve.
func (e *EngineCallbacks) GLProcResolver(name string) unsafe.Pointer {
	return e.toolkit.ProcAddress(name)
}

// WakePlatformThread posts an empty event so a thread blocked in the event
// wait re-checks its work queue.
func (e *EngineCallbacks) WakePlatformThread() {
	e.toolkit.PostEmptyEvent()
}

// RunInBackground hands task to the pool. Tasks doing GL work must bracket
// themselves with MakeResourceCurrent and ClearCurrent.
func (e *EngineCallbacks) RunInBackground(task func()) {
	e.pool.Submit(task)
}

// TextureFrame delegates to the texture registry. A miss is a normal
// degraded state, reported as false.
func (e *EngineCallbacks) TextureFrame(textureID int64, width, height uint32) (texture.Frame, bool) {
	return e.textures.Frame(textureID, width, height)
}

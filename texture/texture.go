// Package texture implements the bridge between externally produced GPU
// textures and the engine's compositor. Sources are registered by id;
// the engine asks for frames by id and pixel size.
package texture

import "sync"

// Frame is one presentable external texture frame. Name is the GL texture
// object, Target and Format the GL enums the compositor should sample it
// with. Release, if non-nil, is invoked by the engine once the frame is no
// longer in use.
type Frame struct {
	Target  uint32
	Name    uint32
	Format  uint32
	Release func()
}

// Source produces frames for one registered texture id. Frame reports false
// when no frame can be produced at the requested size; it must not block on
// GPU work beyond its own contract.
type Source interface {
	Frame(width, height uint32) (Frame, bool)
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func(width, height uint32) (Frame, bool)

// Frame implements Source.
func (f SourceFunc) Frame(width, height uint32) (Frame, bool) {
	return f(width, height)
}

// Registry maps texture ids to their sources. Registration happens on the
// host side; the engine callback adapter only reads. All access serializes
// through one lock, independent of the window lock.
type Registry struct {
	mu      sync.Mutex
	sources map[int64]Source
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{sources: make(map[int64]Source)}
}

// Register adds or replaces the source for id.
func (r *Registry) Register(id int64, src Source) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sources[id] = src
}

// Unregister removes the source for id. No-op if the id is unknown.
func (r *Registry) Unregister(id int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sources, id)
}

// Frame looks up id and asks its source for a frame at the given size.
// Reports false for unknown ids and for sources that decline. The registry
// lock is held for the duration, so registration changes never interleave
// with an in-flight frame request.
func (r *Registry) Frame(id int64, width, height uint32) (Frame, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	src, ok := r.sources[id]
	if !ok {
		return Frame{}, false
	}
	return src.Frame(width, height)
}

// Len reports the number of registered sources.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sources)
}

package host

import (
	"runtime"
	"sync/atomic"
	"unsafe"
)

// fakeNativeWindow is an in-memory NativeWindow. Every method asserts that
// callers serialize access: busy must go 0 -> 1 -> 0 around each call, and
// any overlap is counted in violations. The Gosched widens the window so the
// stress tests actually catch missing locking.
type fakeNativeWindow struct {
	violations atomic.Int32
	busy       atomic.Int32

	x, y             int
	cursorX, cursorY float64
	title            string
	clipboard        string
	visible          bool
	maximized        bool
	iconified        bool
	shouldClose      bool

	swaps        int
	contextBinds int
}

func newFakeNativeWindow() *fakeNativeWindow {
	return &fakeNativeWindow{visible: true}
}

func (f *fakeNativeWindow) enter() func() {
	if f.busy.Add(1) != 1 {
		f.violations.Add(1)
	}
	runtime.Gosched()
	return func() { f.busy.Add(-1) }
}

func (f *fakeNativeWindow) SwapBuffers() {
	defer f.enter()()
	f.swaps++
}

func (f *fakeNativeWindow) MakeContextCurrent() {
	defer f.enter()()
	f.contextBinds++
}

func (f *fakeNativeWindow) SetShouldClose(v bool) {
	defer f.enter()()
	f.shouldClose = v
}

func (f *fakeNativeWindow) Show() {
	defer f.enter()()
	f.visible = true
}

func (f *fakeNativeWindow) Hide() {
	defer f.enter()()
	f.visible = false
}

func (f *fakeNativeWindow) Maximize() {
	defer f.enter()()
	f.maximized = true
}

func (f *fakeNativeWindow) Iconify() {
	defer f.enter()()
	f.iconified = true
}

func (f *fakeNativeWindow) Restore() {
	defer f.enter()()
	f.maximized = false
	f.iconified = false
}

func (f *fakeNativeWindow) Maximized() bool {
	defer f.enter()()
	return f.maximized
}

func (f *fakeNativeWindow) Iconified() bool {
	defer f.enter()()
	return f.iconified
}

func (f *fakeNativeWindow) Visible() bool {
	defer f.enter()()
	return f.visible
}

func (f *fakeNativeWindow) SetPos(x, y int) {
	defer f.enter()()
	f.x = x
	f.y = y
}

func (f *fakeNativeWindow) Pos() (int, int) {
	defer f.enter()()
	return f.x, f.y
}

func (f *fakeNativeWindow) CursorPos() (float64, float64) {
	defer f.enter()()
	return f.cursorX, f.cursorY
}

func (f *fakeNativeWindow) SetTitle(title string) {
	defer f.enter()()
	f.title = title
}

func (f *fakeNativeWindow) SetClipboard(text string) {
	defer f.enter()()
	f.clipboard = text
}

func (f *fakeNativeWindow) Clipboard() string {
	defer f.enter()()
	return f.clipboard
}

var fakeProcTarget int

// fakeToolkit is an in-memory Toolkit that counts detaches and wakes and
// resolves a single known proc name.
type fakeToolkit struct {
	detaches    atomic.Int32
	emptyEvents atomic.Int32
}

func (f *fakeToolkit) DetachCurrentContext() {
	f.detaches.Add(1)
}

func (f *fakeToolkit) ProcAddress(name string) unsafe.Pointer {
	if name == "glClear" {
		return unsafe.Pointer(&fakeProcTarget)
	}
	return nil
}

func (f *fakeToolkit) PostEmptyEvent() {
	f.emptyEvents.Add(1)
}

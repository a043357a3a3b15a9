package host

import (
	"testing"

	"github.com/1broseidon/glhost/embedder"
)

func TestWindowChrome_DragScenario(t *testing.T) {
	fake := newFakeNativeWindow()
	fake.cursorX, fake.cursorY = 100, 100
	fake.x, fake.y = 10, 10
	chrome := NewWindowChrome(NewWindow(fake))

	chrome.StartDrag()

	if got := chrome.DragWindow(120, 115); !got {
		t.Fatal("DragWindow during an active drag = false, want true")
	}
	if fake.x != 30 || fake.y != 25 {
		t.Fatalf("window at (%d, %d) after drag, want (30, 25)", fake.x, fake.y)
	}

	chrome.EndDrag()

	if got := chrome.DragWindow(200, 200); got {
		t.Fatal("DragWindow after EndDrag = true, want false")
	}
	if fake.x != 30 || fake.y != 25 {
		t.Fatalf("window moved to (%d, %d) after EndDrag, want (30, 25)", fake.x, fake.y)
	}
}

func TestWindowChrome_DragAppliesDisplacementFromFixedAnchor(t *testing.T) {
	// The anchor is the cursor position at StartDrag; each call applies the
	// full displacement from that anchor to the position read at call time.
	fake := newFakeNativeWindow()
	fake.cursorX, fake.cursorY = 100, 100
	fake.x, fake.y = 10, 10
	chrome := NewWindowChrome(NewWindow(fake))

	chrome.StartDrag()

	chrome.DragWindow(120, 115)
	if fake.x != 30 || fake.y != 25 {
		t.Fatalf("window at (%d, %d), want (30, 25)", fake.x, fake.y)
	}

	chrome.DragWindow(130, 120)
	if fake.x != 60 || fake.y != 45 {
		t.Fatalf("window at (%d, %d), want (60, 45)", fake.x, fake.y)
	}
}

func TestWindowChrome_DragWithoutSessionNeverMoves(t *testing.T) {
	fake := newFakeNativeWindow()
	fake.x, fake.y = 42, 24
	chrome := NewWindowChrome(NewWindow(fake))

	for _, pos := range [][2]float64{{0, 0}, {100, 100}, {-50, 7}} {
		if got := chrome.DragWindow(pos[0], pos[1]); got {
			t.Errorf("DragWindow(%v, %v) with no session = true, want false", pos[0], pos[1])
		}
	}
	if fake.x != 42 || fake.y != 24 {
		t.Fatalf("window moved to (%d, %d) with no drag session, want (42, 24)", fake.x, fake.y)
	}
}

func TestWindowChrome_StartThenEndLeavesPositionUnchanged(t *testing.T) {
	fake := newFakeNativeWindow()
	fake.cursorX, fake.cursorY = 5, 5
	fake.x, fake.y = 42, 24
	chrome := NewWindowChrome(NewWindow(fake))

	chrome.StartDrag()
	chrome.EndDrag()

	if fake.x != 42 || fake.y != 24 {
		t.Fatalf("window at (%d, %d) after StartDrag/EndDrag, want (42, 24)", fake.x, fake.y)
	}
}

func TestWindowChrome_CloseDefersDestruction(t *testing.T) {
	fake := newFakeNativeWindow()
	chrome := NewWindowChrome(NewWindow(fake))

	chrome.Close()

	if !fake.shouldClose {
		t.Fatal("Close did not set the should-close flag")
	}
}

func TestWindowChrome_PassThroughs(t *testing.T) {
	fake := newFakeNativeWindow()
	chrome := NewWindowChrome(NewWindow(fake))

	chrome.Hide()
	if chrome.Visible() {
		t.Error("Visible() = true after Hide")
	}
	chrome.Show()
	if !chrome.Visible() {
		t.Error("Visible() = false after Show")
	}

	chrome.Maximize()
	if !chrome.Maximized() {
		t.Error("Maximized() = false after Maximize")
	}
	chrome.Iconify()
	if !chrome.Iconified() {
		t.Error("Iconified() = false after Iconify")
	}
	chrome.Restore()
	if chrome.Maximized() || chrome.Iconified() {
		t.Error("Restore did not clear maximized/iconified")
	}

	chrome.SetPos(embedder.PositionParams{X: 15, Y: 25})
	if pos := chrome.Pos(); pos.X != 15 || pos.Y != 25 {
		t.Errorf("Pos() = (%v, %v), want (15, 25)", pos.X, pos.Y)
	}
}

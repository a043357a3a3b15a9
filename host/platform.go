package host

import "github.com/1broseidon/glhost/embedder"

var _ embedder.PlatformHandler = (*PlatformChrome)(nil)

// PlatformChrome implements embedder.PlatformHandler: window title and
// clipboard access through the shared window. The value is handed off to the
// platform-channel dispatcher's thread; it holds no state of its own, so the
// handoff is ownership transfer, not shared mutation.
type PlatformChrome struct {
	window *Window
}

// NewPlatformChrome returns a platform handler over the shared window.
func NewPlatformChrome(window *Window) *PlatformChrome {
	return &PlatformChrome{window: window}
}

// SetApplicationSwitcherDescription applies the description's label as the
// window title. No other field is consumed on desktop.
func (p *PlatformChrome) SetApplicationSwitcherDescription(desc embedder.AppSwitcherDescription) {
	p.window.SetTitle(desc.Label)
}

// SetClipboardData writes plain text to the OS clipboard.
func (p *PlatformChrome) SetClipboardData(text string) {
	p.window.SetClipboard(text)
}

// ClipboardData reads the clipboard as mime. Only text/plain is served; an
// empty clipboard yields "" rather than an error.
func (p *PlatformChrome) ClipboardData(mime string) (string, error) {
	if mime != embedder.MimeTextPlain {
		return "", embedder.ErrUnsupportedMime
	}
	return p.window.Clipboard(), nil
}

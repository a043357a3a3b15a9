package channel

import (
	"encoding/json"
	"fmt"

	"github.com/1broseidon/glhost/embedder"
)

// Platform channel methods, matching the framework's SystemChrome and
// Clipboard services.
const (
	methodSetAppSwitcherDescription = "SystemChrome.setApplicationSwitcherDescription"
	methodClipboardSetData          = "Clipboard.setData"
	methodClipboardGetData          = "Clipboard.getData"
)

// Window channel methods.
const (
	methodClose       = "close"
	methodShow        = "show"
	methodHide        = "hide"
	methodMaximize    = "maximize"
	methodIconify     = "iconify"
	methodRestore     = "restore"
	methodIsMaximized = "isMaximized"
	methodIsIconified = "isIconified"
	methodIsVisible   = "isVisible"
	methodSetPos      = "setPos"
	methodGetPos      = "getPos"
	methodStartDrag   = "startDrag"
	methodEndDrag     = "endDrag"
	methodDragWindow  = "dragWindow"
)

type appSwitcherArgs struct {
	Label        string `json:"label"`
	PrimaryColor uint32 `json:"primaryColor"`
}

type clipboardTextArgs struct {
	Text string `json:"text"`
}

type positionArgs struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// PlatformChannel returns the handler serving the flutter/platform channel
// on top of h.
func PlatformChannel(h embedder.PlatformHandler) Handler {
	return func(call MethodCall) (any, error) {
		switch call.Method {
		case methodSetAppSwitcherDescription:
			var args appSwitcherArgs
			if err := json.Unmarshal(call.Args, &args); err != nil {
				return nil, fmt.Errorf("bad args for %s: %w", call.Method, err)
			}
			h.SetApplicationSwitcherDescription(embedder.AppSwitcherDescription{
				Label:        args.Label,
				PrimaryColor: args.PrimaryColor,
			})
			return nil, nil

		case methodClipboardSetData:
			var args clipboardTextArgs
			if err := json.Unmarshal(call.Args, &args); err != nil {
				return nil, fmt.Errorf("bad args for %s: %w", call.Method, err)
			}
			h.SetClipboardData(args.Text)
			return nil, nil

		case methodClipboardGetData:
			// The framework sends the MIME type as a bare string argument.
			var mime string
			if err := json.Unmarshal(call.Args, &mime); err != nil {
				return nil, fmt.Errorf("bad args for %s: %w", call.Method, err)
			}
			text, err := h.ClipboardData(mime)
			if err != nil {
				return nil, err
			}
			return clipboardTextArgs{Text: text}, nil

		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, call.Method)
		}
	}
}

// WindowChannel returns the handler serving the glhost/window channel on
// top of h.
func WindowChannel(h embedder.WindowHandler) Handler {
	return func(call MethodCall) (any, error) {
		switch call.Method {
		case methodClose:
			h.Close()
			return nil, nil
		case methodShow:
			h.Show()
			return nil, nil
		case methodHide:
			h.Hide()
			return nil, nil
		case methodMaximize:
			h.Maximize()
			return nil, nil
		case methodIconify:
			h.Iconify()
			return nil, nil
		case methodRestore:
			h.Restore()
			return nil, nil

		case methodIsMaximized:
			return h.Maximized(), nil
		case methodIsIconified:
			return h.Iconified(), nil
		case methodIsVisible:
			return h.Visible(), nil

		case methodSetPos:
			var args positionArgs
			if err := json.Unmarshal(call.Args, &args); err != nil {
				return nil, fmt.Errorf("bad args for %s: %w", call.Method, err)
			}
			h.SetPos(embedder.PositionParams{X: float32(args.X), Y: float32(args.Y)})
			return nil, nil

		case methodGetPos:
			pos := h.Pos()
			return positionArgs{X: float64(pos.X), Y: float64(pos.Y)}, nil

		case methodStartDrag:
			h.StartDrag()
			return nil, nil
		case methodEndDrag:
			h.EndDrag()
			return nil, nil
		case methodDragWindow:
			var args positionArgs
			if err := json.Unmarshal(call.Args, &args); err != nil {
				return nil, fmt.Errorf("bad args for %s: %w", call.Method, err)
			}
			return h.DragWindow(args.X, args.Y), nil

		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, call.Method)
		}
	}
}

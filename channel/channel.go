// Package channel decodes platform-channel messages and routes them to the
// host's embedder handlers. Messages are JSON method calls, one handler per
// channel name; the dispatcher runs on the host's UI thread.
package channel

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
)

// Channel names served by this host.
const (
	PlatformChannelName = "flutter/platform"
	WindowChannelName   = "glhost/window"
)

// ErrUnknownChannel is returned by Dispatch for channels with no registered
// handler.
var ErrUnknownChannel = errors.New("channel: no handler registered")

// ErrUnknownMethod is returned by handlers for methods they do not serve.
var ErrUnknownMethod = errors.New("channel: unknown method")

// MethodCall is a decoded platform-channel invocation.
type MethodCall struct {
	Method string          `json:"method"`
	Args   json.RawMessage `json:"args,omitempty"`
}

// Response is the reply envelope written back over the channel.
type Response struct {
	Status string          `json:"status"` // "OK" or "ERROR"
	Result json.RawMessage `json:"result,omitempty"`
	Error  string          `json:"error,omitempty"`
}

// Handler serves the method calls of one channel. The returned value is
// marshaled into the response; a nil value means no result payload.
type Handler func(call MethodCall) (any, error)

// Dispatcher routes messages to per-channel handlers.
type Dispatcher struct {
	mu       sync.RWMutex
	handlers map[string]Handler
}

// NewDispatcher returns a dispatcher with no channels registered.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: make(map[string]Handler)}
}

// Register installs or replaces the handler for a channel.
func (d *Dispatcher) Register(channel string, h Handler) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.handlers[channel] = h
}

// Dispatch decodes payload as a method call and invokes the channel's
// handler, returning the marshaled response. Handler errors become ERROR
// responses rather than Go errors; only an unregistered channel or an
// undecodable payload is reported as an error to the caller.
func (d *Dispatcher) Dispatch(channel string, payload []byte) ([]byte, error) {
	d.mu.RLock()
	h, ok := d.handlers[channel]
	d.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownChannel, channel)
	}

	var call MethodCall
	if err := json.Unmarshal(payload, &call); err != nil {
		return nil, fmt.Errorf("failed to decode method call on %q: %w", channel, err)
	}

	result, err := h(call)
	if err != nil {
		return json.Marshal(&Response{Status: "ERROR", Error: err.Error()})
	}

	resp := &Response{Status: "OK"}
	if result != nil {
		raw, err := json.Marshal(result)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal result for %q: %w", call.Method, err)
		}
		resp.Result = raw
	}
	return json.Marshal(resp)
}

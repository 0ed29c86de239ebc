// Package backend defines the TerminalBackend contract the render core
// consumes and provides concrete adapters: a local raw-mode terminal, and
// remote transports (length-prefixed TCP, WebSocket, and an optional ngrok
// tunnel) for the DRM rendering protocol.
package backend

import (
	"fmt"
	"os"
)

var reportSink func(string)

// SetReportSink installs the function backend adapters use to surface
// connection-level diagnostics (accepts, session ids, transport errors),
// mirroring render.SetReportSink; the runtime package installs its logger
// here too. Falls back to stderr via fmt when unset.
func SetReportSink(fn func(string)) { reportSink = fn }

func report(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if reportSink != nil {
		reportSink(msg)
		return
	}
	fmt.Fprintln(os.Stderr, msg)
}

// Features is the bitset of capabilities TerminalBackend.Init probes for.
type Features uint8

const (
	ANSIColor Features = 1 << iota
	TrueColor
	Mouse
	AltScreen
	UTF8
)

// Has reports whether all bits in want are set.
func (f Features) Has(want Features) bool { return f&want == want }

// TerminalBackend is the external collaborator the render core depends on.
// The core never talks to an OS terminal directly — it only calls through
// this interface, so a remote or simulated backend is a drop-in
// replacement.
type TerminalBackend interface {
	// Init enables raw mode if applicable and returns the probed feature
	// set.
	Init() (Features, error)
	// WaitForInput blocks up to timeoutMs for raw input bytes. ok is false
	// on timeout.
	WaitForInput(timeoutMs int) (data []byte, ok bool)
	// Write emits bytes to the terminal/transport.
	Write(b []byte) (int, error)
	// Dimensions returns the current terminal size in cells.
	Dimensions() (w, h int)
	// OnResize registers a callback invoked when the terminal size changes
	// (SIGWINCH or transport-level equivalent).
	OnResize(handler func(w, h int))
	// Deinit restores whatever prior state Init changed.
	Deinit() error
}

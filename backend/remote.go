package backend

import (
	"encoding/binary"
	"fmt"
	"net"
	"os"
	"strconv"
	"sync"

	"github.com/google/uuid"

	"ggui/color"
)

// Remote implements TerminalBackend over a length-prefixed TCP stream:
// every Write call is framed as a uint32 length prefix followed by the raw
// bytes, in host byte order. A remote viewer dials in, reads the handshake
// file for the port, and decodes the stream.
type Remote struct {
	listener net.Listener
	mu       sync.Mutex
	conn     net.Conn

	w, h         int
	onResize     func(w, h int)
	handshakeDir string

	// SessionID tags this listener's lifetime in logs so a viewer
	// reconnecting after a restart is distinguishable from the prior one.
	SessionID string
}

// NewRemote starts listening on an ephemeral local port and writes the
// chosen port to <handshakeDir>/ggui-handshake, where the viewer discovers
// it. Each listener is tagged with a fresh session id for diagnostics.
func NewRemote(handshakeDir string, w, h int) (*Remote, error) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return nil, fmt.Errorf("remote backend: listen: %w", err)
	}
	r := &Remote{listener: ln, w: w, h: h, handshakeDir: handshakeDir, SessionID: uuid.New().String()}
	port := ln.Addr().(*net.TCPAddr).Port
	if err := os.WriteFile(handshakeDir+"/ggui-handshake", []byte(strconv.Itoa(port)), 0o600); err != nil {
		ln.Close()
		return nil, fmt.Errorf("remote backend: write handshake file: %w", err)
	}
	return r, nil
}

// Init accepts the first viewer connection. Real deployments would accept
// connections in a loop; the core only ever drives one active viewer at a
// time.
func (r *Remote) Init() (Features, error) {
	conn, err := r.listener.Accept()
	if err != nil {
		return 0, fmt.Errorf("remote backend: accept: %w", err)
	}
	r.mu.Lock()
	r.conn = conn
	r.mu.Unlock()
	report("remote backend: session %s accepted viewer from %s", r.SessionID, conn.RemoteAddr())
	return ANSIColor | TrueColor | UTF8, nil
}

// WaitForInput is a no-op for the TCP transport: the DRM protocol is
// output-only (frame delivery), so this backend never sources input.
func (r *Remote) WaitForInput(timeoutMs int) ([]byte, bool) { return nil, false }

// Write length-prefixes b and sends it over the TCP connection.
func (r *Remote) Write(b []byte) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.conn == nil {
		return 0, fmt.Errorf("remote backend: no connection")
	}
	var hdr [4]byte
	binary.NativeEndian.PutUint32(hdr[:], uint32(len(b)))
	if _, err := r.conn.Write(hdr[:]); err != nil {
		return 0, err
	}
	return r.conn.Write(b)
}

// Dimensions returns the dimensions the remote backend was constructed with.
func (r *Remote) Dimensions() (int, int) { return r.w, r.h }

// OnResize registers the resize callback; Resize (below) invokes it.
func (r *Remote) OnResize(handler func(w, h int)) { r.onResize = handler }

// Resize updates the backend's reported dimensions and fires the resize
// callback, for callers that learn of a remote viewport change out-of-band
// (e.g. a resize message on the DRM control channel).
func (r *Remote) Resize(w, h int) {
	r.w, r.h = w, h
	if r.onResize != nil {
		r.onResize(w, h)
	}
}

// Deinit closes the connection and listener.
func (r *Remote) Deinit() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.conn != nil {
		r.conn.Close()
	}
	return r.listener.Close()
}

// EncodeFrame serializes a full cell grid in the DRM wire format: width,
// height, then w*h {utf, fg, bg} records, all in host byte order. This is a
// richer alternative to the default escape-byte passthrough Write uses, for
// viewers that want structured cells instead of replaying ANSI.
func EncodeFrame(w, h int, cells []color.Cell) []byte {
	out := make([]byte, 0, 8+len(cells)*11)
	var u32 [4]byte
	binary.NativeEndian.PutUint32(u32[:], uint32(w))
	out = append(out, u32[:]...)
	binary.NativeEndian.PutUint32(u32[:], uint32(h))
	out = append(out, u32[:]...)
	for _, c := range cells {
		var utf [4]byte
		copy(utf[:], c.Glyph())
		out = append(out, utf[:]...)
		out = append(out, c.Fg.R, c.Fg.G, c.Fg.B)
		out = append(out, c.Bg.R, c.Bg.G, c.Bg.B)
	}
	return out
}

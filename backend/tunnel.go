package backend

import (
	"context"
	"fmt"
	"net"
	"net/http"

	"golang.ngrok.com/ngrok"
	"golang.ngrok.com/ngrok/config"
)

// Tunnel wraps a WebSocket backend's HTTP server in a public ngrok
// ingress. It is disabled by default (runtime.Options.PublicTunnel gates
// construction); this is optional network egress and never required to run
// a local session.
type Tunnel struct {
	ln  ngrok.Tunnel
	url string
}

// StartTunnel opens an ngrok listener using authtoken (typically sourced
// from NGROK_AUTHTOKEN) and serves handler over it until ctx is canceled or
// Close is called.
func StartTunnel(ctx context.Context, authtoken string, handler http.Handler) (*Tunnel, error) {
	ln, err := ngrok.Listen(ctx,
		config.HTTPEndpoint(),
		ngrok.WithAuthtoken(authtoken),
	)
	if err != nil {
		return nil, fmt.Errorf("ngrok tunnel: %w", err)
	}

	t := &Tunnel{ln: ln, url: ln.URL()}
	go func() {
		_ = http.Serve(ln, handler)
	}()
	return t, nil
}

// URL returns the public ingress address assigned by ngrok.
func (t *Tunnel) URL() string { return t.url }

// Addr returns the tunnel's local net.Addr, satisfying callers that only
// need the listener shape.
func (t *Tunnel) Addr() net.Addr { return t.ln.Addr() }

// Close tears down the tunnel.
func (t *Tunnel) Close() error { return t.ln.Close() }

package runtime

import (
	"time"

	"ggui/backend"
)

// Options configures a Driver. The zero value is usable: a Local backend
// is constructed, logs go to "ggui.log" in the working directory, and the
// idle tick runs at 16ms (~60Hz).
type Options struct {
	// Backend overrides the terminal backend. Nil selects backend.NewLocal().
	Backend backend.TerminalBackend

	// LogPath is the file the logger goroutine writes report() messages to.
	LogPath string

	// Tick bounds how long the renderer sleeps between idle-loop checks of
	// the scheduler.
	Tick time.Duration

	// PublicTunnel gates construction of an ngrok tunnel around a WebSocket
	// backend; off by default since it is genuine outbound network
	// exposure.
	PublicTunnel bool

	// NgrokAuthtoken is passed to backend.StartTunnel when PublicTunnel is
	// set.
	NgrokAuthtoken string
}

func (o Options) withDefaults() Options {
	if o.Backend == nil {
		o.Backend = backend.NewLocal()
	}
	if o.LogPath == "" {
		o.LogPath = "ggui.log"
	}
	if o.Tick <= 0 {
		o.Tick = 16 * time.Millisecond
	}
	return o
}

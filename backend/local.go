package backend

import (
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"golang.org/x/term"
)

// Local is the default TerminalBackend: raw-mode stdin/stdout, SIGWINCH
// resize notification, and mouse-any-event reporting.
type Local struct {
	oldState *term.State

	resizeCh chan os.Signal
	onResize func(w, h int)

	readCh    chan []byte
	done      chan struct{}
	closeOnce sync.Once
}

// NewLocal constructs a Local backend. Init must be called before use.
func NewLocal() *Local {
	return &Local{
		readCh: make(chan []byte, 64),
		done:   make(chan struct{}),
	}
}

// Init enables raw mode (if stdin is a TTY) and probes terminal features
// from the TERM environment variable, degrading to plain output rather than
// failing when the probe is denied.
func (l *Local) Init() (Features, error) {
	var features Features
	if term.IsTerminal(int(os.Stdin.Fd())) {
		state, err := term.MakeRaw(int(os.Stdin.Fd()))
		if err == nil {
			l.oldState = state
			features |= ANSIColor
		}
	}

	termEnv := os.Getenv("TERM")
	if strings.Contains(termEnv, "256color") || strings.Contains(termEnv, "truecolor") {
		features |= TrueColor
	}
	if strings.Contains(termEnv, "xterm") || strings.Contains(termEnv, "screen") || strings.Contains(termEnv, "tmux") {
		features |= Mouse | AltScreen | UTF8
	}

	l.resizeCh = make(chan os.Signal, 1)
	signal.Notify(l.resizeCh, syscall.SIGWINCH)
	go l.handleResize()
	go l.readLoop()

	os.Stdout.WriteString("\x1b[?1049h\x1b[?25l\x1b[?1003h")
	return features, nil
}

func (l *Local) readLoop() {
	buf := make([]byte, 4096)
	for {
		select {
		case <-l.done:
			return
		default:
		}
		n, err := os.Stdin.Read(buf)
		if err != nil {
			// Redirected/closed stdin (EOF): idle with a bounded poll
			// interval instead of spinning.
			select {
			case <-l.done:
				return
			case <-time.After(50 * time.Millisecond):
				continue
			}
		}
		if n > 0 {
			chunk := make([]byte, n)
			copy(chunk, buf[:n])
			select {
			case l.readCh <- chunk:
			case <-l.done:
				return
			}
		}
	}
}

func (l *Local) handleResize() {
	for {
		select {
		case <-l.done:
			return
		case <-l.resizeCh:
			w, h := l.Dimensions()
			if l.onResize != nil {
				l.onResize(w, h)
			}
		}
	}
}

// WaitForInput blocks up to timeoutMs for a chunk of raw bytes from the
// input reader goroutine.
func (l *Local) WaitForInput(timeoutMs int) ([]byte, bool) {
	select {
	case data := <-l.readCh:
		return data, true
	case <-time.After(time.Duration(timeoutMs) * time.Millisecond):
		return nil, false
	case <-l.done:
		return nil, false
	}
}

// Write emits bytes to stdout.
func (l *Local) Write(b []byte) (int, error) { return os.Stdout.Write(b) }

// Dimensions returns the current terminal size, falling back to 80x24.
func (l *Local) Dimensions() (int, int) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return 80, 24
	}
	return w, h
}

// OnResize registers the resize callback.
func (l *Local) OnResize(handler func(w, h int)) { l.onResize = handler }

// Deinit restores cooked mode, disables mouse reporting, shows the cursor,
// and leaves the alt screen.
func (l *Local) Deinit() error {
	l.closeOnce.Do(func() {
		close(l.done)
		signal.Stop(l.resizeCh)
	})
	os.Stdout.WriteString("\x1b[?1003l\x1b[?25h\x1b[?1049l")
	if l.oldState != nil {
		return term.Restore(int(os.Stdin.Fd()), l.oldState)
	}
	return nil
}

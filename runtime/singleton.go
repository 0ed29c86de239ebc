package runtime

import (
	"sync/atomic"

	"ggui/style"
)

// current holds the process-wide Driver for the free-function API below.
// Only one GGUI session is ever active in a process (the terminal is owned
// exclusively by one renderer goroutine), so a package-level handle is the
// natural shape rather than threading a *Driver through every handler
// closure.
var current atomic.Pointer[Driver]

// Ggui installs the terminal backend, builds the root element from chain,
// and runs the main loop until Exit is called. It blocks the calling
// goroutine.
func Ggui(chain *style.Chain, opts Options) error {
	d := NewDriver(opts)
	current.Store(d)
	return d.Run(chain)
}

// PauseGgui acquires the render-gate; see Driver.Pause.
func PauseGgui(job func()) {
	if d := current.Load(); d != nil {
		d.Pause(job)
	}
}

// ResumeGgui releases a render-gate held by PauseGgui(nil); see Driver.Resume.
func ResumeGgui() {
	if d := current.Load(); d != nil {
		d.Resume()
	}
}

// Exit signals termination of the running session; see Driver.Exit.
func Exit() {
	if d := current.Load(); d != nil {
		d.Exit()
	}
}

// Report queues a log message from the running session; see Driver.Report.
func Report(msg string) {
	if d := current.Load(); d != nil {
		d.Report(msg)
	}
}

// WaitForTermination blocks until the running session has shut down.
func WaitForTermination() {
	if d := current.Load(); d != nil {
		d.WaitForTermination()
	}
}

// Resize updates the running session's terminal dimensions; see Driver.Resize.
func Resize(w, h int) {
	if d := current.Load(); d != nil {
		d.Resize(w, h)
	}
}

// Current returns the active Driver, or nil if no session has started.
func Current() *Driver { return current.Load() }

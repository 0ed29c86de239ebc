// Package runtime implements the driver: it installs the terminal backend,
// owns the element tree and render-gate, and runs the single-threaded
// cooperative main loop alongside the input-reader and logger auxiliary
// goroutines.
package runtime

import (
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"ggui/backend"
	"ggui/element"
	"ggui/event"
	"ggui/frame"
	"ggui/input"
	"ggui/render"
	"ggui/stain"
	"ggui/style"
)

// Driver owns the element tree, the frame compositor, the event dispatcher
// and scheduler, and the render-gate mutex.
type Driver struct {
	backend backend.TerminalBackend
	opts    Options

	root       *element.Element
	compositor *frame.Compositor
	dispatcher *event.Dispatcher
	scheduler  *event.Scheduler

	gate   sync.Mutex
	paused bool

	inputCh    chan input.Input
	terminate  chan struct{}
	terminated chan struct{}
	termOnce   sync.Once

	logCh   chan string
	logFile *os.File
	logger  *log.Logger

	wgReader sync.WaitGroup
	wgLogger sync.WaitGroup
}

// NewDriver constructs a Driver from opts without starting it. Run does the
// rest: backend.Init, tree construction, goroutine startup.
func NewDriver(opts Options) *Driver {
	opts = opts.withDefaults()
	return &Driver{
		backend:    opts.Backend,
		opts:       opts,
		inputCh:    make(chan input.Input, 256),
		terminate:  make(chan struct{}),
		terminated: make(chan struct{}),
		logCh:      make(chan string, 256),
	}
}

// Run installs the terminal backend, constructs the root element from
// chain, and runs the main loop until Exit is called. It blocks the calling
// goroutine — only this goroutine ever mutates elements; the input reader
// and logger run as the two auxiliary goroutines.
func (d *Driver) Run(chain *style.Chain) error {
	logFile, err := os.OpenFile(d.opts.LogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("runtime: open log file: %w", err)
	}
	d.logFile = logFile
	d.logger = log.New(logFile, "", log.LstdFlags)

	if _, err := d.backend.Init(); err != nil {
		logFile.Close()
		return fmt.Errorf("runtime: terminal backend init: %w", err)
	}

	w, h := d.backend.Dimensions()
	d.root = element.New(chain, nil)
	d.root.Finalize()
	d.dispatcher = event.NewDispatcher(d.root)
	d.scheduler = event.NewScheduler()
	d.compositor = frame.New(d.root, w, h)

	element.SetDiagnosticSink(d.Report)
	render.SetReportSink(d.Report)
	backend.SetReportSink(d.Report)

	d.backend.OnResize(func(nw, nh int) {
		select {
		case d.inputCh <- input.Input{Kind: input.Resize, X: nw, Y: nh}:
		case <-d.terminate:
		}
	})

	d.wgReader.Add(1)
	go d.inputReaderLoop()
	d.wgLogger.Add(1)
	go d.loggerLoop()

	ticker := time.NewTicker(d.opts.Tick)
	defer ticker.Stop()

	for {
		select {
		case <-d.terminate:
			d.shutdown()
			return nil
		case in := <-d.inputCh:
			d.handleInput(in)
		case now := <-ticker.C:
			d.scheduler.Tick(now)
		}
		d.maybeCompose()
	}
}

func (d *Driver) handleInput(in input.Input) {
	if in.Kind == input.Resize {
		d.Resize(in.X, in.Y)
		return
	}
	d.dispatcher.Dispatch(in)
}

// maybeCompose composes and emits a frame if any stain is dirty and the
// render-gate is not held.
func (d *Driver) maybeCompose() {
	if d.paused {
		return
	}
	d.gate.Lock()
	defer d.gate.Unlock()
	if d.root.Stain == stain.Clean {
		return
	}
	out := d.compositor.Compose()
	if len(out) > 0 {
		if _, err := d.backend.Write(out); err != nil {
			// An I/O error on the terminal write is not recoverable from
			// inside the render loop; report it and shut down gracefully.
			d.Report(fmt.Sprintf("write to terminal backend failed: %v", err))
			d.Exit()
		}
	}
}

func (d *Driver) inputReaderLoop() {
	defer d.wgReader.Done()
	for {
		select {
		case <-d.terminate:
			return
		default:
		}
		raw, ok := d.backend.WaitForInput(50)
		if !ok {
			continue
		}
		for _, in := range backend.Decode(raw) {
			select {
			case d.inputCh <- in:
			case <-d.terminate:
				return
			}
		}
	}
}

func (d *Driver) loggerLoop() {
	defer d.wgLogger.Done()
	for msg := range d.logCh {
		d.logger.Println(msg)
	}
}

// Pause acquires the render-gate; if job is non-nil it runs synchronously
// and the gate is released again before Pause returns (the one-shot
// batch-mutation form). If job is nil the gate stays held until a matching
// Resume call.
func (d *Driver) Pause(job func()) {
	d.gate.Lock()
	d.paused = true
	if job != nil {
		job()
		d.paused = false
		d.gate.Unlock()
	}
}

// Resume releases a gate held by a nil-job Pause call. A repaint is picked
// up by the main loop's next maybeCompose automatically if any stain
// accumulated while paused.
func (d *Driver) Resume() {
	if !d.paused {
		return
	}
	d.paused = false
	d.gate.Unlock()
}

// Resize updates the root element's dimensions and the compositor's,
// invalidating the previous frame so the next compose is a full repaint.
// SetWidth/SetHeight dirty STRETCH on the root.
func (d *Driver) Resize(w, h int) {
	d.root.SetWidth(style.Px(float64(w)))
	d.root.SetHeight(style.Px(float64(h)))
	d.compositor.Resize(w, h)
}

// Exit signals termination. The main loop observes it on its next select
// iteration and shuts down.
func (d *Driver) Exit() {
	d.termOnce.Do(func() { close(d.terminate) })
}

// Report queues a log message. The send is non-blocking so handlers never
// stall on logging; a message is dropped rather than stalling the caller if
// the queue is saturated.
func (d *Driver) Report(msg string) {
	select {
	case d.logCh <- msg:
	default:
	}
}

// WaitForTermination blocks until the driver has fully shut down. Useful
// for a caller that started Run in its own goroutine.
func (d *Driver) WaitForTermination() { <-d.terminated }

// Root exposes the root element so widget factories can attach children.
func (d *Driver) Root() *element.Element { return d.root }

// Dispatcher exposes the event dispatcher for tests and advanced callers.
func (d *Driver) Dispatcher() *event.Dispatcher { return d.dispatcher }

// Scheduler exposes the Memory job scheduler.
func (d *Driver) Scheduler() *event.Scheduler { return d.scheduler }

func (d *Driver) shutdown() {
	d.wgReader.Wait()
	if err := d.backend.Deinit(); err != nil {
		d.logger.Println("terminal deinit:", err)
	}
	close(d.logCh)
	d.wgLogger.Wait()
	d.logFile.Close()
	close(d.terminated)
}

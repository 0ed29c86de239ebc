package runtime

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ggui/backend"
	"ggui/color"
	"ggui/element"
	"ggui/frame"
	"ggui/style"
)

// fakeBackend is a minimal in-memory TerminalBackend for driver tests: no
// real terminal, just a Write call counter.
type fakeBackend struct {
	writes int
	w, h   int
}

func (f *fakeBackend) Init() (backend.Features, error) { return backend.ANSIColor | backend.TrueColor, nil }
func (f *fakeBackend) WaitForInput(int) ([]byte, bool) { return nil, false }
func (f *fakeBackend) Write(b []byte) (int, error) { f.writes++; return len(b), nil }
func (f *fakeBackend) Dimensions() (int, int) { return f.w, f.h }
func (f *fakeBackend) OnResize(func(w, h int)) {}
func (f *fakeBackend) Deinit() error { return nil }

func newTestDriver(t *testing.T) (*Driver, *fakeBackend) {
	t.Helper()
	be := &fakeBackend{w: 10, h: 5}
	root := element.New(style.New(
		style.Width(style.Px(10)),
		style.Height(style.Px(5)),
		style.BackgroundColor(color.Opaque(color.RGB{})),
	), nil)
	root.Finalize()
	d := &Driver{
		backend:    be,
		root:       root,
		compositor: frame.New(root, be.w, be.h),
	}
	return d, be
}

func TestPauseResumeEmitsAtMostOneFrame(t *testing.T) {
	d, be := newTestDriver(t)

	// Baseline frame so the root starts clean.
	d.maybeCompose()
	require.Equal(t, 1, be.writes)

	d.Pause(nil)
	for i := 0; i < 5; i++ {
		d.root.SetColors(color.Opaque(color.RGB{R: uint8(i)}), color.Opaque(color.RGB{}))
		d.maybeCompose()
	}
	assert.Equal(t, 1, be.writes, "no frame should be emitted while paused")

	d.Resume()
	d.maybeCompose()
	assert.Equal(t, 2, be.writes, "exactly one frame should be emitted after resume")

	d.maybeCompose()
	assert.Equal(t, 2, be.writes, "a clean tree should not emit again")
}

func TestPauseWithJobRunsSynchronouslyAndReleasesGate(t *testing.T) {
	d, be := newTestDriver(t)
	d.maybeCompose()
	require.Equal(t, 1, be.writes)

	ran := false
	d.Pause(func() {
		ran = true
		d.root.SetColors(color.Opaque(color.RGB{R: 9, G: 9, B: 9}), color.Opaque(color.RGB{}))
	})
	assert.True(t, ran)
	assert.False(t, d.paused)

	d.maybeCompose()
	assert.Equal(t, 2, be.writes, "the job's mutation should be visible in the next compose")
}

func TestResizeInvalidatesPreviousFrame(t *testing.T) {
	d, be := newTestDriver(t)
	d.maybeCompose()
	require.Equal(t, 1, be.writes)

	d.maybeCompose()
	require.Equal(t, 1, be.writes, "unchanged tree emits nothing")

	d.Resize(12, 6)
	d.maybeCompose()
	assert.Equal(t, 2, be.writes, "resize forces a repaint even with no other mutation")
}

func TestReportAndExitAreNonBlockingWithoutASession(t *testing.T) {
	// Package-level free functions must not panic when no session is
	// running (current unset).
	Report("no session yet")
	Exit()
	PauseGgui(nil)
	ResumeGgui()
	Resize(1, 1)
}

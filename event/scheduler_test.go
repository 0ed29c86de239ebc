package event

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchedulerTickFiresDueJobsAndDropsThem(t *testing.T) {
	s := NewScheduler()
	var fired int
	start := time.Now()
	s.Post(Memory{ID: "a", Delay: 10 * time.Millisecond, Job: func() { fired++ }})

	s.Tick(start)
	assert.Equal(t, 0, fired, "not due yet")
	require.Equal(t, 1, s.Len())

	s.Tick(start.Add(20 * time.Millisecond))
	assert.Equal(t, 1, fired)
	assert.Equal(t, 0, s.Len(), "non-retrigger jobs are removed once fired")
}

func TestSchedulerRetriggerRequeues(t *testing.T) {
	s := NewScheduler()
	var fired int
	start := time.Now()
	s.Post(Memory{ID: "a", Delay: 10 * time.Millisecond, Job: func() { fired++ }, Flags: Retrigger})

	s.Tick(start.Add(20 * time.Millisecond))
	assert.Equal(t, 1, fired)
	require.Equal(t, 1, s.Len(), "retrigger keeps the job queued")

	s.Tick(start.Add(40 * time.Millisecond))
	assert.Equal(t, 2, fired)
}

func TestSchedulerProlongMemoryDebouncesSameID(t *testing.T) {
	s := NewScheduler()
	var fired int
	s.Post(Memory{ID: "a", Delay: 10 * time.Millisecond, Job: func() { fired++ }, Flags: ProlongMemory})
	require.Equal(t, 1, s.Len())

	// Backdate the queued entry so it is already past due, then re-post the
	// same ID: the debounce must replace the entry's start time with now
	// instead of queuing a second entry — two posts within one tick, one
	// execution, timed from the later post.
	s.queue[0].start = time.Now().Add(-time.Minute)
	s.Post(Memory{ID: "a", Delay: 10 * time.Millisecond, Job: func() { fired++ }, Flags: ProlongMemory})
	require.Equal(t, 1, s.Len(), "debounced: still one queued entry")

	s.Tick(time.Now())
	assert.Equal(t, 0, fired, "the re-post reset start to now, so the backdated entry is no longer due")

	s.Tick(time.Now().Add(30 * time.Millisecond))
	assert.Equal(t, 1, fired)
}

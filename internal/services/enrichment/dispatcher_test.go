package enrichment

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingEnricher struct {
	mu    sync.Mutex
	seen  []string
	fail  map[string]error
	panic map[string]bool
	done  chan string
}

func newRecordingEnricher() *recordingEnricher {
	return &recordingEnricher{
		fail:  map[string]error{},
		panic: map[string]bool{},
		done:  make(chan string, 16),
	}
}

func (e *recordingEnricher) Enrich(ctx context.Context, task Task) error {
	e.mu.Lock()
	e.seen = append(e.seen, task.ShardID)
	e.mu.Unlock()
	defer func() { e.done <- task.ShardID }()

	if e.panic[task.ShardID] {
		panic("boom")
	}
	return e.fail[task.ShardID]
}

func (e *recordingEnricher) waitFor(t *testing.T, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		select {
		case <-e.done:
		case <-time.After(2 * time.Second):
			t.Fatalf("timed out waiting for task %d of %d", i+1, n)
		}
	}
}

func TestDispatcherProcessesTasks(t *testing.T) {
	enricher := newRecordingEnricher()
	dispatcher := NewDispatcher(enricher, 2, 8)

	require.NoError(t, dispatcher.Start(context.Background()))
	defer dispatcher.Stop()

	assert.True(t, dispatcher.Dispatch(Task{ShardID: "a"}))
	assert.True(t, dispatcher.Dispatch(Task{ShardID: "b"}))
	assert.True(t, dispatcher.Dispatch(Task{ShardID: "c"}))

	enricher.waitFor(t, 3)

	enricher.mu.Lock()
	defer enricher.mu.Unlock()
	assert.ElementsMatch(t, []string{"a", "b", "c"}, enricher.seen)
}

func TestDispatcherDropsWhenQueueFull(t *testing.T) {
	enricher := newRecordingEnricher()
	dispatcher := NewDispatcher(enricher, 1, 2)

	// Not started: nothing drains the queue.
	assert.True(t, dispatcher.Dispatch(Task{ShardID: "a"}))
	assert.True(t, dispatcher.Dispatch(Task{ShardID: "b"}))
	assert.False(t, dispatcher.Dispatch(Task{ShardID: "c"}))

	require.NoError(t, dispatcher.Start(context.Background()))
	defer dispatcher.Stop()

	enricher.waitFor(t, 2)

	enricher.mu.Lock()
	defer enricher.mu.Unlock()
	assert.ElementsMatch(t, []string{"a", "b"}, enricher.seen)
}

func TestDispatcherSurvivesPanicsAndFailures(t *testing.T) {
	enricher := newRecordingEnricher()
	enricher.panic["bad"] = true
	enricher.fail["flaky"] = errors.New("provider down")

	dispatcher := NewDispatcher(enricher, 1, 8)
	require.NoError(t, dispatcher.Start(context.Background()))
	defer dispatcher.Stop()

	assert.True(t, dispatcher.Dispatch(Task{ShardID: "bad"}))
	assert.True(t, dispatcher.Dispatch(Task{ShardID: "flaky"}))
	assert.True(t, dispatcher.Dispatch(Task{ShardID: "good"}))

	enricher.waitFor(t, 3)

	enricher.mu.Lock()
	defer enricher.mu.Unlock()
	assert.Equal(t, []string{"bad", "flaky", "good"}, enricher.seen)
}

func TestDispatcherStartTwice(t *testing.T) {
	dispatcher := NewDispatcher(newRecordingEnricher(), 1, 1)

	require.NoError(t, dispatcher.Start(context.Background()))
	defer dispatcher.Stop()

	require.Error(t, dispatcher.Start(context.Background()))
}

func TestDispatcherDefaults(t *testing.T) {
	dispatcher := NewDispatcher(newRecordingEnricher(), 0, 0)
	assert.Equal(t, DefaultWorkerCount, dispatcher.workerCount)
	assert.Equal(t, DefaultQueueSize, cap(dispatcher.queue))
}

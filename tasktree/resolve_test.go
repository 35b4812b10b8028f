package tasktree

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskdash-core/config"
	"taskdash-core/tasks"
)

// fakeFetcher serves canned children per task id and fails ids in failIDs
// with a network-style error.
type fakeFetcher struct {
	mu       sync.Mutex
	children map[int][]tasks.Task
	failIDs  map[int]bool
	calls    []int
}

func (f *fakeFetcher) Children(ctx context.Context, taskID int) ([]tasks.Task, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f.mu.Lock()
	f.calls = append(f.calls, taskID)
	f.mu.Unlock()
	if f.failIDs[taskID] {
		return nil, errors.New("connection reset")
	}
	return f.children[taskID], nil
}

func testConfig() *config.Config {
	return &config.Config{FetchConcurrency: 4, FetchRPS: 1000, CalendarDisplayCap: 3}
}

func TestLeafSetResolution(t *testing.T) {
	ts := []tasks.Task{
		task(1, nil, tasks.StatusInProgress),
		task(2, intPtr(1), tasks.StatusInProgress),
		task(3, intPtr(1), tasks.StatusInProgress),
	}
	f := &fakeFetcher{
		children: map[int][]tasks.Task{1: {ts[1], ts[2]}},
	}
	r := NewResolver(f, testConfig(), nil)

	res, err := r.LeafSet(context.Background(), ts)
	require.NoError(t, err)
	assert.Equal(t, map[int]bool{2: true, 3: true}, res.Leaves)
	assert.Empty(t, res.FetchFailures)
	assert.Len(t, f.calls, 3)
}

func TestLeafSetFailOpen(t *testing.T) {
	// a failed child lookup must include the task, never hide it
	ts := []tasks.Task{
		task(7, nil, tasks.StatusInProgress),
		task(8, nil, tasks.StatusInProgress),
	}
	f := &fakeFetcher{
		children: map[int][]tasks.Task{8: {task(9, intPtr(8), tasks.StatusInProgress)}},
		failIDs:  map[int]bool{7: true},
	}
	r := NewResolver(f, testConfig(), nil)

	res, err := r.LeafSet(context.Background(), ts)
	require.NoError(t, err)
	assert.True(t, res.Leaves[7], "failed lookup must classify task 7 as leaf")
	assert.False(t, res.Leaves[8])
	assert.Equal(t, []int{7}, res.FetchFailures)
}

func TestLeafSetCancellation(t *testing.T) {
	ts := []tasks.Task{
		task(1, nil, tasks.StatusInProgress),
		task(2, nil, tasks.StatusInProgress),
	}
	f := &fakeFetcher{}
	r := NewResolver(f, testConfig(), nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := r.LeafSet(ctx, ts)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLeafSetEmptySnapshot(t *testing.T) {
	r := NewResolver(&fakeFetcher{}, testConfig(), nil)
	res, err := r.LeafSet(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, res.Leaves)
}

func TestNewResolverDefaults(t *testing.T) {
	r := NewResolver(&fakeFetcher{}, nil, nil)
	assert.Equal(t, config.DefaultFetchConcurrency, r.limit)
	assert.NotNil(t, r.log)
}

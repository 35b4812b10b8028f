package tasktree

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taskdash-core/tasks"
)

func TestCompleteBlockedByIncompleteChildren(t *testing.T) {
	ts := []tasks.Task{
		task(1, nil, tasks.StatusInProgress),
		task(2, intPtr(1), tasks.StatusInProgress),
		task(3, intPtr(1), tasks.StatusInProgress),
	}
	idx := Build(ts)

	err := CheckStatusChange(idx, 1, tasks.StatusCompleted)
	require.Error(t, err)

	var incomplete *ChildrenIncompleteError
	require.True(t, errors.As(err, &incomplete))
	assert.Equal(t, 1, incomplete.TaskID)
}

func TestCompleteAllowedOnceChildrenDone(t *testing.T) {
	ts := []tasks.Task{
		task(1, nil, tasks.StatusInProgress),
		task(2, intPtr(1), tasks.StatusCompleted),
		task(3, intPtr(1), tasks.StatusCompleted),
	}
	assert.NoError(t, CheckStatusChange(Build(ts), 1, tasks.StatusCompleted))
}

func TestCompleteAllowedWithoutChildren(t *testing.T) {
	ts := []tasks.Task{task(1, nil, tasks.StatusNotStarted)}
	assert.NoError(t, CheckStatusChange(Build(ts), 1, tasks.StatusCompleted))
}

func TestBackwardTransitionsAlwaysAllowed(t *testing.T) {
	ts := []tasks.Task{
		task(1, nil, tasks.StatusCompleted),
		task(2, intPtr(1), tasks.StatusInProgress),
	}
	idx := Build(ts)

	assert.NoError(t, CheckStatusChange(idx, 1, tasks.StatusNotStarted))
	assert.NoError(t, CheckStatusChange(idx, 1, tasks.StatusInProgress))
}

func TestOnlyDirectChildrenInspected(t *testing.T) {
	// an incomplete grandchild does not block completion when the direct
	// child is already completed
	ts := []tasks.Task{
		task(1, nil, tasks.StatusInProgress),
		task(2, intPtr(1), tasks.StatusCompleted),
		task(3, intPtr(2), tasks.StatusInProgress),
	}
	assert.NoError(t, CheckStatusChange(Build(ts), 1, tasks.StatusCompleted))
}

package tasktree

import (
	"math"

	"taskdash-core/tasks"
)

// Progress counts completed and total leaf tasks. Parents never count:
// only terminal work items contribute to the ratio.
type Progress struct {
	Completed int `json:"completed"`
	Total     int `json:"total"`
}

// Measure counts completion over the tasks present in leafSet.
func Measure(ts []tasks.Task, leafSet map[int]bool) Progress {
	var p Progress
	for _, t := range ts {
		if !leafSet[t.ID] {
			continue
		}
		p.Total++
		if t.Status == tasks.StatusCompleted {
			p.Completed++
		}
	}
	return p
}

// Percent returns the rounded completion percentage. The second return is
// false when there are no leaves, in which case no indicator is shown.
func (p Progress) Percent() (int, bool) {
	if p.Total == 0 {
		return 0, false
	}
	return int(math.Round(float64(p.Completed) / float64(p.Total) * 100)), true
}

package views

import (
	"sort"

	"taskdash-core/tasks"
)

// TimelineGroup is one date bucket of the timeline. Key is a DateKey value;
// the NoDateKey group collects tasks lacking the relevant date.
type TimelineGroup struct {
	Key   string       `json:"key"`
	Tasks []tasks.Task `json:"tasks"`
}

// Timeline groups tasks by the date relevant to key: the deadline for
// SortDeadline, the last store touch for SortUpdated. Group order follows
// the sort key — ascending for deadlines with the no-date group last,
// descending for updated. Within a group the input's relative order is kept.
func Timeline(ts []tasks.Task, key SortKey) []TimelineGroup {
	buckets := make(map[string][]tasks.Task)
	for _, t := range ts {
		k := timelineKey(t, key)
		buckets[k] = append(buckets[k], t)
	}

	keys := make([]string, 0, len(buckets))
	for k := range buckets {
		if k != NoDateKey {
			keys = append(keys, k)
		}
	}
	if key == SortDeadline {
		sort.Strings(keys)
	} else {
		sort.Sort(sort.Reverse(sort.StringSlice(keys)))
	}
	if _, ok := buckets[NoDateKey]; ok {
		keys = append(keys, NoDateKey)
	}

	out := make([]TimelineGroup, 0, len(keys))
	for _, k := range keys {
		out = append(out, TimelineGroup{Key: k, Tasks: buckets[k]})
	}
	return out
}

func timelineKey(t tasks.Task, key SortKey) string {
	if key == SortDeadline {
		return DateKey(t.Deadline)
	}
	touched := t.LastTouched()
	return DateKey(&touched)
}

// Package tasktree turns a flat task snapshot into the derived structures
// the dashboard works from: a parent/child adjacency index, the leaf set,
// leaf-only progress, and the rules guarding status and deadline changes.
package tasktree

import "taskdash-core/tasks"

// Index is a read-only adjacency view over one task snapshot. Build it once
// per snapshot instead of re-filtering the collection per parent id.
type Index struct {
	byID     map[int]tasks.Task
	children map[int][]int
	order    []int // input order of all ids
	roots    []int // input order of ids with no parent_id
}

// Build classifies a flat collection into the adjacency index. Pure function
// of its input: the same collection always yields the same index.
func Build(ts []tasks.Task) *Index {
	idx := &Index{
		byID:     make(map[int]tasks.Task, len(ts)),
		children: make(map[int][]int),
		order:    make([]int, 0, len(ts)),
	}
	for _, t := range ts {
		idx.byID[t.ID] = t
		idx.order = append(idx.order, t.ID)
		if t.ParentID == nil {
			idx.roots = append(idx.roots, t.ID)
		} else {
			idx.children[*t.ParentID] = append(idx.children[*t.ParentID], t.ID)
		}
	}
	return idx
}

// Len is the number of tasks in the snapshot.
func (x *Index) Len() int { return len(x.byID) }

// Task returns the task for id, if it is part of the snapshot.
func (x *Index) Task(id int) (tasks.Task, bool) {
	t, ok := x.byID[id]
	return t, ok
}

// Children returns the direct child ids of id in snapshot order.
func (x *Index) Children(id int) []int {
	return x.children[id]
}

// ChildTasks resolves the direct children of id to task records.
func (x *Index) ChildTasks(id int) []tasks.Task {
	ids := x.children[id]
	if len(ids) == 0 {
		return nil
	}
	out := make([]tasks.Task, 0, len(ids))
	for _, cid := range ids {
		out = append(out, x.byID[cid])
	}
	return out
}

// IsLeaf reports whether no task in the snapshot references id as parent.
// A task absent from every children mapping is by definition a leaf.
func (x *Index) IsLeaf(id int) bool {
	return len(x.children[id]) == 0
}

// Leaves returns the leaf ids in snapshot order.
func (x *Index) Leaves() []int {
	out := make([]int, 0, len(x.order))
	for _, id := range x.order {
		if x.IsLeaf(id) {
			out = append(out, id)
		}
	}
	return out
}

// LeafSet returns the leaf ids as a set.
func (x *Index) LeafSet() map[int]bool {
	set := make(map[int]bool)
	for _, id := range x.order {
		if x.IsLeaf(id) {
			set[id] = true
		}
	}
	return set
}

// Roots returns the top-level ids (no parent_id) in snapshot order.
func (x *Index) Roots() []int {
	return x.roots
}

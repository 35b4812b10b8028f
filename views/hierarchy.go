package views

import (
	"taskdash-core/tasks"
	"taskdash-core/tasktree"
)

// HierarchyRow is one rendered row of the expandable tree view.
type HierarchyRow struct {
	Task  tasks.Task `json:"task"`
	Depth int        `json:"depth"`
}

// Hierarchy flattens the task tree into rows in depth-first order: each
// top-level task, then — only while every ancestor is in expanded — its
// children, each child's children, and so on. Depth is not bounded even
// though observed trees stop at three levels.
func Hierarchy(idx *tasktree.Index, expanded map[int]bool) []HierarchyRow {
	var rows []HierarchyRow
	var walk func(id, depth int)
	walk = func(id, depth int) {
		t, ok := idx.Task(id)
		if !ok {
			return
		}
		rows = append(rows, HierarchyRow{Task: t, Depth: depth})
		if !expanded[id] {
			return
		}
		for _, child := range idx.Children(id) {
			walk(child, depth+1)
		}
	}
	for _, root := range idx.Roots() {
		walk(root, 0)
	}
	return rows
}

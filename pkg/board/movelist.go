package board

import "sort"

// MovePriority represents the move order priority.
type MovePriority int

// MovePriorityFn assigns a priority to candidate moves.
type MovePriorityFn func(c Candidate) MovePriority

// SortByPriority sorts the candidates by descending priority, preserving
// order for equal priorities.
func SortByPriority(cands []Candidate, fn MovePriorityFn) {
	sort.SliceStable(cands, func(i, j int) bool {
		return fn(cands[i]) > fn(cands[j])
	})
}

// SortByPriorityAscending sorts the candidates by ascending priority,
// preserving order for equal priorities.
func SortByPriorityAscending(cands []Candidate, fn MovePriorityFn) {
	sort.SliceStable(cands, func(i, j int) bool {
		return fn(cands[i]) < fn(cands[j])
	})
}

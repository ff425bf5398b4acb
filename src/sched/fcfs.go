package sched

import "diskarm/src/types"

// FCFS services requests in arrival order.
func FCFS(requests []int, head, _ int, _ types.Direction) ([]int, int) {
	s := newSweep(head, len(requests))
	s.ascending(requests)
	return s.result()
}

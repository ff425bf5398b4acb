package sched

import (
	"math"

	"diskarm/src/types"
	"diskarm/src/utils"
)

// SSTF repeatedly services the pending request closest to the head. On equal
// distance the request that arrived first wins.
func SSTF(requests []int, head, _ int, _ types.Direction) ([]int, int) {
	s := newSweep(head, len(requests))
	visited := make([]bool, len(requests))

	for range requests {
		minDist := math.MaxInt
		minIndex := -1
		for j, r := range requests {
			if visited[j] {
				continue
			}
			if d := utils.Abs(s.head - r); d < minDist {
				minDist = d
				minIndex = j
			}
		}
		if minIndex == -1 {
			break
		}
		visited[minIndex] = true
		s.visit(requests[minIndex])
	}
	return s.result()
}

package sched

import "diskarm/src/types"

// SCAN sweeps in dir servicing requests, always runs on to the disk edge, then
// reverses and walks the sorted requests back, servicing every cylinder below
// (or above) the head. Requests already serviced on the way out are passed
// again on the way back.
//
// A request sitting exactly on the head is serviced first with zero movement,
// so the head shows up twice at the start of the sequence.
func SCAN(requests []int, head, diskSize int, dir types.Direction) ([]int, int) {
	return elevator(requests, head, diskSize, dir, true)
}

// LOOK is SCAN without the run to the disk edge: it reverses at the last
// request in the current direction.
func LOOK(requests []int, head, diskSize int, dir types.Direction) ([]int, int) {
	return elevator(requests, head, diskSize, dir, false)
}

func elevator(requests []int, head, diskSize int, dir types.Direction, toEdge bool) ([]int, int) {
	sorted := sortedCopy(requests)
	s := newSweep(head, 2*len(sorted)+1)

	switch dir {
	case types.DirUp:
		s.upFrom(sorted, 0, func(c int) bool { return c >= s.head })
		if toEdge {
			s.visit(diskSize - 1)
		}
		s.downFrom(sorted, len(sorted)-1, func(c int) bool { return c < s.head })
	default:
		s.downFrom(sorted, len(sorted)-1, func(c int) bool { return c <= s.head })
		if toEdge {
			s.visit(0)
		}
		s.upFrom(sorted, 0, func(c int) bool { return c > s.head })
	}
	return s.result()
}

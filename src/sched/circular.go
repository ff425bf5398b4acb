package sched

import "diskarm/src/types"

// CSCAN services requests in dir up to the disk edge, then jumps to the
// opposite edge and continues in the same direction. The jump is charged as a
// full traversal of diskSize-1 cylinders. Which requests belong to which pass
// is decided by the initial head.
func CSCAN(requests []int, head, diskSize int, dir types.Direction) ([]int, int) {
	sorted := sortedCopy(requests)
	s := newSweep(head, len(sorted)+2)
	top := diskSize - 1

	switch dir {
	case types.DirUp:
		k := splitUp(sorted, head)
		s.ascending(sorted[k:])
		if s.head != top {
			s.visit(top)
		}
		// head is at top here, so this hop costs exactly top.
		s.visit(0)
		s.ascending(sorted[:k])
	default:
		k := splitDown(sorted, head)
		s.descending(sorted[:k])
		if s.head != 0 {
			s.visit(0)
		}
		s.visit(top)
		s.descending(sorted[k:])
	}
	return s.result()
}

// CLOOK services requests in dir, then, if the lowest (highest) request lies
// behind the head, jumps straight to it and sweeps the sorted requests again
// in the same direction. The jump costs only the distance to that request.
func CLOOK(requests []int, head, _ int, dir types.Direction) ([]int, int) {
	sorted := sortedCopy(requests)
	s := newSweep(head, 2*len(sorted))
	if len(sorted) == 0 {
		return s.result()
	}
	last := len(sorted) - 1

	switch dir {
	case types.DirUp:
		s.upFrom(sorted, 0, func(c int) bool { return c >= s.head })
		if sorted[0] < s.head {
			s.visit(sorted[0])
			s.upFrom(sorted, 1, func(c int) bool { return c > s.head })
		}
	default:
		s.downFrom(sorted, last, func(c int) bool { return c <= s.head })
		if sorted[last] > s.head {
			s.visit(sorted[last])
			s.downFrom(sorted, last-1, func(c int) bool { return c < s.head })
		}
	}
	return s.result()
}

package sched

import "diskarm/src/utils"

// sweep tracks the head while a policy commits to cylinders.
type sweep struct {
	head     int
	movement int
	seq      []int
}

func newSweep(head, expected int) *sweep {
	seq := make([]int, 0, expected+1)
	return &sweep{head: head, seq: append(seq, head)}
}

// visit moves the head to cylinder and records it. Visiting the current
// cylinder costs nothing but is still recorded.
func (s *sweep) visit(cylinder int) {
	s.movement += utils.Abs(cylinder - s.head)
	s.head = cylinder
	s.seq = append(s.seq, cylinder)
}

func (s *sweep) ascending(cylinders []int) {
	for _, c := range cylinders {
		s.visit(c)
	}
}

func (s *sweep) descending(cylinders []int) {
	for i := len(cylinders) - 1; i >= 0; i-- {
		s.visit(cylinders[i])
	}
}

// upFrom walks sorted upward from index i and visits every cylinder for which
// take holds at the moment it is reached.
func (s *sweep) upFrom(sorted []int, i int, take func(int) bool) {
	for ; i < len(sorted); i++ {
		if take(sorted[i]) {
			s.visit(sorted[i])
		}
	}
}

// downFrom is upFrom walking downward from index i.
func (s *sweep) downFrom(sorted []int, i int, take func(int) bool) {
	for ; i >= 0; i-- {
		if take(sorted[i]) {
			s.visit(sorted[i])
		}
	}
}

func (s *sweep) result() ([]int, int) {
	return s.seq, s.movement
}

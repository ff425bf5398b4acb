// Package sched implements the disk-arm scheduling policies. Every policy is a
// pure function of its arguments and is safe to call concurrently.
package sched

import (
	"diskarm/src/simerr"
	"diskarm/src/types"
)

// Policy computes the visit sequence, starting with head, and the total head
// movement in cylinders.
type Policy func(requests []int, head, diskSize int, dir types.Direction) ([]int, int)

var policies = map[types.Algorithm]Policy{
	types.FCFS:  FCFS,
	types.SSTF:  SSTF,
	types.SCAN:  SCAN,
	types.LOOK:  LOOK,
	types.CSCAN: CSCAN,
	types.CLOOK: CLOOK,
}

// Lookup returns the policy implementing alg.
func Lookup(alg types.Algorithm) (Policy, error) {
	p, ok := policies[alg]
	if !ok {
		return nil, simerr.Errorf(simerr.UnknownAlgorithm, "unknown algorithm: %s", alg)
	}
	return p, nil
}

// Run executes alg over q. The disk size must already be resolved; defaulting
// an unset size is up to the caller.
func Run(alg types.Algorithm, q types.Query) ([]int, int, error) {
	policy, err := Lookup(alg)
	if err != nil {
		return nil, 0, err
	}
	if len(q.Requests) == 0 {
		return nil, 0, simerr.Errorf(simerr.Usage, "at least one request is required")
	}
	if q.DiskSize <= 0 {
		return nil, 0, simerr.Errorf(simerr.BadGeometry, "disk size must be positive, got %d", q.DiskSize)
	}
	seq, movement := policy(q.Requests, q.Head, q.DiskSize, q.Dir)
	return seq, movement, nil
}

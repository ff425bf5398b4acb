package sim

import (
	"math/rand/v2"
	"slices"

	"diskarm/src/config"
	"diskarm/src/simerr"
	"diskarm/src/types"
)

// ValidateBounds checks that the head and every request lie on the disk. The
// policies themselves accept any cylinder; this is for callers that want the
// stricter check.
func (s *Simulator) ValidateBounds(q types.Query) error {
	q = s.resolve(q)
	if q.DiskSize <= 0 {
		return simerr.Errorf(simerr.BadGeometry, "disk size must be positive, got %d", q.DiskSize)
	}
	if q.Head < 0 || q.Head >= q.DiskSize {
		return simerr.Errorf(simerr.BadGeometry, "head %d outside disk bounds (0-%d)", q.Head, q.DiskSize-1)
	}
	for _, r := range q.Requests {
		if r < 0 || r >= q.DiskSize {
			return simerr.Errorf(simerr.BadGeometry, "request %d outside disk bounds (0-%d)", r, q.DiskSize-1)
		}
	}
	return nil
}

// RandomRequests draws between MinRandomRequests and MaxRandomRequests
// distinct cylinders below diskSize, sorted ascending.
func RandomRequests(rng *rand.Rand, diskSize int) []int {
	if diskSize <= 0 {
		return nil
	}
	n := config.MinRandomRequests + rng.IntN(config.MaxRandomRequests-config.MinRandomRequests+1)
	n = min(n, diskSize)

	// Floyd's sampling keeps the cost proportional to n rather than diskSize.
	seen := make(map[int]struct{}, n)
	requests := make([]int, 0, n)
	for j := diskSize - n; j < diskSize; j++ {
		c := rng.IntN(j + 1)
		if _, ok := seen[c]; ok {
			c = j
		}
		seen[c] = struct{}{}
		requests = append(requests, c)
	}
	slices.Sort(requests)
	return requests
}

package sched

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"diskarm/src/simerr"
	"diskarm/src/types"
	"diskarm/src/utils"
)

var textbook = []int{98, 183, 37, 122, 14, 124, 65, 67}

func TestPolicies(t *testing.T) {
	tests := []struct {
		name         string
		policy       Policy
		requests     []int
		head         int
		diskSize     int
		dir          types.Direction
		wantSeq      []int
		wantMovement int
	}{
		{
			name:         "FCFS keeps arrival order",
			policy:       FCFS,
			requests:     textbook,
			head:         50,
			diskSize:     200,
			wantSeq:      []int{50, 98, 183, 37, 122, 14, 124, 65, 67},
			wantMovement: 643,
		},
		{
			name:         "FCFS textbook head 53",
			policy:       FCFS,
			requests:     textbook,
			head:         53,
			diskSize:     200,
			wantSeq:      []int{53, 98, 183, 37, 122, 14, 124, 65, 67},
			wantMovement: 640,
		},
		{
			name:         "SSTF textbook head 53",
			policy:       SSTF,
			requests:     textbook,
			head:         53,
			diskSize:     200,
			wantSeq:      []int{53, 65, 67, 37, 14, 98, 122, 124, 183},
			wantMovement: 236,
		},
		{
			name:         "SSTF head 50 goes down first",
			policy:       SSTF,
			requests:     textbook,
			head:         50,
			diskSize:     200,
			wantSeq:      []int{50, 37, 14, 65, 67, 98, 122, 124, 183},
			wantMovement: 205,
		},
		{
			name:         "SSTF tie goes to earlier arrival",
			policy:       SSTF,
			requests:     []int{60, 40},
			head:         50,
			diskSize:     200,
			wantSeq:      []int{50, 60, 40},
			wantMovement: 30,
		},
		{
			name:         "SSTF services duplicates",
			policy:       SSTF,
			requests:     []int{40, 40, 60},
			head:         50,
			diskSize:     200,
			wantSeq:      []int{50, 40, 40, 60},
			wantMovement: 30,
		},
		{
			name:         "SCAN up runs to the edge",
			policy:       SCAN,
			requests:     textbook,
			head:         50,
			diskSize:     200,
			dir:          types.DirUp,
			wantSeq:      []int{50, 65, 67, 98, 122, 124, 183, 199, 183, 124, 122, 98, 67, 65, 37, 14},
			wantMovement: 334,
		},
		{
			name:         "SCAN down runs to zero",
			policy:       SCAN,
			requests:     textbook,
			head:         53,
			diskSize:     200,
			dir:          types.DirDown,
			wantSeq:      []int{53, 37, 14, 0, 14, 37, 65, 67, 98, 122, 124, 183},
			wantMovement: 236,
		},
		{
			name:         "SCAN request on the head is repeated",
			policy:       SCAN,
			requests:     []int{50, 80, 20},
			head:         50,
			diskSize:     100,
			dir:          types.DirUp,
			wantSeq:      []int{50, 50, 80, 99, 80, 50, 20},
			wantMovement: 128,
		},
		{
			name:         "SCAN request on the edge still forces the hop",
			policy:       SCAN,
			requests:     []int{199, 10},
			head:         50,
			diskSize:     200,
			dir:          types.DirUp,
			wantSeq:      []int{50, 199, 199, 10},
			wantMovement: 338,
		},
		{
			name:         "LOOK up reverses at last request",
			policy:       LOOK,
			requests:     textbook,
			head:         50,
			diskSize:     200,
			dir:          types.DirUp,
			wantSeq:      []int{50, 65, 67, 98, 122, 124, 183, 124, 122, 98, 67, 65, 37, 14},
			wantMovement: 302,
		},
		{
			name:         "LOOK down",
			policy:       LOOK,
			requests:     textbook,
			head:         50,
			diskSize:     200,
			dir:          types.DirDown,
			wantSeq:      []int{50, 37, 14, 37, 65, 67, 98, 122, 124, 183},
			wantMovement: 205,
		},
		{
			name:         "SCAN walks back over serviced requests",
			policy:       SCAN,
			requests:     []int{105, 229},
			head:         22,
			diskSize:     252,
			dir:          types.DirUp,
			wantSeq:      []int{22, 105, 229, 251, 229, 105},
			wantMovement: 375,
		},
		{
			name:         "LOOK walks back over serviced requests",
			policy:       LOOK,
			requests:     []int{105, 229},
			head:         22,
			diskSize:     252,
			dir:          types.DirUp,
			wantSeq:      []int{22, 105, 229, 105},
			wantMovement: 331,
		},
		{
			name:         "C-SCAN up charges a full wrap",
			policy:       CSCAN,
			requests:     textbook,
			head:         50,
			diskSize:     200,
			dir:          types.DirUp,
			wantSeq:      []int{50, 65, 67, 98, 122, 124, 183, 199, 0, 14, 37},
			wantMovement: 385,
		},
		{
			name:         "C-SCAN down",
			policy:       CSCAN,
			requests:     textbook,
			head:         50,
			diskSize:     200,
			dir:          types.DirDown,
			wantSeq:      []int{50, 37, 14, 0, 199, 183, 124, 122, 98, 67, 65},
			wantMovement: 383,
		},
		{
			name:         "C-SCAN skips the edge hop when already there",
			policy:       CSCAN,
			requests:     []int{199, 10},
			head:         50,
			diskSize:     200,
			dir:          types.DirUp,
			wantSeq:      []int{50, 199, 0, 10},
			wantMovement: 358,
		},
		{
			name:         "C-SCAN head on the edge",
			policy:       CSCAN,
			requests:     []int{199, 10},
			head:         199,
			diskSize:     200,
			dir:          types.DirUp,
			wantSeq:      []int{199, 199, 0, 10},
			wantMovement: 209,
		},
		{
			name:         "C-LOOK up wraps to lowest request and sweeps again",
			policy:       CLOOK,
			requests:     textbook,
			head:         50,
			diskSize:     200,
			dir:          types.DirUp,
			wantSeq:      []int{50, 65, 67, 98, 122, 124, 183, 14, 37, 65, 67, 98, 122, 124, 183},
			wantMovement: 471,
		},
		{
			name:         "C-LOOK down wraps to highest request",
			policy:       CLOOK,
			requests:     textbook,
			head:         50,
			diskSize:     200,
			dir:          types.DirDown,
			wantSeq:      []int{50, 37, 14, 183, 124, 122, 98, 67, 65, 37, 14},
			wantMovement: 374,
		},
		{
			name:         "C-LOOK wraps even with nothing behind the start",
			policy:       CLOOK,
			requests:     []int{30, 20},
			head:         10,
			diskSize:     200,
			dir:          types.DirUp,
			wantSeq:      []int{10, 20, 30, 20, 30},
			wantMovement: 40,
		},
		{
			name:         "C-LOOK single request does not wrap",
			policy:       CLOOK,
			requests:     []int{30},
			head:         10,
			diskSize:     200,
			dir:          types.DirUp,
			wantSeq:      []int{10, 30},
			wantMovement: 20,
		},
		{
			name:         "C-LOOK everything behind the head",
			policy:       CLOOK,
			requests:     []int{5, 2},
			head:         10,
			diskSize:     200,
			dir:          types.DirUp,
			wantSeq:      []int{10, 2, 5},
			wantMovement: 11,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq, movement := tt.policy(tt.requests, tt.head, tt.diskSize, tt.dir)
			if diff := cmp.Diff(tt.wantSeq, seq); diff != "" {
				t.Errorf("unexpected sequence (-want +got): %s", diff)
			}
			assert.Equal(t, tt.wantMovement, movement)
		})
	}
}

func TestRun(t *testing.T) {
	seq, movement, err := Run(types.SCAN, types.Query{Requests: []int{10}, Head: 50, DiskSize: 200, Dir: types.DirUp})
	require.NoError(t, err)
	assert.Equal(t, []int{50, 199, 10}, seq)
	assert.Equal(t, 338, movement)

	_, _, err = Run(types.FCFS, types.Query{Head: 50, DiskSize: 200})
	assert.Equal(t, simerr.Usage, simerr.CanonicalCode(err))

	for _, diskSize := range []int{0, -5} {
		_, _, err = Run(types.FCFS, types.Query{Requests: []int{1}, DiskSize: diskSize})
		assert.Equal(t, simerr.BadGeometry, simerr.CanonicalCode(err), "disk size %d", diskSize)
	}

	_, _, err = Run(types.Algorithm("ELEVATOR"), types.Query{Requests: []int{1}, DiskSize: 200})
	assert.Equal(t, simerr.UnknownAlgorithm, simerr.CanonicalCode(err))
}

func randomQuery(rng *rand.Rand) types.Query {
	diskSize := 10 + rng.IntN(300)
	requests := make([]int, 1+rng.IntN(20))
	for i := range requests {
		requests[i] = rng.IntN(diskSize)
	}
	return types.Query{
		Requests: requests,
		Head:     rng.IntN(diskSize),
		DiskSize: diskSize,
		Dir:      types.Direction(rng.IntN(2)),
	}
}

func sortedInts(xs []int) []int {
	out := slices.Clone(xs)
	slices.Sort(out)
	return out
}

func TestInvariants(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	for range 500 {
		q := randomQuery(rng)
		original := slices.Clone(q.Requests)
		top := q.DiskSize - 1

		for _, alg := range types.Algorithms {
			seq, movement, err := Run(alg, q)
			require.NoError(t, err)
			require.Equal(t, original, q.Requests, "%s mutated its input", alg)

			require.Equal(t, q.Head, seq[0])
			sum := 0
			for i := 1; i < len(seq); i++ {
				sum += utils.Abs(seq[i] - seq[i-1])
			}
			require.Equal(t, sum, movement, "%s movement for %+v", alg, q)

			again, againMovement, err := Run(alg, q)
			require.NoError(t, err)
			require.Equal(t, seq, again)
			require.Equal(t, movement, againMovement)

			require.LessOrEqual(t, len(seq), 2*len(q.Requests)+2)
			for _, r := range q.Requests {
				require.Contains(t, seq[1:], r, "%s skipped %d for %+v", alg, r, q)
			}

			switch alg {
			case types.FCFS:
				require.Equal(t, q.Requests, seq[1:])
			case types.SSTF:
				require.Equal(t, sortedInts(q.Requests), sortedInts(seq[1:]))
			case types.LOOK, types.CLOOK:
				for _, c := range seq[1:] {
					require.Contains(t, q.Requests, c, "%s visited %d for %+v", alg, c, q)
				}
			case types.SCAN:
				edge := top
				if q.Dir == types.DirDown {
					edge = 0
				}
				require.Contains(t, seq[1:], edge)
			case types.CSCAN:
				require.Contains(t, seq, 0)
				require.Contains(t, seq, top)
			}
		}
	}
}

func TestSSTFPicksNearest(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))

	for range 200 {
		q := randomQuery(rng)
		seq, _ := SSTF(q.Requests, q.Head, q.DiskSize, q.Dir)

		pending := slices.Clone(q.Requests)
		for i := 1; i < len(seq); i++ {
			prev := seq[i-1]
			best := -1
			for j, r := range pending {
				if best == -1 || utils.Abs(r-prev) < utils.Abs(pending[best]-prev) {
					best = j
				}
			}
			require.Equal(t, pending[best], seq[i])
			pending = slices.Delete(pending, best, best+1)
		}
		require.Empty(t, pending)
	}
}

func TestCircularWrapCost(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))

	for range 200 {
		q := randomQuery(rng)
		top := q.DiskSize - 1
		seq, _ := CSCAN(q.Requests, q.Head, q.DiskSize, q.Dir)

		from, to := top, 0
		if q.Dir == types.DirDown {
			from, to = 0, top
		}
		wrapped := false
		for i := 1; i < len(seq); i++ {
			if seq[i-1] == from && seq[i] == to {
				wrapped = true
				break
			}
		}
		require.True(t, wrapped, "no wrap in %v", seq)
	}
}

func TestSweepSecondPassFollowsCurrentHead(t *testing.T) {
	rng := rand.New(rand.NewPCG(9, 10))

	for range 200 {
		q := randomQuery(rng)
		sorted := sortedInts(q.Requests)
		seq, _ := LOOK(q.Requests, q.Head, q.DiskSize, q.Dir)

		// Walking the sorted requests against the moving head, never against
		// the starting one.
		want := []int{q.Head}
		head := q.Head
		if q.Dir == types.DirUp {
			for _, c := range sorted {
				if c >= head {
					want, head = append(want, c), c
				}
			}
			for i := len(sorted) - 1; i >= 0; i-- {
				if sorted[i] < head {
					want, head = append(want, sorted[i]), sorted[i]
				}
			}
		} else {
			for i := len(sorted) - 1; i >= 0; i-- {
				if sorted[i] <= head {
					want, head = append(want, sorted[i]), sorted[i]
				}
			}
			for _, c := range sorted {
				if c > head {
					want, head = append(want, c), c
				}
			}
		}
		require.Equal(t, want, seq, "%+v", q)
	}
}

func TestSortedCopyLeavesInputAlone(t *testing.T) {
	in := []int{3, 1, 2}
	out := sortedCopy(in)
	assert.Equal(t, []int{1, 2, 3}, out)
	assert.Equal(t, []int{3, 1, 2}, in)
}

func TestSplit(t *testing.T) {
	sorted := []int{10, 20, 20, 30}
	assert.Equal(t, 1, splitUp(sorted, 20))
	assert.Equal(t, 3, splitDown(sorted, 20))
	assert.Equal(t, 0, splitUp(sorted, 5))
	assert.Equal(t, 0, splitDown(sorted, 5))
	assert.Equal(t, 4, splitUp(sorted, 40))
	assert.Equal(t, 4, splitDown(sorted, 40))
}

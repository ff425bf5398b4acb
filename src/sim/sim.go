// Package sim runs scheduling policies end to end: validation, the policy
// itself and the timing model.
package sim

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/tiendc/go-deepcopy"
	"golang.org/x/sync/errgroup"

	"diskarm/src/config"
	"diskarm/src/sched"
	"diskarm/src/simerr"
	"diskarm/src/timing"
	"diskarm/src/types"
)

type Simulator struct {
	Geometry config.Geometry
}

func New(g config.Geometry) *Simulator {
	return &Simulator{Geometry: g}
}

// resolve fills in the disk size when the query leaves it unset.
func (s *Simulator) resolve(q types.Query) types.Query {
	if q.DiskSize == 0 {
		q.DiskSize = s.Geometry.Cylinders
	}
	return q
}

// Run executes one policy and attaches the timing breakdown.
func (s *Simulator) Run(alg types.Algorithm, q types.Query) (types.Result, error) {
	q = s.resolve(q)
	seq, movement, err := sched.Run(alg, q)
	if err != nil {
		return types.Result{}, err
	}

	res := types.Result{
		RunID:     uuid.NewString(),
		Algorithm: alg,
		Sequence:  seq,
		Movement:  movement,
		Timing:    timing.Estimate(s.Geometry, movement, len(q.Requests)),
	}
	slog.Debug("Simulation finished",
		"run", res.RunID,
		"algorithm", alg,
		"head", q.Head,
		"diskSize", q.DiskSize,
		"direction", q.Dir,
		"requests", len(q.Requests),
		"movement", movement,
		"totalTime", res.Timing.Total)
	return res, nil
}

// Compare runs every policy on its own copy of q. Results come back in the
// order of types.Algorithms; best has the lowest total time, earliest
// algorithm on ties.
func (s *Simulator) Compare(ctx context.Context, q types.Query) (results []types.Result, best types.Result, err error) {
	results = make([]types.Result, len(types.Algorithms))
	g, ctx := errgroup.WithContext(ctx)

	for i, alg := range types.Algorithms {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			var own types.Query
			if err := deepcopy.Copy(&own, &q); err != nil {
				return simerr.Errorf(simerr.Internal, "copying query: %v", err)
			}
			res, err := s.Run(alg, own)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, types.Result{}, err
	}

	best = results[0]
	for _, res := range results[1:] {
		if res.Timing.Total < best.Timing.Total {
			best = res
		}
	}
	slog.Debug("Comparison finished", "best", best.Algorithm, "totalTime", best.Timing.Total)
	return results, best, nil
}

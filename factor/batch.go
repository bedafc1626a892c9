package factor

import (
	"context"
	"math/rand"
	"runtime"

	"github.com/klauspost/cpuid/v2"
	"golang.org/x/sync/errgroup"
)

// DefaultWorkers returns the number of logical cores, falling back
// to GOMAXPROCS when cpuid can't tell.
func DefaultWorkers() int {
	if n := cpuid.CPU.LogicalCores; n > 0 {
		return n
	}
	return runtime.GOMAXPROCS(0)
}

// FactorAll factors every number in nums on at most workers
// goroutines, and returns the factorizations indexed like nums. If
// workers <= 0, DefaultWorkers() is used.
//
// Each number gets its own child Factorizer, seeded from f in input
// order before any work starts, so a seeded f gives the same results
// however the work is scheduled.
func (f *Factorizer) FactorAll(ctx context.Context, nums []int64, workers int) ([][]int64, error) {
	if workers <= 0 {
		workers = DefaultWorkers()
	}

	seeds := make([]int64, len(nums))
	f.mu.Lock()
	for i := range seeds {
		seeds[i] = f.rnd.Int63()
	}
	f.mu.Unlock()

	results := make([][]int64, len(nums))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, n := range nums {
		i, n := i, n
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			child := New(WithRand(rand.New(rand.NewSource(seeds[i]))), WithLogger(f.log))
			results[i] = child.Factor(n)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f.log.Debugf("factored %d numbers on %d workers", len(nums), workers)
	return results, nil
}

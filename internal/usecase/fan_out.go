package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"
)

const defaultFanOutWorkers = 4

// fanOut runs task for each index on a bounded worker pool and returns the first error.
// Tasks write their own slot of a caller-owned result slice.
func fanOut(ctx context.Context, workers, n int, task func(ctx context.Context, i int) error) error {
	if n == 0 {
		return nil
	}
	if workers <= 0 {
		workers = defaultFanOutWorkers
	}
	if workers > n {
		workers = n
	}

	pool, err := ants.NewPool(workers)
	if err != nil {
		return fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var (
		workersWG sync.WaitGroup
		errOnce   sync.Once
		firstErr  error
	)
	for i := 0; i < n; i++ {
		i := i
		workersWG.Add(1)
		if err := pool.Submit(func() {
			defer workersWG.Done()
			if ctx.Err() != nil {
				return
			}
			if err := task(ctx, i); err != nil {
				errOnce.Do(func() { firstErr = err })
			}
		}); err != nil {
			workersWG.Done()
			workersWG.Wait()
			return fmt.Errorf("submit task to worker pool: %w", err)
		}
	}

	workersWG.Wait()
	if firstErr != nil {
		return firstErr
	}
	return ctx.Err()
}

package engine

import "sync"

// runPool dispatches indices [0, total) to a bounded worker pool and blocks
// until every job has been processed. Pool size comes from the --workers
// override, defaulting to the hardware parallelism, and never exceeds the
// job count.
func (e *Engine) runPool(total int, work func(i int)) {
	workers := e.cfg.EffectiveWorkers()
	if workers > total {
		workers = total
	}

	jobs := make(chan int, total)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				work(i)
			}
		}()
	}

	for i := 0; i < total; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
}

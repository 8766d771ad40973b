package scheduler

import "sync"

// runBounded runs fn(key) for every key in keys, at most maxWorkers at a
// time, and returns the first error encountered (if any), after all
// goroutines have finished. Each agent's state is disjoint, so no
// synchronisation is needed inside fn beyond what it already does.
func runBounded(keys []string, maxWorkers int, fn func(key string) error) error {
	if maxWorkers <= 0 {
		maxWorkers = 1
	}
	sem := make(chan struct{}, maxWorkers)
	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	for _, key := range keys {
		key := key
		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()
			if err := fn(key); err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	return firstErr
}

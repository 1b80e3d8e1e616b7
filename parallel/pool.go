// Package parallel runs independent per-file jobs across a fixed set of
// workers. With a single worker the pool degenerates to calling jobs inline,
// which keeps processing order deterministic for tests.
package parallel

import (
	"runtime"
	"sync"
)

type (
	WorkerFunc func(func())
	WaitFunc   func(done bool)
	CancelFunc func()
)

type Pool struct {
	Do     WorkerFunc
	Wait   WaitFunc
	Cancel CancelFunc
}

// Start creates a pool of numWorkers goroutines; values below one select
// GOMAXPROCS workers. Wait(true) stops accepting jobs and blocks until the
// queue drains.
func Start(numWorkers int) *Pool {
	if numWorkers < 1 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	if numWorkers == 1 {
		return &Pool{
			Do:     func(job func()) { job() },
			Wait:   func(bool) {},
			Cancel: func() {},
		}
	}

	jobs := make(chan func(), numWorkers)
	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobs {
				job()
			}
		}()
	}

	cancel := sync.OnceFunc(func() { close(jobs) })
	return &Pool{
		Do: func(job func()) { jobs <- job },
		Wait: func(done bool) {
			if done {
				cancel()
			}
			wg.Wait()
		},
		Cancel: cancel,
	}
}

package parallel

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSerialPoolRunsInline(t *testing.T) {
	pool := Start(1)

	ran := false
	pool.Do(func() { ran = true })
	assert.True(t, ran, "single-worker pool should run jobs inline")

	pool.Wait(true)
}

func TestPoolRunsAllJobs(t *testing.T) {
	for _, workers := range []int{0, 2, 8} {
		pool := Start(workers)

		var count atomic.Int64
		for i := 0; i < 100; i++ {
			pool.Do(func() { count.Add(1) })
		}
		pool.Wait(true)

		assert.EqualValues(t, 100, count.Load(), "workers=%d", workers)
	}
}

func TestPoolWaitIsRepeatable(t *testing.T) {
	pool := Start(4)

	var count atomic.Int64
	pool.Do(func() { count.Add(1) })
	pool.Wait(true)
	pool.Wait(true)

	assert.EqualValues(t, 1, count.Load())
}

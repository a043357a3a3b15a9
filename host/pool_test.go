package host

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestPool_RunsAllTasks(t *testing.T) {
	pool := NewPool(4)
	defer pool.Close()

	var ran atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 200; i++ {
		wg.Add(1)
		pool.Submit(func() {
			defer wg.Done()
			ran.Add(1)
		})
	}
	wg.Wait()

	if got := ran.Load(); got != 200 {
		t.Fatalf("ran = %d tasks, want 200", got)
	}
}

func TestPool_SubmitNeverBlocks(t *testing.T) {
	// One worker, parked on a gate: the queue fills up and further submits
	// must still return immediately by spilling onto fresh goroutines.
	pool := NewPool(1)

	gate := make(chan struct{})
	pool.Submit(func() { <-gate })

	var ran atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		pool.Submit(func() {
			defer wg.Done()
			ran.Add(1)
		})
	}

	close(gate)
	wg.Wait()
	pool.Close()

	if got := ran.Load(); got != 100 {
		t.Fatalf("ran = %d tasks, want 100", got)
	}
}

func TestPool_ConcurrentSubmit(t *testing.T) {
	pool := NewPool(0) // one worker per CPU
	defer pool.Close()

	var ran atomic.Int32
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				wg.Add(1)
				pool.Submit(func() {
					defer wg.Done()
					ran.Add(1)
				})
			}
		}()
	}
	wg.Wait()

	if got := ran.Load(); got != 800 {
		t.Fatalf("ran = %d tasks, want 800", got)
	}
}

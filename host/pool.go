package host

import (
	"runtime"
	"sync"
)

// Pool runs fire-and-forget background tasks for the engine, off the
// window's owning thread. There is no ordering guarantee between tasks, no
// result, and no cancellation: a submitted task runs to completion or is
// abandoned only when the process exits.
type Pool struct {
	tasks chan func()
	wg    sync.WaitGroup
}

// NewPool starts a pool with the given number of workers. workers <= 0 means
// one worker per CPU.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	p := &Pool{tasks: make(chan func(), 64)}
	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.worker()
	}
	return p
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for task := range p.tasks {
		task()
	}
}

// Submit schedules task on the pool. It never blocks the caller: when the
// queue is full the task runs on a fresh goroutine instead.
func (p *Pool) Submit(task func()) {
	select {
	case p.tasks <- task:
	default:
		go task()
	}
}

// Close stops accepting tasks and waits for queued ones to finish. Tasks
// already handed to fresh goroutines by a full queue are not waited for.
func (p *Pool) Close() {
	close(p.tasks)
	p.wg.Wait()
}

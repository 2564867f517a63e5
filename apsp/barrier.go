package apsp

import "sync"

// cyclicBarrier is a reusable rendezvous point for a fixed number of
// goroutines: wait() blocks until every participant has called wait() for
// the current phase, then releases all of them and advances to the next
// phase. The parallel Floyd–Warshall kernel uses it so all workers
// complete iteration w before any begins w+1.
type cyclicBarrier struct {
	n     int
	mu    sync.Mutex
	cond  *sync.Cond
	count int
	phase int
}

// newCyclicBarrier returns a barrier for exactly n participants.
func newCyclicBarrier(n int) *cyclicBarrier {
	b := &cyclicBarrier{n: n}
	b.cond = sync.NewCond(&b.mu)

	return b
}

// wait blocks the calling goroutine until all n participants have called
// wait for the current phase.
func (b *cyclicBarrier) wait() {
	b.mu.Lock()
	phase := b.phase
	b.count++
	if b.count == b.n {
		b.count = 0
		b.phase++
		b.cond.Broadcast()
	} else {
		for b.phase == phase {
			b.cond.Wait()
		}
	}
	b.mu.Unlock()
}

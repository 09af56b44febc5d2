package locked

import (
	"context"
	"sync"

	"deedles.dev/locked/internal/list"
)

// A Queue is a FIFO queue that is safe for concurrent use. A zero
// value Queue is ready to use.
//
// The queue's head and tail are guarded by separate mutexes, so
// goroutines pushing values and goroutines popping them contend only
// on the single pointer comparison that detects emptiness, never on
// the nodes themselves. The node chain always ends in a payload-less
// sentinel: a push fills the current sentinel and appends a fresh
// one, so the node a pusher writes is never the node a popper reads.
//
// A Queue must not be copied after first use.
type Queue[T any] struct {
	_     noCopy
	start sync.Once

	headMu sync.Mutex // guards the chain's head
	tailMu sync.Mutex // guards the chain's tail
	ready  sync.Cond  // wakes blocked poppers; L is headMu

	chain *list.Chain[T]
}

func (q *Queue[T]) init() {
	q.start.Do(func() {
		q.ready.L = &q.headMu
		q.chain = list.NewChain[T]()
	})
}

// Push appends v to the tail of the queue. It never blocks beyond
// ordinary contention for the tail lock.
func (q *Queue[T]) Push(v T) {
	q.init()

	q.tailMu.Lock()
	q.chain.PushTail(v)
	q.tailMu.Unlock()

	// Signal after the unlock so that a woken popper doesn't
	// immediately block on the mutex this goroutine still holds.
	q.ready.Signal()
}

// tail reads the current tail node under the tail lock. It is only
// ever called with the head lock already held, keeping the nesting
// order fixed: head before tail, never the reverse.
func (q *Queue[T]) tail() *list.Node[T] {
	q.tailMu.Lock()
	defer q.tailMu.Unlock()
	return q.chain.Tail()
}

// TryPop removes and returns the value at the head of the queue. If
// the queue is empty, it returns false immediately instead of
// blocking.
func (q *Queue[T]) TryPop() (T, bool) {
	q.init()

	q.headMu.Lock()
	defer q.headMu.Unlock()

	if q.chain.Head() == q.tail() {
		var zero T
		return zero, false
	}
	return *q.chain.PopHead(), true
}

// Pop removes and returns the value at the head of the queue,
// blocking until a value is available or ctx is canceled. On
// cancellation it returns the zero value and ctx.Err(). If a value is
// available, it is returned even if ctx has already been canceled.
func (q *Queue[T]) Pop(ctx context.Context) (T, error) {
	q.init()

	stop := context.AfterFunc(ctx, func() {
		// Broadcast under the lock so a popper that has checked ctx
		// but not yet suspended can't miss the wakeup.
		q.headMu.Lock()
		defer q.headMu.Unlock()
		q.ready.Broadcast()
	})
	defer stop()

	q.headMu.Lock()
	defer q.headMu.Unlock()

	for q.chain.Head() == q.tail() {
		if err := ctx.Err(); err != nil {
			var zero T
			return zero, err
		}
		q.ready.Wait()
	}
	return *q.chain.PopHead(), nil
}

// Empty reports whether the queue was empty at some instant during
// the call. The answer can be stale by the time it returns, so it
// must not be used to decide that a following TryPop will succeed.
func (q *Queue[T]) Empty() bool {
	q.init()

	q.headMu.Lock()
	defer q.headMu.Unlock()
	return q.chain.Head() == q.tail()
}

//go:build go1.23

package locked

import (
	"context"
	"iter"
)

// Values returns an iterator that pops values from the queue until
// the context is canceled, blocking between values the same way that
// [Queue.Pop] does.
func (q *Queue[T]) Values(ctx context.Context) iter.Seq[T] {
	q.init()
	return func(yield func(T) bool) {
		for {
			v, err := q.Pop(ctx)
			if err != nil || !yield(v) {
				return
			}
		}
	}
}

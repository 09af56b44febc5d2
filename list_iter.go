//go:build go1.23

package locked

import "iter"

// All returns an iterator over the values of the list, most recently
// pushed first. The iterator holds the yielded node's lock during
// each yield; breaking out of the loop releases it.
func (ls *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		ls.walk(func(val *T) verdict {
			if !yield(*val) {
				return halt
			}
			return advance
		})
	}
}

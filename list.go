package locked

import "sync"

// A List is a singly-linked list that is safe for concurrent use. A
// zero value List is ready to use.
//
// The list starts with a permanent payload-less sentinel node, and
// every node guards its own payload and next link with its own mutex.
// Traversals hold at most two locks at a time, a node and its
// successor, and always acquire the successor's lock before releasing
// the node's. Unlinking a node requires both its own lock and its
// predecessor's, so a traverser is never handed a half-unlinked node,
// and locks are only ever acquired in list order, so traversals and
// removals cannot deadlock with each other.
//
// A List must not be copied after first use.
type List[T any] struct {
	_    noCopy
	head lnode[T] // sentinel; never unlinked
}

type lnode[T any] struct {
	mu   sync.Mutex
	val  *T // nil only for the sentinel
	next *lnode[T]
}

// A verdict tells walk what to do with the node just visited.
type verdict int

const (
	advance verdict = iota // move on to the successor
	unlink                 // splice the node out, then re-examine
	halt                   // end the traversal
)

// walk visits every node after the sentinel in order, calling visit
// with the node's payload while both the node's lock and its
// predecessor's are held. An unlink verdict splices the node out and
// keeps the predecessor locked so its new successor is visited next.
// Every lock held is released on every exit path, including a panic
// in visit.
func (ls *List[T]) walk(visit func(val *T) verdict) {
	cur := &ls.head
	cur.mu.Lock()

	var next *lnode[T]
	defer func() {
		if next != nil {
			next.mu.Unlock()
		}
		cur.mu.Unlock()
	}()

	for next = cur.next; next != nil; next = cur.next {
		next.mu.Lock()
		switch visit(next.val) {
		case unlink:
			cur.next = next.next
			next.mu.Unlock()
			next = nil
		case advance:
			cur.mu.Unlock()
			cur, next = next, nil
		case halt:
			return
		}
	}
}

// PushFront inserts v at the front of the list, immediately after the
// sentinel. It contends only with operations currently holding the
// sentinel's lock, never with traversals already past it.
func (ls *List[T]) PushFront(v T) {
	n := &lnode[T]{val: &v}

	ls.head.mu.Lock()
	defer ls.head.mu.Unlock()
	n.next = ls.head.next
	ls.head.next = n
}

// ForEach calls f with each value in the list, most recently pushed
// first. The traversal holds the visited node's lock while f runs, so
// f must not call back into ls.
func (ls *List[T]) ForEach(f func(T)) {
	ls.walk(func(val *T) verdict {
		f(*val)
		return advance
	})
}

// Find returns a pointer to the first value matched by pred, or nil
// if no value matches. The traversal stops at the first match. The
// returned pointer remains valid even if the node holding the value
// is later removed from the list.
func (ls *List[T]) Find(pred func(T) bool) *T {
	var found *T
	ls.walk(func(val *T) verdict {
		if pred(*val) {
			found = val
			return halt
		}
		return advance
	})
	return found
}

// RemoveIf unlinks every value matched by pred and returns the number
// removed. Each unlink happens while both the node's lock and its
// predecessor's are held, so a concurrent traversal never follows a
// dangling link.
func (ls *List[T]) RemoveIf(pred func(T) bool) int {
	var n int
	ls.walk(func(val *T) verdict {
		if pred(*val) {
			n++
			return unlink
		}
		return advance
	})
	return n
}

// Clear removes every value from the list.
func (ls *List[T]) Clear() {
	ls.RemoveIf(func(T) bool { return true })
}

// Reduce folds f over the values of ls in list order, starting from
// acc, using the same two-lock traversal as [List.ForEach].
func Reduce[T, U any](ls *List[T], acc U, f func(U, T) U) U {
	ls.walk(func(val *T) verdict {
		acc = f(acc, *val)
		return advance
	})
	return acc
}

package list

import "iter"

// Chain is a singly-linked list of nodes that always ends in a
// payload-less sentinel node. The sentinel doubles as the insertion
// point: pushing a value fills the current sentinel and appends a
// fresh one behind it, so the head and tail are the same node exactly
// when the chain is empty.
//
// A Chain does no locking of its own. Callers sharing one between
// goroutines must guard the head and tail externally.
type Chain[T any] struct {
	head, tail *Node[T]
}

// NewChain returns a chain containing only a sentinel node.
func NewChain[T any]() *Chain[T] {
	sentinel := new(Node[T])
	return &Chain[T]{head: sentinel, tail: sentinel}
}

// Head returns the first node of the chain.
func (c *Chain[T]) Head() *Node[T] {
	return c.head
}

// Tail returns the sentinel node at the end of the chain.
func (c *Chain[T]) Tail() *Node[T] {
	return c.tail
}

// PushTail stores v in the current sentinel and appends a new
// sentinel after it, turning the old sentinel into an ordinary node.
func (c *Chain[T]) PushTail(v T) {
	n := new(Node[T])
	c.tail.val = &v
	c.tail.next = n
	c.tail = n
}

// PopHead detaches the head node from the chain and returns its
// payload. The caller must have established that the chain is not
// empty.
func (c *Chain[T]) PopHead() *T {
	n := c.head
	c.head = n.next
	n.next = nil
	return n.val
}

// All returns an iterator over the payloads of the chain in order.
// The sentinel is not included.
func (c *Chain[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for cur := c.head; cur != c.tail; cur = cur.next {
			if !yield(*cur.val) {
				return
			}
		}
	}
}

// Node is a node of a [Chain]. The sentinel node has no payload and
// no successor.
type Node[T any] struct {
	val  *T
	next *Node[T]
}

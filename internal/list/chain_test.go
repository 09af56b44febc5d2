package list

import (
	"slices"
	"testing"
)

func TestChain(t *testing.T) {
	c := NewChain[int]()
	if c.Head() != c.Tail() {
		t.Fatal("new chain's head and tail differ")
	}
	checkChain(t, c)

	c.PushTail(1)
	c.PushTail(2)
	c.PushTail(3)
	checkChain(t, c)

	if got := slices.Collect(c.All()); !slices.Equal(got, []int{1, 2, 3}) {
		t.Fatal(got)
	}

	if v := c.PopHead(); *v != 1 {
		t.Fatal(*v)
	}
	checkChain(t, c)

	if got := slices.Collect(c.All()); !slices.Equal(got, []int{2, 3}) {
		t.Fatal(got)
	}

	c.PopHead()
	c.PopHead()
	checkChain(t, c)
	if c.Head() != c.Tail() {
		t.Fatal("drained chain's head and tail differ")
	}
}

// checkChain verifies the sentinel discipline: the tail node has no
// payload and no successor, every other node reachable from the head
// has a payload, and the head reaches the tail in finitely many
// steps.
func checkChain[T any](t *testing.T, c *Chain[T]) {
	t.Helper()

	if c.tail.val != nil {
		t.Fatal("tail sentinel has a payload")
	}
	if c.tail.next != nil {
		t.Fatal("tail sentinel has a successor")
	}

	for n, steps := c.head, 0; n != c.tail; n, steps = n.next, steps+1 {
		if steps > 1<<10 {
			t.Fatal("head does not reach tail")
		}
		if n.val == nil {
			t.Fatal("non-tail node without a payload")
		}
	}
}

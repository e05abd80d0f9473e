package avltree

import (
	"cmp"

	"github.com/gostonefire/dictionary/engine"
	"github.com/gostonefire/dictionary/internal/storage"
)

// Iterator - Is used to iterate over tree entries in ascending key order by following parent links.
type Iterator[K cmp.Ordered, V any] struct {
	guard storage.ModGuard
	next  *node[K, V]
}

// newIterator - Returns a pointer to a new Iterator positioned before the smallest key of t
func newIterator[K cmp.Ordered, V any](t *Tree[K, V]) *Iterator[K, V] {
	it := &Iterator[K, V]{guard: storage.NewModGuard(&t.modCount)}
	if t.root != nil {
		it.next = t.root.leftmost()
	}

	return it
}

// HasNext - Returns true if there are more entries to be fetched from a call to Next.
func (I *Iterator[K, V]) HasNext() bool {
	return I.next != nil
}

// Next - Returns the next entry.
// It returns:
//   - entry is the next entry in key order.
//   - err is of type engine.ConcurrentModification if the tree was structurally changed since the iterator was
//     created, or of type engine.NoEntryFound if there are no more entries.
func (I *Iterator[K, V]) Next() (entry *engine.Entry[K, V], err error) {
	if err = I.guard.Check(); err != nil {
		return
	}
	if I.next == nil {
		err = engine.NoEntryFound{}
		return
	}

	n := I.next
	I.next = n.successor()
	entry = &n.Entry

	return
}

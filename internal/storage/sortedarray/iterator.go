package sortedarray

import (
	"cmp"

	"github.com/gostonefire/dictionary/engine"
	"github.com/gostonefire/dictionary/internal/storage"
)

// Iterator - Is used to iterate over array entries in index order.
type Iterator[K cmp.Ordered, V any] struct {
	guard storage.ModGuard
	array *Array[K, V]
	index int
}

// newIterator - Returns a pointer to a new Iterator positioned before index 0
func newIterator[K cmp.Ordered, V any](a *Array[K, V]) *Iterator[K, V] {
	return &Iterator[K, V]{guard: storage.NewModGuard(&a.modCount), array: a}
}

// HasNext - Returns true if there are more entries to be fetched from a call to Next.
func (I *Iterator[K, V]) HasNext() bool {
	return I.index < I.array.size
}

// Next - Returns the next entry.
// It returns:
//   - entry is the entry at the next index.
//   - err is of type engine.ConcurrentModification if the array was structurally changed since the iterator was
//     created, or of type engine.NoEntryFound if there are no more entries.
func (I *Iterator[K, V]) Next() (entry *engine.Entry[K, V], err error) {
	if err = I.guard.Check(); err != nil {
		return
	}
	if I.index >= I.array.size {
		err = engine.NoEntryFound{}
		return
	}

	entry = &I.array.data[I.index]
	I.index++

	return
}

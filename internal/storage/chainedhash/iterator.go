package chainedhash

import (
	"cmp"

	"github.com/gostonefire/dictionary/engine"
	"github.com/gostonefire/dictionary/internal/storage"
)

// Iterator - Is used to iterate over table entries bucket by bucket, following each chain.
type Iterator[K cmp.Ordered, V any] struct {
	guard   storage.ModGuard
	buckets []chain[K, V]
	bucket  int
	next    *link[K, V]
}

// newIterator - Returns a pointer to a new Iterator positioned before the first entry of the first non-empty bucket
func newIterator[K cmp.Ordered, V any](t *Table[K, V]) *Iterator[K, V] {
	it := &Iterator[K, V]{
		guard:   storage.NewModGuard(&t.modCount),
		buckets: t.buckets,
	}
	it.advance()

	return it
}

// advance - Moves to the first link of the next non-empty bucket
func (I *Iterator[K, V]) advance() {
	for I.next == nil && I.bucket < len(I.buckets) {
		I.next = I.buckets[I.bucket].first
		I.bucket++
	}
}

// HasNext - Returns true if there are more entries to be fetched from a call to Next.
func (I *Iterator[K, V]) HasNext() bool {
	return I.next != nil
}

// Next - Returns the next entry.
// It returns:
//   - entry is the next entry in bucket and chain order.
//   - err is of type engine.ConcurrentModification if the table was structurally changed since the iterator was
//     created, or of type engine.NoEntryFound if there are no more entries.
func (I *Iterator[K, V]) Next() (entry *engine.Entry[K, V], err error) {
	if err = I.guard.Check(); err != nil {
		return
	}
	if I.next == nil {
		err = engine.NoEntryFound{}
		return
	}

	l := I.next
	I.next = l.next
	I.advance()
	entry = &l.Entry

	return
}

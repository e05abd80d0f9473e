package sortedarray

import (
	"cmp"
	"fmt"
	"io"

	"github.com/gostonefire/dictionary/engine"
	"github.com/gostonefire/dictionary/internal/storage"
	"github.com/hashicorp/go-hclog"
)

// DefaultCapacity - Buffer length used when no initial capacity is given
const DefaultCapacity int64 = 16

// notFound - Returned by searchIndex when the key is not present
const notFound int = -1

// Array - Represents the sorted array implementation of a dictionary. Entries are kept in one buffer in strictly
// ascending key order, data[0:size] is always densely populated.
type Array[K cmp.Ordered, V any] struct {
	data     []engine.Entry[K, V]
	size     int
	modCount int64
	logger   hclog.Logger
}

// NewArray - Returns a pointer to a new empty sorted array.
//   - capacity is the initial buffer length, 0 gives DefaultCapacity
//   - logger is an optional logger, if nil nothing is logged
//
// It returns:
//   - array which is a pointer to the created instance
//   - err which is a standard Go type of error
func NewArray[K cmp.Ordered, V any](capacity int64, logger hclog.Logger) (array *Array[K, V], err error) {
	if capacity < 0 {
		err = fmt.Errorf("capacity must be a positive value or 0 (zero) for default")
		return
	}
	if capacity == 0 {
		capacity = DefaultCapacity
	}

	array = &Array[K, V]{
		data:   make([]engine.Entry[K, V], capacity),
		logger: storage.Logger(logger, engine.SortedArray),
	}

	return
}

// Engine - Returns engine.SortedArray
func (A *Array[K, V]) Engine() int {
	return engine.SortedArray
}

// Insert - Adds key with value to the array, or replaces the value if key is already present.
// A new key shifts every greater entry one slot to the right, doubling the buffer first if it is full.
//   - key is the identifier of the entry
//   - value is the value to store
//
// It returns:
//   - previous is the value that was replaced, the zero value if key was new
//   - replaced is true if key was already present
func (A *Array[K, V]) Insert(key K, value V) (previous V, replaced bool) {
	if i := A.searchIndex(key); i != notFound {
		previous = A.data[i].SetValue(value)
		replaced = true
		return
	}

	if A.size == len(A.data) {
		A.grow()
	}

	j := A.size - 1
	for ; j >= 0 && cmp.Less(key, A.data[j].Key()); j-- {
		A.data[j+1] = A.data[j]
	}
	A.data[j+1] = engine.NewEntry(key, value)
	A.size++
	A.modCount++

	storage.IncrCounter(engine.SortedArray, "insert")
	storage.SetEntriesGauge(engine.SortedArray, A.size)

	return
}

// Search - Returns the value stored for key using binary search.
//   - key is the identifier of the entry
//
// It returns:
//   - value is the value of the matching entry if found
//   - err is of type engine.NoEntryFound if key is not present
func (A *Array[K, V]) Search(key K) (value V, err error) {
	i := A.searchIndex(key)
	if i == notFound {
		err = engine.NoEntryFound{}
		return
	}

	value = A.data[i].Value()
	return
}

// Remove - Removes key from the array and returns its value, every following entry is shifted one slot left.
//   - key is the identifier of the entry
//
// It returns:
//   - value is the value of the removed entry
//   - err is of type engine.NoEntryFound if key is not present, the array is then left untouched
func (A *Array[K, V]) Remove(key K) (value V, err error) {
	i := A.searchIndex(key)
	if i == notFound {
		err = engine.NoEntryFound{}
		return
	}

	value = A.data[i].Value()
	copy(A.data[i:A.size-1], A.data[i+1:A.size])
	A.size--
	A.data[A.size] = engine.Entry[K, V]{}
	A.modCount++

	storage.IncrCounter(engine.SortedArray, "remove")
	storage.SetEntriesGauge(engine.SortedArray, A.size)

	return
}

// Size - Returns the number of entries in the array
func (A *Array[K, V]) Size() int {
	return A.size
}

// Capacity - Returns the physical length of the buffer
func (A *Array[K, V]) Capacity() int {
	return len(A.data)
}

// Iterator - Returns an iterator traversing the entries in index, and thereby ascending key, order
func (A *Array[K, V]) Iterator() engine.Iterator[K, V] {
	return newIterator(A)
}

// Stat - Returns statistics on the array
func (A *Array[K, V]) Stat() engine.Stat {
	return engine.Stat{
		Engine:        engine.SortedArray,
		Entries:       A.size,
		Capacity:      len(A.data),
		Modifications: A.modCount,
	}
}

// Dump - Prints the buffer dimensions followed by one line per used index
func (A *Array[K, V]) Dump(w io.Writer) (err error) {
	_, err = fmt.Fprintf(w, "capacity=%d entries=%d\n", len(A.data), A.size)
	if err != nil {
		return
	}

	for i := 0; i < A.size; i++ {
		if _, err = fmt.Fprintf(w, "[%d] %v=%v\n", i, A.data[i].Key(), A.data[i].Value()); err != nil {
			return
		}
	}

	return
}

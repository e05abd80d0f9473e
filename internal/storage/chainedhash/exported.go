package chainedhash

import (
	"cmp"
	"fmt"
	"io"

	"github.com/gostonefire/dictionary/engine"
	"github.com/gostonefire/dictionary/hashfunc"
	"github.com/gostonefire/dictionary/internal/hash"
	"github.com/gostonefire/dictionary/internal/storage"
	"github.com/hashicorp/go-hclog"
)

// DefaultCapacity - Number of buckets used when no initial capacity is given
const DefaultCapacity int64 = 7

// LoadFactor - The table grows before a new key is added when size >= capacity * LoadFactor
const LoadFactor int64 = 2

// Table - Represents the chained hash implementation of a dictionary. Each bucket is a doubly linked chain
// of entries, the bucket of a key is given by the hash algorithm. When the load factor is reached the table
// grows into the smallest prime not less than twice the current number of buckets and all entries are rehashed.
type Table[K cmp.Ordered, V any] struct {
	buckets           []chain[K, V]
	size              int
	modCount          int64
	hashAlgorithm     hashfunc.HashAlgorithm[K]
	internalAlgorithm bool
	logger            hclog.Logger
}

// NewTable - Returns a pointer to a new empty chained hash table.
//   - capacity is the initial number of buckets, 0 gives DefaultCapacity
//   - hashAlgorithm is an optional custom bucket selection algorithm, if nil the internal algorithm is used
//   - logger is an optional logger, if nil nothing is logged
//
// It returns:
//   - table which is a pointer to the created instance
//   - err which is a standard Go type of error
func NewTable[K cmp.Ordered, V any](capacity int64, hashAlgorithm hashfunc.HashAlgorithm[K], logger hclog.Logger) (table *Table[K, V], err error) {
	if capacity < 0 {
		err = fmt.Errorf("capacity must be a positive value or 0 (zero) for default")
		return
	}
	if capacity == 0 {
		capacity = DefaultCapacity
	}

	// If no HashAlgorithm was given then use the default internal
	var internalAlg bool
	if hashAlgorithm == nil {
		hashAlgorithm = hash.NewSeparateChainingHashAlgorithm[K](capacity)
		internalAlg = true
	} else {
		hashAlgorithm.SetTableSize(capacity)
	}

	tableSize := hashAlgorithm.GetTableSize()
	if tableSize < 1 {
		err = fmt.Errorf("hash algorithm reports table size %d, must be at least 1", tableSize)
		return
	}

	table = &Table[K, V]{
		buckets:           make([]chain[K, V], tableSize),
		hashAlgorithm:     hashAlgorithm,
		internalAlgorithm: internalAlg,
		logger:            storage.Logger(logger, engine.ChainedHash),
	}

	return
}

// Engine - Returns engine.ChainedHash
func (T *Table[K, V]) Engine() int {
	return engine.ChainedHash
}

// Insert - Adds key with value to the table, or replaces the value if key is already present.
// A new key may first make the table grow and rehash all existing entries.
//   - key is the identifier of the entry
//   - value is the value to store
//
// It returns:
//   - previous is the value that was replaced, the zero value if key was new
//   - replaced is true if key was already present
func (T *Table[K, V]) Insert(key K, value V) (previous V, replaced bool) {
	bucketNo := T.getBucketNo(key)
	if l := T.buckets[bucketNo].find(key); l != nil {
		previous = l.SetValue(value)
		replaced = true
		return
	}

	if int64(T.size) >= int64(len(T.buckets))*LoadFactor {
		T.grow()
		bucketNo = T.getBucketNo(key)
	}

	T.buckets[bucketNo].push(&link[K, V]{Entry: engine.NewEntry(key, value)})
	T.size++
	T.modCount++

	storage.IncrCounter(engine.ChainedHash, "insert")
	storage.SetEntriesGauge(engine.ChainedHash, T.size)

	return
}

// Search - Returns the value stored for key.
//   - key is the identifier of the entry
//
// It returns:
//   - value is the value of the matching entry if found
//   - err is of type engine.NoEntryFound if key is not present
func (T *Table[K, V]) Search(key K) (value V, err error) {
	l := T.buckets[T.getBucketNo(key)].find(key)
	if l == nil {
		err = engine.NoEntryFound{}
		return
	}

	value = l.Value()
	return
}

// Remove - Removes key from the table and returns its value. The table never shrinks.
//   - key is the identifier of the entry
//
// It returns:
//   - value is the value of the removed entry
//   - err is of type engine.NoEntryFound if key is not present, the table is then left untouched
func (T *Table[K, V]) Remove(key K) (value V, err error) {
	bucket := &T.buckets[T.getBucketNo(key)]
	l := bucket.find(key)
	if l == nil {
		err = engine.NoEntryFound{}
		return
	}

	bucket.unlink(l)
	value = l.Value()
	T.size--
	T.modCount++

	storage.IncrCounter(engine.ChainedHash, "remove")
	storage.SetEntriesGauge(engine.ChainedHash, T.size)

	return
}

// Size - Returns the number of entries in the table
func (T *Table[K, V]) Size() int {
	return T.size
}

// Capacity - Returns the current number of buckets
func (T *Table[K, V]) Capacity() int {
	return len(T.buckets)
}

// InternalAlgorithm - Returns true if the table uses the internal hash algorithm
func (T *Table[K, V]) InternalAlgorithm() bool {
	return T.internalAlgorithm
}

// Iterator - Returns an iterator traversing buckets in index order and each bucket in chain order
func (T *Table[K, V]) Iterator() engine.Iterator[K, V] {
	return newIterator(T)
}

// Stat - Walks through all buckets and returns statistics including the number of entries in each bucket
func (T *Table[K, V]) Stat() engine.Stat {
	distribution := make([]int64, len(T.buckets))
	for i := range T.buckets {
		distribution[i] = int64(T.buckets[i].length)
	}

	return engine.Stat{
		Engine:             engine.ChainedHash,
		Entries:            T.size,
		Capacity:           len(T.buckets),
		Modifications:      T.modCount,
		BucketDistribution: distribution,
	}
}

// Dump - Prints every non-empty bucket as one line with its entries in chain order
func (T *Table[K, V]) Dump(w io.Writer) (err error) {
	_, err = fmt.Fprintf(w, "buckets=%d entries=%d\n", len(T.buckets), T.size)
	if err != nil {
		return
	}

	for i := range T.buckets {
		if T.buckets[i].length == 0 {
			continue
		}
		if _, err = fmt.Fprintf(w, "%d:", i); err != nil {
			return
		}
		for l := T.buckets[i].first; l != nil; l = l.next {
			if _, err = fmt.Fprintf(w, " %v=%v", l.Key(), l.Value()); err != nil {
				return
			}
		}
		if _, err = fmt.Fprintln(w); err != nil {
			return
		}
	}

	return
}

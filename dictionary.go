package dictionary

import (
	"cmp"
	"errors"
	"fmt"
	"io"
	"iter"

	"github.com/gostonefire/dictionary/engine"
	"github.com/gostonefire/dictionary/hashfunc"
	"github.com/gostonefire/dictionary/internal/storage/avltree"
	"github.com/gostonefire/dictionary/internal/storage/chainedhash"
	"github.com/gostonefire/dictionary/internal/storage/sortedarray"
	"github.com/hashicorp/go-hclog"
)

// Storage - Interface for any dictionary engine implementation
type Storage[K cmp.Ordered, V any] interface {
	Engine() int
	Insert(key K, value V) (previous V, replaced bool)
	Search(key K) (value V, err error)
	Remove(key K) (value V, err error)
	Size() int
	Iterator() engine.Iterator[K, V]
	Stat() engine.Stat
	Dump(w io.Writer) error
}

// Assert Storage implementations
var (
	_ Storage[int, int] = (*avltree.Tree[int, int])(nil)
	_ Storage[int, int] = (*chainedhash.Table[int, int])(nil)
	_ Storage[int, int] = (*sortedarray.Array[int, int])(nil)
)

// Dictionary - The main implementation struct, bound to exactly one engine for its whole life
type Dictionary[K cmp.Ordered, V any] struct {
	storage Storage[K, V]
}

// NewDictionary - Returns a new dictionary backed by the engine given in conf.
//   - conf is the configuration, see Config for the meaning and defaults of each field
//
// It returns:
//   - dictionary is a pointer to a Dictionary struct
//   - err is a normal go Error which should be nil if everything went ok, configuration problems are all
//     reported together in one error
func NewDictionary[K cmp.Ordered, V any](conf Config[K]) (dictionary *Dictionary[K, V], err error) {
	if err = conf.Validate(); err != nil {
		return
	}

	var s Storage[K, V]
	switch conf.engine() {
	case engine.AVLTree:
		s = avltree.NewTree[K, V](conf.Logger)
	case engine.ChainedHash:
		s, err = chainedhash.NewTable[K, V](conf.InitialCapacity, conf.HashAlgorithm, conf.Logger)
	case engine.SortedArray:
		s, err = sortedarray.NewArray[K, V](conf.InitialCapacity, conf.Logger)
	}
	if err != nil {
		err = fmt.Errorf("error while creating %s engine: %w", engine.Name(conf.engine()), err)
		return
	}

	if conf.Logger != nil {
		conf.Logger.Debug("created dictionary", "engine", engine.Name(conf.engine()), "initial_capacity", conf.InitialCapacity)
	}

	dictionary = &Dictionary[K, V]{storage: s}
	return
}

// NewAVLTree - Returns a new dictionary backed by an AVL tree
//   - logger is an optional logger, nil disables logging
func NewAVLTree[K cmp.Ordered, V any](logger hclog.Logger) *Dictionary[K, V] {
	return &Dictionary[K, V]{storage: avltree.NewTree[K, V](logger)}
}

// NewChainedHash - Returns a new dictionary backed by a chained hash table
//   - capacity is the initial number of buckets, 0 gives the default of 7
//   - hashAlgorithm is an optional custom bucket selection algorithm
//   - logger is an optional logger, nil disables logging
func NewChainedHash[K cmp.Ordered, V any](capacity int64, hashAlgorithm hashfunc.HashAlgorithm[K], logger hclog.Logger) (*Dictionary[K, V], error) {
	return NewDictionary[K, V](Config[K]{
		Engine:          engine.ChainedHash,
		InitialCapacity: capacity,
		HashAlgorithm:   hashAlgorithm,
		Logger:          logger,
	})
}

// NewSortedArray - Returns a new dictionary backed by a sorted array
//   - capacity is the initial buffer length, 0 gives the default of 16
//   - logger is an optional logger, nil disables logging
func NewSortedArray[K cmp.Ordered, V any](capacity int64, logger hclog.Logger) (*Dictionary[K, V], error) {
	return NewDictionary[K, V](Config[K]{
		Engine:          engine.SortedArray,
		InitialCapacity: capacity,
		Logger:          logger,
	})
}

// Engine - Returns the engine constant the dictionary is bound to
func (D *Dictionary[K, V]) Engine() int {
	return D.storage.Engine()
}

// Insert - Adds key with value, or replaces the value if key is already present.
// Only adding a new key is a structural change; replacing a value leaves running iterators valid.
//   - key is the identifier of the entry
//   - value is the value to store
//
// It returns:
//   - previous is the value that was replaced, the zero value if key was new
//   - replaced is true if key was already present
func (D *Dictionary[K, V]) Insert(key K, value V) (previous V, replaced bool) {
	return D.storage.Insert(key, value)
}

// Search - Returns the value stored for key.
//   - key is the identifier of the entry
//
// It returns:
//   - value is the value of the matching entry if found
//   - err is of type engine.NoEntryFound if key is not present
func (D *Dictionary[K, V]) Search(key K) (value V, err error) {
	return D.storage.Search(key)
}

// Contains - Returns true if key is present
func (D *Dictionary[K, V]) Contains(key K) bool {
	_, err := D.storage.Search(key)
	return err == nil
}

// Remove - Removes key and returns its value.
//   - key is the identifier of the entry
//
// It returns:
//   - value is the value of the removed entry
//   - err is of type engine.NoEntryFound if key is not present, nothing is changed then
func (D *Dictionary[K, V]) Remove(key K) (value V, err error) {
	return D.storage.Remove(key)
}

// Size - Returns the number of distinct keys
func (D *Dictionary[K, V]) Size() int {
	return D.storage.Size()
}

// Iterator - Returns a new iterator over all entries. The AVL tree and sorted array engines traverse in ascending
// key order, the chained hash engine in bucket order. Every call gives an independent iterator.
func (D *Dictionary[K, V]) Iterator() engine.Iterator[K, V] {
	return D.storage.Iterator()
}

// All - Returns a range-over-func sequence of all entries in iterator order. If the dictionary is structurally
// changed during the traversal, a final pair with a nil entry and an error of type engine.ConcurrentModification
// is yielded and the sequence ends.
func (D *Dictionary[K, V]) All() iter.Seq2[*engine.Entry[K, V], error] {
	return func(yield func(*engine.Entry[K, V], error) bool) {
		it := D.storage.Iterator()
		for {
			entry, err := it.Next()
			if errors.Is(err, engine.NoEntryFound{}) {
				return
			}
			if err != nil {
				yield(nil, err)
				return
			}
			if !yield(entry, nil) {
				return
			}
		}
	}
}

// Stat - Returns statistics on the dictionary storage
func (D *Dictionary[K, V]) Stat() engine.Stat {
	return D.storage.Stat()
}

// Dump - Writes a debug representation of the storage structure to w
func (D *Dictionary[K, V]) Dump(w io.Writer) error {
	return D.storage.Dump(w)
}

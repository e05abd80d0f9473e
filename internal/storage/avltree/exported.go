package avltree

import (
	"cmp"
	"io"

	"github.com/gostonefire/dictionary/engine"
	"github.com/gostonefire/dictionary/internal/storage"
	"github.com/hashicorp/go-hclog"
)

// Tree - Represents the AVL tree implementation of a dictionary. Nodes keep a back link to their parent
// so an in-order traversal can be done without any auxiliary stack.
type Tree[K cmp.Ordered, V any] struct {
	root     *node[K, V]
	size     int
	modCount int64
	logger   hclog.Logger
}

// node - One tree node, the embedded Entry is what callers get a view of
type node[K cmp.Ordered, V any] struct {
	engine.Entry[K, V]
	height int
	left   *node[K, V]
	right  *node[K, V]
	parent *node[K, V]
}

// NewTree - Returns a pointer to a new empty AVL tree
//   - logger is an optional logger, if nil nothing is logged
func NewTree[K cmp.Ordered, V any](logger hclog.Logger) *Tree[K, V] {
	return &Tree[K, V]{logger: storage.Logger(logger, engine.AVLTree)}
}

// Engine - Returns engine.AVLTree
func (T *Tree[K, V]) Engine() int {
	return engine.AVLTree
}

// Insert - Adds key with value to the tree, or replaces the value if key is already present.
//   - key is the identifier of the entry
//   - value is the value to store
//
// It returns:
//   - previous is the value that was replaced, the zero value if key was new
//   - replaced is true if key was already present
func (T *Tree[K, V]) Insert(key K, value V) (previous V, replaced bool) {
	T.root, previous, replaced = T.insertR(key, value, T.root)
	T.root.parent = nil

	if !replaced {
		T.modCount++
		storage.IncrCounter(engine.AVLTree, "insert")
		storage.SetEntriesGauge(engine.AVLTree, T.size)
	}

	return
}

// Search - Returns the value stored for key.
//   - key is the identifier of the entry
//
// It returns:
//   - value is the value of the matching entry if found
//   - err is of type engine.NoEntryFound if key is not present
func (T *Tree[K, V]) Search(key K) (value V, err error) {
	p := T.searchR(key, T.root)
	if p == nil {
		err = engine.NoEntryFound{}
		return
	}

	value = p.Value()
	return
}

// Remove - Removes key from the tree and returns its value.
//   - key is the identifier of the entry
//
// It returns:
//   - value is the value of the removed entry
//   - err is of type engine.NoEntryFound if key is not present, the tree is then left untouched
func (T *Tree[K, V]) Remove(key K) (value V, err error) {
	var found bool
	T.root, value, found = T.removeR(key, T.root)
	if T.root != nil {
		T.root.parent = nil
	}

	if !found {
		err = engine.NoEntryFound{}
		return
	}

	T.modCount++
	storage.IncrCounter(engine.AVLTree, "remove")
	storage.SetEntriesGauge(engine.AVLTree, T.size)

	return
}

// Size - Returns the number of entries in the tree
func (T *Tree[K, V]) Size() int {
	return T.size
}

// Height - Returns the height of the tree, -1 if empty
func (T *Tree[K, V]) Height() int {
	return height(T.root)
}

// Iterator - Returns an iterator traversing the entries in ascending key order
func (T *Tree[K, V]) Iterator() engine.Iterator[K, V] {
	return newIterator(T)
}

// Stat - Returns statistics on the tree
func (T *Tree[K, V]) Stat() engine.Stat {
	return engine.Stat{
		Engine:        engine.AVLTree,
		Entries:       T.size,
		Capacity:      T.size,
		Modifications: T.modCount,
		Height:        T.Height(),
	}
}

// Dump - Pretty prints the tree structure to w, one node per line with key, value, height and parent key.
// Empty children of an inner node are printed as #.
func (T *Tree[K, V]) Dump(w io.Writer) error {
	return dumpR(w, 0, T.root)
}

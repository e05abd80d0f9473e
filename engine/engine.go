package engine

import (
	"fmt"
	"strings"
)

// AVLTree - Height balanced binary search tree, ascending key order, O(log n) operations
const AVLTree int = 1

// ChainedHash - Chained hash table growing into prime sized bucket arrays, amortized O(1) operations
const ChainedHash int = 2

// SortedArray - Capacity doubling array kept sorted by key, O(log n) search and O(n) insert/remove
const SortedArray int = 3

// names - Canonical names followed by accepted aliases for each engine
var names = map[int][]string{
	AVLTree:     {"avltree", "binarytree", "tree"},
	ChainedHash: {"chainedhash", "hashdictionary", "hash"},
	SortedArray: {"sortedarray", "sortedarraydictionary", "array"},
}

// Name - Returns the canonical name of the given engine, or an empty string if the engine is unknown
func Name(engine int) string {
	if n, ok := names[engine]; ok {
		return n[0]
	}
	return ""
}

// Parse - Returns the engine constant matching name. Matching is case-insensitive and accepts
// a few aliases (e.g. "BinaryTree" and "HashDictionary").
//   - name is the engine name to look up
//
// It returns:
//   - engine is one of AVLTree, ChainedHash or SortedArray
//   - err is of type UnknownEngine if no engine matches name
func Parse(name string) (engine int, err error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for e, aliases := range names {
		for _, alias := range aliases {
			if alias == n {
				engine = e
				return
			}
		}
	}

	err = UnknownEngine{msg: fmt.Sprintf("unknown engine %q", name)}
	return
}

// IsValid - Returns true if engine is one of the known engine constants
func IsValid(engine int) bool {
	_, ok := names[engine]
	return ok
}

package chainedhash

import (
	"cmp"

	"github.com/gostonefire/dictionary/engine"
)

// link - One element of a bucket chain, the embedded Entry is what callers get a view of
type link[K cmp.Ordered, V any] struct {
	engine.Entry[K, V]
	prev *link[K, V]
	next *link[K, V]
}

// chain - A doubly linked list of links holding all entries of one bucket. The zero value is an empty chain.
type chain[K cmp.Ordered, V any] struct {
	first  *link[K, V]
	last   *link[K, V]
	length int
}

// find - Returns the link holding key, nil if key is not in the chain
func (C *chain[K, V]) find(key K) *link[K, V] {
	for l := C.first; l != nil; l = l.next {
		if cmp.Compare(l.Key(), key) == 0 {
			return l
		}
	}
	return nil
}

// push - Appends l at the end of the chain
func (C *chain[K, V]) push(l *link[K, V]) {
	l.next = nil
	l.prev = C.last
	if C.last == nil {
		C.first = l
	} else {
		C.last.next = l
	}
	C.last = l
	C.length++
}

// unlink - Splices l out of the chain, l must belong to the chain
func (C *chain[K, V]) unlink(l *link[K, V]) {
	if l.prev == nil {
		C.first = l.next
	} else {
		l.prev.next = l.next
	}
	if l.next == nil {
		C.last = l.prev
	} else {
		l.next.prev = l.prev
	}
	l.prev, l.next = nil, nil
	C.length--
}

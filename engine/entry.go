package engine

// Entry - A key/value pair owned by a dictionary engine. The key is fixed at creation, the value
// may be replaced in place. Pointers to an Entry handed out by Search, Iterator or All are views
// into engine storage and are only valid until the next structural change of the dictionary.
type Entry[K any, V any] struct {
	key   K
	value V
}

// NewEntry - Returns a new Entry holding key and value
func NewEntry[K any, V any](key K, value V) Entry[K, V] {
	return Entry[K, V]{key: key, value: value}
}

// Key - Returns the key of the entry
func (E *Entry[K, V]) Key() K {
	return E.key
}

// Value - Returns the current value of the entry
func (E *Entry[K, V]) Value() V {
	return E.value
}

// SetValue - Replaces the value of the entry and returns the value it held before
func (E *Entry[K, V]) SetValue(value V) (previous V) {
	previous = E.value
	E.value = value
	return
}

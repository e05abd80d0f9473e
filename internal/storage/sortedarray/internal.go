package sortedarray

import (
	"cmp"

	"github.com/gostonefire/dictionary/engine"
	"github.com/gostonefire/dictionary/internal/storage"
)

// searchIndex - Returns the index of key in data[0:size], or notFound
func (A *Array[K, V]) searchIndex(key K) int {
	i, err := A.binarySearch(key)
	if err != nil {
		return notFound
	}
	return i
}

// binarySearch - Returns the index of key in data[0:size].
// It returns an error of type engine.EmptyContainer when there is nothing to search and of type
// engine.NoEntryFound if key is not present.
func (A *Array[K, V]) binarySearch(key K) (index int, err error) {
	if A.size == 0 {
		err = engine.EmptyContainer{}
		return
	}

	li, re := 0, A.size-1
	for li <= re {
		m := int(uint(li+re) >> 1)
		switch c := cmp.Compare(key, A.data[m].Key()); {
		case c == 0:
			index = m
			return
		case c < 0:
			re = m - 1
		default:
			li = m + 1
		}
	}

	err = engine.NoEntryFound{}
	return
}

// grow - Doubles the buffer length, keeping the entries in place
func (A *Array[K, V]) grow() {
	newCapacity := 2 * len(A.data)
	if newCapacity == 0 {
		newCapacity = 1
	}

	data := make([]engine.Entry[K, V], newCapacity)
	copy(data, A.data[:A.size])
	A.data = data

	A.logger.Debug("doubled buffer", "capacity", newCapacity, "entries", A.size)
	storage.IncrCounter(engine.SortedArray, "grow")
}

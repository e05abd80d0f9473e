package hash

import (
	"cmp"
	"hash/crc32"
	"math"
)

// SeparateChainingHashAlgorithm - The internally used bucket selection algorithm. Strings are hashed using
// crc32.ChecksumIEEE, integers by their absolute value and floats by their IEEE 754 bits, and the hash value is
// then reduced with bucket = hash % tableSize.
type SeparateChainingHashAlgorithm[K cmp.Ordered] struct {
	tableSize int64
}

// NewSeparateChainingHashAlgorithm - Returns a pointer to a new SeparateChainingHashAlgorithm instance
func NewSeparateChainingHashAlgorithm[K cmp.Ordered](tableSize int64) *SeparateChainingHashAlgorithm[K] {
	ha := &SeparateChainingHashAlgorithm[K]{}
	ha.SetTableSize(tableSize)
	return ha
}

// SetTableSize - Sets the table size for the hash algorithm.
// The table size is used as is, the chained hash engine only ever asks for prime sizes.
//   - tableSize is the number of buckets the table will address
func (S *SeparateChainingHashAlgorithm[K]) SetTableSize(tableSize int64) {
	if tableSize < 1 {
		tableSize = 1
	}
	S.tableSize = tableSize
}

// HashFunc1 - Given key it generates an index (bucket) between 0 and table size - 1
func (S *SeparateChainingHashAlgorithm[K]) HashFunc1(key K) int64 {
	return int64(Sum(key) % uint64(S.tableSize))
}

// GetTableSize - Returns the table size the implemented hash functions are supporting
func (S *SeparateChainingHashAlgorithm[K]) GetTableSize() int64 {
	return S.tableSize
}

// Sum - Returns a deterministic non-negative hash value derived from the contents of key
func Sum[K cmp.Ordered](key K) uint64 {
	switch k := any(key).(type) {
	case string:
		return uint64(crc32.ChecksumIEEE([]byte(k)))
	case int:
		return abs(int64(k))
	case int8:
		return abs(int64(k))
	case int16:
		return abs(int64(k))
	case int32:
		return abs(int64(k))
	case int64:
		return abs(k)
	case uint:
		return uint64(k)
	case uint8:
		return uint64(k)
	case uint16:
		return uint64(k)
	case uint32:
		return uint64(k)
	case uint64:
		return k
	case uintptr:
		return uint64(k)
	case float32:
		return floatBits(float64(k))
	case float64:
		return floatBits(k)
	}

	// Named types with an ordered underlying type end up here
	return sumReflected(key)
}

// abs - Returns the absolute value of v, math.MinInt64 is mapped to its unsigned bit pattern
func abs(v int64) uint64 {
	if v < 0 {
		return uint64(-v)
	}
	return uint64(v)
}

// floatBits - Returns the bits of f with negative zero folded onto positive zero so equal keys hash equal
func floatBits(f float64) uint64 {
	if f == 0 {
		return 0
	}
	return math.Float64bits(f)
}

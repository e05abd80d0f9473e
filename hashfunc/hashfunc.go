package hashfunc

// HashAlgorithm - Interface that permits a caller of the chained hash engine to supply a custom bucket
// selection algorithm suited for its particular distribution of keys.
type HashAlgorithm[K any] interface {
	// SetTableSize - Sets the table size for the hash algorithm.
	// It is called both when the engine is created and every time the bucket table grows. The engine always
	// passes a prime number, if the implementation rounds it to something else it must be reflected by GetTableSize.
	//   - tableSize is the number of buckets the table will address
	SetTableSize(tableSize int64)

	// HashFunc1 - Given key it generates an index (bucket) between 0 and table size - 1.
	// It must be deterministic, the same key must always give the same bucket for a given table size.
	// Any number returned outside the table size (0 -> table size - 1) is folded back into range by the engine.
	HashFunc1(key K) int64

	// GetTableSize - Returns the table size the implemented hash function is supporting.
	GetTableSize() int64
}

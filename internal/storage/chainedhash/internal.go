package chainedhash

import (
	"fmt"

	"github.com/gostonefire/dictionary/engine"
	"github.com/gostonefire/dictionary/internal/storage"
	"github.com/gostonefire/dictionary/internal/utils"
)

// getBucketNo - Returns which bucket number the given key results in. A custom hash algorithm returning a number
// outside the table is folded back into range.
func (T *Table[K, V]) getBucketNo(key K) int64 {
	bucketNo, err := T.checkBucketNo(T.hashAlgorithm.HashFunc1(key))
	if err != nil {
		T.logger.Warn("hash algorithm returned bucket outside table, folding into range", "error", err)
		tableSize := int64(len(T.buckets))
		bucketNo %= tableSize
		if bucketNo < 0 {
			bucketNo += tableSize
		}
	}

	return bucketNo
}

// checkBucketNo - Returns an error of type engine.InvalidIndex if bucketNo is outside the bucket table
func (T *Table[K, V]) checkBucketNo(bucketNo int64) (int64, error) {
	if bucketNo < 0 || bucketNo >= int64(len(T.buckets)) {
		return bucketNo, engine.NewInvalidIndex(fmt.Sprintf("bucket number %d outside table size %d", bucketNo, len(T.buckets)))
	}
	return bucketNo, nil
}

// grow - Replaces the bucket table with one sized to the smallest prime not less than twice the current size,
// and relinks every existing entry into the bucket its key hashes to in the new table.
func (T *Table[K, V]) grow() {
	oldSize := int64(len(T.buckets))
	T.hashAlgorithm.SetTableSize(utils.GrowPrime(oldSize))
	newSize := T.hashAlgorithm.GetTableSize()
	if newSize <= oldSize {
		// A custom algorithm refusing to grow leaves the table as is, chains just get longer
		T.logger.Warn("hash algorithm did not accept a larger table size", "current", oldSize, "reported", newSize)
		T.hashAlgorithm.SetTableSize(oldSize)
		return
	}

	old := T.buckets
	T.buckets = make([]chain[K, V], newSize)
	for i := range old {
		l := old[i].first
		for l != nil {
			next := l.next
			T.buckets[T.getBucketNo(l.Key())].push(l)
			l = next
		}
	}

	T.logger.Debug("grew bucket table", "from", oldSize, "to", newSize, "entries", T.size)
	storage.IncrCounter(engine.ChainedHash, "grow")
}

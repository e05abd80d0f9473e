package engine

// Iterator - Is used to traverse the entries of a dictionary one by one.
// An Iterator remembers the modification count of its dictionary at creation and fails with
// ConcurrentModification if the dictionary is structurally changed before the traversal is done.
type Iterator[K any, V any] interface {
	// HasNext - Returns true if there are more entries to be fetched from a call to Next.
	HasNext() bool

	// Next - Returns the next entry.
	// It returns:
	//   - entry is a view of the next entry, valid until the next structural change
	//   - err is of type ConcurrentModification if the dictionary was changed since the iterator was created,
	//     or of type NoEntryFound if there are no more entries
	Next() (entry *Entry[K, V], err error)
}

// Stat - Statistics on the usage of a dictionary engine
//   - Engine is the engine constant
//   - Entries is the number of distinct keys stored
//   - Capacity is the number of buckets (chained hash), the physical buffer length (sorted array) or the number of nodes (avl tree)
//   - Modifications is the current modification counter
//   - Height is the height of the tree, -1 for an empty tree and 0 for the other engines
//   - BucketDistribution is the number of entries per bucket, only set by the chained hash engine
type Stat struct {
	Engine             int
	Entries            int
	Capacity           int
	Modifications      int64
	Height             int
	BucketDistribution []int64
}

package engine

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	t.Run("parses names and aliases", func(t *testing.T) {
		// Prepare
		tests := map[string]int{
			"avltree":        AVLTree,
			" BinaryTree ":   AVLTree,
			"CHAINEDHASH":    ChainedHash,
			"HashDictionary": ChainedHash,
			"sortedArray":    SortedArray,
			"array":          SortedArray,
		}

		for name, expected := range tests {
			// Execute
			e, err := Parse(name)

			// Check
			assert.NoError(t, err, "parses %q", name)
			assert.Equal(t, expected, e, "engine for %q", name)
		}
	})

	t.Run("error on unknown name", func(t *testing.T) {
		// Execute
		_, err := Parse("skiplist")

		// Check
		assert.True(t, errors.Is(err, UnknownEngine{}), "correct error type")
		assert.Equal(t, `unknown engine "skiplist"`, err.Error(), "message names input")
	})
}

func TestName(t *testing.T) {
	t.Run("returns canonical names", func(t *testing.T) {
		// Check
		assert.Equal(t, "avltree", Name(AVLTree))
		assert.Equal(t, "chainedhash", Name(ChainedHash))
		assert.Equal(t, "sortedarray", Name(SortedArray))
		assert.Equal(t, "", Name(0))
		assert.True(t, IsValid(ChainedHash))
		assert.False(t, IsValid(4))
	})
}

func TestEntry(t *testing.T) {
	t.Run("set value returns previous", func(t *testing.T) {
		// Prepare
		e := NewEntry("Haus", "house")

		// Execute
		previous := e.SetValue("home")

		// Check
		assert.Equal(t, "house", previous, "previous value")
		assert.Equal(t, "home", e.Value(), "new value")
		assert.Equal(t, "Haus", e.Key(), "key unchanged")
	})
}

func TestErrors(t *testing.T) {
	t.Run("errors match by type through wrapping", func(t *testing.T) {
		// Prepare
		tests := []struct {
			err    error
			target error
			msg    string
		}{
			{err: NoEntryFound{}, target: NoEntryFound{}, msg: "no entry found"},
			{err: ConcurrentModification{}, target: ConcurrentModification{}, msg: "concurrent modification"},
			{err: NewInvalidIndex("bucket 9"), target: InvalidIndex{}, msg: "bucket 9"},
			{err: EmptyContainer{}, target: EmptyContainer{}, msg: "empty container"},
			{err: UnknownEngine{}, target: UnknownEngine{}, msg: "unknown engine"},
		}

		for _, test := range tests {
			// Execute
			wrapped := fmt.Errorf("wrapped: %w", test.err)

			// Check
			assert.True(t, errors.Is(wrapped, test.target), "matches %T", test.target)
			assert.False(t, errors.Is(wrapped, errors.New(test.msg)), "does not match other errors")
			assert.Equal(t, test.msg, test.err.Error(), "message")
		}
	})
}

package dictionary

import (
	"errors"
	"testing"

	"github.com/gostonefire/dictionary/engine"
	"github.com/gostonefire/dictionary/internal/hash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	t.Run("accepts valid configurations", func(t *testing.T) {
		// Prepare
		configs := []Config[int]{
			{},
			{Engine: engine.AVLTree},
			{Engine: engine.ChainedHash, InitialCapacity: 11, HashAlgorithm: hash.NewSeparateChainingHashAlgorithm[int](11)},
			{Engine: engine.SortedArray, InitialCapacity: 32},
		}

		// Execute and Check
		for _, conf := range configs {
			assert.NoError(t, conf.Validate(), "valid configuration %+v", conf)
		}
	})

	t.Run("reports every problem", func(t *testing.T) {
		// Prepare
		conf := Config[int]{
			Engine:          engine.AVLTree,
			InitialCapacity: 10,
			HashAlgorithm:   hash.NewSeparateChainingHashAlgorithm[int](7),
		}

		// Execute
		err := conf.Validate()

		// Check
		require.Error(t, err)
		assert.Contains(t, err.Error(), "initial capacity is not supported", "capacity problem")
		assert.Contains(t, err.Error(), "hash algorithm can only be used", "hash algorithm problem")
		assert.Contains(t, err.Error(), "2 errors occurred", "both reported")
	})

	t.Run("rejects unknown engine", func(t *testing.T) {
		// Execute
		err := Config[string]{Engine: 9}.Validate()

		// Check
		assert.True(t, errors.Is(err, engine.UnknownEngine{}), "correct error type")
	})
}

func TestDecodeConfig(t *testing.T) {
	t.Run("decodes engine by name", func(t *testing.T) {
		// Prepare
		tests := map[string]int{
			"avltree":               engine.AVLTree,
			"BinaryTree":            engine.AVLTree,
			"ChainedHash":           engine.ChainedHash,
			"HashDictionary":        engine.ChainedHash,
			"sortedarray":           engine.SortedArray,
			"SortedArrayDictionary": engine.SortedArray,
		}

		for name, expected := range tests {
			// Execute
			conf, err := DecodeConfig[string](map[string]interface{}{"engine": name})

			// Check
			assert.NoError(t, err, "decodes %s", name)
			assert.Equal(t, expected, conf.Engine, "engine for %s", name)
		}
	})

	t.Run("decodes numbers given as strings", func(t *testing.T) {
		// Execute
		conf, err := DecodeConfig[int](map[string]interface{}{"engine": "2", "initial_capacity": "13"})

		// Check
		assert.NoError(t, err, "decodes config")
		assert.Equal(t, engine.ChainedHash, conf.Engine, "engine")
		assert.Equal(t, int64(13), conf.InitialCapacity, "initial capacity")

		dict, err := NewDictionary[int, int](conf)
		require.NoError(t, err, "create new dictionary")
		assert.Equal(t, 13, dict.Stat().Capacity, "capacity used")
	})

	t.Run("error on unknown engine name", func(t *testing.T) {
		// Execute
		_, err := DecodeConfig[int](map[string]interface{}{"engine": "skiplist"})

		// Check
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "skiplist", "name reported")
	})

	t.Run("error on unknown key", func(t *testing.T) {
		// Execute
		_, err := DecodeConfig[int](map[string]interface{}{"engine": "avltree", "load_factor": 3})

		// Check
		assert.Error(t, err)
	})
}

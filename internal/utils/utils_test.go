package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPrime(t *testing.T) {
	t.Run("recognises primes", func(t *testing.T) {
		// Prepare
		primes := []int64{2, 3, 5, 7, 11, 13, 17, 29, 31, 59, 97, 101, 7919, 104729}

		// Execute and Check
		for _, p := range primes {
			assert.True(t, IsPrime(p), "%d is prime", p)
		}
	})

	t.Run("rejects non primes", func(t *testing.T) {
		// Prepare
		composites := []int64{-7, 0, 1, 4, 9, 15, 25, 49, 91, 121, 7917, 104730}

		// Execute and Check
		for _, c := range composites {
			assert.False(t, IsPrime(c), "%d is not prime", c)
		}
	})
}

func TestNextPrime(t *testing.T) {
	t.Run("finds smallest prime not less than input", func(t *testing.T) {
		// Prepare
		input := []int64{-3, 0, 2, 3, 4, 8, 14, 17, 34, 58, 90, 118}
		next := []int64{2, 2, 2, 3, 5, 11, 17, 17, 37, 59, 97, 127}

		// Execute and Check
		for i := 0; i < len(input); i++ {
			assert.Equal(t, next[i], NextPrime(input[i]), "next prime of %d", input[i])
		}
	})
}

func TestGrowPrime(t *testing.T) {
	t.Run("grows default hash capacity through primes", func(t *testing.T) {
		// Prepare
		sizes := []int64{7}

		// Execute
		for i := 0; i < 4; i++ {
			sizes = append(sizes, GrowPrime(sizes[len(sizes)-1]))
		}

		// Check
		assert.Equal(t, []int64{7, 17, 37, 79, 163}, sizes, "prime growth sequence")
	})
}

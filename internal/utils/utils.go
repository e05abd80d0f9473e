package utils

// IsPrime - Returns true if n is a prime number
func IsPrime(n int64) bool {
	if n < 2 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}
	if n%3 == 0 {
		return n == 3
	}

	for i := int64(5); i*i <= n; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}

	return true
}

// NextPrime - Returns the smallest prime number not less than n
func NextPrime(n int64) int64 {
	if n <= 2 {
		return 2
	}
	if n%2 == 0 {
		n++
	}
	for !IsPrime(n) {
		n += 2
	}

	return n
}

// GrowPrime - Returns the table size to grow into from currentSize, the smallest prime not less than twice the current size
func GrowPrime(currentSize int64) int64 {
	return NextPrime(2 * currentSize)
}

package utils

// IsPrime - Returns true if n is a prime number
func IsPrime(n int64) bool {
	if n < 2 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}
	for d := int64(3); d*d <= n; d += 2 {
		if n%d == 0 {
			return false
		}
	}

	return true
}

// RoundUpPrime - Returns the smallest prime number that is equal to or bigger than n.
// Values below 2 are rounded up to 2.
func RoundUpPrime(n int64) int64 {
	if n <= 2 {
		return 2
	}
	for !IsPrime(n) {
		n++
	}

	return n
}

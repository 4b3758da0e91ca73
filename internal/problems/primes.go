package problems

// isPrime reports whether n is a prime number.
// Negative numbers, 0 and 1 are not prime.
func isPrime(n int64) bool {
	switch {
	case n < 2:
		return false
	case n < 4:
		return true
	case n%2 == 0 || n%3 == 0:
		return false
	}
	for f := int64(5); f*f <= n; f += 6 {
		if n%f == 0 || n%(f+2) == 0 {
			return false
		}
	}
	return true
}

package problems

import (
	"context"
	"strconv"
)

func init() {
	register(Problem{
		ID:    "p0003",
		Title: "Largest prime factor of 600851475143",
		Solve: solveLargestPrimeFactor,
	})
}

func solveLargestPrimeFactor(_ context.Context, _ *Env) (string, error) {
	return strconv.FormatUint(largestPrimeFactor(600_851_475_143), 10), nil
}

// largestPrimeFactor returns the largest prime factor of n.
// For n < 2 it returns n.
func largestPrimeFactor(n uint64) uint64 {
	largest := n
	for f := uint64(2); f*f <= n; f++ {
		for n%f == 0 {
			largest = f
			n /= f
		}
	}
	if n > 1 {
		largest = n
	}
	return largest
}

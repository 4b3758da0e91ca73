package problems

import (
	"context"
	"strconv"
)

func init() {
	register(Problem{
		ID:    "p0027",
		Title: "Quadratic with the longest run of consecutive primes",
		Solve: solveQuadraticPrimes,
	})
}

func solveQuadraticPrimes(ctx context.Context, _ *Env) (string, error) {
	const limit = 1000 // |a| < limit, |b| <= limit

	var (
		bestA, bestB int64
		bestLength   = -1
	)
	for a := -limit + 1; a < limit; a++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		for b := -limit; b <= limit; b++ {
			n := consecutivePrimes(int64(a), int64(b))
			if n > bestLength {
				bestLength, bestA, bestB = n, int64(a), int64(b)
			}
		}
	}
	return strconv.FormatInt(bestA*bestB, 10), nil
}

// consecutivePrimes counts the primes produced by n^2 + a*n + b
// for consecutive values of n starting with 0.
func consecutivePrimes(a, b int64) int {
	n := int64(0)
	for isPrime(n*n + a*n + b) {
		n++
	}
	return int(n)
}

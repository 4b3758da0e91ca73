package problems

import (
	"context"
	"strconv"
)

func init() {
	register(Problem{
		ID:    "p0002",
		Title: "Sum of even Fibonacci numbers below four million",
		Solve: solveEvenFibonacci,
	})
}

func solveEvenFibonacci(_ context.Context, _ *Env) (string, error) {
	const limit = 4_000_000

	var prev, cur, sum uint64 = 0, 1, 0
	for cur < limit {
		if cur%2 == 0 {
			sum += cur
		}
		prev, cur = cur, prev+cur
	}
	return strconv.FormatUint(sum, 10), nil
}

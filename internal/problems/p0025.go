package problems

import (
	"context"
	"strconv"

	"github.com/govalues/bignum"
)

func init() {
	register(Problem{
		ID:    "p0025",
		Title: "Index of the first 1000-digit Fibonacci number",
		Solve: solveLongFibonacci,
	})
}

func solveLongFibonacci(ctx context.Context, _ *Env) (string, error) {
	i, err := fibonacciIndex(ctx, 1000)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(i), nil
}

// fibonacciIndex returns the index of the first Fibonacci number with the
// given number of digits, where F(1) = F(2) = 1.
func fibonacciIndex(ctx context.Context, digits int) (int, error) {
	prev, cur := bignum.Zero(), bignum.One()
	i := 1
	for cur.Len() < digits {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		prev, cur = cur, prev.Add(cur)
		i++
	}
	return i, nil
}

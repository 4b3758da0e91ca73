package problems

import (
	"context"
	"strconv"

	"github.com/govalues/bignum"
)

func init() {
	register(Problem{
		ID:    "p0020",
		Title: "Sum of the digits of 100!",
		Solve: solveFactorialDigitSum,
	})
}

func solveFactorialDigitSum(ctx context.Context, _ *Env) (string, error) {
	f, err := factorial(ctx, 100)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(f.DigitSum()), nil
}

func factorial(ctx context.Context, n uint64) (bignum.BigNum, error) {
	f := bignum.One()
	for i := uint64(2); i <= n; i++ {
		if err := ctx.Err(); err != nil {
			return bignum.BigNum{}, err
		}
		f = f.Mul(bignum.NewFromUint64(i))
	}
	return f, nil
}

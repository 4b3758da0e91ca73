package problems

import (
	"context"
	"strconv"

	"github.com/govalues/bignum"
)

func init() {
	register(Problem{
		ID:    "p0016",
		Title: "Sum of the digits of 2^1000",
		Solve: solvePowerDigitSum,
	})
}

func solvePowerDigitSum(_ context.Context, env *Env) (string, error) {
	p := env.Powers.Pow(bignum.NewFromUint64(2), 1000)
	return strconv.Itoa(p.DigitSum()), nil
}

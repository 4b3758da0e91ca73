package problems

import (
	"context"
	"strconv"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/govalues/bignum"
)

func init() {
	register(Problem{
		ID:    "p0029",
		Title: "Distinct terms of a^b for 2 <= a, b <= 100",
		Solve: solveDistinctPowers,
	})
}

func solveDistinctPowers(ctx context.Context, env *Env) (string, error) {
	n, err := distinctPowers(ctx, env, 100)
	if err != nil {
		return "", err
	}
	return strconv.Itoa(n), nil
}

// distinctPowers counts distinct values of a^b for 2 <= a, b <= limit.
func distinctPowers(ctx context.Context, env *Env, limit uint64) (int, error) {
	terms := mapset.NewThreadUnsafeSet[string]()
	for a := uint64(2); a <= limit; a++ {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		base := bignum.NewFromUint64(a)
		for b := 2; b <= int(limit); b++ {
			text, err := env.Powers.Pow(base, b).MarshalText()
			if err != nil {
				return 0, err
			}
			terms.Add(string(text))
		}
	}
	return terms.Cardinality(), nil
}

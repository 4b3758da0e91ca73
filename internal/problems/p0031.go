package problems

import (
	"context"
	"strconv"
)

func init() {
	register(Problem{
		ID:    "p0031",
		Title: "Ways to make 200p from UK coins",
		Solve: solveCoinSums,
	})
}

// coins lists the UK coin values in pence.
var coins = [...]int{1, 2, 5, 10, 20, 50, 100, 200}

func solveCoinSums(_ context.Context, _ *Env) (string, error) {
	return strconv.Itoa(coinCombinations(200)), nil
}

// coinCombinations counts the ways to make total pence from any number of coins,
// ignoring the order of coins.
func coinCombinations(total int) int {
	ways := make([]int, total+1)
	ways[0] = 1
	for _, c := range coins {
		for v := c; v <= total; v++ {
			ways[v] += ways[v-c]
		}
	}
	return ways[total]
}

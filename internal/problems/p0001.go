package problems

import (
	"context"
	"strconv"

	mapset "github.com/deckarep/golang-set/v2"
)

func init() {
	register(Problem{
		ID:    "p0001",
		Title: "Sum of all multiples of 3 or 5 below 1000",
		Solve: solveMultiples,
	})
}

func solveMultiples(_ context.Context, _ *Env) (string, error) {
	const limit = 1000

	var sum uint64
	for _, m := range multiplesBelow(3, limit).Union(multiplesBelow(5, limit)).ToSlice() {
		sum += m
	}
	return strconv.FormatUint(sum, 10), nil
}

// multiplesBelow returns the positive multiples of of that are less than n.
func multiplesBelow(of, n uint64) mapset.Set[uint64] {
	s := mapset.NewThreadUnsafeSet[uint64]()
	for m := of; m < n; m += of {
		s.Add(m)
	}
	return s
}

// Package problems contains solutions to Project Euler problems.
//
// Every solution registers itself under an identifier of the form pNNNN,
// for example p0001. Use [Normalize] to turn user input into an identifier
// and [Lookup] to find the solution.
package problems

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/govalues/bignum/internal/powcache"
)

var (
	// ErrUnknownProblem is returned by Lookup when no solution is registered.
	ErrUnknownProblem = errors.New("no solution for problem")
	// ErrInvalidSelector is returned by Normalize for malformed input.
	ErrInvalidSelector = errors.New("invalid problem selector")
)

// Env holds resources shared by all solutions.
type Env struct {
	Powers *powcache.Cache
}

// NewEnv returns an environment with a power cache of the given capacity.
func NewEnv(cacheBytes int) *Env {
	return &Env{Powers: powcache.New(cacheBytes)}
}

// Solver computes the answer to a problem.
// Long-running solvers return ctx.Err() when the context is cancelled.
type Solver func(ctx context.Context, env *Env) (string, error)

// Problem is a registered solution.
type Problem struct {
	ID    string // identifier, for example p0001
	Title string // short description of the problem
	Solve Solver
}

var registry = make(map[string]Problem)

// register adds p to the registry.
// It is called from init functions, so a duplicate identifier is a programming error.
func register(p Problem) {
	if _, ok := registry[p.ID]; ok {
		panic(fmt.Sprintf("register(%q) failed: duplicate problem", p.ID))
	}
	registry[p.ID] = p
}

// Lookup returns the problem with the given identifier.
func Lookup(id string) (Problem, error) {
	p, ok := registry[id]
	if !ok {
		return Problem{}, fmt.Errorf("%w %v", ErrUnknownProblem, id)
	}
	return p, nil
}

// All returns all registered problems ordered by identifier.
func All() []Problem {
	all := make([]Problem, 0, len(registry))
	for _, p := range registry {
		all = append(all, p)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].ID < all[j].ID })
	return all
}

// Normalize converts a problem selector to an identifier.
// The selector is either an identifier, such as p0031, or a problem
// number, such as 31.
func Normalize(input string) (string, error) {
	if len(input) == 5 && input[0] == 'p' {
		return input, nil
	}
	n, err := strconv.ParseUint(input, 10, 16)
	if err != nil {
		return "", fmt.Errorf("%w %q", ErrInvalidSelector, input)
	}
	return fmt.Sprintf("p%04d", n), nil
}

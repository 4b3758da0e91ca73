// Package powcache memoizes powers of big numbers.
//
// A [Cache] remembers every intermediate power it computes, so sweeping
// the exponent upwards for the same base costs one multiplication per step.
// It is safe for concurrent use by multiple goroutines.
package powcache

import (
	"fmt"
	"strconv"
	"sync/atomic"

	"github.com/VictoriaMetrics/fastcache"

	"github.com/govalues/bignum"
)

// DefaultMaxBytes is the default capacity of a cache.
const DefaultMaxBytes = 32 << 20

// Cache holds powers keyed by base and exponent.
type Cache struct {
	store  *fastcache.Cache
	hits   atomic.Uint64
	misses atomic.Uint64
}

// Stats describes cache usage.
type Stats struct {
	Hits    uint64 // powers returned from the cache
	Misses  uint64 // powers that had to be multiplied
	Entries uint64 // powers currently stored
	Bytes   uint64 // size of stored powers
}

// New returns a cache that stores at most maxBytes of powers.
// Old powers are evicted when the cache is full.
func New(maxBytes int) *Cache {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	return &Cache{store: fastcache.New(maxBytes)}
}

// Pow returns base raised to the power of exp.
// The result is identical to [bignum.BigNum.Pow].
//
// Pow panics if exp is negative.
func (c *Cache) Pow(base bignum.BigNum, exp int) bignum.BigNum {
	// Special cases
	switch {
	case exp < 0:
		panic(fmt.Sprintf("Pow(%q, %v) failed: negative exponent", base, exp))
	case exp == 0:
		return bignum.One()
	case exp == 1:
		return base
	}

	prefix := c.prefix(base)
	if p, ok := c.get(prefix, exp); ok {
		c.hits.Add(1)
		return p
	}
	c.misses.Add(1)

	// Find the largest cached power below exp
	k, p := 1, base
	for i := exp - 1; i > 1; i-- {
		if q, ok := c.get(prefix, i); ok {
			k, p = i, q
			break
		}
	}

	// Multiply upwards, remembering every step
	for k < exp {
		p = p.Mul(base)
		k++
		c.set(prefix, k, p)
	}
	return p
}

// Stats returns the current usage of the cache.
func (c *Cache) Stats() Stats {
	var s fastcache.Stats
	c.store.UpdateStats(&s)
	return Stats{
		Hits:    c.hits.Load(),
		Misses:  c.misses.Load(),
		Entries: s.EntriesCount,
		Bytes:   s.BytesSize,
	}
}

// Reset removes all powers from the cache and clears the counters.
func (c *Cache) Reset() {
	c.store.Reset()
	c.hits.Store(0)
	c.misses.Store(0)
}

func (c *Cache) prefix(base bignum.BigNum) []byte {
	text, _ := base.MarshalText() // never fails
	return append(text, '^')
}

func (c *Cache) key(prefix []byte, exp int) []byte {
	key := make([]byte, 0, len(prefix)+8)
	key = append(key, prefix...)
	return strconv.AppendInt(key, int64(exp), 10)
}

func (c *Cache) get(prefix []byte, exp int) (bignum.BigNum, bool) {
	text, ok := c.store.HasGet(nil, c.key(prefix, exp))
	if !ok {
		return bignum.BigNum{}, false
	}
	var p bignum.BigNum
	if err := p.UnmarshalText(text); err != nil {
		return bignum.BigNum{}, false
	}
	return p, true
}

func (c *Cache) set(prefix []byte, exp int, p bignum.BigNum) {
	text, _ := p.MarshalText() // never fails
	c.store.Set(c.key(prefix, exp), text)
}

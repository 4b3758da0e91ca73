package bignum

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// MustNewDigit is like [NewDigit] but panics if v is not a digit.
func MustNewDigit[T constraints.Integer](v T) Digit {
	d, err := NewDigit(v)
	if err != nil {
		panic(fmt.Sprintf("MustNewDigit(%v) failed: %v", v, err))
	}
	return d
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding numbers.
func MustParse(s string) BigNum {
	d, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse(%q) failed: %v", s, err))
	}
	return d
}

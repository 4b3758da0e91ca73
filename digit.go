package bignum

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Digit is a single decimal digit in the range [0, 9].
// Digits are ordered by their numeric value.
//
// Use [NewDigit] or [MustNewDigit] to build a digit from an integer.
// A direct conversion such as Digit(12) is not checked, but
// [Digit.Plus] and [Digit.Times] panic on such a value.
type Digit uint8

// maxDigit is a maximum value of a digit.
const maxDigit Digit = 9

// NewDigit converts v to a digit.
// NewDigit returns error if v is less than 0 or greater than 9.
func NewDigit[T constraints.Integer](v T) (Digit, error) {
	if v < 0 || v > T(maxDigit) {
		return 0, fmt.Errorf("%v is not a digit: %w", v, errInvalidDigit)
	}
	return Digit(v), nil
}

// Plus calculates x + y and returns the least significant digit of the sum
// and the carry.
// The carry is always 0 or 1, since the sum does not exceed 18.
//
// Plus panics if x or y is greater than 9.
func (x Digit) Plus(y Digit) (sum, carry Digit) {
	if x > maxDigit || y > maxDigit {
		panic(fmt.Sprintf("Digit(%d).Plus(%d) failed: %v", uint8(x), uint8(y), errInvalidDigit))
	}
	sum = x + y
	if sum > maxDigit {
		return sum - 10, 1
	}
	return sum, 0
}

// Times calculates x * y and returns the least significant digit of the product
// and the carry.
// The carry is in the range [0, 8], since the product does not exceed 81.
//
// Times panics if x or y is greater than 9.
func (x Digit) Times(y Digit) (digit, carry Digit) {
	if x > maxDigit || y > maxDigit {
		panic(fmt.Sprintf("Digit(%d).Times(%d) failed: %v", uint8(x), uint8(y), errInvalidDigit))
	}
	prod := x * y
	return prod % 10, prod / 10
}

// Int returns the numeric value of the digit.
func (x Digit) Int() int {
	return int(x)
}

// String implements the [fmt.Stringer] interface.
func (x Digit) String() string {
	return string('0' + byte(x))
}

// parseDigit converts an ASCII character to a digit.
func parseDigit(c byte) (Digit, bool) {
	if c < '0' || c > '9' {
		return 0, false
	}
	return Digit(c - '0'), true
}

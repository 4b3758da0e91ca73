package bignum

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
)

// BigNum type is a representation of an arbitrary-precision non-negative
// decimal integer.
// The zero value is the numeric value of 0.
// It is designed to be safe for concurrent use by multiple goroutines.
//
// A BigNum is a sequence of decimal digits listed with the least significant
// digit first. For example, the digits 0, 0, 1 represent the value 100.
//
// The sequence never has leading (most significant) zeros, except for the
// value 0 itself, which is exactly one digit 0.
// Therefore, two numbers are equal if and only if their digit sequences are
// identical.
//
// Methods never modify their receivers or arguments; every arithmetic
// operation returns a new number.
type BigNum struct {
	digs []Digit // digits, least significant first
}

var (
	errInvalidDigit  = errors.New("invalid digit")
	errInvalidBigNum = errors.New("invalid number")
	errExponentRange = errors.New("exponent out of range")
)

// zeroDigits is the digit sequence of 0.
// It is shared by all zero values and must not be modified.
var zeroDigits = []Digit{0}

// newBigNum takes ownership of digs and restores the canonical form.
func newBigNum(digs []Digit) BigNum {
	return BigNum{digs: trim(digs)}
}

// NewFromDigits returns a number with the given digits, listed with the least
// significant digit first.
// Leading zeros are removed, so digits 0, 5, 1, 0, 0 represent the value 150.
// An empty sequence represents 0.
//
// NewFromDigits returns error if any of the values is not in the range [0, 9].
func NewFromDigits[T constraints.Integer](digits []T) (BigNum, error) {
	digs := make([]Digit, len(digits))
	for i, v := range digits {
		d, err := NewDigit(v)
		if err != nil {
			return BigNum{}, fmt.Errorf("position %v: %w", i, err)
		}
		digs[i] = d
	}
	return newBigNum(digs), nil
}

// New is like [NewFromDigits] but accepts digits as variadic arguments.
// A value outside the range [0, 9] is a programming error, so
// New panics instead of returning error.
func New[T constraints.Integer](digits ...T) BigNum {
	d, err := NewFromDigits(digits)
	if err != nil {
		panic(fmt.Sprintf("New(%v) failed: %v", digits, err))
	}
	return d
}

// NewFromUint64 converts a machine integer to a number.
func NewFromUint64(n uint64) BigNum {
	// Special case
	if n == 0 {
		return Zero()
	}
	// General case
	digs := make([]Digit, 0, 20)
	for n > 0 {
		digs = append(digs, Digit(n%10))
		n /= 10
	}
	return BigNum{digs: digs}
}

// Zero returns a number with the value 0.
func Zero() BigNum {
	return BigNum{digs: zeroDigits}
}

// One returns a number with the value 1.
func One() BigNum {
	return BigNum{digs: []Digit{1}}
}

// Parse converts a string to a number.
// The input string must be in one of the following formats:
//
//	1234567
//	1,234,567
//
// If the string contains separators, every group except the first one
// must have exactly three digits.
// Parse removes leading zeros.
func Parse(s string) (BigNum, error) {
	if s == "" {
		return BigNum{}, fmt.Errorf("no digits: %w", errInvalidBigNum)
	}
	if strings.IndexByte(s, ',') >= 0 {
		groups := strings.Split(s, ",")
		for i, g := range groups {
			if len(g) == 0 || len(g) > 3 || (i > 0 && len(g) != 3) {
				return BigNum{}, fmt.Errorf("misplaced separator in %q: %w", s, errInvalidBigNum)
			}
		}
		s = strings.Join(groups, "")
	}
	digs := make([]Digit, len(s))
	for i := 0; i < len(s); i++ {
		d, ok := parseDigit(s[i])
		if !ok {
			return BigNum{}, fmt.Errorf("invalid character %q: %w", s[i], errInvalidBigNum)
		}
		digs[len(s)-1-i] = d
	}
	return newBigNum(digs), nil
}

// digits returns the digit sequence of d, treating the zero value as 0.
// The result must not be modified.
func (d BigNum) digits() []Digit {
	if len(d.digs) == 0 {
		return zeroDigits
	}
	return d.digs
}

// pad returns digs extended with more significant zeros up to the given length.
// If digs is already long enough, it is returned as is.
func pad(digs []Digit, length int) []Digit {
	if len(digs) >= length {
		return digs
	}
	z := make([]Digit, length)
	copy(z, digs)
	return z
}

// trim removes leading zeros from digs, but always keeps at least one digit.
func trim(digs []Digit) []Digit {
	n := len(digs)
	for n > 1 && digs[n-1] == 0 {
		n--
	}
	if n == 0 {
		return zeroDigits
	}
	return digs[:n]
}

// String implements the [fmt.Stringer] interface and returns
// a string representation of a number.
// The digits are grouped by three with a comma, for example 1,073,741,824.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (d BigNum) String() string {
	return string(d.appendText(nil, true))
}

// appendText appends the digits of d, most significant first, to buf.
func (d BigNum) appendText(buf []byte, grouped bool) []byte {
	digs := d.digits()
	for i := len(digs) - 1; i >= 0; i-- {
		buf = append(buf, '0'+byte(digs[i]))
		if grouped && i != 0 && i%3 == 0 {
			buf = append(buf, ',')
		}
	}
	return buf
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// Also see method [Parse].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (d *BigNum) UnmarshalText(text []byte) error {
	var err error
	*d, err = Parse(string(text))
	return err
}

// MarshalText implements [encoding.TextMarshaler] interface.
// Unlike [BigNum.String], the digits are not grouped.
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (d BigNum) MarshalText() ([]byte, error) {
	return d.appendText(nil, false), nil
}

// Format implements [fmt.Formatter] interface.
// The following [verbs] are available:
//
//	%s, %v: 1,234,567
//	%q:    "1,234,567"
//	%d:     1234567
//
// The following format flags can be used with all verbs: '0', '-'.
//
// [verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (d BigNum) Format(state fmt.State, verb rune) {

	// Digits
	text := d.appendText(nil, verb != 'd')

	// Quotes
	lquote, tquote := 0, 0
	if verb == 'q' || verb == 'Q' {
		lquote, tquote = 1, 1
	}

	// Padding
	width := lquote + len(text) + tquote
	lspaces, tspaces, lzeroes := 0, 0, 0
	if w, ok := state.Width(); ok && w > width {
		switch {
		case state.Flag('-'):
			tspaces = w - width
		case state.Flag('0'):
			lzeroes = w - width
		default:
			lspaces = w - width
		}
		width = w
	}

	// Writing buffer
	buf := make([]byte, 0, width)
	buf = append(buf, strings.Repeat(" ", lspaces)...)
	if lquote > 0 {
		buf = append(buf, '"')
	}
	buf = append(buf, strings.Repeat("0", lzeroes)...)
	buf = append(buf, text...)
	if tquote > 0 {
		buf = append(buf, '"')
	}
	buf = append(buf, strings.Repeat(" ", tspaces)...)

	// Writing result
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V', 'd':
		state.Write(buf)
	default:
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(bignum.BigNum="))
		state.Write(buf)
		state.Write([]byte(")"))
	}
}

// Len returns number of digits in d.
// The number 0 has one digit.
func (d BigNum) Len() int {
	return len(d.digits())
}

// Digits returns a copy of the digits of d, least significant first.
func (d BigNum) Digits() []Digit {
	digs := d.digits()
	z := make([]Digit, len(digs))
	copy(z, digs)
	return z
}

// DigitSum returns the sum of all digits of d.
func (d BigNum) DigitSum() int {
	s := 0
	for _, v := range d.digits() {
		s += v.Int()
	}
	return s
}

// IsZero returns true if d == 0.
func (d BigNum) IsZero() bool {
	digs := d.digits()
	return len(digs) == 1 && digs[0] == 0
}

// IsOne returns true if d == 1.
func (d BigNum) IsOne() bool {
	digs := d.digits()
	return len(digs) == 1 && digs[0] == 1
}

// Add returns the sum of d and e.
func (d BigNum) Add(e BigNum) BigNum {
	x, y := d.digits(), e.digits()

	// Alignment
	length := max(len(x), len(y))
	x = pad(x, length)
	y = pad(y, length)

	// Digits
	z := make([]Digit, length, length+1)
	var carry Digit
	for i := 0; i < length; i++ {
		sum, c1 := x[i].Plus(y[i])
		sum, c2 := sum.Plus(carry)
		z[i] = sum
		// If c1 is 1, then sum is at most 8 and adding carry cannot overflow again,
		// so at most one of c1 and c2 is 1 and the carry stays 0 or 1.
		carry = max(c1, c2)
	}
	if carry != 0 {
		z = append(z, carry)
	}

	return newBigNum(z)
}

// Mul returns the product of d and e.
// Mul uses schoolbook long multiplication: one partial product per digit of e,
// shifted by the position of that digit, then all partial products are summed.
func (d BigNum) Mul(e BigNum) BigNum {
	x, y := d.digits(), e.digits()
	prod := Zero()
	for i, m := range y {
		// Partial product, shifted by i positions
		row := make([]Digit, i, i+len(x)+1)
		var carry Digit
		for _, v := range x {
			digit, c1 := m.Times(v)
			digit, c2 := digit.Plus(carry)
			row = append(row, digit)
			carry = joinCarries(c1, c2)
		}
		if carry != 0 {
			row = append(row, carry)
		}
		prod = prod.Add(BigNum{digs: row})
	}
	return prod
}

// joinCarries combines the carry of a digit product with the carry of adding
// the previous carry to that product.
// The product is at most 81 and the previous carry at most 8, so the total is
// at most 89 and the combined carry always fits in a single digit.
func joinCarries(c1, c2 Digit) Digit {
	c, overflow := c1.Plus(c2)
	if overflow != 0 {
		panic(fmt.Sprintf("joinCarries(%v, %v) failed: second-order carry", c1, c2))
	}
	return c
}

// Pow returns d raised to the power of exp.
// Any number raised to the power of 0, including 0 itself, is 1.
//
// Pow panics if exp is negative.
func (d BigNum) Pow(exp int) BigNum {
	// Special cases
	switch {
	case exp < 0:
		panic(fmt.Sprintf("%q.Pow(%v) failed: %v", d, exp, errExponentRange))
	case exp == 0:
		return One()
	}
	// General case
	f := d.Pow(exp / 2)
	f = f.Mul(f)
	if exp%2 != 0 {
		f = f.Mul(d)
	}
	return f
}

// Cmp compares d and e numerically and returns:
//
//	-1 if d < e
//	 0 if d == e
//	+1 if d > e
func (d BigNum) Cmp(e BigNum) int {
	x, y := d.digits(), e.digits()

	// Special case: different lengths
	switch {
	case len(x) < len(y):
		return -1
	case len(y) < len(x):
		return 1
	}

	// General case
	for i := len(x) - 1; i >= 0; i-- {
		switch {
		case x[i] < y[i]:
			return -1
		case y[i] < x[i]:
			return 1
		}
	}
	return 0
}

// Equal returns true if d and e have the same value.
func (d BigNum) Equal(e BigNum) bool {
	return d.Cmp(e) == 0
}

// Max returns maximum of d and e.
// Also see method [BigNum.Cmp].
func (d BigNum) Max(e BigNum) BigNum {
	if d.Cmp(e) >= 0 {
		return d
	}
	return e
}

// Min returns minimum of d and e.
// Also see method [BigNum.Cmp].
func (d BigNum) Min(e BigNum) BigNum {
	if d.Cmp(e) <= 0 {
		return d
	}
	return e
}

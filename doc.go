/*
Package bignum implements immutable arbitrary-precision non-negative
decimal integers.
It is specifically designed for exact arithmetic on numbers that do not fit
into machine integers, such as large powers and factorials.

# Representation

[BigNum] is a sequence of [Digit] values listed with the least significant
digit first:

  - Digit: an unsigned integer in the range [0, 9].
  - Digits: the sequence itself. For example, the digits 4, 2, 8 represent
    the value 824.

The sequence never has leading zeros.
The only exception is the number 0, which is represented by exactly one
digit 0.
Consequently, every value has exactly one representation, and two numbers
are equal if and only if their digits are identical.

# Constraints

The radix is fixed at 10.
Negative numbers, division and modulo are not supported.
The length of a number is limited only by available memory.

# Conversions

The package provides methods for converting numbers:

  - from digits:
    [New], [NewFromDigits], [BigNum.Digits].
  - from/to uint64:
    [NewFromUint64].
  - from/to string:
    [Parse], [BigNum.String], [BigNum.Format].
  - from/to text:
    [BigNum.UnmarshalText], [BigNum.MarshalText].

See the documentation for each method for more details.

# Operations

All arithmetic is carried out digit by digit, exactly as it is done by hand:

 1. [Digit.Plus] and [Digit.Times] combine two digits into a result digit
    and a carry.

 2. [BigNum.Add] aligns both operands to the same length and adds them
    position by position, propagating the carry.
    The carry is always 0 or 1.

 3. [BigNum.Mul] computes one partial product per digit of the right-hand
    operand, shifts it by the position of that digit and sums all partial
    products with [BigNum.Add].
    Within a partial product the carry never exceeds 8.

 4. [BigNum.Pow] uses exponentiation by squaring on top of [BigNum.Mul].

The multiplication is quadratic in the number of digits.

# Errors

All arithmetic methods are pure and total.
Constructors report errors in the following cases:

  - Invalid Digit.
    [NewDigit] and [NewFromDigits] return an error for values outside [0, 9].
    [New] and [MustNewDigit] panic instead, since a hard-coded invalid digit
    is a programming error.

  - Invalid Number.
    [Parse] returns an error if the string contains anything but digits
    and correctly placed group separators.

[BigNum.Pow] panics if the exponent is negative.
*/
package bignum

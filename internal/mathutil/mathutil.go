// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package mathutil contains integer helpers shared by the dec64 operators:
// powers of ten, digit counting and overflow-checked arithmetic.
package mathutil

import (
	"math/bits"
	"unsafe"
)

var (
	decimalFactorTable = [...]uint64{ // up to 1e19
		1, 10, 100, 1000, 10000,
		100000, 1000000, 10000000, 100000000, 1000000000, 10000000000,
		100000000000, 1000000000000, 10000000000000, 100000000000000,
		1000000000000000, 10000000000000000, 100000000000000000,
		1000000000000000000, 10000000000000000000,
	}

	digitsHelper = [...]int{
		0, 0, 0, 0, 1, 1, 1, 2, 2, 2,
		3, 3, 3, 3, 4, 4, 4, 5, 5, 5,
		6, 6, 6, 6, 7, 7, 7, 8, 8, 8,
		9, 9, 9, 9, 10, 10, 10, 11, 11, 11,
		12, 12, 12, 12, 13, 13, 13, 14, 14, 14,
		15, 15, 15, 15, 16, 16, 16, 17, 17, 17,
		18, 18, 18, 18, 19,
	}
)

// Pow10 returns 10^pow, or 0, if the result does not fit a uint64.
func Pow10(pow int) uint64 {
	if pow < 0 || pow >= len(decimalFactorTable) {
		return 0
	}
	return decimalFactorTable[pow]
}

func BinaryDigits(value uint64) int {
	return int(8*unsafe.Sizeof(uint64(0))) - bits.LeadingZeros64(value)
}

// DecimalDigits returns the number of decimal digits in 'value'.
// see https://stackoverflow.com/a/25934909
func DecimalDigits(value uint64) int {
	if value == 0 {
		return 1
	}

	digits := digitsHelper[BinaryDigits(value)]
	if value >= decimalFactorTable[digits] {
		digits++
	}
	return digits
}

// TrailingZeros returns the number of trailing decimal zeros of a non-zero value.
func TrailingZeros(value uint64) int {
	if value == 0 {
		return 0
	}
	result := 0
	for value%10 == 0 {
		value /= 10
		result++
	}
	return result
}

// AddInt64 returns a+b and whether the sum did not overflow.
func AddInt64(a, b int64) (int64, bool) {
	sum := a + b
	// overflow happens only if both operands have the same sign, and the sign of the sum differs.
	return sum, !(SameSign(a, b) && !SameSign(a, sum))
}

// Mul128 returns the 128-bit product of two magnitudes.
func Mul128(a, b uint64) (hi, lo uint64) {
	return bits.Mul64(a, b)
}

// QuoRem128By10 divides a 128-bit number by ten.
func QuoRem128By10(hi, lo uint64) (qhi, qlo, rem uint64) {
	qhi, r := hi/10, hi%10
	qlo, rem = bits.Div64(r, lo, 10)
	return qhi, qlo, rem
}

// Abs64 returns the magnitude of v. It is correct for math.MinInt64 too.
func Abs64(v int64) uint64 {
	if v < 0 {
		return uint64(^v) + 1
	}
	return uint64(v)
}

func AbsInt(val int) int {
	mask := val >> (unsafe.Sizeof(int(0))*8 - 1)
	return (val + mask) ^ mask
}

func SameSign(a, b int64) bool {
	return (a>>63 ^ b>>63) == 0
}

// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package dec64 implements DEC64, a decimal floating-point number, where both
// coefficient and exponent are stored in a single int64 value.
// Arithmetic is exact as long as the result fits 17 significant digits,
// otherwise it's rounded half away from zero.
package dec64

import (
	"unsafe"

	"github.com/avdva/dec64/internal/mathutil"
)

const (
	bitsInNumber = unsafe.Sizeof(int64(0)) * 8
	expBits      = 8
	coeffBits    = bitsInNumber - expBits

	expMask         = 1<<expBits - 1
	coefficientMask = ^int64(expMask)

	// MaxCoefficient is the largest coefficient, 2^55-1.
	MaxCoefficient = 1<<(coeffBits-1) - 1
	// MinCoefficient is the smallest coefficient, -2^55.
	MinCoefficient = -1 << (coeffBits - 1)
	// MaxExponent is the largest exponent of a finite value.
	MaxExponent = 1<<(expBits-1) - 1
	// MinExponent is the smallest exponent of a finite value.
	MinExponent = -MaxExponent
	// nanExponent marks a not-a-number.
	nanExponent = -1 << (expBits - 1)

	// magnitude limits for positive and negative coefficients.
	maxPositive = uint64(MaxCoefficient)
	maxNegative = uint64(-MinCoefficient)
)

// Dec64 is a decimal floating-point number.
// It uses an int64 value as a data type, where
// 56 bits are used for a signed coefficient and 8 for a signed exponent.
//   63                                                     7      0
//   _______________________________________________________|_______
//   cccccccccccccccccccccccccccccccccccccccccccccccccccccccceeeeeeee
//
// The value is coefficient * 10^exponent. An exponent of -128 means NaN,
// a zero coefficient with any other exponent means zero.
// The zero value is a canonical zero.
type Dec64 int64

// FromParts assembles a value from a coefficient and an exponent without any checks.
// The coefficient must fit 56 bits.
func FromParts(coefficient int64, exponent int8) Dec64 {
	return Dec64(coefficient<<expBits | int64(uint8(exponent)))
}

// FromBits returns a value for given bit pattern.
func FromBits(bits int64) Dec64 {
	return Dec64(bits)
}

// Bits returns the underlying bit pattern.
func (v Dec64) Bits() int64 {
	return int64(v)
}

// Coefficient returns the coefficient part of the value.
func (v Dec64) Coefficient() int64 {
	return int64(v) >> expBits
}

// Exponent returns the exponent part of the value.
func (v Dec64) Exponent() int8 {
	return int8(v)
}

// IsNaN returns true if v is not a number.
func (v Dec64) IsNaN() bool {
	return v.Exponent() == nanExponent
}

// IsZero returns true if v is zero, regardless of its exponent.
func (v Dec64) IsZero() bool {
	return v.Coefficient() == 0 && !v.IsNaN()
}

func split(v Dec64) (coefficient int64, exponent int) {
	return v.Coefficient(), int(v.Exponent())
}

// New returns a canonical value for coefficient * 10^exponent.
// If the coefficient has too many digits, it is rounded half away from zero.
// Returns NaN, if the value is too big, and Zero, if it is too small.
func New(coefficient int64, exponent int) Dec64 {
	if coefficient < 0 {
		return pack(true, mathutil.Abs64(coefficient), exponent)
	}
	return pack(false, uint64(coefficient), exponent)
}

func coefficientLimit(neg bool) uint64 {
	if neg {
		return maxNegative
	}
	return maxPositive
}

// fromMagnitude builds a value for a coefficient known to fit.
func fromMagnitude(neg bool, mag uint64, exponent int) Dec64 {
	c := int64(mag)
	if neg {
		c = -c
	}
	return FromParts(c, int8(exponent))
}

// pack is the canonicalizing constructor. It works with a sign and a magnitude,
// so that magnitudes up to 2^64-1 can be packed without a wider integer.
func pack(neg bool, mag uint64, exponent int) Dec64 {
	if mag == 0 {
		return Zero
	}
	limit := coefficientLimit(neg)
	inExpRange := exponent >= MinExponent && exponent <= MaxExponent
	switch {
	case inExpRange && mag <= limit:
		return fromMagnitude(neg, mag, exponent)
	case inExpRange:
		// too many digits. drop them one by one, and round using the last dropped one.
		for {
			var digit uint64
			for mag > limit {
				if exponent >= MaxExponent {
					return NaN
				}
				mag, digit = mag/10, mag%10
				exponent++
			}
			if digit < 5 {
				return fromMagnitude(neg, mag, exponent)
			}
			if mag+1 <= limit {
				return fromMagnitude(neg, mag+1, exponent)
			}
			// rounding overflowed. drop one more digit of the rounded value.
			mag++
		}
	case exponent > MaxExponent:
		for exponent > MaxExponent {
			if mag > limit/10 {
				return NaN
			}
			mag *= 10
			exponent--
		}
		return pack(neg, mag, exponent)
	case exponent < MinExponent:
		for exponent < MinExponent {
			mag /= 10
			if mag == 0 {
				return Zero
			}
			exponent++
		}
		return pack(neg, mag, exponent)
	}
	panic("dec64: pack: unreachable")
}

func (v Dec64) magnitude() (neg bool, mag uint64) {
	c := v.Coefficient()
	return c < 0, mathutil.Abs64(c)
}

// Copyright 2020 Aleksandr Demakin. All rights reserved.

package dec64

import (
	"math"

	"github.com/avdva/dec64/internal/mathutil"
)

// addHeadroom is the largest magnitude, which can be multiplied by 10
// and then summed with any coefficient without overflowing an int64.
const addHeadroom = (math.MaxInt64 - maxNegative) / 10

// Add returns v + other.
func (v Dec64) Add(other Dec64) Dec64 {
	if v.IsNaN() || other.IsNaN() {
		return NaN
	}
	if v&expMask == 0 && other&expMask == 0 {
		// zero exponents occupy no bits, so the words can be added as is.
		if sum, ok := mathutil.AddInt64(int64(v), int64(other)); ok {
			return Dec64(sum)
		}
	}
	c1, e1 := split(v)
	c2, e2 := split(other)
	if e1 == e2 {
		// exponent bits of both values are equal, so they can be masked out,
		// and the coefficients can be added in place.
		sum, ok := mathutil.AddInt64(int64(v)&coefficientMask, int64(other)&coefficientMask)
		if !ok {
			return New(c1+c2, e1)
		}
		if sum == 0 {
			return Zero
		}
		return Dec64(sum | int64(v)&expMask)
	}
	if e1 < e2 {
		c1, e1, c2, e2 = c2, e2, c1, e1
	}
	return addAligned(c1, e1, c2, e2)
}

// addAligned adds two coefficients with different exponents, hiExp > loExp.
func addAligned(hi int64, hiExp int, lo int64, loExp int) Dec64 {
	if lo == 0 {
		return New(hi, hiExp)
	}
	if hi == 0 {
		return New(lo, loExp)
	}
	c, e := hi, hiExp
	// bring the larger exponent down, while the coefficient has room for another digit.
	for e > loExp && mathutil.Abs64(c) <= addHeadroom {
		c *= 10
		e--
	}
	// the rest of the difference costs precision of the smaller operand.
	for e > loExp {
		lo /= 10
		loExp++
		if lo == 0 {
			// the smaller operand is too small to change anything.
			return New(hi, hiExp)
		}
	}
	return New(c+lo, e)
}

// Sub returns v - other.
func (v Dec64) Sub(other Dec64) Dec64 {
	if v.IsNaN() || other.IsNaN() {
		return NaN
	}
	return v.Add(other.Neg())
}

// Neg returns -v.
func (v Dec64) Neg() Dec64 {
	if v.IsNaN() {
		return NaN
	}
	c, e := split(v)
	if c == 0 {
		return Zero
	}
	// flipping all the coefficient bits gives -c-1, adding one unit gives -c.
	neg, ok := mathutil.AddInt64(int64(v)^coefficientMask, 1<<expBits)
	if !ok {
		return New(-c, e)
	}
	return Dec64(neg)
}

// Mul returns v * other.
func (v Dec64) Mul(other Dec64) Dec64 {
	if v.IsNaN() || other.IsNaN() {
		return NaN
	}
	if v.IsZero() || other.IsZero() {
		return Zero
	}
	neg1, m1 := v.magnitude()
	neg2, m2 := other.magnitude()
	neg := neg1 != neg2
	limit := coefficientLimit(neg)
	exp := int(v.Exponent()) + int(other.Exponent())

	hi, lo := mathutil.Mul128(m1, m2)
	var digit uint64
	for hi != 0 || lo > limit || exp < MinExponent {
		hi, lo, digit = mathutil.QuoRem128By10(hi, lo)
		exp++
	}
	for exp > MaxExponent && lo <= limit/10 {
		lo *= 10
		digit = 0
		exp--
	}
	if exp > MaxExponent {
		return NaN
	}
	if lo == 0 {
		return Zero
	}
	if digit >= 5 {
		lo++
	}
	return pack(neg, lo, exp)
}

// Div returns v / other.
// The quotient is truncated to the number of digits the coefficient can hold.
// Division by zero gives NaN.
func (v Dec64) Div(other Dec64) Dec64 {
	if v.IsNaN() || other.IsNaN() || other.IsZero() {
		return NaN
	}
	if v.IsZero() {
		return Zero
	}
	neg1, m1 := v.magnitude()
	neg2, m2 := other.magnitude()
	neg := neg1 != neg2
	exp := int(v.Exponent()) - int(other.Exponent())
	switch {
	case exp > MaxExponent:
		return NaN
	case exp < MinExponent:
		return Zero
	}
	limit := coefficientLimit(neg)
	quo, rem := m1/m2, m1%m2
	// long division: extend the quotient digit by digit, while it has room for one.
	for rem != 0 && exp > MinExponent {
		rem *= 10
		next := quo*10 + rem/m2
		if next > limit {
			break
		}
		quo, rem = next, rem%m2
		exp--
	}
	return pack(neg, quo, exp)
}

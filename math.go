// Copyright 2020 Aleksandr Demakin. All rights reserved.

package dec64

import (
	"github.com/avdva/dec64/internal/mathutil"
)

// Sign returns 0 for zeros, -1 for values with a negative coefficient and +1 otherwise.
func (v Dec64) Sign() int {
	switch {
	case v.IsZero():
		return 0
	case v < 0:
		return -1
	default:
		return 1
	}
}

// Abs returns the absolute value of v.
// Abs(Min) is NaN, as it cannot be represented.
func (v Dec64) Abs() Dec64 {
	if v.IsNaN() {
		return NaN
	}
	_, mag := v.magnitude()
	return pack(false, mag, int(v.Exponent()))
}

// IsInteger returns true if v has no fractional part.
func (v Dec64) IsInteger() bool {
	if v.IsNaN() {
		return false
	}
	c, e := split(v)
	if c == 0 || e >= 0 {
		return true
	}
	return mathutil.TrailingZeros(mathutil.Abs64(c)) >= -e
}

// Floor returns the greatest integer value less than or equal to v.
func (v Dec64) Floor() Dec64 {
	return v.integral(false)
}

// Ceil returns the least integer value greater than or equal to v.
func (v Dec64) Ceil() Dec64 {
	return v.integral(true)
}

// Trunc returns the integer value of v, rounded toward zero.
func (v Dec64) Trunc() Dec64 {
	if v < 0 {
		return v.Ceil()
	}
	return v.Floor()
}

func (v Dec64) integral(ceil bool) Dec64 {
	if v.IsNaN() {
		return NaN
	}
	e := int(v.Exponent())
	if e >= 0 {
		return v
	}
	neg, mag := v.magnitude()
	if mag == 0 {
		return Zero
	}
	scaledOne := mathutil.Pow10(-e)
	if scaledOne == 0 || mag < scaledOne {
		// |v| < 1, so the result is either 0 or 1 in magnitude.
		if neg != ceil {
			return pack(neg, 1, 0)
		}
		return Zero
	}
	rem := mag % scaledOne
	if rem == 0 {
		return pack(neg, mag, e)
	}
	if ceil {
		mag += scaledOne - rem
		if neg {
			mag -= scaledOne
		}
	} else {
		mag -= rem
		if neg {
			mag += scaledOne
		}
	}
	return pack(neg, mag, e)
}

// Round rounds v half away from zero to the given number of decimal places.
// A negative number of places rounds to tens, hundreds and so on.
func (v Dec64) Round(places int) Dec64 {
	return v.RoundToExp(-places)
}

// RoundToExp rounds v half away from zero, so that its exponent is not less than exp.
// Values with the exponent >= exp are returned as is.
func (v Dec64) RoundToExp(exp int) Dec64 {
	if v.IsNaN() {
		return NaN
	}
	if v.IsZero() {
		return Zero
	}
	e := int(v.Exponent())
	if e >= exp {
		return v
	}
	neg, mag := v.magnitude()
	var digit uint64
	for ; e < exp; e++ {
		if mag == 0 {
			return Zero
		}
		mag, digit = mag/10, mag%10
	}
	if digit >= 5 {
		mag++
	}
	return pack(neg, mag, e)
}

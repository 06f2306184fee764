// Copyright 2020 Aleksandr Demakin. All rights reserved.

package dec64

import (
	"math"
	"math/big"
	"strconv"

	"golang.org/x/exp/constraints"

	"github.com/avdva/dec64/internal/grisu"
	"github.com/avdva/dec64/internal/mathutil"
)

var (
	// exactly representable powers of ten.
	float64pow10 = [...]float64{
		1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9, 1e10, 1e11,
		1e12, 1e13, 1e14, 1e15, 1e16, 1e17, 1e18, 1e19, 1e20, 1e21, 1e22,
	}
	float32pow10 = [...]float32{1e0, 1e1, 1e2, 1e3, 1e4, 1e5, 1e6, 1e7, 1e8, 1e9, 1e10}

	bigTen = big.NewInt(10)
)

const (
	float64ExactMant = 1 << 53
	float32ExactMant = 1 << 24

	// grisu output shorter than this is already the shortest one.
	float64ShortDigits = 16
	float32ShortDigits = 7
)

// FromFloat64 returns the shortest value, which converts back into f.
// NaNs and infinities give NaN. Values too big for Dec64 give NaN, too small values give Zero.
func FromFloat64(f float64) Dec64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return NaN
	}
	if f == 0 {
		return Zero
	}
	neg := f < 0
	digits, exp := grisu.Float64(math.Abs(f))
	digits, exp = shorten(digits, exp, float64ShortDigits, func(d uint64, e int) bool {
		return pack(neg, d, e).Float64() == f
	})
	return pack(neg, digits, exp)
}

// FromFloat32 returns the shortest value, which converts back into f.
// NaNs and infinities give NaN.
func FromFloat32(f float32) Dec64 {
	if math.IsNaN(float64(f)) || math.IsInf(float64(f), 0) {
		return NaN
	}
	if f == 0 {
		return Zero
	}
	neg := f < 0
	abs := f
	if neg {
		abs = -f
	}
	digits, exp := grisu.Float32(abs)
	digits, exp = shorten(digits, exp, float32ShortDigits, func(d uint64, e int) bool {
		return pack(neg, d, e).Float32() == f
	})
	return pack(neg, digits, exp)
}

// shorten drops the last digit, while one of the two nearest shorter coefficients
// still converts back into the same float. Grisu2 can return one or two digits more than needed,
// and 17 digits may not fit the coefficient, in which case pack's rounding may land on another float.
func shorten(digits uint64, exp, minDigits int, readsBack func(digits uint64, exp int) bool) (uint64, int) {
	for mathutil.DecimalDigits(digits) >= minDigits {
		first, second := digits/10, digits/10+1
		if digits%10 >= 5 {
			first, second = second, first
		}
		switch {
		case readsBack(first, exp+1):
			digits = first
		case readsBack(second, exp+1):
			digits = second
		default:
			return digits, exp
		}
		exp++
	}
	return digits, exp
}

// Float64 returns the nearest float64 value. NaN gives math.NaN().
func (v Dec64) Float64() float64 {
	if v.IsNaN() {
		return math.NaN()
	}
	c, e := split(v)
	if c == 0 {
		return 0
	}
	if mathutil.Abs64(c) <= float64ExactMant && mathutil.AbsInt(e) < len(float64pow10) {
		// both operands are exact, so the result is correctly rounded.
		if e >= 0 {
			return float64(c) * float64pow10[e]
		}
		return float64(c) / float64pow10[-e]
	}
	f, _ := strconv.ParseFloat(v.scientific(), 64)
	return f
}

// Float32 returns the nearest float32 value. NaN gives a float32 NaN.
func (v Dec64) Float32() float32 {
	if v.IsNaN() {
		return float32(math.NaN())
	}
	c, e := split(v)
	if c == 0 {
		return 0
	}
	if mathutil.Abs64(c) <= float32ExactMant && mathutil.AbsInt(e) < len(float32pow10) {
		if e >= 0 {
			return float32(c) * float32pow10[e]
		}
		return float32(c) / float32pow10[-e]
	}
	f, _ := strconv.ParseFloat(v.scientific(), 32)
	return float32(f)
}

// scientific returns coefficient"e"exponent.
func (v Dec64) scientific() string {
	c, e := split(v)
	return strconv.FormatInt(c, 10) + "e" + strconv.Itoa(e)
}

// FromInt returns a value for a signed integer of any width.
// Integers with more than 17 digits are rounded half away from zero.
func FromInt[T constraints.Signed](i T) Dec64 {
	i64 := int64(i)
	if i64 >= MinCoefficient && i64 <= MaxCoefficient {
		return Dec64(i64 << expBits)
	}
	return pack(i64 < 0, mathutil.Abs64(i64), 0)
}

// FromUint returns a value for an unsigned integer of any width.
// Integers with more than 17 digits are rounded half up.
func FromUint[T constraints.Unsigned](u T) Dec64 {
	u64 := uint64(u)
	if u64 <= MaxCoefficient {
		return Dec64(u64 << expBits)
	}
	return pack(false, u64, 0)
}

// FromBigInt returns a value for an integer of any size.
// Integers with more than 17 digits are rounded half away from zero.
func FromBigInt(i *big.Int) Dec64 {
	if i.IsInt64() {
		return FromInt(i.Int64())
	}
	neg := i.Sign() < 0
	mag, digit := new(big.Int).Abs(i), new(big.Int)
	exp := 0
	// digits dropped here don't affect rounding, as pack drops at least one more.
	for !mag.IsUint64() {
		mag.QuoRem(mag, bigTen, digit)
		exp++
	}
	return pack(neg, mag.Uint64(), exp)
}

// Int64 returns the coefficient of v, if the exponent is not positive,
// and coefficient * 10^exponent otherwise. So the fractional part is not removed:
// 1.5 (15e-1) gives 15, use TruncInt64 for the integer part.
// Overflow is not checked. NaN gives 0.
func (v Dec64) Int64() int64 {
	if v.IsNaN() {
		return 0
	}
	c, e := split(v)
	for ; e > 0; e-- {
		c *= 10
	}
	return c
}

// Uint64 is Int64 converted to an uint64.
// Overflow is not checked, negative values wrap around. NaN gives 0.
func (v Dec64) Uint64() uint64 {
	return uint64(v.Int64())
}

// TruncInt64 returns the integer part of v, the fractional digits are truncated.
// Overflow is not checked. NaN gives 0.
func (v Dec64) TruncInt64() int64 {
	if v.IsNaN() {
		return 0
	}
	c, e := split(v)
	if e < 0 {
		if -e > 18 {
			// |c| < 10^17.
			return 0
		}
		return c / int64(mathutil.Pow10(-e))
	}
	return v.Int64()
}

// BigInt returns the coefficient of v, if the exponent is not positive,
// and the exact coefficient * 10^exponent otherwise. NaN gives 0.
func (v Dec64) BigInt() *big.Int {
	result := new(big.Int)
	if v.IsNaN() {
		return result
	}
	c, e := split(v)
	result.SetInt64(c)
	if e <= 0 {
		return result
	}
	return result.Mul(result, new(big.Int).Exp(bigTen, big.NewInt(int64(e)), nil))
}

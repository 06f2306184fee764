// Copyright 2020 Aleksandr Demakin. All rights reserved.

package dec64

// Named values. Each constant is coefficient<<8 | exponent&0xff.
const (
	// Zero is the canonical zero.
	Zero Dec64 = 0
	// NaN is the canonical not-a-number.
	NaN Dec64 = nanExponent & expMask
	// NonNormalNaN is a NaN with a non-zero coefficient. It isn't equal to NaN.
	NonNormalNaN Dec64 = 128<<expBits | nanExponent&expMask
	// Zip is a zero with a non-zero exponent. It is equal to Zero.
	Zip Dec64 = 90

	// Max is the largest value.
	Max Dec64 = MaxCoefficient<<expBits | MaxExponent
	// Min is the smallest (most negative) value.
	Min Dec64 = MinCoefficient<<expBits | MaxExponent
	// MaxInt is the largest integer with a zero exponent.
	MaxInt Dec64 = MaxCoefficient << expBits
	// MinInt is the smallest integer with a zero exponent.
	MinInt Dec64 = MinCoefficient << expBits

	// Epsilon is 1e-16.
	Epsilon Dec64 = 1<<expBits | -16&expMask
	// NegativeEpsilon is -1e-16.
	NegativeEpsilon Dec64 = -1<<expBits | -16&expMask
	// Tiniest is the smallest positive value, 1e-127.
	Tiniest Dec64 = 1<<expBits | MinExponent&expMask
	// NegativeTiniest is the largest negative value, -1e-127.
	NegativeTiniest Dec64 = -1<<expBits | MinExponent&expMask
	// AlmostOne is 0.9999999999999999.
	AlmostOne Dec64 = 9999999999999999<<expBits | -16&expMask
	// NegativeAlmostOne is -0.9999999999999999.
	NegativeAlmostOne Dec64 = -9999999999999999<<expBits | -16&expMask
	// Frac1MaxInt is 1/MaxInt.
	Frac1MaxInt Dec64 = 27755575615628914<<expBits | -33&expMask
	// Googol is 1e100.
	Googol Dec64 = 1<<expBits | 100

	Cent          Dec64 = 1<<expBits | -2&expMask
	Tenth         Dec64 = 1<<expBits | -1&expMask
	Half          Dec64 = 5<<expBits | -1&expMask
	NegativeTenth Dec64 = -1<<expBits | -1&expMask
	NegativeFifth Dec64 = -2<<expBits | -1&expMask

	One   Dec64 = 1 << expBits
	Two   Dec64 = 2 << expBits
	Three Dec64 = 3 << expBits
	Four  Dec64 = 4 << expBits
	Five  Dec64 = 5 << expBits
	Six   Dec64 = 6 << expBits
	Seven Dec64 = 7 << expBits
	Eight Dec64 = 8 << expBits
	Nine  Dec64 = 9 << expBits
	Ten   Dec64 = 1<<expBits | 1

	NegativeOne   Dec64 = -1 << expBits
	NegativeTwo   Dec64 = -2 << expBits
	NegativeThree Dec64 = -3 << expBits
	NegativeFour  Dec64 = -4 << expBits
	NegativeFive  Dec64 = -5 << expBits
	NegativeSix   Dec64 = -6 << expBits
	NegativeSeven Dec64 = -7 << expBits
	NegativeEight Dec64 = -8 << expBits
	NegativeNine  Dec64 = -9 << expBits
	NegativeTen   Dec64 = -1<<expBits | 1
)

// Mathematical constants.
const (
	Pi          Dec64 = 31415926535897932<<expBits | -16&expMask
	NegativePi  Dec64 = -31415926535897932<<expBits | -16&expMask
	FracPi2     Dec64 = 15707963267948966<<expBits | -16&expMask // pi/2
	FracPi3     Dec64 = 10471975511965977<<expBits | -16&expMask // pi/3
	FracPi4     Dec64 = 7853981633974483<<expBits | -16&expMask  // pi/4
	FracPi6     Dec64 = 5235987755982989<<expBits | -16&expMask  // pi/6
	FracPi8     Dec64 = 3926990816987242<<expBits | -16&expMask  // pi/8
	Frac1Pi     Dec64 = 31830988618379067<<expBits | -17&expMask // 1/pi
	Frac2Pi     Dec64 = 6366197723675813<<expBits | -16&expMask  // 2/pi
	Frac2SqrtPi Dec64 = 11283791670955126<<expBits | -16&expMask // 2/sqrt(pi)
	Sqrt2       Dec64 = 14142135623730950<<expBits | -16&expMask
	Frac1Sqrt2  Dec64 = 7071067811865475<<expBits | -16&expMask // 1/sqrt(2)
	Sqrt3       Dec64 = 17320508075688773<<expBits | -16&expMask
	Frac1Sqrt3  Dec64 = 5773502691896258<<expBits | -16&expMask // 1/sqrt(3)
	E           Dec64 = 27182818284590452<<expBits | -16&expMask
	Log2E       Dec64 = 14426950408889634<<expBits | -16&expMask
	Log10E      Dec64 = 4342944819032518<<expBits | -16&expMask
	Ln2         Dec64 = 6931471805599453<<expBits | -16&expMask
	Ln10        Dec64 = 23025850929940457<<expBits | -16&expMask
)

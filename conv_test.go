// Copyright 2020 Aleksandr Demakin. All rights reserved.

package dec64

import (
	"fmt"
	"math"
	"math/big"
	"math/rand"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/avdva/dec64/internal/mathutil"
)

func TestFromFloat64(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		f   float64
		res Dec64
	}{
		{0, Zero},
		{math.Copysign(0, -1), Zero},
		{1, One},
		{-1, NegativeOne},
		{0.1, Tenth},
		{-0.1, NegativeTenth},
		{0.5, Half},
		{math.Pi, combine(3141592653589793, -15)},
		{-math.Pi, combine(-3141592653589793, -15)},
		{123.456, combine(123456, -3)},
		{-6076.100937455853, combine(-6076100937455853, -12)},
		{0.3, combine(3, -1)},
		{1234567890, combine(123456789, 1)},
		{1.23456e100, combine(123456, 95)},
		{-1.23456e-100, combine(-123456, -105)},
		{1e143, combine(10000000000000000, 127)},
		{1e144, NaN},
		{1e160, NaN},
		{math.MaxFloat64, NaN},
		{1.5e-127, Tiniest},
		{1e-130, Zero},
		{math.SmallestNonzeroFloat64, Zero},
		{math.NaN(), NaN},
		{math.Inf(1), NaN},
		{math.Inf(-1), NaN},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			res := FromFloat64(test.f)
			a.Equal(test.res, res, "%#v", res)
		})
	}
}

func TestFromFloat32(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		f   float32
		res Dec64
	}{
		{0, Zero},
		{1, One},
		{0.1, Tenth},
		{-2.5, combine(-25, -1)},
		{math.Pi, combine(31415927, -7)},
		{math.MaxFloat32, combine(34028235, 31)},
		{float32(math.NaN()), NaN},
		{float32(math.Inf(1)), NaN},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.res, FromFloat32(test.f))
		})
	}
}

func TestFloat64(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		v   Dec64
		res float64
	}{
		{Zero, 0},
		{Zip, 0},
		{One, 1},
		{NegativeOne, -1},
		{Tenth, 0.1},
		{Cent, 0.01},
		{Pi, math.Pi},
		{E, math.E},
		{Googol, 1e100},
		{Tiniest, 1e-127},
		{Max, 3.6028797018963967e143},
		{Min, -3.6028797018963968e143},
		{combine(123456, -3), 123.456},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.res, test.v.Float64())
		})
	}
	a.True(math.IsNaN(NaN.Float64()))
	a.True(math.IsNaN(NonNormalNaN.Float64()))
}

func TestFloat32(t *testing.T) {
	a := assert.New(t)
	a.Equal(float32(0), Zero.Float32())
	a.Equal(float32(0.1), Tenth.Float32())
	a.Equal(float32(math.Pi), Pi.Float32())
	a.Equal(float32(1e30), combine(1, 30).Float32())
	a.True(math.IsNaN(float64(NaN.Float32())))
}

// shortestDigits returns the number of significant digits in the shortest representation of f.
func shortestDigits(f float64, bitSize int) int {
	s := strconv.FormatFloat(math.Abs(f), 'e', -1, bitSize)
	mant := s[:strings.IndexByte(s, 'e')]
	return len(strings.Replace(mant, ".", "", 1))
}

func TestFloatRoundTrip(t *testing.T) {
	a := assert.New(t)
	rnd := rand.New(rand.NewSource(time.Now().Unix()))
	check := func(f float64) bool {
		v := FromFloat64(f)
		if !a.Equal(f, v.Float64(), "%#v", v) {
			return false
		}
		_, mag := v.magnitude()
		return a.Equal(shortestDigits(f, 64), mathutil.DecimalDigits(mag/mathutil.Pow10(mathutil.TrailingZeros(mag))), "%v: %#v", f, v)
	}
	check(-6076.100937455853)
	for i := 0; i < 10000; i++ {
		f := rnd.NormFloat64() * math.Pow(10, float64(rnd.Intn(200)-100))
		if f != 0 && shortestDigits(f, 64) <= 16 && !check(f) {
			return
		}
	}
	for i := 0; i < 100000; i++ {
		f := math.Float64frombits(rnd.Uint64())
		if math.IsNaN(f) || math.IsInf(f, 0) || f == 0 {
			continue
		}
		if abs := math.Abs(f); abs < 1e-110 || abs > 1e140 || shortestDigits(f, 64) > 16 {
			continue
		}
		if !check(f) {
			return
		}
	}
	for i := 0; i < 100000; i++ {
		f := math.Float32frombits(rnd.Uint32())
		if math.IsNaN(float64(f)) || math.IsInf(float64(f), 0) || f == 0 {
			continue
		}
		v := FromFloat32(f)
		if !a.Equal(f, v.Float32(), "%#v", v) {
			return
		}
		_, mag := v.magnitude()
		if !a.Equal(shortestDigits(float64(f), 32), mathutil.DecimalDigits(mag/mathutil.Pow10(mathutil.TrailingZeros(mag))), "%v: %#v", f, v) {
			return
		}
	}
}

func TestFromInt(t *testing.T) {
	a := assert.New(t)
	a.Equal(NegativeFive, FromInt(int8(-5)))
	a.Equal(combine(30000, 0), FromInt(int16(30000)))
	a.Equal(combine(-2147483648, 0), FromInt(int32(math.MinInt32)))
	a.Equal(MaxInt, FromInt(int64(MaxCoefficient)))
	a.Equal(MinInt, FromInt(int64(MinCoefficient)))
	a.Equal(combine(3602879701896397, 1), FromInt(int64(MaxCoefficient+1)))
	a.Equal(combine(9223372036854776, 3), FromInt(math.MaxInt64))
	a.Equal(combine(-9223372036854776, 3), FromInt(int64(math.MinInt64)))
	a.Equal(Zero, FromInt(0))
}

func TestFromUint(t *testing.T) {
	a := assert.New(t)
	a.Equal(combine(200, 0), FromUint(uint8(200)))
	a.Equal(combine(4294967295, 0), FromUint(uint32(math.MaxUint32)))
	a.Equal(MaxInt, FromUint(uint64(MaxCoefficient)))
	a.Equal(combine(18446744073709552, 3), FromUint(uint64(math.MaxUint64)))
	a.Equal(Zero, FromUint(uint(0)))
}

func TestBigInt(t *testing.T) {
	a := assert.New(t)
	x, ok := new(big.Int).SetString("-123456789012345678901234567890", 10)
	a.True(ok)
	a.Equal(combine(-12345678901234568, 13), FromBigInt(x))
	googol := new(big.Int).Exp(big.NewInt(10), big.NewInt(100), nil)
	a.Equal(combine(10000000000000000, 84), FromBigInt(googol))
	a.True(FromBigInt(googol).Equal(Googol))
	a.Equal(combine(-42, 0), FromBigInt(big.NewInt(-42)))
	huge := new(big.Int).Exp(big.NewInt(10), big.NewInt(150), nil)
	a.Equal(NaN, FromBigInt(huge))

	a.Equal(0, googol.Cmp(Googol.BigInt()))
	a.Equal("-15", combine(-15, -1).BigInt().String())
	a.Equal("1", Tiniest.BigInt().String())
	a.Equal("0", NaN.BigInt().String())
	a.Equal("12000", combine(12, 3).BigInt().String())
	maxInt := new(big.Int).Mul(big.NewInt(MaxCoefficient), new(big.Int).Exp(big.NewInt(10), big.NewInt(MaxExponent), nil))
	a.Equal(0, maxInt.Cmp(Max.BigInt()))
	a.True(FromBigInt(Max.BigInt()).Equal(Max))
}

func TestInt64(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		v   Dec64
		res int64
	}{
		{Zero, 0},
		{NaN, 0},
		{One, 1},
		{Pi, 31415926535897932},
		{NegativePi, -31415926535897932},
		{AlmostOne, 9999999999999999},
		{Tiniest, 1},
		{combine(12, 3), 12000},
		{combine(-15, -1), -15},
		{MaxInt, MaxCoefficient},
		{MinInt, MinCoefficient},
		{combine(9223372036854775, 3), 9223372036854775000},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.res, test.v.Int64())
		})
	}
	a.Equal(uint64(500), combine(5, 2).Uint64())
	a.Equal(uint64(0), NaN.Uint64())
	a.Equal(uint64(15), combine(15, -1).Uint64())
}

func TestTruncInt64(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		v   Dec64
		res int64
	}{
		{Zero, 0},
		{NaN, 0},
		{One, 1},
		{Pi, 3},
		{NegativePi, -3},
		{AlmostOne, 0},
		{Tiniest, 0},
		{combine(12, 3), 12000},
		{combine(-15, -1), -1},
		{combine(123456, -3), 123},
		{combine(MaxCoefficient, -18), 0},
		{combine(1, -19), 0},
		{MinInt, MinCoefficient},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.res, test.v.TruncInt64())
		})
	}
}

func BenchmarkFromFloat64(b *testing.B) {
	for i := 0; i < b.N; i++ {
		FromFloat64(123456.789)
	}
}

func BenchmarkFloat64(b *testing.B) {
	v := combine(123456789, -3)
	for i := 0; i < b.N; i++ {
		v.Float64()
	}
}

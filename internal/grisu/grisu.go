// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package grisu implements Grisu2, a float to decimal conversion, which finds
// a short digit string, that reads back into the same binary float.
// The digits are not always the shortest: rarely they are one or two digits longer.
// See Florian Loitsch, "Printing Floating-Point Numbers Quickly and Accurately with Integers".
package grisu

import (
	"math"
	"math/big"
	"math/bits"

	"github.com/avdva/dec64/internal/mathutil"
)

const (
	firstCachedExp = -348
	cachedExpStep  = 8
	cachedCount    = 87
)

// cachedPowers holds normalized approximations of 10^(-348 + 8*i).
var cachedPowers [cachedCount]diyFp

type floatInfo struct {
	mantBits uint
	expBits  uint
	bias     int
}

var (
	float64info = floatInfo{mantBits: 52, expBits: 11, bias: -1023}
	float32info = floatInfo{mantBits: 23, expBits: 8, bias: -127}
)

// diyFp is f * 2^e.
type diyFp struct {
	f uint64
	e int
}

func (x diyFp) normalize() diyFp {
	s := bits.LeadingZeros64(x.f)
	return diyFp{f: x.f << uint(s), e: x.e - s}
}

// mul returns the product rounded to 64 bits.
func (x diyFp) mul(y diyFp) diyFp {
	hi, lo := bits.Mul64(x.f, y.f)
	hi += lo >> 63
	return diyFp{f: hi, e: x.e + y.e + 64}
}

func init() {
	for i := range cachedPowers {
		cachedPowers[i] = powerOfTen(firstCachedExp + i*cachedExpStep)
	}
}

// powerOfTen returns 10^k rounded to a normalized diyFp.
func powerOfTen(k int) diyFp {
	ten := big.NewInt(10)
	if k >= 0 {
		n := new(big.Int).Exp(ten, big.NewInt(int64(k)), nil)
		shift := n.BitLen() - 64
		if shift <= 0 {
			return diyFp{f: n.Uint64()}.normalize()
		}
		f := new(big.Int).Rsh(n, uint(shift)).Uint64()
		if n.Bit(shift-1) == 1 {
			f++
			if f == 0 {
				f, shift = 1<<63, shift+1
			}
		}
		return diyFp{f: f, e: shift}
	}
	d := new(big.Int).Exp(ten, big.NewInt(int64(-k)), nil)
	shift := 63 + d.BitLen()
	q, r := new(big.Int).QuoRem(new(big.Int).Lsh(big.NewInt(1), uint(shift)), d, new(big.Int))
	if r.Lsh(r, 1).Cmp(d) >= 0 {
		q.Add(q, big.NewInt(1))
	}
	if q.BitLen() > 64 {
		q.Rsh(q, 1)
		shift--
	}
	return diyFp{f: q.Uint64(), e: -shift}
}

// cachedPower returns c = 10^-k, so that the exponent of a number
// with exponent e multiplied by c falls into [-60, -32].
func cachedPower(e int) (c diyFp, k int) {
	dk := float64(-61-e)*0.30102999566398114 + 347
	ik := int(dk)
	if dk-float64(ik) > 0 {
		ik++
	}
	index := ik>>3 + 1
	return cachedPowers[index], -(firstCachedExp + index*cachedExpStep)
}

// Float64 returns digits and exp, such that digits*10^exp reads back into f.
// f must be positive and finite.
func Float64(f float64) (digits uint64, exp int) {
	return convert(math.Float64bits(f), float64info)
}

// Float32 returns digits and exp, such that digits*10^exp reads back into f.
// f must be positive and finite.
func Float32(f float32) (digits uint64, exp int) {
	return convert(uint64(math.Float32bits(f)), float32info)
}

func convert(b uint64, info floatInfo) (uint64, int) {
	hiddenBit := uint64(1) << info.mantBits
	frac := b & (hiddenBit - 1)
	biased := int(b >> info.mantBits & (1<<info.expBits - 1))
	v := diyFp{f: frac, e: 1 + info.bias - int(info.mantBits)}
	if biased != 0 {
		v = diyFp{f: frac | hiddenBit, e: biased + info.bias - int(info.mantBits)}
	}
	return grisu2(v, hiddenBit)
}

// boundaries returns the neighbourhood of v, which reads back into v.
func boundaries(v diyFp, hiddenBit uint64) (minus, plus diyFp) {
	plus = diyFp{f: v.f<<1 + 1, e: v.e - 1}.normalize()
	if v.f == hiddenBit {
		// the lower neighbour is closer at a power of two.
		minus = diyFp{f: v.f<<2 - 1, e: v.e - 2}
	} else {
		minus = diyFp{f: v.f<<1 - 1, e: v.e - 1}
	}
	minus.f <<= uint(minus.e - plus.e)
	minus.e = plus.e
	return minus, plus
}

func grisu2(v diyFp, hiddenBit uint64) (uint64, int) {
	minus, plus := boundaries(v, hiddenBit)
	c, k := cachedPower(plus.e)
	w := v.normalize().mul(c)
	wPlus, wMinus := plus.mul(c), minus.mul(c)
	// stay inside the interval regardless of the multiplication error.
	wMinus.f++
	wPlus.f--
	return digitGen(w, wPlus, wPlus.f-wMinus.f, k)
}

func digitGen(w, high diyFp, delta uint64, k int) (uint64, int) {
	shift := uint(-high.e)
	one := uint64(1) << shift
	distance := high.f - w.f
	p1 := uint32(high.f >> shift)
	p2 := high.f & (one - 1)
	kappa := mathutil.DecimalDigits(uint64(p1))
	var digits uint64
	for kappa > 0 {
		pow := uint32(mathutil.Pow10(kappa - 1))
		digits = digits*10 + uint64(p1/pow)
		p1 %= pow
		kappa--
		if rest := uint64(p1)<<shift + p2; rest <= delta {
			return round(digits, delta, rest, mathutil.Pow10(kappa)<<shift, distance), k + kappa
		}
	}
	for {
		p2 *= 10
		delta *= 10
		digits = digits*10 + p2>>shift
		p2 &= one - 1
		kappa--
		if p2 < delta {
			// past 10^19 the distance is ignored.
			return round(digits, delta, p2, one, distance*mathutil.Pow10(-kappa)), k + kappa
		}
	}
}

// round moves the last digit closer to w, while the result stays inside the interval.
func round(digits, delta, rest, tenKappa, distance uint64) uint64 {
	for rest < distance && delta-rest >= tenKappa &&
		(rest+tenKappa < distance || distance-rest > rest+tenKappa-distance) {
		digits--
		rest += tenKappa
	}
	return digits
}

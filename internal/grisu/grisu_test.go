// Copyright 2020 Aleksandr Demakin. All rights reserved.

package grisu

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCachedPowers(t *testing.T) {
	a := assert.New(t)
	a.Equal(diyFp{f: 0xfa8fd5a0081c0288, e: -1220}, cachedPowers[0])
	a.Equal(diyFp{f: 0xaf87023b9bf0ee6b, e: 1066}, cachedPowers[cachedCount-1])
	a.Equal(diyFp{f: 10000 << 50, e: -50}, cachedPowers[(4-firstCachedExp)/cachedExpStep])
	for _, p := range cachedPowers {
		a.True(p.f>>63 == 1)
	}
}

func TestFloat64(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		f      float64
		digits uint64
		exp    int
	}{
		{3.141592653589793, 3141592653589793, -15},
		{1234567890, 123456789, 1},
		{1.23456e100, 123456, 95},
		{1.23456e-100, 123456, -105},
		{0.1, 1, -1},
		{1.0 / 3, 3333333333333333, -16},
		{123.456, 123456, -3},
		{5e-324, 5, -324},
		{math.MaxFloat64, 17976931348623157, 292},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			digits, exp := Float64(test.f)
			a.Equal(test.digits, digits)
			a.Equal(test.exp, exp)
		})
	}
}

func TestFloat32(t *testing.T) {
	a := assert.New(t)
	digits, exp := Float32(3.1415927)
	a.Equal(uint64(31415927), digits)
	a.Equal(-7, exp)
	digits, exp = Float32(0.1)
	a.Equal(uint64(1), digits)
	a.Equal(-1, exp)
}

func TestRoundTrip(t *testing.T) {
	a := assert.New(t)
	rnd := rand.New(rand.NewSource(time.Now().Unix()))
	for i := 0; i < 100000; i++ {
		f := math.Float64frombits(rnd.Uint64() &^ (1 << 63))
		if math.IsNaN(f) || math.IsInf(f, 0) || f == 0 {
			continue
		}
		digits, exp := Float64(f)
		parsed, err := strconv.ParseFloat(fmt.Sprintf("%de%d", digits, exp), 64)
		if !a.NoError(err) || !a.Equal(f, parsed) {
			return
		}
	}
	for i := 0; i < 100000; i++ {
		f := math.Float32frombits(rnd.Uint32() &^ (1 << 31))
		if math.IsNaN(float64(f)) || math.IsInf(float64(f), 0) || f == 0 {
			continue
		}
		digits, exp := Float32(f)
		parsed, err := strconv.ParseFloat(fmt.Sprintf("%de%d", digits, exp), 32)
		if !a.NoError(err) || !a.Equal(f, float32(parsed)) {
			return
		}
	}
}

func BenchmarkFloat64(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Float64(float64(i) + 0.123456789)
	}
}

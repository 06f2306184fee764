// Copyright 2020 Aleksandr Demakin. All rights reserved.

package dec64

// Equal returns true if v and other represent the same number.
// Different encodings of one number are equal, all zeros are equal,
// a NaN is only equal to the same NaN bit pattern.
func (v Dec64) Equal(other Dec64) bool {
	if v == other {
		return true
	}
	if v.IsZero() && other.IsZero() {
		return true
	}
	return v.Sub(other).IsZero()
}

// PartialCmp compares v and other.
// The result is -1 if v < other, 0 if v == other, and +1 if v > other.
// ok is false, if exactly one of the values is NaN, and the values have no order.
// Two NaNs are considered equal.
func (v Dec64) PartialCmp(other Dec64) (result int, ok bool) {
	if v == other {
		return 0, true
	}
	switch vNaN, otherNaN := v.IsNaN(), other.IsNaN(); {
	case vNaN && otherNaN:
		return 0, true
	case vNaN || otherNaN:
		return 0, false
	}
	diff := v.Sub(other)
	if diff.IsNaN() {
		// the difference overflows, if the signs differ, or if other is Min.
		if v.Sign() < other.Sign() {
			return -1, true
		}
		return 1, true
	}
	switch {
	case diff.IsZero():
		return 0, true
	case diff.Coefficient() > 0:
		return 1, true
	default:
		return -1, true
	}
}

// Less returns true if v < other.
func (v Dec64) Less(other Dec64) bool {
	res, ok := v.PartialCmp(other)
	return ok && res < 0
}

// LessOrEqual returns true if v <= other.
func (v Dec64) LessOrEqual(other Dec64) bool {
	res, ok := v.PartialCmp(other)
	return ok && res <= 0
}

// Greater returns true if v > other.
func (v Dec64) Greater(other Dec64) bool {
	res, ok := v.PartialCmp(other)
	return ok && res > 0
}

// GreaterOrEqual returns true if v >= other.
func (v Dec64) GreaterOrEqual(other Dec64) bool {
	res, ok := v.PartialCmp(other)
	return ok && res >= 0
}

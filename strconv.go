// Copyright 2020 Aleksandr Demakin. All rights reserved.

package dec64

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

const (
	delim = '.'

	// maxPlainDigits is the longest integer, which is printed without an exponent.
	maxPlainDigits = 20
	// maxPlainPlaces is the longest fraction, which is printed without an exponent.
	maxPlainPlaces = 18
	// maxParsedDigits is the number of digits, that are kept while parsing.
	// It fits an uint64, and is longer than any coefficient, so the rounding is done once by pack.
	maxParsedDigits = 18

	nanString = "nan"
)

var (
	// 256 zeros, enough for any exponent.
	manyZeros = strings.Repeat("0", 256)
)

type posError struct {
	pos int
	err string
}

func newPosError(err string, pos int) *posError {
	return &posError{err: err, pos: pos}
}

func (pe posError) Error() string {
	return pe.err + fmt.Sprintf(" at pos %d", pe.pos)
}

func addPosErrorOffset(err error, offset int) error {
	var pe *posError
	if !errors.As(err, &pe) { // try to locate error position.
		return err
	}
	pe.pos += offset
	return pe
}

type formatMode int

const (
	formatAuto formatMode = iota
	formatPlain
	formatScientific
)

// GoString returns debug string representation.
func (v Dec64) GoString() string {
	c, e := split(v)
	return v.String() + fmt.Sprintf(" {%v, %v}", c, e)
}

// String returns a string representation of the value.
// Very big and very small values are printed with an exponent, like "1.23456e-30".
// NaN is printed as "nan".
func (v Dec64) String() string {
	var builder strings.Builder
	v.toStringsBuilder(&builder, formatAuto, -1)
	return builder.String()
}

// Format implements fmt.Formatter.
// Verbs 'v' and 's' print the same as String, "%#v" prints GoString.
// 'f' never uses an exponent, 'e' always does. 'f' also supports precision, like "%.2f".
func (v Dec64) Format(f fmt.State, verb rune) {
	var builder strings.Builder
	switch verb {
	case 'v', 's':
		if verb == 'v' && f.Flag('#') {
			builder.WriteString(v.GoString())
			break
		}
		v.toStringsBuilder(&builder, formatAuto, -1)
	case 'f', 'F':
		places := -1
		if prec, ok := f.Precision(); ok {
			places = prec
			v = v.Round(prec)
		}
		v.toStringsBuilder(&builder, formatPlain, places)
	case 'e', 'E':
		v.toStringsBuilder(&builder, formatScientific, -1)
	default:
		fmt.Fprintf(f, "%%!%c(dec64.Dec64=%s)", verb, v.String())
		return
	}
	s := builder.String()
	if w, ok := f.Width(); ok && len(s) < w {
		pad := strings.Repeat(" ", w-len(s))
		if f.Flag('-') {
			s += pad
		} else {
			s = pad + s
		}
	}
	f.Write([]byte(s))
}

// toStringsBuilder writes the value. places is the minimal number of fractional digits
// for formatPlain, -1 means no padding.
func (v Dec64) toStringsBuilder(builder *strings.Builder, mode formatMode, places int) {
	if v.IsNaN() {
		builder.WriteString(nanString)
		return
	}
	neg, mag := v.magnitude()
	e := int(v.Exponent())
	if mag == 0 {
		e = 0
	}
	if neg {
		builder.WriteRune('-')
	}
	digits := strconv.FormatUint(mag, 10)
	// significant digits, without trailing zeros.
	significant := strings.TrimRight(digits, "0")
	if significant == "" {
		significant = "0"
	}
	if mode == formatScientific {
		writeScientific(builder, significant, e+len(digits)-1)
		return
	}
	if e >= 0 {
		if mode == formatAuto && len(digits)+e > maxPlainDigits {
			writeScientific(builder, significant, e+len(digits)-1)
			return
		}
		builder.WriteString(digits)
		builder.WriteString(zeroStr(e))
		writeFracPadding(builder, 0, places)
		return
	}
	point := len(digits) + e
	if point <= 0 {
		if mode == formatAuto && len(significant)-point > maxPlainPlaces {
			writeScientific(builder, significant, e+len(digits)-1)
			return
		}
		builder.WriteRune('0')
		builder.WriteRune(delim)
		builder.WriteString(zeroStr(-point))
		builder.WriteString(significant)
		writeFracPadding(builder, len(significant)-point, places)
		return
	}
	builder.WriteString(digits[:point])
	var frac string
	if len(significant) > point {
		frac = significant[point:]
		builder.WriteRune(delim)
		builder.WriteString(frac)
	}
	writeFracPadding(builder, len(frac), places)
}

func writeScientific(builder *strings.Builder, significant string, exp int) {
	builder.WriteByte(significant[0])
	if len(significant) > 1 {
		builder.WriteRune(delim)
		builder.WriteString(significant[1:])
	}
	if exp != 0 {
		builder.WriteRune('e')
		builder.WriteString(strconv.Itoa(exp))
	}
}

// writeFracPadding adds trailing zeros to have at least 'places' fractional digits.
func writeFracPadding(builder *strings.Builder, have, places int) {
	if places <= have {
		return
	}
	if have == 0 {
		builder.WriteRune(delim)
	}
	builder.WriteString(zeroStr(places - have))
}

func zeroStr(count int) string {
	if count <= len(manyZeros) {
		return manyZeros[:count]
	}
	return strings.Repeat("0", count)
}

// MarshalText implements encoding.TextMarshaler.
func (v Dec64) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Dec64) UnmarshalText(data []byte) error {
	parsed, err := FromString(string(data))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// MustFromString parses a string into a value.
// It panics if the string cannot be parsed.
func MustFromString(s string) Dec64 {
	v, err := FromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

// FromString parses a string into a value.
// Accepted are decimal numbers with an optional sign, a fractional part and an exponent,
// like "-123.456e-7", optionally in quotes, and "nan".
// Numbers with more than 17 significant digits are rounded half away from zero.
func FromString(s string) (Dec64, error) {
	s, offset, neg := prepareString(s)
	if len(s) == 0 {
		return Zero, fmt.Errorf("empty input")
	}
	if strings.EqualFold(s, nanString) {
		return NaN, nil
	}
	digits, e, err := doParse(s)
	if err != nil {
		// add what we've trimmed before and add +1 to the offset to start indices from 1.
		return Zero, fmt.Errorf("parsing failed: %w", addPosErrorOffset(err, offset+1))
	}
	if len(digits) == 0 {
		return Zero, nil
	}
	if len(digits) > maxParsedDigits {
		e += len(digits) - maxParsedDigits
		digits = digits[:maxParsedDigits]
	}
	mag, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		panic(err) // should not normally happen
	}
	return pack(neg, mag, e), nil
}

// doParse parses given decimal string.
// returns a string without leading and trailing zeros, and an exponent
func doParse(s string) (result string, e int, err error) {
	result, delimPos, e, err := removeLeadingZeros(s)
	if err != nil {
		return "", 0, err
	}
	result, eFromDelim := removeTrailingZerosString(result, delimPos)
	return result, e + eFromDelim, nil
}

// prepareString cleans the string from ",-,+ symbols, and spaces.
func prepareString(s string) (prepared string, offset int, neg bool) {
	if len(s) == 0 {
		return "", 0, false
	}
	if s[0] == '"' {
		s = s[1:]
		offset++
	}
	if len(s) == 0 {
		return "", 0, false
	}
	if s[len(s)-1] == '"' {
		s = s[:len(s)-1]
	}
	if trimmed := strings.TrimLeftFunc(s, unicode.IsSpace); len(trimmed) != len(s) {
		offset += len(s) - len(trimmed)
		s = trimmed
	}
	s = strings.TrimRightFunc(s, unicode.IsSpace)
	if len(s) == 0 {
		return "", 0, false
	}
	if s[0] == '-' {
		neg = true
		offset++
		s = s[1:]
	} else if s[0] == '+' {
		offset++
		s = s[1:]
	}
	return s, offset, neg
}

func removeLeadingZeros(s string) (result string, delimPos int, e int, err error) {
	var b strings.Builder
	delimPos, firstNonZeroPos, digitsSeen := -1, -1, false
outer:
	for i, r := range s {
		switch {
		case '0' <= r && r <= '9':
			digitsSeen = true
			if b.Len() == 0 {
				if r == '0' { // trim leading zeros
					continue
				}
				firstNonZeroPos = i
			}
			b.WriteRune(r)
		case r == 'e' || r == 'E':
			if !digitsSeen {
				return "", 0, 0, newPosError("missing digits before exponent", i)
			}
			parsed, err := strconv.ParseInt(s[i+1:], 10, 32)
			if err != nil {
				return "", 0, 0, newPosError("error parsing exponent: "+err.Error(), i+1)
			}
			e = int(parsed)
			break outer
		case r == delim:
			if delimPos != -1 {
				return "", 0, 0, newPosError("unexpected delimiter", i)
			}
			delimPos = i
		default:
			return "", 0, 0, newPosError(fmt.Sprintf("unexpected symbol %q", r), i)
		}
	}
	if !digitsSeen {
		return "", 0, 0, newPosError("no digits", 0)
	}
	if firstNonZeroPos == -1 { // a zero-only string
		return "", 0, 0, nil
	}

	result = b.String()

	// move delimPos to the beginning of the trimmed string
	if delimPos >= 0 {
		if delimPos < firstNonZeroPos {
			firstNonZeroPos--
		}
		delimPos -= firstNonZeroPos
	} else { // if there is no delim, add one at the end of the string 123 --> 123.
		delimPos = len(result)
	}

	return result, delimPos, e, nil
}

func removeTrailingZerosString(s string, delimPos int) (result string, e int) {
	for {
		l := len(s)
		if l == 0 || s[l-1] != '0' {
			break
		}
		s = s[:l-1]
	}
	return s, delimPos - len(s)
}

// Copyright 2020 Aleksandr Demakin. All rights reserved.

package dec64

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

var (
	// JSONMode defines the way all values are marshaled into json, see JSONMode* constants.
	// This variable is not thread-safe, so this should be changed on program start.
	JSONMode = JSONModeCompact
)

const (
	// JSONModeString produces values as strings, like `"1234.5678"`
	JSONModeString = iota
	// JSONModeFloat marshals values as json numbers, like `1234.5678`. NaN is marshaled as null.
	JSONModeFloat
	// JSONModeME marshals values with coefficient and exponent, like `{"m":123,"e":-5}`.
	JSONModeME
	// JSONModeCompact will choose the shortest form between JSONModeString and JSONModeME.
	JSONModeCompact
)

var (
	jsonParts = []string{`{"m":`, `,"e":`, `}`}
	jsonNull  = []byte("null")
)

// MarshalJSON marshals value according to current JSONMode.
// See JSONMode and JSONMode* constants.
func (v Dec64) MarshalJSON() ([]byte, error) {
	return v.toJSON(JSONMode), nil
}

func (v Dec64) toJSON(mode int) []byte {
	switch mode {
	case JSONModeFloat:
		if v.IsNaN() {
			return jsonNull
		}
		return []byte(v.String())
	case JSONModeME:
		c, e := split(v)
		switch {
		case v.IsNaN():
			c = 0
		case c == 0:
			e = 0
		}
		var builder strings.Builder
		builder.WriteString(jsonParts[0])
		builder.WriteString(strconv.FormatInt(c, 10))
		builder.WriteString(jsonParts[1])
		builder.WriteString(strconv.Itoa(e))
		builder.WriteString(jsonParts[2])
		return []byte(builder.String())
	case JSONModeCompact:
		str, me := v.toJSON(JSONModeString), v.toJSON(JSONModeME)
		if len(str) <= len(me) {
			return str
		}
		return me
	default: // marshal as a string
		var builder strings.Builder
		builder.WriteRune('"')
		v.toStringsBuilder(&builder, formatAuto, -1)
		builder.WriteRune('"')
		return []byte(builder.String())
	}
}

// UnmarshalJSON unmarshals a string, a number, or an object into a value.
// null leaves the value unchanged.
func (v *Dec64) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return fmt.Errorf("empty json")
	}
	switch data[0] {
	case 'n':
		if !bytes.Equal(data, jsonNull) {
			return fmt.Errorf("unexpected json %q", data)
		}
	case '{':
		d := struct {
			M *int64
			E *int
		}{}
		if err := json.Unmarshal(data, &d); err != nil {
			return err
		}
		if d.M == nil || d.E == nil {
			return fmt.Errorf("both coefficient and exponent are required")
		}
		if *d.E == nanExponent {
			*v = NaN
			return nil
		}
		*v = New(*d.M, *d.E)
	default:
		value, err := FromString(string(data))
		if err != nil {
			return err
		}
		*v = value
	}
	return nil
}

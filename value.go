// SPDX-License-Identifier: Apache-2.0 OR MIT

package sysgpio

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Value is the digital level of a pin.
//
// The underlying integers match the sysfs value file format, so Low is 0 and
// High is 1.
type Value int

const (
	// Low is the inactive level.
	Low Value = 0

	// High is the active level.
	High Value = 1
)

// String returns the form the kernel expects in the value control file,
// "0" for Low and "1" for High.
func (v Value) String() string {
	return strconv.Itoa(int(v))
}

// Invert returns the opposite level.
func (v Value) Invert() Value {
	if v == Low {
		return High
	}
	return Low
}

// Bool projects the value onto a bool, Low being false and High true.
func (v Value) Bool() bool {
	return v == High
}

// ValueOf returns the Value corresponding to the given bool, High for true
// and Low for false.
func ValueOf(b bool) Value {
	if b {
		return High
	}
	return Low
}

// ParseValue parses the content of a value control file.
//
// Surrounding whitespace is trimmed, as the kernel appends a newline.
// Only 0 and 1 are accepted; anything else fails with ErrValueFailed rather
// than being coerced to a level.
func ParseValue(s string) (Value, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return Low, errors.Wrapf(ErrValueFailed, "unparseable value %q", s)
	}
	switch Value(v) {
	case Low, High:
		return Value(v), nil
	default:
		return Low, errors.Wrapf(ErrValueFailed, "unexpected value %d", v)
	}
}

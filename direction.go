// SPDX-License-Identifier: Apache-2.0 OR MIT

package sysgpio

import "fmt"

// Direction indicates whether a pin is read from or driven.
type Direction int

const (
	// In configures the pin as an input.
	In Direction = iota

	// Out configures the pin as an output.
	Out
)

// String returns the form the kernel expects in the direction control file,
// exactly "in" or "out".
func (d Direction) String() string {
	switch d {
	case In:
		return "in"
	case Out:
		return "out"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// valid reports whether d is one of the two supported directions.
//
// Setters reject anything else rather than writing it to the kernel.
func (d Direction) valid() bool {
	return d == In || d == Out
}

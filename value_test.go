// SPDX-License-Identifier: Apache-2.0 OR MIT

package sysgpio_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/sysgpio/sysgpio"
)

func TestValueString(t *testing.T) {
	assert.Equal(t, "0", sysgpio.Low.String())
	assert.Equal(t, "1", sysgpio.High.String())
}

func TestValueInt(t *testing.T) {
	// the underlying integers are the sysfs wire format
	assert.Equal(t, 0, int(sysgpio.Low))
	assert.Equal(t, 1, int(sysgpio.High))
}

func TestValueInvert(t *testing.T) {
	assert.Equal(t, sysgpio.High, sysgpio.Low.Invert())
	assert.Equal(t, sysgpio.Low, sysgpio.High.Invert())
	assert.Equal(t, sysgpio.Low, sysgpio.Low.Invert().Invert())
	assert.Equal(t, sysgpio.High, sysgpio.High.Invert().Invert())
}

func TestValueBool(t *testing.T) {
	assert.False(t, sysgpio.Low.Bool())
	assert.True(t, sysgpio.High.Bool())
	assert.Equal(t, sysgpio.High, sysgpio.ValueOf(true))
	assert.Equal(t, sysgpio.Low, sysgpio.ValueOf(false))
}

func TestParseValue(t *testing.T) {
	patterns := []struct {
		name string
		s    string
		v    sysgpio.Value
		ok   bool
	}{
		{"low", "0", sysgpio.Low, true},
		{"high", "1", sysgpio.High, true},
		{"trailing newline", "1\n", sysgpio.High, true},
		{"surrounding whitespace", " 0 \n", sysgpio.Low, true},
		{"out of range", "2", sysgpio.Low, false},
		{"negative", "-1", sysgpio.Low, false},
		{"empty", "", sysgpio.Low, false},
		{"text", "high", sysgpio.Low, false},
	}
	for _, p := range patterns {
		p := p
		t.Run(p.name, func(t *testing.T) {
			v, err := sysgpio.ParseValue(p.s)
			if p.ok {
				assert.Nil(t, err)
				assert.Equal(t, p.v, v)
			} else {
				assert.ErrorIs(t, err, sysgpio.ErrValueFailed)
			}
		})
	}
}

func TestDirectionString(t *testing.T) {
	// exact lowercase literals the kernel expects
	assert.Equal(t, "in", sysgpio.In.String())
	assert.Equal(t, "out", sysgpio.Out.String())
}

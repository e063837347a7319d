// SPDX-License-Identifier: Apache-2.0 OR MIT

package sysgpio

import (
	"fmt"
	"path"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// ClassPath is the default location of the GPIO class tree.
const ClassPath = "/sys/class/gpio"

// The kernel creates the per-pin directory asynchronously after the export
// write, so the export waits for it with a bounded poll.
const (
	exportPollInterval = 10 * time.Millisecond
	exportPollRetries  = 10
)

// Pin provides the interface to one exported GPIO pin.
//
// While a Pin is live the pin is exported in the kernel and its control files
// exist under /sys/class/gpio/gpio{pin}/. At most one live Pin should exist
// per physical pin number - the kernel rejects conflicting exports and this
// library does not arbitrate them.
//
// A Pin is not safe for concurrent use.
type Pin struct {
	// The pin number in the kernel's sysfs numbering.
	num int

	// The path to the GPIO class tree, ClassPath unless relocated.
	root string

	// The path to the per-pin directory, root/gpio{num}.
	pinPath string

	// The file access used to reach the control files.
	fs Sysfs

	// Cache of the last applied direction.
	direction Direction

	// The last error recorded by a best-effort call.
	err error
}

// RequestPin exports the pin and applies the requested direction, returning
// a live Pin bound to it.
//
// Negative pin numbers fail with ErrInvalidPin before any filesystem access.
// If the export write fails, or the kernel does not create the pin directory
// within the wait budget, the pin was never exported. If the export succeeds
// but the direction cannot be applied, RequestPin fails and the pin remains
// exported; no rollback is attempted.
//
// Release the pin with Close or Cleanup when done with it.
func RequestPin(pin int, direction Direction, options ...PinOption) (*Pin, error) {
	if pin < 0 {
		return nil, errors.Wrapf(ErrInvalidPin, "pin %d", pin)
	}
	p := &Pin{num: pin, root: ClassPath, fs: defaultSysfs()}
	for _, o := range options {
		o.applyPinOption(p)
	}
	p.pinPath = path.Join(p.root, fmt.Sprintf("gpio%d", pin))
	if err := p.export(); err != nil {
		return nil, err
	}
	if err := p.SetDirection(direction); err != nil {
		// The pin stays exported - the caller may still Cleanup.
		return nil, err
	}
	return p, nil
}

// export writes the pin number to the export control file and waits for the
// kernel to create the pin directory.
func (p *Pin) export() error {
	if err := p.fs.WriteFile(path.Join(p.root, "export"), strconv.Itoa(p.num)); err != nil {
		return err
	}
	// Pin directory creation is asynchronous.
	for i := 0; i < exportPollRetries; i++ {
		if p.fs.Exists(p.pinPath) {
			return nil
		}
		time.Sleep(exportPollInterval)
	}
	return errors.Wrapf(ErrExportFailed, "gpio%d did not appear", p.num)
}

// unexport writes the pin number to the unexport control file.
func (p *Pin) unexport() error {
	err := p.fs.WriteFile(path.Join(p.root, "unexport"), strconv.Itoa(p.num))
	if err == nil || errors.Is(err, ErrNotSupported) {
		return err
	}
	return wrapKind(ErrUnexportFailed, err)
}

// Number returns the pin number.
func (p *Pin) Number() int {
	return p.num
}

// String returns the name of the pin in sysfs space.
//
// e.g. "gpio18"
func (p *Pin) String() string {
	return fmt.Sprintf("gpio%d", p.num)
}

// Exported reports whether the pin directory currently exists.
func (p *Pin) Exported() bool {
	return p.fs.Exists(p.pinPath)
}

// Direction returns the last direction applied through this Pin.
//
// The kernel is not consulted; an external change to the direction file is
// not reflected here.
func (p *Pin) Direction() Direction {
	return p.direction
}

// SetDirection applies the direction to the pin.
//
// Failures are reported as ErrDirectionSetFailed wrapping the underlying
// file error.
func (p *Pin) SetDirection(d Direction) error {
	if !d.valid() {
		return errors.Wrapf(ErrDirectionSetFailed, "gpio%d: %s", p.num, d)
	}
	if err := p.fs.WriteFile(path.Join(p.pinPath, "direction"), d.String()); err != nil {
		if errors.Is(err, ErrNotSupported) {
			return err
		}
		return wrapKind(ErrDirectionSetFailed, err)
	}
	p.direction = d
	return nil
}

// WithDirection applies the direction best-effort and returns the Pin for
// chained configuration.
//
// A failure is recorded and readable through Err, not returned. Prefer
// SetDirection when the error matters.
func (p *Pin) WithDirection(d Direction) *Pin {
	if err := p.SetDirection(d); err != nil {
		p.err = err
	}
	return p
}

// Err returns the last error recorded by a best-effort call, or nil.
func (p *Pin) Err() error {
	return p.err
}

// Value reads the current level of the pin.
//
// Read or parse failures are reported as ErrValueFailed wrapping the cause.
func (p *Pin) Value() (Value, error) {
	s, err := p.fs.ReadFile(path.Join(p.pinPath, "value"))
	if err != nil {
		if errors.Is(err, ErrNotSupported) {
			return Low, err
		}
		return Low, wrapKind(ErrValueFailed, err)
	}
	v, err := ParseValue(s)
	if err != nil {
		return Low, errors.Wrapf(err, "gpio%d", p.num)
	}
	return v, nil
}

// SetValue drives the pin to the given level.
//
// The pin must have been configured as an output for the write to take
// effect; the kernel rejects value writes to inputs.
func (p *Pin) SetValue(v Value) error {
	if err := p.fs.WriteFile(path.Join(p.pinPath, "value"), v.String()); err != nil {
		if errors.Is(err, ErrNotSupported) {
			return err
		}
		return wrapKind(ErrValueFailed, err)
	}
	return nil
}

// SetHigh drives the pin high.
func (p *Pin) SetHigh() error {
	return p.SetValue(High)
}

// SetLow drives the pin low.
func (p *Pin) SetLow() error {
	return p.SetValue(Low)
}

// Toggle reads the current level and drives the pin to the opposite one.
//
// The read and write are two separate operations; a concurrent change to the
// pin between them is a race this method does not mitigate.
func (p *Pin) Toggle() error {
	v, err := p.Value()
	if err != nil {
		return err
	}
	return p.SetValue(v.Invert())
}

// Cleanup unexports the pin and returns the result.
//
// Safe to call repeatedly; once the pin is unexported the kernel may reject
// further writes, and that failure comes back as an ordinary error.
func (p *Pin) Cleanup() error {
	return p.unexport()
}

// Close unexports the pin, discarding any failure.
//
// It is intended for deferred release, where no error channel exists. Use
// Cleanup to observe the unexport result.
func (p *Pin) Close() {
	p.unexport()
}

// SPDX-License-Identifier: Apache-2.0 OR MIT

package sysgpio

import (
	"fmt"

	"github.com/pkg/errors"
)

// The error kinds returned by pin operations.
//
// Operations wrap these, so match with errors.Is rather than equality.
var (
	// ErrInvalidPin indicates a negative pin number was given to RequestPin.
	ErrInvalidPin = errors.New("invalid pin number")

	// ErrExportFailed indicates the kernel did not materialize the pin
	// directory within the export wait budget.
	ErrExportFailed = errors.New("export failed")

	// ErrUnexportFailed indicates the kernel rejected the release of the pin.
	ErrUnexportFailed = errors.New("unexport failed")

	// ErrDirectionSetFailed indicates the direction could not be applied.
	ErrDirectionSetFailed = errors.New("set direction failed")

	// ErrValueFailed indicates the value could not be read, parsed or written.
	ErrValueFailed = errors.New("value failed")

	// ErrNotSupported indicates the platform has no sysfs GPIO support.
	//
	// On such platforms every operation short-circuits to this error without
	// touching the filesystem.
	ErrNotSupported = errors.New("sysfs gpio not supported on this platform")
)

// FSError is a low-level control file access failure.
//
// It carries the failed operation, the path of the control file and the
// underlying OS error, and unwraps to the latter so os.IsPermission and
// friends still work through it.
type FSError struct {
	// Op is the attempted operation, "read" or "write".
	Op string

	// Path is the control file being accessed.
	Path string

	// Err is the underlying OS error.
	Err error
}

func (e *FSError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FSError) Unwrap() error {
	return e.Err
}

// wrapKind ties an error kind to the failure that triggered it, so callers
// can match the kind with errors.Is and still reach the cause with errors.As.
func wrapKind(kind, err error) error {
	return &kindError{kind: kind, err: err}
}

type kindError struct {
	kind error
	err  error
}

func (e *kindError) Error() string {
	return e.kind.Error() + ": " + e.err.Error()
}

func (e *kindError) Is(target error) bool {
	return target == e.kind
}

func (e *kindError) Unwrap() error {
	return e.err
}

// SPDX-License-Identifier: Apache-2.0 OR MIT

package sysgpio

import "os"

// Sysfs is the file access a Pin uses to reach the kernel's GPIO control
// files.
//
// The default implementation talks to the real filesystem on Linux and fails
// with ErrNotSupported elsewhere. Tests inject their own with WithSysfs to
// exercise pin sequencing without hardware or privilege.
type Sysfs interface {
	// WriteFile replaces the content of the control file at path.
	WriteFile(path, contents string) error

	// ReadFile returns the content of the control file at path, decoded
	// as text.
	ReadFile(path string) (string, error)

	// Exists reports whether path currently exists.
	Exists(path string) bool
}

// hostSysfs accesses control files through the OS.
//
// Control files are single-value pseudo-files, so whole-file reads and
// truncating whole-file writes are the correct granularity.
type hostSysfs struct{}

func (hostSysfs) WriteFile(path, contents string) error {
	if err := os.WriteFile(path, []byte(contents), 0666); err != nil {
		return &FSError{Op: "write", Path: path, Err: err}
	}
	return nil
}

func (hostSysfs) ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", &FSError{Op: "read", Path: path, Err: err}
	}
	return string(data), nil
}

func (hostSysfs) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// unsupportedSysfs rejects every access with ErrNotSupported.
//
// It is the default on platforms without sysfs GPIO, and guarantees no
// accidental writes to unrelated paths there.
type unsupportedSysfs struct{}

func (unsupportedSysfs) WriteFile(path, contents string) error {
	return ErrNotSupported
}

func (unsupportedSysfs) ReadFile(path string) (string, error) {
	return "", ErrNotSupported
}

func (unsupportedSysfs) Exists(path string) bool {
	return false
}

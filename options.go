// SPDX-License-Identifier: Apache-2.0 OR MIT

package sysgpio

// PinOption defines the interface required to provide an option to RequestPin.
type PinOption interface {
	applyPinOption(*Pin)
}

// SysfsOption provides the file access the Pin uses.
type SysfsOption struct {
	fs Sysfs
}

// WithSysfs returns an option that injects the file access used to reach the
// control files.
//
// The main use is substituting a fake in tests, so pin sequencing can be
// exercised without hardware or privilege.
func WithSysfs(fs Sysfs) SysfsOption {
	return SysfsOption{fs}
}

func (o SysfsOption) applyPinOption(p *Pin) {
	p.fs = o.fs
}

// RootOption relocates the GPIO class tree.
type RootOption string

// WithRoot returns an option that relocates the GPIO class tree from
// ClassPath to the given directory.
func WithRoot(root string) RootOption {
	return RootOption(root)
}

func (o RootOption) applyPinOption(p *Pin) {
	p.root = string(o)
}

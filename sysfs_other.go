// SPDX-License-Identifier: Apache-2.0 OR MIT

//go:build !linux

package sysgpio

func defaultSysfs() Sysfs {
	return unsupportedSysfs{}
}

// SPDX-License-Identifier: Apache-2.0 OR MIT

package sysgpio

func defaultSysfs() Sysfs {
	return hostSysfs{}
}

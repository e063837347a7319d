// SPDX-License-Identifier: Apache-2.0 OR MIT

/*
Package sysgpio controls digital GPIO pins on Linux single-board computers
through the kernel's legacy sysfs interface (/sys/class/gpio).

A [Pin] owns the lifecycle of one exported GPIO line: [RequestPin] exports the
pin and applies the requested direction, the pin methods read and write the
direction and value control files, and [Pin.Close] or [Pin.Cleanup] unexports
the pin when you are done with it.

The pin number is the raw number the kernel uses in /sys/class/gpio, which is
platform and numbering-scheme specific. No translation between BCM, Jetson or
header numbering is performed; supply the number your board documentation gives
for the sysfs tree.

Pins are not safe for concurrent use. Neither is creating two Pins for the
same pin number - the kernel owns the exported-pin table and a second export
of a busy pin fails kernel-side. Both are the caller's responsibility.

Exporting a pin typically requires root, or group access granted by udev
rules, to the export/unexport and per-pin control files.

# Example Usage

Drive pin 18 as an output, toggle it, and release it on return:

	p, err := sysgpio.RequestPin(18, sysgpio.Out)
	if err != nil {
		log.Fatal(err)
	}
	defer p.Close()

	p.SetHigh()
	p.Toggle()
	v, err := p.Value()

Read a pin as an input:

	p, err := sysgpio.RequestPin(23, sysgpio.In)
	if err != nil {
		log.Fatal(err)
	}
	defer p.Close()
	v, err := p.Value()
	if err == nil && v.Bool() {
		// pin is high
	}

Errors are matched by kind with errors.Is, and the underlying file failure is
reachable with errors.As:

	if errors.Is(err, sysgpio.ErrExportFailed) {
		// kernel never materialized the pin directory
	}
	var fserr *sysgpio.FSError
	if errors.As(err, &fserr) {
		// fserr.Path, fserr.Err
	}

Only the sysfs interface is modeled. The character device uAPI
(/dev/gpiochip*), edge events and pull configuration are out of scope.
*/
package sysgpio

// This file is part of Gopher80.
//
// Gopher80 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher80 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher80.  If not, see <https://www.gnu.org/licenses/>.

package memory

import (
	"github.com/jetsetilly/gopher80/logger"
)

// InFunc is called when the CPU reads from a port. The full port address is
// supplied.
type InFunc func(port uint16) uint8

// OutFunc is called when the CPU writes to a port. The full port address is
// supplied.
type OutFunc func(port uint16, data uint8)

type device struct {
	in  InFunc
	out OutFunc
}

// Ports is the I/O port space. Devices are attached to the low byte of the
// port address, which is how most Z80 systems decode I/O.
type Ports struct {
	devices [256]device
}

// NewPorts is the preferred method of initialisation for the Ports type.
func NewPorts() *Ports {
	return &Ports{}
}

// Attach a device to the port. Either function can be nil. Attaching to a
// port replaces any previously attached device.
func (p *Ports) Attach(port uint8, in InFunc, out OutFunc) {
	p.devices[port] = device{in: in, out: out}
}

// Detach any device from the port.
func (p *Ports) Detach(port uint8) {
	p.devices[port] = device{}
}

// In implements the cpubus.Ports interface. Reading from a port with no
// device attached returns 0xff.
func (p *Ports) In(port uint16) (uint8, error) {
	d := p.devices[uint8(port)]
	if d.in == nil {
		logger.Logf(logger.Allow, "ports", "read from unattached port %#04x", port)
		return 0xff, nil
	}
	return d.in(port), nil
}

// Out implements the cpubus.Ports interface. Writing to a port with no device
// attached is ignored.
func (p *Ports) Out(port uint16, data uint8) error {
	d := p.devices[uint8(port)]
	if d.out == nil {
		logger.Logf(logger.Allow, "ports", "write of %#02x to unattached port %#04x", data, port)
		return nil
	}
	d.out(port, data)
	return nil
}

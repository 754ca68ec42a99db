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

//go:build windows

package easyterm

import (
	"errors"
	"os"
)

var unsupported = errors.New("easyterm: terminal modes are not supported on this platform")

// Geometry contains the dimensions of a terminal in characters.
type Geometry struct {
	Rows uint16
	Cols uint16
}

// Terminal does nothing on this platform.
type Terminal struct{}

// NewTerminal always fails on this platform.
func NewTerminal(_ *os.File, _ *os.File) (*Terminal, error) {
	return nil, unsupported
}

func (pt *Terminal) CanonicalMode() error { return unsupported }
func (pt *Terminal) RawMode() error       { return unsupported }
func (pt *Terminal) CBreakMode() error    { return unsupported }
func (pt *Terminal) Flush() error         { return unsupported }

func (pt *Terminal) Geometry() (Geometry, error) {
	return Geometry{}, unsupported
}

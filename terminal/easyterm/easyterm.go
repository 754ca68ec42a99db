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

//go:build !windows

package easyterm

import (
	"fmt"
	"os"
	"sync"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// Geometry contains the dimensions of a terminal in characters.
type Geometry struct {
	Rows uint16
	Cols uint16
}

// Terminal is the main container for posix terminals.
type Terminal struct {
	input  *os.File
	output *os.File

	canAttr    unix.Termios
	rawAttr    unix.Termios
	cbreakAttr unix.Termios

	mu sync.Mutex
}

// NewTerminal is the preferred method of initialisation for the Terminal
// type. The current attributes of the input file are noted so that
// CanonicalMode() can restore them.
func NewTerminal(input *os.File, output *os.File) (*Terminal, error) {
	if input == nil {
		return nil, fmt.Errorf("easyterm: terminal requires an input file")
	}
	if output == nil {
		return nil, fmt.Errorf("easyterm: terminal requires an output file")
	}

	pt := &Terminal{
		input:  input,
		output: output,
	}

	if err := termios.Tcgetattr(pt.input.Fd(), &pt.canAttr); err != nil {
		return nil, fmt.Errorf("easyterm: %w", err)
	}

	// the raw and cbreak modes are variations of the canonical mode
	pt.rawAttr = pt.canAttr
	termios.Cfmakeraw(&pt.rawAttr)
	pt.cbreakAttr = pt.canAttr
	termios.Cfmakecbreak(&pt.cbreakAttr)

	return pt, nil
}

func (pt *Terminal) set(attr *unix.Termios) error {
	pt.mu.Lock()
	defer pt.mu.Unlock()
	if err := termios.Tcsetattr(pt.input.Fd(), termios.TCSANOW, attr); err != nil {
		return fmt.Errorf("easyterm: %w", err)
	}
	return nil
}

// CanonicalMode puts terminal into normal, everyday canonical mode.
func (pt *Terminal) CanonicalMode() error {
	return pt.set(&pt.canAttr)
}

// RawMode puts terminal into raw mode.
func (pt *Terminal) RawMode() error {
	return pt.set(&pt.rawAttr)
}

// CBreakMode puts terminal into cbreak mode.
func (pt *Terminal) CBreakMode() error {
	return pt.set(&pt.cbreakAttr)
}

// Flush makes sure the terminal's input/output buffers are empty.
func (pt *Terminal) Flush() error {
	pt.mu.Lock()
	defer pt.mu.Unlock()
	if err := termios.Tcflush(pt.input.Fd(), termios.TCIFLUSH); err != nil {
		return fmt.Errorf("easyterm: %w", err)
	}
	if err := termios.Tcflush(pt.output.Fd(), termios.TCOFLUSH); err != nil {
		return fmt.Errorf("easyterm: %w", err)
	}
	return nil
}

// Geometry returns the current dimensions of the output terminal.
func (pt *Terminal) Geometry() (Geometry, error) {
	ws, err := unix.IoctlGetWinsize(int(pt.output.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return Geometry{}, fmt.Errorf("easyterm: %w", err)
	}
	return Geometry{Rows: ws.Row, Cols: ws.Col}, nil
}

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

package cpm

import (
	"errors"
	"io"
	"sync"
)

// the value returned by the console when the input has been exhausted. the
// CP/M end-of-file character
const endOfInput = 0x1a

// returned by read() when the machine has been told to quit
var errQuit = errors.New("quit")

// console buffers input from an io.Reader so that the status of the console
// can be checked without blocking.
type console struct {
	output io.Writer

	crit  sync.Mutex
	input chan uint8
	done  bool

	quit <-chan struct{}
}

func newConsole(output io.Writer, input io.Reader, quit <-chan struct{}) *console {
	con := &console{
		output: output,
		input:  make(chan uint8, 256),
		quit:   quit,
	}

	if input == nil {
		close(con.input)
		con.done = true
		return con
	}

	go func() {
		defer close(con.input)
		b := make([]byte, 1)
		for {
			n, err := input.Read(b)
			if n > 0 {
				select {
				case con.input <- b[0]:
				case <-quit:
					return
				}
			}
			if err != nil {
				con.crit.Lock()
				con.done = true
				con.crit.Unlock()
				return
			}
		}
	}()

	return con
}

// ready returns true if a call to read() will not block.
func (con *console) ready() bool {
	if len(con.input) > 0 {
		return true
	}
	con.crit.Lock()
	defer con.crit.Unlock()
	return con.done
}

// read waits for and returns the next byte of input.
func (con *console) read() (uint8, error) {
	select {
	case b, ok := <-con.input:
		if !ok {
			return endOfInput, nil
		}
		return b, nil
	case <-con.quit:
		return 0, errQuit
	}
}

func (con *console) write(b ...uint8) error {
	if con.output == nil {
		return nil
	}
	_, err := con.output.Write(b)
	return err
}

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

package test

import (
	"fmt"
)

// CappedWriter is an io.Writer that keeps only the first size bytes written
// to it. Writes beyond the cap are accepted and discarded so that the writer
// never causes an error in the code being tested.
type CappedWriter struct {
	buffer    []byte
	size      int
	discarded int
}

// NewCappedWriter is the preferred method of initialisation for the
// CappedWriter type.
func NewCappedWriter(size int) (*CappedWriter, error) {
	if size <= 0 {
		return nil, fmt.Errorf("test: capped writer size must be positive (%d)", size)
	}
	return &CappedWriter{
		size:   size,
		buffer: make([]byte, 0, size),
	}, nil
}

func (w *CappedWriter) String() string {
	return string(w.buffer)
}

// Discarded returns the number of bytes that did not fit under the cap.
func (w *CappedWriter) Discarded() int {
	return w.discarded
}

// Reset empties the buffer.
func (w *CappedWriter) Reset() {
	w.buffer = w.buffer[:0]
	w.discarded = 0
}

// Write implements the io.Writer interface.
func (w *CappedWriter) Write(p []byte) (int, error) {
	n := min(len(p), w.size-len(w.buffer))
	w.buffer = append(w.buffer, p[:n]...)
	w.discarded += len(p) - n
	return len(p), nil
}

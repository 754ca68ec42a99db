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

package logger

import (
	"io"
	"strings"

	"github.com/fatih/color"
)

// Colorizer is an io.Writer that draws attention to the detail of log
// entries. Each line written is split at the first colon and the part after
// the colon is written in the detail colour.
type Colorizer struct {
	out    io.Writer
	tag    *color.Color
	detail *color.Color
}

// NewColorizer is the preferred method of initialisation for the Colorizer
// type.
func NewColorizer(out io.Writer) Colorizer {
	return Colorizer{
		out:    out,
		tag:    color.New(color.FgYellow),
		detail: color.New(color.FgRed, color.Faint),
	}
}

// Write implements the io.Writer interface.
func (c Colorizer) Write(p []byte) (int, error) {
	for _, l := range strings.Split(strings.TrimRight(string(p), "\n"), "\n") {
		tag, detail, ok := strings.Cut(l, ":")
		if !ok {
			if _, err := io.WriteString(c.out, l+"\n"); err != nil {
				return 0, err
			}
			continue
		}
		if _, err := c.tag.Fprint(c.out, tag+":"); err != nil {
			return 0, err
		}
		if _, err := c.detail.Fprintln(c.out, detail); err != nil {
			return 0, err
		}
	}
	return len(p), nil
}

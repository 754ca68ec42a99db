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

package modalflag

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

// help writes the flags and sub-modes of the current mode.
func (md *Modes) help() {
	w := md.output()

	var flags strings.Builder
	md.flags.VisitAll(func(f *flag.Flag) {
		flags.WriteString(fmt.Sprintf("  -%s", f.Name))
		if name, _ := flag.UnquoteUsage(f); name != "" {
			flags.WriteString(" " + name)
		}
		flags.WriteString(fmt.Sprintf("\n    \t%s", f.Usage))
		if f.DefValue != "" && f.DefValue != "false" && f.DefValue != "0" {
			flags.WriteString(fmt.Sprintf(" (default %s)", f.DefValue))
		}
		flags.WriteString("\n")
	})

	if flags.Len() == 0 && len(md.subModes) == 0 {
		io.WriteString(w, "No help available")
		if p := md.Path(); p != "" {
			io.WriteString(w, fmt.Sprintf(" for %s mode", p))
		}
		io.WriteString(w, "\n")
		return
	}

	if p := md.Path(); p != "" {
		io.WriteString(w, fmt.Sprintf("Usage for %s mode:\n", p))
	} else {
		io.WriteString(w, "Usage:\n")
	}

	io.WriteString(w, flags.String())

	if len(md.subModes) > 0 {
		if flags.Len() > 0 {
			io.WriteString(w, "\n")
		}
		io.WriteString(w, fmt.Sprintf("  available modes: %s\n", strings.Join(md.subModes, ", ")))
		io.WriteString(w, fmt.Sprintf("    default: %s\n", md.subModes[0]))
	}

	if md.additionalHelp != "" {
		io.WriteString(w, "\n")
		io.WriteString(w, md.additionalHelp)
		io.WriteString(w, "\n")
	}
}

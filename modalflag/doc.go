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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It adds the idea of modes, where the first argument after any flags
// selects a mode and each mode has its own set of flags.
//
// The gopher80 command line has the form:
//
//	gopher80 [global flags] [MODE] [mode flags] file
//
// Which is parsed with something like:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "CPM", "PERFORMANCE")
//	log := md.AddBool("log", false, "echo log to stderr")
//
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		origin := md.AddAddress("origin", 0x0000, "load address")
//		...
//	}
//
// The first mode in the list given to AddSubModes() is the default mode and is
// selected if the first argument is not the name of a mode. Mode names are not
// case sensitive.
//
// A -help flag is always available and prints the flags and modes for the
// current mode.
package modalflag

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

// Package cpm runs CP/M 2.2 .COM programs on the emulated CPU. There is no
// CP/M operating system in memory. Instead, calls to the BDOS entry point at
// 0x0005 are trapped and serviced by the Machine type before the CPU executes
// any instruction at that address.
//
// Only the console functions of the BDOS are supported. This is sufficient
// for the many CPU exerciser programs that report their results through the
// console.
//
//	0  system reset
//	1  console input
//	2  console output
//	6  direct console I/O
//	9  print string
//	10 read console buffer
//	11 get console status
//	12 return version number
//
// Other functions are logged and ignored.
//
// A jump to 0x0000, either directly or through function 0, is a warm boot and
// ends the Run() function.
package cpm

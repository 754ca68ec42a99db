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

// Package singlestep contains Z80 single-step tests as maintained by the
// SingleStepTests project.
//
// https://github.com/SingleStepTests/z80
//
// The tests are large and are not included as part of the Gopher80
// repository. In fact, they are excluded by the project's .gitignore file.
//
// Add the instructions you want to test from the v1 directory on Github to
// the z80/v1 directory in this package. The test is skipped if there are no
// test files.
package singlestep

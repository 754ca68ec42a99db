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

package performance

// ReferenceClock is the clock rate, in MHz, against which the accuracy of the
// emulation is measured.
const ReferenceClock = 4.0

// CalcClock returns the effective clock rate in MHz for the number of cycles
// executed in the duration, along with the accuracy as a percentage of the
// ReferenceClock.
func CalcClock(cycles uint64, duration float64) (mhz float64, accuracy float64) {
	if duration <= 0 {
		return 0, 0
	}
	mhz = float64(cycles) / duration / 1000000
	accuracy = 100 * mhz / ReferenceClock
	return mhz, accuracy
}

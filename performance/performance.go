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

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/gopher80/hardware/cpu"
	"github.com/jetsetilly/gopher80/hardware/memory"
)

var timedOut = errors.New("performance timed out")

// the amount of time the program runs for before measurement begins
var leadTime = 500 * time.Millisecond

// the number of instructions between checks of the measurement timer
const performanceBrake = 10000

// Check runs the program loaded at origin for the duration and writes the
// effective clock rate and instructions per second to output. Execution
// starts at the origin address.
func Check(output io.Writer, profile Profile, program []uint8, origin uint16, duration time.Duration) error {
	mem := memory.NewMemory()
	if err := mem.Load(origin, program); err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	mc := cpu.NewCPU(mem)
	mc.PC = origin

	var startCycles uint64
	var startInstructions int
	var instructions int

	runner := func() error {
		// the timer signals false when the lead time has elapsed and true when
		// the measurement period has finished
		timerChan := make(chan bool, 2)
		time.AfterFunc(leadTime, func() {
			timerChan <- false
			time.AfterFunc(duration, func() {
				timerChan <- true
			})
		})

		brake := 0
		for {
			if _, err := mc.Step(); err != nil {
				return err
			}
			instructions++

			brake++
			if brake < performanceBrake {
				continue
			}
			brake = 0

			select {
			case v := <-timerChan:
				if v {
					return timedOut
				}
				startCycles = mc.Cycles
				startInstructions = instructions
			default:
			}
		}
	}

	err := RunProfiler(profile, "performance", runner)
	if err != nil && !errors.Is(err, timedOut) {
		return fmt.Errorf("performance: %w", err)
	}

	cycles := mc.Cycles - startCycles
	mhz, accuracy := CalcClock(cycles, duration.Seconds())
	ips := float64(instructions-startInstructions) / duration.Seconds()

	fmt.Fprintf(output, "%.2f MHz (%d cycles in %.2f seconds) %.1f%%\n", mhz, cycles, duration.Seconds(), accuracy)
	fmt.Fprintf(output, "%.0f instructions per second\n", ips)
	if mc.Halted {
		fmt.Fprintf(output, "program halted at %#04x\n", mc.PC-1)
	}

	return nil
}

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

// Package limiter throttles the emulation to a target clock rate.
//
// The clock is divided into slices of time. Each slice has a budget of cycles
// and the Consume() function blocks once the budget of the current slice has
// been spent, until the next slice begins.
package limiter

import (
	"fmt"
	"sync"
	"time"
)

// DefaultSlice is the length of each slice of time if no other value is
// specified.
const DefaultSlice = 10 * time.Millisecond

// ClockLimiter throttles execution to a clock rate.
type ClockLimiter struct {
	crit sync.Mutex

	mhz    float64
	slice  time.Duration
	budget int

	// cycles consumed in the current slice
	consumed int

	tick chan bool
	quit chan bool
}

// NewClockLimiter is the preferred method of initialisation for the
// ClockLimiter type. A slice of zero uses the DefaultSlice value.
func NewClockLimiter(mhz float64, slice time.Duration) (*ClockLimiter, error) {
	if slice == 0 {
		slice = DefaultSlice
	}

	lim := &ClockLimiter{
		slice: slice,
		tick:  make(chan bool),
		quit:  make(chan bool),
	}

	if err := lim.SetLimit(mhz); err != nil {
		return nil, err
	}

	// run ticker concurrently. the length of the sleep is adjusted to account
	// for any drift in the previous slice. a slice begins when the tick is
	// received so time spent waiting for a stalled consumer is not drift
	go func() {
		adjusted := lim.slice
		for {
			select {
			case lim.tick <- true:
			case <-lim.quit:
				return
			}
			t := time.Now()
			time.Sleep(adjusted)
			adjusted -= time.Since(t) - lim.slice
			adjusted = min(max(adjusted, 0), lim.slice)
		}
	}()

	return lim, nil
}

// SetLimit changes the target clock rate.
func (lim *ClockLimiter) SetLimit(mhz float64) error {
	if mhz <= 0 {
		return fmt.Errorf("limiter: clock rate must be positive (%.2f MHz)", mhz)
	}

	lim.crit.Lock()
	defer lim.crit.Unlock()

	lim.mhz = mhz
	lim.budget = int(mhz * 1000000 * lim.slice.Seconds())
	lim.budget = max(lim.budget, 1)

	return nil
}

// Limit returns the target clock rate in MHz.
func (lim *ClockLimiter) Limit() float64 {
	lim.crit.Lock()
	defer lim.crit.Unlock()
	return lim.mhz
}

// Consume cycles from the budget of the current slice. If the budget has been
// spent the function blocks until the next slice begins.
func (lim *ClockLimiter) Consume(cycles int) {
	lim.crit.Lock()
	lim.consumed += cycles
	spent := lim.consumed >= lim.budget
	if spent {
		lim.consumed -= lim.budget
	}
	lim.crit.Unlock()

	if spent {
		<-lim.tick
	}
}

// HasWaited returns true if a new slice has begun since the last call to
// Consume() or HasWaited(). It never blocks.
func (lim *ClockLimiter) HasWaited() bool {
	select {
	case <-lim.tick:
		return true
	default:
		// default case means that the channel receiving case doesn't block
		return false
	}
}

// End stops the limiter. It should not be used after this call.
func (lim *ClockLimiter) End() {
	close(lim.quit)
}

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

package limiter_test

import (
	"testing"
	"time"

	"github.com/jetsetilly/gopher80/performance/limiter"
	"github.com/jetsetilly/gopher80/test"
)

func TestInvalidLimit(t *testing.T) {
	_, err := limiter.NewClockLimiter(0, 0)
	test.ExpectFailure(t, err)

	lim, err := limiter.NewClockLimiter(4, 0)
	test.DemandSuccess(t, err)
	defer lim.End()
	test.ExpectFailure(t, lim.SetLimit(-1))
	test.ExpectEquality(t, lim.Limit(), 4.0)
}

func TestConsume(t *testing.T) {
	// one MHz with slices of 10ms is a budget of 10000 cycles per slice
	lim, err := limiter.NewClockLimiter(1, 10*time.Millisecond)
	test.DemandSuccess(t, err)
	defer lim.End()

	// the first slice begins immediately
	start := time.Now()
	for range 5000 {
		lim.Consume(10)
	}
	elapsed := time.Since(start)

	// five slices worth of cycles must take at least four slices of time
	test.ExpectSuccess(t, elapsed >= 35*time.Millisecond, elapsed)
}

// the time a consumer spends not consuming, for example while a program waits
// for console input, must not be paid back with unthrottled slices.
func TestConsumeAfterStall(t *testing.T) {
	lim, err := limiter.NewClockLimiter(1, 10*time.Millisecond)
	test.DemandSuccess(t, err)
	defer lim.End()

	consume := func(slices int) time.Duration {
		start := time.Now()
		for range slices * 1000 {
			lim.Consume(10)
		}
		return time.Since(start)
	}

	elapsed := consume(5)
	test.ExpectSuccess(t, elapsed >= 35*time.Millisecond, elapsed)

	time.Sleep(200 * time.Millisecond)

	// ten slices after the stall. the first tick is already waiting so at
	// least nine slices of time must pass
	elapsed = consume(10)
	test.ExpectSuccess(t, elapsed >= 80*time.Millisecond, elapsed)
}

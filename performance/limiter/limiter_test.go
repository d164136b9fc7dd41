// This file is part of Hode.
//
// Hode is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Hode is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Hode.  If not, see <https://www.gnu.org/licenses/>.

package limiter_test

import (
	"testing"
	"time"

	"github.com/hode-port/hode/performance/limiter"
	"github.com/hode-port/hode/test"
)

func TestInvalidRate(t *testing.T) {
	_, err := limiter.NewFPSLimiter(0)
	test.ExpectFailure(t, err)
	_, err = limiter.NewFPSLimiter(-10)
	test.ExpectFailure(t, err)
}

func TestWait(t *testing.T) {
	lim, err := limiter.NewFPSLimiter(100)
	test.DemandSuccess(t, err)
	defer lim.Stop()

	test.ExpectEquality(t, lim.Limit(), 100)

	// first tick is immediate
	lim.Wait()

	start := time.Now()
	for range 10 {
		lim.Wait()
	}
	elapsed := time.Since(start)

	// ten frames at 100fps is 100ms. allow for a generous amount of
	// scheduling slop in the lower bound
	if elapsed < 50*time.Millisecond {
		t.Errorf("limiter too fast: 10 frames in %v", elapsed)
	}
}

func TestSetLimit(t *testing.T) {
	lim, err := limiter.NewFPSLimiter(50)
	test.DemandSuccess(t, err)
	defer lim.Stop()

	test.ExpectSuccess(t, lim.SetLimit(25))
	test.ExpectEquality(t, lim.Limit(), 25)
	test.ExpectFailure(t, lim.SetLimit(0))
	test.ExpectEquality(t, lim.Limit(), 25)
}

func TestStop(t *testing.T) {
	lim, err := limiter.NewFPSLimiter(1000)
	test.DemandSuccess(t, err)
	lim.Stop()

	// stopping twice is safe
	lim.Stop()
}

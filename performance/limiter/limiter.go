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

// Package limiter provides a rough and ready way of limiting events to a fixed
// rate.
//
// A new FpsLimiter can be created with (error handling removed for clarity):
//
//	fps, _ := limiter.NewFPSLimiter(50)
//
// Operations can then be stalled with the Wait() function. For example:
//
//	for {
//		fps.Wait()
//		renderImage()
//	}
//
// The limiter must be stopped with Stop() when it is no longer required.
package limiter

import (
	"fmt"
	"sync/atomic"
	"time"
)

// FpsLimiter will trigger every frames per second
type FpsLimiter struct {
	framesPerSecond atomic.Int64
	secondsPerFrame atomic.Int64

	tick chan bool
	quit chan bool
}

// NewFPSLimiter is the preferred method of initialisation for FpsLimiter type
func NewFPSLimiter(framesPerSecond int) (*FpsLimiter, error) {
	lim := &FpsLimiter{}
	err := lim.SetLimit(framesPerSecond)
	if err != nil {
		return nil, err
	}

	lim.tick = make(chan bool)
	lim.quit = make(chan bool)

	// run ticker concurrently
	go func() {
		t := time.Now()
		adjust := time.Duration(0)
		for {
			select {
			case lim.tick <- true:
			case <-lim.quit:
				return
			}

			spf := time.Duration(lim.secondsPerFrame.Load())
			time.Sleep(spf + adjust)

			// the adjustment corrects for oversleeping. it is reset if the
			// goroutine has fallen a long way behind
			nt := time.Now()
			adjust -= nt.Sub(t) - spf
			if adjust < -spf || adjust > spf {
				adjust = 0
			}
			t = nt
		}
	}()

	return lim, nil
}

// SetLimit changes the limit at which the FpsLimiter waits
func (lim *FpsLimiter) SetLimit(framesPerSecond int) error {
	if framesPerSecond <= 0 {
		return fmt.Errorf("limiter: frame rate must be positive (%d)", framesPerSecond)
	}
	lim.framesPerSecond.Store(int64(framesPerSecond))
	lim.secondsPerFrame.Store(int64(time.Second / time.Duration(framesPerSecond)))
	return nil
}

// Limit returns the current frames per second.
func (lim *FpsLimiter) Limit() int {
	return int(lim.framesPerSecond.Load())
}

// Wait will block until trigger
func (lim *FpsLimiter) Wait() {
	<-lim.tick
}

// HasWaited will return true if time has already elapsed and false it it is
// still yet to happen
func (lim *FpsLimiter) HasWaited() bool {
	select {
	case <-lim.tick:
		return true
	default:
		// default case means that the channel receiving case doesn't block
		return false
	}
}

// Stop the limiter. Wait() must not be called after Stop().
func (lim *FpsLimiter) Stop() {
	select {
	case <-lim.quit:
	default:
		close(lim.quit)
	}
}

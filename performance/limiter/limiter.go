// This file is part of viewportfps.
//
// viewportfps is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// viewportfps is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with viewportfps.  If not, see <https://www.gnu.org/licenses/>.

// Package limiter provides a rough and ready way of limiting events to a fixed
// rate.
//
// A new FpsLimiter can be created with:
//
//	lmtr := limiter.NewFPSLimiter(60)
//
// Operations can then be stalled with the Wait() function. For example:
//
//	for {
//		lmtr.Wait()
//		renderImage()
//	}
//
// A limit of zero or less disables the limiter. Wait() will then return
// immediately.
package limiter

import (
	"sync/atomic"
	"time"
)

// FpsLimiter will trigger every frames per second.
//
// SetLimit() can be called from any goroutine but Wait() should only be called from the goroutine that is being limited.
type FpsLimiter struct {
	framesPerSecond atomic.Int64

	// the time of the next trigger. zero if the limiter has not yet been used
	// or if the limit has changed
	next time.Time

	// the limit that was in use when next was calculated
	nextLimit int64
}

// NewFPSLimiter is the preferred method of initialisation for FpsLimiter type.
func NewFPSLimiter(framesPerSecond int) *FpsLimiter {
	lmtr := &FpsLimiter{}
	lmtr.SetLimit(framesPerSecond)
	return lmtr
}

// SetLimit changes the limit at which the FpsLimiter waits. A value of zero or
// less disables the limiter.
func (lmtr *FpsLimiter) SetLimit(framesPerSecond int) {
	lmtr.framesPerSecond.Store(int64(framesPerSecond))
}

// Limit returns the current limit.
func (lmtr *FpsLimiter) Limit() int {
	return int(lmtr.framesPerSecond.Load())
}

// Active returns true if the limiter has a limit greater than zero.
func (lmtr *FpsLimiter) Active() bool {
	return lmtr.framesPerSecond.Load() > 0
}

// Wait will block until trigger.
func (lmtr *FpsLimiter) Wait() {
	if d, ok := lmtr.due(); ok && d > 0 {
		time.Sleep(d)
	}
}

// due returns the time remaining until the next trigger and schedules the
// trigger after that. returns false if the limiter is disabled.
func (lmtr *FpsLimiter) due() (time.Duration, bool) {
	fps := lmtr.framesPerSecond.Load()
	if fps <= 0 {
		lmtr.next = time.Time{}
		return 0, false
	}

	period := time.Second / time.Duration(fps)
	now := time.Now()

	// restart the schedule if the limit has changed or if we've fallen more
	// than a frame behind. there's no point trying to catch up
	if fps != lmtr.nextLimit || lmtr.next.IsZero() || now.Sub(lmtr.next) > period {
		lmtr.nextLimit = fps
		lmtr.next = now
	}

	d := lmtr.next.Sub(now)
	lmtr.next = lmtr.next.Add(period)

	return d, true
}

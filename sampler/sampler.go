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

package sampler

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/jetsetilly/viewportfps/logger"
)

// DefaultPeriod is the sampling period used by the harness. With a period of
// one second the published rate is the number of frames per second.
const DefaultPeriod = time.Second

// Sampler counts frames and publishes the count once per period.
type Sampler struct {
	// incremented by the render loop. swapped with zero by Sample()
	counter atomic.Int64

	// written only by Sample()
	rate atomic.Int64

	// called by Sample() after the new rate has been published
	onSample atomic.Value // func(int)

	// guards the lifecycle of the background goroutine. not used by
	// RecordFrame(), Sample() or CurrentRate()
	crit sync.Mutex
	quit chan bool
	done chan bool
}

// New is the preferred method of initialisation for the Sampler type.
func New() *Sampler {
	return &Sampler{}
}

// RecordFrame should be called once per rendered frame.
func (smp *Sampler) RecordFrame() {
	smp.counter.Add(1)
}

// Sample resets the frame counter and publishes the value it had. The
// published value is returned.
//
// Sample() is called by the background goroutine but it can be called
// directly if the sampler has not been started.
func (smp *Sampler) Sample() int {
	n := smp.counter.Swap(0)
	smp.rate.Store(n)

	if f, ok := smp.onSample.Load().(func(int)); ok && f != nil {
		f(int(n))
	}

	return int(n)
}

// CurrentRate returns the most recently published rate.
func (smp *Sampler) CurrentRate() int {
	return int(smp.rate.Load())
}

// SetOnSample registers a function to be called every time a new rate is
// published. The function is called from whichever goroutine calls Sample(),
// which is normally the sampler's own goroutine. A nil function removes any
// existing callback.
func (smp *Sampler) SetOnSample(f func(rate int)) {
	smp.onSample.Store(f)
}

// Start the background goroutine. Sample() will be called once per period
// until Stop() is called. Has no effect if the sampler has already been
// started.
func (smp *Sampler) Start(period time.Duration) {
	smp.crit.Lock()
	defer smp.crit.Unlock()

	if smp.quit != nil {
		return
	}

	if period <= 0 {
		period = DefaultPeriod
	}

	smp.quit = make(chan bool)
	smp.done = make(chan bool)

	go func(quit chan bool, done chan bool) {
		defer close(done)

		ticker := time.NewTicker(period)
		defer ticker.Stop()

		for {
			select {
			case <-quit:
				return
			case <-ticker.C:
				smp.Sample()
			}
		}
	}(smp.quit, smp.done)

	logger.Logf(logger.Allow, "sampler", "started with period of %v", period)
}

// Stop the background goroutine and wait for it to finish. The published rate
// is left unchanged. Has no effect if the sampler is not running.
func (smp *Sampler) Stop() {
	smp.crit.Lock()
	defer smp.crit.Unlock()

	if smp.quit == nil {
		return
	}

	close(smp.quit)
	<-smp.done
	smp.quit = nil
	smp.done = nil

	logger.Log(logger.Allow, "sampler", "stopped")
}

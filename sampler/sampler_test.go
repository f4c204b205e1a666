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

package sampler_test

import (
	"sync"
	"testing"
	"time"

	"github.com/jetsetilly/viewportfps/sampler"
	"github.com/jetsetilly/viewportfps/test"
)

func TestInitialRate(t *testing.T) {
	smp := sampler.New()
	test.ExpectEquality(t, smp.CurrentRate(), 0)

	// recording frames has no effect on the published rate until the next
	// sample
	smp.RecordFrame()
	smp.RecordFrame()
	test.ExpectEquality(t, smp.CurrentRate(), 0)
}

func TestSample(t *testing.T) {
	smp := sampler.New()

	for _, k := range []int{0, 1, 60, 144, 1000} {
		for range k {
			smp.RecordFrame()
		}
		test.ExpectEquality(t, smp.Sample(), k)
		test.ExpectEquality(t, smp.CurrentRate(), k)
	}

	// counter was reset by the previous sample so no frames were recorded in
	// this period
	test.ExpectEquality(t, smp.Sample(), 0)
	test.ExpectEquality(t, smp.CurrentRate(), 0)
}

func TestConcurrentRecording(t *testing.T) {
	smp := sampler.New()

	const goroutines = 8
	const frames = 1000

	var wg sync.WaitGroup
	for range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range frames {
				smp.RecordFrame()
			}
		}()
	}
	wg.Wait()

	test.ExpectEquality(t, smp.Sample(), goroutines*frames)
}

func TestOnSample(t *testing.T) {
	smp := sampler.New()

	var published []int
	smp.SetOnSample(func(rate int) {
		published = append(published, rate)
	})

	smp.RecordFrame()
	smp.Sample()
	smp.RecordFrame()
	smp.RecordFrame()
	smp.Sample()

	test.DemandEquality(t, len(published), 2)
	test.ExpectEquality(t, published[0], 1)
	test.ExpectEquality(t, published[1], 2)

	// removing callback
	smp.SetOnSample(nil)
	smp.Sample()
	test.ExpectEquality(t, len(published), 2)
}

func TestStartStop(t *testing.T) {
	smp := sampler.New()

	published := make(chan int, 16)
	smp.SetOnSample(func(rate int) {
		select {
		case published <- rate:
		default:
		}
	})

	for range 10 {
		smp.RecordFrame()
	}

	smp.Start(10 * time.Millisecond)

	// starting a second time has no effect
	smp.Start(10 * time.Millisecond)

	select {
	case rate := <-published:
		test.ExpectEquality(t, rate, 10)
	case <-time.After(5 * time.Second):
		t.Fatalf("sampler did not publish a rate")
	}

	// no frames recorded since the first sample
	select {
	case rate := <-published:
		test.ExpectEquality(t, rate, 0)
	case <-time.After(5 * time.Second):
		t.Fatalf("sampler did not publish a second rate")
	}

	smp.Stop()
	test.ExpectEquality(t, smp.CurrentRate(), 0)

	// stopping a second time has no effect
	smp.Stop()

	// counter is not touched once the sampler has stopped
	smp.RecordFrame()
	time.Sleep(30 * time.Millisecond)
	test.ExpectEquality(t, smp.Sample(), 1)
}

func TestStopWithoutStart(t *testing.T) {
	smp := sampler.New()
	smp.Stop()
	test.ExpectEquality(t, smp.CurrentRate(), 0)
}

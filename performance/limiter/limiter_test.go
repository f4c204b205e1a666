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

package limiter_test

import (
	"testing"
	"time"

	"github.com/jetsetilly/viewportfps/performance/limiter"
	"github.com/jetsetilly/viewportfps/test"
)

func TestDisabled(t *testing.T) {
	lmtr := limiter.NewFPSLimiter(0)
	test.ExpectFailure(t, lmtr.Active())

	start := time.Now()
	for range 1000 {
		lmtr.Wait()
	}
	test.ExpectSuccess(t, time.Since(start) < time.Second)

	// enabling and disabling after creation
	lmtr.SetLimit(30)
	test.ExpectSuccess(t, lmtr.Active())
	test.ExpectEquality(t, lmtr.Limit(), 30)
	lmtr.SetLimit(-1)
	test.ExpectFailure(t, lmtr.Active())
}

func TestLimit(t *testing.T) {
	const fps = 100
	const frames = 20

	lmtr := limiter.NewFPSLimiter(fps)
	test.ExpectSuccess(t, lmtr.Active())
	test.ExpectEquality(t, lmtr.Limit(), fps)

	start := time.Now()
	for range frames {
		lmtr.Wait()
	}

	// the first call to Wait() does not block so the minimum duration is one
	// period short
	test.ExpectSuccess(t, time.Since(start) >= (frames-1)*time.Second/fps)
}

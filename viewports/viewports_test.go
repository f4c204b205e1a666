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

package viewports_test

import (
	"testing"

	"github.com/jetsetilly/viewportfps/test"
	"github.com/jetsetilly/viewportfps/viewports"
)

// sameSlice returns true if a and b share the same backing array and length
func sameSlice(a, b []viewports.ID) bool {
	if len(a) != len(b) {
		return false
	}
	if len(a) == 0 {
		return true
	}
	return &a[0] == &b[0]
}

func TestInitialState(t *testing.T) {
	ctl := viewports.NewController()
	test.ExpectEquality(t, ctl.Count(), 0)
	test.ExpectEquality(t, len(ctl.IDs()), 0)
}

func TestNewID(t *testing.T) {
	test.ExpectEquality(t, viewports.NewID(0), viewports.ID("w0"))
	test.ExpectEquality(t, viewports.NewID(9), viewports.ID("w9"))

	// pure function of index
	for i := range viewports.MaxWindows {
		test.ExpectEquality(t, viewports.NewID(i), viewports.NewID(i))
	}
}

func TestLengthAndDistinctness(t *testing.T) {
	for v := viewports.MinWindows; v <= viewports.MaxWindows; v++ {
		ctl := viewports.NewController()
		ctl.Set(v)
		test.ExpectEquality(t, ctl.Count(), v)

		ids := ctl.IDs()
		test.DemandEquality(t, len(ids), v)

		seen := make(map[viewports.ID]bool)
		for _, id := range ids {
			test.ExpectFailure(t, seen[id], id)
			seen[id] = true
		}
	}
}

func TestIdempotence(t *testing.T) {
	ctl := viewports.NewController()
	test.ExpectSuccess(t, ctl.Set(4))
	a := ctl.IDs()

	test.ExpectFailure(t, ctl.Set(4))
	b := ctl.IDs()
	test.ExpectSuccess(t, sameSlice(a, b))

	// setting zero when already zero is also a no-op
	ctl = viewports.NewController()
	test.ExpectFailure(t, ctl.Set(0))
}

func TestGrowAndShrink(t *testing.T) {
	ctl := viewports.NewController()

	ctl.Set(3)
	before := append([]viewports.ID{}, ctl.IDs()...)

	// growing preserves the existing prefix
	test.ExpectSuccess(t, ctl.Set(7))
	after := ctl.IDs()
	test.DemandEquality(t, len(after), 7)
	for i := range before {
		test.ExpectEquality(t, after[i], before[i])
	}
	for i := len(before); i < len(after); i++ {
		test.ExpectEquality(t, after[i], viewports.NewID(i))
	}

	// shrinking truncates to the prefix
	test.ExpectSuccess(t, ctl.Set(2))
	after = ctl.IDs()
	test.DemandEquality(t, len(after), 2)
	test.ExpectEquality(t, after[0], before[0])
	test.ExpectEquality(t, after[1], before[1])

	// regrowing recreates the same identifiers
	ctl.Set(3)
	after = ctl.IDs()
	test.DemandEquality(t, len(after), 3)
	for i := range after {
		test.ExpectEquality(t, after[i], before[i])
	}

	// shrinking to zero leaves no identifiers
	ctl.Set(0)
	test.ExpectEquality(t, len(ctl.IDs()), 0)
}

func TestClamping(t *testing.T) {
	test.ExpectEquality(t, viewports.Clamp(-1), viewports.MinWindows)
	test.ExpectEquality(t, viewports.Clamp(11), viewports.MaxWindows)
	test.ExpectEquality(t, viewports.Clamp(5), 5)

	ctl := viewports.NewController()
	ctl.Set(-5)
	test.ExpectEquality(t, ctl.Count(), 0)
	test.ExpectEquality(t, len(ctl.IDs()), 0)

	ctl.Set(100)
	test.ExpectEquality(t, ctl.Count(), viewports.MaxWindows)
	test.ExpectEquality(t, len(ctl.IDs()), viewports.MaxWindows)

	// clamped value is the same as the current value so nothing changes
	a := ctl.IDs()
	test.ExpectFailure(t, ctl.Set(viewports.MaxWindows+1))
	test.ExpectSuccess(t, sameSlice(a, ctl.IDs()))
}

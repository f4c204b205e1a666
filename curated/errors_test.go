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

package curated_test

import (
	"errors"
	"testing"

	"github.com/jetsetilly/viewportfps/curated"
	"github.com/jetsetilly/viewportfps/test"
)

const testPattern = "test: %v"
const wrapPattern = "wrap: %v"

func TestIs(t *testing.T) {
	e := curated.Errorf(testPattern, "foo")
	test.ExpectEquality(t, e.Error(), "test: foo")
	test.ExpectSuccess(t, curated.Is(e, testPattern))
	test.ExpectFailure(t, curated.Is(e, wrapPattern))

	// uncurated errors
	u := errors.New("uncurated")
	test.ExpectFailure(t, curated.Is(u, testPattern))
	test.ExpectFailure(t, curated.Is(nil, testPattern))
}

func TestWrapped(t *testing.T) {
	e := curated.Errorf(testPattern, "foo")
	f := curated.Errorf(wrapPattern, e)
	test.ExpectEquality(t, f.Error(), "wrap: test: foo")
	test.ExpectSuccess(t, curated.Is(f, wrapPattern))
	test.ExpectFailure(t, curated.Is(f, testPattern))
}

func TestDuplicateParts(t *testing.T) {
	e := curated.Errorf("sdlimgui: %v", curated.Errorf("sdlimgui: %v", "no display"))
	test.ExpectEquality(t, e.Error(), "sdlimgui: no display")

	e = curated.Errorf("sdlimgui: %v", curated.Errorf("sdl: %v", "no display"))
	test.ExpectEquality(t, e.Error(), "sdlimgui: sdl: no display")
}

func TestUnwrap(t *testing.T) {
	sentinel := errors.New("sentinel")
	e := curated.Errorf(wrapPattern, sentinel)
	test.ExpectSuccess(t, errors.Is(e, sentinel))
}

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

package performance_test

import (
	"strings"
	"testing"
	"time"

	"github.com/jetsetilly/viewportfps/harness"
	"github.com/jetsetilly/viewportfps/performance"
	"github.com/jetsetilly/viewportfps/sampler"
	"github.com/jetsetilly/viewportfps/test"
	"github.com/jetsetilly/viewportfps/viewports"
)

func TestCalcFPS(t *testing.T) {
	test.ExpectEquality(t, performance.CalcFPS(600, 10), 60.0)
	test.ExpectEquality(t, performance.CalcFPS(0, 10), 0.0)
	test.ExpectEquality(t, performance.CalcFPS(100, 0), 0.0)
}

func TestParseProfile(t *testing.T) {
	for s, p := range map[string]performance.Profile{
		"":      performance.ProfileNone,
		"none":  performance.ProfileNone,
		"cpu":   performance.ProfileCPU,
		"Mem":   performance.ProfileMem,
		"TRACE": performance.ProfileTrace,
	} {
		v, err := performance.ParseProfile(s)
		test.ExpectSuccess(t, err, s)
		test.ExpectEquality(t, v, p, s)
	}

	_, err := performance.ParseProfile("block")
	test.ExpectFailure(t, err)
}

func TestRunProfilerNone(t *testing.T) {
	var ran bool
	err := performance.RunProfiler(performance.ProfileNone, t.TempDir(), func() error {
		ran = true
		return nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, ran)
}

func TestCheck(t *testing.T) {
	app := harness.New(sampler.New(), viewports.NewController())

	w := &test.Writer{}
	err := performance.Check(w, performance.ProfileNone, app, 3, 1500*time.Millisecond)
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, app.Controller().Count(), 3)

	out := w.String()
	test.ExpectSuccess(t, strings.Contains(out, "fps (3 windows)"))
	test.ExpectSuccess(t, strings.Contains(out, "with 3 windows"))

	// at least one rate was published before the check ended
	test.ExpectSuccess(t, app.Sampler().CurrentRate() > 0)
}

func TestCheckBadDuration(t *testing.T) {
	app := harness.New(sampler.New(), viewports.NewController())
	test.ExpectFailure(t, performance.Check(&test.Writer{}, performance.ProfileNone, app, 0, 0))
}

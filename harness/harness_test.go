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

package harness_test

import (
	"testing"

	"github.com/jetsetilly/viewportfps/gui"
	"github.com/jetsetilly/viewportfps/harness"
	"github.com/jetsetilly/viewportfps/sampler"
	"github.com/jetsetilly/viewportfps/test"
	"github.com/jetsetilly/viewportfps/viewports"
)

func newApp() (*harness.App, *gui.Recorder) {
	return harness.New(sampler.New(), viewports.NewController()), gui.NewRecorder()
}

func expectExtraWindows(t *testing.T, rec *gui.Recorder, ids ...viewports.ID) {
	t.Helper()
	test.DemandEquality(t, len(rec.Last.Viewports), len(ids))
	for i, vp := range rec.Last.Viewports {
		test.ExpectEquality(t, vp.ID, ids[i])
		test.DemandEquality(t, len(vp.Headings), 1)
		test.ExpectEquality(t, vp.Headings[0], harness.ExtraWindowHeading)
		test.ExpectEquality(t, vp.Builder.Width, harness.DefaultViewport().Width)
		test.ExpectEquality(t, vp.Builder.Height, harness.DefaultViewport().Height)
		test.ExpectEquality(t, vp.Builder.MinWidth, harness.DefaultViewport().MinWidth)
		test.ExpectEquality(t, vp.Builder.MinHeight, harness.DefaultViewport().MinHeight)
	}
}

func TestWindowScenario(t *testing.T) {
	app, rec := newApp()

	rec.Frame(app.Frame)
	test.ExpectEquality(t, app.Controller().Count(), 0)
	expectExtraWindows(t, rec)

	rec.SetSlider(3)
	rec.Frame(app.Frame)
	test.ExpectEquality(t, app.Controller().Count(), 3)

	rec.Frame(app.Frame)
	expectExtraWindows(t, rec, "w0", "w1", "w2")

	rec.SetSlider(1)
	rec.Frame(app.Frame)
	rec.Frame(app.Frame)
	expectExtraWindows(t, rec, "w0")
	test.ExpectEquality(t, rec.Last.Viewports[0].ID, viewports.NewID(0))
}

func TestSliderClamped(t *testing.T) {
	app, rec := newApp()

	rec.SetSlider(viewports.MaxWindows + 5)
	rec.Frame(app.Frame)
	test.ExpectEquality(t, app.Controller().Count(), viewports.MaxWindows)
	test.ExpectEquality(t, len(rec.Last.Viewports), viewports.MaxWindows)

	rec.SetSlider(-1)
	rec.Frame(app.Frame)
	test.ExpectEquality(t, app.Controller().Count(), viewports.MinWindows)
	test.ExpectEquality(t, len(rec.Last.Viewports), 0)
}

func TestPrimaryWindow(t *testing.T) {
	app, rec := newApp()

	rec.Frame(app.Frame)
	test.DemandEquality(t, len(rec.Last.Headings), 1)
	test.ExpectEquality(t, rec.Last.Headings[0], "0 fps")
	test.DemandEquality(t, len(rec.Last.Sliders), 1)
	test.ExpectEquality(t, rec.Last.Sliders[0], harness.SliderLabel)
	test.ExpectSuccess(t, rec.Last.Repaint)

	// one frame has been recorded. sampling publishes it
	test.ExpectEquality(t, app.Sampler().Sample(), 1)

	for range 59 {
		rec.Frame(app.Frame)
	}
	test.ExpectEquality(t, app.Sampler().Sample(), 59)

	rec.Frame(app.Frame)
	test.ExpectEquality(t, rec.Last.Headings[0], "59 fps")
	test.ExpectSuccess(t, rec.Last.Repaint)
	test.ExpectEquality(t, rec.Frames, 61)
}

func TestSecondaryWindowsDoNotDrawPrimaryContent(t *testing.T) {
	app, rec := newApp()

	rec.SetSlider(2)
	rec.Frame(app.Frame)

	// the primary window has the only rate heading
	test.ExpectEquality(t, len(rec.Last.Headings), 1)
	for _, vp := range rec.Last.Viewports {
		test.ExpectInequality(t, vp.Builder.Title, "")
		test.ExpectInequality(t, vp.Builder.Title, harness.ApplicationTitle)
	}
	test.ExpectInequality(t, rec.Last.Viewports[0].Builder.Title, rec.Last.Viewports[1].Builder.Title)
}

func TestFrameGoroutine(t *testing.T) {
	app, rec := newApp()
	rec.Frame(app.Frame)

	panicked := make(chan bool)
	go func() {
		defer func() {
			panicked <- recover() != nil
		}()
		app.Frame(gui.Stub{})
	}()

	test.ExpectSuccess(t, <-panicked)
}

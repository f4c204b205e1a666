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

package harness

import (
	"fmt"

	"github.com/jetsetilly/viewportfps/assert"
	"github.com/jetsetilly/viewportfps/gui"
	"github.com/jetsetilly/viewportfps/sampler"
	"github.com/jetsetilly/viewportfps/viewports"
)

// Fixed text used by the harness.
const (
	ApplicationTitle   = "viewportfps"
	SliderLabel        = "Number of windows"
	ExtraWindowHeading = "Extra Window"
)

// DefaultViewport returns the size of the primary window and of every
// secondary window.
func DefaultViewport() gui.ViewportBuilder {
	return gui.ViewportBuilder{
		Title:     ApplicationTitle,
		Width:     400,
		Height:    300,
		MinWidth:  300,
		MinHeight: 220,
	}
}

// App is the per-frame callback.
type App struct {
	smp *sampler.Sampler
	ctl *viewports.Controller

	// frame must always be called from the same goroutine
	render assert.Goroutine

	// builders for secondary windows keyed by id. the title of a window
	// depends only on its id so a builder is created once and reused
	builders map[viewports.ID]gui.ViewportBuilder
}

// New is the preferred method of initialisation for the App type.
func New(smp *sampler.Sampler, ctl *viewports.Controller) *App {
	return &App{
		smp:      smp,
		ctl:      ctl,
		builders: make(map[viewports.ID]gui.ViewportBuilder),
	}
}

// Sampler returns the frame rate sampler used by the App.
func (app *App) Sampler() *sampler.Sampler {
	return app.smp
}

// Controller returns the viewports controller used by the App.
func (app *App) Controller() *viewports.Controller {
	return app.ctl
}

// Frame draws one frame with the supplied host.
func (app *App) Frame(host gui.Host) {
	app.render.Check()

	host.Heading(fmt.Sprintf("%d fps", app.smp.CurrentRate()))

	v := app.ctl.Count()
	if host.SliderInt(SliderLabel, &v, viewports.MinWindows, viewports.MaxWindows) {
		app.ctl.Set(v)
	}

	for _, id := range app.ctl.IDs() {
		host.ShowViewport(id, app.builder(id), extraWindow)
	}

	host.RequestRepaint()
	app.smp.RecordFrame()
}

func (app *App) builder(id viewports.ID) gui.ViewportBuilder {
	if b, ok := app.builders[id]; ok {
		return b
	}
	b := DefaultViewport()
	b.Title = fmt.Sprintf("%s [%s]", ApplicationTitle, id)
	app.builders[id] = b
	return b
}

func extraWindow(host gui.Host) {
	host.Heading(ExtraWindowHeading)
}

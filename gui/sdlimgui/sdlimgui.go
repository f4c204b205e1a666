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

// Package sdlimgui hosts the harness using SDL windows and dear imgui. Every
// viewport is a top-level SDL window with its own imgui context. A single GL
// context is shared by every window.
//
// The SdlImgui type implements the gui.Host interface, for the harness, and
// the gui.GUI interface, for the rest of the program. It must be created,
// serviced and destroyed on the main thread.
package sdlimgui

import (
	"fmt"
	"io"

	"github.com/jetsetilly/viewportfps/assert"
	"github.com/jetsetilly/viewportfps/curated"
	"github.com/jetsetilly/viewportfps/harness"
	"github.com/jetsetilly/viewportfps/logger"
	"github.com/jetsetilly/viewportfps/performance/limiter"
	"github.com/jetsetilly/viewportfps/prefs"
	"github.com/jetsetilly/viewportfps/viewports"
)

// ErrorPattern is the curated error pattern used for every error returned by
// the package.
const ErrorPattern = "sdlimgui: %v"

// SdlImgui is an sdl based host using imgui.
type SdlImgui struct {
	app   *harness.App
	prefs *Preferences

	// the mechanical requirements for the gui
	plt  *platform
	glsl *glsl

	// the primary viewport is created with the platform and lasts for the
	// lifetime of the SdlImgui instance
	primary *viewport

	// secondary viewports keyed by id. order is the order in which they were
	// shown in the most recent frame
	viewports map[viewports.ID]*viewport
	order     []viewports.ID

	// viewports requested during the current frame
	pending []pendingViewport
	shown   map[viewports.ID]bool

	// viewports that could not be opened. they are not retried until they
	// have gone unshown for a frame
	failed map[viewports.ID]bool

	// polling encapsulates the programmatic communication to the service loop
	polling *polling

	// limits the frame rate if the fpscap preference is greater than zero
	lmtr *limiter.FpsLimiter

	// quit is sent a value when the user closes the primary window or when a
	// gui.ReqEnd request is received
	quitRequest chan bool

	// every call to Service() must be on the same thread
	mainThread assert.Goroutine
}

// NewSdlImgui is the preferred method of initialisation for type SdlImgui.
// Command line preferences are applied from the top of the prefs command
// line stack.
//
// MUST ONLY be called from the gui thread.
func NewSdlImgui(app *harness.App, p *Preferences) (*SdlImgui, error) {
	img := &SdlImgui{
		app:         app,
		prefs:       p,
		viewports:   make(map[viewports.ID]*viewport),
		shown:       make(map[viewports.ID]bool),
		failed:      make(map[viewports.ID]bool),
		lmtr:        limiter.NewFPSLimiter(0),
		quitRequest: make(chan bool, 1),
	}
	img.mainThread.Check()
	img.polling = newPolling(img)

	err := p.grp.ApplyCommandLine()
	if err != nil {
		return nil, curated.Errorf(ErrorPattern, err)
	}

	img.plt, err = newPlatform(harness.DefaultViewport())
	if err != nil {
		return nil, curated.Errorf(ErrorPattern, err)
	}

	img.primary, err = newViewport(primaryViewport, img.plt.window, nil)
	if err != nil {
		_ = img.plt.destroy()
		return nil, curated.Errorf(ErrorPattern, err)
	}

	img.glsl, err = newGlsl()
	if err != nil {
		_ = img.primary.destroy()
		_ = img.plt.destroy()
		return nil, curated.Errorf(ErrorPattern, err)
	}

	// changes to the preferences take effect immediately
	p.Vsync.SetHookPost(func(v prefs.Value) error {
		img.plt.setSwapInterval(v.(bool))
		return nil
	})
	p.FPSCap.SetHookPost(func(v prefs.Value) error {
		img.lmtr.SetLimit(v.(int))
		logger.Logf(logger.Allow, "sdlimgui", "fps cap: %d", img.lmtr.Limit())
		return nil
	})

	// apply current preference values
	img.plt.setSwapInterval(p.Vsync.Get().(bool))
	img.lmtr.SetLimit(p.FPSCap.Get().(int))
	logger.Logf(logger.Allow, "sdlimgui", "preferences: %s", p)

	return img, nil
}

// Destroy implements GuiCreator interface.
//
// MUST ONLY be called from the gui thread.
func (img *SdlImgui) Destroy(output io.Writer) {
	img.mainThread.Check()

	// the GL context may still be bound to a secondary window
	if err := img.plt.makeCurrent(img.primary.window); err != nil {
		fmt.Fprintln(output, err)
	}

	for _, id := range img.order {
		if err := img.viewports[id].destroy(); err != nil {
			fmt.Fprintln(output, err)
		}
	}
	clear(img.viewports)
	clear(img.failed)
	img.order = img.order[:0]

	img.glsl.destroy()

	if err := img.primary.destroy(); err != nil {
		fmt.Fprintln(output, err)
	}

	if err := img.plt.destroy(); err != nil {
		fmt.Fprintln(output, err)
	}

	img.prefs.Vsync.SetHookPost(nil)
	img.prefs.FPSCap.SetHookPost(nil)
}

// QuitRequest returns a channel that receives a value when the user has
// asked for the program to end.
func (img *SdlImgui) QuitRequest() <-chan bool {
	return img.quitRequest
}

func (img *SdlImgui) quit() {
	select {
	case img.quitRequest <- true:
	default:
		logger.Log(logger.Allow, "sdlimgui", "dropped quit request")
	}
}

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

// Package gui defines the boundary between the harness and whatever GUI
// framework is hosting it.
//
// The Host interface is what the harness draws with. Implementations are
// immediate mode: every call describes what should be on screen for the
// current frame only. The GUI interface is how the rest of the program
// configures a running GUI.
package gui

import (
	"github.com/jetsetilly/viewportfps/viewports"
)

// ViewportBuilder describes the top-level window used for a viewport. Sizes
// are in logical units.
type ViewportBuilder struct {
	Title     string
	Width     int32
	Height    int32
	MinWidth  int32
	MinHeight int32
}

// Host is implemented by GUI frameworks that can render the harness.
type Host interface {
	// Heading draws a line of text in the heading style.
	Heading(text string)

	// SliderInt draws a slider for value, which is kept in the range min to
	// max inclusive. Returns true if the value was changed by the user this
	// frame.
	SliderInt(label string, value *int, min int, max int) bool

	// ShowViewport asks for a secondary top-level window, keyed by id, to be
	// shown this frame. The content function is called to draw the contents
	// of the window.
	//
	// A viewport that was shown in the previous frame but that is not shown
	// in the current frame will be destroyed by the host. A viewport that is
	// shown in consecutive frames keeps its window.
	ShowViewport(id viewports.ID, builder ViewportBuilder, content func(Host))

	// RequestRepaint asks for the next frame to be started immediately
	// rather than waiting for user input.
	RequestRepaint()
}

// GUI defines the operations that can be performed on a running GUI from
// outside of the GUI thread.
type GUI interface {
	// Send a request to set a GUI feature.
	SetFeature(request FeatureReq, args ...FeatureReqData) error
}

// Sentinal error returned if GUI does no support requested feature.
const (
	UnsupportedGuiFeature = "unsupported gui feature: %v"
)

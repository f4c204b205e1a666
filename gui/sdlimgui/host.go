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

package sdlimgui

import (
	"github.com/inkyblackness/imgui-go/v4"
	"github.com/jetsetilly/viewportfps/gui"
	"github.com/jetsetilly/viewportfps/logger"
	"github.com/jetsetilly/viewportfps/viewports"
)

// a viewport requested by ShowViewport() during the current frame.
type pendingViewport struct {
	id      viewports.ID
	builder gui.ViewportBuilder
	content func(gui.Host)
}

// Heading implements the gui.Host interface.
func (img *SdlImgui) Heading(text string) {
	imgui.PushFont(img.glsl.headingFont)
	imgui.Text(text)
	imgui.PopFont()
}

// SliderInt implements the gui.Host interface.
func (img *SdlImgui) SliderInt(label string, value *int, min int, max int) bool {
	v := int32(*value)
	if !imgui.SliderInt(label, &v, int32(min), int32(max)) {
		return false
	}

	// the slider can be given a value outside of the range with ctrl+click
	if v < int32(min) {
		v = int32(min)
	} else if v > int32(max) {
		v = int32(max)
	}

	if int(v) == *value {
		return false
	}
	*value = int(v)
	return true
}

// ShowViewport implements the gui.Host interface.
//
// The viewport is drawn once the current viewport has been rendered. A
// viewport can only be shown once per frame.
func (img *SdlImgui) ShowViewport(id viewports.ID, builder gui.ViewportBuilder, content func(gui.Host)) {
	if img.shown[id] {
		logger.Logf(logger.Allow, "sdlimgui", "viewport %s shown more than once in a frame", id)
		return
	}
	img.shown[id] = true
	img.pending = append(img.pending, pendingViewport{
		id:      id,
		builder: builder,
		content: content,
	})
}

// RequestRepaint implements the gui.Host interface.
func (img *SdlImgui) RequestRepaint() {
	img.polling.alert()
}

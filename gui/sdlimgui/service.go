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
	"github.com/jetsetilly/viewportfps/logger"
	"github.com/jetsetilly/viewportfps/viewports"
	"github.com/veandco/go-sdl2/sdl"
)

// Service implements GuiCreator interface.
func (img *SdlImgui) Service() {
	img.mainThread.Check()

	for ev := img.polling.wait(); ev != nil; ev = sdl.PollEvent() {
		img.serviceEvent(ev)
	}

	img.renderFrame()

	if img.lmtr.Active() {
		img.lmtr.Wait()
	}
}

func (img *SdlImgui) serviceEvent(ev sdl.Event) {
	switch ev := ev.(type) {
	case *sdl.QuitEvent:
		img.quit()

	case *sdl.WindowEvent:
		if ev.Event == sdl.WINDOWEVENT_CLOSE {
			if ev.WindowID == img.primary.windowID {
				img.quit()
			} else if vp := img.viewportForWindow(ev.WindowID); vp != nil {
				logger.Logf(logger.Allow, "sdlimgui", "ignoring close of viewport %s", vp.id)
			}
		}

		// window may need redrawing. for example, after it has been resized
		img.polling.alert()

	case *sdl.MouseMotionEvent:
		img.forwardEvent(ev.WindowID, ev)
	case *sdl.MouseButtonEvent:
		img.forwardEvent(ev.WindowID, ev)
		img.polling.alert()
	case *sdl.MouseWheelEvent:
		img.forwardEvent(ev.WindowID, ev)
	case *sdl.TextInputEvent:
		img.forwardEvent(ev.WindowID, ev)
	case *sdl.KeyboardEvent:
		img.forwardEvent(ev.WindowID, ev)
	}
}

// forwardEvent sends the event to the imgui context of the viewport that owns
// the window. events for unknown windows are dropped.
func (img *SdlImgui) forwardEvent(windowID uint32, ev sdl.Event) {
	vp := img.viewportForWindow(windowID)
	if vp == nil {
		return
	}
	vp.setCurrent()
	vp.serviceEvent(ev)
}

func (img *SdlImgui) viewportForWindow(windowID uint32) *viewport {
	if img.primary.windowID == windowID {
		return img.primary
	}
	for _, vp := range img.viewports {
		if vp.windowID == windowID {
			return vp
		}
	}
	return nil
}

// renderFrame draws the primary viewport by calling the harness and then
// draws every viewport that the harness asked for.
func (img *SdlImgui) renderFrame() {
	clear(img.shown)
	img.pending = img.pending[:0]

	img.primary.setCurrent()
	img.primary.newFrame()
	img.app.Frame(img)
	img.primary.endFrame()
	img.present(img.primary)

	// the content of a viewport may itself show viewports so pending can grow
	// while we range over it
	order := make([]viewports.ID, 0, len(img.pending))
	for i := 0; i < len(img.pending); i++ {
		p := img.pending[i]

		if img.failed[p.id] {
			continue
		}

		vp, ok := img.viewports[p.id]
		if !ok {
			var err error
			vp, err = openViewport(p.id, p.builder, img.glsl.fonts)
			if err != nil {
				logger.Log(logger.Allow, "sdlimgui", err)
				img.failed[p.id] = true
				continue
			}
			img.viewports[p.id] = vp
			logger.Logf(logger.Allow, "sdlimgui", "opened viewport %s", p.id)
		}

		vp.setCurrent()
		vp.newFrame()
		p.content(img)
		vp.endFrame()
		img.present(vp)

		order = append(order, p.id)
	}

	for _, id := range reconcile(img.order, img.shown) {
		if err := img.viewports[id].destroy(); err != nil {
			logger.Log(logger.Allow, "sdlimgui", err)
		}
		delete(img.viewports, id)
		logger.Logf(logger.Allow, "sdlimgui", "closed viewport %s", id)
	}
	img.order = order
	forgetFailures(img.failed, img.shown)

	img.primary.setCurrent()
}

// present renders the viewport to its window and swaps the buffers.
func (img *SdlImgui) present(vp *viewport) {
	if err := img.plt.makeCurrent(vp.window); err != nil {
		logger.Log(logger.Allow, "sdlimgui", err)
		return
	}
	img.glsl.render(vp)
	vp.window.GLSwap()
}

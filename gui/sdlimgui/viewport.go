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
	"fmt"
	"math"

	"github.com/inkyblackness/imgui-go/v4"
	"github.com/jetsetilly/viewportfps/gui"
	"github.com/jetsetilly/viewportfps/viewports"
	"github.com/veandco/go-sdl2/sdl"
)

// viewport is an SDL window with its own imgui context. all contexts share the
// font atlas of the primary viewport.
type viewport struct {
	id       viewports.ID
	window   *sdl.Window
	windowID uint32

	ctx *imgui.Context
	io  imgui.IO

	// time of previous frame in units of sdl.GetPerformanceCounter()
	time uint64

	// mouse buttons pressed since the last frame. a press and release in the
	// same frame would otherwise be missed
	buttonsDown [3]bool
}

// the primary viewport has no id.
const primaryViewport = viewports.ID("")

func newViewport(id viewports.ID, window *sdl.Window, fonts *imgui.FontAtlas) (*viewport, error) {
	wid, err := window.GetID()
	if err != nil {
		return nil, fmt.Errorf("viewport: %w", err)
	}

	vp := &viewport{
		id:       id,
		window:   window,
		windowID: wid,
		ctx:      imgui.CreateContext(fonts),
	}

	// a new context is not necessarily made current on creation
	if err := vp.ctx.SetCurrent(); err != nil {
		vp.ctx.Destroy()
		return nil, fmt.Errorf("viewport: %w", err)
	}

	vp.io = imgui.CurrentIO()
	vp.io.SetIniFilename("")
	setKeyMapping(vp.io)

	return vp, nil
}

// openViewport creates a new window and a new imgui context for a secondary
// viewport.
func openViewport(id viewports.ID, builder gui.ViewportBuilder, fonts imgui.FontAtlas) (*viewport, error) {
	w, err := createWindow(builder)
	if err != nil {
		return nil, fmt.Errorf("viewport: %s: %w", id, err)
	}

	vp, err := newViewport(id, w, &fonts)
	if err != nil {
		_ = w.Destroy()
		return nil, err
	}

	return vp, nil
}

// destroy the imgui context and, for secondary viewports, the window. the
// primary window belongs to the platform.
func (vp *viewport) destroy() error {
	if vp.ctx != nil {
		vp.ctx.Destroy()
		vp.ctx = nil
	}

	if vp.id == primaryViewport {
		return nil
	}

	if vp.window != nil {
		err := vp.window.Destroy()
		vp.window = nil
		if err != nil {
			return fmt.Errorf("viewport: %s: %w", vp.id, err)
		}
	}

	return nil
}

// setCurrent makes the viewport's imgui context current.
func (vp *viewport) setCurrent() {
	if err := vp.ctx.SetCurrent(); err != nil {
		panic(fmt.Sprintf("viewport: %s: %v", vp.id, err))
	}
}

// displaySize returns the dimension of the window.
func (vp *viewport) displaySize() (float32, float32) {
	w, h := vp.window.GetSize()
	return float32(w), float32(h)
}

// framebufferSize returns the dimension of the framebuffer.
func (vp *viewport) framebufferSize() (float32, float32) {
	w, h := vp.window.GLGetDrawableSize()
	return float32(w), float32(h)
}

// newFrame starts a new imgui frame for the viewport. the viewport's context
// must be current.
func (vp *viewport) newFrame() {
	w, h := vp.displaySize()
	vp.io.SetDisplaySize(imgui.Vec2{X: w, Y: h})

	// we don't use SDL_GetTicks() because it is using millisecond resolution
	frequency := sdl.GetPerformanceFrequency()
	currentTime := sdl.GetPerformanceCounter()
	if vp.time > 0 {
		vp.io.SetDeltaTime(float32(currentTime-vp.time) / float32(frequency))
	} else {
		vp.io.SetDeltaTime(1.0 / 60.0)
	}
	vp.time = currentTime

	// mouse state is reported relative to the window with mouse focus. every
	// other window sees the mouse as being absent
	if sdl.GetMouseFocus() == vp.window {
		x, y, state := sdl.GetMouseState()
		vp.io.SetMousePosition(imgui.Vec2{X: float32(x), Y: float32(y)})
		for i, button := range []uint32{sdl.BUTTON_LEFT, sdl.BUTTON_RIGHT, sdl.BUTTON_MIDDLE} {
			vp.io.SetMouseButtonDown(i, vp.buttonsDown[i] || (state&sdl.Button(button)) != 0)
		}
	} else {
		vp.io.SetMousePosition(imgui.Vec2{X: -math.MaxFloat32, Y: -math.MaxFloat32})
		for i := range vp.buttonsDown {
			vp.io.SetMouseButtonDown(i, vp.buttonsDown[i])
		}
	}
	vp.buttonsDown = [3]bool{}

	imgui.NewFrame()

	// the content of the viewport fills the window
	imgui.SetNextWindowPos(imgui.Vec2{})
	imgui.SetNextWindowSize(imgui.Vec2{X: w, Y: h})
	imgui.BeginV(fmt.Sprintf("##viewport%s", vp.id), nil,
		imgui.WindowFlagsNoDecoration|imgui.WindowFlagsNoMove|
			imgui.WindowFlagsNoSavedSettings|imgui.WindowFlagsNoBringToFrontOnFocus)
}

// endFrame ends the imgui frame started with newFrame().
func (vp *viewport) endFrame() {
	imgui.End()
	imgui.Render()
}

// serviceEvent forwards an SDL event to the viewport's imgui context. the
// viewport's context must be current.
func (vp *viewport) serviceEvent(ev sdl.Event) {
	switch ev := ev.(type) {
	case *sdl.MouseWheelEvent:
		var deltaX, deltaY float32
		if ev.X > 0 {
			deltaX++
		} else if ev.X < 0 {
			deltaX--
		}
		if ev.Y > 0 {
			deltaY++
		} else if ev.Y < 0 {
			deltaY--
		}
		vp.io.AddMouseWheelDelta(deltaX, deltaY)

	case *sdl.MouseButtonEvent:
		if ev.Type != sdl.MOUSEBUTTONDOWN {
			break
		}
		switch ev.Button {
		case sdl.BUTTON_LEFT:
			vp.buttonsDown[0] = true
		case sdl.BUTTON_RIGHT:
			vp.buttonsDown[1] = true
		case sdl.BUTTON_MIDDLE:
			vp.buttonsDown[2] = true
		}

	case *sdl.TextInputEvent:
		vp.io.AddInputCharacters(string(ev.Text[:]))

	case *sdl.KeyboardEvent:
		switch ev.Type {
		case sdl.KEYDOWN:
			vp.io.KeyPress(int(ev.Keysym.Scancode))
		case sdl.KEYUP:
			vp.io.KeyRelease(int(ev.Keysym.Scancode))
		}
		updateKeyModifier(vp.io)
	}
}

func setKeyMapping(io imgui.IO) {
	keys := map[int]int{
		imgui.KeyTab:        sdl.SCANCODE_TAB,
		imgui.KeyLeftArrow:  sdl.SCANCODE_LEFT,
		imgui.KeyRightArrow: sdl.SCANCODE_RIGHT,
		imgui.KeyUpArrow:    sdl.SCANCODE_UP,
		imgui.KeyDownArrow:  sdl.SCANCODE_DOWN,
		imgui.KeyPageUp:     sdl.SCANCODE_PAGEUP,
		imgui.KeyPageDown:   sdl.SCANCODE_PAGEDOWN,
		imgui.KeyHome:       sdl.SCANCODE_HOME,
		imgui.KeyEnd:        sdl.SCANCODE_END,
		imgui.KeyInsert:     sdl.SCANCODE_INSERT,
		imgui.KeyDelete:     sdl.SCANCODE_DELETE,
		imgui.KeyBackspace:  sdl.SCANCODE_BACKSPACE,
		imgui.KeySpace:      sdl.SCANCODE_SPACE,
		imgui.KeyEnter:      sdl.SCANCODE_RETURN,
		imgui.KeyEscape:     sdl.SCANCODE_ESCAPE,
		imgui.KeyA:          sdl.SCANCODE_A,
		imgui.KeyC:          sdl.SCANCODE_C,
		imgui.KeyV:          sdl.SCANCODE_V,
		imgui.KeyX:          sdl.SCANCODE_X,
		imgui.KeyY:          sdl.SCANCODE_Y,
		imgui.KeyZ:          sdl.SCANCODE_Z,
	}

	// imgui will use those indices to peek into the io.KeysDown[] array
	for imguiKey, nativeKey := range keys {
		io.KeyMap(imguiKey, nativeKey)
	}
}

func updateKeyModifier(io imgui.IO) {
	modState := sdl.GetModState()
	mapModifier := func(lMask sdl.Keymod, lKey int, rMask sdl.Keymod, rKey int) (lResult int, rResult int) {
		if (modState & lMask) != 0 {
			lResult = lKey
		}
		if (modState & rMask) != 0 {
			rResult = rKey
		}
		return
	}
	io.KeyShift(mapModifier(sdl.KMOD_LSHIFT, sdl.SCANCODE_LSHIFT, sdl.KMOD_RSHIFT, sdl.SCANCODE_RSHIFT))
	io.KeyCtrl(mapModifier(sdl.KMOD_LCTRL, sdl.SCANCODE_LCTRL, sdl.KMOD_RCTRL, sdl.SCANCODE_RCTRL))
	io.KeyAlt(mapModifier(sdl.KMOD_LALT, sdl.SCANCODE_LALT, sdl.KMOD_RALT, sdl.SCANCODE_RALT))
}

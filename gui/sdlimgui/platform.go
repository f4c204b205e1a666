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
	"runtime"

	"github.com/jetsetilly/viewportfps/gui"
	"github.com/jetsetilly/viewportfps/logger"
	"github.com/veandco/go-sdl2/sdl"
)

// the platform is SDL and the single GL context shared by every window. the
// GL context is created for the primary window but it can be made current for
// any window created with the sdl.WINDOW_OPENGL flag
type platform struct {
	mode      sdl.DisplayMode
	glContext sdl.GLContext

	// the window the GL context was created for
	window *sdl.Window
}

// newPlatform is the preferred method of initialisation for the platform
// type. The window used for the primary viewport is created here because a
// GL context can not be created without one.
func newPlatform(primary gui.ViewportBuilder) (*platform, error) {
	// the SDL package calls LockOSThread() but we call it here too. it can't
	// hurt and we never unlock it in any case
	runtime.LockOSThread()

	err := sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}

	attrs := []struct {
		attr  sdl.GLattr
		value int
	}{
		{sdl.GL_CONTEXT_MAJOR_VERSION, 3},
		{sdl.GL_CONTEXT_MINOR_VERSION, 2},
		{sdl.GL_CONTEXT_FLAGS, sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG},
		{sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE},
		{sdl.GL_DOUBLEBUFFER, 1},
	}
	for _, a := range attrs {
		err = sdl.GLSetAttribute(a.attr, a.value)
		if err != nil {
			sdl.Quit()
			return nil, fmt.Errorf("sdl: %w", err)
		}
	}

	var sdlVersion sdl.Version
	sdl.VERSION(&sdlVersion)
	logger.Logf(logger.Allow, "sdl", "version %d.%d.%d", sdlVersion.Major, sdlVersion.Minor, sdlVersion.Patch)

	plt := &platform{}

	plt.mode, err = sdl.GetCurrentDisplayMode(0)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("sdl: %w", err)
	}
	logger.Logf(logger.Allow, "sdl", "refresh rate: %dHz", plt.mode.RefreshRate)

	plt.window, err = createWindow(primary)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("sdl: %w", err)
	}

	plt.glContext, err = plt.window.GLCreateContext()
	if err != nil {
		plt.destroy()
		return nil, fmt.Errorf("sdl: %w", err)
	}

	err = plt.window.GLMakeCurrent(plt.glContext)
	if err != nil {
		plt.destroy()
		return nil, fmt.Errorf("sdl: %w", err)
	}

	major, _ := sdl.GLGetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION)
	minor, _ := sdl.GLGetAttribute(sdl.GL_CONTEXT_MINOR_VERSION)
	logger.Logf(logger.Allow, "sdl", "using GL version %d.%d core", major, minor)

	return plt, nil
}

// createWindow opens a new SDL window suitable for use with the shared GL
// context.
func createWindow(builder gui.ViewportBuilder) (*sdl.Window, error) {
	w, err := sdl.CreateWindow(builder.Title,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		builder.Width, builder.Height,
		sdl.WINDOW_OPENGL|sdl.WINDOW_ALLOW_HIGHDPI|sdl.WINDOW_RESIZABLE)
	if err != nil {
		return nil, err
	}
	w.SetMinimumSize(builder.MinWidth, builder.MinHeight)
	return w, nil
}

// list of swap interval values. these are values defined and expected by the
// SDL.GLSetSwapInterval() function
const (
	syncImmediateUpdate     = 0
	syncWithVerticalRetrace = 1
)

// the swap interval applies to the shared GL context and therefore to every
// window.
func (plt *platform) setSwapInterval(vsync bool) {
	i := syncImmediateUpdate
	if vsync {
		i = syncWithVerticalRetrace
	}

	err := sdl.GLSetSwapInterval(i)
	if err != nil {
		logger.Logf(logger.Allow, "sdl", "GLSetSwapInterval(%d): %v", i, err)
		return
	}
	logger.Logf(logger.Allow, "sdl", "swap interval: %d", i)
}

// makeCurrent makes the shared GL context current for the window.
func (plt *platform) makeCurrent(w *sdl.Window) error {
	return w.GLMakeCurrent(plt.glContext)
}

// destroy cleans up the resources. the primary window is destroyed here
// rather than by the primary viewport because it outlives every other
// window.
func (plt *platform) destroy() error {
	if plt.glContext != nil {
		sdl.GLDeleteContext(plt.glContext)
		plt.glContext = nil
	}

	if plt.window != nil {
		err := plt.window.Destroy()
		if err != nil {
			return err
		}
		plt.window = nil
	}

	sdl.Quit()

	return nil
}

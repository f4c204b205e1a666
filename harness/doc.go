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

// Package harness is the per-frame application callback of the program. It
// draws the primary window and requests the secondary windows from a
// gui.Host.
//
// Every frame the App draws a heading showing the most recent frame rate
// published by the sampler, followed by a slider for the number of secondary
// windows. Each secondary window is requested by the identifier given to it
// by the viewports.Controller and contains a single static heading.
//
// A repaint is requested at the end of every frame so that the host runs
// continuously. Frames are counted by the sampler.
//
// The App is not safe for concurrent use. Frame() must always be called from
// the same goroutine and will panic if it is not.
package harness

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
	"github.com/jetsetilly/viewportfps/gui"
	"github.com/veandco/go-sdl2/sdl"
)

// time period in milliseconds that the service loop waits for an event when
// a repaint has not been requested.
const idleSleepPeriod = 500

type featureRequest struct {
	request gui.FeatureReq
	args    []gui.FeatureReqData
}

type polling struct {
	img *SdlImgui

	// wake is used to preempt the wait for an SDL event. set by alert(),
	// which is called whenever a repaint is requested
	wake bool

	// SetFeature() hands off requests to the featureSet channel for servicing
	// in the main thread
	featureSet    chan featureRequest
	featureSetErr chan error
}

func newPolling(img *SdlImgui) *polling {
	return &polling{
		img:           img,
		featureSet:    make(chan featureRequest, 1),
		featureSetErr: make(chan error, 1),
	}
}

// alert() forces the next call to wait to resolve immediately.
func (pol *polling) alert() {
	pol.wake = true
}

// wait services any pending feature request and then returns the first
// pending SDL event. if a repaint has been requested wait() does not block
// and the event may be nil.
func (pol *polling) wait() sdl.Event {
	if pol.serviceFeatureRequest() {
		pol.wake = true
	}

	if pol.wake {
		pol.wake = false
		return sdl.PollEvent()
	}

	return sdl.WaitEventTimeout(idleSleepPeriod)
}

// serviceFeatureRequest services a request made with SetFeature(), if there
// is one. returns true if a request was serviced.
func (pol *polling) serviceFeatureRequest() bool {
	select {
	case r := <-pol.featureSet:
		pol.img.serviceSetFeature(r)
		return true
	default:
	}
	return false
}

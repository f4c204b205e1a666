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
	"github.com/jetsetilly/viewportfps/curated"
	"github.com/jetsetilly/viewportfps/gui"
)

// SetFeature implements gui.GUI interface. The request is serviced by the
// main thread during the next call to Service().
func (img *SdlImgui) SetFeature(request gui.FeatureReq, args ...gui.FeatureReqData) error {
	img.polling.featureSet <- featureRequest{request: request, args: args}
	return <-img.polling.featureSetErr
}

// serviceSetFeature must only be called from the main thread.
func (img *SdlImgui) serviceSetFeature(request featureRequest) {
	// lazy (but clear) handling of type assertion errors
	defer func() {
		if r := recover(); r != nil {
			img.polling.featureSetErr <- curated.Errorf(ErrorPattern, r)
		}
	}()

	var err error

	switch request.request {
	case gui.ReqMonitorSync:
		err = img.prefs.Vsync.Set(request.args[0].(bool))

	case gui.ReqFPSCap:
		err = img.prefs.FPSCap.Set(request.args[0].(int))

	case gui.ReqEnd:
		img.quit()

	default:
		err = curated.Errorf(gui.UnsupportedGuiFeature, request.request)
	}

	if err != nil {
		err = curated.Errorf(ErrorPattern, err)
	}
	img.polling.featureSetErr <- err
}

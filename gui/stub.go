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

package gui

import "github.com/jetsetilly/viewportfps/viewports"

// Stub implements the Host and GUI interfaces but does nothing.
type Stub struct{}

// Heading implements the Host interface.
func (Stub) Heading(_ string) {}

// SliderInt implements the Host interface. The value is never changed.
func (Stub) SliderInt(_ string, _ *int, _ int, _ int) bool {
	return false
}

// ShowViewport implements the Host interface. The content function is not
// called.
func (Stub) ShowViewport(_ viewports.ID, _ ViewportBuilder, _ func(Host)) {}

// RequestRepaint implements the Host interface.
func (Stub) RequestRepaint() {}

// SetFeature implements the GUI interface.
func (Stub) SetFeature(_ FeatureReq, _ ...FeatureReqData) error {
	return nil
}

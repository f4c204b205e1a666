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

// FeatureReq is used to request the setting of a gui attribute.
type FeatureReq string

// FeatureReqData represents the information associated with a FeatureReq. See
// commentary for the defined FeatureReq values for the underlying type.
type FeatureReqData any

// List of valid feature requests. argument must be of the type specified or
// else the type assertion will fail and the request will return an error.
//
// Note that, like the name suggests, these are requests, they may or may not
// be satisfied depending other conditions in the GUI.
const (
	// whether the gui should sync buffer swaps with the monitor refresh rate.
	// the harness measures the uncapped rate so this is normally false.
	ReqMonitorSync FeatureReq = "ReqMonitorSync" // bool

	// limit the number of frames per second. a value of zero or less removes
	// the limit.
	ReqFPSCap FeatureReq = "ReqFPSCap" // int

	// request that the gui ends its service loop and the program quits.
	ReqEnd FeatureReq = "ReqEnd" // nil
)

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

package viewports

import (
	"strconv"

	"github.com/jetsetilly/viewportfps/logger"
)

// The range of values for the number of secondary windows.
const (
	MinWindows = 0
	MaxWindows = 10
)

// ID is an opaque identifier for a secondary window.
type ID string

// NewID returns the identifier for the secondary window at index i.
func NewID(i int) ID {
	return ID("w" + strconv.Itoa(i))
}

// Clamp value to the range MinWindows to MaxWindows inclusive.
func Clamp(v int) int {
	if v < MinWindows {
		return MinWindows
	}
	if v > MaxWindows {
		return MaxWindows
	}
	return v
}

// Controller owns the desired number of secondary windows and the
// corresponding identifiers.
//
// Not safe for concurrent use. The controller belongs to the render loop.
type Controller struct {
	count int
	ids   []ID
}

// NewController is the preferred method of initialisation for the Controller
// type. The initial count is zero.
func NewController() *Controller {
	return &Controller{
		ids: []ID{},
	}
}

// Count returns the desired number of secondary windows.
func (ctl *Controller) Count() int {
	return ctl.count
}

// IDs returns the identifiers of the secondary windows in index order. The
// length of the slice is always equal to Count().
//
// The slice is owned by the controller and must not be modified. It is the
// same slice from one call to the next for as long as the count is
// unchanged.
func (ctl *Controller) IDs() []ID {
	return ctl.ids
}

// Set the desired number of secondary windows. The value is clamped to the
// range MinWindows to MaxWindows.
//
// Returns false and leaves the identifiers untouched if the clamped value is
// the same as the current count. Otherwise a new list of identifiers is
// created and the function returns true.
func (ctl *Controller) Set(v int) bool {
	c := Clamp(v)
	if c != v {
		logger.Logf(logger.Allow, "viewports", "number of windows (%d) clamped to %d", v, c)
	}

	if c == ctl.count {
		return false
	}

	ids := make([]ID, c)
	for i := range ids {
		ids[i] = NewID(i)
	}

	ctl.count = c
	ctl.ids = ids

	return true
}

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

import "github.com/jetsetilly/viewportfps/viewports"

// reconcile returns the IDs in current that are not in shown, preserving the
// order of current. the viewports for these IDs should be destroyed.
func reconcile(current []viewports.ID, shown map[viewports.ID]bool) (stale []viewports.ID) {
	for _, id := range current {
		if !shown[id] {
			stale = append(stale, id)
		}
	}
	return stale
}

// forgetFailures removes the IDs in failed that are not in shown. a viewport
// that failed to open is tried again once it has been hidden and then shown.
func forgetFailures(failed map[viewports.ID]bool, shown map[viewports.ID]bool) {
	for id := range failed {
		if !shown[id] {
			delete(failed, id)
		}
	}
}

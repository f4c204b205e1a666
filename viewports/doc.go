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

// Package viewports tracks the desired number of secondary windows and the
// list of identifiers, one per window, that the GUI uses to key the
// resources of each window.
//
// The identifier for a window is a pure function of its index (see NewID()).
// The identifier list is rebuilt in full whenever the count changes and is
// otherwise left untouched, so a GUI that keys its windows by identifier will
// keep a window's resources for as long as the window's index is below the
// count.
package viewports

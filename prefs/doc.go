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

// Package prefs holds preference values. Values are typed (Bool and Int) and
// can be read from any goroutine.
//
// Hooks can be attached to a value so that a change to the preference takes
// effect immediately. For example, the GUI attaches a hook to its vsync
// preference so that the swap interval is changed as soon as the preference
// is set.
//
// Preferences are collected into a Group by key. The values in a Group can
// be overridden from the command line by pushing a prefs string onto the
// command line stack before calling Group.ApplyCommandLine(). A prefs string
// is a list of key/value pairs:
//
//	vsync::true; fpscap::120
//
// Preferences are not saved to disk.
package prefs

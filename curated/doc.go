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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. It takes a pattern
// and placeholder values in the same way as fmt.Errorf(). The pattern is
// remembered and is used to differentiate curated errors. For example:
//
//	e := curated.Errorf("sdlimgui: %v", err)
//
//	if curated.Is(e, "sdlimgui: %v") {
//		fmt.Println("true")
//	}
//
// The Error() implementation normalises the error chain, removing duplicate
// adjacent parts. This means a function can always wrap an error with its
// package prefix without worrying whether the error it received already has
// that prefix:
//
//	curated.Errorf("sdlimgui: %v", curated.Errorf("sdlimgui: %v", "no display"))
//
// prints as "sdlimgui: no display".
package curated

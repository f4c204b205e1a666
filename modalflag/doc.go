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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It handles program modes (and sub-modes) and allows different flags
// for each mode.
//
// Arguments are given to a Modes instance with NewArgs(). Flags and sub-modes
// for the current mode are then added and Parse() is called:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "HEADLESS", "VERSION")
//	p, err := md.Parse()
//
// The first listed sub-mode is the default. After parsing, Mode() returns the
// sub-mode that was selected. If the mode needs flags of its own then
// NewMode() is called and flags are added before calling Parse() again:
//
//	switch md.Mode() {
//	case "HEADLESS":
//		md.NewMode()
//		duration := md.AddDuration("duration", 5*time.Second, "length of run")
//		p, err := md.Parse()
//		...
//	}
//
// Modes can be nested as deeply as required. Path() returns every mode that
// has been selected, separated by a forward slash.
//
// Sub-mode comparisons are case insensitive.
//
// A -help flag is handled automatically. Parse() prints the available flags
// and sub-modes for the current mode to the Output writer and returns
// ParseHelp.
package modalflag

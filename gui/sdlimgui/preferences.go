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
	"github.com/jetsetilly/viewportfps/prefs"
)

// Preferences for the SDL/ImGui host. Values can be overridden on the command
// line with the keys "vsync" and "fpscap".
//
// Once the preferences have been given to NewSdlImgui() they should only be
// changed through the SetFeature() function.
type Preferences struct {
	grp *prefs.Group

	// synchronise buffer swaps with the monitor refresh rate. the harness
	// measures the uncapped frame rate so this is false by default
	Vsync prefs.Bool

	// maximum frames per second. zero or less means no limit
	FPSCap prefs.Int
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{
		grp: prefs.NewGroup("sdlimgui"),
	}

	err := p.grp.Add("vsync", &p.Vsync)
	if err != nil {
		return nil, err
	}
	err = p.grp.Add("fpscap", &p.FPSCap)
	if err != nil {
		return nil, err
	}

	return p, nil
}

// String returns the preferences as a prefs string.
func (p *Preferences) String() string {
	return p.grp.String()
}

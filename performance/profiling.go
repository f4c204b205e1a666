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

package performance

import (
	"fmt"
	"strings"

	"github.com/pkg/profile"
)

// Profile specifies which profiling (if any) should be performed.
type Profile string

// List of valid Profile values.
const (
	ProfileNone  Profile = "NONE"
	ProfileCPU   Profile = "CPU"
	ProfileMem   Profile = "MEM"
	ProfileTrace Profile = "TRACE"
)

// ParseProfile converts a string, as supplied on the command line, to a
// Profile value. The string is not case sensitive. An empty string is the
// same as "none".
func ParseProfile(s string) (Profile, error) {
	p := Profile(strings.ToUpper(strings.TrimSpace(s)))
	switch p {
	case "":
		return ProfileNone, nil
	case ProfileNone, ProfileCPU, ProfileMem, ProfileTrace:
		return p, nil
	}
	return ProfileNone, fmt.Errorf("profile: unknown profile type %q", s)
}

// RunProfiler runs the supplied function with the requested profiler active.
// The profile is written to the directory named by path, which will be
// created if necessary.
//
// Only one profile type is supported at a time.
func RunProfiler(prf Profile, path string, run func() error) error {
	var mode func(*profile.Profile)

	switch prf {
	case ProfileNone:
		return run()
	case ProfileCPU:
		mode = profile.CPUProfile
	case ProfileMem:
		mode = profile.MemProfile
	case ProfileTrace:
		mode = profile.TraceProfile
	default:
		return fmt.Errorf("profile: unknown profile type %q", prf)
	}

	p := profile.Start(mode, profile.ProfilePath(path), profile.NoShutdownHook, profile.Quiet)
	defer p.Stop()

	return run()
}

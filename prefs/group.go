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

package prefs

import (
	"fmt"
	"sort"
	"strings"
)

// Group is a named collection of preferences.
type Group struct {
	name    string
	entries map[string]Pref
}

// NewGroup is the preferred method of initialisation for the Group type.
func NewGroup(name string) *Group {
	return &Group{
		name:    name,
		entries: make(map[string]Pref),
	}
}

// Add a preference to the group. The key must be unique within the group.
func (grp *Group) Add(key string, p Pref) error {
	if _, ok := grp.entries[key]; ok {
		return fmt.Errorf("prefs: %s: key %q already in use", grp.name, key)
	}
	grp.entries[key] = p
	return nil
}

// ApplyCommandLine sets each preference in the group for which there is a
// value in the current command line group. Returns the first error
// encountered.
func (grp *Group) ApplyCommandLine() error {
	for _, key := range grp.keys() {
		if ok, v := GetCommandLinePref(key); ok {
			if err := grp.entries[key].Set(v); err != nil {
				return fmt.Errorf("prefs: %s: %s: %w", grp.name, key, err)
			}
		}
	}
	return nil
}

// Reset all preferences in the group to their zero value.
func (grp *Group) Reset() error {
	for _, key := range grp.keys() {
		if err := grp.entries[key].Reset(); err != nil {
			return fmt.Errorf("prefs: %s: %s: %w", grp.name, key, err)
		}
	}
	return nil
}

// String returns the group as a prefs string. Keys are sorted.
func (grp *Group) String() string {
	s := make([]string, 0, len(grp.entries))
	for _, key := range grp.keys() {
		s = append(s, fmt.Sprintf("%s::%s", key, grp.entries[key]))
	}
	return strings.Join(s, "; ")
}

func (grp *Group) keys() []string {
	keys := make([]string, 0, len(grp.entries))
	for key := range grp.entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

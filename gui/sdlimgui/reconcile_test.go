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
	"testing"

	"github.com/jetsetilly/viewportfps/test"
	"github.com/jetsetilly/viewportfps/viewports"
)

func shownSet(ids ...viewports.ID) map[viewports.ID]bool {
	m := make(map[viewports.ID]bool)
	for _, id := range ids {
		m[id] = true
	}
	return m
}

func expectIDs(t *testing.T, ids []viewports.ID, expected ...viewports.ID) {
	t.Helper()
	test.DemandEquality(t, len(ids), len(expected))
	for i := range ids {
		test.ExpectEquality(t, ids[i], expected[i])
	}
}

func TestReconcileNothingShown(t *testing.T) {
	expectIDs(t, reconcile(nil, shownSet()))
	expectIDs(t, reconcile([]viewports.ID{"w0", "w1"}, shownSet()), "w0", "w1")
}

func TestReconcileUnchanged(t *testing.T) {
	current := []viewports.ID{"w0", "w1", "w2"}
	expectIDs(t, reconcile(current, shownSet(current...)))
}

func TestReconcileShrink(t *testing.T) {
	current := []viewports.ID{"w0", "w1", "w2"}
	expectIDs(t, reconcile(current, shownSet("w0")), "w1", "w2")
}

func TestReconcileGrow(t *testing.T) {
	// viewports shown for the first time are not stale
	current := []viewports.ID{"w0"}
	expectIDs(t, reconcile(current, shownSet("w0", "w1", "w2")))
}

func TestReconcileFromController(t *testing.T) {
	ctl := viewports.NewController()
	ctl.Set(3)
	current := ctl.IDs()

	ctl.Set(1)
	expectIDs(t, reconcile(current, shownSet(ctl.IDs()...)), "w1", "w2")
}

func TestForgetFailures(t *testing.T) {
	failed := shownSet("w1", "w2")

	// still shown. failures are remembered so the viewport is not retried
	forgetFailures(failed, shownSet("w0", "w1", "w2"))
	test.ExpectEquality(t, len(failed), 2)

	// w2 was hidden by the controller shrinking
	forgetFailures(failed, shownSet("w0", "w1"))
	test.ExpectEquality(t, len(failed), 1)
	test.ExpectSuccess(t, failed["w1"])
	test.ExpectFailure(t, failed["w2"])

	forgetFailures(failed, shownSet())
	test.ExpectEquality(t, len(failed), 0)
}

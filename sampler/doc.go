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

// Package sampler counts rendered frames and publishes the count once per
// sampling period.
//
// The render loop calls RecordFrame() once per frame. A background goroutine,
// launched with Start(), calls Sample() once per period. Sample() swaps the
// frame counter with zero and stores the swapped value as the published rate.
// CurrentRate() returns the published rate, which will be up to one period
// old.
//
// The counter and the published rate are separate atomic values. The render
// loop never waits on the sampler.
package sampler

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

package gui

import "github.com/jetsetilly/viewportfps/viewports"

// RecordedViewport is a viewport as it was shown by the most recent frame.
type RecordedViewport struct {
	ID       viewports.ID
	Builder  ViewportBuilder
	Headings []string
}

// RecordedFrame is the record of one call to Recorder.Frame().
type RecordedFrame struct {
	Headings  []string
	Sliders   []string
	Viewports []RecordedViewport
	Repaint   bool
}

// Recorder implements the Host interface by recording what is drawn. Slider
// input is scripted with SetSlider().
//
// Only the most recent frame is kept. Frames are counted.
type Recorder struct {
	// the number of frames recorded
	Frames int

	// the most recent frame
	Last RecordedFrame

	// headings are appended to whatever this points to. either the Headings
	// field of the current frame or the Headings field of a viewport
	headings *[]string

	slider    int
	hasSlider bool
}

// NewRecorder is the preferred method of initialisation for the Recorder
// type.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// SetSlider sets the value that the next call to SliderInt() will apply. The
// value is clamped to the range of the slider in the same way a real GUI
// would.
func (r *Recorder) SetSlider(v int) {
	r.slider = v
	r.hasSlider = true
}

// Frame records a single frame. The draw function will normally be the Frame
// function of the harness.
func (r *Recorder) Frame(draw func(Host)) {
	r.Last = RecordedFrame{}
	r.headings = &r.Last.Headings
	draw(r)
	r.headings = nil
	r.Frames++
}

// Heading implements the Host interface.
func (r *Recorder) Heading(text string) {
	if r.headings != nil {
		*r.headings = append(*r.headings, text)
	}
}

// SliderInt implements the Host interface.
func (r *Recorder) SliderInt(label string, value *int, min int, max int) bool {
	r.Last.Sliders = append(r.Last.Sliders, label)

	if !r.hasSlider {
		return false
	}
	r.hasSlider = false

	v := r.slider
	if v < min {
		v = min
	} else if v > max {
		v = max
	}

	if v == *value {
		return false
	}
	*value = v
	return true
}

// ShowViewport implements the Host interface.
func (r *Recorder) ShowViewport(id viewports.ID, builder ViewportBuilder, content func(Host)) {
	r.Last.Viewports = append(r.Last.Viewports, RecordedViewport{
		ID:      id,
		Builder: builder,
	})

	vp := &r.Last.Viewports[len(r.Last.Viewports)-1]

	prev := r.headings
	r.headings = &vp.Headings
	content(r)
	r.headings = prev
}

// RequestRepaint implements the Host interface.
func (r *Recorder) RequestRepaint() {
	r.Last.Repaint = true
}

// ViewportIDs returns the IDs of the viewports shown in the most recent
// frame.
func (r *Recorder) ViewportIDs() []viewports.ID {
	ids := make([]viewports.ID, 0, len(r.Last.Viewports))
	for _, vp := range r.Last.Viewports {
		ids = append(ids, vp.ID)
	}
	return ids
}

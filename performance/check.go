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
	"io"
	"time"

	"github.com/jetsetilly/viewportfps/gui"
	"github.com/jetsetilly/viewportfps/harness"
	"github.com/jetsetilly/viewportfps/sampler"
)

// number of frames between checks of the timer and the sampler. checking the
// channels every frame is relatively expensive at the frame rates we see
// without a GUI
const performanceBrake = 100

// Check the performance of the harness by running it without a GUI.
//
// The harness will run for the specified duration with the number of
// secondary windows set on the first frame. The published rate is written to
// output once per sample and a summary is written at the end.
//
// The sampler used by the App must not already be running.
func Check(output io.Writer, prf Profile, app *harness.App, windows int, duration time.Duration) error {
	if duration <= 0 {
		return fmt.Errorf("performance: duration must be positive")
	}

	rec := gui.NewRecorder()
	rec.SetSlider(windows)

	// rates are published from the sampler goroutine but the controller must
	// only be accessed by the goroutine running the App
	rates := make(chan int, 1)
	smp := app.Sampler()
	smp.SetOnSample(func(rate int) {
		select {
		case rates <- rate:
		default:
		}
	})
	defer smp.SetOnSample(nil)

	var elapsed time.Duration

	runner := func() error {
		timer := time.NewTimer(duration)
		defer timer.Stop()

		smp.Start(sampler.DefaultPeriod)
		defer smp.Stop()

		start := time.Now()
		defer func() {
			elapsed = time.Since(start)
		}()

		brake := 0
		for {
			rec.Frame(app.Frame)

			brake++
			if brake < performanceBrake {
				continue
			}
			brake = 0

			select {
			case rate := <-rates:
				fmt.Fprintf(output, "%d fps (%d windows)\n", rate, app.Controller().Count())
			case <-timer.C:
				return nil
			default:
			}
		}
	}

	err := RunProfiler(prf, "profile", runner)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	fps := CalcFPS(rec.Frames, elapsed.Seconds())
	fmt.Fprintf(output, "%.2f fps (%d frames in %.2f seconds) with %d windows\n",
		fps, rec.Frames, elapsed.Seconds(), app.Controller().Count())

	return nil
}

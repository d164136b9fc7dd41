// This file is part of Hode.
//
// Hode is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Hode is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Hode.  If not, see <https://www.gnu.org/licenses/>.

package performance

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/hode-port/hode/gui/headless"
	"github.com/hode-port/hode/performance/limiter"
)

// CheckSettings are the parameters for the Check() function.
type CheckSettings struct {
	Width, Height int

	Scaler     string
	Multiplier int
	Widescreen bool

	// target frame rate. if Uncapped is true then frames are presented as
	// quickly as possible
	FPS      int
	Uncapped bool

	Duration time.Duration
}

// sentinal error returned by the frame loop.
var timedOut = errors.New("performance timed out")

// Check the performance of the compositor by presenting a generated frame
// repeatedly for the specified duration. The number of frames presented and
// the frame rate achieved is written to output.
func Check(output io.Writer, profile Profile, settings CheckSettings) error {
	sys := headless.NewHeadless(false)
	err := sys.Init("performance", settings.Width, settings.Height, false, settings.Widescreen, false)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}
	defer sys.Destroy()

	sys.SetScaler(settings.Scaler, settings.Multiplier)

	// greyscale ramp palette
	pal := make([]uint8, 256*3)
	for i := range 256 {
		pal[i*3] = uint8(i)
		pal[i*3+1] = uint8(i)
		pal[i*3+2] = uint8(i)
	}
	err = sys.SetPalette(pal, 256, 8)
	if err != nil {
		return fmt.Errorf("performance: %w", err)
	}

	frame := make([]uint8, settings.Width*settings.Height)

	var lim *limiter.FpsLimiter
	if !settings.Uncapped {
		lim, err = limiter.NewFPSLimiter(settings.FPS)
		if err != nil {
			return fmt.Errorf("performance: %w", err)
		}
		defer lim.Stop()
	}

	var numFrames int
	var elapsed time.Duration

	runner := func() error {
		start := time.Now()
		defer func() {
			elapsed = time.Since(start)
		}()

		for {
			if time.Since(start) >= settings.Duration {
				return timedOut
			}

			for i := range frame {
				frame[i] = uint8(i + numFrames)
			}
			err := sys.CopyRect(0, 0, settings.Width, settings.Height, frame, settings.Width)
			if err != nil {
				return err
			}
			if settings.Widescreen {
				err = sys.CopyRectWidescreen(settings.Width, settings.Height, frame, pal)
				if err != nil {
					return err
				}
			}
			err = sys.UpdateScreen(settings.Widescreen)
			if err != nil {
				return err
			}
			numFrames++

			if lim != nil {
				lim.Wait()
			}
		}
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil && !errors.Is(err, timedOut) {
		return fmt.Errorf("performance: %w", err)
	}

	fps, accuracy := CalcFPS(numFrames, elapsed.Seconds(), float64(settings.FPS))
	if settings.Uncapped {
		output.Write([]byte(fmt.Sprintf("%.2f fps (%d frames in %.2f seconds)\n", fps, numFrames, elapsed.Seconds())))
	} else {
		output.Write([]byte(fmt.Sprintf("%.2f fps (%d frames in %.2f seconds) %.1f%%\n", fps, numFrames, elapsed.Seconds(), accuracy)))
	}

	return nil
}

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

package demo

import (
	"fmt"

	"github.com/hode-port/hode/logger"
	"github.com/hode-port/hode/performance/limiter"
	"github.com/hode-port/hode/screenshot"
	"github.com/hode-port/hode/soundload"
	"github.com/hode-port/hode/surface"
	"github.com/hode-port/hode/system"
	"github.com/hode-port/hode/userinput"
)

// Options for the Run() function.
type Options struct {
	// number of frames to run for. zero means run until the user quits
	Frames int

	Widescreen bool

	// milliseconds per frame. the frame rate is not limited if the value is
	// zero
	FrameDuration int

	// sound clip to loop. can be nil
	Clip *soundload.Clip

	// scale factor for screenshots
	ScreenshotScale int
}

// displayer is implemented by systems that can return the most recently
// presented frame. required for screenshots.
type displayer interface {
	Display() *surface.Surface
}

// Run the demo scene until the user quits or the number of frames in the
// options has been reached. Returns the scene so that the caller can inspect
// the final state.
func Run(sys system.System, opts Options) (*Scene, error) {
	scn := NewScene(sys)
	err := scn.Setup()
	if err != nil {
		return scn, fmt.Errorf("demo: %w", err)
	}

	if opts.Clip != nil {
		err = sys.StartAudio(func(buf []int16) {})
		if err != nil {
			return scn, fmt.Errorf("demo: %w", err)
		}
		defer sys.StopAudio()

		ply := soundload.NewPlayer(opts.Clip.Resample(sys.OutputSampleRate()))
		ply.Loop = true
		sys.SetAudioCallback(ply.Mix)
	}

	var lim *limiter.FpsLimiter
	if opts.FrameDuration > 0 {
		lim, err = limiter.NewFPSLimiter(max(1, 1000/opts.FrameDuration))
		if err != nil {
			return scn, fmt.Errorf("demo: %w", err)
		}
		defer lim.Stop()
	}

	for opts.Frames == 0 || scn.Frames() < opts.Frames {
		sys.ProcessEvents()

		inp := sys.Input()
		if inp.Quit || inp.JustPressed(userinput.Esc) {
			logger.Log(logger.Allow, "demo", "quit requested")
			break
		}

		scn.Update()

		err = scn.Draw(opts.Widescreen)
		if err != nil {
			return scn, fmt.Errorf("demo: %w", err)
		}

		if inp.Screenshot {
			inp.Screenshot = false
			if d, ok := sys.(displayer); ok {
				screenshot.Take(d.Display(), "demo", opts.ScreenshotScale)
			} else {
				logger.Log(logger.Allow, "demo", "screenshots not supported by system")
			}
		}

		if lim != nil {
			lim.Wait()
		}
	}

	logger.Logf(logger.Allow, "demo", "%d frames in %dms", scn.Frames(), sys.GetTimeStamp())

	return scn, nil
}

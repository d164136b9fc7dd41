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

package sysprefs_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hode-port/hode/gui/headless"
	"github.com/hode-port/hode/prefs"
	"github.com/hode-port/hode/sysprefs"
	"github.com/hode-port/hode/test"
)

func TestDefaults(t *testing.T) {
	p, err := sysprefs.NewPrefs(filepath.Join(t.TempDir(), sysprefs.Filename))
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, p.Gamma.Get().(float64), sysprefs.DefaultGamma)
	test.ExpectEquality(t, p.ScaleFactor.Get().(int), sysprefs.DefaultScaleFactor)
	test.ExpectEquality(t, p.ScaleAlgorithm.String(), sysprefs.DefaultScaleAlgorithm)
	test.ExpectEquality(t, p.Fullscreen.Get().(bool), false)
	test.ExpectEquality(t, p.AudioDriver.String(), sysprefs.DefaultAudioDriver)
	test.ExpectEquality(t, p.FrameDuration.Get().(int), sysprefs.DefaultFrameDuration)
}

func TestValidation(t *testing.T) {
	p, err := sysprefs.NewPrefs(filepath.Join(t.TempDir(), sysprefs.Filename))
	test.DemandSuccess(t, err)

	test.ExpectFailure(t, p.Gamma.Set(0.0))
	test.ExpectFailure(t, p.ScaleFactor.Set(0))
	test.ExpectFailure(t, p.AudioDriver.Set("alsa"))
	test.ExpectFailure(t, p.FrameDuration.Set(-1))

	// failed sets leave the value unchanged
	test.ExpectEquality(t, p.Gamma.Get().(float64), sysprefs.DefaultGamma)
	test.ExpectEquality(t, p.AudioDriver.String(), sysprefs.DefaultAudioDriver)

	test.ExpectSuccess(t, p.AudioDriver.Set("SDL"))
}

func TestLoadFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), sysprefs.Filename)
	ini := "[display]\ngamma=1.5\nscale_algorithm=scanlines\nfullscreen=true\n[engine]\nframe_duration=20\n"
	test.DemandSuccess(t, os.WriteFile(fn, []byte(ini), 0644))

	p, err := sysprefs.NewPrefs(fn)
	test.DemandSuccess(t, err)
	p.SetCommandLine(prefs.NewCommandLine("display.scale_factor::4"))
	test.DemandSuccess(t, p.Load())

	test.ExpectEquality(t, p.Gamma.Get().(float64), 1.5)
	test.ExpectEquality(t, p.ScaleAlgorithm.String(), "scanlines")
	test.ExpectEquality(t, p.Fullscreen.Get().(bool), true)
	test.ExpectEquality(t, p.FrameDuration.Get().(int), 20)
	test.ExpectEquality(t, p.ScaleFactor.Get().(int), 4)
}

func TestLoadCreatesFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), sysprefs.Filename)

	p, err := sysprefs.NewPrefs(fn)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, p.Load())

	b, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, strings.Contains(string(b), "[display]"), true)
	test.ExpectEquality(t, strings.Contains(string(b), "scale_algorithm=nearest"), true)
	test.ExpectEquality(t, strings.Contains(string(b), "[engine]"), true)
}

func TestEnvironment(t *testing.T) {
	p, err := sysprefs.NewPrefs(filepath.Join(t.TempDir(), sysprefs.Filename))
	test.DemandSuccess(t, err)

	err = p.LoadEnvironment(map[string]string{
		"HODE_GAMMA":           "2.2",
		"HODE_SCALE_ALGORITHM": "greyscale",
		"HODE_WIDESCREEN":      "true",
		"HODE_AUDIO_DRIVER":    "null",
		"GAMMA":                "9",
	})
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, p.Gamma.Get().(float64), 2.2)
	test.ExpectEquality(t, p.ScaleAlgorithm.String(), "greyscale")
	test.ExpectEquality(t, p.Widescreen.Get().(bool), true)
	test.ExpectEquality(t, p.AudioDriver.String(), "null")

	// unset variables leave values unchanged
	test.ExpectEquality(t, p.ScaleFactor.Get().(int), sysprefs.DefaultScaleFactor)

	test.ExpectFailure(t, p.LoadEnvironment(map[string]string{"HODE_SCALE_FACTOR": "big"}))
	test.ExpectFailure(t, p.LoadEnvironment(map[string]string{"HODE_AUDIO_DRIVER": "alsa"}))
}

func TestAttach(t *testing.T) {
	p, err := sysprefs.NewPrefs(filepath.Join(t.TempDir(), sysprefs.Filename))
	test.DemandSuccess(t, err)

	sys := headless.NewHeadless(false)
	test.DemandSuccess(t, sys.Init("sysprefs", 16, 8, false, false, false))
	defer sys.Destroy()

	p.Attach(sys)
	test.ExpectEquality(t, sys.Compositor().Scaler().Name, "nearest")
	w, h := sys.Compositor().DisplaySize()
	test.ExpectEquality(t, w, 16*sysprefs.DefaultScaleFactor)
	test.ExpectEquality(t, h, 8*sysprefs.DefaultScaleFactor)

	test.DemandSuccess(t, p.ScaleAlgorithm.Set("scanlines"))
	test.ExpectEquality(t, sys.Compositor().Scaler().Name, "scanlines")

	test.DemandSuccess(t, p.ScaleFactor.Set(2))
	w, _ = sys.Compositor().DisplaySize()
	test.ExpectEquality(t, w, 32)

	test.DemandSuccess(t, p.Gamma.Set(2.0))
}

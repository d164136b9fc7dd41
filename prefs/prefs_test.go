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

package prefs_test

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/hode-port/hode/prefs"
	"github.com/hode-port/hode/test"
)

func cmpFile(t *testing.T, fn string, expected string) {
	t.Helper()

	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)

	expected = fmt.Sprintf("%s\n%s", prefs.WarningBoilerPlate, expected)
	test.ExpectEquality(t, string(data), expected)
}

func TestBool(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "hode.ini")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	var w prefs.Bool
	var x prefs.Bool
	test.ExpectSuccess(t, dsk.Add("display.fullscreen", &v))
	test.ExpectSuccess(t, dsk.Add("display.widescreen", &w))
	test.ExpectSuccess(t, dsk.Add("engine.checkpoint", &x))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, w.Set("foo"))
	test.ExpectSuccess(t, x.Set("TRUE"))

	test.DemandSuccess(t, dsk.Save())
	cmpFile(t, fn, "[display]\nfullscreen=true\nwidescreen=false\n[engine]\ncheckpoint=true\n")
}

func TestInt(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "hode.ini")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Int
	var w prefs.Int
	test.ExpectSuccess(t, dsk.Add("display.scale_factor", &v))
	test.ExpectSuccess(t, dsk.Add("engine.frame_duration", &w))

	test.ExpectSuccess(t, v.Set(3))
	test.ExpectSuccess(t, w.Set("40"))

	test.DemandSuccess(t, dsk.Save())
	cmpFile(t, fn, "[display]\nscale_factor=3\n[engine]\nframe_duration=40\n")

	test.ExpectFailure(t, v.Set("---"))
	test.ExpectFailure(t, v.Set(1.0))
}

func TestFloat(t *testing.T) {
	var v prefs.Float
	test.ExpectEquality(t, v.String(), "0")
	test.ExpectSuccess(t, v.Set("1.5"))
	test.ExpectEquality(t, v.Get().(float64), 1.5)
	test.ExpectSuccess(t, v.Set(2))
	test.ExpectEquality(t, v.String(), "2")
	test.ExpectFailure(t, v.Set(true))
}

func TestInvalidKey(t *testing.T) {
	dsk, err := prefs.NewDisk(filepath.Join(t.TempDir(), "hode.ini"))
	test.DemandSuccess(t, err)

	var v prefs.Int
	test.ExpectFailure(t, dsk.Add("gamma", &v))
	test.ExpectFailure(t, dsk.Add("display.gamma.red", &v))
	test.ExpectFailure(t, dsk.Add(".gamma", &v))
}

func TestLoad(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "hode.ini")

	err := os.WriteFile(fn, []byte("[display]\n; comment\ngamma = 1.5\nscale_algorithm=scanlines\n[audio]\nvolume=100\n"), 0o600)
	test.DemandSuccess(t, err)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var gamma prefs.Float
	var scaler prefs.String
	test.ExpectSuccess(t, dsk.Add("display.gamma", &gamma))
	test.ExpectSuccess(t, dsk.Add("display.scale_algorithm", &scaler))

	test.DemandSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, gamma.Get().(float64), 1.5)
	test.ExpectEquality(t, scaler.String(), "scanlines")

	// unknown keys survive a save
	test.DemandSuccess(t, dsk.Save())
	cmpFile(t, fn, "[audio]\nvolume=100\n[display]\ngamma=1.5\nscale_algorithm=scanlines\n")
}

func TestLoadMissing(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "hode.ini")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Int
	test.ExpectSuccess(t, dsk.Add("display.scale_factor", &v))
	test.ExpectSuccess(t, v.Set(2))

	err = dsk.Load(false)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, errors.Is(err, os.ErrNotExist))

	// file is created when saveOnFail is true
	test.ExpectSuccess(t, dsk.Load(true))
	cmpFile(t, fn, "[display]\nscale_factor=2\n")
}

func TestHooks(t *testing.T) {
	var v prefs.Int
	var post int

	v.SetHookPre(func(value prefs.Value) error {
		if value.(int) < 1 {
			return errors.New("too small")
		}
		return nil
	})
	v.SetHookPost(func(value prefs.Value) error {
		post = value.(int)
		return nil
	})

	test.ExpectSuccess(t, v.Set(4))
	test.ExpectEquality(t, post, 4)

	// pre hook prevents the update
	test.ExpectFailure(t, v.Set(0))
	test.ExpectEquality(t, v.Get().(int), 4)
	test.ExpectEquality(t, post, 4)
}

func TestCommandLineOverride(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "hode.ini")

	err := os.WriteFile(fn, []byte("[display]\nwidescreen=false\n"), 0o600)
	test.DemandSuccess(t, err)

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	test.ExpectSuccess(t, dsk.Add("display.widescreen", &v))

	cl := prefs.NewCommandLine("display.widescreen::true; display.bogus::1")
	dsk.SetCommandLine(cl)

	test.DemandSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, v.Get().(bool), true)
	test.ExpectEquality(t, cl.Unused(), "display.bogus::1")
}

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

package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hode-port/hode/test"
)

func TestVersionMode(t *testing.T) {
	var out strings.Builder
	test.ExpectEquality(t, launch([]string{"version"}, &out), 0)
	test.ExpectEquality(t, strings.HasPrefix(out.String(), "Hode "), true)
}

func TestMissingClip(t *testing.T) {
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	t.Cleanup(func() { os.Chdir(wd) })
	test.DemandSuccess(t, os.Chdir(t.TempDir()))

	var out strings.Builder
	test.ExpectEquality(t, launch([]string{"run", "-headless", "missing.wav"}, &out), 20)
	test.ExpectEquality(t, launch([]string{"run", "-headless", "a.wav", "b.wav"}, &out), 10)
}

func TestHelp(t *testing.T) {
	var out strings.Builder
	test.ExpectEquality(t, launch([]string{"-help"}, &out), 0)
	test.ExpectEquality(t, strings.Contains(out.String(), "available modes: RUN, PERFORMANCE, VERSION"), true)

	out.Reset()
	test.ExpectEquality(t, launch([]string{"run", "-help"}, &out), 0)
	test.ExpectEquality(t, strings.Contains(out.String(), "-headless"), true)
}

func TestPerformanceMode(t *testing.T) {
	var out strings.Builder
	test.ExpectEquality(t, launch([]string{"performance", "-duration", "20ms", "-multiplier", "1"}, &out), 0)
	test.ExpectEquality(t, strings.Contains(out.String(), "fps"), true)

	test.ExpectEquality(t, launch([]string{"performance", "-profile", "trace"}, &out), 10)
}

func TestBadFlag(t *testing.T) {
	var out strings.Builder
	test.ExpectEquality(t, launch([]string{"-nosuchflag"}, &out), 10)
}

func TestHeadlessRun(t *testing.T) {
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	t.Cleanup(func() { os.Chdir(wd) })
	dir := t.TempDir()
	test.DemandSuccess(t, os.Chdir(dir))

	var out strings.Builder
	code := launch([]string{
		"-headless",
		"-frames", "3",
		"-memviz", "input.dot",
		"-prefs", "engine.frame_duration::1; display.scale_algorithm::greyscale",
	}, &out)
	test.ExpectEquality(t, code, 0)

	// preferences file has been created
	b, err := os.ReadFile(filepath.Join(".hode", "hode.ini"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, strings.Contains(string(b), "[display]"), true)

	_, err = os.Stat("input.dot")
	test.ExpectSuccess(t, err)
}

func TestDigest(t *testing.T) {
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	t.Cleanup(func() { os.Chdir(wd) })
	test.DemandSuccess(t, os.Chdir(t.TempDir()))

	args := []string{"-headless", "-frames", "4", "-digest", "-prefs", "engine.frame_duration::1"}

	var a, b strings.Builder
	test.ExpectEquality(t, launch(args, &a), 0)
	test.ExpectEquality(t, launch(args, &b), 0)

	test.ExpectEquality(t, strings.Contains(a.String(), "video digest:"), true)
	test.ExpectEquality(t, strings.Contains(a.String(), "(4 frames)"), true)

	// video output is deterministic
	video := func(s string) string {
		for _, l := range strings.Split(s, "\n") {
			if strings.HasPrefix(l, "video digest:") {
				return l
			}
		}
		return ""
	}
	test.ExpectEquality(t, video(a.String()), video(b.String()))
}

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

package performance_test

import (
	"strings"
	"testing"
	"time"

	"github.com/hode-port/hode/performance"
	"github.com/hode-port/hode/test"
)

func TestCalcFPS(t *testing.T) {
	fps, acc := performance.CalcFPS(100, 2.0, 50)
	test.ExpectApproximate(t, fps, 50.0, 0.001)
	test.ExpectApproximate(t, acc, 100.0, 0.001)

	fps, acc = performance.CalcFPS(100, 0, 50)
	test.ExpectEquality(t, fps, 0.0)
	test.ExpectEquality(t, acc, 0.0)
}

func TestParseProfileString(t *testing.T) {
	p, err := performance.ParseProfileString("cpu")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU)

	p, err = performance.ParseProfileString("cpu, MEM")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileCPU|performance.ProfileMem)

	p, err = performance.ParseProfileString("none")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, performance.ProfileNone)

	_, err = performance.ParseProfileString("trace")
	test.ExpectFailure(t, err)
}

func TestCheck(t *testing.T) {
	var out strings.Builder
	err := performance.Check(&out, performance.ProfileNone, performance.CheckSettings{
		Width:      32,
		Height:     24,
		Scaler:     "scanlines",
		Multiplier: 2,
		Widescreen: true,
		Uncapped:   true,
		FPS:        50,
		Duration:   50 * time.Millisecond,
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, strings.Contains(out.String(), "fps"), true)
}

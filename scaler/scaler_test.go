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

package scaler_test

import (
	"strings"
	"testing"

	"github.com/hode-port/hode/logger"
	"github.com/hode-port/hode/scaler"
	"github.com/hode-port/hode/surface"
	"github.com/hode-port/hode/test"
)

func TestRegistry(t *testing.T) {
	test.ExpectSlice(t, scaler.Default.Names(), []string{"greyscale", "nearest", "scanlines"})
	test.ExpectEquality(t, scaler.Default.Default(), scaler.Nearest)

	s, ok := scaler.Default.Lookup("scanlines")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, s, scaler.Scanlines)

	// lookup is case sensitive
	_, ok = scaler.Default.Lookup("Nearest")
	test.ExpectFailure(t, ok)

	// duplicate names are ignored
	a := &scaler.Scaler{Name: "a"}
	b := &scaler.Scaler{Name: "a"}
	reg := scaler.NewRegistry(a, b)
	s, _ = reg.Lookup("a")
	test.ExpectEquality(t, s, a)

	test.ExpectEquality(t, scaler.NewRegistry().Default(), nil)
}

func TestSelection(t *testing.T) {
	sel := scaler.NewSelection(scaler.Default)
	test.ExpectEquality(t, sel.Active(), scaler.Nearest)
	test.ExpectEquality(t, sel.Multiplier(), 1)

	sel.Set("", 3)
	test.ExpectEquality(t, sel.Active(), scaler.Nearest)
	test.ExpectEquality(t, sel.Multiplier(), 3)

	sel.Set("scanlines", 0)
	test.ExpectEquality(t, sel.Active(), scaler.Scanlines)
	test.ExpectEquality(t, sel.Multiplier(), 3)

	sel.Set("", 100)
	test.ExpectEquality(t, sel.Multiplier(), 8)
}

func TestUnknownScaler(t *testing.T) {
	w := &strings.Builder{}
	logger.Clear()

	sel := scaler.NewSelection(scaler.Default)
	sel.Set("bogus", 0)
	test.ExpectEquality(t, sel.Active(), scaler.Nearest)

	logger.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "scaler: Unknown scaler 'bogus', using default 'nearest'\n")

	// previous scaler remains selected, not the registry default
	sel.Set("greyscale", 0)
	sel.Set("bogus", 0)
	test.ExpectEquality(t, sel.Active(), scaler.Greyscale)
}

func TestMultiplierClamped(t *testing.T) {
	w := &strings.Builder{}
	logger.Clear()

	sel := scaler.NewSelection(scaler.Default)
	sel.Set("nearest", 12)
	test.ExpectEquality(t, sel.Multiplier(), 8)

	logger.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "scaler: Multiplier 12 not supported by 'nearest', using 8\n")

	// a supported multiplier adds nothing to the log
	logger.Clear()
	sel.Set("", 4)
	test.ExpectEquality(t, sel.Multiplier(), 4)

	w.Reset()
	logger.Write(w)
	test.ExpectEquality(t, w.String(), "")
}

func TestScanlines(t *testing.T) {
	var pal [256]uint32
	pal[1] = surface.RGB888.MapRGB(200, 100, 50)

	src := []uint8{1, 1, 1, 1}
	dst := make([]uint32, 4)
	scaler.Scanlines.Scale(dst, 2, src, 2, 2, 2, &pal, surface.RGB888)

	test.ExpectEquality(t, dst[0], pal[1])
	test.ExpectEquality(t, dst[1], pal[1])
	test.ExpectEquality(t, dst[2], surface.RGB888.MapRGB(100, 50, 25))
	test.ExpectEquality(t, dst[3], surface.RGB888.MapRGB(100, 50, 25))
}

func TestGreyscale(t *testing.T) {
	var pal [256]uint32
	pal[1] = surface.RGB888.MapRGB(255, 255, 255)
	pal[2] = surface.RGB888.MapRGB(255, 0, 0)

	scaler.Greyscale.Palette(&pal, surface.RGB888)
	test.ExpectEquality(t, pal[0], 0)
	test.ExpectEquality(t, pal[1], surface.RGB888.MapRGB(255, 255, 255))
	test.ExpectEquality(t, pal[2], surface.RGB888.MapRGB(76, 76, 76))
}

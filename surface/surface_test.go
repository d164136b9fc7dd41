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

package surface_test

import (
	"testing"

	"github.com/hode-port/hode/surface"
	"github.com/hode-port/hode/test"
)

func TestMapRGB(t *testing.T) {
	test.ExpectEquality(t, surface.RGB888.MapRGB(0x12, 0x34, 0x56), 0x123456)
	test.ExpectEquality(t, surface.ABGR8888.MapRGB(0x12, 0x34, 0x56), 0xff563412)

	for _, f := range []surface.PixelFormat{surface.RGB888, surface.ABGR8888} {
		r, g, b := f.RGB(f.MapRGB(1, 128, 255))
		test.ExpectEquality(t, r, 1)
		test.ExpectEquality(t, g, 128)
		test.ExpectEquality(t, b, 255)
	}
}

func TestSurface(t *testing.T) {
	s := surface.NewSurface(4, 3, surface.RGB888)
	test.ExpectEquality(t, len(s.Pix), 12)

	s.Fill(0xff0000)
	test.ExpectEquality(t, s.At(3, 2), 0xff0000)

	d := &surface.Surface{W: 4, H: 3, Pitch: 6, Pix: make([]uint32, 18), Format: surface.RGB888}
	d.CopyFrom(s)
	test.ExpectEquality(t, d.At(3, 2), 0xff0000)

	// padding is untouched
	test.ExpectEquality(t, d.Pix[4], 0)

	img := s.Image()
	c := img.RGBAAt(1, 1)
	test.ExpectEquality(t, c.R, 255)
	test.ExpectEquality(t, c.G, 0)
	test.ExpectEquality(t, c.A, 255)
}

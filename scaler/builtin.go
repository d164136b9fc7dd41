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

package scaler

import (
	"github.com/hode-port/hode/surface"
)

// maximum display multiplier for the built in scalers
const maxFactor = 8

// Nearest performs a straight palette lookup. Magnification to the display
// is done by the compositor.
var Nearest = &Scaler{
	Name:        "nearest",
	Description: "palette lookup with nearest neighbour magnification",
	Factor:      Factor{Min: 1, Max: maxFactor},
}

// Scanlines dims every odd row to half brightness.
var Scanlines = &Scaler{
	Name:        "scanlines",
	Description: "darkened odd rows",
	Factor:      Factor{Min: 1, Max: maxFactor},
	Scale:       scanlines,
}

// Greyscale converts the palette to luminance.
var Greyscale = &Scaler{
	Name:        "greyscale",
	Description: "luminance only palette",
	Factor:      Factor{Min: 1, Max: maxFactor},
	Palette:     greyscale,
}

// Default is the registry used by the backends.
var Default = NewRegistry(Nearest, Scanlines, Greyscale)

func scanlines(dst []uint32, dstPitch int, src []uint8, srcPitch int, w, h int, pal *[256]uint32, format surface.PixelFormat) {
	for y := range h {
		d := dst[y*dstPitch : y*dstPitch+w]
		s := src[y*srcPitch : y*srcPitch+w]
		if y&1 == 0 {
			for x, c := range s {
				d[x] = pal[c]
			}
			continue
		}
		for x, c := range s {
			r, g, b := format.RGB(pal[c])
			d[x] = format.MapRGB(r>>1, g>>1, b>>1)
		}
	}
}

func greyscale(pal *[256]uint32, format surface.PixelFormat) {
	for i, p := range pal {
		// palette entries of zero have a special meaning when there is a
		// backdrop and must stay zero
		if p == 0 {
			continue
		}
		r, g, b := format.RGB(p)
		l := uint8((299*uint32(r) + 587*uint32(g) + 114*uint32(b)) / 1000)
		pal[i] = format.MapRGB(l, l, l)
	}
}

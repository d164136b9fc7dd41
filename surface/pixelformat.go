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

package surface

// PixelFormat describes how the red, green and blue components of a colour
// are packed into a 32bit display pixel. The mask and shift fields have the
// same meaning as the fields of the same name in SDL_PixelFormat.
//
// Only formats with eight bits per channel are supported.
type PixelFormat struct {
	Rmask, Gmask, Bmask, Amask     uint32
	Rshift, Gshift, Bshift, Ashift uint8
}

// RGB888 is the format of the display surfaces created by the SDL backend
// (SDL_PIXELFORMAT_RGB888). It is also used by the headless backend.
var RGB888 = PixelFormat{
	Rmask: 0x00ff0000, Rshift: 16,
	Gmask: 0x0000ff00, Gshift: 8,
	Bmask: 0x000000ff, Bshift: 0,
}

// ABGR8888 is a format with an alpha channel and reversed component order.
// Useful for testing that code does not assume RGB888.
var ABGR8888 = PixelFormat{
	Amask: 0xff000000, Ashift: 24,
	Bmask: 0x00ff0000, Bshift: 16,
	Gmask: 0x0000ff00, Gshift: 8,
	Rmask: 0x000000ff, Rshift: 0,
}

// MapRGB returns the pixel value for the colour. Alpha, if the format has an
// alpha channel, is fully opaque.
func (f PixelFormat) MapRGB(r, g, b uint8) uint32 {
	return uint32(r)<<f.Rshift | uint32(g)<<f.Gshift | uint32(b)<<f.Bshift | f.Amask
}

// RGB returns the colour components of pixel value.
func (f PixelFormat) RGB(p uint32) (r, g, b uint8) {
	r = uint8((p & f.Rmask) >> f.Rshift)
	g = uint8((p & f.Gmask) >> f.Gshift)
	b = uint8((p & f.Bmask) >> f.Bshift)
	return r, g, b
}

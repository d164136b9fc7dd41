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

import (
	"image"
	"image/color"
)

// Surface is a true-colour pixel buffer. Pitch is measured in pixels, not
// bytes, and may be larger than the width.
type Surface struct {
	W, H   int
	Pitch  int
	Pix    []uint32
	Format PixelFormat
}

// NewSurface is the preferred method of initialisation for the Surface type.
func NewSurface(w, h int, format PixelFormat) *Surface {
	return &Surface{
		W:      w,
		H:      h,
		Pitch:  w,
		Pix:    make([]uint32, w*h),
		Format: format,
	}
}

// Row returns the pixels of row y, without any pitch padding.
func (s *Surface) Row(y int) []uint32 {
	return s.Pix[y*s.Pitch : y*s.Pitch+s.W]
}

// Fill every pixel with value.
func (s *Surface) Fill(value uint32) {
	for y := range s.H {
		r := s.Row(y)
		for x := range r {
			r[x] = value
		}
	}
}

// CopyFrom copies the pixels of src into the surface. Surfaces must be the
// same size, pitch may differ.
func (s *Surface) CopyFrom(src *Surface) {
	if s.Pitch == src.Pitch && s.W == s.Pitch {
		copy(s.Pix, src.Pix[:len(s.Pix)])
		return
	}
	for y := range s.H {
		copy(s.Row(y), src.Row(y))
	}
}

// At returns the pixel value at x, y.
func (s *Surface) At(x, y int) uint32 {
	return s.Pix[y*s.Pitch+x]
}

// Image converts the surface to an image.RGBA.
func (s *Surface) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, s.W, s.H))
	for y := range s.H {
		for x, p := range s.Row(y) {
			r, g, b := s.Format.RGB(p)
			img.SetRGBA(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return img
}

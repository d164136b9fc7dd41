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

// Package blur implements a separable box blur over true-colour pixels.
//
// The blur is applied one direction at a time. Each pass slides a window of
// 2*radius+1 pixels along a line, adding the pixel entering the window and
// subtracting the pixel leaving it. Pixels beyond the edges of the image are
// taken to be copies of the edge pixel.
package blur

import (
	"fmt"

	"github.com/hode-port/hode/curated"
	"github.com/hode-port/hode/surface"
)

// Sentinal errors.
const (
	ScratchAllocFailed = "blur: cannot allocate scratch buffer: %v"
)

// Radius of the widescreen backdrop blur.
const Radius = 8

// direction of a pass. the values of the direction fields are the strides
// through the source and destination buffers.
type direction struct {
	// number of lines and the length of each line
	lines, length int

	// distance between neighbouring pixels in a line and between the first
	// pixels of neighbouring lines
	srcStep, srcLine int
	dstStep, dstLine int
}

func horizontal(w, h, srcPitch, dstPitch int) direction {
	return direction{
		lines: h, length: w,
		srcStep: 1, srcLine: srcPitch,
		dstStep: 1, dstLine: dstPitch,
	}
}

func vertical(w, h, srcPitch, dstPitch int) direction {
	return direction{
		lines: w, length: h,
		srcStep: srcPitch, srcLine: 1,
		dstStep: dstPitch, dstLine: 1,
	}
}

// Horizontal blurs each row of the w×h image in src and writes the result to
// dst. The src and dst buffers must not overlap.
func Horizontal(radius int, src []uint32, srcPitch int, w, h int, format surface.PixelFormat, dst []uint32, dstPitch int) {
	pass(radius, src, dst, format, horizontal(w, h, srcPitch, dstPitch))
}

// Vertical blurs each column of the w×h image in src and writes the result to
// dst. The src and dst buffers must not overlap.
func Vertical(radius int, src []uint32, srcPitch int, w, h int, format surface.PixelFormat, dst []uint32, dstPitch int) {
	pass(radius, src, dst, format, vertical(w, h, srcPitch, dstPitch))
}

// Box performs a horizontal pass followed by a vertical pass. The source
// buffer is tightly packed (pitch equal to w). An error is returned only if
// the scratch buffer between the two passes cannot be allocated, in which
// case dst is unchanged.
func Box(radius int, src []uint32, w, h int, format surface.PixelFormat, dst []uint32, dstPitch int) error {
	tmp, err := scratch(w * h)
	if err != nil {
		return err
	}
	Horizontal(radius, src, w, w, h, format, tmp, w)
	Vertical(radius, tmp, w, w, h, format, dst, dstPitch)
	return nil
}

// scratch allocates a buffer of n pixels. the runtime panics if the size is
// too large, which is converted to an error.
func scratch(n int) (buf []uint32, err error) {
	defer func() {
		if r := recover(); r != nil {
			buf = nil
			err = curated.Errorf(ScratchAllocFailed, r)
		}
	}()
	if n < 0 {
		panic(fmt.Sprintf("negative size (%d)", n))
	}
	return make([]uint32, n), nil
}

func pass(radius int, src []uint32, dst []uint32, f surface.PixelFormat, d direction) {
	if d.length <= 0 || d.lines <= 0 {
		return
	}

	count := uint32(2*radius + 1)
	last := d.length - 1

	// position in line clamped to the edges
	clamp := func(i int) int {
		return min(max(i, 0), last)
	}

	for j := range d.lines {
		s := src[j*d.srcLine:]
		o := dst[j*d.dstLine:]

		var r, g, b uint32

		for i := -radius; i <= radius; i++ {
			c := s[clamp(i)*d.srcStep]
			r += (c & f.Rmask) >> f.Rshift
			g += (c & f.Gmask) >> f.Gshift
			b += (c & f.Bmask) >> f.Bshift
		}
		o[0] = (r/count)<<f.Rshift | (g/count)<<f.Gshift | (b/count)<<f.Bshift | f.Amask

		for i := 1; i <= last; i++ {
			c := s[clamp(i+radius)*d.srcStep]
			r += (c & f.Rmask) >> f.Rshift
			g += (c & f.Gmask) >> f.Gshift
			b += (c & f.Bmask) >> f.Bshift

			c = s[clamp(i-radius-1)*d.srcStep]
			r -= (c & f.Rmask) >> f.Rshift
			g -= (c & f.Gmask) >> f.Gshift
			b -= (c & f.Bmask) >> f.Bshift

			o[i*d.dstStep] = (r/count)<<f.Rshift | (g/count)<<f.Gshift | (b/count)<<f.Bshift | f.Amask
		}
	}
}

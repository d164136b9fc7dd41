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

package compositor

import (
	"github.com/hode-port/hode/surface"
)

// Resolve converts the offscreen buffer to the texture, either by direct
// palette lookup or with the active scaler.
func (cmp *Compositor) Resolve() {
	src := cmp.offscreen.Pixels()
	tbl := cmp.palette.Table()
	tex := cmp.texture

	if s := cmp.scaler.Active(); s != nil && s.Scale != nil {
		s.Scale(tex.Pix, tex.Pitch, src, cmp.w, cmp.w, cmp.h, (*[256]uint32)(tbl), cmp.format)
		return
	}

	for y := range cmp.h {
		row := tex.Row(y)
		for x, c := range src[y*cmp.w : (y+1)*cmp.w] {
			row[x] = tbl[c]
		}
	}
}

// Compose draws the texture to dst, magnified by the largest integer factor
// that fits. If drawWidescreen is true and there is a backdrop, the backdrop
// is drawn first and pixels with palette index zero in the offscreen buffer
// are transparent.
func (cmp *Compositor) Compose(dst *surface.Surface, drawWidescreen bool) {
	m := min(dst.W/cmp.w, dst.H/cmp.h)
	if m < 1 {
		return
	}

	var bd *surface.Surface
	if drawWidescreen {
		bd = cmp.backdrop()
	}

	idx := cmp.offscreen.Pixels()

	for y := range cmp.h {
		line := cmp.texture.Row(y)

		if bd != nil {
			copy(cmp.line, bd.Row(y))
			for x, c := range idx[y*cmp.w : (y+1)*cmp.w] {
				if c != 0 {
					cmp.line[x] = line[x]
				}
			}
			line = cmp.line
		}

		magnify(dst, line, y, m)
	}
}

// magnify draws one line of pixels to dst at row y, m times wider and m
// times taller.
func magnify(dst *surface.Surface, line []uint32, y int, m int) {
	first := dst.Row(y * m)
	if m == 1 {
		copy(first, line)
		return
	}

	for x, p := range line {
		o := first[x*m : x*m+m]
		for i := range o {
			o[i] = p
		}
	}

	for i := 1; i < m; i++ {
		copy(dst.Row(y*m+i), first[:len(line)*m])
	}
}

// Present resolves the offscreen buffer and composes the result to dst.
func (cmp *Compositor) Present(dst *surface.Surface, drawWidescreen bool) {
	cmp.Resolve()
	cmp.Compose(dst, drawWidescreen)
}

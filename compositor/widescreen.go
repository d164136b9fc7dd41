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
	"github.com/hode-port/hode/blur"
	"github.com/hode-port/hode/curated"
	"github.com/hode-port/hode/logger"
	"github.com/hode-port/hode/offscreen"
)

// CopyRectWidescreen creates the widescreen backdrop from a frame of palette
// indices. The palette is a table of 256 8bit RGB triplets and is gamma
// corrected but is otherwise used as is. The frame must be the same size as
// the screen.
//
// Does nothing if there is no widescreen surface or if there is a YUV
// background. If memory for the blur cannot be allocated then the backdrop is
// left unchanged and no error is returned.
func (cmp *Compositor) CopyRectWidescreen(w, h int, buf []uint8, pal []uint8) error {
	if cmp.widescreen == nil || cmp.background != nil {
		return nil
	}

	if w != cmp.w || h != cmp.h {
		return curated.Errorf(WidescreenMismatch, w, h, cmp.w, cmp.h)
	}
	if len(buf) < w*h {
		return curated.Errorf(offscreen.ShortSource, len(buf), h, w)
	}

	src := cmp.backdropSrc
	for i, c := range buf[:w*h] {
		o := int(c) * 3
		if o+2 >= len(pal) {
			src[i] = cmp.format.MapRGB(0, 0, 0)
			continue
		}
		r, g, b := cmp.palette.Correct(pal[o], pal[o+1], pal[o+2])
		src[i] = cmp.format.MapRGB(r, g, b)
	}

	ws := cmp.widescreen
	if err := blur.Box(blur.Radius, src, w, h, cmp.format, ws.Pix, ws.Pitch); err != nil {
		logger.Log(logger.Allow, "compositor", err)
	}

	return nil
}

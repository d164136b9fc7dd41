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
	"image/color"

	"github.com/hode-port/hode/curated"
)

// CopyYuv converts a planar YUV 4:2:0 frame to the background surface. The
// U and V planes are half the width and height of the Y plane. Conversion
// uses the BT.601 coefficients.
//
// Does nothing if the compositor was created without the Yuv option.
func (cmp *Compositor) CopyYuv(w, h int, y []uint8, ypitch int, u []uint8, upitch int, v []uint8, vpitch int) error {
	if cmp.background == nil {
		return nil
	}

	if w > cmp.w || h > cmp.h || w < 0 || h < 0 {
		return curated.Errorf(YuvTooLarge, w, h, cmp.w, cmp.h)
	}
	if w == 0 || h == 0 {
		return nil
	}

	cw := (w + 1) / 2
	ch := (h + 1) / 2

	if n := (h-1)*ypitch + w; len(y) < n || ypitch < w {
		return curated.Errorf(YuvPlaneTooShort, "Y", len(y), n)
	}
	if n := (ch-1)*upitch + cw; len(u) < n || upitch < cw {
		return curated.Errorf(YuvPlaneTooShort, "U", len(u), n)
	}
	if n := (ch-1)*vpitch + cw; len(v) < n || vpitch < cw {
		return curated.Errorf(YuvPlaneTooShort, "V", len(v), n)
	}

	bg := cmp.background
	for j := range h {
		row := bg.Row(j)
		yr := y[j*ypitch:]
		ur := u[(j/2)*upitch:]
		vr := v[(j/2)*vpitch:]
		for i := range w {
			r, g, b := color.YCbCrToRGB(yr[i], ur[i/2], vr[i/2])
			row[i] = cmp.format.MapRGB(r, g, b)
		}
	}

	return nil
}

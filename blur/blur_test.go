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

package blur_test

import (
	"testing"

	"github.com/hode-port/hode/blur"
	"github.com/hode-port/hode/surface"
	"github.com/hode-port/hode/test"
)

func sum(pix []uint32, f surface.PixelFormat) (int, int, int) {
	var rs, gs, bs int
	for _, p := range pix {
		r, g, b := f.RGB(p)
		rs += int(r)
		gs += int(g)
		bs += int(b)
	}
	return rs, gs, bs
}

func TestUniform(t *testing.T) {
	const w, h = 32, 24

	for _, f := range []surface.PixelFormat{surface.RGB888, surface.ABGR8888} {
		src := make([]uint32, w*h)
		for i := range src {
			src[i] = f.MapRGB(10, 200, 77)
		}
		dst := make([]uint32, w*h)

		test.DemandSuccess(t, blur.Box(blur.Radius, src, w, h, f, dst, w))
		test.ExpectSlice(t, dst, src)
	}
}

func TestEnergy(t *testing.T) {
	const w, h = 64, 64
	f := surface.RGB888

	// a block of bright pixels far from the edges
	src := make([]uint32, w*h)
	for y := 24; y < 40; y++ {
		for x := 24; x < 40; x++ {
			src[y*w+x] = f.MapRGB(255, 255, 255)
		}
	}
	dst := make([]uint32, w*h)
	test.DemandSuccess(t, blur.Box(4, src, w, h, f, dst, w))

	rs, gs, bs := sum(src, f)
	rd, gd, bd := sum(dst, f)

	// the only loss is from integer division, which never adds energy
	test.ExpectApproximate(t, rd, rs, 0.05)
	test.ExpectApproximate(t, gd, gs, 0.05)
	test.ExpectApproximate(t, bd, bs, 0.05)
	if rd > rs || gd > gs || bd > bs {
		t.Errorf("blur has added energy to image")
	}

	// the block has spread out
	test.ExpectInequality(t, dst[20*w+32], 0)
	test.ExpectEquality(t, dst[0], 0)
}

func TestHorizontalEdge(t *testing.T) {
	f := surface.RGB888

	// single row with a bright pixel on the left edge
	src := []uint32{f.MapRGB(90, 0, 0), 0, 0, 0, 0, 0, 0, 0}
	dst := make([]uint32, len(src))
	blur.Horizontal(1, src, len(src), len(src), 1, f, dst, len(dst))

	// edge replication means the first window contains the edge pixel twice
	test.ExpectEquality(t, dst[0], f.MapRGB(60, 0, 0))
	test.ExpectEquality(t, dst[1], f.MapRGB(30, 0, 0))
	test.ExpectEquality(t, dst[2], 0)
}

func TestVerticalPitch(t *testing.T) {
	f := surface.RGB888

	// 1×3 column with a source pitch of 2 and a destination pitch of 3
	src := []uint32{f.MapRGB(0, 0, 90), 0xdead, 0, 0xdead, 0, 0xdead}
	dst := make([]uint32, 9)
	blur.Vertical(1, src, 2, 1, 3, f, dst, 3)

	test.ExpectEquality(t, dst[0], f.MapRGB(0, 0, 60))
	test.ExpectEquality(t, dst[3], f.MapRGB(0, 0, 30))
	test.ExpectEquality(t, dst[6], 0)

	// padding untouched
	test.ExpectEquality(t, dst[1], 0)
}

func TestLargeRadius(t *testing.T) {
	f := surface.RGB888

	// radius larger than the image must not read outside the line
	src := []uint32{f.MapRGB(30, 30, 30), f.MapRGB(60, 60, 60)}
	dst := make([]uint32, 2)
	blur.Horizontal(8, src, 2, 2, 1, f, dst, 2)
	test.ExpectInequality(t, dst[0], 0)
}

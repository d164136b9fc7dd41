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

package digest_test

import (
	"bytes"
	"testing"

	"github.com/hode-port/hode/digest"
	"github.com/hode-port/hode/surface"
	"github.com/hode-port/hode/test"
)

func TestVideo(t *testing.T) {
	a := surface.NewSurface(4, 4, surface.RGB888)
	a.Fill(surface.RGB888.MapRGB(1, 2, 3))

	// the same image in a different pixel format
	b := surface.NewSurface(4, 4, surface.ABGR8888)
	b.Fill(surface.ABGR8888.MapRGB(1, 2, 3))

	da := digest.NewVideo()
	db := digest.NewVideo()
	var _ digest.Digest = da

	zero := da.Hash()
	test.ExpectSuccess(t, da.Frame(a))
	test.ExpectSuccess(t, db.Frame(b))
	test.ExpectInequality(t, da.Hash(), zero)
	test.ExpectEquality(t, da.Hash(), db.Hash())

	// digests are chained. the same frame twice is not the same digest as
	// the frame once
	first := da.Hash()
	test.ExpectSuccess(t, da.Frame(a))
	test.ExpectInequality(t, da.Hash(), first)
	test.ExpectEquality(t, da.Frames(), 2)

	da.ResetDigest()
	test.ExpectEquality(t, da.Hash(), zero)
	test.ExpectSuccess(t, da.Frame(a))
	test.ExpectEquality(t, da.Hash(), first)

	// a change of a single pixel changes the digest
	dc := digest.NewVideo()
	a.Pix[5] = surface.RGB888.MapRGB(1, 2, 4)
	test.ExpectSuccess(t, dc.Frame(a))
	test.ExpectInequality(t, dc.Hash(), first)
}

func TestAudio(t *testing.T) {
	data := bytes.Repeat([]byte{1, 2, 3, 4, 5}, 10000)

	// the way the data is split between writes does not matter
	a := digest.NewAudio()
	n, err := a.Write(data)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, len(data))
	a.Flush()

	b := digest.NewAudio()
	for i := 0; i < len(data); i += 7 {
		_, _ = b.Write(data[i:min(i+7, len(data))])
	}
	b.Flush()

	test.ExpectEquality(t, a.Hash(), b.Hash())

	c := digest.NewAudio()
	_, _ = c.Write(data[1:])
	c.Flush()
	test.ExpectInequality(t, c.Hash(), a.Hash())

	zero := digest.NewAudio().Hash()
	c.ResetDigest()
	test.ExpectEquality(t, c.Hash(), zero)
}

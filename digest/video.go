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

package digest

import (
	"crypto/sha1"
	"encoding/binary"
	"fmt"

	"github.com/hode-port/hode/surface"
)

// Video is a Digest of presented frames.
type Video struct {
	digest [sha1.Size]byte
	pixels []byte
	frames int
}

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo() *Video {
	return &Video{}
}

// Hash implements the Digest interface.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Video) ResetDigest() {
	clear(dig.digest[:])
	dig.frames = 0
}

// Frames returns the number of frames included in the digest.
func (dig *Video) Frames() int {
	return dig.frames
}

// Frame adds the surface to the digest. Only the visible part of each row
// is included. Pixels are converted to RGB so that the digest does not depend
// on the pixel format of the surface.
func (dig *Video) Frame(s *surface.Surface) error {
	// room for the previous digest, the dimensions and the pixels
	l := len(dig.digest) + 8 + s.W*s.H*3
	if cap(dig.pixels) < l {
		dig.pixels = make([]byte, l)
	}
	dig.pixels = dig.pixels[:l]

	// chain fingerprints by copying the value of the last fingerprint to the
	// head of the video data
	n := copy(dig.pixels, dig.digest[:])
	binary.LittleEndian.PutUint32(dig.pixels[n:], uint32(s.W))
	binary.LittleEndian.PutUint32(dig.pixels[n+4:], uint32(s.H))
	i := n + 8

	for y := range s.H {
		for _, p := range s.Row(y)[:s.W] {
			r, g, b := s.Format.RGB(p)
			dig.pixels[i] = r
			dig.pixels[i+1] = g
			dig.pixels[i+2] = b
			i += 3
		}
	}

	dig.digest = sha1.Sum(dig.pixels)
	dig.frames++

	return nil
}

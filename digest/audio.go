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
	"fmt"
	"sync"
)

// the length of the buffer we're using isn't really important. that said, it
// needs to be at least sha1.Size bytes in length
const audioBufferLength = 1024 * sha1.Size

// the buffer begins with the previous digest value
const audioBufferStart = sha1.Size

// Audio is a Digest of the audio stream. It implements io.Writer and so can be
// used as an audio tap.
type Audio struct {
	crit sync.Mutex

	digest   [sha1.Size]byte
	buffer   []uint8
	bufferCt int
}

// NewAudio is the preferred method of initialisation for the Audio type.
func NewAudio() *Audio {
	return &Audio{
		buffer:   make([]uint8, audioBufferLength),
		bufferCt: audioBufferStart,
	}
}

// Hash implements the Digest interface. Data not yet flushed is not included.
func (dig *Audio) Hash() string {
	dig.crit.Lock()
	defer dig.crit.Unlock()
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface. Unflushed data is discarded.
func (dig *Audio) ResetDigest() {
	dig.crit.Lock()
	defer dig.crit.Unlock()
	clear(dig.digest[:])
	dig.bufferCt = audioBufferStart
}

// Write implements the io.Writer interface.
func (dig *Audio) Write(p []byte) (int, error) {
	dig.crit.Lock()
	defer dig.crit.Unlock()

	n := len(p)
	for len(p) > 0 {
		c := copy(dig.buffer[dig.bufferCt:], p)
		dig.bufferCt += c
		p = p[c:]
		if dig.bufferCt >= audioBufferLength {
			dig.flush()
		}
	}

	return n, nil
}

// Flush includes any buffered data in the digest.
func (dig *Audio) Flush() {
	dig.crit.Lock()
	defer dig.crit.Unlock()
	if dig.bufferCt > audioBufferStart {
		dig.flush()
	}
}

func (dig *Audio) flush() {
	dig.digest = sha1.Sum(dig.buffer[:dig.bufferCt])
	copy(dig.buffer, dig.digest[:])
	dig.bufferCt = audioBufferStart
}

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

package audio

import (
	"encoding/binary"
	"io"
	"sync"
)

// Callback fills buf with interleaved stereo samples. The buffer is zeroed
// before the Callback is called, so a Callback with nothing to play can
// return immediately.
type Callback func(buf []int16)

// Bridge between a Callback and a Device.
//
// Lock(), Unlock(), SetCallback() and SetTap() must all be called from the
// same goroutine. Lock() nests, and SetCallback() and SetTap() can be called
// while the bridge is locked.
type Bridge struct {
	crit sync.Mutex
	cb   Callback

	// number of calls to Lock() without a matching call to Unlock(). only
	// accessed by the locking goroutine
	depth int

	// reused between calls to Read()
	scratch []int16

	// receives a copy of every byte returned by Read()
	tap io.Writer
}

// NewBridge is the preferred method of initialisation for the Bridge type.
func NewBridge() *Bridge {
	return &Bridge{}
}

// Lock the bridge. The Callback will not be called until every call to
// Lock() has been matched by a call to Unlock().
func (br *Bridge) Lock() {
	if br.depth == 0 {
		br.crit.Lock()
	}
	br.depth++
}

// Unlock the bridge. Unlocking a bridge that is not locked does nothing.
func (br *Bridge) Unlock() {
	if br.depth == 0 {
		return
	}
	br.depth--
	if br.depth == 0 {
		br.crit.Unlock()
	}
}

// SetCallback replaces the Callback and returns the previous one. A nil
// Callback produces silence.
func (br *Bridge) SetCallback(cb Callback) Callback {
	br.Lock()
	defer br.Unlock()
	prev := br.cb
	br.cb = cb
	return prev
}

// SetTap sets a writer that receives a copy of the audio data. A nil writer
// removes the tap.
func (br *Bridge) SetTap(w io.Writer) {
	br.Lock()
	defer br.Unlock()
	br.tap = w
}

// Read implements the io.Reader interface. The buffer is always filled and
// the error is always nil. Samples are written in little-endian order.
func (br *Bridge) Read(p []byte) (int, error) {
	clear(p)
	n := len(p) / 2

	br.crit.Lock()

	if br.cb != nil {
		if cap(br.scratch) < n {
			br.scratch = make([]int16, n)
		}
		buf := br.scratch[:n]
		clear(buf)

		br.cb(buf)

		for i, s := range buf {
			binary.LittleEndian.PutUint16(p[i*2:], uint16(s))
		}
	}

	tap := br.tap
	br.crit.Unlock()

	if tap != nil {
		_, _ = tap.Write(p)
	}

	return len(p), nil
}

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
	"io"
)

// Sentinal errors.
const (
	DeviceOpenFailed = "audio: cannot open device: %v"
)

// Spec describes the format of the audio stream. Samples are always signed
// 16bit little-endian.
type Spec struct {
	Freq     int
	Channels int

	// number of sample frames in the device buffer
	Samples int
}

// DefaultSpec is the format used by the game's mixer.
var DefaultSpec = Spec{
	Freq:     22050,
	Channels: 2,
	Samples:  4096,
}

// BufferBytes returns the size of the device buffer in bytes.
func (s Spec) BufferBytes() int {
	return s.Samples * s.Channels * 2
}

// Device is an audio output that pulls data from an io.Reader.
type Device interface {
	// Open the device and start pulling audio from the reader. An error
	// should be a curated DeviceOpenFailed error.
	Open(spec Spec, r io.Reader) error

	// Close stops the device. Read() will not be called once Close() has
	// returned.
	Close() error
}

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

// Package wavwriter allows writing of audio data to disk as a WAV file. Note
// that audio data is buffered in memory in its entirity, and written to disk
// when Close() is called. It is therefore probably only suitable for testing
// purposes.
//
// The WavWriter type implements io.Writer and so can be used as an audio tap,
// receiving a copy of the data sent to the audio device.
package wavwriter

import (
	"os"
	"sync"

	"github.com/hode-port/hode/curated"
	"github.com/hode-port/hode/logger"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// Sentinal errors.
const (
	WavWriterError = "wavwriter: %v"
)

// WavWriter accepts signed 16bit little-endian interleaved audio data.
type WavWriter struct {
	crit sync.Mutex

	filename   string
	sampleRate int
	channels   int

	buffer []int

	// the last byte of a write that ended part way through a sample
	odd    byte
	hasOdd bool
}

// New is the preferred method of initialisation for the WavWriter type.
func New(filename string, sampleRate int, channels int) (*WavWriter, error) {
	if sampleRate <= 0 || channels <= 0 {
		return nil, curated.Errorf(WavWriterError, "bad parameters for wav encoding")
	}

	aw := &WavWriter{
		filename:   filename,
		sampleRate: sampleRate,
		channels:   channels,
		buffer:     make([]int, 0, sampleRate*channels),
	}

	return aw, nil
}

// Write implements the io.Writer interface.
func (aw *WavWriter) Write(p []byte) (int, error) {
	aw.crit.Lock()
	defer aw.crit.Unlock()

	n := len(p)

	if aw.hasOdd && len(p) > 0 {
		aw.buffer = append(aw.buffer, int(int16(uint16(aw.odd)|uint16(p[0])<<8)))
		aw.hasOdd = false
		p = p[1:]
	}

	for len(p) >= 2 {
		aw.buffer = append(aw.buffer, int(int16(uint16(p[0])|uint16(p[1])<<8)))
		p = p[2:]
	}

	if len(p) == 1 {
		aw.odd = p[0]
		aw.hasOdd = true
	}

	return n, nil
}

// Samples returns the number of sample frames written so far.
func (aw *WavWriter) Samples() int {
	aw.crit.Lock()
	defer aw.crit.Unlock()
	return len(aw.buffer) / aw.channels
}

// Close encodes the buffered audio data and writes it to disk.
func (aw *WavWriter) Close() (rerr error) {
	aw.crit.Lock()
	defer aw.crit.Unlock()

	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf(WavWriterError, err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf(WavWriterError, err)
		}
	}()

	// incomplete sample frames are dropped
	data := aw.buffer[:len(aw.buffer)-len(aw.buffer)%aw.channels]

	enc := wav.NewEncoder(f, aw.sampleRate, 16, aw.channels, 1)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: aw.channels,
			SampleRate:  aw.sampleRate,
		},
		Data:           data,
		SourceBitDepth: 16,
	}

	logger.Logf(logger.Allow, "wavwriter", "writing audio to %s", aw.filename)

	err = enc.Write(buf)
	if err != nil {
		return curated.Errorf(WavWriterError, err)
	}

	err = enc.Close()
	if err != nil {
		return curated.Errorf(WavWriterError, err)
	}

	return nil
}

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

// Package soundload decodes WAV and MP3 files into signed 16bit stereo sample
// data, suitable for playing through an audio.Callback.
package soundload

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hode-port/hode/curated"
	"github.com/hode-port/hode/logger"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
)

// Sentinal errors.
const (
	UnsupportedFormat = "soundload: unsupported format: %s"
	DecodeFailed      = "soundload: %s: %v"
)

const soundloadLogTag = "soundload"

// Clip is interleaved stereo sample data.
type Clip struct {
	SampleRate int
	Data       []int16
}

// Frames returns the number of stereo sample frames in the clip.
func (c *Clip) Frames() int {
	return len(c.Data) / 2
}

// Load the named file. The format is decided by the filename extension.
func Load(filename string) (*Clip, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("soundload: %w", err)
	}
	defer f.Close()

	return Decode(f, filepath.Ext(filename))
}

// Decode sound data of the type indicated by the extension, which should
// include the leading dot.
func Decode(r io.ReadSeeker, ext string) (*Clip, error) {
	var c *Clip
	var err error

	switch strings.ToLower(ext) {
	case ".wav":
		c, err = decodeWav(r)
	case ".mp3":
		c, err = decodeMp3(r)
	default:
		return nil, curated.Errorf(UnsupportedFormat, ext)
	}
	if err != nil {
		return nil, err
	}

	logger.Logf(logger.Allow, soundloadLogTag, "sample rate: %dHz", c.SampleRate)
	logger.Logf(logger.Allow, soundloadLogTag, "total time: %.02fs", float64(c.Frames())/float64(c.SampleRate))

	return c, nil
}

func decodeWav(r io.ReadSeeker) (*Clip, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, curated.Errorf(DecodeFailed, "wav", "not a valid wav file")
	}

	logger.Log(logger.Allow, soundloadLogTag, "loading from wav file")

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, curated.Errorf(DecodeFailed, "wav", err)
	}

	chans := int(dec.NumChans)
	if chans == 0 {
		return nil, curated.Errorf(DecodeFailed, "wav", "no channels")
	}
	depth := int(dec.BitDepth)

	frames := len(buf.Data) / chans
	c := &Clip{
		SampleRate: int(dec.SampleRate),
		Data:       make([]int16, frames*2),
	}

	for i := range frames {
		l := to16(buf.Data[i*chans], depth)
		r := l
		if chans > 1 {
			r = to16(buf.Data[i*chans+1], depth)
		}
		c.Data[i*2] = l
		c.Data[i*2+1] = r
	}

	return c, nil
}

// to16 converts a sample of the specified bit depth to a signed 16bit value.
// 8bit WAV data is unsigned.
func to16(v int, depth int) int16 {
	switch {
	case depth == 8:
		return int16((v - 128) << 8)
	case depth > 16:
		return int16(v >> (depth - 16))
	case depth < 16:
		return int16(v << (16 - depth))
	}
	return int16(v)
}

func decodeMp3(r io.Reader) (*Clip, error) {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return nil, curated.Errorf(DecodeFailed, "mp3", err)
	}

	logger.Log(logger.Allow, soundloadLogTag, "loading from mp3 file")

	// the decoded stream is always 16bit little-endian with two channels
	// even if the source is a single channel
	b, err := io.ReadAll(dec)
	if err != nil {
		return nil, curated.Errorf(DecodeFailed, "mp3", err)
	}

	c := &Clip{
		SampleRate: dec.SampleRate(),
		Data:       make([]int16, len(b)/4*2),
	}
	for i := range c.Data {
		c.Data[i] = int16(uint16(b[i*2]) | uint16(b[i*2+1])<<8)
	}

	return c, nil
}

// Resample returns a copy of the clip at the new sample rate. Linear
// interpolation is used.
func (c *Clip) Resample(rate int) *Clip {
	if rate <= 0 || rate == c.SampleRate || c.Frames() == 0 {
		n := &Clip{SampleRate: c.SampleRate, Data: make([]int16, len(c.Data))}
		copy(n.Data, c.Data)
		if rate > 0 {
			n.SampleRate = rate
		}
		return n
	}

	frames := int(int64(c.Frames()) * int64(rate) / int64(c.SampleRate))
	n := &Clip{
		SampleRate: rate,
		Data:       make([]int16, frames*2),
	}

	last := c.Frames() - 1
	step := float64(c.SampleRate) / float64(rate)
	for i := range frames {
		p := float64(i) * step
		j := int(p)
		f := p - float64(j)
		k := min(j+1, last)
		for ch := range 2 {
			a := float64(c.Data[j*2+ch])
			b := float64(c.Data[k*2+ch])
			n.Data[i*2+ch] = int16(a + (b-a)*f)
		}
	}

	return n
}

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

// Package offscreen implements the paletted backbuffer that the game draws
// into. Every write is checked against the dimensions of the buffer.
package offscreen

import (
	"fmt"
	"math"

	"github.com/hode-port/hode/curated"
)

// Sentinal errors.
const (
	AllocFailed     = "offscreen: cannot allocate %dx%d buffer: %v"
	RectOutOfBounds = "offscreen: rectangle (%d, %d, %d, %d) outside of %dx%d buffer"
	ShortSource     = "offscreen: source buffer too short (%d bytes for %d rows of pitch %d)"
)

// Buffer of palette indices, stored row major with a pitch equal to the width.
type Buffer struct {
	w, h int
	pix  []uint8
}

// New allocates a w×h buffer. An error is returned if the buffer cannot be
// allocated. Callers should treat that as fatal.
func New(w, h int) (buf *Buffer, err error) {
	defer func() {
		if r := recover(); r != nil {
			buf = nil
			err = curated.Errorf(AllocFailed, w, h, r)
		}
	}()

	if w <= 0 || h <= 0 {
		return nil, curated.Errorf(AllocFailed, w, h, fmt.Errorf("invalid dimensions"))
	}
	if w > math.MaxInt/h {
		return nil, curated.Errorf(AllocFailed, w, h, fmt.Errorf("dimensions too large"))
	}

	return &Buffer{
		w:   w,
		h:   h,
		pix: make([]uint8, w*h),
	}, nil
}

// Width returns the width of the buffer.
func (b *Buffer) Width() int {
	return b.w
}

// Height returns the height of the buffer.
func (b *Buffer) Height() int {
	return b.h
}

// Pixels returns the underlying buffer. The slice should not be modified.
func (b *Buffer) Pixels() []uint8 {
	return b.pix
}

func (b *Buffer) checkRect(x, y, w, h int) error {
	if x < 0 || y < 0 || w < 0 || h < 0 || x > b.w || y > b.h || w > b.w-x || h > b.h-y {
		return curated.Errorf(RectOutOfBounds, x, y, w, h, b.w, b.h)
	}
	return nil
}

// CopyRect copies a w×h block of indices from src, which has a row length of
// pitch, to the buffer at x, y.
func (b *Buffer) CopyRect(x, y, w, h int, src []uint8, pitch int) error {
	if err := b.checkRect(x, y, w, h); err != nil {
		return err
	}
	if w == 0 || h == 0 {
		return nil
	}
	if pitch < w || len(src) < (h-1)*pitch+w {
		return curated.Errorf(ShortSource, len(src), h, pitch)
	}

	if w == pitch && w == b.w {
		copy(b.pix[y*b.w:], src[:w*h])
		return nil
	}

	for i := range h {
		o := (y+i)*b.w + x
		copy(b.pix[o:o+w], src[i*pitch:i*pitch+w])
	}

	return nil
}

// FillRect sets a w×h block at x, y to the colour index.
func (b *Buffer) FillRect(x, y, w, h int, color uint8) error {
	if err := b.checkRect(x, y, w, h); err != nil {
		return err
	}

	if w == b.w {
		fill(b.pix[y*b.w:(y+h)*b.w], color)
		return nil
	}

	for i := range h {
		o := (y+i)*b.w + x
		fill(b.pix[o:o+w], color)
	}

	return nil
}

func fill(p []uint8, color uint8) {
	for i := range p {
		p[i] = color
	}
}

// ReadRect returns a copy of a w×h block at x, y.
func (b *Buffer) ReadRect(x, y, w, h int) ([]uint8, error) {
	if err := b.checkRect(x, y, w, h); err != nil {
		return nil, err
	}

	r := make([]uint8, w*h)
	for i := range h {
		o := (y+i)*b.w + x
		copy(r[i*w:(i+1)*w], b.pix[o:o+w])
	}

	return r, nil
}

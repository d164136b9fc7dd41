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

package palette

import (
	"github.com/hode-port/hode/curated"
	"github.com/hode-port/hode/surface"
)

// Sentinal errors.
const (
	InvalidPalette = "palette: invalid palette: %s"
)

// Table of display pixel values indexed by palette colour.
type Table [256]uint32

// Engine maintains the palette table and the gamma correction applied to it.
type Engine struct {
	format surface.PixelFormat
	gamma  GammaLUT
	table  Table
}

// NewEngine is the preferred method of initialisation for the Engine type.
// Gamma correction is initially the identity.
func NewEngine(format surface.PixelFormat) *Engine {
	return &Engine{
		format: format,
		gamma:  IdentityLUT(),
	}
}

// SetGamma recomputes the gamma lookup table. The palette table is not
// affected until the next call to SetPalette().
func (eng *Engine) SetGamma(gamma float64) {
	eng.gamma = NewGammaLUT(gamma)
}

// Gamma returns the current gamma lookup table.
func (eng *Engine) Gamma() GammaLUT {
	return eng.gamma
}

// Correct applies gamma correction to the colour components.
func (eng *Engine) Correct(r, g, b uint8) (uint8, uint8, uint8) {
	return eng.gamma[r], eng.gamma[g], eng.gamma[b]
}

// SetPalette converts n RGB triplets to display pixel values, replacing the
// first n entries of the table. Components of fewer than eight bits are
// expanded to the full range before gamma correction.
func (eng *Engine) SetPalette(pal []uint8, n int, depth int) error {
	if n < 0 || n > 256 {
		return curated.Errorf(InvalidPalette, "number of colours out of range")
	}
	if depth < 1 || depth > 8 {
		return curated.Errorf(InvalidPalette, "depth out of range")
	}
	if len(pal) < n*3 {
		return curated.Errorf(InvalidPalette, "not enough data for number of colours")
	}

	shift := 8 - depth

	for i := range n {
		r := int(pal[i*3])
		g := int(pal[i*3+1])
		b := int(pal[i*3+2])
		if shift != 0 {
			r = expand(r, shift, depth)
			g = expand(g, shift, depth)
			b = expand(b, shift, depth)
		}
		eng.table[i] = eng.format.MapRGB(eng.gamma[r&0xff], eng.gamma[g&0xff], eng.gamma[b&0xff])
	}

	return nil
}

// replicates the high bits of the value into the low bits that are opened up
// by shifting
func expand(v int, shift int, depth int) int {
	if depth-shift < 0 {
		// for depths of less than four bits the replication is partial
		return v << shift
	}
	return (v << shift) | (v >> (depth - shift))
}

// Clear sets every entry in the table to zero.
func (eng *Engine) Clear() {
	eng.table = Table{}
}

// Table returns a pointer to the palette table. The table should only be
// modified by the compositor, for the purpose of forcing entry zero or by a
// scaler's palette hook.
func (eng *Engine) Table() *Table {
	return &eng.table
}

// Format returns the pixel format used for mapping colours.
func (eng *Engine) Format() surface.PixelFormat {
	return eng.format
}

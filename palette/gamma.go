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

import "math"

// GammaLUT maps a colour component to its gamma corrected value.
type GammaLUT [256]uint8

// IdentityLUT returns a GammaLUT that leaves values unchanged. Equivalent to
// a gamma of 1.0.
func IdentityLUT() GammaLUT {
	var lut GammaLUT
	for i := range lut {
		lut[i] = uint8(i)
	}
	return lut
}

// NewGammaLUT creates a lookup table for the gamma value. Values of gamma
// less than or equal to zero are not meaningful and are not checked. A gamma
// of zero produces a table where every entry but the last is zero.
func NewGammaLUT(gamma float64) GammaLUT {
	var lut GammaLUT
	for i := range lut {
		v := math.Round(math.Pow(float64(i)/255.0, 1.0/gamma) * 255.0)
		if math.IsNaN(v) || v < 0 {
			v = 0
		} else if v > 255 {
			v = 255
		}
		lut[i] = uint8(v)
	}
	return lut
}

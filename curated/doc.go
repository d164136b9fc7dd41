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

// Package curated is a helper package for the plain Go language error type.
//
// Curated errors are created with the Errorf() function, which takes a
// formatting pattern and placeholder values in the same way as fmt.Errorf().
// The pattern is the identity of the error. Packages that need to report a
// specific kind of error declare the pattern as an exported constant:
//
//	const RectOutOfBounds = "offscreen: rectangle out of bounds (%d,%d %dx%d)"
//
//	err := curated.Errorf(RectOutOfBounds, x, y, w, h)
//
//	if curated.Is(err, RectOutOfBounds) {
//		...
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain, ie. when a curated error has been wrapped by another
// curated error.
//
// The Error() implementation normalises the message so that adjacent
// duplicate parts are collapsed. Parts are separated by the sub-string ": ".
// For example, wrapping "sdl: cannot open window" with the pattern "sdl: %v"
// results in the message
//
//	sdl: cannot open window
//
// and not
//
//	sdl: sdl: cannot open window
package curated

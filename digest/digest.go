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

// Package digest is used to create fingerprints of the video and audio
// output. The fingerprints are chained SHA-1 values: each new value includes
// the previous one, so two runs produce the same digest only if every frame
// (or every block of audio) was the same.
//
// Useful for regression testing. The headless backend's OnFrame hook can be
// set to Video.Frame and the Audio type can be used as an audio tap.
package digest

// Digest implementations compute a fingerprint of output.
type Digest interface {
	Hash() string
	ResetDigest()
}

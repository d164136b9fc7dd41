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

// Package audio connects the game's sound mixer to an audio device.
//
// The mixer is a Callback that fills a buffer of interleaved signed 16bit
// stereo samples. The Bridge presents the Callback as an io.Reader, which is
// the interface through which every Device pulls audio. The Device calls
// Read() from its own goroutine, at its own pace. The Callback is only ever
// called with the Bridge lock held, so the game can use Lock() and Unlock()
// to protect any state it shares with the mixer.
package audio

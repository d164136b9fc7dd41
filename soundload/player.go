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

package soundload

import "sync/atomic"

// Player plays a clip through an audio callback. The clip loops if Loop is
// true, otherwise silence is output once the clip has ended.
type Player struct {
	clip *Clip
	pos  int
	Loop bool

	volume atomic.Int32
}

// NewPlayer is the preferred method of initialisation for the Player type.
// Volume is initially 256 (full volume).
func NewPlayer(clip *Clip) *Player {
	p := &Player{clip: clip}
	p.volume.Store(256)
	return p
}

// SetVolume sets the volume in the range 0 to 256.
func (p *Player) SetVolume(v int) {
	p.volume.Store(int32(max(0, min(v, 256))))
}

// Finished returns true if a non-looping clip has been played to the end.
func (p *Player) Finished() bool {
	return !p.Loop && p.pos >= len(p.clip.Data)
}

// Mix the clip into buf. The buffer is mixed into rather than overwritten.
// Suitable for use as an audio.Callback.
func (p *Player) Mix(buf []int16) {
	vol := p.volume.Load()
	for i := range buf {
		if p.pos >= len(p.clip.Data) {
			if !p.Loop || len(p.clip.Data) == 0 {
				return
			}
			p.pos = 0
		}
		s := int32(buf[i]) + int32(p.clip.Data[p.pos])*vol/256
		buf[i] = int16(max(-32768, min(s, 32767)))
		p.pos++
	}
}

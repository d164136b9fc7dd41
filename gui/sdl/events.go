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

package sdl

import (
	"github.com/hode-port/hode/userinput"

	"github.com/veandco/go-sdl2/sdl"
)

// ProcessEvents implements the system.System interface.
func (s *SDL) ProcessEvents() {
	s.owner.Assert("ProcessEvents")

	s.norm.Begin()

	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			s.norm.Handle(userinput.EventQuit{})

		case *sdl.KeyboardEvent:
			s.norm.Handle(userinput.EventKeyboard{
				Key:    sdl.GetKeyName(ev.Keysym.Sym),
				Down:   ev.Type == sdl.KEYDOWN,
				Repeat: ev.Repeat != 0,
			})

		case *sdl.JoyHatEvent:
			s.norm.Handle(userinput.EventJoyHat{Value: ev.Value})

		case *sdl.JoyAxisEvent:
			s.norm.Handle(userinput.EventJoyAxis{Axis: ev.Axis, Value: ev.Value})

		case *sdl.JoyButtonEvent:
			s.norm.Handle(userinput.EventJoyButton{
				Button: ev.Button,
				Down:   ev.State == sdl.PRESSED,
			})
		}
	}

	s.norm.End()
}

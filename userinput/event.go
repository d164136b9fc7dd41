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

package userinput

// Event represents all the different types of input event that the
// Normalizer accepts.
type Event interface{}

// EventQuit is sent when the user has requested that the game exit, usually
// by closing the window.
type EventQuit struct{}

// EventKeyboard is a key press or release. The Key field is the SDL name of
// the key (eg. "Left", "Return", "Left Ctrl", "S").
type EventKeyboard struct {
	Key    string
	Down   bool
	Repeat bool
}

// Bits in the value of EventJoyHat.
const (
	HatUp    = 0x01
	HatRight = 0x02
	HatDown  = 0x04
	HatLeft  = 0x08
)

// EventJoyHat is a change in the position of a joystick hat.
type EventJoyHat struct {
	Value uint8
}

// EventJoyAxis is a change in the position of a joystick axis.
type EventJoyAxis struct {
	Axis  uint8
	Value int16
}

// EventJoyButton is a joystick button press or release.
type EventJoyButton struct {
	Button uint8
	Down   bool
}

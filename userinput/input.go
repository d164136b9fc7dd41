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

// Bits of the input mask.
const (
	Up    = 1 << 0
	Down  = 1 << 1
	Left  = 1 << 2
	Right = 1 << 3
	Run   = 1 << 4
	Jump  = 1 << 5
	Shoot = 1 << 6
	Esc   = 1 << 7
)

// directional bits of the input mask
const directions = Up | Down | Left | Right

// PlayerInput is the snapshot of input that the game reads once per frame.
type PlayerInput struct {
	Mask     uint8
	PrevMask uint8

	// set when the user asks to quit. never cleared by the Normalizer
	Quit bool

	// set when the screenshot key is released. the game should clear the
	// flag once the screenshot has been taken
	Screenshot bool
}

// Pressed returns true if any of the bits are set in the current mask.
func (inp PlayerInput) Pressed(bits uint8) bool {
	return inp.Mask&bits != 0
}

// JustPressed returns true if any of the bits are set in the current mask but
// not in the previous mask.
func (inp PlayerInput) JustPressed(bits uint8) bool {
	return inp.Mask&bits&^inp.PrevMask != 0
}

// JustReleased returns true if any of the bits are set in the previous mask
// but not in the current mask.
func (inp PlayerInput) JustReleased(bits uint8) bool {
	return inp.PrevMask&bits&^inp.Mask != 0
}

// PadState is the state of the gamepad. The state persists between frames.
type PadState struct {
	Mask     uint8
	PrevMask uint8
}

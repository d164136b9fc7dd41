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

// Package userinput translates input events from the host into the button
// mask read by the game each frame.
//
// Backends convert their native events to the types in this package and pass
// them to a Normalizer. Keyboard events are mapped through a KeyMappings
// table. Joystick events update a PadState directly, with the rules of the
// original game's gamepad handling:
//
//	hat      the four direction bits are replaced by the hat position
//	axis 0   left/right, with a dead zone of ±3200
//	axis 1   up/down, with a dead zone of ±3200
//	buttons  1 shoot, 2 jump, 3 shoot+run, 4 run, 7 escape
//
// The GUI implementation in use during development was SDL and so there will
// be a bias towards that system.
package userinput

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

// joystick axis values between -commitValue and commitValue are in the dead
// zone
const commitValue = 3200

// the key that requests a screenshot, on release
const screenshotKey = "S"

// Normalizer applies input events to a PlayerInput and PadState. Events for
// a frame are handled between calls to Begin() and End():
//
//	norm.Begin()
//	for each event {
//		norm.Handle(ev)
//	}
//	norm.End()
type Normalizer struct {
	Input PlayerInput
	Pad   PadState

	// joystick events are ignored if this is false
	Joystick bool

	keys *KeyMappings
	held map[string]uint8
}

// NewNormalizer is the preferred method of initialisation for the Normalizer
// type. If keys is nil then DefaultKeyMappings() is used.
func NewNormalizer(keys *KeyMappings) *Normalizer {
	if keys == nil {
		keys = DefaultKeyMappings()
	}
	return &Normalizer{
		keys: keys,
		held: make(map[string]uint8),
	}
}

// KeyMappings returns the table used for keyboard events.
func (n *Normalizer) KeyMappings() *KeyMappings {
	return n.keys
}

// Begin a new frame of input.
func (n *Normalizer) Begin() {
	n.Pad.PrevMask = n.Pad.Mask
}

// Handle a single event.
func (n *Normalizer) Handle(ev Event) {
	switch ev := ev.(type) {
	case EventQuit:
		n.Input.Quit = true

	case EventKeyboard:
		n.keyboard(ev)

	case EventJoyHat:
		if !n.Joystick {
			return
		}
		var m uint8
		if ev.Value&HatUp != 0 {
			m |= Up
		}
		if ev.Value&HatDown != 0 {
			m |= Down
		}
		if ev.Value&HatLeft != 0 {
			m |= Left
		}
		if ev.Value&HatRight != 0 {
			m |= Right
		}
		n.Pad.Mask = n.Pad.Mask&^directions | m

	case EventJoyAxis:
		if !n.Joystick {
			return
		}
		switch ev.Axis {
		case 0:
			n.Pad.Mask &^= Left | Right
			if ev.Value > commitValue {
				n.Pad.Mask |= Right
			} else if ev.Value < -commitValue {
				n.Pad.Mask |= Left
			}
		case 1:
			n.Pad.Mask &^= Up | Down
			if ev.Value > commitValue {
				n.Pad.Mask |= Down
			} else if ev.Value < -commitValue {
				n.Pad.Mask |= Up
			}
		}

	case EventJoyButton:
		if !n.Joystick {
			return
		}
		var m uint8
		switch ev.Button {
		case 1:
			m = Shoot
		case 2:
			m = Jump
		case 3:
			m = Shoot | Run
		case 4:
			m = Run
		case 7:
			m = Esc
		default:
			return
		}
		if ev.Down {
			n.Pad.Mask |= m
		} else {
			n.Pad.Mask &^= m
		}
	}
}

func (n *Normalizer) keyboard(ev EventKeyboard) {
	if !ev.Down && ev.Key == screenshotKey {
		n.Input.Screenshot = true
	}

	if ev.Repeat {
		return
	}

	m, ok := n.keys.Lookup(ev.Key)
	if !ok {
		return
	}

	if ev.Down {
		n.held[ev.Key] = m
	} else {
		delete(n.held, ev.Key)
	}
}

// keyMask combines the masks of every held key
func (n *Normalizer) keyMask() uint8 {
	var m uint8
	for _, k := range n.held {
		m |= k
	}
	return m
}

// End the frame and update the PlayerInput snapshot.
func (n *Normalizer) End() {
	n.Input.PrevMask = n.Input.Mask
	n.Input.Mask = n.keyMask() | n.Pad.Mask
}

// Reset releases all held keys and clears the gamepad state. The Quit and
// Screenshot flags are not affected.
func (n *Normalizer) Reset() {
	clear(n.held)
	n.Pad = PadState{}
	n.Input.Mask = 0
	n.Input.PrevMask = 0
}

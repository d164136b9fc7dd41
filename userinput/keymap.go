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

// MaxKeyMappings is the number of entries in a KeyMappings table.
const MaxKeyMappings = 20

// KeyMapping associates a key name with bits of the input mask.
type KeyMapping struct {
	Key  string
	Mask uint8
}

// KeyMappings is a fixed size table of key mappings.
type KeyMappings struct {
	entries [MaxKeyMappings]KeyMapping
	count   int
}

// Add a mapping for key. An existing mapping for the same key is replaced.
// Returns false if the table is full and the key is not already mapped.
func (km *KeyMappings) Add(key string, mask uint8) bool {
	for i := range km.count {
		if km.entries[i].Key == key {
			km.entries[i].Mask = mask
			return true
		}
	}
	if km.count >= MaxKeyMappings {
		return false
	}
	km.entries[km.count] = KeyMapping{Key: key, Mask: mask}
	km.count++
	return true
}

// Lookup the mask for key.
func (km *KeyMappings) Lookup(key string) (uint8, bool) {
	for _, e := range km.entries[:km.count] {
		if e.Key == key {
			return e.Mask, true
		}
	}
	return 0, false
}

// Len returns the number of mappings in the table.
func (km *KeyMappings) Len() int {
	return km.count
}

// DefaultKeyMappings returns the default keyboard layout. The cursor keys
// move, the keys around the cursor keys on a full size keyboard move
// diagonally.
func DefaultKeyMappings() *KeyMappings {
	km := &KeyMappings{}
	km.Add("Up", Up)
	km.Add("Down", Down)
	km.Add("Left", Left)
	km.Add("Right", Right)
	km.Add("PageUp", Up|Right)
	km.Add("Home", Up|Left)
	km.Add("End", Down|Left)
	km.Add("PageDown", Down|Right)
	km.Add("Return", Jump)
	km.Add("Left Ctrl", Run)
	km.Add("Left Shift", Shoot)
	km.Add("Escape", Esc)
	return km
}

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

package scaler

import (
	"sort"

	"github.com/hode-port/hode/surface"
)

// ScaleProc converts a w×h block of palette indices into display pixels. The
// destination has the same dimensions as the source. Pitches are measured in
// elements of their respective slices.
type ScaleProc func(dst []uint32, dstPitch int, src []uint8, srcPitch int, w, h int, pal *[256]uint32, format surface.PixelFormat)

// PaletteProc modifies a palette table after it has been mapped to display
// pixel values.
type PaletteProc func(pal *[256]uint32, format surface.PixelFormat)

// Factor is the range of display multipliers supported by a Scaler.
type Factor struct {
	Min, Max int
}

// Clamp value to the range of the Factor.
func (f Factor) Clamp(v int) int {
	if v < f.Min {
		return f.Min
	}
	if f.Max > 0 && v > f.Max {
		return f.Max
	}
	return v
}

// Scaler describes a named transformation from palette indices to display
// pixels. Either Scale or Palette may be nil. A Scaler should not be changed
// once it has been added to a Registry.
type Scaler struct {
	Name        string
	Description string
	Factor      Factor
	Scale       ScaleProc
	Palette     PaletteProc
}

// Registry is a collection of Scalers, selected by name. Names are case
// sensitive. A Registry cannot be changed once created.
type Registry struct {
	scalers map[string]*Scaler
	first   *Scaler
}

// NewRegistry is the preferred method of initialisation for the Registry
// type. The first scaler in the list is the default. Later scalers with the
// same name as an earlier one are ignored.
func NewRegistry(scalers ...*Scaler) *Registry {
	reg := &Registry{
		scalers: make(map[string]*Scaler),
	}
	for _, s := range scalers {
		if _, ok := reg.scalers[s.Name]; ok {
			continue
		}
		if reg.first == nil {
			reg.first = s
		}
		reg.scalers[s.Name] = s
	}
	return reg
}

// Lookup scaler by name.
func (reg *Registry) Lookup(name string) (*Scaler, bool) {
	s, ok := reg.scalers[name]
	return s, ok
}

// Default returns the first scaler added to the registry. Returns nil if the
// registry is empty.
func (reg *Registry) Default() *Scaler {
	return reg.first
}

// Names returns a sorted list of the names in the registry.
func (reg *Registry) Names() []string {
	n := make([]string, 0, len(reg.scalers))
	for k := range reg.scalers {
		n = append(n, k)
	}
	sort.Strings(n)
	return n
}

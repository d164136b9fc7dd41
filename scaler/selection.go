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
	"github.com/hode-port/hode/logger"
)

// Selection is the active scaler and display multiplier.
type Selection struct {
	reg        *Registry
	active     *Scaler
	multiplier int
}

// NewSelection is the preferred method of initialisation for the Selection
// type. The registry's default scaler is selected with a multiplier of one.
func NewSelection(reg *Registry) *Selection {
	return &Selection{
		reg:        reg,
		active:     reg.Default(),
		multiplier: 1,
	}
}

// Set changes the active scaler and multiplier. A multiplier of zero or less
// leaves the multiplier unchanged. An empty name leaves the scaler unchanged.
// A name not in the registry leaves the previous scaler active.
func (sel *Selection) Set(name string, multiplier int) {
	if multiplier > 0 {
		sel.multiplier = multiplier
	}

	if name != "" {
		s, ok := sel.reg.Lookup(name)
		if !ok {
			var current string
			if sel.active != nil {
				current = sel.active.Name
			}
			logger.Logf(logger.Allow, "scaler", "Unknown scaler '%s', using default '%s'", name, current)
		} else {
			sel.active = s
		}
	}

	if sel.active != nil {
		m := sel.active.Factor.Clamp(sel.multiplier)
		if m != sel.multiplier {
			logger.Logf(logger.Allow, "scaler", "Multiplier %d not supported by '%s', using %d", sel.multiplier, sel.active.Name, m)
		}
		sel.multiplier = m
	}
}

// Active returns the current scaler. Can be nil only if the registry is
// empty.
func (sel *Selection) Active() *Scaler {
	return sel.active
}

// Multiplier returns the display multiplier. The value is always one or more.
func (sel *Selection) Multiplier() int {
	return max(1, sel.multiplier)
}

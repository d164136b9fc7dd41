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

package prefs

import (
	"fmt"
	"sort"
	"strings"
)

// CommandLine holds preference values specified on the command line. The
// format of the string is a list of "key::value" pairs separated by
// semicolons. For example:
//
//	display.gamma::1.5; display.widescreen::true
type CommandLine struct {
	values map[string]Value
}

// NewCommandLine parses the prefs string. Invalid entries are ignored.
func NewCommandLine(prefs string) *CommandLine {
	cl := &CommandLine{
		values: make(map[string]Value),
	}

	for _, p := range strings.Split(prefs, ";") {
		kv := strings.Split(p, "::")
		if len(kv) == 2 {
			k := strings.TrimSpace(kv[0])
			if k != "" {
				cl.values[k] = strings.TrimSpace(kv[1])
			}
		}
	}

	return cl
}

// Get value for key. The value is forgotten once it has been returned.
func (cl *CommandLine) Get(key string) (bool, Value) {
	if v, ok := cl.values[key]; ok {
		delete(cl.values, key)
		return true, v
	}
	return false, nil
}

// Unused returns the entries that have not been retrieved with Get(), as a
// sorted prefs string. Useful for warning about misspelled keys.
func (cl *CommandLine) Unused() string {
	keys := make([]string, 0, len(cl.values))
	for k := range cl.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := make([]string, 0, len(keys))
	for _, k := range keys {
		s = append(s, fmt.Sprintf("%s::%v", k, cl.values[k]))
	}

	return strings.Join(s, "; ")
}

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
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"
)

// WarningBoilerPlate is written at the start of every prefs file.
const WarningBoilerPlate = "; *** do not edit this file while the game is running ***"

// Disk represents preference values as stored on disk. The file is in the INI
// style used by the original game's configuration: keys of the form
// "section.name" are grouped under a "[section]" header and written as
// "name=value".
type Disk struct {
	path    string
	entries map[string]pref

	// key/value pairs found in the file that have not been added with Add().
	// they are written back unchanged by Save()
	unknown map[string]string

	cl *CommandLine
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
		unknown: make(map[string]string),
	}, nil
}

func (dsk *Disk) String() string {
	s := strings.Builder{}
	for _, k := range dsk.keys() {
		s.WriteString(fmt.Sprintf("%s=%s\n", k, dsk.entries[k]))
	}
	return s.String()
}

// Add preference value to list of values to store/load from Disk. The key
// must contain exactly one period separating the section from the name.
func (dsk *Disk) Add(key string, p pref) error {
	section, name, ok := strings.Cut(key, ".")
	if !ok || section == "" || name == "" || strings.Contains(name, ".") {
		return fmt.Errorf("prefs: key must be of the form section.name (%s)", key)
	}
	dsk.entries[key] = p
	return nil
}

// SetCommandLine attaches command line overrides to the Disk. Overrides are
// consulted by Load() and take precedence over the values in the file.
func (dsk *Disk) SetCommandLine(cl *CommandLine) {
	dsk.cl = cl
}

func (dsk *Disk) keys() []string {
	keys := make([]string, 0, len(dsk.entries)+len(dsk.unknown))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	for k := range dsk.unknown {
		if _, ok := dsk.entries[k]; !ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

// Save current preference values to disk.
func (dsk *Disk) Save() (rerr error) {
	f, err := os.Create(dsk.path)
	if err != nil {
		return fmt.Errorf("prefs: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = fmt.Errorf("prefs: %w", err)
		}
	}()

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, WarningBoilerPlate)

	var section string
	for _, k := range dsk.keys() {
		s, name, _ := strings.Cut(k, ".")
		if s != section {
			fmt.Fprintf(w, "[%s]\n", s)
			section = s
		}

		var v string
		if p, ok := dsk.entries[k]; ok {
			v = p.String()
		} else {
			v = dsk.unknown[k]
		}
		fmt.Fprintf(w, "%s=%s\n", name, v)
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	return nil
}

// Load preference values from disk. A missing file is not an error unless
// saveOnFail is false, in which case the error from the file system is
// returned. With saveOnFail true, a missing file is created with the current
// values.
func (dsk *Disk) Load(saveOnFail bool) error {
	err := dsk.load()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && saveOnFail {
			err = dsk.Save()
		}
		if err != nil {
			return err
		}
	}

	// command line overrides are applied whether or not the file existed
	if dsk.cl != nil {
		for k, p := range dsk.entries {
			if ok, v := dsk.cl.Get(k); ok {
				if err := p.Set(v); err != nil {
					return fmt.Errorf("prefs: %s: %w", k, err)
				}
			}
		}
	}

	return nil
}

func (dsk *Disk) load() error {
	f, err := os.Open(dsk.path)
	if err != nil {
		return fmt.Errorf("prefs: %w", err)
	}
	defer f.Close()

	var section string

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		l := strings.TrimSpace(scanner.Text())
		if l == "" || l[0] == ';' || l[0] == '#' {
			continue
		}

		if l[0] == '[' && l[len(l)-1] == ']' {
			section = strings.TrimSpace(l[1 : len(l)-1])
			continue
		}

		name, v, ok := strings.Cut(l, "=")
		if !ok || section == "" {
			continue
		}

		k := fmt.Sprintf("%s.%s", section, strings.TrimSpace(name))
		v = strings.TrimSpace(v)

		if p, ok := dsk.entries[k]; ok {
			if err := p.Set(v); err != nil {
				return fmt.Errorf("prefs: %s: %w", k, err)
			}
		} else {
			dsk.unknown[k] = v
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	return nil
}

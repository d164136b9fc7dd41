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

package logger

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Colorizer is an io.Writer that styles log output before passing it to the
// underlying writer. it is intended to be used with SetEcho(). the tag part
// of each line is emphasised and warnings stand out from ordinary entries.
type Colorizer struct {
	out     io.Writer
	tag     lipgloss.Style
	warning lipgloss.Style
}

// NewColorizer is the preferred method of initialisation for the Colorizer
// type.
func NewColorizer(out io.Writer) Colorizer {
	return Colorizer{
		out:     out,
		tag:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(6)),
		warning: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.ANSIColor(3)),
	}
}

func (c Colorizer) Write(p []byte) (int, error) {
	for _, l := range strings.Split(strings.TrimSuffix(string(p), "\n"), "\n") {
		tag, detail, ok := strings.Cut(l, ": ")
		if ok {
			if strings.HasPrefix(detail, "WARNING") {
				detail = c.warning.Render(detail)
			}
			l = c.tag.Render(tag) + ": " + detail
		}
		_, err := io.WriteString(c.out, l+"\n")
		if err != nil {
			return 0, err
		}
	}
	return len(p), nil
}

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

// Package memdump writes a graphviz representation of a Go value. The output
// can be rendered with the "dot" command.
package memdump

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/hode-port/hode/logger"

	"github.com/bradleyjkemp/memviz"
)

// Write the graph of the values to w.
func Write(w io.Writer, values ...any) {
	memviz.Map(w, values...)
}

// WriteFile writes the graph of the values to the named file.
func WriteFile(filename string, values ...any) error {
	var b bytes.Buffer
	Write(&b, values...)

	err := os.WriteFile(filename, b.Bytes(), 0644)
	if err != nil {
		return fmt.Errorf("memdump: %w", err)
	}

	logger.Logf(logger.Allow, "memdump", "written to %s (%d bytes)", filename, b.Len())

	return nil
}

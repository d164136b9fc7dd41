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

package wavwriter_test

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/hode-port/hode/test"
	"github.com/hode-port/hode/wavwriter"

	"github.com/go-audio/wav"
)

func TestBadParameters(t *testing.T) {
	_, err := wavwriter.New("x.wav", 0, 2)
	test.ExpectFailure(t, err)
	_, err = wavwriter.New("x.wav", 22050, 0)
	test.ExpectFailure(t, err)
}

func TestWriteAndDecode(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "out.wav")

	aw, err := wavwriter.New(fn, 22050, 2)
	test.DemandSuccess(t, err)

	samples := []int16{0, 1, -1, 1000, -32768, 32767}
	b := make([]byte, len(samples)*2)
	for i, s := range samples {
		binary.LittleEndian.PutUint16(b[i*2:], uint16(s))
	}

	// split the write part way through a sample
	n, err := aw.Write(b[:3])
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 3)
	n, err = aw.Write(b[3:])
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, len(b)-3)

	test.ExpectEquality(t, aw.Samples(), 3)
	test.DemandSuccess(t, aw.Close())

	f, err := os.Open(fn)
	test.DemandSuccess(t, err)
	defer f.Close()

	dec := wav.NewDecoder(f)
	test.DemandEquality(t, dec.IsValidFile(), true)

	buf, err := dec.FullPCMBuffer()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, int(dec.SampleRate), 22050)
	test.ExpectEquality(t, int(dec.NumChans), 2)
	test.ExpectEquality(t, int(dec.BitDepth), 16)

	test.DemandEquality(t, len(buf.Data), len(samples))
	for i, s := range samples {
		test.ExpectEquality(t, buf.Data[i], int(s), i)
	}
}

func TestBadFilename(t *testing.T) {
	aw, err := wavwriter.New(filepath.Join(t.TempDir(), "missing", "out.wav"), 22050, 1)
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, aw.Close())
}

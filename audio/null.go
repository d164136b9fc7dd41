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

package audio

import (
	"io"
	"sync"
	"time"

	"github.com/hode-port/hode/curated"
)

// NullDevice pulls audio at the rate a real device would and writes it to an
// optional sink. Useful when there is no audio hardware.
type NullDevice struct {
	// receives the audio data. can be nil
	Sink io.Writer

	crit sync.Mutex
	done chan struct{}
	wg   sync.WaitGroup
}

// Open implements the Device interface.
func (dev *NullDevice) Open(spec Spec, r io.Reader) error {
	dev.crit.Lock()
	defer dev.crit.Unlock()

	if dev.done != nil {
		return curated.Errorf(DeviceOpenFailed, "device already open")
	}
	if spec.Freq <= 0 || spec.Samples <= 0 || spec.Channels <= 0 {
		return curated.Errorf(DeviceOpenFailed, "invalid spec")
	}

	period := time.Duration(spec.Samples) * time.Second / time.Duration(spec.Freq)
	buf := make([]byte, spec.BufferBytes())

	dev.done = make(chan struct{})
	dev.wg.Add(1)

	go func(done chan struct{}) {
		defer dev.wg.Done()

		tck := time.NewTicker(period)
		defer tck.Stop()

		for {
			select {
			case <-done:
				return
			case <-tck.C:
				_, _ = io.ReadFull(r, buf)
				if dev.Sink != nil {
					_, _ = dev.Sink.Write(buf)
				}
			}
		}
	}(dev.done)

	return nil
}

// Close implements the Device interface.
func (dev *NullDevice) Close() error {
	dev.crit.Lock()
	defer dev.crit.Unlock()

	if dev.done == nil {
		return nil
	}

	close(dev.done)
	dev.wg.Wait()
	dev.done = nil

	return nil
}

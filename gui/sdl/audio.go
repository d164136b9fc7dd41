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

package sdl

import (
	"io"
	"sync"
	"time"

	"github.com/hode-port/hode/audio"
	"github.com/hode-port/hode/curated"
	"github.com/hode-port/hode/logger"

	"github.com/veandco/go-sdl2/sdl"
)

// QueueDevice is an audio.Device that uses the SDL audio queue. A goroutine
// reads from the audio.Bridge whenever the amount of queued audio falls below
// two device buffers.
//
// SDL must have been initialised with INIT_AUDIO before Open() is called.
type QueueDevice struct {
	crit sync.Mutex

	id   sdl.AudioDeviceID
	spec sdl.AudioSpec

	done chan struct{}
	wg   sync.WaitGroup
}

// Open implements the audio.Device interface.
func (dev *QueueDevice) Open(spec audio.Spec, r io.Reader) error {
	dev.crit.Lock()
	defer dev.crit.Unlock()

	if dev.done != nil {
		return curated.Errorf(audio.DeviceOpenFailed, "device already open")
	}

	desired := &sdl.AudioSpec{
		Freq:     int32(spec.Freq),
		Format:   sdl.AUDIO_S16LSB,
		Channels: uint8(spec.Channels),
		Samples:  uint16(spec.Samples),
	}

	var err error
	dev.id, err = sdl.OpenAudioDevice("", false, desired, &dev.spec, 0)
	if err != nil {
		return curated.Errorf(audio.DeviceOpenFailed, err)
	}

	logger.Logf(logger.Allow, "sdl", "audio: %dHz %d channels, %d samples", dev.spec.Freq, dev.spec.Channels, dev.spec.Samples)

	buf := make([]byte, int(dev.spec.Samples)*int(dev.spec.Channels)*2)
	low := uint32(len(buf) * 2)

	// check the queue four times for every buffer played
	period := time.Duration(dev.spec.Samples) * time.Second / time.Duration(dev.spec.Freq) / 4

	dev.done = make(chan struct{})
	dev.wg.Add(1)

	go func(id sdl.AudioDeviceID, done chan struct{}) {
		defer dev.wg.Done()

		tck := time.NewTicker(period)
		defer tck.Stop()

		for {
			for sdl.GetQueuedAudioSize(id) < low {
				_, _ = io.ReadFull(r, buf)
				if err := sdl.QueueAudio(id, buf); err != nil {
					logger.Log(logger.Allow, "sdl", err)
					break
				}
			}

			select {
			case <-done:
				return
			case <-tck.C:
			}
		}
	}(dev.id, dev.done)

	sdl.PauseAudioDevice(dev.id, false)

	return nil
}

// Freq returns the frequency of the opened device. SDL may open the device
// with a different frequency to the one requested.
func (dev *QueueDevice) Freq() int {
	dev.crit.Lock()
	defer dev.crit.Unlock()
	return int(dev.spec.Freq)
}

// Close implements the audio.Device interface.
func (dev *QueueDevice) Close() error {
	dev.crit.Lock()
	defer dev.crit.Unlock()

	if dev.done == nil {
		return nil
	}

	close(dev.done)
	dev.wg.Wait()
	dev.done = nil

	sdl.PauseAudioDevice(dev.id, true)
	sdl.ClearQueuedAudio(dev.id)
	sdl.CloseAudioDevice(dev.id)

	return nil
}

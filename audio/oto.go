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
	"fmt"
	"io"
	"sync"

	"github.com/hode-port/hode/curated"
	"github.com/hode-port/hode/logger"

	"github.com/ebitengine/oto/v3"
)

// oto allows only one context per process
var otoContext struct {
	once sync.Once
	ctx  *oto.Context
	spec Spec
	err  error
}

func getOtoContext(spec Spec) (*oto.Context, error) {
	otoContext.once.Do(func() {
		ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
			SampleRate:   spec.Freq,
			ChannelCount: spec.Channels,
			Format:       oto.FormatSignedInt16LE,
		})
		if err != nil {
			otoContext.err = err
			return
		}
		<-ready
		otoContext.ctx = ctx
		otoContext.spec = spec
	})

	if otoContext.err != nil {
		return nil, otoContext.err
	}

	if otoContext.spec.Freq != spec.Freq || otoContext.spec.Channels != spec.Channels {
		return nil, fmt.Errorf("context already created for %dHz %d channels", otoContext.spec.Freq, otoContext.spec.Channels)
	}

	return otoContext.ctx, nil
}

// OtoDevice plays audio with the oto library. The player reads from the
// Bridge on a goroutine managed by oto.
type OtoDevice struct {
	crit   sync.Mutex
	player *oto.Player
}

// Open implements the Device interface.
func (dev *OtoDevice) Open(spec Spec, r io.Reader) error {
	dev.crit.Lock()
	defer dev.crit.Unlock()

	if dev.player != nil {
		return curated.Errorf(DeviceOpenFailed, "device already open")
	}

	ctx, err := getOtoContext(spec)
	if err != nil {
		return curated.Errorf(DeviceOpenFailed, err)
	}

	dev.player = ctx.NewPlayer(r)
	dev.player.SetBufferSize(spec.BufferBytes())
	dev.player.Play()

	logger.Logf(logger.Allow, "audio", "oto: %dHz %d channels", spec.Freq, spec.Channels)

	return nil
}

// Close implements the Device interface.
func (dev *OtoDevice) Close() error {
	dev.crit.Lock()
	defer dev.crit.Unlock()

	if dev.player == nil {
		return nil
	}

	err := dev.player.Close()
	dev.player = nil
	if err != nil {
		return fmt.Errorf("audio: %w", err)
	}

	return nil
}

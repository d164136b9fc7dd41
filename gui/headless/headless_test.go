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

package headless_test

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/hode-port/hode/audio"
	"github.com/hode-port/hode/curated"
	"github.com/hode-port/hode/gui/headless"
	"github.com/hode-port/hode/logger"
	"github.com/hode-port/hode/offscreen"
	"github.com/hode-port/hode/scaler"
	"github.com/hode-port/hode/system"
	"github.com/hode-port/hode/test"
	"github.com/hode-port/hode/userinput"
)

const screenW, screenH = 256, 192

func newSystem(t *testing.T, widescreen bool) *headless.Headless {
	t.Helper()
	h := headless.NewHeadless(true)
	test.DemandSuccess(t, h.Init("test", screenW, screenH, false, widescreen, false))
	t.Cleanup(h.Destroy)
	return h
}

var _ system.System = (*headless.Headless)(nil)

func TestFillRectUpdateScreen(t *testing.T) {
	h := newSystem(t, false)

	pal := make([]uint8, 256*3)
	pal[5*3] = 255
	pal[5*3+1] = 128
	pal[5*3+2] = 0
	test.DemandSuccess(t, h.SetPalette(pal, 256, 8))

	test.DemandSuccess(t, h.FillRect(10, 20, 30, 40, 5))
	test.DemandSuccess(t, h.UpdateScreen(false))
	test.ExpectEquality(t, h.Frames(), 1)

	d := h.Display()
	test.DemandEquality(t, d.W, screenW)
	test.DemandEquality(t, d.H, screenH)

	test.ExpectEquality(t, d.At(10, 20), 0xff8000)
	test.ExpectEquality(t, d.At(39, 59), 0xff8000)
	test.ExpectEquality(t, d.At(9, 20), 0)
	test.ExpectEquality(t, d.At(40, 59), 0)
	test.ExpectEquality(t, d.At(39, 60), 0)

	// rectangle outside of the screen is reported and nothing is drawn
	err := h.FillRect(250, 0, 10, 10, 5)
	test.ExpectSuccess(t, curated.Is(err, offscreen.RectOutOfBounds))
}

func TestBogusScaler(t *testing.T) {
	h := newSystem(t, false)

	w := &strings.Builder{}
	logger.Clear()

	h.SetScaler("bogus", 2)
	test.ExpectEquality(t, h.Compositor().Scaler(), scaler.Nearest)

	logger.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "scaler: Unknown scaler 'bogus', using default 'nearest'\n")

	// multiplier is still applied
	test.DemandSuccess(t, h.UpdateScreen(false))
	test.ExpectEquality(t, h.Display().W, screenW*2)
	test.ExpectEquality(t, h.Display().H, screenH*2)
}

func TestWidescreen(t *testing.T) {
	h := newSystem(t, true)

	pal := make([]uint8, 256*3)
	pal[1*3+2] = 255
	test.DemandSuccess(t, h.SetPalette(pal, 256, 8))

	frame := make([]uint8, screenW*screenH)
	for i := range frame {
		frame[i] = 1
	}
	test.DemandSuccess(t, h.CopyRectWidescreen(screenW, screenH, frame, pal))

	err := h.CopyRectWidescreen(screenW/2, screenH, frame, pal)
	test.ExpectFailure(t, err)

	test.DemandSuccess(t, h.UpdateScreen(true))
	test.ExpectEquality(t, h.Display().At(100, 100), 0x0000ff)

	test.DemandSuccess(t, h.UpdateScreen(false))
	test.ExpectEquality(t, h.Display().At(100, 100), 0)
}

func TestEvents(t *testing.T) {
	h := newSystem(t, false)

	h.PushEvent(userinput.EventKeyboard{Key: "Right", Down: true})
	h.PushEvent(userinput.EventJoyButton{Button: 2, Down: true})
	h.ProcessEvents()
	test.ExpectEquality(t, h.Input().Mask, userinput.Right|userinput.Jump)
	test.ExpectEquality(t, h.Pad().Mask, userinput.Jump)

	h.ProcessEvents()
	test.ExpectEquality(t, h.Input().PrevMask, userinput.Right|userinput.Jump)

	h.PushEvent(userinput.EventKeyboard{Key: "S", Down: false})
	h.PushEvent(userinput.EventQuit{})
	h.ProcessEvents()
	test.ExpectSuccess(t, h.Input().Screenshot)
	test.ExpectSuccess(t, h.Input().Quit)
}

type syncBuffer struct {
	crit sync.Mutex
	buf  bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.crit.Lock()
	defer b.crit.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) Len() int {
	b.crit.Lock()
	defer b.crit.Unlock()
	return b.buf.Len()
}

func TestAudio(t *testing.T) {
	h := newSystem(t, false)
	test.ExpectEquality(t, h.OutputSampleRate(), 22050)

	tap := &syncBuffer{}
	h.SetAudioTap(tap)

	var crit sync.Mutex
	calls := 0
	cb := func(buf []int16) {
		crit.Lock()
		defer crit.Unlock()
		calls++
	}
	test.DemandSuccess(t, h.StartAudio(cb))

	deadline := time.Now().Add(2 * time.Second)
	for tap.Len() == 0 && time.Now().Before(deadline) {
		h.Sleep(10)
	}

	h.LockAudio()
	prev := h.SetAudioCallback(nil)
	h.UnlockAudio()
	test.ExpectSuccess(t, prev != nil)

	h.StopAudio()

	crit.Lock()
	test.ExpectSuccess(t, calls > 0)
	crit.Unlock()
	test.ExpectEquality(t, tap.Len()%audio.DefaultSpec.BufferBytes(), 0)
}

type failingDevice struct{}

func (failingDevice) Open(audio.Spec, io.Reader) error {
	return curated.Errorf(audio.DeviceOpenFailed, "no hardware")
}

func (failingDevice) Close() error {
	return nil
}

func TestAudioOpenFailure(t *testing.T) {
	h := newSystem(t, false)
	h.SetAudioDevice(failingDevice{})
	err := h.StartAudio(nil)
	test.ExpectSuccess(t, curated.Is(err, audio.DeviceOpenFailed))
}

func TestFatalError(t *testing.T) {
	h := headless.NewHeadless(false)
	test.DemandSuccess(t, h.Init("test", 16, 16, false, false, false))

	code := -1
	h.Exit = func(c int) {
		code = c
	}
	h.FatalError(errors.New("test failure"))
	test.ExpectEquality(t, code, 1)
	test.ExpectEquality(t, h.Display(), nil)
}

func TestTimeStamp(t *testing.T) {
	h := newSystem(t, false)
	a := h.GetTimeStamp()
	h.Sleep(20)
	b := h.GetTimeStamp()
	test.ExpectSuccess(t, b-a >= 20)
}

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

// Package headless implements the system.System interface without a window
// or audio hardware. Frames are composed to an in-memory surface and audio is
// pulled by an audio.NullDevice.
//
// Input events are supplied by the caller with PushEvent() and are applied on
// the next call to ProcessEvents().
package headless

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/hode-port/hode/audio"
	"github.com/hode-port/hode/compositor"
	"github.com/hode-port/hode/logger"
	"github.com/hode-port/hode/surface"
	"github.com/hode-port/hode/userinput"
)

// Headless is an implementation of system.System.
type Headless struct {
	title string

	cmp     *compositor.Compositor
	display *surface.Surface
	frames  int

	norm   *userinput.Normalizer
	events []userinput.Event

	bridge *audio.Bridge
	device audio.Device
	rate   int

	start time.Time

	// called by UpdateScreen() after every frame has been presented. can be
	// nil
	OnFrame func(*surface.Surface) error

	// called by FatalError(). defaults to os.Exit
	Exit func(code int)
}

// NewHeadless is the preferred method of initialisation for the Headless
// type. The joystick argument says whether joystick events should be
// honoured.
func NewHeadless(joystick bool) *Headless {
	h := &Headless{
		norm:   userinput.NewNormalizer(nil),
		bridge: audio.NewBridge(),
		rate:   audio.DefaultSpec.Freq,
		Exit:   os.Exit,
	}
	h.norm.Joystick = joystick
	return h
}

// Init implements the system.System interface.
func (h *Headless) Init(title string, w, hgt int, fullscreen bool, widescreen bool, yuv bool) error {
	cmp, err := compositor.New(w, hgt, compositor.Options{
		Widescreen: widescreen,
		Yuv:        yuv,
		Format:     surface.RGB888,
	})
	if err != nil {
		return fmt.Errorf("headless: %w", err)
	}

	h.title = title
	h.cmp = cmp
	h.start = time.Now()
	h.resize()

	logger.Logf(logger.Allow, "headless", "%s: %dx%d (widescreen: %v, yuv: %v)", title, w, hgt, widescreen, yuv)

	return nil
}

// resize the display surface if the multiplier has changed
func (h *Headless) resize() {
	w, hgt := h.cmp.DisplaySize()
	if h.display == nil || h.display.W != w || h.display.H != hgt {
		h.display = surface.NewSurface(w, hgt, h.cmp.Format())
	}
}

// Destroy implements the system.System interface.
func (h *Headless) Destroy() {
	h.StopAudio()
	h.cmp = nil
	h.display = nil
}

// SetScaler implements the system.System interface.
func (h *Headless) SetScaler(name string, multiplier int) {
	h.cmp.SetScaler(name, multiplier)
}

// SetGamma implements the system.System interface.
func (h *Headless) SetGamma(gamma float64) {
	h.cmp.SetGamma(gamma)
}

// SetPalette implements the system.System interface.
func (h *Headless) SetPalette(pal []uint8, n int, depth int) error {
	return h.cmp.SetPalette(pal, n, depth)
}

// ClearPalette implements the system.System interface.
func (h *Headless) ClearPalette() {
	h.cmp.ClearPalette()
}

// CopyRect implements the system.System interface.
func (h *Headless) CopyRect(x, y, w, hgt int, buf []uint8, pitch int) error {
	return h.cmp.CopyRect(x, y, w, hgt, buf, pitch)
}

// CopyYuv implements the system.System interface.
func (h *Headless) CopyYuv(w, hgt int, y []uint8, ypitch int, u []uint8, upitch int, v []uint8, vpitch int) error {
	return h.cmp.CopyYuv(w, hgt, y, ypitch, u, upitch, v, vpitch)
}

// FillRect implements the system.System interface.
func (h *Headless) FillRect(x, y, w, hgt int, color uint8) error {
	return h.cmp.FillRect(x, y, w, hgt, color)
}

// CopyRectWidescreen implements the system.System interface.
func (h *Headless) CopyRectWidescreen(w, hgt int, buf []uint8, pal []uint8) error {
	return h.cmp.CopyRectWidescreen(w, hgt, buf, pal)
}

// ShakeScreen implements the system.System interface.
func (h *Headless) ShakeScreen(dx, dy int) {
	h.cmp.ShakeScreen(dx, dy)
}

// UpdateScreen implements the system.System interface.
func (h *Headless) UpdateScreen(drawWidescreen bool) error {
	h.resize()
	h.cmp.Present(h.display, drawWidescreen)
	h.frames++
	if h.OnFrame != nil {
		if err := h.OnFrame(h.display); err != nil {
			return fmt.Errorf("headless: %w", err)
		}
	}
	return nil
}

// Display returns the surface containing the most recently presented frame.
func (h *Headless) Display() *surface.Surface {
	return h.display
}

// Compositor returns the compositor created by Init().
func (h *Headless) Compositor() *compositor.Compositor {
	return h.cmp
}

// Frames returns the number of calls to UpdateScreen().
func (h *Headless) Frames() int {
	return h.frames
}

// PushEvent queues an event for the next call to ProcessEvents().
func (h *Headless) PushEvent(ev userinput.Event) {
	h.events = append(h.events, ev)
}

// ProcessEvents implements the system.System interface.
func (h *Headless) ProcessEvents() {
	h.norm.Begin()
	for _, ev := range h.events {
		h.norm.Handle(ev)
	}
	h.events = h.events[:0]
	h.norm.End()
}

// Sleep implements the system.System interface.
func (h *Headless) Sleep(ms int) {
	time.Sleep(time.Duration(ms) * time.Millisecond)
}

// GetTimeStamp implements the system.System interface.
func (h *Headless) GetTimeStamp() uint32 {
	return uint32(time.Since(h.start).Milliseconds())
}

// SetAudioDevice sets the device used by StartAudio(). Must be called before
// StartAudio(). If no device is set then an audio.NullDevice is used.
func (h *Headless) SetAudioDevice(dev audio.Device) {
	h.device = dev
}

// SetAudioTap sets a writer that receives a copy of all audio data.
func (h *Headless) SetAudioTap(w io.Writer) {
	h.bridge.SetTap(w)
}

// StartAudio implements the system.System interface.
func (h *Headless) StartAudio(cb audio.Callback) error {
	if h.device == nil {
		h.device = &audio.NullDevice{}
	}
	h.bridge.SetCallback(cb)
	if err := h.device.Open(audio.DefaultSpec, h.bridge); err != nil {
		return err
	}
	h.rate = audio.DefaultSpec.Freq
	return nil
}

// StopAudio implements the system.System interface.
func (h *Headless) StopAudio() {
	if h.device == nil {
		return
	}
	if err := h.device.Close(); err != nil {
		logger.Log(logger.Allow, "headless", err)
	}
}

// LockAudio implements the system.System interface.
func (h *Headless) LockAudio() {
	h.bridge.Lock()
}

// UnlockAudio implements the system.System interface.
func (h *Headless) UnlockAudio() {
	h.bridge.Unlock()
}

// SetAudioCallback implements the system.System interface.
func (h *Headless) SetAudioCallback(cb audio.Callback) audio.Callback {
	return h.bridge.SetCallback(cb)
}

// OutputSampleRate implements the system.System interface.
func (h *Headless) OutputSampleRate() int {
	return h.rate
}

// Input implements the system.System interface.
func (h *Headless) Input() *userinput.PlayerInput {
	return &h.norm.Input
}

// Pad implements the system.System interface.
func (h *Headless) Pad() *userinput.PadState {
	return &h.norm.Pad
}

// FatalError implements the system.System interface.
func (h *Headless) FatalError(err error) {
	logger.Logf(logger.Allow, "headless", "fatal: %v", err)
	h.Destroy()
	h.Exit(1)
}

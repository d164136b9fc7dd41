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

// Package sdl implements the system.System interface with SDL.
//
// All video, input and timer functions must be called from the goroutine
// that called Init(). SDL requires that this is the main thread on some
// platforms, so Init() locks the calling goroutine to its OS thread. When
// built with the "assertions" tag, calls from other goroutines will panic.
package sdl

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/hode-port/hode/assert"
	"github.com/hode-port/hode/audio"
	"github.com/hode-port/hode/compositor"
	"github.com/hode-port/hode/logger"
	"github.com/hode-port/hode/surface"
	"github.com/hode-port/hode/userinput"

	"github.com/veandco/go-sdl2/sdl"
)

// SDL is an implementation of system.System.
type SDL struct {
	owner assert.Owner

	// screen contains the window and the surfaces
	scr *screen
	cmp *compositor.Compositor

	joysticks []*sdl.Joystick
	norm      *userinput.Normalizer

	bridge *audio.Bridge
	device audio.Device
	rate   int

	// value of sdl.GetTicks() when Init() was called
	start uint32

	// called by FatalError(). defaults to os.Exit
	Exit func(code int)
}

// NewSDL is the preferred method of initialisation for the SDL type.
func NewSDL() *SDL {
	return &SDL{
		norm:   userinput.NewNormalizer(nil),
		bridge: audio.NewBridge(),
		rate:   audio.DefaultSpec.Freq,
		Exit:   os.Exit,
	}
}

// Init implements the system.System interface.
func (s *SDL) Init(title string, w, h int, fullscreen bool, widescreen bool, yuv bool) error {
	// the SDL package calls LockOSThread() but we call it here too. it can't
	// hurt and we never unlock it in any case
	runtime.LockOSThread()
	s.owner.Claim()

	err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_JOYSTICK | sdl.INIT_AUDIO)
	if err != nil {
		return fmt.Errorf("sdl: %w", err)
	}

	var sdlVersion sdl.Version
	sdl.VERSION(&sdlVersion)
	logger.Logf(logger.Allow, "sdl", "version %d.%d.%d", sdlVersion.Major, sdlVersion.Minor, sdlVersion.Patch)

	s.cmp, err = compositor.New(w, h, compositor.Options{
		Widescreen: widescreen,
		Yuv:        yuv,
		Format:     surface.RGB888,
	})
	if err != nil {
		sdl.Quit()
		return fmt.Errorf("sdl: %w", err)
	}

	s.scr, err = newScreen(title, s.cmp, fullscreen)
	if err != nil {
		sdl.Quit()
		return fmt.Errorf("sdl: %w", err)
	}

	// add joysticks
	for i := 0; i < sdl.NumJoysticks(); i++ {
		joy := sdl.JoystickOpen(i)
		if joy != nil && joy.Attached() {
			logger.Logf(logger.Allow, "sdl", "joystick: %s", joy.Name())
			s.joysticks = append(s.joysticks, joy)
		}
	}
	if len(s.joysticks) == 0 {
		logger.Log(logger.Allow, "sdl", "no joysticks found")
	}
	s.norm.Joystick = len(s.joysticks) > 0

	s.start = sdl.GetTicks()

	return nil
}

// Destroy implements the system.System interface.
func (s *SDL) Destroy() {
	s.StopAudio()

	for _, joy := range s.joysticks {
		joy.Close()
	}
	s.joysticks = s.joysticks[:0]

	if s.scr != nil {
		s.scr.destroy()
		s.scr = nil
	}

	sdl.Quit()
	s.owner.Release()
}

// SetScaler implements the system.System interface.
func (s *SDL) SetScaler(name string, multiplier int) {
	s.owner.Assert("SetScaler")
	s.cmp.SetScaler(name, multiplier)
}

// SetGamma implements the system.System interface.
func (s *SDL) SetGamma(gamma float64) {
	s.owner.Assert("SetGamma")
	s.cmp.SetGamma(gamma)
}

// SetPalette implements the system.System interface.
func (s *SDL) SetPalette(pal []uint8, n int, depth int) error {
	s.owner.Assert("SetPalette")
	return s.cmp.SetPalette(pal, n, depth)
}

// ClearPalette implements the system.System interface.
func (s *SDL) ClearPalette() {
	s.owner.Assert("ClearPalette")
	s.cmp.ClearPalette()
}

// CopyRect implements the system.System interface.
func (s *SDL) CopyRect(x, y, w, h int, buf []uint8, pitch int) error {
	s.owner.Assert("CopyRect")
	return s.cmp.CopyRect(x, y, w, h, buf, pitch)
}

// CopyYuv implements the system.System interface.
func (s *SDL) CopyYuv(w, h int, y []uint8, ypitch int, u []uint8, upitch int, v []uint8, vpitch int) error {
	s.owner.Assert("CopyYuv")
	return s.cmp.CopyYuv(w, h, y, ypitch, u, upitch, v, vpitch)
}

// FillRect implements the system.System interface.
func (s *SDL) FillRect(x, y, w, h int, color uint8) error {
	s.owner.Assert("FillRect")
	return s.cmp.FillRect(x, y, w, h, color)
}

// CopyRectWidescreen implements the system.System interface.
func (s *SDL) CopyRectWidescreen(w, h int, buf []uint8, pal []uint8) error {
	s.owner.Assert("CopyRectWidescreen")
	return s.cmp.CopyRectWidescreen(w, h, buf, pal)
}

// ShakeScreen implements the system.System interface.
func (s *SDL) ShakeScreen(dx, dy int) {
	s.owner.Assert("ShakeScreen")
	s.cmp.ShakeScreen(dx, dy)
}

// UpdateScreen implements the system.System interface.
func (s *SDL) UpdateScreen(drawWidescreen bool) error {
	s.owner.Assert("UpdateScreen")
	if err := s.scr.update(drawWidescreen); err != nil {
		return fmt.Errorf("sdl: %w", err)
	}
	return nil
}

// Display returns the surface containing the most recently presented frame,
// before it was copied to the window.
func (s *SDL) Display() *surface.Surface {
	return s.scr.display
}

// Sleep implements the system.System interface.
func (s *SDL) Sleep(ms int) {
	if ms > 0 {
		sdl.Delay(uint32(ms))
	}
}

// GetTimeStamp implements the system.System interface.
func (s *SDL) GetTimeStamp() uint32 {
	return sdl.GetTicks() - s.start
}

// SetAudioDevice sets the device used by StartAudio(). Must be called before
// StartAudio(). If no device is set then an audio.OtoDevice is used.
func (s *SDL) SetAudioDevice(dev audio.Device) {
	s.device = dev
}

// SetAudioTap sets a writer that receives a copy of all audio data.
func (s *SDL) SetAudioTap(w io.Writer) {
	s.bridge.SetTap(w)
}

// StartAudio implements the system.System interface.
func (s *SDL) StartAudio(cb audio.Callback) error {
	if s.device == nil {
		s.device = &audio.OtoDevice{}
	}
	s.bridge.SetCallback(cb)
	if err := s.device.Open(audio.DefaultSpec, s.bridge); err != nil {
		return err
	}
	if q, ok := s.device.(*QueueDevice); ok {
		s.rate = q.Freq()
	} else {
		s.rate = audio.DefaultSpec.Freq
	}
	return nil
}

// StopAudio implements the system.System interface.
func (s *SDL) StopAudio() {
	if s.device == nil {
		return
	}
	if err := s.device.Close(); err != nil {
		logger.Log(logger.Allow, "sdl", err)
	}
}

// LockAudio implements the system.System interface.
func (s *SDL) LockAudio() {
	s.bridge.Lock()
}

// UnlockAudio implements the system.System interface.
func (s *SDL) UnlockAudio() {
	s.bridge.Unlock()
}

// SetAudioCallback implements the system.System interface.
func (s *SDL) SetAudioCallback(cb audio.Callback) audio.Callback {
	return s.bridge.SetCallback(cb)
}

// OutputSampleRate implements the system.System interface.
func (s *SDL) OutputSampleRate() int {
	return s.rate
}

// Input implements the system.System interface.
func (s *SDL) Input() *userinput.PlayerInput {
	return &s.norm.Input
}

// Pad implements the system.System interface.
func (s *SDL) Pad() *userinput.PadState {
	return &s.norm.Pad
}

// FatalError implements the system.System interface.
func (s *SDL) FatalError(err error) {
	logger.Logf(logger.Allow, "sdl", "fatal: %v", err)

	var window *sdl.Window
	var title string
	if s.scr != nil {
		window = s.scr.window
		title = s.scr.title
	}
	_ = sdl.ShowSimpleMessageBox(sdl.MESSAGEBOX_ERROR, title, err.Error(), window)

	s.Destroy()
	s.Exit(1)
}

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

// Package system defines the interface between the game engine and the host
// platform. The engine owns exactly one System, created by the caller and
// passed to the engine explicitly.
//
// Calls to the video, input and timer functions must all be made from the
// goroutine that called Init(). The audio Callback is called from a goroutine
// owned by the audio device. LockAudio() and UnlockAudio() protect state
// shared between the two.
package system

import (
	"github.com/hode-port/hode/audio"
	"github.com/hode-port/hode/userinput"
)

// System is implemented by the host backends.
type System interface {
	// Init creates the window and the surfaces for a w×h game screen. The
	// widescreen option allocates a backdrop that is drawn behind the game
	// screen. The yuv option allocates a background for CopyYuv().
	Init(title string, w, h int, fullscreen bool, widescreen bool, yuv bool) error

	// Destroy releases all resources allocated by Init().
	Destroy()

	// SetScaler selects a scaler by name and sets the display multiplier.
	// An empty name or a multiplier of zero leaves that setting unchanged.
	SetScaler(name string, multiplier int)

	// SetGamma changes the gamma correction applied to future palettes.
	SetGamma(gamma float64)

	// SetPalette sets the first n entries of the palette from RGB triplets of
	// depth bits per component.
	SetPalette(pal []uint8, n int, depth int) error

	// ClearPalette sets every palette entry to black.
	ClearPalette()

	// CopyRect copies palette indices to the offscreen buffer.
	CopyRect(x, y, w, h int, buf []uint8, pitch int) error

	// CopyYuv converts a planar 4:2:0 YUV frame to the background.
	CopyYuv(w, h int, y []uint8, ypitch int, u []uint8, upitch int, v []uint8, vpitch int) error

	// FillRect fills a rectangle of the offscreen buffer.
	FillRect(x, y, w, h int, color uint8) error

	// CopyRectWidescreen builds the widescreen backdrop from a full screen
	// of palette indices and a 256 entry RGB palette.
	CopyRectWidescreen(w, h int, buf []uint8, pal []uint8) error

	// ShakeScreen records a screen shake offset.
	ShakeScreen(dx, dy int)

	// UpdateScreen presents the offscreen buffer.
	UpdateScreen(drawWidescreen bool) error

	// ProcessEvents polls the host for input and updates the values returned
	// by Input() and Pad().
	ProcessEvents()

	// Sleep for a number of milliseconds.
	Sleep(ms int)

	// GetTimeStamp returns the number of milliseconds since Init().
	GetTimeStamp() uint32

	// StartAudio opens the audio device and starts calling the Callback.
	StartAudio(cb audio.Callback) error

	// StopAudio closes the audio device.
	StopAudio()

	// LockAudio prevents the Callback from being called until UnlockAudio().
	// Calls nest, and SetAudioCallback() can be called while locked.
	LockAudio()

	// UnlockAudio allows the Callback to be called.
	UnlockAudio()

	// SetAudioCallback replaces the Callback and returns the previous one.
	SetAudioCallback(cb audio.Callback) audio.Callback

	// OutputSampleRate returns the frequency of the audio device.
	OutputSampleRate() int

	// Input returns the input snapshot for the current frame.
	Input() *userinput.PlayerInput

	// Pad returns the gamepad state.
	Pad() *userinput.PadState

	// FatalError reports an unrecoverable error to the user and exits.
	FatalError(err error)
}

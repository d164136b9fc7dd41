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

// Package compositor turns the paletted offscreen buffer into true-colour
// display pixels. It owns the offscreen buffer, the palette and the surfaces
// used to build a frame:
//
//	texture:    screen sized, the resolved offscreen buffer
//	widescreen: screen sized, a blurred copy of a game frame (optional)
//	background: screen sized, a converted YUV frame (optional)
//
// The widescreen and background surfaces are both referred to as the
// backdrop. When a backdrop is in use, palette entry zero is transparent.
package compositor

import (
	"github.com/hode-port/hode/offscreen"
	"github.com/hode-port/hode/palette"
	"github.com/hode-port/hode/scaler"
	"github.com/hode-port/hode/surface"
)

// Sentinal errors.
const (
	WidescreenMismatch = "compositor: widescreen source is %dx%d, screen is %dx%d"
	YuvPlaneTooShort   = "compositor: yuv %s plane too short (%d bytes, %d required)"
	YuvTooLarge        = "compositor: yuv frame %dx%d does not fit %dx%d screen"
)

// Options for a new Compositor.
type Options struct {
	// allocate a widescreen backdrop surface
	Widescreen bool

	// allocate a background surface for YUV frames
	Yuv bool

	// pixel format of the display. if the zero value then surface.RGB888 is
	// used
	Format surface.PixelFormat

	// the registry of scalers. if nil then scaler.Default is used
	Scalers *scaler.Registry
}

// Compositor builds display frames from the offscreen buffer.
type Compositor struct {
	w, h   int
	format surface.PixelFormat

	offscreen *offscreen.Buffer
	palette   *palette.Engine
	scaler    *scaler.Selection

	texture    *surface.Surface
	widescreen *surface.Surface
	background *surface.Surface

	// widescreen source pixels before blurring. allocated with the
	// widescreen surface
	backdropSrc []uint32

	// one row of composed pixels before magnification
	line []uint32

	shakeDx, shakeDy int
}

// New is the preferred method of initialisation for the Compositor type. The
// only error returned is offscreen.AllocFailed, which should be considered
// fatal.
func New(w, h int, opts Options) (*Compositor, error) {
	buf, err := offscreen.New(w, h)
	if err != nil {
		return nil, err
	}

	if opts.Format == (surface.PixelFormat{}) {
		opts.Format = surface.RGB888
	}
	if opts.Scalers == nil {
		opts.Scalers = scaler.Default
	}

	cmp := &Compositor{
		w:         w,
		h:         h,
		format:    opts.Format,
		offscreen: buf,
		palette:   palette.NewEngine(opts.Format),
		scaler:    scaler.NewSelection(opts.Scalers),
		texture:   surface.NewSurface(w, h, opts.Format),
		line:      make([]uint32, w),
	}

	if opts.Widescreen {
		cmp.widescreen = surface.NewSurface(w, h, opts.Format)
		cmp.backdropSrc = make([]uint32, w*h)
	}
	if opts.Yuv {
		cmp.background = surface.NewSurface(w, h, opts.Format)
	}

	return cmp, nil
}

// Size returns the dimensions of the screen.
func (cmp *Compositor) Size() (int, int) {
	return cmp.w, cmp.h
}

// DisplaySize returns the dimensions of the screen after magnification by
// the scaler multiplier.
func (cmp *Compositor) DisplaySize() (int, int) {
	m := cmp.scaler.Multiplier()
	return cmp.w * m, cmp.h * m
}

// Format returns the pixel format of the surfaces.
func (cmp *Compositor) Format() surface.PixelFormat {
	return cmp.format
}

// Offscreen returns the offscreen buffer.
func (cmp *Compositor) Offscreen() *offscreen.Buffer {
	return cmp.offscreen
}

// Palette returns the current palette table.
func (cmp *Compositor) Palette() *palette.Table {
	return cmp.palette.Table()
}

// Texture returns the surface containing the most recently resolved frame.
func (cmp *Compositor) Texture() *surface.Surface {
	return cmp.texture
}

// Widescreen returns the widescreen surface. Returns nil if widescreen was
// not requested.
func (cmp *Compositor) Widescreen() *surface.Surface {
	return cmp.widescreen
}

// Background returns the YUV background surface. Returns nil if YUV was not
// requested.
func (cmp *Compositor) Background() *surface.Surface {
	return cmp.background
}

// Scaler returns the active scaler.
func (cmp *Compositor) Scaler() *scaler.Scaler {
	return cmp.scaler.Active()
}

// backdrop returns the surface drawn beneath the texture. nil if there is
// no backdrop.
func (cmp *Compositor) backdrop() *surface.Surface {
	if cmp.background != nil {
		return cmp.background
	}
	return cmp.widescreen
}

// SetScaler changes the active scaler and the display multiplier. See
// scaler.Selection.Set() for details.
func (cmp *Compositor) SetScaler(name string, multiplier int) {
	cmp.scaler.Set(name, multiplier)
}

// SetGamma changes the gamma correction. Takes effect on the next call to
// SetPalette() or CopyRectWidescreen().
func (cmp *Compositor) SetGamma(gamma float64) {
	cmp.palette.SetGamma(gamma)
}

// SetPalette updates the palette table. When there is a backdrop, entry zero
// is forced to be transparent. The active scaler's palette hook is applied
// last.
func (cmp *Compositor) SetPalette(pal []uint8, n int, depth int) error {
	if err := cmp.palette.SetPalette(pal, n, depth); err != nil {
		return err
	}

	tbl := cmp.palette.Table()
	if cmp.backdrop() != nil {
		tbl[0] = 0
	}

	if s := cmp.scaler.Active(); s != nil && s.Palette != nil {
		s.Palette((*[256]uint32)(tbl), cmp.format)
	}

	return nil
}

// ClearPalette sets every entry of the palette table to zero.
func (cmp *Compositor) ClearPalette() {
	cmp.palette.Clear()
}

// CopyRect copies palette indices into the offscreen buffer.
func (cmp *Compositor) CopyRect(x, y, w, h int, buf []uint8, pitch int) error {
	return cmp.offscreen.CopyRect(x, y, w, h, buf, pitch)
}

// FillRect fills a rectangle of the offscreen buffer.
func (cmp *Compositor) FillRect(x, y, w, h int, color uint8) error {
	return cmp.offscreen.FillRect(x, y, w, h, color)
}

// ShakeScreen records the screen shake offset. The offset is not used when
// composing the frame.
func (cmp *Compositor) ShakeScreen(dx, dy int) {
	cmp.shakeDx = dx
	cmp.shakeDy = dy
}

// Shake returns the most recent offset given to ShakeScreen().
func (cmp *Compositor) Shake() (int, int) {
	return cmp.shakeDx, cmp.shakeDy
}

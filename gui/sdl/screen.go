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
	"fmt"
	"unsafe"

	"github.com/hode-port/hode/compositor"
	"github.com/hode-port/hode/surface"

	"github.com/veandco/go-sdl2/sdl"
)

// screen presents frames from the compositor in a window. frames are
// composed into a staging SDL surface, which is then blitted to the window
// surface. the blit takes care of any difference in pixel format.
type screen struct {
	title  string
	window *sdl.Window
	cmp    *compositor.Compositor

	// staging surface and a surface.Surface view of its pixels
	staging *sdl.Surface
	display *surface.Surface

	fullscreen bool
}

func newScreen(title string, cmp *compositor.Compositor, fullscreen bool) (*screen, error) {
	scr := &screen{
		title:      title,
		cmp:        cmp,
		fullscreen: fullscreen,
	}

	w, h := cmp.DisplaySize()

	flags := uint32(sdl.WINDOW_SHOWN)
	if fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}

	var err error
	scr.window, err = sdl.CreateWindow(title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED, int32(w), int32(h), flags)
	if err != nil {
		return nil, err
	}

	err = scr.resize(w, h)
	if err != nil {
		scr.destroy()
		return nil, err
	}

	return scr, nil
}

// resize the staging surface and, if not fullscreen, the window
func (scr *screen) resize(w, h int) error {
	if scr.staging != nil {
		scr.staging.Free()
		scr.staging = nil
		scr.display = nil
	}

	staging, err := sdl.CreateRGBSurfaceWithFormat(0, int32(w), int32(h), 32, sdl.PIXELFORMAT_RGB888)
	if err != nil {
		return err
	}

	pix := staging.Pixels()
	if len(pix) < 4 {
		staging.Free()
		return fmt.Errorf("staging surface has no pixels")
	}

	scr.staging = staging
	scr.display = &surface.Surface{
		W:      w,
		H:      h,
		Pitch:  int(staging.Pitch) / 4,
		Pix:    unsafe.Slice((*uint32)(unsafe.Pointer(&pix[0])), len(pix)/4),
		Format: formatFromSDL(staging.Format),
	}

	if !scr.fullscreen {
		scr.window.SetSize(int32(w), int32(h))
	}

	return nil
}

func formatFromSDL(f *sdl.PixelFormat) surface.PixelFormat {
	return surface.PixelFormat{
		Rmask: f.Rmask, Rshift: f.Rshift,
		Gmask: f.Gmask, Gshift: f.Gshift,
		Bmask: f.Bmask, Bshift: f.Bshift,
		Amask: f.Amask, Ashift: f.Ashift,
	}
}

func (scr *screen) update(drawWidescreen bool) error {
	w, h := scr.cmp.DisplaySize()
	if w != scr.display.W || h != scr.display.H {
		if err := scr.resize(w, h); err != nil {
			return err
		}
	}

	if scr.staging.MustLock() {
		if err := scr.staging.Lock(); err != nil {
			return err
		}
	}
	scr.cmp.Present(scr.display, drawWidescreen)
	if scr.staging.MustLock() {
		scr.staging.Unlock()
	}

	ws, err := scr.window.GetSurface()
	if err != nil {
		return err
	}

	// centre the frame in the window. the window is larger than the frame
	// when fullscreen
	dst := &sdl.Rect{
		X: (ws.W - int32(w)) / 2,
		Y: (ws.H - int32(h)) / 2,
		W: int32(w),
		H: int32(h),
	}
	if scr.fullscreen {
		_ = ws.FillRect(nil, 0)
	}

	err = scr.staging.Blit(nil, ws, dst)
	if err != nil {
		return err
	}

	return scr.window.UpdateSurface()
}

func (scr *screen) destroy() {
	if scr.staging != nil {
		scr.staging.Free()
		scr.staging = nil
	}
	if scr.window != nil {
		_ = scr.window.Destroy()
		scr.window = nil
	}
}

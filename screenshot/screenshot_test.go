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

package screenshot_test

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/hode-port/hode/curated"
	"github.com/hode-port/hode/screenshot"
	"github.com/hode-port/hode/surface"
	"github.com/hode-port/hode/test"
)

func checkerboard() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	img.Set(1, 0, color.RGBA{G: 255, A: 255})
	img.Set(0, 1, color.RGBA{B: 255, A: 255})
	img.Set(1, 1, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	return img
}

func TestScaleNearest(t *testing.T) {
	img := screenshot.Scale(checkerboard(), 4, 4, screenshot.FilterNearest)
	test.ExpectEquality(t, img.Bounds().Dx(), 4)
	test.ExpectEquality(t, img.RGBAAt(0, 0), color.RGBA{R: 255, A: 255})
	test.ExpectEquality(t, img.RGBAAt(1, 1), color.RGBA{R: 255, A: 255})
	test.ExpectEquality(t, img.RGBAAt(3, 0), color.RGBA{G: 255, A: 255})
	test.ExpectEquality(t, img.RGBAAt(0, 3), color.RGBA{B: 255, A: 255})
	test.ExpectEquality(t, img.RGBAAt(3, 3), color.RGBA{R: 255, G: 255, B: 255, A: 255})
}

func TestSavePNG(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "shot.png")
	test.DemandSuccess(t, screenshot.Save(checkerboard(), fn, 6, 6, screenshot.FilterNearest))

	f, err := os.Open(fn)
	test.DemandSuccess(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, img.Bounds().Dx(), 6)
	test.ExpectEquality(t, img.Bounds().Dy(), 6)

	r, g, b, _ := img.At(5, 5).RGBA()
	test.ExpectEquality(t, r>>8, uint32(255))
	test.ExpectEquality(t, g>>8, uint32(255))
	test.ExpectEquality(t, b>>8, uint32(255))
}

func TestSaveJPEG(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "shot.jpg")
	test.ExpectSuccess(t, screenshot.Save(checkerboard(), fn, 0, 0, screenshot.FilterBilinear))
	_, err := os.Stat(fn)
	test.ExpectSuccess(t, err)
}

func TestUnsupported(t *testing.T) {
	err := screenshot.Save(checkerboard(), filepath.Join(t.TempDir(), "shot.gif"), 0, 0, screenshot.FilterNearest)
	test.ExpectEquality(t, curated.Is(err, screenshot.UnsupportedFormat), true)

	err = screenshot.Save(checkerboard(), filepath.Join(t.TempDir(), "missing", "shot.png"), 0, 0, screenshot.FilterNearest)
	test.ExpectEquality(t, curated.Is(err, screenshot.SaveFailed), true)
}

func TestTake(t *testing.T) {
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	t.Cleanup(func() { os.Chdir(wd) })
	test.DemandSuccess(t, os.Chdir(t.TempDir()))

	surf := surface.NewSurface(4, 3, surface.RGB888)
	surf.Fill(surface.RGB888.MapRGB(10, 20, 30))

	path := <-screenshot.Take(surf, "test", 2)
	if path == "" {
		t.Fatal("screenshot not saved")
	}

	f, err := os.Open(path)
	test.DemandSuccess(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, img.Bounds().Dx(), 8)
	test.ExpectEquality(t, img.Bounds().Dy(), 6)
}

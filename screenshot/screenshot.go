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

// Package screenshot saves the contents of a display surface to disk. The
// image can be scaled before saving. The format is decided by the filename
// extension: ".png" or ".jpg".
package screenshot

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/hode-port/hode/curated"
	"github.com/hode-port/hode/logger"
	"github.com/hode-port/hode/paths"
	"github.com/hode-port/hode/surface"

	"golang.org/x/image/draw"
)

// Sentinal errors.
const (
	SaveFailed        = "screenshot: save failed: %v"
	UnsupportedFormat = "screenshot: unsupported format: %s"
)

// Filter selects the scaling method.
type Filter int

// List of valid Filter values.
const (
	FilterNearest Filter = iota
	FilterBilinear
	FilterCatmullRom
)

func (f Filter) scaler() draw.Interpolator {
	switch f {
	case FilterBilinear:
		return draw.BiLinear
	case FilterCatmullRom:
		return draw.CatmullRom
	}
	return draw.NearestNeighbor
}

// Scale returns a copy of the image scaled to the specified size.
func Scale(src image.Image, w, h int, filter Filter) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	filter.scaler().Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// Save the image to the specified path. If the width and height are not
// zero then the image is scaled to that size first.
func Save(img image.Image, path string, w, h int, filter Filter) error {
	if w > 0 && h > 0 {
		b := img.Bounds()
		if b.Dx() != w || b.Dy() != h {
			img = Scale(img, w, h, filter)
		}
	}

	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".png" && ext != ".jpg" && ext != ".jpeg" {
		return curated.Errorf(UnsupportedFormat, ext)
	}

	f, err := os.Create(path)
	if err != nil {
		return curated.Errorf(SaveFailed, err)
	}

	switch ext {
	case ".png":
		err = png.Encode(f, img)
	default:
		err = jpeg.Encode(f, img, &jpeg.Options{Quality: 100})
	}
	if err != nil {
		_ = f.Close()
		return curated.Errorf(SaveFailed, err)
	}

	err = f.Close()
	if err != nil {
		return curated.Errorf(SaveFailed, err)
	}

	return nil
}

// Take copies the surface and saves it in the background to a uniquely named
// PNG file in the screenshots resource directory. The image is scaled by the
// specified factor. The returned channel receives the path of the file, or
// an empty string if the save failed. Errors are logged.
func Take(surf *surface.Surface, name string, scale int) <-chan string {
	done := make(chan string, 1)

	// copy the image before starting the goroutine. the surface will be
	// changed by the next frame
	img := surf.Image()

	go func() {
		path, err := paths.ResourcePath("screenshots", fmt.Sprintf("%s.png", paths.UniqueFilename("screenshot", name)))
		if err != nil {
			logger.Logf(logger.Allow, "screenshot", "save failed: %v", err)
			done <- ""
			return
		}

		scale = max(1, scale)
		b := img.Bounds()
		err = Save(img, path, b.Dx()*scale, b.Dy()*scale, FilterNearest)
		if err != nil {
			logger.Log(logger.Allow, "screenshot", err)
			done <- ""
			return
		}

		logger.Logf(logger.Allow, "screenshot", "saved to %s", path)
		done <- path
	}()

	return done
}

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

// Package demo drives a system.System with a generated scene. It is the
// smallest useful "game": a scrolling backdrop, a sprite moved by the player
// input and an optional sound clip.
package demo

import (
	"github.com/hode-port/hode/system"
	"github.com/hode-port/hode/userinput"
)

// Dimensions of the game screen.
const (
	Width  = 256
	Height = 192
)

// size of the player sprite in pixels
const spriteSize = 12

// palette entries used by the scene
const colorSprite = 255

// Scene is the game state for the demo.
type Scene struct {
	sys system.System

	frame []uint8
	pal   []uint8

	// position of the player sprite
	x, y int

	// number of frames drawn
	count int
}

// NewScene is the preferred method of initialisation for the Scene type.
func NewScene(sys system.System) *Scene {
	scn := &Scene{
		sys:   sys,
		frame: make([]uint8, Width*Height),
		pal:   make([]uint8, 256*3),
		x:     (Width - spriteSize) / 2,
		y:     (Height - spriteSize) / 2,
	}

	// six bit palette. a blue ramp for the sky followed by a rust ramp for
	// the ground. the last entry is the sprite
	for i := range 256 {
		var r, g, b uint8
		if i < 128 {
			r, g, b = 0, uint8(i/4), uint8(16+i*47/127)
		} else {
			j := i - 128
			r, g, b = uint8(20+j*43/127), uint8(8+j*20/127), 4
		}
		scn.pal[i*3] = r
		scn.pal[i*3+1] = g
		scn.pal[i*3+2] = b
	}
	scn.pal[colorSprite*3] = 63
	scn.pal[colorSprite*3+1] = 63
	scn.pal[colorSprite*3+2] = 40

	return scn
}

// Palette returns the palette data used by the scene. Values are six bit.
func (scn *Scene) Palette() []uint8 {
	return scn.pal
}

// Position returns the position of the player sprite.
func (scn *Scene) Position() (int, int) {
	return scn.x, scn.y
}

// Frames returns the number of frames drawn.
func (scn *Scene) Frames() int {
	return scn.count
}

// Setup sends the palette to the system.
func (scn *Scene) Setup() error {
	return scn.sys.SetPalette(scn.pal, 256, 6)
}

// Update moves the sprite according to the current input.
func (scn *Scene) Update() {
	inp := scn.sys.Input()

	speed := 2
	if inp.Pressed(userinput.Run) {
		speed = 4
	}

	if inp.Pressed(userinput.Left) {
		scn.x -= speed
	}
	if inp.Pressed(userinput.Right) {
		scn.x += speed
	}
	if inp.Pressed(userinput.Up) {
		scn.y -= speed
	}
	if inp.Pressed(userinput.Down) {
		scn.y += speed
	}
	scn.x = max(0, min(scn.x, Width-spriteSize))
	scn.y = max(0, min(scn.y, Height-spriteSize))

	if inp.JustPressed(userinput.Shoot) {
		scn.sys.ShakeScreen(0, 2)
	}
}

// Draw the scene and present it.
func (scn *Scene) Draw(widescreen bool) error {
	horizon := Height * 2 / 3

	// sky rows use the blue ramp. the ground scrolls with the frame count
	for y := range Height {
		row := scn.frame[y*Width : (y+1)*Width]
		if y < horizon {
			c := uint8(y * 127 / horizon)
			for x := range row {
				row[x] = c
			}
		} else {
			for x := range row {
				row[x] = uint8(128 + ((x+scn.count)/8+(y-horizon)/4)%2*32 + (y-horizon)*63/(Height-horizon))
			}
		}
	}

	err := scn.sys.CopyRect(0, 0, Width, Height, scn.frame, Width)
	if err != nil {
		return err
	}

	err = scn.sys.FillRect(scn.x, scn.y, spriteSize, spriteSize, colorSprite)
	if err != nil {
		return err
	}

	if widescreen {
		// the backdrop palette is eight bit
		pal := make([]uint8, len(scn.pal))
		for i, v := range scn.pal {
			pal[i] = v<<2 | v>>4
		}
		err = scn.sys.CopyRectWidescreen(Width, Height, scn.frame, pal)
		if err != nil {
			return err
		}
	}

	err = scn.sys.UpdateScreen(widescreen)
	if err != nil {
		return err
	}

	scn.count++

	return nil
}

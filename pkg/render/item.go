// Package render draws the ornament stage with Ebitengine: a perspective
// projection of every object's current transform onto the window, discs
// for decorations and textured cards for photos. It implements the
// scene.Handle boundary; the choreography core never sees Ebitengine.
package render

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/teslashibe/go-ornament/pkg/scene"
)

// Item is one drawable object. The stage writes transforms through Apply;
// Draw reads them. A photo may be added from a file-picker goroutine while
// the game loop runs, so access is guarded.
type Item struct {
	mu sync.Mutex
	tr scene.Transform

	// Exactly one of these is set.
	tint  color.RGBA    // decoration disc color
	photo *ebiten.Image // photo card texture
}

// NewDecoration creates a disc item with the given tint.
func NewDecoration(tint color.RGBA) *Item {
	return &Item{tint: tint}
}

// NewPhoto creates a photo card item from a decoded image.
func NewPhoto(img *ebiten.Image) *Item {
	return &Item{photo: img}
}

// Apply implements scene.Handle.
func (it *Item) Apply(tr scene.Transform) {
	it.mu.Lock()
	it.tr = tr
	it.mu.Unlock()
}

// transform returns the last applied transform.
func (it *Item) transform() scene.Transform {
	it.mu.Lock()
	defer it.mu.Unlock()
	return it.tr
}

// backgroundColor is the night-sky window fill.
var backgroundColor = color.RGBA{R: 8, G: 10, B: 22, A: 255}

// shade darkens a color with distance so depth reads even without fog.
func shade(c color.RGBA, depth float64) color.RGBA {
	f := 1 - (depth-30)/120
	if f > 1 {
		f = 1
	}
	if f < 0.35 {
		f = 0.35
	}
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: c.A,
	}
}

// palette is the decoration color rotation.
var palette = []color.RGBA{
	{R: 214, G: 48, B: 49, A: 255},  // red
	{R: 255, G: 177, B: 66, A: 255}, // gold
	{R: 85, G: 239, B: 196, A: 255}, // mint
	{R: 116, G: 185, B: 255, A: 255}, // ice blue
	{R: 253, G: 121, B: 168, A: 255}, // pink
	{R: 162, G: 155, B: 254, A: 255}, // violet
}

// PaletteColor returns the i-th decoration color, cycling.
func PaletteColor(i int) color.RGBA {
	return palette[i%len(palette)]
}

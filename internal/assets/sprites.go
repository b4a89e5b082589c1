// internal/assets/sprites.go
package assets

import (
	"image/color"
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-survivors/internal/config"
	"go-survivors/internal/defs"
)

// SpriteDefinition describes one sheet in the sprite table: fixed-size
// frames laid out horizontally on a single image.
type SpriteDefinition struct {
	FrameWidth  int
	FrameHeight int
	FrameCount  int
	Image       *ebiten.Image
}

// SpriteManager holds the immutable sprite table the render pass reads.
// Sheets are generated procedurally, so the game runs without any asset
// files on disk.
type SpriteManager struct {
	sprites map[string]*SpriteDefinition
	warned  map[string]bool
}

func NewSpriteManager() *SpriteManager {
	m := &SpriteManager{
		sprites: make(map[string]*SpriteDefinition),
		warned:  make(map[string]bool),
	}
	m.sprites["player"] = makeBlobSheet(config.PlayerRadius, config.PlayerColor)
	for id, def := range defs.EnemyLibrary {
		m.sprites[id] = makeBlobSheet(def.Radius, def.Color)
	}
	return m
}

// Get looks up a sheet by name. Unknown names are reported once and
// otherwise ignored; callers fall back to flat shapes.
func (m *SpriteManager) Get(name string) (*SpriteDefinition, bool) {
	def, ok := m.sprites[name]
	if !ok && !m.warned[name] {
		m.warned[name] = true
		log.Printf("sprites: no sheet named %q", name)
	}
	return def, ok
}

// makeBlobSheet draws a two-frame idle animation: a filled circle with
// a lighter off-center eye, pulsing slightly between frames.
func makeBlobSheet(radius float64, body color.RGBA) *SpriteDefinition {
	const frames = 2
	size := int(math.Ceil(radius*2)) + 4
	sheet := ebiten.NewImage(size*frames, size)

	eye := color.RGBA{245, 245, 245, 255}
	for f := 0; f < frames; f++ {
		cx := float32(f*size + size/2)
		cy := float32(size / 2)
		r := float32(radius)
		if f == 1 {
			r *= 0.92
		}
		vector.DrawFilledCircle(sheet, cx, cy, r, body, true)
		vector.DrawFilledCircle(sheet, cx+r*0.35, cy-r*0.25, r*0.18, eye, true)
	}
	return &SpriteDefinition{
		FrameWidth:  size,
		FrameHeight: size,
		FrameCount:  frames,
		Image:       sheet,
	}
}

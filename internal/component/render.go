// component/render.go
package component

import "image/color"

// Renderable — drawing data for an entity
type Renderable struct {
	Color     color.RGBA
	Radius    float32
	HasStroke bool
	// Sprite names a sheet in the sprite table; empty falls back to a
	// flat circle.
	Sprite string
}

// internal/system/render.go
package system

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-survivors/internal/assets"
	"go-survivors/internal/config"
	"go-survivors/internal/entity"
	"go-survivors/internal/types"
)

// RenderSystem projects the world snapshot onto the screen. It is a
// pure read pass: nothing here mutates a simulation collection. The
// camera keeps the player at screen center.
type RenderSystem struct {
	ecs     *entity.ECS
	sprites *assets.SpriteManager
}

func NewRenderSystem(ecs *entity.ECS, sprites *assets.SpriteManager) *RenderSystem {
	return &RenderSystem{ecs: ecs, sprites: sprites}
}

func (s *RenderSystem) Draw(screen *ebiten.Image, playerID types.EntityID) {
	screen.Fill(config.BackgroundColor)

	playerPos, ok := s.ecs.Positions[playerID]
	if !ok {
		return
	}
	camX := playerPos.X - config.ScreenWidth/2
	camY := playerPos.Y - config.ScreenHeight/2

	// Ground items under everything, then projectiles, enemies, player.
	for _, id := range entity.SortedIDs(s.ecs.GroundItems) {
		s.drawEntity(screen, id, camX, camY)
	}
	for _, id := range entity.SortedIDs(s.ecs.Projectiles) {
		s.drawEntity(screen, id, camX, camY)
	}
	for _, id := range entity.SortedIDs(s.ecs.Enemies) {
		s.drawEntity(screen, id, camX, camY)
	}
	s.drawEntity(screen, playerID, camX, camY)
}

func (s *RenderSystem) drawEntity(screen *ebiten.Image, id types.EntityID, camX, camY float64) {
	pos := s.ecs.Positions[id]
	renderable := s.ecs.Renderables[id]
	if pos == nil || renderable == nil {
		return
	}
	x := pos.X - camX
	y := pos.Y - camY
	if x < -64 || y < -64 || x > config.ScreenWidth+64 || y > config.ScreenHeight+64 {
		return
	}

	if renderable.Sprite != "" {
		if sheet, ok := s.sprites.Get(renderable.Sprite); ok {
			s.drawSprite(screen, sheet, id, x, y)
			return
		}
	}
	vector.DrawFilledCircle(screen, float32(x), float32(y), renderable.Radius, renderable.Color, true)
	if renderable.HasStroke {
		vector.StrokeCircle(screen, float32(x), float32(y), renderable.Radius, 1, config.TextLightColor, true)
	}
}

func (s *RenderSystem) drawSprite(screen *ebiten.Image, sheet *assets.SpriteDefinition, id types.EntityID, x, y float64) {
	frame := int(s.ecs.Tick/30) % sheet.FrameCount
	sx := frame * sheet.FrameWidth
	src := sheet.Image.SubImage(image.Rect(sx, 0, sx+sheet.FrameWidth, sheet.FrameHeight)).(*ebiten.Image)

	op := &ebiten.DrawImageOptions{}
	if facing, ok := s.ecs.Facings[id]; ok && !facing.Right {
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(float64(sheet.FrameWidth), 0)
	}
	op.GeoM.Translate(x-float64(sheet.FrameWidth)/2, y-float64(sheet.FrameHeight)/2)
	screen.DrawImage(src, op)
}

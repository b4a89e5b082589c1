// internal/ui/player_health_indicator.go
package ui

import (
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-survivors/internal/config"
)

const (
	healthBarWidth  = 220
	healthBarHeight = 16
	healthBarBorder = 1
)

// PlayerHealthIndicator draws the player's health bar.
type PlayerHealthIndicator struct {
	X, Y     float32
	fontFace font.Face
}

func NewPlayerHealthIndicator(x, y float32, fontFace font.Face) *PlayerHealthIndicator {
	return &PlayerHealthIndicator{X: x, Y: y, fontFace: fontFace}
}

func (i *PlayerHealthIndicator) Draw(screen *ebiten.Image, health, maxHealth int) {
	vector.DrawFilledRect(screen, i.X, i.Y, healthBarWidth, healthBarHeight, config.HealthBarBack, true)
	if maxHealth > 0 {
		fill := float32(health) / float32(maxHealth) * healthBarWidth
		if fill > 0 {
			vector.DrawFilledRect(screen, i.X, i.Y, fill, healthBarHeight, config.HealthBarFill, true)
		}
	}
	vector.StrokeRect(screen, i.X, i.Y, healthBarWidth, healthBarHeight, healthBarBorder, config.PanelStrokeColor, true)

	label := strconv.Itoa(health) + "/" + strconv.Itoa(maxHealth)
	bounds := text.BoundString(i.fontFace, label)
	tx := int(i.X) + (healthBarWidth-bounds.Dx())/2
	ty := int(i.Y) + healthBarHeight - 3
	text.Draw(screen, label, i.fontFace, tx, ty, config.TextLightColor)
}

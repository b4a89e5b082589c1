// internal/ui/player_level_indicator.go
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
	xpBarWidth  = 220
	xpBarHeight = 10
	borderWidth = 1
)

// PlayerLevelIndicator draws the player's level and XP progress bar.
type PlayerLevelIndicator struct {
	X, Y     float32
	fontFace font.Face
}

func NewPlayerLevelIndicator(x, y float32, fontFace font.Face) *PlayerLevelIndicator {
	return &PlayerLevelIndicator{X: x, Y: y, fontFace: fontFace}
}

func (i *PlayerLevelIndicator) Draw(screen *ebiten.Image, level, currentXP, xpToNext int) {
	vector.StrokeRect(screen, i.X, i.Y, xpBarWidth, xpBarHeight, borderWidth, config.PanelStrokeColor, true)
	if xpToNext > 0 {
		progress := float32(currentXP) / float32(xpToNext)
		if progress > 1 {
			progress = 1
		}
		if progress > 0 {
			vector.DrawFilledRect(screen, i.X+borderWidth, i.Y+borderWidth,
				(xpBarWidth-2*borderWidth)*progress, xpBarHeight-2*borderWidth, config.XPBarFill, true)
		}
	}
	text.Draw(screen, "Lv "+strconv.Itoa(level), i.fontFace, int(i.X)+xpBarWidth+8, int(i.Y)+xpBarHeight, config.TextLightColor)
}

// internal/ui/upgrade_prompt.go
package ui

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-survivors/internal/config"
	"go-survivors/internal/defs"
)

const (
	cardWidth   = 260
	cardHeight  = 180
	cardGap     = 30
	cardTextPad = 14
)

// UpgradePrompt renders the pending level-up choices as cards and maps
// clicks back to upgrade ids. It is the only UI element that feeds an
// event into the simulation, via the caller passing the clicked id to
// Game.SelectUpgrade.
type UpgradePrompt struct {
	faces *Faces
}

func NewUpgradePrompt(faces *Faces) *UpgradePrompt {
	return &UpgradePrompt{faces: faces}
}

// Draw dims the frozen world and lays the cards out centered.
func (p *UpgradePrompt) Draw(screen *ebiten.Image, offered []string, levels map[string]int) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight,
		color.RGBA{0, 0, 0, 140}, true)

	title := "Choose an upgrade"
	bounds := text.BoundString(p.faces.Title, title)
	text.Draw(screen, title, p.faces.Title, (config.ScreenWidth-bounds.Dx())/2, 160, config.TextLightColor)

	for idx, id := range offered {
		def, ok := defs.UpgradeLibrary[id]
		if !ok {
			continue
		}
		x, y := p.cardOrigin(idx, len(offered))
		p.drawCard(screen, def, levels[id], x, y)
	}
}

func (p *UpgradePrompt) drawCard(screen *ebiten.Image, def defs.UpgradeDefinition, level int, x, y float32) {
	vector.DrawFilledRect(screen, x, y, cardWidth, cardHeight, config.PanelBackColor, true)
	vector.StrokeRect(screen, x, y, cardWidth, cardHeight, 2, rarityColor(def.Rarity), true)

	tx := int(x) + cardTextPad
	text.Draw(screen, def.Name, p.faces.Title, tx, int(y)+36, config.TextLightColor)
	text.Draw(screen, string(def.Rarity)+"  ·  level "+strconv.Itoa(level), p.faces.Regular, tx, int(y)+60, rarityColor(def.Rarity))

	for li, line := range wrapText(defs.FormatDescription(def), p.faces.Regular, cardWidth-2*cardTextPad) {
		text.Draw(screen, line, p.faces.Regular, tx, int(y)+92+li*18, config.TextLightColor)
	}
}

// Hit returns the upgrade id of the card under (mx, my), if any.
func (p *UpgradePrompt) Hit(mx, my int, offered []string) (string, bool) {
	for idx, id := range offered {
		x, y := p.cardOrigin(idx, len(offered))
		if mx >= int(x) && mx <= int(x)+cardWidth && my >= int(y) && my <= int(y)+cardHeight {
			return id, true
		}
	}
	return "", false
}

func (p *UpgradePrompt) cardOrigin(idx, count int) (float32, float32) {
	total := count*cardWidth + (count-1)*cardGap
	left := (config.ScreenWidth - total) / 2
	x := float32(left + idx*(cardWidth+cardGap))
	y := float32(config.ScreenHeight/2 - cardHeight/2)
	return x, y
}

func rarityColor(r defs.Rarity) color.RGBA {
	switch r {
	case defs.RarityUnique:
		return config.UniqueColor
	case defs.RarityRare:
		return config.RareColor
	default:
		return config.CommonColor
	}
}

// wrapText breaks a string into lines that fit the given pixel width.
func wrapText(s string, face font.Face, width int) []string {
	var lines []string
	line := ""
	for _, word := range strings.Fields(s) {
		candidate := word
		if line != "" {
			candidate = line + " " + word
		}
		if text.BoundString(face, candidate).Dx() > width && line != "" {
			lines = append(lines, line)
			line = word
			continue
		}
		line = candidate
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}

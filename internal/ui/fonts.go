// internal/ui/fonts.go
package ui

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Faces bundles the two text sizes the HUD uses.
type Faces struct {
	Regular font.Face
	Title   font.Face
}

// NewFaces parses the embedded Go font. No font file ships with the
// game.
func NewFaces() (*Faces, error) {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse embedded font: %w", err)
	}
	regular, err := opentype.NewFace(tt, &opentype.FaceOptions{Size: 14, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, fmt.Errorf("failed to create regular face: %w", err)
	}
	title, err := opentype.NewFace(tt, &opentype.FaceOptions{Size: 22, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, fmt.Errorf("failed to create title face: %w", err)
	}
	return &Faces{Regular: regular, Title: title}, nil
}

// internal/state/menu_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"

	"go-survivors/internal/config"
	"go-survivors/internal/ui"
)

// MenuState is the title screen.
type MenuState struct {
	sm    *StateMachine
	faces *ui.Faces
}

func NewMenuState(sm *StateMachine, faces *ui.Faces) *MenuState {
	return &MenuState{sm: sm, faces: faces}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		m.sm.SetState(NewGameState(m.sm, m.faces))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	title := "SURVIVORS"
	bounds := text.BoundString(m.faces.Title, title)
	text.Draw(screen, title, m.faces.Title, (config.ScreenWidth-bounds.Dx())/2, config.ScreenHeight/2-40, config.TextLightColor)

	hint := "press SPACE to start"
	hintBounds := text.BoundString(m.faces.Regular, hint)
	text.Draw(screen, hint, m.faces.Regular, (config.ScreenWidth-hintBounds.Dx())/2, config.ScreenHeight/2, config.TextLightColor)
}

func (m *MenuState) Exit() {}

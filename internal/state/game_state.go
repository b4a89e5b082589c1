// internal/state/game_state.go
package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"

	"go-survivors/internal/app"
	"go-survivors/internal/assets"
	"go-survivors/internal/config"
	"go-survivors/internal/system"
	"go-survivors/internal/types"
	"go-survivors/internal/ui"
)

// GameState runs the live game: it samples input into a snapshot, ticks
// the simulation once per frame, and draws the world and HUD.
type GameState struct {
	sm    *StateMachine
	game  *app.Game
	faces *ui.Faces

	renderSystem    *system.RenderSystem
	healthIndicator *ui.PlayerHealthIndicator
	levelIndicator  *ui.PlayerLevelIndicator
	upgradePrompt   *ui.UpgradePrompt
}

func NewGameState(sm *StateMachine, faces *ui.Faces) *GameState {
	gameLogic := app.NewGame(0)
	sprites := assets.NewSpriteManager()

	return &GameState{
		sm:              sm,
		game:            gameLogic,
		faces:           faces,
		renderSystem:    system.NewRenderSystem(gameLogic.ECS, sprites),
		healthIndicator: ui.NewPlayerHealthIndicator(16, 16, faces.Regular),
		levelIndicator:  ui.NewPlayerLevelIndicator(16, 40, faces.Regular),
		upgradePrompt:   ui.NewUpgradePrompt(faces),
	}
}

func (g *GameState) Enter() {}

func (g *GameState) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyF9) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return
	}
	if g.game.IsGameOver() {
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			g.sm.SetState(NewGameState(g.sm, g.faces))
		}
		return
	}

	if len(g.game.PendingSelection) > 0 {
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			x, y := ebiten.CursorPosition()
			if id, ok := g.upgradePrompt.Hit(x, y, g.game.PendingSelection); ok {
				g.game.SelectUpgrade(id)
			}
		}
		return
	}

	g.game.Update(sampleInput())
}

// sampleInput reads the devices once and hands the simulation a plain
// snapshot; the core never touches ebiten.
func sampleInput() types.InputState {
	cx, cy := ebiten.CursorPosition()
	return types.InputState{
		MoveUp:    ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyUp),
		MoveDown:  ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyDown),
		MoveLeft:  ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyLeft),
		MoveRight: ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyRight),
		Reveal:    ebiten.IsKeyPressed(ebiten.KeyTab),
		PointerX:  float64(cx),
		PointerY:  float64(cy),
	}
}

func (g *GameState) Draw(screen *ebiten.Image) {
	g.renderSystem.Draw(screen, g.game.PlayerID)

	playerState := g.game.ECS.PlayerState[g.game.PlayerID]
	health := g.game.ECS.Healths[g.game.PlayerID]
	if health != nil {
		g.healthIndicator.Draw(screen, health.Current, health.Max)
	}
	if playerState != nil {
		g.levelIndicator.Draw(screen, playerState.Level, playerState.CurrentXP, playerState.XPToNextLevel)
	}

	if len(g.game.PendingSelection) > 0 {
		g.upgradePrompt.Draw(screen, g.game.PendingSelection, g.game.UpgradeState)
	}
	if g.game.IsGameOver() {
		g.drawGameOver(screen)
	}
	if ebiten.IsKeyPressed(ebiten.KeyTab) {
		g.drawRevealOverlay(screen)
	}
}

func (g *GameState) drawGameOver(screen *ebiten.Image) {
	msg := "YOU DIED"
	bounds := text.BoundString(g.faces.Title, msg)
	text.Draw(screen, msg, g.faces.Title, (config.ScreenWidth-bounds.Dx())/2, config.ScreenHeight/2, config.HostileShotColor)

	hint := "press R to restart"
	hintBounds := text.BoundString(g.faces.Regular, hint)
	text.Draw(screen, hint, g.faces.Regular, (config.ScreenWidth-hintBounds.Dx())/2, config.ScreenHeight/2+24, config.TextLightColor)
}

// drawRevealOverlay shows tick and population counters while Tab is
// held. Diagnostics only; reads nothing the render pass doesn't.
func (g *GameState) drawRevealOverlay(screen *ebiten.Image) {
	ecs := g.game.ECS
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf(
		"tick %d  enemies %d  shots %d  drops %d  kills %d",
		ecs.Tick, len(ecs.Enemies), len(ecs.Projectiles), len(ecs.GroundItems), g.game.KillCount,
	), 16, config.ScreenHeight-24)
}

func (g *GameState) Exit() {}

// Package window hosts the simulation loop in an ebiten window.
package window

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/pkg/errors"
	"golang.org/x/image/font/basicfont"

	"github.com/sheikhrachel/gol-canvas/input"
	"github.com/sheikhrachel/gol-canvas/sim"
	"github.com/sheikhrachel/gol-canvas/utils"
)

// hudColor is drawn over the cells, so it has to stand out against both cell colors
var hudColor = color.RGBA{R: 255, G: 255, B: 0, A: 255}

// Game implements ebiten.Game around a sim.Loop
type Game struct {
	loop    *sim.Loop
	config  utils.Config
	input   poller
	events  []input.Event
	showHUD bool
}

// NewGame wraps loop for display with the given config
func NewGame(config utils.Config, loop *sim.Loop) *Game {
	return &Game{
		loop:    loop,
		config:  config,
		input:   newPoller(ebitenInput{}),
		events:  make([]input.Event, 0, 8),
		showHUD: config.Window.ShowHUD,
	}
}

// Update runs one frame of the simulation
func (g *Game) Update() error {
	g.events = g.input.poll(g.events[:0])
	if g.input.hudToggled {
		g.showHUD = !g.showHUD
	}
	if g.loop.Frame(g.events) {
		return ebiten.Termination
	}
	return nil
}

// Draw renders the grid, then the HUD if enabled
func (g *Game) Draw(screen *ebiten.Image) {
	g.loop.Render(screenCanvas{screen: screen})

	if g.showHUD {
		g.drawHUD(screen)
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	state := "paused"
	if g.loop.Running() {
		state = "running"
	}
	status := fmt.Sprintf("Gen: %d | Living: %d | %s", g.loop.Generation(), g.loop.Grid().CountLivingCells(), state)
	help := "SPACE run/pause | LMB paint | H hud | ESC quit"
	perf := fmt.Sprintf("TPS: %.1f", ebiten.ActualTPS())

	text.Draw(screen, status, basicfont.Face7x13, 6, 16, hudColor)
	text.Draw(screen, help, basicfont.Face7x13, 6, 32, hudColor)
	text.Draw(screen, perf, basicfont.Face7x13, 6, 48, hudColor)
}

// Layout keeps the logical screen at the configured window size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.config.Window.Width, g.config.Window.Height
}

// Run opens the window and blocks until it is closed or the exit shortcut is pressed
func Run(config utils.Config, loop *sim.Loop) error {
	ebiten.SetWindowSize(config.Window.Width, config.Window.Height)
	ebiten.SetWindowTitle(config.Window.Title)
	ebiten.SetTPS(config.Window.TPS)

	if err := ebiten.RunGame(NewGame(config, loop)); err != nil && !errors.Is(err, ebiten.Termination) {
		return errors.Wrap(err, "[Run] window failed")
	}
	return nil
}

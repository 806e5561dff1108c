//go:build ebiten

package app

import (
	"image/color"
	"log"
	"time"

	"lifegrid/internal/core"
	"lifegrid/internal/render"
	"lifegrid/internal/sim"
	"lifegrid/internal/ui"
	pcore "lifegrid/pkg/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a sim.Controller to the ebiten.Game interface.
type Game struct {
	ctrl    *sim.Controller
	clock   *core.Clock
	painter *render.GridPainter
	hud     *ui.HUD
	overlay *ui.Overlay

	view          Viewport
	dims          core.Dims
	width, height int
	background    color.Color
}

// New constructs a Game sized for the configured window.
func New(cfg *Config, logger *log.Logger) *Game {
	sc := cfg.Sim()
	g := &Game{
		clock:      core.NewClock(),
		view:       cfg.Viewport(),
		dims:       core.Dims{Rows: sc.Rows, Cols: sc.Cols},
		width:      cfg.Width,
		height:     cfg.Height,
		overlay:    ui.NewOverlay(),
		background: color.RGBA{R: 8, G: 8, B: 10, A: 255},
	}
	g.painter = render.NewGridPainter(sc.Rows, sc.Cols, render.DefaultPalette())
	g.ctrl = sim.New(sc, g.clock, g.onRender)
	g.ctrl.SetLogger(logger)
	g.hud = ui.NewHUD(g.ctrl, g.view.ReservedBand)
	g.ctrl.Render()
	return g
}

func (g *Game) onRender(grid *pcore.Grid) {
	g.dims = core.Dims{Rows: grid.Rows(), Cols: grid.Cols()}
	g.painter.Update(grid)
}

// Update handles per-frame input and advances the simulation clock.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.ctrl.StartStop()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.ctrl.Step()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.ctrl.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.ctrl.Randomize()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.overlay.ToggleGrid()
	}

	consumed := g.hud.Update(g.width)

	mx, my := ebiten.CursorPosition()
	row, col, ok := g.view.CellAt(mx, my, g.dims)
	g.overlay.Hover(row, col, ok)
	if ok && !consumed && inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.ctrl.ToggleAt(row, col)
	}

	g.clock.Advance(time.Second / time.Duration(ebiten.TPS()))
	return nil
}

// Draw renders the control band and the board beneath it.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.background)
	cell := g.view.cell()
	g.painter.Blit(screen, 0, g.view.ReservedBand, cell)
	g.overlay.Draw(screen, g.dims, g.view.ReservedBand, cell)
	g.hud.Draw(screen)
}

// Layout tracks the window size; any change rebuilds the board to fit.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		dims := g.view.Dims(outsideWidth, outsideHeight)
		g.ctrl.Resize(dims.Rows, dims.Cols)
	}
	return outsideWidth, outsideHeight
}

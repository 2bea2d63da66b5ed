//go:build ebiten

package app

import (
	"image/color"
	"time"

	"golife/internal/core"
	"golife/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts a core.World to the ebiten.Game interface. Each tick it
// rasterizes the live set into a fixed viewport and paints one filled
// rectangle per live cell.
type Game struct {
	world   core.World
	painter *render.GridPainter
	pacer   *core.Pacer
	view    core.Size
	cells   []uint8

	onColor  color.Color
	offColor color.Color

	cellSize int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game showing the given viewport of the world.
func New(world core.World, view core.Size, cellSize, rate int, seed int64) *Game {
	return &Game{
		world:    world,
		painter:  render.NewGridPainter(view.W, view.H),
		pacer:    core.NewPacer(rate),
		view:     view,
		cells:    make([]uint8, view.W*view.H),
		onColor:  color.RGBA{G: 255, A: 255},
		offColor: color.White,
		cellSize: cellSize,
		seed:     seed,
	}
}

// Reset reinitializes the world state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.world.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame input and advances the world at the configured
// generation rate.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	if g.tickOnce {
		g.world.Step()
		g.tickOnce = false
		return nil
	}
	if g.paused {
		return nil
	}
	for i := g.pacer.Due(); i > 0; i-- {
		g.world.Step()
	}
	return nil
}

// Draw renders the current generation.
func (g *Game) Draw(screen *ebiten.Image) {
	render.Rasterize(g.cells, g.world.Live(), g.view)
	g.painter.Blit(screen, g.cells, g.onColor, g.offColor, g.cellSize)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.view.W * g.cellSize, g.view.H * g.cellSize
}

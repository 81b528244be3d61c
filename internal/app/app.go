//go:build ebiten

package app

import (
	"fmt"
	"log"

	"falling-sand/internal/render"
	"falling-sand/internal/sims/sand"
	"falling-sand/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var brushEbitenKeys = map[ebiten.Key]rune{
	ebiten.KeyC:      'c',
	ebiten.KeyW:      'w',
	ebiten.KeyS:      's',
	ebiten.KeyDigit3: '3',
	ebiten.KeyV:      'v',
	ebiten.KeyD:      'd',
	ebiten.KeyO:      'o',
	ebiten.KeyG:      'g',
}

// Game adapts the sandbox to the ebiten.Game interface.
type Game struct {
	sim     *sand.Sandbox
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD

	scale    int
	hudWidth int
	paused   bool
	tickOnce bool
	debug    bool
}

// New constructs a Game for the provided sandbox.
func New(sim *sand.Sandbox, scale, hudWidth int) *Game {
	size := sim.Size()
	if scale <= 0 {
		scale = 1
	}
	if hudWidth < 0 {
		hudWidth = 0
	}
	return &Game{
		sim:      sim,
		painter:  render.NewGridPainter(size.W, size.H),
		overlay:  ui.NewOverlay(sim, scale),
		hud:      ui.NewHUD(sim, hudWidth),
		scale:    scale,
		hudWidth: hudWidth,
	}
}

// Update handles per-frame logic and advances the simulation.
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
		g.sim.Clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.debug = !g.debug
	}
	g.handleTuning()
	g.handleBrush()

	g.overlay.Update()
	g.hud.Update(g.viewWidth())

	if !g.paused || g.tickOnce {
		g.sim.Step()
		g.tickOnce = false
	}
	g.hud.SetStatus(g.status()...)
	return nil
}

func (g *Game) handleTuning() {
	cfg := g.sim.Config()
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		g.sim.SetIntParameter("threads", cfg.Threads+1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		g.sim.SetIntParameter("threads", cfg.Threads-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		g.sim.SetIntParameter("cluster_radius", cfg.ClusterRadius-1)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		g.sim.SetIntParameter("cluster_radius", cfg.ClusterRadius+1)
	}
}

func (g *Game) handleBrush() {
	mx, my := ebiten.CursorPosition()
	x, y, ok := CellAt(mx, my, g.scale, g.sim.Size())
	if !ok {
		return
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		g.sim.Place(sand.Sand, x, y)
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		g.sim.Place(sand.Water, x, y)
	}
	for key, r := range brushEbitenKeys {
		if ebiten.IsKeyPressed(key) {
			g.sim.Brush(BrushKeys[r], x, y)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyI) {
		log.Printf("(%d,%d) %s", x, y, g.sim.Query(x, y))
	}
}

func (g *Game) status() []string {
	// Ticks, mass and scheduler settings come from the parameter snapshot.
	lines := []string{
		fmt.Sprintf("tps %.0f  fps %.0f", ebiten.ActualTPS(), ebiten.ActualFPS()),
	}
	if g.paused {
		lines = append(lines, "paused")
	}
	if g.debug {
		lines = append(lines, "debug view")
	}
	return lines
}

func (g *Game) viewWidth() int { return g.sim.Size().W * g.scale }

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.debug {
		g.painter.Blit(screen, g.sim.DebugBuffer(), g.scale)
	} else {
		g.painter.Blit(screen, g.sim.ColorBuffer(), g.scale)
	}
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.viewWidth(), g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W*g.scale + g.hudWidth, s.H * g.scale
}

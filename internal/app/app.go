//go:build ebiten

package app

import (
	"log"
	"time"

	"sandgarden/internal/core"
	"sandgarden/internal/render"
	"sandgarden/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var toolKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
	ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

// Game adapts a core simulation to the ebiten.Game interface.
type Game struct {
	sim     core.Sim
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	clock   *core.FixedStep

	scale    int
	paused   bool
	tickOnce bool
	seed     int64

	follow  bool
	pending *core.Size
}

// New constructs a Game for the provided simulation using cfg for scale,
// pacing and layout.
func New(sim core.Sim, cfg *Config) *Game {
	scale := cfg.Scale
	if scale <= 0 {
		scale = 1
	}
	size := sim.Size()
	_, resizable := sim.(core.Resizer)
	return &Game{
		sim:     sim,
		painter: render.NewGridPainter(size.W, size.H),
		overlay: ui.NewOverlay(sim, scale),
		hud:     ui.NewHUD(sim, cfg.HUDWidth),
		clock:   core.NewFixedStep(cfg.TPS),
		scale:   scale,
		seed:    cfg.Seed,
		follow:  cfg.Follow && resizable,
	}
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
}

// Update handles per-frame input and advances the simulation by however many
// fixed ticks are due.
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
	for i, key := range toolKeys {
		if inpututil.IsKeyJustPressed(key) {
			g.hud.SelectTool(i)
		}
	}

	g.overlay.Update()
	g.hud.Update(g.viewWidth())
	g.applyResize()
	g.paint()

	steps := g.clock.Due()
	if g.paused {
		steps = 0
	}
	if g.tickOnce {
		steps = 1
		g.tickOnce = false
	}
	for i := 0; i < steps; i++ {
		g.sim.Step()
	}
	return nil
}

func (g *Game) paint() {
	placer, ok := g.sim.(core.Placer)
	if !ok || !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if g.hud.Contains(mx, my) {
		return
	}
	tool := g.hud.Tool()
	if tool == "" {
		return
	}
	placer.Paint(mx/g.scale, my/g.scale, tool)
}

func (g *Game) applyResize() {
	if g.pending == nil {
		return
	}
	next := *g.pending
	g.pending = nil
	r, ok := g.sim.(core.Resizer)
	if !ok {
		return
	}
	if err := r.Resize(next.W, next.H); err != nil {
		log.Printf("resize to %dx%d: %v", next.W, next.H, err)
		return
	}
	g.sim.Reset(g.seed)
	g.painter.Resize(next.W, next.H)
}

// Draw renders the current simulation state.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.sim, g.scale)
	g.overlay.Draw(screen)
	g.hud.Draw(screen, g.viewWidth(), g.scale)
}

// Layout returns the logical screen size. When the grid follows the window a
// size change is queued and applied on the next Update.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.follow {
		cols := (outsideWidth - g.hud.Width()) / g.scale
		rows := outsideHeight / g.scale
		size := g.sim.Size()
		if cols > 0 && rows > 0 && (cols != size.W || rows != size.H) {
			g.pending = &core.Size{W: cols, H: rows}
		}
		return outsideWidth, outsideHeight
	}
	s := g.sim.Size()
	return s.W*g.scale + g.hud.Width(), s.H * g.scale
}

func (g *Game) viewWidth() int {
	return g.sim.Size().W * g.scale
}

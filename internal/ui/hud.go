//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"sandgarden/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

type statsProvider interface {
	Tick() int
	Dropped() int
}

var (
	panelBG    = color.RGBA{R: 16, G: 16, B: 20, A: 255}
	titleFG    = color.RGBA{R: 200, G: 200, B: 210, A: 255}
	labelFG    = color.RGBA{R: 220, G: 220, B: 230, A: 255}
	mutedFG    = color.RGBA{R: 160, G: 160, B: 170, A: 255}
	buttonBG   = color.RGBA{R: 54, G: 56, B: 64, A: 255}
	buttonOff  = color.RGBA{R: 32, G: 34, B: 40, A: 255}
	buttonFG   = color.RGBA{R: 230, G: 230, B: 240, A: 255}
	disabledFG = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	selectedBG = color.RGBA{R: 92, G: 84, B: 48, A: 255}
)

// HUD renders the tool and parameter panel to the right of the sim view.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int
	offsetX    int
	title      string

	toolbar   *Toolbar
	toolRects []image.Rectangle

	controls *controls
	rows     []controlRow

	pixel *ebiten.Image
}

type controlRow struct {
	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

// NewHUD constructs a HUD for sim with a panel of the given width. A
// non-positive width hides the panel but keeps tool selection working.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{
		sim:      sim,
		width:    width,
		title:    buildTitle(sim),
		toolbar:  NewToolbar(sim),
		controls: newControls(sim),
	}
	if width > 0 {
		h.pixel = ebiten.NewImage(1, 1)
		h.pixel.Fill(color.White)
	}
	h.layout()
	return h
}

// Width returns the panel width in screen pixels.
func (h *HUD) Width() int {
	if h == nil {
		return 0
	}
	return h.width
}

// Tool returns the currently selected brush.
func (h *HUD) Tool() string {
	if h == nil {
		return ""
	}
	return h.toolbar.Tool()
}

// SelectTool selects the brush at index i.
func (h *HUD) SelectTool(i int) {
	if h != nil {
		h.toolbar.Select(i)
	}
}

// Contains reports whether the screen point lies on the panel.
func (h *HUD) Contains(x, y int) bool {
	return h != nil && h.width > 0 && x >= h.offsetX && x < h.offsetX+h.width && y >= 0
}

// Update refreshes parameter values and handles clicks on the panel.
func (h *HUD) Update(offsetX int) {
	if h == nil {
		return
	}
	h.offsetX = offsetX
	if provider, ok := h.sim.(core.ParameterProvider); ok {
		h.controls.refresh(provider.Parameters())
	}
	h.handleInput()
}

func (h *HUD) handleInput() {
	if h.width <= 0 || !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	if !h.Contains(mx, my) {
		return
	}
	p := image.Pt(mx-h.offsetX, my)
	for i, r := range h.toolRects {
		if p.In(r) {
			h.toolbar.Select(i)
			return
		}
	}
	for i, row := range h.rows {
		if p.In(row.minusRect) {
			h.controls.adjust(i, -1)
			return
		}
		if p.In(row.plusRect) {
			h.controls.adjust(i, 1)
			return
		}
	}
}

// Draw paints the panel at offsetX, sized to the scaled sim height.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.sim.Size().H * scale
	if height <= 0 {
		return
	}
	if h.panel == nil || h.lastHeight != height {
		if h.panel != nil {
			h.panel.Dispose()
		}
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(panelBG)

	face := basicfont.Face7x13
	y := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, y, titleFG)
	if stats, ok := h.sim.(statsProvider); ok {
		line := fmt.Sprintf("tick %d  dropped %d", stats.Tick(), stats.Dropped())
		text.Draw(h.panel, line, face, panelPadding, y+infoSpacing/2, mutedFG)
	}

	for i, tool := range h.toolbar.Tools() {
		r := h.toolRects[i]
		bg := buttonBG
		if i == h.toolbar.Selected() {
			bg = selectedBG
		}
		h.fillRect(r, bg)
		text.Draw(h.panel, fmt.Sprintf("%d %s", i+1, tool), face, r.Min.X+6, r.Min.Y+labelBaseline-6, buttonFG)
	}

	for i, row := range h.rows {
		s := &h.controls.states[i]
		labelY := row.top + labelBaseline
		text.Draw(h.panel, s.control.Label, face, panelPadding, labelY, labelFG)
		fg := labelFG
		if !s.hasValue {
			fg = mutedFG
		}
		valueX := row.minusRect.Min.X - buttonGap - text.BoundString(face, s.value).Dx()
		text.Draw(h.panel, s.value, face, valueX, labelY, fg)

		_, canDec := h.controls.target(i, -1)
		_, canInc := h.controls.target(i, 1)
		h.drawButton(row.minusRect, "-", canDec)
		h.drawButton(row.plusRect, "+", canInc)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) fillRect(r image.Rectangle, col color.RGBA) {
	if h.pixel == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(r.Dx()), float64(r.Dy()))
	op.GeoM.Translate(float64(r.Min.X), float64(r.Min.Y))
	op.ColorScale.ScaleWithColor(col)
	h.panel.DrawImage(h.pixel, op)
}

func (h *HUD) drawButton(r image.Rectangle, label string, enabled bool) {
	bg, fg := buttonBG, buttonFG
	if !enabled {
		bg, fg = buttonOff, disabledFG
	}
	h.fillRect(r, bg)

	face := basicfont.Face7x13
	b := text.BoundString(face, label)
	x := r.Min.X + (r.Dx()-b.Dx())/2
	y := r.Min.Y + (r.Dy()-b.Dy())/2 + b.Dy()
	text.Draw(h.panel, label, face, x, y, fg)
}

func (h *HUD) layout() {
	if h.width <= 0 {
		return
	}
	top := toolsTop
	h.toolRects = h.toolRects[:0]
	for range h.toolbar.Tools() {
		h.toolRects = append(h.toolRects, image.Rect(panelPadding, top, h.width-panelPadding, top+toolHeight))
		top += toolHeight + buttonGap
	}
	top += panelPadding

	h.rows = h.rows[:0]
	for range h.controls.states {
		buttonY := top + (lineHeight-buttonSize)/2
		plus := image.Rect(h.width-panelPadding-buttonSize, buttonY, h.width-panelPadding, buttonY+buttonSize)
		minus := image.Rect(plus.Min.X-buttonGap-buttonSize, buttonY, plus.Min.X-buttonGap, buttonY+buttonSize)
		h.rows = append(h.rows, controlRow{top: top, minusRect: minus, plusRect: plus})
		top += lineHeight
	}
}

func buildTitle(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Controls"
	}
	name := sim.Name()
	return strings.ToUpper(name[:1]) + name[1:]
}

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	toolHeight     = 22
	headerBaseline = 18
	labelBaseline  = 24
	infoSpacing    = 36
	toolsTop       = panelPadding + headerBaseline + infoSpacing
)

//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	hudHeight  = 20
	hudPadding = 6
)

// HUD draws a status bar across the top of the window. H toggles it.
type HUD struct {
	width   int
	visible bool
	panel   *ebiten.Image
}

// NewHUD constructs a HUD spanning width pixels.
func NewHUD(width int) *HUD {
	if width <= 0 {
		width = 1
	}
	return &HUD{width: width, visible: true}
}

// Update handles the visibility toggle.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		h.visible = !h.visible
	}
}

// Draw paints the status bar over the grid.
func (h *HUD) Draw(screen *ebiten.Image, st Status) {
	if h == nil || !h.visible {
		return
	}
	if h.panel == nil {
		h.panel = ebiten.NewImage(h.width, hudHeight)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 200})
	text.Draw(h.panel, st.String(), basicfont.Face7x13, hudPadding, 14, color.RGBA{R: 220, G: 220, B: 230, A: 255})
	screen.DrawImage(h.panel, nil)
}

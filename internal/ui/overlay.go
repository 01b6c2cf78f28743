//go:build ebiten

package ui

import (
	"image/color"
	"strconv"

	"karnaugh/pkg/kmap"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Overlay outlines the selected cover's groups and labels cells with their
// minterm numbers.
type Overlay struct {
	scale      int
	layout     kmap.Layout
	cover      []kmap.Implicant
	showGroups bool
	showLabels bool

	pixel *ebiten.Image
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(scale int) *Overlay {
	o := &Overlay{scale: scale, showGroups: true, showLabels: true}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// SetCover replaces the groups to outline.
func (o *Overlay) SetCover(l kmap.Layout, cover []kmap.Implicant) {
	o.layout = l
	o.cover = cover
}

// Update toggles the overlay layers.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		o.showGroups = !o.showGroups
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		o.showLabels = !o.showLabels
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	if o.showLabels {
		o.drawLabels(screen, scale)
	}
	if !o.showGroups {
		return
	}
	for i, p := range o.cover {
		col := groupColor(i)
		inset := 2 + 3*(i%4)
		thickness := 2
		if scale < 24 {
			inset, thickness = 1+i%3, 1
		}
		for _, e := range groupEdges(o.layout, p) {
			o.drawEdge(screen, e, scale, inset, thickness, col)
		}
	}
}

func (o *Overlay) drawLabels(screen *ebiten.Image, scale int) {
	if scale < 20 {
		return
	}
	face := basicfont.Face7x13
	fg := color.RGBA{R: 150, G: 150, B: 165, A: 255}
	for r := 0; r < o.layout.Rows; r++ {
		for c := 0; c < o.layout.Cols; c++ {
			label := strconv.Itoa(o.layout.Minterm(r, c))
			text.Draw(screen, label, face, c*scale+4, r*scale+scale-5, fg)
		}
	}
}

func (o *Overlay) drawEdge(screen *ebiten.Image, e cellEdge, scale, inset, thickness int, col color.RGBA) {
	x0, y0 := e.Col*scale+inset, e.Row*scale+inset
	span := scale - 2*inset
	if span <= 0 {
		return
	}
	switch e.Side {
	case sideTop:
		o.fillRect(screen, x0, y0, span, thickness, col)
	case sideBottom:
		o.fillRect(screen, x0, y0+span-thickness, span, thickness, col)
	case sideLeft:
		o.fillRect(screen, x0, y0, thickness, span, col)
	case sideRight:
		o.fillRect(screen, x0+span-thickness, y0, thickness, span, col)
	}
}

func (o *Overlay) fillRect(screen *ebiten.Image, x, y, w, h int, col color.RGBA) {
	if o.pixel == nil || w <= 0 || h <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(w), float64(h))
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorM.Scale(float64(col.R)/255.0, float64(col.G)/255.0, float64(col.B)/255.0, float64(col.A)/255.0)
	screen.DrawImage(o.pixel, op)
}

var groupPalette = []color.RGBA{
	{R: 230, G: 80, B: 70, A: 230},
	{R: 70, G: 160, B: 230, A: 230},
	{R: 90, G: 200, B: 110, A: 230},
	{R: 240, G: 180, B: 50, A: 230},
	{R: 180, G: 100, B: 220, A: 230},
	{R: 60, G: 200, B: 200, A: 230},
}

func groupColor(i int) color.RGBA {
	return groupPalette[i%len(groupPalette)]
}

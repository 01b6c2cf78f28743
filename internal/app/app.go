//go:build ebiten

package app

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"

	"karnaugh/internal/render"
	"karnaugh/internal/ui"
	"karnaugh/pkg/core"
	"karnaugh/pkg/kmap"
)

const (
	hudWidth  = 260
	minHeight = 360
)

var digitKeys = map[ebiten.Key]int{
	ebiten.KeyDigit2: 2,
	ebiten.KeyDigit3: 3,
	ebiten.KeyDigit4: 4,
	ebiten.KeyDigit5: 5,
	ebiten.KeyDigit6: 6,
}

var covererKeys = map[ebiten.Key]string{
	ebiten.KeyG: kmap.GreedyName,
	ebiten.KeyE: "exact",
	ebiten.KeyW: "weighted",
}

// Game adapts a Minimizer to the ebiten.Game interface.
type Game struct {
	z       *kmap.Minimizer
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
	log     logrus.FieldLogger

	rng      *core.RNG
	density  float64
	dontCare float64

	scale int
	dirty bool
}

// New constructs a Game editing z.
func New(z *kmap.Minimizer, cfg *Config, log logrus.FieldLogger) *Game {
	g := &Game{
		z:        z,
		overlay:  ui.NewOverlay(cfg.Scale),
		hud:      ui.NewHUD(z, hudWidth),
		log:      log,
		rng:      core.NewRNG(cfg.Seed),
		density:  cfg.Density,
		dontCare: cfg.DontCare,
		scale:    cfg.Scale,
		dirty:    true,
	}
	g.resizePainter()
	return g
}

func (g *Game) resizePainter() {
	s := g.z.Size()
	if g.painter != nil {
		if w, h := g.painter.Size(); w == s.W && h == s.H {
			return
		}
	}
	g.painter = render.NewGridPainter(s.W, s.H)
}

// Update handles input and re-simplifies the map after edits.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	for key, n := range digitKeys {
		if inpututil.IsKeyJustPressed(key) {
			g.configure(n)
		}
	}
	for key, name := range covererKeys {
		if inpututil.IsKeyJustPressed(key) {
			if err := g.z.SetCoverer(name); err != nil {
				g.log.WithError(err).Warn("coverer unavailable")
				continue
			}
			g.dirty = true
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.z.Clear()
		g.dirty = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		ones, dcs := g.rng.Table(g.z.Layout().Vars, g.density, g.dontCare)
		g.z.LoadMinterms(ones, dcs)
		g.dirty = true
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		s := g.z.Size()
		if mx >= 0 && my >= 0 && mx < s.W*g.scale && my < s.H*g.scale {
			g.z.Cycle(mx/g.scale, my/g.scale)
			g.dirty = true
		}
	}
	if g.hud.Update(g.z.Size().W * g.scale) {
		g.resizePainter()
		g.dirty = true
	}
	g.overlay.Update()

	if g.dirty {
		g.refresh()
	}
	return nil
}

func (g *Game) configure(n int) {
	if n == g.z.Layout().Vars {
		return
	}
	if err := g.z.Configure(n); err != nil {
		g.log.WithError(err).Warn("configure rejected")
		return
	}
	g.resizePainter()
	g.dirty = true
}

func (g *Game) refresh() {
	g.dirty = false
	res, err := g.z.Simplify()
	if err != nil {
		g.overlay.SetCover(g.z.Layout(), nil)
	} else {
		g.overlay.SetCover(g.z.Layout(), res.Cover)
	}
	g.hud.Refresh()
}

// Draw renders the map, the cover overlay and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 10, G: 10, B: 12, A: 255})
	g.painter.Blit(screen, g.z.Cells(), render.Palette, g.scale)
	g.overlay.Draw(screen)
	_, h := g.Layout(0, 0)
	g.hud.Draw(screen, g.z.Size().W*g.scale, h)
}

// Layout returns the logical screen size: the map plus the HUD panel.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.z.Size()
	h := s.H * g.scale
	if h < minHeight {
		h = minHeight
	}
	return s.W*g.scale + hudWidth, h
}

//go:build ebiten

package ui

import (
	"image/color"

	"falling-sand/internal/core"
	"falling-sand/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type sleepMaskProvider interface {
	SleepingMask() []bool
}

// Overlay draws optional debugging visuals on top of the base simulation.
type Overlay struct {
	sim         core.Sim
	scale       int
	showChunks  bool
	showSleep   bool
	maskImg     *ebiten.Image
	maskBuf     []byte
	pixel       *ebiten.Image
	chunkColors []color.RGBA
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	o := &Overlay{sim: sim, scale: scale}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	o.chunkColors = []color.RGBA{
		{R: 255, G: 80, B: 80, A: 150},
		{R: 80, G: 160, B: 255, A: 150},
	}
	return o
}

// Update toggles the overlays from the keyboard.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit4) {
		o.showChunks = !o.showChunks
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit5) {
		o.showSleep = !o.showSleep
	}
}

// Draw paints the enabled overlays over the simulation image.
func (o *Overlay) Draw(screen *ebiten.Image) {
	size := o.sim.Size()
	if size.W <= 0 || size.H <= 0 {
		return
	}
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}

	if o.showSleep {
		if provider, ok := o.sim.(sleepMaskProvider); ok {
			o.drawSleepMask(screen, provider.SleepingMask(), size, scale)
		}
	}
	if o.showChunks {
		if provider, ok := o.sim.(core.Chunked); ok {
			o.drawChunks(screen, provider.LastChunks(), scale)
		}
	}
}

// drawChunks outlines each chunk of the last tick, alternating colours by
// pass parity.
func (o *Overlay) drawChunks(screen *ebiten.Image, chunks []core.Rect, scale int) {
	s := float64(scale)
	for i, r := range chunks {
		col := o.chunkColors[i%2]
		x0, y0 := float64(r.X0)*s, float64(r.Y0)*s
		w, h := float64(r.X1-r.X0)*s, float64(r.Y1-r.Y0)*s
		o.fillRect(screen, x0, y0, 1, h, col)
		o.fillRect(screen, x0+w-1, y0, 1, h, col)
		o.fillRect(screen, x0, y0, w, 1, col)
		o.fillRect(screen, x0, y0+h-1, w, 1, col)
	}
}

func (o *Overlay) fillRect(screen *ebiten.Image, x, y, w, h float64, col color.RGBA) {
	if o.pixel == nil || w <= 0 || h <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	screen.DrawImage(o.pixel, op)
}

func (o *Overlay) drawSleepMask(screen *ebiten.Image, mask []bool, size core.Size, scale int) {
	total := size.W * size.H
	if len(mask) != total {
		return
	}
	if o.maskImg == nil || o.maskImg.Bounds().Dx() != size.W || o.maskImg.Bounds().Dy() != size.H {
		o.maskImg = ebiten.NewImage(size.W, size.H)
		o.maskBuf = make([]byte, 4*total)
	}
	render.FillMask(o.maskBuf, total, 0xa060c0ff, func(i int) bool { return mask[i] })
	o.maskImg.WritePixels(o.maskBuf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	screen.DrawImage(o.maskImg, op)
}

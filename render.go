package main

import (
	"hash/fnv"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/arcade/assets"
	"go.uber.org/zap"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

// fallback colors for sprites without an image, picked by key hash
var palette = []color.RGBA{
	colornames.Tomato,
	colornames.Gold,
	colornames.Mediumseagreen,
	colornames.Deepskyblue,
	colornames.Orchid,
	colornames.Orange,
	colornames.Lightcoral,
	colornames.Turquoise,
}

var background = colornames.Midnightblue

// ebitenRenderer draws entities with their sprite image scaled to the
// entity rect, or a colored rect when the sprite is missing.
type ebitenRenderer struct {
	log    *zap.Logger
	screen *ebiten.Image
	face   *text.GoXFace
	missed map[string]bool
}

func newEbitenRenderer(log *zap.Logger) *ebitenRenderer {
	return &ebitenRenderer{
		log:    log,
		face:   text.NewGoXFace(basicfont.Face7x13),
		missed: map[string]bool{},
	}
}

func (r *ebitenRenderer) begin(screen *ebiten.Image) {
	r.screen = screen
	screen.Fill(background)
}

func (r *ebitenRenderer) DrawEntity(sprite string, x, y, w, h float64) {
	if r.screen == nil || w <= 0 || h <= 0 {
		return
	}

	if img := r.image(sprite); img != nil {
		b := img.Bounds()
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
		op.GeoM.Translate(x, y)
		r.screen.DrawImage(img, op)
		return
	}

	vector.DrawFilledRect(r.screen, float32(x), float32(y), float32(w), float32(h), fallbackColor(sprite), false)
}

func (r *ebitenRenderer) image(sprite string) *ebiten.Image {
	if sprite == "" || r.missed[sprite] {
		return nil
	}
	img, err := assets.Sprite(sprite)
	if err != nil {
		r.missed[sprite] = true
		r.log.Debug("sprite missing, drawing a rect", zap.String("sprite", sprite), zap.Error(err))
		return nil
	}
	return img
}

// DrawMessage centers a line of text on the screen.
func (r *ebitenRenderer) DrawMessage(msg string) {
	if r.screen == nil {
		return
	}
	b := r.screen.Bounds()
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(b.Dx())/2, float64(b.Dy())/2)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(colornames.White)
	text.Draw(r.screen, msg, r.face, op)
}

func fallbackColor(sprite string) color.RGBA {
	h := fnv.New32a()
	_, _ = h.Write([]byte(sprite))
	return palette[h.Sum32()%uint32(len(palette))]
}

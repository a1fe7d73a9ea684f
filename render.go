package sidescroll

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Renderer draws a region of a texture to a destination rectangle in
// logical screen pixels. It is the only drawing primitive the world and its
// entities use.
type Renderer interface {
	Blit(tex *Texture, src, dst image.Rectangle)
}

// ScreenRenderer draws to an ebiten image, normally the screen handed to
// Game.Draw. Destinations that miss the target entirely are culled. Each
// blit applies the texture's Modulation.
type ScreenRenderer struct {
	// Target is the image drawn to. Blits are dropped while it is nil.
	Target *ebiten.Image

	stats DrawStats
	op    ebiten.DrawImageOptions
}

// NewScreenRenderer creates a renderer with no target.
func NewScreenRenderer() *ScreenRenderer {
	return &ScreenRenderer{}
}

// Blit implements Renderer.
func (r *ScreenRenderer) Blit(tex *Texture, src, dst image.Rectangle) {
	r.stats.Blits++
	if r.Target == nil || tex == nil || tex.Image == nil || src.Empty() {
		r.stats.Skipped++
		return
	}
	if !dst.Overlaps(r.Target.Bounds()) {
		r.stats.Culled++
		return
	}

	sub := tex.Image.SubImage(src).(*ebiten.Image)
	r.op.GeoM.Reset()
	if dst.Dx() != src.Dx() || dst.Dy() != src.Dy() {
		r.op.GeoM.Scale(float64(dst.Dx())/float64(src.Dx()), float64(dst.Dy())/float64(src.Dy()))
	}
	r.op.GeoM.Translate(float64(dst.Min.X), float64(dst.Min.Y))
	mod := tex.Modulation()
	r.op.ColorScale = mod.ColorScale()
	r.op.Blend = mod.Blend.EbitenBlend()
	r.Target.DrawImage(sub, &r.op)
	r.stats.Drawn++
}

// Stats returns the counters accumulated since the last ResetStats.
func (r *ScreenRenderer) Stats() DrawStats { return r.stats }

// ResetStats clears the draw counters.
func (r *ScreenRenderer) ResetStats() { r.stats = DrawStats{} }

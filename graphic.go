package sidescroll

import (
	"fmt"
	"image"
)

// GameObject is a single textured rectangle with its own alpha. It does not
// animate or react to input; embed it or drive it from outside.
type GameObject struct {
	// Position is the top-left corner in world pixels.
	Position Vec2
	// Alpha is applied to the texture before each draw.
	Alpha uint8

	texture *Texture
	src     image.Rectangle
}

// NewGameObject returns an opaque object with no texture.
func NewGameObject() *GameObject {
	return &GameObject{Alpha: 255}
}

// SetTexture resolves name through the context's texture cache, loading it
// on first use.
func (g *GameObject) SetTexture(ctx *EngineContext, name string) error {
	if ctx == nil || ctx.Textures == nil {
		return fmt.Errorf("sidescroll: set texture %q: no texture cache: %w", name, ErrResource)
	}
	t, err := ctx.Textures.ResolveOrLoad(name)
	if err != nil {
		ctx.Log.Error().Err(err).Str("texture", name).Msg("unable to set texture")
		return err
	}
	g.texture = t
	return nil
}

// Texture returns the object's texture, nil until SetTexture succeeds.
func (g *GameObject) Texture() *Texture { return g.texture }

// SetSource selects the texture region drawn. Its size is also the size
// drawn on screen.
func (g *GameObject) SetSource(x, y, w, h int) {
	g.src = pixelRect(x, y, w, h)
}

// Source returns the texture region drawn.
func (g *GameObject) Source() image.Rectangle { return g.src }

// Dest returns the on-screen rectangle for the given camera origin.
func (g *GameObject) Dest(origin Vec2) image.Rectangle {
	x := int(g.Position.X - origin.X)
	y := int(g.Position.Y - origin.Y)
	return pixelRect(x, y, g.src.Dx(), g.src.Dy())
}

// Update implements Drawable.
func (g *GameObject) Update(int, *World) {}

// HandleEvent implements Drawable.
func (g *GameObject) HandleEvent(Event) {}

// Draw implements Drawable. Objects entirely outside the viewport are
// skipped.
func (g *GameObject) Draw(r Renderer, origin Vec2) {
	if g.texture == nil || g.src.Empty() {
		return
	}
	dst := g.Dest(origin)
	if dst.Min.X >= ViewportWidth || dst.Min.Y >= ViewportHeight || dst.Max.X <= 0 || dst.Max.Y <= 0 {
		return
	}
	g.texture.SetAlphaMod(g.Alpha)
	r.Blit(g.texture, g.src, dst)
}

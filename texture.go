package sidescroll

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/png"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/bmp"
)

// Texture is a named image owned by a TextureCache. Handles returned by the
// cache stay valid for the cache's lifetime.
type Texture struct {
	Name          string
	Width, Height int
	// Image is nil for textures that exist only as a size, e.g. in tests.
	Image *ebiten.Image

	mod *Modulation
}

// Bounds returns the full source rectangle of the texture.
func (t *Texture) Bounds() image.Rectangle {
	return image.Rect(0, 0, t.Width, t.Height)
}

// TextureLoader produces the texture for a name. It is called at most once
// per successfully loaded name.
type TextureLoader func(name string) (*Texture, error)

// TextureCache is an append-only table of textures keyed by name.
type TextureCache struct {
	load   TextureLoader
	byName map[string]*Texture
	order  []*Texture
}

// NewTextureCache creates a cache that loads missing textures with load.
// A nil loader makes the cache lookup-only.
func NewTextureCache(load TextureLoader) *TextureCache {
	return &TextureCache{
		load:   load,
		byName: make(map[string]*Texture),
	}
}

// ResolveOrLoad returns the cached texture for name, loading it on first
// use. Failed loads are not cached.
func (c *TextureCache) ResolveOrLoad(name string) (*Texture, error) {
	if t, ok := c.byName[name]; ok {
		return t, nil
	}
	if c.load == nil {
		return nil, fmt.Errorf("sidescroll: texture %q not cached and no loader: %w", name, ErrResource)
	}
	t, err := c.load(name)
	if err != nil {
		return nil, unable(ErrResource, fmt.Sprintf("load texture %q", name), err)
	}
	if t.Name == "" {
		t.Name = name
	}
	c.add(name, t)
	return t, nil
}

// Lookup returns a cached texture without loading.
func (c *TextureCache) Lookup(name string) (*Texture, bool) {
	t, ok := c.byName[name]
	return t, ok
}

// Add registers a texture under its own name, replacing nothing: adding a
// name that is already cached returns the existing handle.
func (c *TextureCache) Add(t *Texture) *Texture {
	if prev, ok := c.byName[t.Name]; ok {
		return prev
	}
	c.add(t.Name, t)
	return t
}

func (c *TextureCache) add(name string, t *Texture) {
	c.byName[name] = t
	c.order = append(c.order, t)
}

// Len returns the number of cached textures.
func (c *TextureCache) Len() int { return len(c.order) }

// Dispose deallocates every cached image. Handles remain valid but draw
// nothing afterwards.
func (c *TextureCache) Dispose() {
	for _, t := range c.order {
		if t.Image != nil {
			t.Image.Deallocate()
			t.Image = nil
		}
	}
}

// StoreTextureLoader loads Textures/<name>.bmp (or .png) from store, keying
// out pure black, and uploads the result as an ebiten image.
func StoreTextureLoader(store *Store) TextureLoader {
	return func(name string) (*Texture, error) {
		data, err := store.ReadAll(KindTexture, name)
		if err != nil {
			return nil, err
		}
		img, err := decodeTexture(data)
		if err != nil {
			return nil, err
		}
		b := img.Bounds()
		return &Texture{
			Name:   name,
			Width:  b.Dx(),
			Height: b.Dy(),
			Image:  ebiten.NewImageFromImage(img),
		}, nil
	}
}

// decodeTexture decodes a BMP or PNG image and applies the black color key.
func decodeTexture(data []byte) (*image.NRGBA, error) {
	var (
		src image.Image
		err error
	)
	if bytes.HasPrefix(data, []byte("BM")) {
		src, err = bmp.Decode(bytes.NewReader(data))
	} else {
		src, err = png.Decode(bytes.NewReader(data))
	}
	if err != nil {
		return nil, fmt.Errorf("sidescroll: decode texture: %w: %w", ErrResource, err)
	}

	b := src.Bounds()
	img := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(img, img.Bounds(), src, b.Min, draw.Src)
	applyColorKey(img)
	return img, nil
}

// applyColorKey makes every pure black pixel fully transparent.
func applyColorKey(img *image.NRGBA) {
	for i := 0; i+3 < len(img.Pix); i += 4 {
		if img.Pix[i] == 0 && img.Pix[i+1] == 0 && img.Pix[i+2] == 0 {
			img.Pix[i+3] = 0
		}
	}
}

package sidescroll

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"golang.org/x/image/bmp"
)

// sizedLoader returns image-less textures with a fixed size and counts calls.
func sizedLoader(w, h int, calls *int) TextureLoader {
	return func(name string) (*Texture, error) {
		*calls++
		return &Texture{Width: w, Height: h}, nil
	}
}

func TestTextureCacheResolveOnce(t *testing.T) {
	calls := 0
	c := NewTextureCache(sizedLoader(16, 16, &calls))

	a, err := c.ResolveOrLoad("tiles")
	if err != nil {
		t.Fatal(err)
	}
	b, err := c.ResolveOrLoad("tiles")
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Error("ResolveOrLoad returned different handles for the same name")
	}
	if calls != 1 {
		t.Errorf("loader calls = %d, want 1", calls)
	}
	if a.Name != "tiles" {
		t.Errorf("Name = %q, want tiles", a.Name)
	}
}

func TestTextureCacheHandlesStable(t *testing.T) {
	calls := 0
	c := NewTextureCache(sizedLoader(8, 8, &calls))
	first, _ := c.ResolveOrLoad("first")
	for i := 0; i < 100; i++ {
		c.ResolveOrLoad(string(rune('a' + i%26)) + string(rune('A'+i/26)))
	}
	got, ok := c.Lookup("first")
	if !ok || got != first {
		t.Error("handle changed after many insertions")
	}
	if c.Len() != 101 {
		t.Errorf("Len = %d, want 101", c.Len())
	}
}

func TestTextureCacheLoadFailure(t *testing.T) {
	boom := errors.New("boom")
	attempts := 0
	c := NewTextureCache(func(name string) (*Texture, error) {
		attempts++
		return nil, boom
	})
	_, err := c.ResolveOrLoad("x")
	if !errors.Is(err, ErrResource) || !errors.Is(err, boom) {
		t.Errorf("err = %v, want ErrResource wrapping boom", err)
	}
	c.ResolveOrLoad("x")
	if attempts != 2 {
		t.Errorf("attempts = %d, want 2 (failures are not cached)", attempts)
	}
	if c.Len() != 0 {
		t.Errorf("Len = %d, want 0", c.Len())
	}
}

func TestTextureCacheNoLoader(t *testing.T) {
	c := NewTextureCache(nil)
	if _, err := c.ResolveOrLoad("x"); !errors.Is(err, ErrResource) {
		t.Errorf("err = %v, want ErrResource", err)
	}
	tex := c.Add(&Texture{Name: "x", Width: 4, Height: 4})
	got, err := c.ResolveOrLoad("x")
	if err != nil || got != tex {
		t.Errorf("ResolveOrLoad after Add = %v, %v", got, err)
	}
	if again := c.Add(&Texture{Name: "x"}); again != tex {
		t.Error("Add replaced an existing texture")
	}
}

func testImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.RGBA{0, 0, 0, 255})
	img.Set(1, 0, color.RGBA{200, 10, 10, 255})
	return img
}

func TestDecodeTextureColorKey(t *testing.T) {
	var bmpBuf, pngBuf bytes.Buffer
	if err := bmp.Encode(&bmpBuf, testImage()); err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(&pngBuf, testImage()); err != nil {
		t.Fatal(err)
	}

	for name, data := range map[string][]byte{"bmp": bmpBuf.Bytes(), "png": pngBuf.Bytes()} {
		t.Run(name, func(t *testing.T) {
			img, err := decodeTexture(data)
			if err != nil {
				t.Fatalf("decodeTexture: %v", err)
			}
			if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 1 {
				t.Fatalf("bounds = %v, want 2x1", img.Bounds())
			}
			if a := img.NRGBAAt(0, 0).A; a != 0 {
				t.Errorf("black pixel alpha = %d, want 0", a)
			}
			if c := img.NRGBAAt(1, 0); c.A != 255 || c.R != 200 {
				t.Errorf("red pixel = %v, want opaque red", c)
			}
		})
	}
}

func TestDecodeTextureGarbage(t *testing.T) {
	if _, err := decodeTexture([]byte("not an image")); !errors.Is(err, ErrResource) {
		t.Errorf("err = %v, want ErrResource", err)
	}
}

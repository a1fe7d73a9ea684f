package sidescroll

import (
	"errors"
	"testing"
	"testing/fstest"
)

func newTestStore(files map[string][]byte) *Store {
	fsys := fstest.MapFS{}
	for name, data := range files {
		fsys[name] = &fstest.MapFile{Data: data}
	}
	return NewStore(fsys)
}

func TestStorePath(t *testing.T) {
	s := NewStore(fstest.MapFS{})
	tests := []struct {
		kind ResourceKind
		name string
		want string
	}{
		{KindMap, "0", "Cmfs/0.cmf"},
		{KindEntity, "Hiro", "Entities/Hiro.xml"},
		{KindTexture, "tiles", "Textures/tiles.bmp"},
	}
	for _, tt := range tests {
		if got := s.Path(tt.kind, tt.name); got != tt.want {
			t.Errorf("Path(%v, %q) = %q, want %q", tt.kind, tt.name, got, tt.want)
		}
	}
}

func TestStoreTextureExtensionFallback(t *testing.T) {
	s := newTestStore(map[string][]byte{
		"Textures/only_png.png": []byte("png"),
	})
	data, err := s.ReadAll(KindTexture, "only_png")
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if string(data) != "png" {
		t.Errorf("data = %q, want png", data)
	}
}

func TestStoreMissing(t *testing.T) {
	s := newTestStore(nil)
	if _, err := s.Open(KindEntity, "ghost"); !errors.Is(err, ErrIO) {
		t.Errorf("err = %v, want ErrIO", err)
	}

	var nilStore *Store
	if _, err := nilStore.Open(KindMap, "x"); !errors.Is(err, ErrIO) {
		t.Errorf("nil store err = %v, want ErrIO", err)
	}
}

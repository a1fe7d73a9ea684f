package sidescroll

import "github.com/rs/zerolog"

// EngineContext carries everything the engine would otherwise keep in
// globals: the resource store, the texture cache, the renderer and the
// logger. One context lives for one game session and is passed to every
// constructor that loads or draws.
type EngineContext struct {
	Store    *Store
	Textures *TextureCache
	Renderer Renderer
	Log      zerolog.Logger

	// ViewportWidth and ViewportHeight are the logical render size.
	ViewportWidth, ViewportHeight int

	// VerifyChecksums makes CreateWorld reject maps whose stored checksum
	// does not match their contents.
	VerifyChecksums bool

	// Debug enables per-frame draw statistics in the log.
	Debug bool
}

// NewEngineContext creates a context reading resources from store. Textures
// are loaded from the same store. A nil renderer may be set later.
func NewEngineContext(store *Store, renderer Renderer, log zerolog.Logger) *EngineContext {
	return &EngineContext{
		Store:           store,
		Textures:        NewTextureCache(StoreTextureLoader(store)),
		Renderer:        renderer,
		Log:             log,
		ViewportWidth:   ViewportWidth,
		ViewportHeight:  ViewportHeight,
		VerifyChecksums: true,
	}
}

// Viewport returns the logical render size, falling back to the engine
// default for unset dimensions.
func (c *EngineContext) Viewport() (w, h int) {
	w, h = c.ViewportWidth, c.ViewportHeight
	if w <= 0 {
		w = ViewportWidth
	}
	if h <= 0 {
		h = ViewportHeight
	}
	return w, h
}

// Close releases the context's textures.
func (c *EngineContext) Close() {
	if c.Textures != nil {
		c.Textures.Dispose()
	}
}

package sidescroll

import (
	"fmt"
	"math/rand/v2"
)

// bubbleDepth is the depth at which bubbles become visible and respawn.
const bubbleDepth = 8

// bubble holds per-bubble state. x and y are the offset from the viewport
// centre at depth 1; z is the distance from the viewer.
type bubble struct {
	x, y, z float64
	alpha   float32
}

// BubbleConfig controls a BubbleField.
type BubbleConfig struct {
	// Count is the pool size. Zero means 64.
	Count int
	// FrameSize is the edge of one square frame in the texture strip, the
	// nearest frame first. Zero means TileSize.
	FrameSize int
	// Speed is the depth travelled per millisecond. Zero means 0.075/20.
	Speed float64
	// Blend is applied to the texture when the field is created.
	Blend BlendMode
	// Seed fixes the random sequence. Zero picks a random seed.
	Seed uint64
}

// BubbleField is a screen-space drawable of bubbles flying toward the
// viewer. It ignores the camera: each bubble is projected from the centre
// of the viewport and fades in as it gets closer.
type BubbleField struct {
	config  BubbleConfig
	texture *Texture
	bubbles []bubble
	alive   int
	active  bool
	rng     *rand.Rand
	vw, vh  int
}

// NewBubbleField creates an active field drawing frames of texture name.
// Every bubble starts at a random depth behind the visible range.
func NewBubbleField(ctx *EngineContext, name string, cfg BubbleConfig) (*BubbleField, error) {
	if ctx == nil || ctx.Textures == nil {
		return nil, fmt.Errorf("sidescroll: bubble field %q: no texture cache: %w", name, ErrResource)
	}
	tex, err := ctx.Textures.ResolveOrLoad(name)
	if err != nil {
		return nil, err
	}
	if cfg.Count <= 0 {
		cfg.Count = 64
	}
	if cfg.FrameSize <= 0 {
		cfg.FrameSize = TileSize
	}
	if cfg.Speed <= 0 {
		cfg.Speed = 0.075 / 20
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	tex.SetBlendMode(cfg.Blend)

	f := &BubbleField{
		config:  cfg,
		texture: tex,
		bubbles: make([]bubble, cfg.Count),
		rng:     rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
	f.vw, f.vh = ctx.Viewport()
	f.Start()
	return f, nil
}

// Start resumes respawning and refills the pool.
func (f *BubbleField) Start() {
	f.active = true
	for f.alive < len(f.bubbles) {
		f.respawn(&f.bubbles[f.alive], true)
		f.alive++
	}
}

// Stop stops respawning. Bubbles in flight live out their approach.
func (f *BubbleField) Stop() {
	f.active = false
}

// Reset stops the field and removes every bubble.
func (f *BubbleField) Reset() {
	f.active = false
	f.alive = 0
}

// IsActive reports whether bubbles respawn after passing the viewer.
func (f *BubbleField) IsActive() bool { return f.active }

// AliveCount returns the number of bubbles in flight.
func (f *BubbleField) AliveCount() int { return f.alive }

// Config returns a pointer to the field's config for live tuning.
func (f *BubbleField) Config() *BubbleConfig { return &f.config }

func (f *BubbleField) respawn(b *bubble, randomDepth bool) {
	b.z = bubbleDepth
	if randomDepth {
		b.z += float64(f.rng.IntN(80)) / 10
	}
	b.x = float64(f.rng.IntN(bubbleDepth*f.vw) - bubbleDepth*f.vw/2)
	b.y = float64(f.rng.IntN(bubbleDepth*f.vh) - bubbleDepth*f.vh/2)
	b.alpha = 0
}

// Update implements Drawable.
func (f *BubbleField) Update(dt int, _ *World) {
	step := f.config.Speed * float64(dt)

	i := 0
	for i < f.alive {
		b := &f.bubbles[i]
		b.z -= step
		if b.z <= 0 {
			if !f.active {
				f.alive--
				f.bubbles[i] = f.bubbles[f.alive]
				continue
			}
			f.respawn(b, false)
		}
		if b.z <= bubbleDepth {
			b.alpha = float32(1 - b.z/bubbleDepth)
		}
		i++
	}
}

// HandleEvent implements Drawable.
func (f *BubbleField) HandleEvent(Event) {}

// Draw implements Drawable. The origin is ignored.
func (f *BubbleField) Draw(r Renderer, _ Vec2) {
	fs := f.config.FrameSize
	frames := f.texture.Width / fs
	if frames == 0 {
		return
	}
	cx, cy := float64(f.vw)/2, float64(f.vh)/2

	for i := 0; i < f.alive; i++ {
		b := &f.bubbles[i]
		if b.z > bubbleDepth {
			continue
		}
		a := uint8(b.alpha * 255)
		if a == 0 {
			continue
		}
		x := int(cx + b.x/b.z)
		y := int(cy + b.y/b.z)
		if x >= f.vw || y >= f.vh || x+fs <= 0 || y+fs <= 0 {
			continue
		}
		frame := min(int(b.z), frames-1)
		f.texture.SetAlphaMod(a)
		r.Blit(f.texture, pixelRect(frame*fs, 0, fs, fs), pixelRect(x, y, fs, fs))
	}
}

package sidescroll

import (
	"fmt"
	"image"
	"math"
)

// Frame is one step of an animation. Duration is in milliseconds; a zero
// duration holds the frame forever.
type Frame struct {
	Left, Right Point
	Duration    int
}

// Animation is a named, ordered frame sequence that loops.
type Animation struct {
	Name   string
	Frames []Frame
}

// Hitbox is a collision rectangle in sprite-local pixels.
type Hitbox struct {
	X, Y, Width, Height int
}

// Sprite is an animated, orientation-aware image. Each frame names a source
// corner for both facings, so turning around never mirrors the texture.
//
// A sprite plays nothing until SetAnimation is called.
type Sprite struct {
	Name string

	texture    *Texture
	width      int
	height     int
	animations []Animation

	current     *Animation
	frameIndex  int
	elapsed     int
	facingRight bool

	relative Vec2
	position Vec2

	hitbox     Hitbox
	collidable bool

	src image.Rectangle
}

// NewSprite returns an empty sprite. Populate it with Create.
func NewSprite() *Sprite {
	return &Sprite{}
}

// Create fills the sprite from a descriptor, replacing anything it held.
// When ctx has a texture cache the descriptor's texture is resolved
// through it; a texture that fails to load is logged and leaves the sprite
// invisible.
func (s *Sprite) Create(ctx *EngineContext, desc SpriteDescriptor) error {
	if err := desc.validate(); err != nil {
		return unable(ErrSpriteFormat, fmt.Sprintf("create sprite %q", desc.Name), err)
	}

	anims := make([]Animation, len(desc.Animations))
	for i, ad := range desc.Animations {
		frames := make([]Frame, len(ad.Frames))
		for j, fd := range ad.Frames {
			frames[j] = Frame{
				Left:     Point{fd.Left.X, fd.Left.Y},
				Right:    Point{fd.Right.X, fd.Right.Y},
				Duration: fd.Duration,
			}
		}
		anims[i] = Animation{Name: ad.Name, Frames: frames}
	}

	*s = Sprite{
		Name:        desc.Name,
		width:       desc.Width,
		height:      desc.Height,
		animations:  anims,
		facingRight: s.facingRight,
		relative:    s.relative,
		position:    s.position,
	}
	if hb := desc.Hitbox; hb != nil {
		s.hitbox = Hitbox{hb.X, hb.Y, hb.Width, hb.Height}
		s.collidable = hb.Width > 0 && hb.Height > 0
	}

	if ctx != nil && ctx.Textures != nil {
		tex, err := ctx.Textures.ResolveOrLoad(desc.Texture)
		if err != nil {
			ctx.Log.Warn().Err(err).Str("sprite", desc.Name).Str("texture", desc.Texture).
				Msg("texture unavailable, sprite will not be drawn")
		}
		s.texture = tex
	}
	return nil
}

// SetAnimation selects the named animation and rewinds it to its first
// frame.
func (s *Sprite) SetAnimation(name string) error {
	for i := range s.animations {
		if s.animations[i].Name == name {
			s.current = &s.animations[i]
			s.frameIndex = 0
			s.elapsed = 0
			s.refreshSource()
			return nil
		}
	}
	return fmt.Errorf("sidescroll: sprite %q has no animation %q: %w", s.Name, name, ErrAnimationNotFound)
}

// Update advances the animation clock by dt milliseconds. A frame advances
// at most once per call; leftover time carries into the next frame.
func (s *Sprite) Update(dt int) {
	if s.current == nil {
		return
	}
	s.elapsed += dt
	if d := s.current.Frames[s.frameIndex].Duration; d > 0 && s.elapsed >= d {
		s.elapsed %= d
		s.frameIndex = (s.frameIndex + 1) % len(s.current.Frames)
	}
	s.refreshSource()
}

func (s *Sprite) refreshSource() {
	if s.current == nil {
		return
	}
	f := s.current.Frames[s.frameIndex]
	c := f.Left
	if s.facingRight {
		c = f.Right
	}
	s.src = pixelRect(c.X, c.Y, s.width, s.height)
}

// Collide reports whether the hitboxes of s and other overlap at their
// current absolute positions. Sprites that are not collidable never
// collide. Touching edges count as overlap.
func (s *Sprite) Collide(other *Sprite) bool {
	if other == nil || !s.collidable || !other.collidable {
		return false
	}
	return s.HitboxRect().Intersects(other.HitboxRect())
}

// HitboxRect returns the hitbox in world coordinates.
func (s *Sprite) HitboxRect() Rect {
	return Rect{
		X:      s.position.X + float64(s.hitbox.X),
		Y:      s.position.Y + float64(s.hitbox.Y),
		Width:  float64(s.hitbox.Width),
		Height: float64(s.hitbox.Height),
	}
}

// Draw blits the current frame at the sprite's position translated by
// -origin. Sprites without a texture or an animation draw nothing.
func (s *Sprite) Draw(r Renderer, origin Vec2) {
	if r == nil || s.texture == nil || s.current == nil {
		return
	}
	x := int(math.Floor(s.position.X - origin.X))
	y := int(math.Floor(s.position.Y - origin.Y))
	r.Blit(s.texture, s.src, pixelRect(x, y, s.width, s.height))
}

// SetFacingRight selects the right-facing source coordinates.
func (s *Sprite) SetFacingRight(right bool) {
	s.facingRight = right
	s.refreshSource()
}

// FacingRight reports the current orientation.
func (s *Sprite) FacingRight() bool { return s.facingRight }

// SetRelative sets the offset from the owning entity's position.
func (s *Sprite) SetRelative(offset Vec2) { s.relative = offset }

// Relative returns the offset from the owning entity's position.
func (s *Sprite) Relative() Vec2 { return s.relative }

// SetPosition sets the absolute world position.
func (s *Sprite) SetPosition(p Vec2) { s.position = p }

// Position returns the absolute world position.
func (s *Sprite) Position() Vec2 { return s.position }

// SetTexture replaces the sprite's texture.
func (s *Sprite) SetTexture(t *Texture) { s.texture = t }

// Texture returns the sprite's texture, or nil.
func (s *Sprite) Texture() *Texture { return s.texture }

// Size returns the frame size in pixels.
func (s *Sprite) Size() (w, h int) { return s.width, s.height }

// Hitbox returns the hitbox in sprite-local pixels.
func (s *Sprite) Hitbox() Hitbox { return s.hitbox }

// Collidable reports whether the sprite takes part in collisions.
func (s *Sprite) Collidable() bool { return s.collidable }

// SetCollidable overrides whether the sprite takes part in collisions.
func (s *Sprite) SetCollidable(c bool) { s.collidable = c }

// Source returns the texture rectangle of the current frame.
func (s *Sprite) Source() image.Rectangle { return s.src }

// Animation returns the name of the playing animation, or "".
func (s *Sprite) Animation() string {
	if s.current == nil {
		return ""
	}
	return s.current.Name
}

// FrameIndex returns the index of the current frame.
func (s *Sprite) FrameIndex() int { return s.frameIndex }

// Elapsed returns the milliseconds spent in the current frame.
func (s *Sprite) Elapsed() int { return s.elapsed }

// Animations returns the names of all animations in playback order.
func (s *Sprite) Animations() []string {
	names := make([]string, len(s.animations))
	for i, a := range s.animations {
		names[i] = a.Name
	}
	return names
}

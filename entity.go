package sidescroll

import "fmt"

// Entity is a group of sprites loaded from Entities/<name>.xml and placed
// relative to one world position. Loading only parses the descriptor;
// sprites are created by whoever knows which ones it needs (see
// NewCharacter) and attached with AddSprite.
type Entity struct {
	Name string

	position Vec2
	sprites  []*Sprite
	desc     *EntityDescriptor
}

// Load parses the named entity descriptor from ctx's store.
func (e *Entity) Load(ctx *EngineContext, name string) error {
	f, err := ctx.Store.Open(KindEntity, name)
	if err != nil {
		return unable(ErrEntityLoad, fmt.Sprintf("load entity %q", name), err)
	}
	defer f.Close()

	desc, err := ParseEntityDescriptor(f)
	if err != nil {
		return unable(ErrEntityLoad, fmt.Sprintf("load entity %q", name), err)
	}
	e.Name = name
	e.desc = desc
	return nil
}

// SpriteDescriptor returns the named sprite description from the loaded
// entity document.
func (e *Entity) SpriteDescriptor(name string) (SpriteDescriptor, error) {
	if e.desc == nil {
		return SpriteDescriptor{}, fmt.Errorf("sidescroll: entity %q not loaded: %w", e.Name, ErrEntityLoad)
	}
	d, ok := e.desc.Sprite(name)
	if !ok {
		return SpriteDescriptor{}, fmt.Errorf("sidescroll: entity %q has no sprite %q: %w", e.Name, name, ErrSpriteFormat)
	}
	return d, nil
}

// CreateSprite builds the named sprite from the descriptor and attaches it.
func (e *Entity) CreateSprite(ctx *EngineContext, name string) (*Sprite, error) {
	d, err := e.SpriteDescriptor(name)
	if err != nil {
		return nil, err
	}
	s := NewSprite()
	if err := s.Create(ctx, d); err != nil {
		return nil, err
	}
	e.AddSprite(s)
	return s, nil
}

// AddSprite appends a sprite. Later sprites draw on top.
func (e *Entity) AddSprite(s *Sprite) {
	e.sprites = append(e.sprites, s)
	s.SetPosition(e.position.Add(s.Relative()))
}

// Sprites returns the entity's sprites in draw order.
func (e *Entity) Sprites() []*Sprite { return e.sprites }

// Position returns the entity's world position.
func (e *Entity) Position() Vec2 { return e.position }

// SetPosition moves the entity and its sprites.
func (e *Entity) SetPosition(p Vec2) {
	e.position = p
	e.placeSprites()
}

func (e *Entity) placeSprites() {
	for _, s := range e.sprites {
		s.SetPosition(e.position.Add(s.Relative()))
	}
}

// Update advances every sprite's animation and places it relative to the
// entity.
func (e *Entity) Update(dt int, w *World) {
	for _, s := range e.sprites {
		s.Update(dt)
	}
	e.placeSprites()
}

// HandleEvent does nothing for a plain entity.
func (e *Entity) HandleEvent(ev Event) {}

// Draw places and draws every sprite translated by -origin.
func (e *Entity) Draw(r Renderer, origin Vec2) {
	e.placeSprites()
	for _, s := range e.sprites {
		s.Draw(r, origin)
	}
}

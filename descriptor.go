package sidescroll

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
)

// EntityDescriptor is the parsed form of Entities/<name>.xml.
type EntityDescriptor struct {
	XMLName xml.Name           `xml:"entity"`
	Sprites []SpriteDescriptor `xml:"sprite"`
}

// SpriteDescriptor describes one sprite: its texture, frame size, hitbox
// and animations.
type SpriteDescriptor struct {
	Name       string                `xml:"name,attr"`
	Texture    string                `xml:"texture,attr"`
	Width      int                   `xml:"width,attr"`
	Height     int                   `xml:"height,attr"`
	Hitbox     *HitboxDescriptor     `xml:"hitbox"`
	Animations []AnimationDescriptor `xml:"animation"`
}

// HitboxDescriptor is a hitbox in sprite-local pixels.
type HitboxDescriptor struct {
	X      int `xml:"x,attr"`
	Y      int `xml:"y,attr"`
	Width  int `xml:"width,attr"`
	Height int `xml:"height,attr"`
}

// AnimationDescriptor is a named frame sequence.
type AnimationDescriptor struct {
	Name   string            `xml:"name,attr"`
	Frames []FrameDescriptor `xml:"frame"`
}

// FrameDescriptor is one timed frame with a source corner per facing.
type FrameDescriptor struct {
	Duration int              `xml:"duration,attr"`
	Left     *CoordDescriptor `xml:"left"`
	Right    *CoordDescriptor `xml:"right"`
}

// CoordDescriptor is the pixel position of a frame's top-left corner in
// the sprite's texture.
type CoordDescriptor struct {
	X int `xml:"src_x,attr"`
	Y int `xml:"src_y,attr"`
}

// ParseEntityDescriptor decodes an entity document.
func ParseEntityDescriptor(r io.Reader) (*EntityDescriptor, error) {
	var d EntityDescriptor
	if err := xml.NewDecoder(r).Decode(&d); err != nil {
		return nil, fmt.Errorf("sidescroll: parse entity descriptor: %w", err)
	}
	return &d, nil
}

// Sprite returns the sprite descriptor with the given name.
func (d *EntityDescriptor) Sprite(name string) (SpriteDescriptor, bool) {
	for _, s := range d.Sprites {
		if s.Name == name {
			return s, true
		}
	}
	return SpriteDescriptor{}, false
}

// validate reports the first missing required field.
func (d SpriteDescriptor) validate() error {
	switch {
	case d.Texture == "":
		return errors.New("missing texture reference")
	case d.Width <= 0 || d.Height <= 0:
		return fmt.Errorf("invalid source size %dx%d", d.Width, d.Height)
	case len(d.Animations) == 0:
		return errors.New("expected at least one <animation>")
	}
	for _, a := range d.Animations {
		if a.Name == "" {
			return errors.New("<animation> without a name")
		}
		if len(a.Frames) == 0 {
			return fmt.Errorf("animation %q: expected at least one <frame>", a.Name)
		}
		for i, f := range a.Frames {
			if f.Left == nil || f.Right == nil {
				return fmt.Errorf("animation %q frame %d: expected <left> and <right>", a.Name, i)
			}
			if f.Duration < 0 {
				return fmt.Errorf("animation %q frame %d: negative duration %d", a.Name, i, f.Duration)
			}
		}
	}
	return nil
}

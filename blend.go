package sidescroll

import "github.com/hajimehoshi/ebiten/v2"

// BlendMode selects how a texture composites onto the target.
type BlendMode uint8

const (
	BlendNormal   BlendMode = iota // source-over alpha blending
	BlendAdd                       // additive
	BlendMultiply                  // source * destination; only darkens
	BlendNone                      // opaque copy
)

func (b BlendMode) String() string {
	switch b {
	case BlendNormal:
		return "normal"
	case BlendAdd:
		return "add"
	case BlendMultiply:
		return "multiply"
	case BlendNone:
		return "none"
	default:
		return "unknown"
	}
}

// EbitenBlend returns the ebiten.Blend value for the mode. Unknown modes
// fall back to source-over.
func (b BlendMode) EbitenBlend() ebiten.Blend {
	switch b {
	case BlendAdd:
		return ebiten.BlendLighter
	case BlendMultiply:
		return ebiten.Blend{
			BlendFactorSourceRGB:        ebiten.BlendFactorDestinationColor,
			BlendFactorSourceAlpha:      ebiten.BlendFactorDestinationAlpha,
			BlendFactorDestinationRGB:   ebiten.BlendFactorOneMinusSourceAlpha,
			BlendFactorDestinationAlpha: ebiten.BlendFactorOneMinusSourceAlpha,
			BlendOperationRGB:           ebiten.BlendOperationAdd,
			BlendOperationAlpha:         ebiten.BlendOperationAdd,
		}
	case BlendNone:
		return ebiten.BlendCopy
	default:
		return ebiten.BlendSourceOver
	}
}

// Modulation is the colour, alpha and blend state applied whenever a
// texture is drawn. Channels scale the texture's own values, 255 leaving
// them unchanged.
type Modulation struct {
	R, G, B, A uint8
	Blend      BlendMode
}

// Unmodulated draws a texture as stored.
var Unmodulated = Modulation{R: 255, G: 255, B: 255, A: 255}

// ColorScale converts the modulation to a premultiplied ebiten.ColorScale.
func (m Modulation) ColorScale() ebiten.ColorScale {
	var cs ebiten.ColorScale
	if m.R == 255 && m.G == 255 && m.B == 255 && m.A == 255 {
		return cs
	}
	a := float32(m.A) / 255
	cs.Scale(float32(m.R)/255*a, float32(m.G)/255*a, float32(m.B)/255*a, a)
	return cs
}

// Modulation returns the texture's current draw state. A nil texture is
// unmodulated.
func (t *Texture) Modulation() Modulation {
	if t == nil || t.mod == nil {
		return Unmodulated
	}
	return *t.mod
}

func (t *Texture) modulation() *Modulation {
	if t.mod == nil {
		m := Unmodulated
		t.mod = &m
	}
	return t.mod
}

// SetAlphaMod sets the alpha every later draw of t is scaled by.
func (t *Texture) SetAlphaMod(a uint8) { t.modulation().A = a }

// SetColorMod sets the colour every later draw of t is multiplied by.
func (t *Texture) SetColorMod(r, g, b uint8) {
	m := t.modulation()
	m.R, m.G, m.B = r, g, b
}

// SetBlendMode sets how later draws of t composite.
func (t *Texture) SetBlendMode(b BlendMode) { t.modulation().Blend = b }

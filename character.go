package sidescroll

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// Character tuning defaults, in pixels per millisecond.
const (
	DefaultMaxVelocity  = 0.1
	DefaultAcceleration = 0.0005
)

// Animation and sprite names a character descriptor must provide.
const (
	CharacterSprite   = "main"
	AnimationStanding = "standing"
	AnimationRunning  = "running"
)

// Character is a keyboard-driven entity that runs left and right. Its
// descriptor needs a "main" sprite with "standing" and "running"
// animations.
type Character struct {
	Entity

	// MaxVelocity caps horizontal speed.
	MaxVelocity float64
	// Acceleration is applied per millisecond while a direction is held,
	// and as braking once it is released.
	Acceleration float64
	// LeftKey and RightKey drive the character.
	LeftKey, RightKey ebiten.Key

	main      *Sprite
	velocityX float64

	inputLeft, inputRight bool
	goLeft, goRight       bool
}

// NewCharacter loads the named entity and builds its main sprite, standing.
func NewCharacter(ctx *EngineContext, entityName string) (*Character, error) {
	c := &Character{
		MaxVelocity:  DefaultMaxVelocity,
		Acceleration: DefaultAcceleration,
		LeftKey:      ebiten.KeyQ,
		RightKey:     ebiten.KeyD,
	}
	if err := c.Load(ctx, entityName); err != nil {
		ctx.Log.Error().Err(err).Str("entity", entityName).Msg("character load failed")
		return nil, fmt.Errorf("sidescroll: unable to create character %q: %w", entityName, err)
	}
	main, err := c.CreateSprite(ctx, CharacterSprite)
	if err == nil {
		err = main.SetAnimation(AnimationStanding)
	}
	if err != nil {
		ctx.Log.Error().Err(err).Str("entity", entityName).Msg("character sprite failed")
		return nil, unable(ErrEntityLoad, fmt.Sprintf("create character %q", entityName), err)
	}
	c.main = main
	return c, nil
}

// MainSprite returns the sprite the character animates.
func (c *Character) MainSprite() *Sprite { return c.main }

// VelocityX returns the current horizontal speed in px/ms.
func (c *Character) VelocityX() float64 { return c.velocityX }

// HandleEvent turns key presses into running state. Pressing a direction
// takes over from the other one; releasing it hands control back to the
// other direction if that key is still held.
func (c *Character) HandleEvent(ev Event) {
	switch ev.Type {
	case EventKeyDown:
		switch ev.Key {
		case c.LeftKey:
			if !c.inputLeft {
				c.inputLeft = true
				c.goLeft, c.goRight = true, false
				c.run(false)
			}
		case c.RightKey:
			if !c.inputRight {
				c.inputRight = true
				c.goRight, c.goLeft = true, false
				c.run(true)
			}
		}
	case EventKeyUp:
		switch ev.Key {
		case c.LeftKey:
			if c.inputLeft {
				c.inputLeft, c.goLeft = false, false
				c.release(c.inputRight, true)
			}
		case c.RightKey:
			if c.inputRight {
				c.inputRight, c.goRight = false, false
				c.release(c.inputLeft, false)
			}
		}
	}
}

func (c *Character) run(right bool) {
	if c.main == nil {
		return
	}
	// Every new direction key restarts the run cycle.
	_ = c.main.SetAnimation(AnimationRunning)
	c.main.SetFacingRight(right)
}

// release handles letting go of one direction while other may still be
// held; otherRight tells which way the other key points.
func (c *Character) release(otherHeld, otherRight bool) {
	if otherHeld {
		if otherRight {
			c.goRight = true
		} else {
			c.goLeft = true
		}
		if c.main != nil {
			c.main.SetFacingRight(otherRight)
		}
		return
	}
	if c.main != nil {
		_ = c.main.SetAnimation(AnimationStanding)
	}
}

// Update accelerates toward the held direction, brakes otherwise, moves
// and then animates.
func (c *Character) Update(dt int, w *World) {
	step := c.Acceleration * float64(dt)

	if c.goLeft {
		c.velocityX = max(c.velocityX-step, -c.MaxVelocity)
	} else if c.velocityX < 0 {
		c.velocityX = min(c.velocityX+step, 0)
	}
	if c.goRight {
		c.velocityX = min(c.velocityX+step, c.MaxVelocity)
	} else if c.velocityX > 0 {
		c.velocityX = max(c.velocityX-step, 0)
	}

	c.position.X += c.velocityX * float64(dt)
	c.Entity.Update(dt, w)
}

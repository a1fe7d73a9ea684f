package sidescroll

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Positioner is anything with a world position the camera can follow.
type Positioner interface {
	Position() Vec2
}

// scrollAnim holds active scroll-to tweens for camera X and Y.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Camera is the viewport's position in map-pixel space. X and Y are the map
// pixel shown at the viewport's top-left corner.
type Camera struct {
	X, Y float64
	// Width and Height are the viewport size in logical pixels.
	Width, Height float64

	followTarget  Positioner
	followOffsetX float64
	followOffsetY float64
	followLerp    float64

	// BoundsEnabled clamps the camera so the viewport stays inside Bounds.
	BoundsEnabled bool
	// Bounds is the map-space rectangle the camera is clamped to.
	Bounds Rect

	scrollTween *scrollAnim
}

func newCamera(width, height float64) *Camera {
	return &Camera{Width: width, Height: height}
}

// Position returns the camera's top-left offset.
func (c *Camera) Position() Vec2 {
	return Vec2{c.X, c.Y}
}

// SetPosition moves the camera immediately and cancels any scroll.
func (c *Camera) SetPosition(p Vec2) {
	c.X, c.Y = p.X, p.Y
	c.scrollTween = nil
}

// Follow keeps target centered in the viewport, shifted by the offset. A
// lerp of 1 snaps immediately; lower values trail behind.
func (c *Camera) Follow(target Positioner, offsetX, offsetY, lerp float64) {
	c.followTarget = target
	c.followOffsetX = offsetX
	c.followOffsetY = offsetY
	c.followLerp = lerp
}

// Unfollow stops tracking the current target.
func (c *Camera) Unfollow() {
	c.followTarget = nil
}

// ScrollTo animates the camera's top-left to (x, y) over durationMs.
func (c *Camera) ScrollTo(x, y float64, durationMs int, easeFn ease.TweenFunc) {
	c.scrollTween = &scrollAnim{
		tweenX: gween.New(float32(c.X), float32(x), float32(durationMs), easeFn),
		tweenY: gween.New(float32(c.Y), float32(y), float32(durationMs), easeFn),
	}
}

// ScrollToTile scrolls so the given map tile ends up centered.
func (c *Camera) ScrollToTile(col, row int, durationMs int, easeFn ease.TweenFunc) {
	x := float64(col*TileSize+TileSize/2) - c.Width/2
	y := float64(row*TileSize+TileSize/2) - c.Height/2
	c.ScrollTo(x, y, durationMs, easeFn)
}

// Scrolling reports whether a ScrollTo is in progress.
func (c *Camera) Scrolling() bool {
	return c.scrollTween != nil
}

// SetBounds enables bounds clamping.
func (c *Camera) SetBounds(bounds Rect) {
	c.BoundsEnabled = true
	c.Bounds = bounds
}

// ClearBounds disables bounds clamping.
func (c *Camera) ClearBounds() {
	c.BoundsEnabled = false
}

// update advances follow, scroll and bounds clamping by dt milliseconds.
func (c *Camera) update(dt int) {
	if c.followTarget != nil {
		p := c.followTarget.Position()
		targetX := p.X + c.followOffsetX - c.Width/2
		targetY := p.Y + c.followOffsetY - c.Height/2
		c.X += (targetX - c.X) * c.followLerp
		c.Y += (targetY - c.Y) * c.followLerp
	}

	if c.scrollTween != nil {
		if !c.scrollTween.doneX {
			val, done := c.scrollTween.tweenX.Update(float32(dt))
			c.X = float64(val)
			c.scrollTween.doneX = done
		}
		if !c.scrollTween.doneY {
			val, done := c.scrollTween.tweenY.Update(float32(dt))
			c.Y = float64(val)
			c.scrollTween.doneY = done
		}
		if c.scrollTween.doneX && c.scrollTween.doneY {
			c.scrollTween = nil
		}
	}

	if c.BoundsEnabled {
		c.clampToBounds()
	}
}

// clampToBounds keeps the viewport inside Bounds, centering on any axis
// where Bounds is smaller than the viewport.
func (c *Camera) clampToBounds() {
	minX, maxX := c.Bounds.X, c.Bounds.X+c.Bounds.Width-c.Width
	minY, maxY := c.Bounds.Y, c.Bounds.Y+c.Bounds.Height-c.Height

	if minX > maxX {
		c.X = c.Bounds.X + (c.Bounds.Width-c.Width)/2
	} else {
		c.X = math.Max(minX, math.Min(c.X, maxX))
	}
	if minY > maxY {
		c.Y = c.Bounds.Y + (c.Bounds.Height-c.Height)/2
	} else {
		c.Y = math.Max(minY, math.Min(c.Y, maxY))
	}
}

// centerSmallAxes centers the viewport over a map of the given pixel size on
// every axis where the map is smaller than the viewport.
func (c *Camera) centerSmallAxes(mapW, mapH float64) {
	if mapW < c.Width {
		c.X = (mapW - c.Width) / 2
	}
	if mapH < c.Height {
		c.Y = (mapH - c.Height) / 2
	}
}

// VisibleBounds returns the map-space rectangle the viewport shows.
func (c *Camera) VisibleBounds() Rect {
	return Rect{X: c.X, Y: c.Y, Width: c.Width, Height: c.Height}
}

// ScreenToWorld converts viewport coordinates to map coordinates.
func (c *Camera) ScreenToWorld(sx, sy float64) (wx, wy float64) {
	return sx + c.X, sy + c.Y
}

// WorldToScreen converts map coordinates to viewport coordinates.
func (c *Camera) WorldToScreen(wx, wy float64) (sx, sy float64) {
	return wx - c.X, wy - c.Y
}

package sidescroll

import "image"

// Engine geometry. Tile and viewport sizes are logical pixels; the window may
// scale the viewport but the engine never draws outside it.
const (
	// TileSize is the width and height of one map tile.
	TileSize = 16
	// TilesetColumns is how many tiles a tileset sheet holds per row.
	TilesetColumns = 16

	// ViewportWidth and ViewportHeight are the logical render area.
	ViewportWidth  = 320
	ViewportHeight = 240
)

// Vec2 is a 2D vector used for positions and offsets.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Point is an integer pixel coordinate inside a texture.
type Point struct {
	X, Y int
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Span is a half-open index range [Start, End).
type Span struct {
	Start, End int
}

// Len returns the number of indices in the span.
func (s Span) Len() int {
	if s.End < s.Start {
		return 0
	}
	return s.End - s.Start
}

// pixelRect builds an image.Rectangle from an origin and a size.
func pixelRect(x, y, w, h int) image.Rectangle {
	return image.Rect(x, y, x+w, y+h)
}

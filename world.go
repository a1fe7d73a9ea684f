package sidescroll

import (
	"fmt"
	"image"
	"math"
)

// World is one loaded map seen through the viewport: a tile layer drawn
// from a tileset, a parallax background behind it and the entities in
// front. It owns its map and entities; textures belong to the context's
// cache.
type World struct {
	ctx    *EngineContext
	camera *Camera
	doc    *MapDocument

	tileset    *Texture
	background *Texture
	bgSrc      image.Rectangle

	entities   []Drawable
	sink       EventSink
	collisions []CollisionEvent
}

// CreateWorld loads Cmfs/<name>.cmf and resolves its textures.
func CreateWorld(ctx *EngineContext, name string) (*World, error) {
	doc, err := LoadMap(ctx.Store, name, ctx.VerifyChecksums)
	if err != nil {
		ctx.Log.Error().Err(err).Str("map", name).Msg("map load failed")
		return nil, unable(ErrWorldCreation, fmt.Sprintf("create world %q", name), err)
	}
	return NewWorld(ctx, doc)
}

// NewWorld builds a world around an already loaded map.
func NewWorld(ctx *EngineContext, doc *MapDocument) (*World, error) {
	tileset, err := ctx.Textures.ResolveOrLoad(doc.TilesetName().String())
	if err != nil {
		ctx.Log.Error().Err(err).Stringer("tileset", doc.TilesetName()).Msg("tileset load failed")
		return nil, unable(ErrWorldCreation, "resolve tileset", err)
	}
	background, err := ctx.Textures.ResolveOrLoad(doc.BackgroundName().String())
	if err != nil {
		ctx.Log.Error().Err(err).Stringer("background", doc.BackgroundName()).Msg("background load failed")
		return nil, unable(ErrWorldCreation, "resolve background", err)
	}

	vw, vh := ctx.Viewport()
	w := &World{
		ctx:        ctx,
		camera:     newCamera(float64(vw), float64(vh)),
		doc:        doc,
		tileset:    tileset,
		background: background,
		bgSrc:      background.Bounds(),
	}
	ctx.Log.Debug().
		Int("cols", doc.Width()).Int("rows", doc.Height()).
		Stringer("tileset", doc.TilesetName()).Stringer("background", doc.BackgroundName()).
		Msg("world created")
	return w, nil
}

// Camera returns the world's camera.
func (w *World) Camera() *Camera { return w.camera }

// Map returns the world's map.
func (w *World) Map() *MapDocument { return w.doc }

// Context returns the engine context the world was created with.
func (w *World) Context() *EngineContext { return w.ctx }

// Tileset returns the tileset texture.
func (w *World) Tileset() *Texture { return w.tileset }

// Background returns the background texture.
func (w *World) Background() *Texture { return w.background }

// AddEntity appends d to the draw list; later entities draw on top.
func (w *World) AddEntity(d Drawable) {
	w.entities = append(w.entities, d)
}

// RemoveEntity removes d, keeping the order of the rest.
func (w *World) RemoveEntity(d Drawable) bool {
	for i, e := range w.entities {
		if e == d {
			w.entities = append(w.entities[:i], w.entities[i+1:]...)
			return true
		}
	}
	return false
}

// Entities returns the entities in draw order.
func (w *World) Entities() []Drawable { return w.entities }

// SetEventSink routes collision events to sink. Nil disables publishing.
func (w *World) SetEventSink(sink EventSink) { w.sink = sink }

// Collisions returns the collisions found by the last Update.
func (w *World) Collisions() []CollisionEvent { return w.collisions }

// BoundCamera keeps the camera inside the map on axes where the map is
// larger than the viewport.
func (w *World) BoundCamera() {
	mw, mh := w.doc.PixelSize()
	w.camera.SetBounds(Rect{Width: float64(mw), Height: float64(mh)})
}

// HandleEvent forwards ev to every entity.
func (w *World) HandleEvent(ev Event) {
	for _, e := range w.entities {
		e.HandleEvent(ev)
	}
}

// Update advances the camera, centers it over maps smaller than the
// viewport, updates every entity by dt milliseconds and then collects
// collisions.
func (w *World) Update(dt int) {
	w.camera.update(dt)
	mw, mh := w.doc.PixelSize()
	w.camera.centerSmallAxes(float64(mw), float64(mh))

	for i := 0; i < len(w.entities); i++ {
		w.entities[i].Update(dt, w)
	}
	w.detectCollisions()
}

func (w *World) detectCollisions() {
	w.collisions = w.collisions[:0]
	for i := 0; i < len(w.entities); i++ {
		ci, ok := w.entities[i].(Collider)
		if !ok {
			continue
		}
		for j := i + 1; j < len(w.entities); j++ {
			cj, ok := w.entities[j].(Collider)
			if !ok {
				continue
			}
			for _, a := range ci.Sprites() {
				for _, b := range cj.Sprites() {
					if !a.Collide(b) {
						continue
					}
					ev := CollisionEvent{A: i, B: j, SpriteA: a, SpriteB: b}
					w.collisions = append(w.collisions, ev)
					if w.sink != nil {
						w.sink.EmitCollision(ev)
					}
				}
			}
		}
	}
}

// Draw renders the background, the visible tiles and the entities, in that
// order, to the context's renderer.
func (w *World) Draw() {
	r := w.ctx.Renderer
	if r == nil {
		return
	}
	w.drawBackground(r)
	w.drawMap(r)
	w.drawEntities(r)
}

// drawBackground tiles the background over the viewport, scrolled at half
// the camera's speed.
func (w *World) drawBackground(r Renderer) {
	bg := w.background
	if bg == nil || bg.Width <= 0 || bg.Height <= 0 {
		return
	}
	vw, vh := w.ctx.Viewport()
	x0 := parallaxOffset(w.camera.X, bg.Width)
	y0 := parallaxOffset(w.camera.Y, bg.Height)
	for y := y0; y < vh; y += bg.Height {
		for x := x0; x < vw; x += bg.Width {
			r.Blit(bg, w.bgSrc, pixelRect(x, y, bg.Width, bg.Height))
		}
	}
}

// parallaxOffset returns where the first background copy starts on one
// axis: half the camera displacement, wrapped into (-size, 0].
func parallaxOffset(cam float64, size int) int {
	off := int(math.Floor(-cam/2)) % size
	if off > 0 {
		off -= size
	}
	return off
}

func (w *World) drawMap(r Renderer) {
	if w.tileset == nil {
		return
	}
	cols, rows := w.VisibleTiles()
	ox := -cameraPixel(w.camera.X)
	oy := -cameraPixel(w.camera.Y)
	for row := rows.Start; row < rows.End; row++ {
		line := w.doc.tiles[row]
		for col := cols.Start; col < cols.End; col++ {
			v := int(line[col])
			src := pixelRect(v%TilesetColumns*TileSize, v/TilesetColumns*TileSize, TileSize, TileSize)
			dst := pixelRect(col*TileSize+ox, row*TileSize+oy, TileSize, TileSize)
			r.Blit(w.tileset, src, dst)
		}
	}
}

func (w *World) drawEntities(r Renderer) {
	origin := w.camera.Position()
	for _, e := range w.entities {
		e.Draw(r, origin)
	}
}

// VisibleTiles returns the column and row ranges whose tiles can appear in
// the viewport at the current camera position.
func (w *World) VisibleTiles() (cols, rows Span) {
	vw, vh := w.ctx.Viewport()
	cols = visibleSpan(w.camera.X, vw, w.doc.Width())
	rows = visibleSpan(w.camera.Y, vh, w.doc.Height())
	return cols, rows
}

// visibleSpan clips one axis. Maps that fit in the viewport are visited
// whole; larger ones only from the tile under the camera to the last tile
// the viewport can reach.
func visibleSpan(cam float64, viewport, dim int) Span {
	if dim*TileSize <= viewport {
		return Span{0, dim}
	}
	c := cameraPixel(cam)
	start := floorDiv(c, TileSize)
	end := floorDiv(c+TileSize-1+viewport, TileSize)
	start = max(0, min(start, dim))
	end = max(start, min(end, dim))
	return Span{start, end}
}

// cameraPixel is the map pixel drawn at viewport column (or row) 0 for a
// camera coordinate. Tile placement and clipping both use it.
func cameraPixel(cam float64) int {
	return int(math.Ceil(cam))
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

package sidescroll

import "github.com/hajimehoshi/ebiten/v2"

// Drawable is anything the World updates, feeds events to and draws.
type Drawable interface {
	// Update advances the object by dt milliseconds.
	Update(dt int, w *World)
	// HandleEvent reacts to one input event.
	HandleEvent(ev Event)
	// Draw renders the object translated by -origin.
	Draw(r Renderer, origin Vec2)
}

// EventType identifies the kind of an input Event.
type EventType uint8

const (
	EventKeyDown EventType = iota + 1
	EventKeyUp
	EventQuit
)

func (t EventType) String() string {
	switch t {
	case EventKeyDown:
		return "keydown"
	case EventKeyUp:
		return "keyup"
	case EventQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Event is one input event delivered to the world once per frame.
type Event struct {
	Type EventType
	Key  ebiten.Key
}

// KeyDown returns a key press event.
func KeyDown(k ebiten.Key) Event { return Event{Type: EventKeyDown, Key: k} }

// KeyUp returns a key release event.
func KeyUp(k ebiten.Key) Event { return Event{Type: EventKeyUp, Key: k} }

// Collider is implemented by drawables whose sprites take part in
// collision detection.
type Collider interface {
	Sprites() []*Sprite
}

// CollisionEvent reports two overlapping sprites belonging to different
// entities. Indices refer to World.Entities at the time of the update.
type CollisionEvent struct {
	A, B             int
	SpriteA, SpriteB *Sprite
}

// EventSink receives the collisions found during each World.Update.
type EventSink interface {
	EmitCollision(ev CollisionEvent)
}

package ecs

import (
	"testing"

	"github.com/phanxgames/sidescroll"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/yohamta/donburi"
)

func TestDonburiSinkEmit(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)
	require.NotNil(t, sink)

	var received []sidescroll.CollisionEvent
	CollisionEventType.Subscribe(world, func(w donburi.World, e sidescroll.CollisionEvent) {
		received = append(received, e)
	})

	sink.EmitCollision(sidescroll.CollisionEvent{A: 0, B: 3})
	sink.EmitCollision(sidescroll.CollisionEvent{A: 1, B: 2})

	// Events are queued until processed.
	require.Empty(t, received)
	CollisionEventType.ProcessEvents(world)

	require.Len(t, received, 2)
	require.Equal(t, 3, received[0].B)
	require.Equal(t, 1, received[1].A)
}

func TestDonburiSinkMultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var count1, count2 int
	CollisionEventType.Subscribe(world, func(w donburi.World, e sidescroll.CollisionEvent) {
		count1++
	})
	CollisionEventType.Subscribe(world, func(w donburi.World, e sidescroll.CollisionEvent) {
		count2++
	})

	sink.EmitCollision(sidescroll.CollisionEvent{})
	CollisionEventType.ProcessEvents(world)

	require.Equal(t, 1, count1)
	require.Equal(t, 1, count2)
}

func boxSprite(t *testing.T) *sidescroll.Sprite {
	t.Helper()
	s := sidescroll.NewSprite()
	err := s.Create(nil, sidescroll.SpriteDescriptor{
		Name:    "main",
		Texture: "box",
		Width:   16,
		Height:  16,
		Hitbox:  &sidescroll.HitboxDescriptor{Width: 16, Height: 16},
		Animations: []sidescroll.AnimationDescriptor{{
			Name: "idle",
			Frames: []sidescroll.FrameDescriptor{{
				Duration: 100,
				Left:     &sidescroll.CoordDescriptor{},
				Right:    &sidescroll.CoordDescriptor{},
			}},
		}},
	})
	require.NoError(t, err)
	return s
}

func TestWorldCollisionsReachDonburi(t *testing.T) {
	ctx := sidescroll.NewEngineContext(nil, nil, zerolog.Nop())
	ctx.Textures = sidescroll.NewTextureCache(func(name string) (*sidescroll.Texture, error) {
		return &sidescroll.Texture{Name: name, Width: 256, Height: 256}, nil
	})
	doc, err := sidescroll.NewMapDocument(4, 4)
	require.NoError(t, err)
	w, err := sidescroll.NewWorld(ctx, doc)
	require.NoError(t, err)

	a := &sidescroll.Entity{Name: "a"}
	a.AddSprite(boxSprite(t))
	b := &sidescroll.Entity{Name: "b"}
	b.AddSprite(boxSprite(t))
	b.SetPosition(sidescroll.Vec2{X: 8, Y: 8})
	w.AddEntity(a)
	w.AddEntity(b)

	ecsWorld := donburi.NewWorld()
	w.SetEventSink(NewDonburiSink(ecsWorld))

	var received []sidescroll.CollisionEvent
	CollisionEventType.Subscribe(ecsWorld, func(_ donburi.World, e sidescroll.CollisionEvent) {
		received = append(received, e)
	})

	w.Update(16)
	CollisionEventType.ProcessEvents(ecsWorld)

	require.Len(t, received, 1)
	require.Equal(t, 0, received[0].A)
	require.Equal(t, 1, received[0].B)
	require.Same(t, a.Sprites()[0], received[0].SpriteA)

	// Moved apart: nothing new is published.
	b.SetPosition(sidescroll.Vec2{X: 100, Y: 100})
	w.Update(16)
	CollisionEventType.ProcessEvents(ecsWorld)
	require.Len(t, received, 1)
}

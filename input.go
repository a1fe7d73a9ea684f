package sidescroll

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// inputSource reports keyboard edges and window close requests for one
// frame.
type inputSource interface {
	appendPressed(keys []ebiten.Key) []ebiten.Key
	appendReleased(keys []ebiten.Key) []ebiten.Key
	closing() bool
}

// ebitenInput reads the real keyboard and window.
type ebitenInput struct{}

func (ebitenInput) appendPressed(keys []ebiten.Key) []ebiten.Key {
	return inpututil.AppendJustPressedKeys(keys)
}

func (ebitenInput) appendReleased(keys []ebiten.Key) []ebiten.Key {
	return inpututil.AppendJustReleasedKeys(keys)
}

func (ebitenInput) closing() bool {
	return ebiten.IsWindowBeingClosed()
}

// pollEvents builds this frame's events: at most one injected event, then
// key presses, then key releases, then a quit if the window is closing.
func (g *Game) pollEvents() []Event {
	g.events = g.events[:0]

	if ev, ok := g.popInjected(); ok {
		g.events = append(g.events, ev)
	}

	g.keys = g.input.appendPressed(g.keys[:0])
	for _, k := range g.keys {
		g.events = append(g.events, KeyDown(k))
	}
	g.keys = g.input.appendReleased(g.keys[:0])
	for _, k := range g.keys {
		g.events = append(g.events, KeyUp(k))
	}

	if g.input.closing() {
		g.events = append(g.events, Event{Type: EventQuit})
	}
	return g.events
}

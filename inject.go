package sidescroll

import "github.com/hajimehoshi/ebiten/v2"

// InjectEvent queues a synthetic event. Injected events are delivered one
// per frame, ahead of real input, in the order they were queued.
func (g *Game) InjectEvent(ev Event) {
	g.injectQueue = append(g.injectQueue, ev)
}

// InjectKeyDown queues a key press.
func (g *Game) InjectKeyDown(k ebiten.Key) {
	g.InjectEvent(KeyDown(k))
}

// InjectKeyUp queues a key release.
func (g *Game) InjectKeyUp(k ebiten.Key) {
	g.InjectEvent(KeyUp(k))
}

// InjectTap queues a press followed by a release. Consumes two frames.
func (g *Game) InjectTap(k ebiten.Key) {
	g.InjectKeyDown(k)
	g.InjectKeyUp(k)
}

// InjectHold queues a press, frames-2 idle frames and a release, so the key
// stays down for the given number of frames. Minimum frames is 2.
func (g *Game) InjectHold(k ebiten.Key, frames int) {
	if frames < 2 {
		frames = 2
	}
	g.InjectKeyDown(k)
	for i := 0; i < frames-2; i++ {
		g.InjectEvent(Event{})
	}
	g.InjectKeyUp(k)
}

// popInjected removes the next injected event. Zero events are idle
// placeholders and report no event, but still consume their frame.
func (g *Game) popInjected() (Event, bool) {
	if len(g.injectQueue) == 0 {
		return Event{}, false
	}
	ev := g.injectQueue[0]
	copy(g.injectQueue, g.injectQueue[1:])
	g.injectQueue = g.injectQueue[:len(g.injectQueue)-1]
	return ev, ev.Type != 0
}

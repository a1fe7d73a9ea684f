package sidescroll

import "time"

// DrawStats counts what a ScreenRenderer did with the blits of one frame.
type DrawStats struct {
	Blits   int // requested
	Drawn   int
	Culled  int // destination outside the target
	Skipped int // no target, no texture or an empty source
}

// frameStats holds per-frame timing and draw metrics.
// Only logged when EngineContext.Debug is true.
type frameStats struct {
	updateTime time.Duration
	drawTime   time.Duration
	draw       DrawStats
	entities   int
	collisions int
}

// debugLogInterval is the number of frames between two debug log lines.
const debugLogInterval = 60

// debugLog writes the last frame's stats to the context logger every
// debugLogInterval frames.
func (g *Game) debugLog() {
	if !g.ctx.Debug || g.frame%debugLogInterval != 0 {
		return
	}
	s := g.stats
	cols, rows := g.world.VisibleTiles()
	g.ctx.Log.Debug().
		Int("frame", g.frame).
		Dur("update", s.updateTime).
		Dur("draw", s.drawTime).
		Int("blits", s.draw.Blits).
		Int("drawn", s.draw.Drawn).
		Int("culled", s.draw.Culled).
		Int("skipped", s.draw.Skipped).
		Int("entities", s.entities).
		Int("collisions", s.collisions).
		Int("tiles", cols.Len()*rows.Len()).
		Msg("frame stats")
}

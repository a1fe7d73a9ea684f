package sidescroll

import (
	"errors"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// RunConfig holds the window and loop settings for Run.
type RunConfig struct {
	Title        string
	WindowWidth  int
	WindowHeight int
	Fullscreen   bool
	// TPS is the number of updates per second. Zero keeps ebiten's default.
	TPS   int
	VSync bool
}

// Game adapts a World to ebiten's game loop. Each Update measures the time
// since the previous one with a FrameTimer, feeds the frame's input events to
// the world and advances it; each Draw renders the world to the screen.
type Game struct {
	// QuitKey ends the loop when pressed. Defaults to Escape.
	QuitKey ebiten.Key
	// ShowFPS overlays the measured FPS and TPS.
	ShowFPS bool
	// ScreenshotDir is where Screenshot writes PNGs.
	ScreenshotDir string
	// OnUpdate, if set, runs after the world has been updated each frame.
	OnUpdate func(dt int)

	ctx    *EngineContext
	world  *World
	screen *ScreenRenderer
	timer  *FrameTimer
	input  inputSource

	running bool
	frame   int
	stats   frameStats

	events          []Event
	keys            []ebiten.Key
	injectQueue     []Event
	screenshotQueue []string
	testRunner      *TestRunner
}

// NewGame wraps world in a game. The context's renderer is replaced by the
// game's screen renderer.
func NewGame(ctx *EngineContext, world *World) *Game {
	g := &Game{
		QuitKey:       ebiten.KeyEscape,
		ScreenshotDir: "screenshots",
		ctx:           ctx,
		world:         world,
		screen:        NewScreenRenderer(),
		timer:         NewFrameTimer(),
		input:         ebitenInput{},
		running:       true,
	}
	ctx.Renderer = g.screen
	return g
}

// World returns the world being run.
func (g *Game) World() *World { return g.world }

// Running reports whether the loop has not been asked to stop.
func (g *Game) Running() bool { return g.running }

// Frame returns the number of updates run so far.
func (g *Game) Frame() int { return g.frame }

// Stop ends the loop at the next Update.
func (g *Game) Stop() {
	g.running = false
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	if !g.running {
		return ebiten.Termination
	}
	if !g.timer.Running() {
		g.timer.Start()
	}
	start := time.Now()
	dt := int(g.timer.Lap())

	if g.testRunner != nil {
		g.testRunner.step(g)
	}

	for _, ev := range g.pollEvents() {
		if ev.Type == EventQuit || (ev.Type == EventKeyDown && ev.Key == g.QuitKey) {
			g.ctx.Log.Info().Stringer("event", ev.Type).Msg("quit requested")
			g.running = false
			return ebiten.Termination
		}
		g.world.HandleEvent(ev)
	}

	g.world.Update(dt)
	if g.OnUpdate != nil {
		g.OnUpdate(dt)
	}
	g.frame++
	g.stats.updateTime = time.Since(start)
	g.stats.entities = len(g.world.Entities())
	g.stats.collisions = len(g.world.Collisions())
	return nil
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	start := time.Now()
	g.screen.Target = screen
	g.screen.ResetStats()

	g.world.Draw()

	if g.ShowFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
	g.flushScreenshots(screen)

	g.stats.draw = g.screen.Stats()
	g.stats.drawTime = time.Since(start)
	g.debugLog()
}

// Layout implements ebiten.Game. The logical screen is always the
// context's viewport; ebiten scales it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.ctx.Viewport()
}

// Run opens the window and runs g until it quits or the window is closed.
func Run(g *Game, cfg RunConfig) error {
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	w, h := cfg.WindowWidth, cfg.WindowHeight
	if w <= 0 || h <= 0 {
		w, h = g.ctx.Viewport()
		w, h = w*2, h*2
	}
	ebiten.SetWindowSize(w, h)
	ebiten.SetFullscreen(cfg.Fullscreen)
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}
	ebiten.SetVsyncEnabled(cfg.VSync)
	ebiten.SetWindowClosingHandled(true)

	g.ctx.Log.Info().Int("width", w).Int("height", h).Bool("fullscreen", cfg.Fullscreen).Msg("starting game loop")
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("sidescroll: run game: %w", err)
	}
	return nil
}

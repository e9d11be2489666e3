package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/voidscrubbers/config"
	"github.com/automoto/voidscrubbers/controls"
	"github.com/automoto/voidscrubbers/fonts"
	"github.com/automoto/voidscrubbers/scenes"
	"github.com/automoto/voidscrubbers/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	ctx    *controls.Context
	scene  Scene
	prefs  *systems.SavedPreferences
}

// ChangeScene switches to a new scene, releasing the old one's listeners
func (g *Game) ChangeScene(scene interface{}) {
	if d, ok := g.scene.(scenes.Disposer); ok {
		d.Dispose()
	}
	g.scene = scene.(Scene)
}

func NewGame(prefs *systems.SavedPreferences) *Game {
	g := &Game{
		bounds: image.Rectangle{},
		ctx:    controls.NewContext(&controls.EbitenGamepads{}),
		prefs:  prefs,
	}
	if g.prefs == nil {
		g.prefs = &systems.SavedPreferences{}
	}

	g.ctx.Window.AddKeyListener(func(ev *controls.KeyEvent) {
		if ev.Down && !ev.Repeat && ev.Key == ebiten.KeyF11 {
			ev.PreventDefault()
			g.toggleFullscreen()
		}
	})

	if config.Debug.SkipMenu {
		g.ctx.Players.AssignSeat(0, controls.PlayerData{
			DisplayName: config.PlayerSelect.DefaultPlayers[0].DisplayName,
			UniqueID:    config.PlayerSelect.DefaultPlayers[0].UniqueID,
		}, controls.NewKeyboardMouseInput().Controller(g.ctx))
		g.scene = scenes.NewWorldScene(g, g.ctx)
	} else {
		g.scene = scenes.NewTitleScene(g, g.ctx)
	}

	return g
}

func (g *Game) toggleFullscreen() {
	g.prefs.Fullscreen = !ebiten.IsFullscreen()
	ebiten.SetFullscreen(g.prefs.Fullscreen)
	// The roster may have been saved since startup
	if saved, err := systems.LoadPreferences(); err == nil && saved != nil {
		saved.Fullscreen = g.prefs.Fullscreen
		g.prefs = saved
	}
	if err := systems.SavePreferences(g.prefs); err != nil {
		log.Printf("Warning: Could not save preferences: %v", err)
	}
}

func (g *Game) Update() error {
	controls.PollWindow(g.ctx.Window)
	g.ctx.Tick()
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	skipMenu := flag.Bool("skip-menu", config.Debug.SkipMenu, "Skip the menus, the keyboard takes seat 0")
	traceEvents := flag.Bool("trace-events", config.Debug.TraceEvents, "Print every controller event to stderr")
	debugDraw := flag.Bool("debug-draw", config.Viewport.DebugDraw, "Draw collision bodies and camera bounds")
	seed := flag.Int64("seed", config.World.Seed, "Random world seed")
	mapName := flag.String("map", config.World.MapName, "Embedded map to load instead of a random world")
	flag.Parse()

	config.Debug.SkipMenu = *skipMenu
	config.Debug.TraceEvents = *traceEvents
	config.Viewport.DebugDraw = *debugDraw
	config.World.Seed = *seed
	config.World.MapName = *mapName

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.C.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	saved, err := systems.LoadPreferences()
	if err != nil {
		log.Printf("Warning: Could not load preferences: %v", err)
	}
	systems.ApplyPreferencesGlobal(saved)

	if err := ebiten.RunGame(NewGame(saved)); err != nil {
		log.Fatal(err)
	}
}

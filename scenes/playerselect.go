package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/voidscrubbers/archetypes"
	"github.com/automoto/voidscrubbers/components"
	cfg "github.com/automoto/voidscrubbers/config"
	"github.com/automoto/voidscrubbers/controls"
	"github.com/automoto/voidscrubbers/systems"
	"github.com/automoto/voidscrubbers/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PlayerSelectScene lets players pick their inputs using ebitenui
type PlayerSelectScene struct {
	ecs          *ecs.ECS
	ctx          *controls.Context
	sceneChanger SceneChanger
	selectUI     *ui.PlayerSelectUI
	selectData   *components.PlayerSelectData
	once         sync.Once
	escListener  controls.WindowListenerID
	shouldStart  bool
	shouldGoBack bool
}

// NewPlayerSelectScene creates a new player select scene
func NewPlayerSelectScene(sc SceneChanger, ctx *controls.Context) *PlayerSelectScene {
	return &PlayerSelectScene{sceneChanger: sc, ctx: ctx}
}

func (ps *PlayerSelectScene) Update() {
	ps.once.Do(ps.configure)

	ps.ecs.Update()
	ps.selectUI.Update()

	// Handle scene transitions
	if ps.shouldStart {
		ps.startRound()
		return
	}
	if ps.shouldGoBack {
		ps.sceneChanger.ChangeScene(NewTitleScene(ps.sceneChanger, ps.ctx))
		return
	}
}

func (ps *PlayerSelectScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.selectUI.UI.Draw(screen)
}

func (ps *PlayerSelectScene) configure() {
	ps.ecs = ecs.NewECS(donburi.NewWorld())

	// Seats left over from a previous round are released here
	ps.ctx.Players.Reset()
	ps.ctx.Players.SetMenuMode(nil, true)

	entry := archetypes.PlayerSelect.Spawn(ps.ecs)
	components.PlayerSelect.SetValue(entry, systems.NewPlayerSelectData())
	ps.selectData = components.PlayerSelect.Get(entry)

	prefs, err := systems.LoadPreferences()
	if err != nil {
		log.Printf("[select] could not load saved roster: %v", err)
	}
	systems.RestoreRoster(ps.selectData, prefs, ps.ctx.Gamepads.Gamepads())

	ps.selectUI = ui.NewPlayerSelectUI(
		ps.selectData,
		func(index int) { systems.BeginSelectingInput(ps.ctx, ps.selectData, index) },
		func() { systems.AddPlayer(ps.selectData) },
		func() { ps.shouldStart = true },
		func() { ps.shouldGoBack = true },
	)

	// Escape cancels a pending selection, otherwise leaves the screen. It is
	// registered before any selection listener so it runs first.
	ps.escListener = ps.ctx.Window.AddKeyListener(func(ev *controls.KeyEvent) {
		if !ev.Down || ev.Repeat || ev.Key != cfg.Controls.MenuReject {
			return
		}
		ev.PreventDefault()
		if ps.selectData.Selecting != components.NotSelecting {
			systems.StopSelectingInput(ps.ctx, ps.selectData)
			return
		}
		ps.shouldGoBack = true
	})
}

func (ps *PlayerSelectScene) startRound() {
	seats := systems.StartRound(ps.ctx, ps.selectData)
	log.Printf("[select] starting round with %d players", len(seats))
	ps.sceneChanger.ChangeScene(NewWorldScene(ps.sceneChanger, ps.ctx))
}

// Dispose releases the escape listener and any pending selection
func (ps *PlayerSelectScene) Dispose() {
	if ps.ecs == nil {
		return
	}
	ps.ctx.Window.RemoveListener(ps.escListener)
	systems.StopSelectingInput(ps.ctx, ps.selectData)
}

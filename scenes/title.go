package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/voidscrubbers/config"
	"github.com/automoto/voidscrubbers/controls"
	"github.com/automoto/voidscrubbers/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// Disposer is implemented by scenes holding input listeners that must be
// released when the scene is replaced.
type Disposer interface {
	Dispose()
}

// TitleScene waits for Enter or any gamepad button
type TitleScene struct {
	ecs          *ecs.ECS
	ctx          *controls.Context
	sceneChanger SceneChanger
	once         sync.Once

	keyListener      controls.WindowListenerID
	activityListener controls.ListenerID
}

// NewTitleScene creates a new title scene
func NewTitleScene(sc SceneChanger, ctx *controls.Context) *TitleScene {
	return &TitleScene{sceneChanger: sc, ctx: ctx}
}

func (ts *TitleScene) Update() {
	ts.once.Do(ts.configure)
	ts.ecs.Update()

	if systems.GetOrCreateTitle(ts.ecs).Started {
		ts.sceneChanger.ChangeScene(NewPlayerSelectScene(ts.sceneChanger, ts.ctx))
	}
}

func (ts *TitleScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ts.ecs == nil {
		return
	}
	ts.ecs.Draw(screen)
}

func (ts *TitleScene) configure() {
	ts.ecs = ecs.NewECS(donburi.NewWorld())

	ts.ecs.AddSystem(systems.UpdateTitle)
	ts.ecs.AddRenderer(cfg.Default, systems.DrawTitle)

	ts.ctx.Players.SetMenuMode(nil, true)

	ts.keyListener = ts.ctx.Window.AddKeyListener(func(ev *controls.KeyEvent) {
		if ev.Down && !ev.Repeat && ev.Key == cfg.Controls.MenuAccept {
			ev.PreventDefault()
			ts.start()
		}
	})
	ts.activityListener = ts.ctx.Activity.Register(func(a controls.Activity) {
		if a.Button != controls.NoButton {
			ts.start()
		}
	})
}

func (ts *TitleScene) start() {
	systems.GetOrCreateTitle(ts.ecs).Started = true
}

// Dispose releases the start listeners
func (ts *TitleScene) Dispose() {
	if ts.ecs == nil {
		return
	}
	ts.ctx.Window.RemoveListener(ts.keyListener)
	ts.ctx.Activity.Unregister(ts.activityListener)
}

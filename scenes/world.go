package scenes

import (
	"image/color"
	"log"
	"sync"

	cfg "github.com/automoto/voidscrubbers/config"
	"github.com/automoto/voidscrubbers/controls"
	"github.com/automoto/voidscrubbers/systems"
	factory2 "github.com/automoto/voidscrubbers/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// WorldScene is the shared tile world every seated player moves around in
type WorldScene struct {
	ecs          *ecs.ECS
	ctx          *controls.Context
	sceneChanger SceneChanger
	events       *systems.ControllerEvents
	once         sync.Once
	leaving      bool
}

// NewWorldScene creates a world scene for the seats already bound in ctx
func NewWorldScene(sc SceneChanger, ctx *controls.Context) *WorldScene {
	return &WorldScene{sceneChanger: sc, ctx: ctx}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	ws.ecs.Update()

	if ws.leaving {
		ws.ctx.Players.Reset()
		ws.sceneChanger.ChangeScene(NewTitleScene(ws.sceneChanger, ws.ctx))
	}
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

func (ws *WorldScene) configure() {
	ws.ctx.Players.SetMenuMode(nil, false)

	data, err := systems.BuildWorld(cfg.World.MapName, cfg.World.Seed)
	if err != nil {
		log.Printf("[world] %v, falling back to a random world", err)
		data, err = systems.BuildWorld("", cfg.World.Seed)
		if err != nil {
			panic("failed to build world: " + err.Error())
		}
	}

	ecs := ecs.NewECS(donburi.NewWorld())

	ws.events = systems.AttachControllerEvents(ws.ctx.Players)

	// Controller events are applied before movement so a press moves the
	// robot on the same frame
	ecs.AddSystem(systems.NewUpdateControllerEvents(ws.events, func(seat *controls.PlayerSeat) {
		log.Printf("[world] %v left the world", seat)
		ws.leaving = true
	}))
	ecs.AddSystem(systems.UpdatePlayers)
	ecs.AddSystem(systems.UpdateCamera)
	ecs.AddSystem(systems.UpdateEventLog)

	// Add renderers
	ecs.AddRenderer(cfg.Default, systems.DrawWorld)
	ecs.AddRenderer(cfg.Default, systems.DrawPlayers)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.HUD, systems.DrawEventLog)

	ws.ecs = ecs

	factory2.CreateWorld(ws.ecs, data)
	factory2.CreateEventLog(ws.ecs)

	var cx, cy float64
	seats := ws.ctx.Players.Seats()
	for i, seat := range seats {
		spawn := data.Spawns[i%len(data.Spawns)]
		factory2.CreatePlayer(ws.ecs, seat, spawn.X, spawn.Y)
		cx += spawn.X
		cy += spawn.Y
	}
	if len(seats) > 0 {
		cx /= float64(len(seats))
		cy /= float64(len(seats))
	} else {
		cx, cy = data.Width/2, data.Height/2
	}
	factory2.CreateCamera(ws.ecs, cx, cy)

	log.Printf("[world] %s ready with %d players", data.Source.ID(), len(seats))
}

// Dispose stops listening to the seats
func (ws *WorldScene) Dispose() {
	if ws.events != nil {
		ws.events.Detach()
	}
}

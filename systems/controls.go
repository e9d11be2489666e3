package systems

import (
	"github.com/automoto/voidscrubbers/components"
	cfg "github.com/automoto/voidscrubbers/config"
	"github.com/automoto/voidscrubbers/controls"
	"github.com/automoto/voidscrubbers/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// ControllerEvents buffers events from every seat until the world systems
// run, so controller callbacks never touch the ECS directly.
type ControllerEvents struct {
	players *controls.PlayerManager
	id      controls.ListenerID
	pending []controls.Event
}

// AttachControllerEvents registers a global listener on players.
func AttachControllerEvents(players *controls.PlayerManager) *ControllerEvents {
	c := &ControllerEvents{players: players}
	c.id = players.RegisterListener(nil, func(ev controls.Event) {
		c.pending = append(c.pending, ev)
	})
	return c
}

// Detach unregisters the listener and drops anything buffered.
func (c *ControllerEvents) Detach() {
	c.players.UnregisterListener(nil, c.id)
	c.pending = nil
}

// Drain returns buffered events in arrival order and empties the buffer.
func (c *ControllerEvents) Drain() []controls.Event {
	out := c.pending
	c.pending = nil
	return out
}

// NewUpdateControllerEvents applies buffered events to the robots and the
// event log. onReject runs when a keyboard seat presses the reject key.
func NewUpdateControllerEvents(events *ControllerEvents, onReject func(seat *controls.PlayerSeat)) ecs.System {
	return func(e *ecs.ECS) {
		for _, ev := range events.Drain() {
			PushEventLog(e, ev.String())
			TraceEvent(ev)

			switch ev.Kind {
			case controls.EventVelocity:
				if p := findPlayer(e, ev.Seat); p != nil {
					p.TargetVelocity = dmath.NewVec2(ev.DX, ev.DY)
				}
			case controls.EventAbsoluteAim:
				if p := findPlayer(e, ev.Seat); p != nil {
					p.Aim = dmath.NewVec2(ev.X, ev.Y)
				}
			case controls.EventRelativeAim:
				if p := findPlayer(e, ev.Seat); p != nil {
					p.Aim = dmath.NewVec2(ev.DX, ev.DY)
				}
			case controls.EventKeyboardButtonPressed:
				if ev.Key == cfg.Controls.MenuReject && onReject != nil {
					onReject(ev.Seat)
				}
			}
		}
	}
}

func findPlayer(e *ecs.ECS, seat *controls.PlayerSeat) *components.PlayerData {
	var found *components.PlayerData
	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		if found != nil {
			return
		}
		if p := components.Player.Get(entry); p.Seat == seat {
			found = p
		}
	})
	return found
}

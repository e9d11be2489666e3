package systems

import (
	"strings"
	"testing"

	"github.com/automoto/voidscrubbers/components"
	cfg "github.com/automoto/voidscrubbers/config"
	"github.com/automoto/voidscrubbers/controls"
	"github.com/hajimehoshi/ebiten/v2"
)

func TestControllerEventsDriveRobot(t *testing.T) {
	ctx := controls.NewContext(newPads())
	seat := ctx.Players.AssignSeat(0, controls.PlayerData{DisplayName: "Player 1", UniqueID: "player#1"},
		controls.NewKeyboardMouseInput().Controller(ctx))
	t.Cleanup(ctx.Players.Reset)

	e, robot := newTestWorld(t, seat, 200, 200)
	events := AttachControllerEvents(ctx.Players)
	defer events.Detach()
	update := NewUpdateControllerEvents(events, nil)

	ctx.Window.DispatchKey(&controls.KeyEvent{Key: cfg.Controls.MoveRight, Name: "D", Down: true})
	ctx.Window.DispatchPointer(30, 40)
	update(e)

	p := components.Player.Get(robot)
	if p.TargetVelocity.X != 1 || p.TargetVelocity.Y != 0 {
		t.Errorf("Expected target velocity (1, 0), got %v", p.TargetVelocity)
	}
	if p.Aim.X != 30 || p.Aim.Y != 40 {
		t.Errorf("Expected aim (30, 40), got %v", p.Aim)
	}

	entry, _ := components.EventLog.First(e.World)
	log := components.EventLog.Get(entry)
	if len(log.Entries) != 3 {
		t.Fatalf("Expected key, velocity and aim lines, got %v", log.Entries)
	}
	if !strings.HasPrefix(log.Entries[1].Text, "VelocityEvent(player=0") {
		t.Errorf("Unexpected log line %q", log.Entries[1].Text)
	}
	if len(events.Drain()) != 0 {
		t.Error("Expected the buffer to be empty after the system ran")
	}
}

func TestControllerEventsReject(t *testing.T) {
	ctx := controls.NewContext(newPads())
	seat := ctx.Players.AssignSeat(0, controls.PlayerData{}, controls.NewKeyboardMouseInput().Controller(ctx))
	t.Cleanup(ctx.Players.Reset)

	e, _ := newTestWorld(t, seat, 200, 200)
	events := AttachControllerEvents(ctx.Players)
	defer events.Detach()

	var rejected *controls.PlayerSeat
	update := NewUpdateControllerEvents(events, func(s *controls.PlayerSeat) { rejected = s })

	ctx.Window.DispatchKey(&controls.KeyEvent{Key: ebiten.KeyQ, Name: "Q", Down: true})
	update(e)
	if rejected != nil {
		t.Fatal("Expected an ordinary key not to leave the world")
	}

	ctx.Window.DispatchKey(&controls.KeyEvent{Key: cfg.Controls.MenuReject, Name: "Escape", Down: true})
	update(e)
	if rejected != seat {
		t.Errorf("Expected the reject key to report seat 0, got %v", rejected)
	}
}

func TestControllerEventsDetach(t *testing.T) {
	ctx := controls.NewContext(newPads())
	ctx.Players.AssignSeat(0, controls.PlayerData{}, controls.NewKeyboardMouseInput().Controller(ctx))
	t.Cleanup(ctx.Players.Reset)

	events := AttachControllerEvents(ctx.Players)
	events.Detach()

	ctx.Window.DispatchKey(&controls.KeyEvent{Key: ebiten.KeyQ, Name: "Q", Down: true})
	if len(events.Drain()) != 0 {
		t.Error("Expected no events after Detach")
	}
}

func TestFormatTrace(t *testing.T) {
	seat := &controls.PlayerSeat{Index: 1}
	line := formatTrace(controls.NewMenuAcceptEvent(seat))
	if !strings.Contains(line, "MenuAcceptEvent(player=1)") {
		t.Errorf("Expected the event text in the trace, got %q", line)
	}
}

package controls

import (
	"math"
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestVelocityEventNormalizes(t *testing.T) {
	seat := &PlayerSeat{Index: 0}

	ev := NewVelocityEvent(seat, 3, 4)
	if math.Abs(ev.DX-0.6) > 1e-9 || math.Abs(ev.DY-0.8) > 1e-9 {
		t.Errorf("Expected (0.6, 0.8), got (%v, %v)", ev.DX, ev.DY)
	}
	if l := math.Hypot(ev.DX, ev.DY); math.Abs(l-1) > 1e-9 {
		t.Errorf("Expected unit length, got %v", l)
	}

	zero := NewVelocityEvent(seat, 0, 0)
	if zero.DX != 0 || zero.DY != 0 {
		t.Errorf("Expected zero vector to stay zero, got (%v, %v)", zero.DX, zero.DY)
	}
	if math.IsNaN(zero.DX) || math.IsNaN(zero.DY) {
		t.Error("Zero vector normalized to NaN")
	}
}

func TestRelativeAimKeepsDeflection(t *testing.T) {
	ev := NewRelativeAimEvent(nil, 0.3, -0.4)
	if ev.DX != 0.3 || ev.DY != -0.4 {
		t.Errorf("Expected raw (0.3, -0.4), got (%v, %v)", ev.DX, ev.DY)
	}
}

func TestEventTimestamp(t *testing.T) {
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	fixedClock(t, at)

	ev := NewMenuAcceptEvent(nil)
	if !ev.Timestamp.Equal(at) {
		t.Errorf("Expected timestamp %v, got %v", at, ev.Timestamp)
	}
}

func TestEventString(t *testing.T) {
	seat := &PlayerSeat{Index: 1, Data: PlayerData{DisplayName: "Player 2"}}

	tests := []struct {
		name string
		ev   Event
		want string
	}{
		{"velocity", NewVelocityEvent(seat, 0, -1), "VelocityEvent(player=1, dx=0, dy=-1)"},
		{"velocity no seat", NewVelocityEvent(nil, 0, 0), "VelocityEvent(player=-1, dx=0, dy=0)"},
		{"relative aim", NewRelativeAimEvent(seat, 0.5, 0.25), "RelativeAimEvent(player=1, dx=0.5, dy=0.25)"},
		{"absolute aim", NewAbsoluteAimEvent(seat, 640, 360), "AbsoluteAimEvent(player=1, x=640, y=360)"},
		{"key", NewKeyboardButtonPressedEvent(seat, ebiten.KeyW, "W"), "KeyboardButtonPressedEvent(player=1, key=W)"},
		{"accept", NewMenuAcceptEvent(seat), "MenuAcceptEvent(player=1)"},
		{"reject", NewMenuRejectEvent(seat), "MenuRejectEvent(player=1)"},
		{"direction", NewMenuDirectionEvent(seat, DirectionLeft), "MenuDirectionEvent(player=1, direction=left)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ev.String(); got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestEventIsMenu(t *testing.T) {
	menu := []Event{NewMenuAcceptEvent(nil), NewMenuRejectEvent(nil), NewMenuDirectionEvent(nil, DirectionUp)}
	for _, ev := range menu {
		if !ev.IsMenu() {
			t.Errorf("Expected %s to be a menu event", ev.Kind)
		}
	}

	gameplay := []Event{
		NewVelocityEvent(nil, 1, 0),
		NewAbsoluteAimEvent(nil, 1, 1),
		NewRelativeAimEvent(nil, 1, 0),
		NewKeyboardButtonPressedEvent(nil, ebiten.KeyA, "A"),
	}
	for _, ev := range gameplay {
		if ev.IsMenu() {
			t.Errorf("Expected %s not to be a menu event", ev.Kind)
		}
	}
}

func TestSeatString(t *testing.T) {
	seat := &PlayerSeat{Index: 2, Data: PlayerData{DisplayName: "Ada", UniqueID: "player#3"}}
	if got := seat.String(); got != "seat 2 (Ada)" {
		t.Errorf("Expected %q, got %q", "seat 2 (Ada)", got)
	}
	var none *PlayerSeat
	if got := none.String(); got != "<nil seat>" {
		t.Errorf("Expected nil seat placeholder, got %q", got)
	}
}

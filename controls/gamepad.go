package controls

import (
	"fmt"
	"log"
	"math"

	cfg "github.com/automoto/voidscrubbers/config"
	"github.com/hajimehoshi/ebiten/v2"
)

type stick struct{ x, y float64 }

func (s stick) magnitude() float64 { return math.Hypot(s.x, s.y) }

func (s stick) distance(o stick) float64 { return math.Hypot(s.x-o.x, s.y-o.y) }

// gamepadMemory is the diff state carried between polls.
type gamepadMemory struct {
	seeded bool
	prev   GamepadState
	// last emitted effective vectors
	left, right stick
}

type stickTuning struct {
	deadzone, denoise, menuThreshold float64
}

func defaultStickTuning() stickTuning {
	return stickTuning{
		deadzone:      cfg.Controls.Deadzone,
		denoise:       cfg.Controls.Denoise,
		menuThreshold: cfg.Controls.MenuStickThreshold,
	}
}

// effective applies the deadzone.
func (t stickTuning) effective(s stick) stick {
	if s.magnitude() < t.deadzone {
		return stick{}
	}
	return s
}

// advanceGamepad diffs cur against the remembered state and returns the
// events it produces. The first call only records a baseline.
func advanceGamepad(m GamepadStateMapper, t stickTuning, mem *gamepadMemory, cur GamepadState, menu bool, seat *PlayerSeat) []Event {
	if !mem.seeded {
		mem.seeded = true
		mem.prev = cur
		return nil
	}
	prev := mem.prev
	mem.prev = cur

	var events []Event
	if menu {
		rising := func(get func(GamepadState) bool) bool {
			return get(cur) && !get(prev)
		}
		if rising(m.A) {
			events = append(events, NewMenuAcceptEvent(seat))
		}
		if rising(m.B) {
			events = append(events, NewMenuRejectEvent(seat))
		}
		if rising(m.DPadUp) {
			events = append(events, NewMenuDirectionEvent(seat, DirectionUp))
		}
		if rising(m.DPadDown) {
			events = append(events, NewMenuDirectionEvent(seat, DirectionDown))
		}
		if rising(m.DPadLeft) {
			events = append(events, NewMenuDirectionEvent(seat, DirectionLeft))
		}
		if rising(m.DPadRight) {
			events = append(events, NewMenuDirectionEvent(seat, DirectionRight))
		}

		th := t.menuThreshold
		x, y := m.LeftStick(cur)
		px, py := m.LeftStick(prev)
		if x > th && px <= th {
			events = append(events, NewMenuDirectionEvent(seat, DirectionRight))
		}
		if x < -th && px >= -th {
			events = append(events, NewMenuDirectionEvent(seat, DirectionLeft))
		}
		if y > th && py <= th {
			events = append(events, NewMenuDirectionEvent(seat, DirectionDown))
		}
		if y < -th && py >= -th {
			events = append(events, NewMenuDirectionEvent(seat, DirectionUp))
		}
		return events
	}

	lx, ly := m.LeftStick(cur)
	if left := t.effective(stick{lx, ly}); left.distance(mem.left) >= t.denoise {
		mem.left = left
		events = append(events, NewVelocityEvent(seat, left.x, left.y))
	}
	rx, ry := m.RightStick(cur)
	if right := t.effective(stick{rx, ry}); right.distance(mem.right) >= t.denoise {
		mem.right = right
		events = append(events, NewRelativeAimEvent(seat, right.x, right.y))
	}
	return events
}

// GamepadController polls one device once per frame.
type GamepadController struct {
	DeviceID ebiten.GamepadID

	source GamepadSource
	loop   *FrameLoop
	mapper GamepadStateMapper
	tuning stickTuning

	seat      *PlayerSeat
	listeners listenerList
	mem       gamepadMemory
	menuMode  bool
	stopped   bool
	task      TaskID
	running   bool
}

func NewGamepadController(id ebiten.GamepadID, source GamepadSource, loop *FrameLoop) *GamepadController {
	return &GamepadController{
		DeviceID: id,
		source:   source,
		loop:     loop,
		mapper:   GenericMapper{},
		tuning:   defaultStickTuning(),
	}
}

func (g *GamepadController) Init(seat *PlayerSeat) {
	g.seat = seat
	g.mem = gamepadMemory{}
	g.stopped = false
	if g.running {
		return
	}
	g.task = g.loop.Schedule(g.poll)
	g.running = true
}

func (g *GamepadController) poll() {
	if g.stopped {
		return
	}
	state, ok := g.source.State(g.DeviceID)
	if !ok {
		return
	}
	for _, ev := range advanceGamepad(g.mapper, g.tuning, &g.mem, state, g.menuMode, g.seat) {
		if g.stopped {
			return
		}
		g.listeners.emit(ev)
	}
}

func (g *GamepadController) SetMenuMode(enabled bool) { g.menuMode = enabled }

func (g *GamepadController) MenuMode() bool { return g.menuMode }

func (g *GamepadController) Register(fn Listener) ListenerID { return g.listeners.add(fn) }

func (g *GamepadController) Unregister(id ListenerID) { g.listeners.remove(id) }

func (g *GamepadController) Destroy() {
	g.stopped = true
	g.listeners.clear()
	if g.running {
		g.loop.Cancel(g.task)
		g.running = false
	}
	log.Printf("[gamepad] controller for device %d destroyed", g.DeviceID)
}

func (g *GamepadController) Describe() string {
	return fmt.Sprintf("Gamepad %d", g.DeviceID)
}

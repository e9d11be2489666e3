package controls

import (
	cfg "github.com/automoto/voidscrubbers/config"
	"github.com/hajimehoshi/ebiten/v2"
)

// KeyboardMouseController turns Window key and pointer input into events
// for one seat.
type KeyboardMouseController struct {
	window *Window

	seat      *PlayerSeat
	listeners listenerList
	menuMode  bool
	bound     []WindowListenerID

	up, down, left, right bool
}

func NewKeyboardMouseController(w *Window) *KeyboardMouseController {
	return &KeyboardMouseController{window: w}
}

func (k *KeyboardMouseController) Init(seat *PlayerSeat) {
	k.seat = seat
	k.unbind()
	k.bound = append(k.bound,
		k.window.AddKeyListener(k.onKey),
		k.window.AddPointerListener(k.onPointer),
	)
}

func (k *KeyboardMouseController) onKey(ev *KeyEvent) {
	if ev.Down && !ev.Repeat {
		k.listeners.emit(NewKeyboardButtonPressedEvent(k.seat, ev.Key, ev.Name))
	}

	if k.menuMode && ev.Down {
		switch ev.Key {
		case cfg.Controls.MenuReject:
			ev.PreventDefault()
			k.listeners.emit(NewMenuRejectEvent(k.seat))
		case cfg.Controls.MenuAccept:
			ev.PreventDefault()
			k.listeners.emit(NewMenuAcceptEvent(k.seat))
		case ebiten.KeyArrowUp:
			ev.PreventDefault()
			k.listeners.emit(NewMenuDirectionEvent(k.seat, DirectionUp))
		case ebiten.KeyArrowDown:
			ev.PreventDefault()
			k.listeners.emit(NewMenuDirectionEvent(k.seat, DirectionDown))
		case ebiten.KeyArrowLeft:
			ev.PreventDefault()
			k.listeners.emit(NewMenuDirectionEvent(k.seat, DirectionLeft))
		case ebiten.KeyArrowRight:
			ev.PreventDefault()
			k.listeners.emit(NewMenuDirectionEvent(k.seat, DirectionRight))
		}
	}

	if ev.Repeat {
		return
	}
	changed := true
	switch ev.Key {
	case cfg.Controls.MoveUp:
		k.up = ev.Down
	case cfg.Controls.MoveDown:
		k.down = ev.Down
	case cfg.Controls.MoveLeft:
		k.left = ev.Down
	case cfg.Controls.MoveRight:
		k.right = ev.Down
	default:
		changed = false
	}
	if changed {
		k.listeners.emit(NewVelocityEvent(k.seat, axis(k.right, k.left), axis(k.down, k.up)))
	}
}

func (k *KeyboardMouseController) onPointer(x, y float64) {
	k.listeners.emit(NewAbsoluteAimEvent(k.seat, x, y))
}

func axis(pos, neg bool) float64 {
	v := 0.0
	if pos {
		v++
	}
	if neg {
		v--
	}
	return v
}

func (k *KeyboardMouseController) unbind() {
	for _, id := range k.bound {
		k.window.RemoveListener(id)
	}
	k.bound = nil
}

func (k *KeyboardMouseController) SetMenuMode(enabled bool) { k.menuMode = enabled }

func (k *KeyboardMouseController) MenuMode() bool { return k.menuMode }

func (k *KeyboardMouseController) Register(fn Listener) ListenerID { return k.listeners.add(fn) }

func (k *KeyboardMouseController) Unregister(id ListenerID) { k.listeners.remove(id) }

// Destroy detaches every Window listener added by Init.
func (k *KeyboardMouseController) Destroy() {
	k.unbind()
	k.listeners.clear()
	k.up, k.down, k.left, k.right = false, false, false, false
}

func (k *KeyboardMouseController) Describe() string { return "Keyboard" }

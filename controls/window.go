package controls

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// KeyEvent is a raw key transition delivered through the Window.
type KeyEvent struct {
	Key    ebiten.Key
	Name   string
	Down   bool
	Repeat bool

	prevented bool
}

// PreventDefault marks the key as consumed so the host skips its own handling.
func (k *KeyEvent) PreventDefault() { k.prevented = true }

func (k *KeyEvent) DefaultPrevented() bool { return k.prevented }

type WindowListenerID uint64

// Window fans raw keyboard and pointer input out to the listeners that
// keyboard controllers attach.
type Window struct {
	next    WindowListenerID
	keys    map[WindowListenerID]func(*KeyEvent)
	pointer map[WindowListenerID]func(x, y float64)
	// registration order, so dispatch is deterministic
	order []WindowListenerID

	cursorX, cursorY int
	cursorKnown      bool
}

func NewWindow() *Window {
	return &Window{
		keys:    map[WindowListenerID]func(*KeyEvent){},
		pointer: map[WindowListenerID]func(x, y float64){},
	}
}

func (w *Window) AddKeyListener(fn func(*KeyEvent)) WindowListenerID {
	w.next++
	w.keys[w.next] = fn
	w.order = append(w.order, w.next)
	return w.next
}

func (w *Window) AddPointerListener(fn func(x, y float64)) WindowListenerID {
	w.next++
	w.pointer[w.next] = fn
	w.order = append(w.order, w.next)
	return w.next
}

func (w *Window) RemoveListener(id WindowListenerID) {
	delete(w.keys, id)
	delete(w.pointer, id)
	for i, o := range w.order {
		if o == id {
			w.order = append(w.order[:i:i], w.order[i+1:]...)
			break
		}
	}
}

// ListenerCount returns the number of attached key and pointer listeners.
func (w *Window) ListenerCount() int {
	return len(w.keys) + len(w.pointer)
}

// DispatchKey delivers ev to every key listener and reports whether any of
// them called PreventDefault.
func (w *Window) DispatchKey(ev *KeyEvent) bool {
	for _, id := range w.snapshot() {
		if fn, ok := w.keys[id]; ok {
			fn(ev)
		}
	}
	return ev.prevented
}

func (w *Window) DispatchPointer(x, y float64) {
	for _, id := range w.snapshot() {
		if fn, ok := w.pointer[id]; ok {
			fn(x, y)
		}
	}
}

func (w *Window) snapshot() []WindowListenerID {
	out := make([]WindowListenerID, len(w.order))
	copy(out, w.order)
	return out
}

// PollWindow feeds this frame's ebiten keyboard and cursor input into w.
// Held keys repeat using ebiten's key repeat timing.
func PollWindow(w *Window) {
	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		w.DispatchKey(&KeyEvent{Key: k, Name: KeyName(k), Down: true})
	}
	for _, k := range inpututil.AppendPressedKeys(nil) {
		if d := inpututil.KeyPressDuration(k); d > keyRepeatDelay && (d-keyRepeatDelay)%keyRepeatInterval == 0 {
			w.DispatchKey(&KeyEvent{Key: k, Name: KeyName(k), Down: true, Repeat: true})
		}
	}
	for _, k := range inpututil.AppendJustReleasedKeys(nil) {
		w.DispatchKey(&KeyEvent{Key: k, Name: KeyName(k)})
	}

	x, y := ebiten.CursorPosition()
	if !w.cursorKnown || x != w.cursorX || y != w.cursorY {
		w.cursorX, w.cursorY, w.cursorKnown = x, y, true
		w.DispatchPointer(float64(x), float64(y))
	}
}

// ticks, at 60 TPS
const (
	keyRepeatDelay    = 30
	keyRepeatInterval = 4
)

// KeyName returns a readable name for k, falling back to its String form
// for keys the layout does not name.
func KeyName(k ebiten.Key) string {
	if n := ebiten.KeyName(k); n != "" {
		return n
	}
	return k.String()
}

package controls

import (
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// fakePads is a scriptable GamepadSource.
type fakePads struct {
	pads   []GamepadInfo
	states map[ebiten.GamepadID]GamepadState
}

func newFakePads(pads ...GamepadInfo) *fakePads {
	f := &fakePads{states: map[ebiten.GamepadID]GamepadState{}}
	for _, p := range pads {
		f.connect(p)
	}
	return f
}

func (f *fakePads) Gamepads() []GamepadInfo {
	out := make([]GamepadInfo, len(f.pads))
	copy(out, f.pads)
	return out
}

func (f *fakePads) State(id ebiten.GamepadID) (GamepadState, bool) {
	s, ok := f.states[id]
	return s, ok
}

func (f *fakePads) connect(p GamepadInfo) {
	f.pads = append(f.pads, p)
	f.states[p.ID] = padState(nil, nil)
}

func (f *fakePads) disconnect(id ebiten.GamepadID) {
	for i, p := range f.pads {
		if p.ID == id {
			f.pads = append(f.pads[:i:i], f.pads[i+1:]...)
			break
		}
	}
	delete(f.states, id)
}

func (f *fakePads) set(id ebiten.GamepadID, s GamepadState) {
	f.states[id] = s
}

// padState builds a standard-layout snapshot with the given axis values and
// pressed buttons.
func padState(axes map[int]float64, pressed []int) GamepadState {
	a := make([]float64, standardAxisCount)
	for i, v := range axes {
		a[i] = v
	}
	b := make([]bool, standardButtonCount)
	for _, i := range pressed {
		b[i] = true
	}
	return NewGamepadState(a, b)
}

// recorder collects events delivered to a Listener.
type recorder struct {
	events []Event
}

func (r *recorder) listen(ev Event) {
	r.events = append(r.events, ev)
}

func (r *recorder) kinds() []EventKind {
	out := make([]EventKind, len(r.events))
	for i, ev := range r.events {
		out[i] = ev.Kind
	}
	return out
}

// fakeController is a Controller whose events are pushed by the test.
type fakeController struct {
	seat      *PlayerSeat
	listeners listenerList
	menuMode  bool
	inits     int
	destroyed bool
}

func (c *fakeController) Init(seat *PlayerSeat) {
	c.seat = seat
	c.inits++
}

func (c *fakeController) SetMenuMode(enabled bool)        { c.menuMode = enabled }
func (c *fakeController) MenuMode() bool                  { return c.menuMode }
func (c *fakeController) Register(fn Listener) ListenerID { return c.listeners.add(fn) }
func (c *fakeController) Unregister(id ListenerID)        { c.listeners.remove(id) }
func (c *fakeController) Describe() string                { return "Fake" }

func (c *fakeController) Destroy() {
	c.destroyed = true
	c.listeners.clear()
}

func (c *fakeController) emit(ev Event) {
	c.listeners.emit(ev)
}

// fixedClock pins now for the duration of a test.
func fixedClock(t testing.TB, at time.Time) {
	prev := now
	now = func() time.Time { return at }
	t.Cleanup(func() { now = prev })
}

func sameKinds(got, want []EventKind) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

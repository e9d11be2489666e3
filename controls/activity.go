package controls

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// NoButton marks an Activity caused by a device connecting.
const NoButton = -1

// Activity reports a button press, or a connect when Button is NoButton.
type Activity struct {
	Gamepad GamepadInfo
	Button  int
}

type ActivityFunc func(Activity)

// ActivityListener watches every connected gamepad for button presses,
// independently of seat assignment. It only polls while someone listens.
type ActivityListener struct {
	source GamepadSource
	loop   *FrameLoop

	next      ListenerID
	listeners []activityEntry

	polling bool
	task    TaskID
	last    map[ebiten.GamepadID][]bool
}

type activityEntry struct {
	id ListenerID
	fn ActivityFunc
}

func NewActivityListener(source GamepadSource, loop *FrameLoop) *ActivityListener {
	return &ActivityListener{source: source, loop: loop}
}

// Init logs the gamepads present at startup.
func (a *ActivityListener) Init() {
	for _, g := range a.source.Gamepads() {
		log.Printf("[controls] gamepad detected: %s (id %d)", g.Name, g.ID)
	}
}

// Register adds fn and starts polling if this is the first listener.
func (a *ActivityListener) Register(fn ActivityFunc) ListenerID {
	a.next++
	a.listeners = append(a.listeners, activityEntry{id: a.next, fn: fn})
	a.start()
	return a.next
}

// Unregister removes a listener; polling stops with the last one.
func (a *ActivityListener) Unregister(id ListenerID) {
	for i, e := range a.listeners {
		if e.id == id {
			a.listeners = append(a.listeners[:i:i], a.listeners[i+1:]...)
			break
		}
	}
	if len(a.listeners) == 0 {
		a.stop()
	}
}

// Polling reports whether the frame task is scheduled.
func (a *ActivityListener) Polling() bool { return a.polling }

func (a *ActivityListener) ListenerCount() int { return len(a.listeners) }

// Destroy drops every listener and stops polling.
func (a *ActivityListener) Destroy() {
	a.listeners = nil
	a.stop()
}

func (a *ActivityListener) start() {
	if a.polling {
		return
	}
	a.polling = true
	a.last = a.snapshot()
	a.task = a.loop.Schedule(a.poll)
}

func (a *ActivityListener) stop() {
	if !a.polling {
		return
	}
	a.polling = false
	a.loop.Cancel(a.task)
	a.last = nil
}

func (a *ActivityListener) snapshot() map[ebiten.GamepadID][]bool {
	out := map[ebiten.GamepadID][]bool{}
	for _, g := range a.source.Gamepads() {
		s, ok := a.source.State(g.ID)
		if !ok {
			continue
		}
		buttons := make([]bool, s.ButtonCount())
		for i := range buttons {
			buttons[i] = s.Button(i)
		}
		out[g.ID] = buttons
	}
	return out
}

func (a *ActivityListener) poll() {
	if !a.polling {
		return
	}
	current := a.snapshot()
	for _, g := range a.source.Gamepads() {
		buttons, ok := current[g.ID]
		if !ok {
			continue
		}
		last, seen := a.last[g.ID]
		if !seen {
			log.Printf("[controls] gamepad connected: %s (id %d)", g.Name, g.ID)
			a.notify(Activity{Gamepad: g, Button: NoButton})
			continue
		}
		for i, pressed := range buttons {
			if pressed && (i >= len(last) || !last[i]) {
				a.notify(Activity{Gamepad: g, Button: i})
			}
		}
	}
	for id := range a.last {
		if _, ok := current[id]; !ok {
			log.Printf("[controls] gamepad disconnected: id %d", id)
		}
	}
	// a listener may have stopped polling
	if a.polling {
		a.last = current
	}
}

func (a *ActivityListener) notify(act Activity) {
	snap := make([]activityEntry, len(a.listeners))
	copy(snap, a.listeners)
	for _, e := range snap {
		e.fn(act)
	}
}

package controls

// Controller turns one input device into events for one seat.
//
// Init binds the controller to its seat and starts its polling or window
// listeners. Destroy releases everything Init acquired; a destroyed
// controller never emits again.
type Controller interface {
	Init(seat *PlayerSeat)
	SetMenuMode(enabled bool)
	MenuMode() bool
	Register(fn Listener) ListenerID
	Unregister(id ListenerID)
	Destroy()
	Describe() string
}

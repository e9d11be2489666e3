package components

import (
	"github.com/automoto/voidscrubbers/controls"
	"github.com/yohamta/donburi"
)

// NotSelecting means no player is waiting for an input press
const NotSelecting = -1

// PlayerSelectData stores the roster being configured before a round
type PlayerSelectData struct {
	Players []controls.PlayerData
	// Chosen inputs keyed by PlayerData.UniqueID
	Inputs map[string]controls.SelectedInput

	// Player index waiting for "press any button", or NotSelecting
	Selecting int

	keyListener      controls.WindowListenerID
	activityListener controls.ListenerID
	listening        bool

	// Version increments on every roster change so the UI can refresh
	Version int
}

// SetListeners records the listeners bound while selecting an input.
func (p *PlayerSelectData) SetListeners(key controls.WindowListenerID, activity controls.ListenerID) {
	p.keyListener, p.activityListener, p.listening = key, activity, true
}

// TakeListeners returns and clears the bound listeners.
func (p *PlayerSelectData) TakeListeners() (controls.WindowListenerID, controls.ListenerID, bool) {
	k, a, ok := p.keyListener, p.activityListener, p.listening
	p.keyListener, p.activityListener, p.listening = 0, 0, false
	return k, a, ok
}

var PlayerSelect = donburi.NewComponentType[PlayerSelectData]()

package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// TitleData stores the title screen state
type TitleData struct {
	Pulse     *gween.Sequence // hint text fade in/out
	HintAlpha float32
	Started   bool // a start input was seen, waiting for the scene change
}

var Title = donburi.NewComponentType[TitleData]()

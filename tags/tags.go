package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Water  = donburi.NewTag().SetName("Water")
)

// Resolv tags for collision
const (
	ResolvSolid  = "solid"
	ResolvWater  = "water"
	ResolvPlayer = "Player"
)

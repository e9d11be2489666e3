package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is an entity's collision body
type ObjectData struct {
	*resolv.Object
}

// Center returns the middle of the body.
func (o *ObjectData) Center() (float64, float64) {
	return o.X + o.W/2, o.Y + o.H/2
}

// Feet returns the bottom-centre point robots stand on.
func (o *ObjectData) Feet() (float64, float64) {
	return o.X + o.W/2, o.Y + o.H
}

var Object = donburi.NewComponentType[ObjectData]()

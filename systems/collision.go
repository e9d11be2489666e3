package systems

import (
	"github.com/automoto/voidscrubbers/components"
	"github.com/automoto/voidscrubbers/tags"
)

// moveObject moves obj by (dx, dy) one axis at a time, stopping flush
// against solid bodies so robots slide along water edges.
func moveObject(obj *components.ObjectData, dx, dy float64) {
	if dx != 0 {
		if check := obj.Check(dx, 0, tags.ResolvSolid); check != nil {
			if solids := check.ObjectsByTags(tags.ResolvSolid); len(solids) > 0 {
				dx = check.ContactWithObject(solids[0]).X()
			}
		}
		obj.X += dx
	}

	if dy != 0 {
		if check := obj.Check(0, dy, tags.ResolvSolid); check != nil {
			if solids := check.ObjectsByTags(tags.ResolvSolid); len(solids) > 0 {
				dy = check.ContactWithObject(solids[0]).Y()
			}
		}
		obj.Y += dy
	}
}

package factory

import (
	"github.com/automoto/voidscrubbers/archetypes"
	"github.com/automoto/voidscrubbers/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateEventLog(ecs *ecs.ECS) *donburi.Entry {
	log := archetypes.EventLog.Spawn(ecs)
	components.EventLog.Set(log, &components.EventLogData{})
	return log
}

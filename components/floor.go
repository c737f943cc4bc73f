package components

import (
	"github.com/automoto/floorcollision/floor"
	"github.com/yohamta/donburi"
)

// FloorData sits on the root entity of a floor and owns its collision cache.
type FloorData struct {
	Cache *floor.Cache
	Name  string
}

var Floor = donburi.NewComponentType[FloorData]()

// FloorToggleData is a one-shot request to enable or disable a floor's
// collision, consumed by systems.UpdateFloors.
type FloorToggleData struct {
	Enable bool
}

var FloorToggle = donburi.NewComponentType[FloorToggleData]()

package components

import (
	"github.com/automoto/floorcollision/floor"
	"github.com/yohamta/donburi"
)

type FloorAgentData struct {
	*floor.Agent
}

var FloorAgent = donburi.NewComponentType[FloorAgentData]()

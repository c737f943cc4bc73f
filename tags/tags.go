package tags

import "github.com/yohamta/donburi"

var (
	Floor      = donburi.NewTag().SetName("Floor")
	Container  = donburi.NewTag().SetName("Container")
	Body       = donburi.NewTag().SetName("Body")
	TileGrid   = donburi.NewTag().SetName("TileGrid")
	FloorAgent = donburi.NewTag().SetName("FloorAgent")
	Spawn      = donburi.NewTag().SetName("Spawn")
)

// Resolv tags for physics collision
const (
	ResolvSolid = "solid"
	ResolvSpawn = "spawn"

	// ResolvLayerPrefix prefixes the per-layer tags ("layer1" .. "layer32").
	ResolvLayerPrefix = "layer"
)

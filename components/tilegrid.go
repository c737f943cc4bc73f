package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// TileGridData is a tile-grid collidable. One layer/mask pair covers every
// cell of the grid.
type TileGridData struct {
	Cells      []*resolv.Object
	Layer      uint32
	Mask       uint32
	TileWidth  float64
	TileHeight float64
}

var TileGrid = donburi.NewComponentType[TileGridData]()

func (g *TileGridData) CollisionLayer() uint32 { return g.Layer }
func (g *TileGridData) CollisionMask() uint32  { return g.Mask }

func (g *TileGridData) SetCollisionLayer(layer uint32) {
	g.Layer = layer
	for _, cell := range g.Cells {
		retag(cell, layer)
	}
}

func (g *TileGridData) SetCollisionMask(mask uint32) {
	g.Mask = mask
}

package components

import "github.com/yohamta/donburi"

// NodeData places an entity in the scene graph. Children are kept in
// insertion order.
type NodeData struct {
	Name      string
	Parent    donburi.Entity
	HasParent bool
	Children  []donburi.Entity
}

var Node = donburi.NewComponentType[NodeData]()

// Package level parses Tiled TMX floors into plain node descriptions.
// It has no dependencies on ebitengine, donburi, or resolv; it is pure data.
package level

// Kind is what a described node turns into in the scene graph.
type Kind int

const (
	KindContainer Kind = iota
	KindTileGrid
	KindBody
	KindAgent
	KindSpawn
)

func (k Kind) String() string {
	switch k {
	case KindContainer:
		return "container"
	case KindTileGrid:
		return "tilegrid"
	case KindBody:
		return "body"
	case KindAgent:
		return "agent"
	case KindSpawn:
		return "spawn"
	default:
		return "unknown"
	}
}

// Floor holds the node tree parsed from one TMX file.
type Floor struct {
	Name      string
	MapWidth  int
	MapHeight int
	Root      Node
}

// Node describes one scene-graph node.
type Node struct {
	Name  string
	Kind  Kind
	Layer uint32
	Mask  uint32

	// Bounds of bodies and spawn markers.
	X, Y, W, H float64

	// Occupied cells of a tile grid.
	Cells      []Cell
	TileWidth  float64
	TileHeight float64

	Children []Node
}

// Cell is one occupied tile of a tile grid.
type Cell struct {
	X, Y float64
}

package floor

import "github.com/yohamta/donburi"

// Collidable is a live node whose collision bitmasks can be read and written.
type Collidable interface {
	CollisionLayer() uint32
	SetCollisionLayer(layer uint32)
	CollisionMask() uint32
	SetCollisionMask(mask uint32)
}

// ParentLookup resolves the structural parent of a node.
type ParentLookup interface {
	Parent(node donburi.Entity) (donburi.Entity, bool)
}

// Scene is the host tree walked by the cache. Node references are entity
// handles owned by the host; the cache never creates or removes them.
type Scene interface {
	ParentLookup

	// Valid reports whether node still names a live node.
	Valid(node donburi.Entity) bool
	Children(node donburi.Entity) []donburi.Entity
	// PathTo returns the path of node relative to root.
	PathTo(root, node donburi.Entity) (NodePath, error)
	// Lookup resolves a path relative to root.
	Lookup(root donburi.Entity, path NodePath) (donburi.Entity, bool)
	Classify(node donburi.Entity) Kind
	// Collidable is only meaningful for nodes classified as rigid or tile grid.
	Collidable(node donburi.Entity) (Collidable, bool)
	// Agent is only meaningful for nodes classified as ChangeAgent.
	Agent(node donburi.Entity) (*Agent, bool)
}

func capture(c Collidable) Attributes {
	return Attributes{Layer: c.CollisionLayer(), Mask: c.CollisionMask()}
}

func apply(c Collidable, a Attributes) {
	c.SetCollisionLayer(a.Layer)
	c.SetCollisionMask(a.Mask)
}

package floor

// Attributes are the collision bitmasks captured from a collidable node.
type Attributes struct {
	Layer uint32
	Mask  uint32
}

// IsZero reports whether the node collides with nothing.
func (a Attributes) IsZero() bool {
	return a.Layer == 0 && a.Mask == 0
}

// NodePath identifies a node by the child names leading to it from the cache
// root, joined with "/". The root itself is ".".
type NodePath string

// RootPath is the path of the cache root relative to itself.
const RootPath NodePath = "."

func (p NodePath) String() string {
	return string(p)
}

// Kind classifies a scene node for the cache walk.
type Kind int

const (
	Plain Kind = iota
	RigidCollidable
	TileGridCollidable
	ChangeAgent
)

func (k Kind) String() string {
	switch k {
	case Plain:
		return "plain"
	case RigidCollidable:
		return "rigid"
	case TileGridCollidable:
		return "tilegrid"
	case ChangeAgent:
		return "agent"
	default:
		return "unknown"
	}
}

// IsCollidable reports whether nodes of this kind carry their own layer/mask.
func (k Kind) IsCollidable() bool {
	return k == RigidCollidable || k == TileGridCollidable
}

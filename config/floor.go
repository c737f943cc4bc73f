package config

// FloorConfig contains floor loading and collision toggling configuration
type FloorConfig struct {
	// Scene graph conventions
	SpawnPath string // Path of the spawn marker below a floor root

	// Level files
	LevelsDir    string
	DefaultLevel string

	// TMX properties
	LayerProperty string // Int property holding the collision layer bitmask
	MaskProperty  string // Int property holding the collision mask bitmask
	KindProperty  string // Object property selecting body/agent/spawn (falls back to class)

	// TMX object kinds
	BodyKind  string
	AgentKind string
	SpawnKind string

	// Collision space
	SpaceCellSize int

	// Probe used by the demo to show what currently collides
	ProbeSize float64
	ProbeMask uint32

	// Debug colors
	EnabledColor  [4]uint8
	DisabledColor [4]uint8
	SpawnColor    [4]uint8
	ProbeColor    [4]uint8
	ProbeHitColor [4]uint8
}

var Floor FloorConfig

func init() {
	Floor = FloorConfig{
		SpawnPath: "main/spawn",

		LevelsDir:    "levels",
		DefaultLevel: "floor1",

		LayerProperty: "collision_layer",
		MaskProperty:  "collision_mask",
		KindProperty:  "kind",

		BodyKind:  "body",
		AgentKind: "agent",
		SpawnKind: "spawn",

		SpaceCellSize: 16,

		ProbeSize: 12,
		ProbeMask: 0xFFFFFFFF,

		EnabledColor:  [4]uint8{0, 255, 255, 255},   // Cyan
		DisabledColor: [4]uint8{100, 100, 100, 255}, // Grey
		SpawnColor:    [4]uint8{0, 255, 0, 255},     // Green
		ProbeColor:    [4]uint8{255, 255, 255, 255}, // White
		ProbeHitColor: [4]uint8{255, 0, 0, 255},     // Red
	}
}

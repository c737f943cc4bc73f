package archetypes

import (
	"github.com/automoto/floorcollision/components"
	"github.com/automoto/floorcollision/scenegraph"
	"github.com/automoto/floorcollision/tags"
	"github.com/yohamta/donburi"
)

var (
	Floor = newArchetype(
		tags.Floor,
		components.Floor,
	)
	Container = newArchetype(
		tags.Container,
	)
	Body = newArchetype(
		tags.Body,
		components.Body,
	)
	TileGrid = newArchetype(
		tags.TileGrid,
		components.TileGrid,
	)
	Spawn = newArchetype(
		tags.Spawn,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

// Spawn creates a free-standing entity outside the scene graph.
func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	return w.Entry(w.Create(a.with(cs)...))
}

// SpawnRoot creates a parentless scene-graph node.
func (a *archetype) SpawnRoot(g *scenegraph.Graph, name string, cs ...donburi.IComponentType) (*donburi.Entry, error) {
	return g.AddRoot(name, a.with(cs)...)
}

// SpawnChild creates a scene-graph node below parent.
func (a *archetype) SpawnChild(g *scenegraph.Graph, parent donburi.Entity, name string, cs ...donburi.IComponentType) (*donburi.Entry, error) {
	return g.Add(parent, name, a.with(cs)...)
}

func (a *archetype) with(cs []donburi.IComponentType) []donburi.IComponentType {
	out := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	out = append(out, a.components...)
	return append(out, cs...)
}

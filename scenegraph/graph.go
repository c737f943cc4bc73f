// Package scenegraph is a node tree stored in a donburi world. Every node is
// an entity with a components.Node; the kind of a node is decided by which
// other components it carries.
package scenegraph

import (
	"strings"

	"github.com/automoto/floorcollision/components"
	"github.com/automoto/floorcollision/floor"
	"github.com/yohamta/donburi"
	"go.trai.ch/zerr"
)

// Graph implements floor.Scene on top of a donburi world.
type Graph struct {
	world donburi.World
}

var _ floor.Scene = (*Graph)(nil)

func New(world donburi.World) *Graph {
	return &Graph{world: world}
}

func (g *Graph) World() donburi.World {
	return g.world
}

// AddRoot creates a parentless node carrying cs.
func (g *Graph) AddRoot(name string, cs ...donburi.IComponentType) (*donburi.Entry, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	entry := g.create(cs)
	components.Node.SetValue(entry, components.NodeData{Name: name})
	return entry, nil
}

// Add creates a node carrying cs as the last child of parent. Sibling names
// must be unique.
func (g *Graph) Add(parent donburi.Entity, name string, cs ...donburi.IComponentType) (*donburi.Entry, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if !g.Valid(parent) {
		return nil, zerr.With(zerr.Wrap(floor.ErrUnresolvedReference, "add node"), "name", name)
	}
	if _, ok := g.child(parent, name); ok {
		return nil, zerr.With(zerr.Wrap(ErrDuplicateName, "add node"), "name", name)
	}

	entry := g.create(cs)
	components.Node.SetValue(entry, components.NodeData{
		Name:      name,
		Parent:    parent,
		HasParent: true,
	})

	p := components.Node.Get(g.world.Entry(parent))
	p.Children = append(p.Children, entry.Entity())
	return entry, nil
}

// AddAgent creates a floor agent node below parent.
func (g *Graph) AddAgent(parent donburi.Entity, name string, cs ...donburi.IComponentType) (*floor.Agent, error) {
	entry, err := g.Add(parent, name, append([]donburi.IComponentType{components.FloorAgent}, cs...)...)
	if err != nil {
		return nil, err
	}
	agent := floor.NewAgent(entry.Entity(), g)
	components.FloorAgent.SetValue(entry, components.FloorAgentData{Agent: agent})
	return agent, nil
}

// Remove deletes node and its whole subtree from the world. Handles to any of
// the removed entities become dangling.
func (g *Graph) Remove(node donburi.Entity) error {
	if !g.Valid(node) {
		return zerr.Wrap(floor.ErrUnresolvedReference, "remove node")
	}

	data := components.Node.Get(g.world.Entry(node))
	if data.HasParent && g.Valid(data.Parent) {
		p := components.Node.Get(g.world.Entry(data.Parent))
		for i, c := range p.Children {
			if c == node {
				p.Children = append(p.Children[:i:i], p.Children[i+1:]...)
				break
			}
		}
	}

	g.removeSubtree(node)
	return nil
}

// Name returns the node's name, or "" for a dangling handle.
func (g *Graph) Name(node donburi.Entity) string {
	if !g.Valid(node) {
		return ""
	}
	return components.Node.Get(g.world.Entry(node)).Name
}

func (g *Graph) Valid(node donburi.Entity) bool {
	return g.world.Valid(node) && g.world.Entry(node).HasComponent(components.Node)
}

func (g *Graph) Children(node donburi.Entity) []donburi.Entity {
	if !g.Valid(node) {
		return nil
	}
	children := components.Node.Get(g.world.Entry(node)).Children
	out := make([]donburi.Entity, len(children))
	copy(out, children)
	return out
}

func (g *Graph) Parent(node donburi.Entity) (donburi.Entity, bool) {
	if !g.Valid(node) {
		return donburi.Null, false
	}
	data := components.Node.Get(g.world.Entry(node))
	if !data.HasParent || !g.Valid(data.Parent) {
		return donburi.Null, false
	}
	return data.Parent, true
}

// PathTo returns the slash-joined names leading from root down to node.
func (g *Graph) PathTo(root, node donburi.Entity) (floor.NodePath, error) {
	if !g.Valid(root) || !g.Valid(node) {
		return "", zerr.Wrap(floor.ErrUnresolvedReference, "path to node")
	}
	if node == root {
		return floor.RootPath, nil
	}

	var names []string
	for cur := node; cur != root; {
		data := components.Node.Get(g.world.Entry(cur))
		names = append(names, data.Name)
		if !data.HasParent {
			return "", zerr.With(zerr.Wrap(ErrNotDescendant, "path to node"), "node", data.Name)
		}
		if !g.Valid(data.Parent) {
			return "", zerr.With(zerr.Wrap(floor.ErrUnresolvedReference, "path to node"), "node", data.Name)
		}
		cur = data.Parent
	}

	for i, j := 0, len(names)-1; i < j; i, j = i+1, j-1 {
		names[i], names[j] = names[j], names[i]
	}
	return floor.NodePath(strings.Join(names, "/")), nil
}

func (g *Graph) Lookup(root donburi.Entity, path floor.NodePath) (donburi.Entity, bool) {
	if !g.Valid(root) {
		return donburi.Null, false
	}
	if path == floor.RootPath || path == "" {
		return root, true
	}

	cur := root
	for _, name := range strings.Split(string(path), "/") {
		next, ok := g.child(cur, name)
		if !ok {
			return donburi.Null, false
		}
		cur = next
	}
	return cur, true
}

func (g *Graph) Classify(node donburi.Entity) floor.Kind {
	if !g.Valid(node) {
		return floor.Plain
	}
	entry := g.world.Entry(node)
	switch {
	case entry.HasComponent(components.Body):
		return floor.RigidCollidable
	case entry.HasComponent(components.TileGrid):
		return floor.TileGridCollidable
	case entry.HasComponent(components.FloorAgent):
		return floor.ChangeAgent
	default:
		return floor.Plain
	}
}

func (g *Graph) Collidable(node donburi.Entity) (floor.Collidable, bool) {
	if !g.Valid(node) {
		return nil, false
	}
	entry := g.world.Entry(node)
	switch {
	case entry.HasComponent(components.Body):
		return components.Body.Get(entry), true
	case entry.HasComponent(components.TileGrid):
		return components.TileGrid.Get(entry), true
	default:
		return nil, false
	}
}

func (g *Graph) Agent(node donburi.Entity) (*floor.Agent, bool) {
	if !g.Valid(node) {
		return nil, false
	}
	entry := g.world.Entry(node)
	if !entry.HasComponent(components.FloorAgent) {
		return nil, false
	}
	agent := components.FloorAgent.Get(entry).Agent
	return agent, agent != nil
}

func (g *Graph) create(cs []donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(cs)+1)
	all = append(all, components.Node)
	all = append(all, cs...)
	return g.world.Entry(g.world.Create(all...))
}

func (g *Graph) child(parent donburi.Entity, name string) (donburi.Entity, bool) {
	for _, c := range components.Node.Get(g.world.Entry(parent)).Children {
		if g.Valid(c) && components.Node.Get(g.world.Entry(c)).Name == name {
			return c, true
		}
	}
	return donburi.Null, false
}

func (g *Graph) removeSubtree(node donburi.Entity) {
	if !g.Valid(node) {
		return
	}
	for _, c := range components.Node.Get(g.world.Entry(node)).Children {
		g.removeSubtree(c)
	}
	g.world.Remove(node)
}

func validateName(name string) error {
	if name == "" || name == "." || name == ".." || strings.Contains(name, "/") {
		return zerr.With(zerr.Wrap(ErrInvalidName, "validate node name"), "name", name)
	}
	return nil
}

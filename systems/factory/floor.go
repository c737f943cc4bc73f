package factory

import (
	"github.com/automoto/floorcollision/archetypes"
	"github.com/automoto/floorcollision/components"
	cfg "github.com/automoto/floorcollision/config"
	"github.com/automoto/floorcollision/floor"
	"github.com/automoto/floorcollision/level"
	"github.com/automoto/floorcollision/scenegraph"
	"github.com/automoto/floorcollision/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"go.trai.ch/zerr"
)

// CreateFloor builds the nodes of f below a new root, adds every collision
// object to space and initializes the floor's collision cache. space may be
// nil when nothing needs to query the objects.
func CreateFloor(g *scenegraph.Graph, space *resolv.Space, f *level.Floor, log floor.Logger) (*donburi.Entry, error) {
	root, err := archetypes.Floor.SpawnRoot(g, f.Root.Name)
	if err != nil {
		return nil, zerr.Wrap(err, "create floor root")
	}
	rootEntity := root.Entity()

	for _, n := range f.Root.Children {
		if err := CreateNode(g, space, rootEntity, n); err != nil {
			return nil, err
		}
	}

	cache := floor.New(g, floor.Options{
		Logger:    log,
		SpawnPath: floor.NodePath(cfg.Floor.SpawnPath),
	})
	if err := cache.Initialize(rootEntity); err != nil {
		return nil, err
	}

	root = g.World().Entry(rootEntity)
	components.Floor.SetValue(root, components.FloorData{
		Cache: cache,
		Name:  f.Name,
	})

	return root, nil
}

// CreateNode builds n and its descendants below parent. Nodes created after
// the owning floor was initialized are not cached until a refresh reaches
// them.
func CreateNode(g *scenegraph.Graph, space *resolv.Space, parent donburi.Entity, n level.Node) error {
	entity, err := createNode(g, space, parent, n)
	if err != nil {
		return zerr.With(err, "node", n.Name)
	}

	for _, c := range n.Children {
		if err := CreateNode(g, space, entity, c); err != nil {
			return err
		}
	}
	return nil
}

func createNode(g *scenegraph.Graph, space *resolv.Space, parent donburi.Entity, n level.Node) (donburi.Entity, error) {
	switch n.Kind {
	case level.KindBody:
		return CreateBody(g, space, parent, n.Name, n.X, n.Y, n.W, n.H, n.Layer, n.Mask)

	case level.KindTileGrid:
		return CreateTileGrid(g, space, parent, n)

	case level.KindAgent:
		agent, err := g.AddAgent(parent, n.Name, tags.FloorAgent)
		if err != nil {
			return donburi.Null, err
		}
		return agent.Owner(), nil

	case level.KindSpawn:
		entry, err := archetypes.Spawn.SpawnChild(g, parent, n.Name)
		if err != nil {
			return donburi.Null, err
		}
		obj := resolv.NewObject(n.X, n.Y, n.W, n.H, tags.ResolvSpawn)
		obj.Data = entry
		components.Object.SetValue(entry, components.ObjectData{Object: obj})
		return entry.Entity(), nil

	default:
		entry, err := archetypes.Container.SpawnChild(g, parent, n.Name)
		if err != nil {
			return donburi.Null, err
		}
		return entry.Entity(), nil
	}
}

// CreateBody creates a rigid collidable backed by one resolv rectangle.
func CreateBody(g *scenegraph.Graph, space *resolv.Space, parent donburi.Entity, name string, x, y, w, h float64, layer, mask uint32) (donburi.Entity, error) {
	entry, err := archetypes.Body.SpawnChild(g, parent, name)
	if err != nil {
		return donburi.Null, err
	}

	obj := resolv.NewObject(x, y, w, h, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = entry

	components.Body.SetValue(entry, components.NewBodyData(obj, layer, mask))

	if space != nil {
		space.Add(obj)
	}
	return entry.Entity(), nil
}

// CreateTileGrid creates a tile-grid collidable with one resolv object per
// occupied cell.
func CreateTileGrid(g *scenegraph.Graph, space *resolv.Space, parent donburi.Entity, n level.Node) (donburi.Entity, error) {
	entry, err := archetypes.TileGrid.SpawnChild(g, parent, n.Name)
	if err != nil {
		return donburi.Null, err
	}

	grid := components.TileGridData{
		TileWidth:  n.TileWidth,
		TileHeight: n.TileHeight,
	}
	for _, c := range n.Cells {
		obj := resolv.NewObject(c.X, c.Y, n.TileWidth, n.TileHeight, tags.ResolvSolid)
		obj.SetShape(resolv.NewRectangle(0, 0, n.TileWidth, n.TileHeight))
		obj.Data = entry
		grid.Cells = append(grid.Cells, obj)
	}
	grid.SetCollisionLayer(n.Layer)
	grid.SetCollisionMask(n.Mask)

	components.TileGrid.SetValue(entry, grid)

	if space != nil {
		space.Add(grid.Cells...)
	}
	return entry.Entity(), nil
}

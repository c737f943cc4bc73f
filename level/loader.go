package level

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	cfg "github.com/automoto/floorcollision/config"
	"github.com/lafriks/go-tiled"
	"go.trai.ch/zerr"
)

// Load parses a TMX file into a floor description. Groups and object groups
// become containers, tile layers with a collision layer property become tile
// grids, and objects become bodies, agents or spawn markers by their kind
// property. It takes an fs.FS so callers can pass embed.FS or os.DirFS.
func Load(fsys fs.FS, tmxPath string) (*Floor, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "load TMX"), "path", tmxPath)
	}

	name := strings.TrimSuffix(filepath.Base(tmxPath), filepath.Ext(tmxPath))
	p := parser{m: levelMap}

	f := &Floor{
		Name:      name,
		MapWidth:  levelMap.Width * levelMap.TileWidth,
		MapHeight: levelMap.Height * levelMap.TileHeight,
		Root:      Node{Name: name, Kind: KindContainer},
	}
	children, err := p.children(levelMap.Groups, levelMap.Layers, levelMap.ObjectGroups)
	if err != nil {
		return nil, zerr.With(err, "path", tmxPath)
	}
	f.Root.Children = children
	return f, nil
}

// LoadAll discovers all .tmx files in dir within fsys and loads each one,
// returning them keyed by stem name plus a sorted list of names.
func LoadAll(fsys fs.FS, dir string) (map[string]*Floor, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, zerr.With(zerr.Wrap(err, "glob floors"), "pattern", pattern)
	}
	if len(matches) == 0 {
		return nil, nil, zerr.With(zerr.Wrap(ErrNoFloors, "load floors"), "dir", dir)
	}

	floors := make(map[string]*Floor, len(matches))
	names := make([]string, 0, len(matches))
	for _, path := range matches {
		f, err := Load(fsys, path)
		if err != nil {
			return nil, nil, err
		}
		floors[f.Name] = f
		names = append(names, f.Name)
	}

	sort.Strings(names)
	return floors, names, nil
}

type parser struct {
	m *tiled.Map
}

func (p parser) children(groups []*tiled.Group, layers []*tiled.Layer, objectGroups []*tiled.ObjectGroup) ([]Node, error) {
	var out []Node
	seen := make(map[string]bool)
	add := func(n Node) error {
		if seen[n.Name] {
			return zerr.With(zerr.Wrap(ErrDuplicateName, "parse TMX"), "name", n.Name)
		}
		seen[n.Name] = true
		out = append(out, n)
		return nil
	}

	for _, g := range groups {
		children, err := p.children(g.Groups, g.Layers, g.ObjectGroups)
		if err != nil {
			return nil, err
		}
		if err := add(Node{Name: g.Name, Kind: KindContainer, Children: children}); err != nil {
			return nil, err
		}
	}

	for _, l := range layers {
		n, ok := p.tileGrid(l)
		if !ok {
			continue
		}
		if err := add(n); err != nil {
			return nil, err
		}
	}

	for _, og := range objectGroups {
		n, err := p.objectGroup(og)
		if err != nil {
			return nil, err
		}
		if err := add(n); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// tileGrid converts a tile layer. Layers without a collision layer property
// are decoration and are skipped.
func (p parser) tileGrid(l *tiled.Layer) (Node, bool) {
	if l.Properties.GetString(cfg.Floor.LayerProperty) == "" {
		return Node{}, false
	}

	tileW := float64(p.m.TileWidth)
	tileH := float64(p.m.TileHeight)
	n := Node{
		Name:       l.Name,
		Kind:       KindTileGrid,
		Layer:      uint32(l.Properties.GetInt(cfg.Floor.LayerProperty)),
		Mask:       uint32(l.Properties.GetInt(cfg.Floor.MaskProperty)),
		TileWidth:  tileW,
		TileHeight: tileH,
	}
	for i, tile := range l.Tiles {
		if tile == nil || tile.IsNil() {
			continue
		}
		n.Cells = append(n.Cells, Cell{
			X: float64(i%p.m.Width) * tileW,
			Y: float64(i/p.m.Width) * tileH,
		})
	}
	return n, true
}

func (p parser) objectGroup(og *tiled.ObjectGroup) (Node, error) {
	n := Node{Name: og.Name, Kind: KindContainer}
	seen := make(map[string]bool)

	for _, o := range og.Objects {
		kind := o.Properties.GetString(cfg.Floor.KindProperty)
		if kind == "" {
			kind = o.Class
		}

		child := Node{
			Name: o.Name,
			X:    o.X,
			Y:    o.Y,
			W:    o.Width,
			H:    o.Height,
		}
		switch kind {
		case cfg.Floor.BodyKind:
			child.Kind = KindBody
			child.Layer = uint32(o.Properties.GetInt(cfg.Floor.LayerProperty))
			child.Mask = uint32(o.Properties.GetInt(cfg.Floor.MaskProperty))
		case cfg.Floor.AgentKind:
			child.Kind = KindAgent
		case cfg.Floor.SpawnKind:
			child.Kind = KindSpawn
		default:
			continue
		}
		if child.Name == "" {
			child.Name = fmt.Sprintf("%s%d", kind, o.ID)
		}
		if seen[child.Name] {
			return Node{}, zerr.With(zerr.With(zerr.Wrap(ErrDuplicateName, "parse TMX"), "name", child.Name), "group", og.Name)
		}
		seen[child.Name] = true

		n.Children = append(n.Children, child)
	}
	return n, nil
}

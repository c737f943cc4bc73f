package factory

import (
	"testing"

	"github.com/automoto/floorcollision/components"
	"github.com/automoto/floorcollision/floor"
	"github.com/automoto/floorcollision/level"
	"github.com/automoto/floorcollision/scenegraph"
	"github.com/automoto/floorcollision/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func testFloor() *level.Floor {
	return &level.Floor{
		Name:      "test",
		MapWidth:  128,
		MapHeight: 64,
		Root: level.Node{Name: "test", Kind: level.KindContainer, Children: []level.Node{
			{Name: "B1", Kind: level.KindBody, Layer: 1, Mask: 2, X: 0, Y: 0, W: 16, H: 16},
			{Name: "C", Kind: level.KindContainer, Children: []level.Node{
				{
					Name: "T1", Kind: level.KindTileGrid, Layer: 4, Mask: 8,
					TileWidth: 16, TileHeight: 16,
					Cells: []level.Cell{{X: 0, Y: 48}, {X: 16, Y: 48}},
				},
				{Name: "agent", Kind: level.KindAgent},
			}},
			{Name: "main", Kind: level.KindContainer, Children: []level.Node{
				{Name: "spawn", Kind: level.KindSpawn, X: 32, Y: 32, W: 4, H: 4},
			}},
		}},
	}
}

func TestCreateFloor(t *testing.T) {
	w := donburi.NewWorld()
	g := scenegraph.New(w)
	space := components.Space.Get(CreateSpace(w, 128, 64, 16, 16))

	root, err := CreateFloor(g, space.Space, testFloor(), nil)
	require.NoError(t, err)
	require.True(t, root.HasComponent(components.Floor))
	assert.True(t, root.HasComponent(tags.Floor))

	fl := components.Floor.Get(root)
	assert.Equal(t, "test", fl.Name)
	assert.Equal(t, map[floor.NodePath]floor.Attributes{
		"B1":   {Layer: 1, Mask: 2},
		"C/T1": {Layer: 4, Mask: 8},
	}, fl.Cache.Snapshot())
	assert.Equal(t, []floor.NodePath{"C/agent"}, fl.Cache.Agents())

	// One body plus two grid cells; spawn markers stay out of the space.
	assert.Len(t, space.Objects(), 3)

	spawn, err := fl.Cache.SpawnPoint()
	require.NoError(t, err)
	spawnEntry := w.Entry(spawn)
	require.True(t, spawnEntry.HasComponent(components.Object))
	assert.True(t, spawnEntry.HasComponent(tags.Spawn))
	assert.Equal(t, 32.0, components.Object.Get(spawnEntry).X)
}

func TestCreateFloor_ToggleRetagsObjects(t *testing.T) {
	w := donburi.NewWorld()
	g := scenegraph.New(w)

	root, err := CreateFloor(g, nil, testFloor(), nil)
	require.NoError(t, err)
	cache := components.Floor.Get(root).Cache

	b1, ok := g.Lookup(root.Entity(), "B1")
	require.True(t, ok)
	obj := components.Body.Get(w.Entry(b1)).Object
	require.True(t, obj.HasTags(tags.LayerTag(1)))

	t1, ok := g.Lookup(root.Entity(), "C/T1")
	require.True(t, ok)
	cells := components.TileGrid.Get(w.Entry(t1)).Cells
	require.Len(t, cells, 2)

	require.NoError(t, cache.Disable())
	assert.False(t, obj.HasTags(tags.AllLayerTags()...))
	for _, cell := range cells {
		assert.False(t, cell.HasTags(tags.AllLayerTags()...))
	}
	assert.True(t, obj.HasTags(tags.ResolvSolid), "the solid tag survives a disable")

	require.NoError(t, cache.Enable())
	assert.True(t, obj.HasTags(tags.LayerTag(1)))
	for _, cell := range cells {
		assert.True(t, cell.HasTags(tags.LayerTag(3)))
	}
}

func TestCreateFloor_DuplicateName(t *testing.T) {
	g := scenegraph.New(donburi.NewWorld())
	f := &level.Floor{Name: "dup", Root: level.Node{Name: "dup", Children: []level.Node{
		{Name: "B1", Kind: level.KindBody},
		{Name: "B1", Kind: level.KindBody},
	}}}

	_, err := CreateFloor(g, nil, f, nil)
	require.ErrorIs(t, err, scenegraph.ErrDuplicateName)
}

func TestCreateNode_AfterInitialize(t *testing.T) {
	w := donburi.NewWorld()
	g := scenegraph.New(w)
	root, err := CreateFloor(g, nil, testFloor(), nil)
	require.NoError(t, err)
	cache := components.Floor.Get(root).Cache

	require.NoError(t, CreateNode(g, nil, root.Entity(), level.Node{Name: "late", Kind: level.KindBody, Layer: 16, Mask: 16}))
	_, ok := cache.Entry("late")
	assert.False(t, ok)

	require.NoError(t, cache.RefreshSubtree(root.Entity(), false))
	entry, ok := cache.Entry("late")
	require.True(t, ok)
	assert.Equal(t, floor.Attributes{Layer: 16, Mask: 16}, entry)
}

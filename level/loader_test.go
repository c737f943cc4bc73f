package level

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="4" height="3" tilewidth="16" tileheight="16" infinite="0">
 <tileset firstgid="1" name="solid" tilewidth="16" tileheight="16" tilecount="1" columns="1"/>
 <group id="1" name="terrain">
  <layer id="2" name="ground" width="4" height="3">
   <properties>
    <property name="collision_layer" type="int" value="4"/>
    <property name="collision_mask" type="int" value="8"/>
   </properties>
   <data encoding="csv">
0,0,0,0,
0,0,0,0,
1,1,0,1
</data>
  </layer>
  <layer id="3" name="decoration" width="4" height="3">
   <data encoding="csv">
1,0,0,0,
0,0,0,0,
0,0,0,0
</data>
  </layer>
 </group>
 <objectgroup id="4" name="main">
  <object id="1" name="spawn" x="8" y="16" width="4" height="4">
   <properties>
    <property name="kind" value="spawn"/>
   </properties>
  </object>
  <object id="2" name="note" x="0" y="0"/>
 </objectgroup>
 <objectgroup id="5" name="bridge">
  <object id="3" name="plank" x="16" y="24" width="32" height="8">
   <properties>
    <property name="kind" value="body"/>
    <property name="collision_layer" type="int" value="1"/>
    <property name="collision_mask" type="int" value="2"/>
   </properties>
  </object>
  <object id="4" x="20" y="20">
   <properties>
    <property name="kind" value="agent"/>
   </properties>
  </object>
 </objectgroup>
</map>
`

const duplicateTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="1" height="1" tilewidth="16" tileheight="16" infinite="0">
 <objectgroup id="1" name="crates">
  <object id="1" name="B1" x="0" y="0" width="16" height="16">
   <properties>
    <property name="kind" value="body"/>
   </properties>
  </object>
  <object id="2" name="B1" x="16" y="0" width="16" height="16">
   <properties>
    <property name="kind" value="body"/>
   </properties>
  </object>
 </objectgroup>
</map>
`

// find returns the descendant reached by following child names from n.
func find(n *Node, path ...string) (*Node, bool) {
	cur := n
	for _, name := range path {
		var next *Node
		for i := range cur.Children {
			if cur.Children[i].Name == name {
				next = &cur.Children[i]
				break
			}
		}
		if next == nil {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

func TestLoad(t *testing.T) {
	fsys := fstest.MapFS{"levels/test.tmx": {Data: []byte(testTMX)}}

	f, err := Load(fsys, "levels/test.tmx")
	require.NoError(t, err)

	assert.Equal(t, "test", f.Name)
	assert.Equal(t, "test", f.Root.Name)
	assert.Equal(t, 64, f.MapWidth)
	assert.Equal(t, 48, f.MapHeight)

	ground, ok := find(&f.Root, "terrain", "ground")
	require.True(t, ok)
	assert.Equal(t, KindTileGrid, ground.Kind)
	assert.Equal(t, uint32(4), ground.Layer)
	assert.Equal(t, uint32(8), ground.Mask)
	assert.Equal(t, []Cell{{X: 0, Y: 32}, {X: 16, Y: 32}, {X: 48, Y: 32}}, ground.Cells)

	_, ok = find(&f.Root, "terrain", "decoration")
	assert.False(t, ok, "tile layers without a collision layer are skipped")

	spawn, ok := find(&f.Root, "main", "spawn")
	require.True(t, ok)
	assert.Equal(t, KindSpawn, spawn.Kind)
	assert.Equal(t, 8.0, spawn.X)

	main, _ := find(&f.Root, "main")
	assert.Len(t, main.Children, 1, "objects without a kind are skipped")

	plank, ok := find(&f.Root, "bridge", "plank")
	require.True(t, ok)
	assert.Equal(t, KindBody, plank.Kind)
	assert.Equal(t, uint32(1), plank.Layer)
	assert.Equal(t, uint32(2), plank.Mask)
	assert.Equal(t, 32.0, plank.W)

	agent, ok := find(&f.Root, "bridge", "agent4")
	require.True(t, ok, "unnamed objects are named after their kind and id")
	assert.Equal(t, KindAgent, agent.Kind)
}

func TestLoad_DuplicateNames(t *testing.T) {
	fsys := fstest.MapFS{"dup.tmx": {Data: []byte(duplicateTMX)}}

	_, err := Load(fsys, "dup.tmx")
	require.ErrorIs(t, err, ErrDuplicateName)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(fstest.MapFS{}, "missing.tmx")
	require.Error(t, err)
}

func TestLoadAll(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/b.tmx":      {Data: []byte(testTMX)},
		"levels/a.tmx":      {Data: []byte(testTMX)},
		"levels/readme.txt": {Data: []byte("not a floor")},
	}

	floors, names, err := LoadAll(fsys, "levels")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, names)
	require.Contains(t, floors, "a")
	assert.Equal(t, "a", floors["a"].Name)
}

func TestLoadAll_Empty(t *testing.T) {
	_, _, err := LoadAll(fstest.MapFS{"levels/readme.txt": {Data: []byte("x")}}, "levels")
	require.ErrorIs(t, err, ErrNoFloors)
}

func TestLoadAll_ShippedLevels(t *testing.T) {
	dir := filepath.Join("..", "assets")
	floors, names, err := LoadAll(os.DirFS(dir), "levels")
	require.NoError(t, err)
	require.Contains(t, names, "floor1")

	f := floors["floor1"]
	for _, path := range [][]string{
		{"terrain", "ground"},
		{"main", "spawn"},
		{"bridge", "plank1"},
		{"bridge", "agent"},
		{"crates", "B1"},
	} {
		_, ok := find(&f.Root, path...)
		assert.True(t, ok, "missing %v", path)
	}

	b1, _ := find(&f.Root, "crates", "B1")
	assert.Equal(t, uint32(1), b1.Layer)
	assert.Equal(t, uint32(2), b1.Mask)
}

package systems

import (
	"testing"

	"github.com/automoto/floorcollision/components"
	"github.com/automoto/floorcollision/floor"
	"github.com/automoto/floorcollision/floor/mocks"
	"github.com/automoto/floorcollision/level"
	"github.com/automoto/floorcollision/scenegraph"
	"github.com/automoto/floorcollision/systems/factory"
	"github.com/automoto/floorcollision/tags"
	"github.com/solarlune/resolv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"go.uber.org/mock/gomock"
)

type world struct {
	w     donburi.World
	g     *scenegraph.Graph
	space *resolv.Space
	root  *donburi.Entry
}

func newWorld(t *testing.T) *world {
	t.Helper()
	w := donburi.NewWorld()
	g := scenegraph.New(w)
	space := components.Space.Get(factory.CreateSpace(w, 256, 128, 16, 16)).Space

	f := &level.Floor{Name: "test", Root: level.Node{Name: "test", Children: []level.Node{
		{Name: "B1", Kind: level.KindBody, Layer: 1, Mask: 2, X: 0, Y: 0, W: 16, H: 16},
		{Name: "bridge", Kind: level.KindContainer, Children: []level.Node{
			{Name: "plank", Kind: level.KindBody, Layer: 2, Mask: 1, X: 64, Y: 64, W: 32, H: 8},
			{Name: "agent", Kind: level.KindAgent},
		}},
	}}}
	root, err := factory.CreateFloor(g, space, f, nil)
	require.NoError(t, err)
	return &world{w: w, g: g, space: space, root: root}
}

func (w *world) live(t *testing.T, path floor.NodePath) floor.Attributes {
	t.Helper()
	e, ok := w.g.Lookup(w.root.Entity(), path)
	require.True(t, ok)
	c, ok := w.g.Collidable(e)
	require.True(t, ok)
	return floor.Attributes{Layer: c.CollisionLayer(), Mask: c.CollisionMask()}
}

func TestUpdateFloors(t *testing.T) {
	w := newWorld(t)
	cache := components.Floor.Get(w.root).Cache

	RequestFloorToggle(w.root, false)
	UpdateFloors(w.w)
	assert.False(t, cache.Enabled())
	assert.Equal(t, floor.Attributes{}, w.live(t, "B1"))
	assert.False(t, w.root.HasComponent(components.FloorToggle), "requests are consumed")

	// Nothing queued, nothing changes.
	UpdateFloors(w.w)
	assert.False(t, cache.Enabled())

	RequestFloorToggle(w.root, false)
	RequestFloorToggle(w.root, true)
	UpdateFloors(w.w)
	assert.True(t, cache.Enabled())
	assert.Equal(t, floor.Attributes{Layer: 1, Mask: 2}, w.live(t, "B1"))
}

func TestUpdateFloors_Logging(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	SetLogger(log)
	t.Cleanup(func() { SetLogger(nil) })

	w := newWorld(t)
	cache := components.Floor.Get(w.root).Cache
	require.NoError(t, cache.Disable())

	// A body added behind the cache's back cannot be restored.
	require.NoError(t, factory.CreateNode(w.g, nil, w.root.Entity(), level.Node{Name: "late", Kind: level.KindBody, Layer: 1}))

	log.EXPECT().Error("floor toggle failed", gomock.Any()).Times(1)
	RequestFloorToggle(w.root, true)
	UpdateFloors(w.w)
	assert.False(t, cache.Enabled())

	log.EXPECT().Warn("floor toggle on an entity without a floor", gomock.Any()).Times(1)
	stray := w.w.Entry(w.w.Create(tags.Container))
	RequestFloorToggle(stray, true)
	UpdateFloors(w.w)
}

func TestRegrowAgentTargets(t *testing.T) {
	w := newWorld(t)
	cache := components.Floor.Get(w.root).Cache
	regrown := floor.Attributes{Layer: 8, Mask: 8}

	n := RegrowAgentTargets(w.w, w.g, regrown)
	assert.Equal(t, 1, n)

	entry, ok := cache.Entry("bridge/plank")
	require.True(t, ok)
	assert.Equal(t, regrown, entry)
	assert.Equal(t, regrown, w.live(t, "bridge/plank"))

	entry, _ = cache.Entry("B1")
	assert.Equal(t, floor.Attributes{Layer: 1, Mask: 2}, entry, "nodes outside the agent's parent are not refreshed")
}

func TestRegrowAgentTargets_WhileDisabled(t *testing.T) {
	w := newWorld(t)
	cache := components.Floor.Get(w.root).Cache
	require.NoError(t, cache.Disable())

	RegrowAgentTargets(w.w, w.g, floor.Attributes{Layer: 4, Mask: 4})
	assert.Equal(t, floor.Attributes{}, w.live(t, "bridge/plank"))

	require.NoError(t, cache.Enable())
	assert.Equal(t, floor.Attributes{Layer: 4, Mask: 4}, w.live(t, "bridge/plank"))
}

func TestOverlapping(t *testing.T) {
	w := newWorld(t)
	cache := components.Floor.Get(w.root).Cache

	probe := resolv.NewObject(4, 4, 4, 4)
	w.space.Add(probe)

	assert.Len(t, Overlapping(probe, 1), 1, "overlaps B1 on layer 1")
	assert.Empty(t, Overlapping(probe, 2), "B1 is not on layer 2")
	assert.Empty(t, Overlapping(probe, 0))

	require.NoError(t, cache.Disable())
	assert.Empty(t, Overlapping(probe, 1), "disabled floors collide with nothing")

	require.NoError(t, cache.Enable())
	assert.Len(t, Overlapping(probe, 1), 1)
}

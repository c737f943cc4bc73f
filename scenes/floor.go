package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/floorcollision/components"
	cfg "github.com/automoto/floorcollision/config"
	"github.com/automoto/floorcollision/floor"
	"github.com/automoto/floorcollision/level"
	"github.com/automoto/floorcollision/scenegraph"
	"github.com/automoto/floorcollision/systems"
	"github.com/automoto/floorcollision/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	LayerDefault ecs.LayerID = iota
)

// The probe never carries layer tags, so floor objects never collide with it.
const resolvProbe = "probe"

// FloorScene shows one floor and lets the player toggle its collision and
// regrow its agent-guarded geometry.
type FloorScene struct {
	ecs   *ecs.ECS
	graph *scenegraph.Graph
	floor donburi.Entity
	probe *resolv.Object
	log   floor.Logger

	regrowCount int
	once        sync.Once
}

// NewFloorScene builds the floor's entities and initializes its cache.
func NewFloorScene(f *level.Floor, log floor.Logger) (*FloorScene, error) {
	world := donburi.NewWorld()
	graph := scenegraph.New(world)

	cell := cfg.Floor.SpaceCellSize
	spaceEntry := factory.CreateSpace(world, f.MapWidth, f.MapHeight, cell, cell)
	space := components.Space.Get(spaceEntry).Space

	root, err := factory.CreateFloor(graph, space, f, log)
	if err != nil {
		return nil, err
	}

	probe := resolv.NewObject(0, 0, cfg.Floor.ProbeSize, cfg.Floor.ProbeSize, resolvProbe)
	space.Add(probe)

	fs := &FloorScene{
		ecs:   ecs.NewECS(world),
		graph: graph,
		floor: root.Entity(),
		probe: probe,
		log:   log,
	}
	fs.moveProbeToSpawn()
	return fs, nil
}

func (fs *FloorScene) Update() {
	fs.once.Do(fs.configure)
	fs.ecs.Update()
}

func (fs *FloorScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)
	fs.ecs.Draw(screen)
}

func (fs *FloorScene) configure() {
	fs.ecs.AddSystem(fs.updateInput)
	fs.ecs.AddSystem(updateFloors)

	fs.ecs.AddRenderer(LayerDefault, fs.drawFloorDebug)
}

func updateFloors(ecs *ecs.ECS) {
	systems.UpdateFloors(ecs.World)
}

func (fs *FloorScene) updateInput(ecs *ecs.ECS) {
	x, y := ebiten.CursorPosition()
	fs.probe.X = float64(x) - fs.probe.W/2
	fs.probe.Y = float64(y) - fs.probe.H/2
	fs.probe.Update()

	root := ecs.World.Entry(fs.floor)
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		enabled := components.Floor.Get(root).Cache.Enabled()
		systems.RequestFloorToggle(root, !enabled)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		fs.regrowCount++
		layer := uint32(1) << (fs.regrowCount % 4)
		n := systems.RegrowAgentTargets(ecs.World, fs.graph, floor.Attributes{Layer: layer, Mask: layer})
		fs.log.Info("regrew agent targets", floor.Fields{"agents": n, "layer": layer})
	}
}

func (fs *FloorScene) moveProbeToSpawn() {
	cache := components.Floor.Get(fs.ecs.World.Entry(fs.floor)).Cache
	spawn, err := cache.SpawnPoint()
	if err != nil {
		fs.log.Warn("floor has no spawn point", floor.Fields{"err": err})
		return
	}
	obj := components.Object.Get(fs.ecs.World.Entry(spawn))
	fs.probe.X = obj.X
	fs.probe.Y = obj.Y
	fs.probe.Update()
}

package scenes

import (
	"image/color"

	"github.com/automoto/floorcollision/components"
	cfg "github.com/automoto/floorcollision/config"
	"github.com/automoto/floorcollision/systems"
	"github.com/automoto/floorcollision/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/ecs"
)

// drawFloorDebug outlines every collidable cell, grey while its live layer
// is zero, plus the spawn marker and the probe.
func (fs *FloorScene) drawFloorDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.DrawCollision {
		return
	}

	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)

	for _, obj := range space.Objects() {
		if obj == fs.probe {
			continue
		}
		c := rgba(cfg.Floor.DisabledColor)
		if obj.HasTags(tags.AllLayerTags()...) {
			c = rgba(cfg.Floor.EnabledColor)
		}
		strokeObject(screen, obj, c)
	}

	for e := range tags.Spawn.Iter(ecs.World) {
		strokeObject(screen, components.Object.Get(e).Object, rgba(cfg.Floor.SpawnColor))
	}

	probeColor := rgba(cfg.Floor.ProbeColor)
	if len(systems.Overlapping(fs.probe, cfg.Floor.ProbeMask)) > 0 {
		probeColor = rgba(cfg.Floor.ProbeHitColor)
	}
	strokeObject(screen, fs.probe, probeColor)
}

func strokeObject(screen *ebiten.Image, obj *resolv.Object, c color.RGBA) {
	x, y := float32(obj.X), float32(obj.Y)
	w, h := float32(obj.W), float32(obj.H)
	if w < 2 || h < 2 {
		w, h = 4, 4
	}
	vector.FillRect(screen, x, y, w, 1, c, false)     // Top
	vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
	vector.FillRect(screen, x, y, 1, h, c, false)     // Left
	vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
}

func rgba(c [4]uint8) color.RGBA {
	return color.RGBA{R: c[0], G: c[1], B: c[2], A: c[3]}
}

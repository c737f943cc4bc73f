package systems

import (
	"github.com/automoto/floorcollision/components"
	"github.com/automoto/floorcollision/floor"
	"github.com/automoto/floorcollision/scenegraph"
	"github.com/automoto/floorcollision/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

var logger floor.Logger = floor.NopLogger{}

// SetLogger sets the logger used by the floor systems. nil restores the no-op logger.
func SetLogger(l floor.Logger) {
	if l == nil {
		l = floor.NopLogger{}
	}
	logger = l
}

// RequestFloorToggle queues a collision toggle on a floor root. The last
// request queued before UpdateFloors runs wins.
func RequestFloorToggle(e *donburi.Entry, enable bool) {
	if e.HasComponent(components.FloorToggle) {
		components.FloorToggle.SetValue(e, components.FloorToggleData{Enable: enable})
		return
	}
	donburi.Add(e, components.FloorToggle, &components.FloorToggleData{Enable: enable})
}

// UpdateFloors applies queued floor toggles, once per request.
func UpdateFloors(w donburi.World) {
	var pending []*donburi.Entry
	for e := range components.FloorToggle.Iter(w) {
		pending = append(pending, e)
	}

	for _, e := range pending {
		req := *components.FloorToggle.Get(e)
		// Remove the request so it is processed only once.
		donburi.Remove[components.FloorToggleData](e, components.FloorToggle)

		if !e.HasComponent(components.Floor) {
			logger.Warn("floor toggle on an entity without a floor", floor.Fields{"entity": e.Entity()})
			continue
		}

		fl := components.Floor.Get(e)
		var err error
		if req.Enable {
			err = fl.Cache.Enable()
		} else {
			err = fl.Cache.Disable()
		}
		if err != nil {
			logger.Error("floor toggle failed", floor.Fields{"floor": fl.Name, "enable": req.Enable, "err": err})
		}
	}
}

// RegrowAgentTargets overwrites the live attributes of every collidable under
// each agent's parent, then lets the agent raise collision_changed. It stands
// in for procedural geometry being rebuilt at runtime.
func RegrowAgentTargets(w donburi.World, g *scenegraph.Graph, attrs floor.Attributes) int {
	var agents []*floor.Agent
	for e := range components.FloorAgent.Iter(w) {
		if a := components.FloorAgent.Get(e).Agent; a != nil {
			agents = append(agents, a)
		}
	}

	for _, a := range agents {
		target, ok := g.Parent(a.Owner())
		if !ok {
			continue
		}
		eachCollidable(g, target, func(c floor.Collidable) {
			c.SetCollisionLayer(attrs.Layer)
			c.SetCollisionMask(attrs.Mask)
		})
		a.Notify()
	}
	return len(agents)
}

// Overlapping returns the solid objects overlapping obj on any layer in mask.
func Overlapping(obj *resolv.Object, mask uint32) []*resolv.Object {
	// resolv checks against every object when no tags are given.
	if mask == 0 {
		return nil
	}
	check := obj.Check(0, 0, tags.LayerTags(mask)...)
	if check == nil {
		return nil
	}
	return check.Objects
}

func eachCollidable(g *scenegraph.Graph, node donburi.Entity, fn func(floor.Collidable)) {
	if c, ok := g.Collidable(node); ok {
		fn(c)
	}
	for _, child := range g.Children(node) {
		eachCollidable(g, child, fn)
	}
}

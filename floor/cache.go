// Package floor caches the collision layer/mask of every collidable node under
// a scene root so collision for the whole subtree can be switched off and
// later restored to the captured values.
package floor

import (
	"maps"
	"slices"

	"github.com/yohamta/donburi"
	"go.trai.ch/zerr"
)

const (
	// KindLabel is returned by Cache.KindLabel.
	KindLabel = "Floor"

	// DefaultSpawnPath is the conventional spawn marker below a floor root.
	DefaultSpawnPath NodePath = "main/spawn"
)

// Options tune a Cache. The zero value is usable.
type Options struct {
	Logger    Logger   // if nil, NopLogger is used
	SpawnPath NodePath // "" => DefaultSpawnPath
}

// Cache owns the path-keyed collision attributes of every collidable under a
// root, the set of agents it listens to, and the enabled flag.
//
// A Cache is not safe for concurrent use. All calls, including agent
// notifications, must come from the goroutine that drives the scene.
type Cache struct {
	scene     Scene
	log       Logger
	spawnPath NodePath

	root        donburi.Entity
	initialized bool
	enabled     bool
	entries     map[NodePath]Attributes
	agents      map[NodePath]struct{}
}

func New(scene Scene, opts Options) *Cache {
	c := &Cache{
		scene:     scene,
		log:       opts.Logger,
		spawnPath: opts.SpawnPath,
		enabled:   true,
		entries:   make(map[NodePath]Attributes),
		agents:    make(map[NodePath]struct{}),
	}
	if c.log == nil {
		c.log = NopLogger{}
	}
	if c.spawnPath == "" {
		c.spawnPath = DefaultSpawnPath
	}
	return c
}

// Initialize walks the subtree rooted at root, caching every collidable and
// subscribing to every change agent. It must be called exactly once, before
// any other operation.
func (c *Cache) Initialize(root donburi.Entity) error {
	if c.initialized {
		return zerr.Wrap(ErrAlreadyInitialized, "initialize floor")
	}
	if !c.scene.Valid(root) {
		return unresolved("initialize floor", root)
	}

	c.root = root
	if err := c.cache(root, true); err != nil {
		clear(c.entries)
		clear(c.agents)
		return err
	}
	c.initialized = true

	c.log.Debug("floor cache initialized", Fields{"collidables": len(c.entries), "agents": len(c.agents)})
	return nil
}

// RefreshSubtree re-walks node's subtree. Without force, collidables that are
// already cached keep their entry; with force every entry is overwritten with
// the node's current live attributes.
func (c *Cache) RefreshSubtree(node donburi.Entity, force bool) error {
	if !c.initialized {
		return zerr.Wrap(ErrNotInitialized, "refresh subtree")
	}
	if !c.scene.Valid(node) {
		return unresolved("refresh subtree", node)
	}
	path, err := c.scene.PathTo(c.root, node)
	if err != nil {
		return zerr.Wrap(err, "refresh subtree")
	}

	before := len(c.entries)
	if err := c.cache(node, force); err != nil {
		return err
	}

	c.log.Debug("floor subtree refreshed", Fields{"path": path.String(), "force": force, "added": len(c.entries) - before})
	return nil
}

// Enable restores every collidable's live attributes from the cache. It fails
// with ErrMissingCacheEntry, without changing anything, if any collidable has
// never been cached.
func (c *Cache) Enable() error {
	if !c.initialized {
		return zerr.Wrap(ErrNotInitialized, "enable collision")
	}

	var restore []assignment
	err := c.walk(c.root, func(node donburi.Entity, kind Kind) error {
		if !kind.IsCollidable() {
			return nil
		}
		path, err := c.scene.PathTo(c.root, node)
		if err != nil {
			return zerr.Wrap(err, "enable collision")
		}
		attrs, ok := c.entries[path]
		if !ok {
			return zerr.With(zerr.Wrap(ErrMissingCacheEntry, "enable collision"), "path", path.String())
		}
		col, err := c.collidable(node)
		if err != nil {
			return err
		}
		restore = append(restore, assignment{col: col, attrs: attrs})
		return nil
	})
	if err != nil {
		return err
	}

	c.enabled = true
	for _, a := range restore {
		apply(a.col, a.attrs)
	}

	c.log.Info("floor collision enabled", Fields{"collidables": len(restore)})
	return nil
}

// Disable zeroes the live layer and mask of every collidable under the root.
// The cache is left untouched so Enable can restore the captured values.
func (c *Cache) Disable() error {
	if !c.initialized {
		return zerr.Wrap(ErrNotInitialized, "disable collision")
	}

	// Live values are already zero while disabled, so only pick up nodes that
	// are not cached yet.
	if !c.enabled {
		if err := c.RefreshSubtree(c.root, false); err != nil {
			return err
		}
	}

	c.enabled = false
	n, err := c.zero(c.root)
	if err != nil {
		return err
	}

	c.log.Info("floor collision disabled", Fields{"collidables": n})
	return nil
}

// OnAgentNotified handles a collision_changed event: target's subtree is
// re-cached, and zeroed again if collision is currently disabled.
func (c *Cache) OnAgentNotified(target donburi.Entity) error {
	if !c.initialized {
		return zerr.Wrap(ErrNotInitialized, "agent notification")
	}
	if !c.scene.Valid(target) {
		return unresolved("agent notification", target)
	}

	if err := c.RefreshSubtree(target, true); err != nil {
		return err
	}
	if c.enabled {
		return nil
	}

	_, err := c.zero(target)
	return err
}

// RegisterAgent subscribes the cache to the agent at node. Registering an
// agent whose path is already known is a no-op.
func (c *Cache) RegisterAgent(node donburi.Entity) error {
	if !c.initialized {
		return zerr.Wrap(ErrNotInitialized, "register agent")
	}
	if !c.scene.Valid(node) {
		return unresolved("register agent", node)
	}
	return c.register(node)
}

// SpawnPoint returns the conventional spawn marker below the root.
func (c *Cache) SpawnPoint() (donburi.Entity, error) {
	if !c.initialized {
		return donburi.Null, zerr.Wrap(ErrNotInitialized, "spawn point")
	}
	e, ok := c.scene.Lookup(c.root, c.spawnPath)
	if !ok {
		return donburi.Null, zerr.With(zerr.Wrap(ErrMissingConventionalChild, "spawn point"), "path", c.spawnPath.String())
	}
	return e, nil
}

func (c *Cache) KindLabel() string {
	return KindLabel
}

func (c *Cache) Enabled() bool {
	return c.enabled
}

func (c *Cache) Root() donburi.Entity {
	return c.root
}

// Entry returns the cached attributes for path.
func (c *Cache) Entry(path NodePath) (Attributes, bool) {
	a, ok := c.entries[path]
	return a, ok
}

// Len returns the number of cached collidables.
func (c *Cache) Len() int {
	return len(c.entries)
}

// Snapshot returns a copy of the cache.
func (c *Cache) Snapshot() map[NodePath]Attributes {
	return maps.Clone(c.entries)
}

// Agents returns the sorted paths of every registered agent.
func (c *Cache) Agents() []NodePath {
	return slices.Sorted(maps.Keys(c.agents))
}

type assignment struct {
	col   Collidable
	attrs Attributes
}

// walk visits node and every descendant depth-first. A dangling handle
// anywhere in the subtree aborts the walk.
func (c *Cache) walk(node donburi.Entity, visit func(node donburi.Entity, kind Kind) error) error {
	if !c.scene.Valid(node) {
		return unresolved("walk floor", node)
	}
	if err := visit(node, c.scene.Classify(node)); err != nil {
		return err
	}
	for _, child := range c.scene.Children(node) {
		if err := c.walk(child, visit); err != nil {
			return err
		}
	}
	return nil
}

// cache re-walks node's subtree. Agents found on the way are subscribed only
// once the whole walk succeeded, so a failed pass leaves no listener behind.
func (c *Cache) cache(node donburi.Entity, force bool) error {
	var pending []agentRef
	err := c.walk(node, func(node donburi.Entity, kind Kind) error {
		switch {
		case kind.IsCollidable():
			path, err := c.scene.PathTo(c.root, node)
			if err != nil {
				return zerr.Wrap(err, "cache collision")
			}
			if _, ok := c.entries[path]; ok && !force {
				return nil
			}
			col, err := c.collidable(node)
			if err != nil {
				return err
			}
			c.entries[path] = capture(col)
		case kind == ChangeAgent:
			ref, ok, err := c.resolveAgent(node)
			if err != nil {
				return err
			}
			if ok {
				pending = append(pending, ref)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	for _, ref := range pending {
		c.connect(ref)
	}
	return nil
}

// zero sets the live attributes of every collidable under node to 0/0 and
// returns how many were touched.
func (c *Cache) zero(node donburi.Entity) (int, error) {
	var cols []Collidable
	err := c.walk(node, func(node donburi.Entity, kind Kind) error {
		if !kind.IsCollidable() {
			return nil
		}
		col, err := c.collidable(node)
		if err != nil {
			return err
		}
		cols = append(cols, col)
		return nil
	})
	if err != nil {
		return 0, err
	}

	for _, col := range cols {
		apply(col, Attributes{})
	}
	return len(cols), nil
}

type agentRef struct {
	path  NodePath
	agent *Agent
}

func (c *Cache) register(node donburi.Entity) error {
	ref, ok, err := c.resolveAgent(node)
	if err != nil || !ok {
		return err
	}
	c.connect(ref)
	return nil
}

// resolveAgent returns the agent at node, or false if its path is already
// registered.
func (c *Cache) resolveAgent(node donburi.Entity) (agentRef, bool, error) {
	path, err := c.scene.PathTo(c.root, node)
	if err != nil {
		return agentRef{}, false, zerr.Wrap(err, "register agent")
	}
	if _, ok := c.agents[path]; ok {
		return agentRef{}, false, nil
	}
	agent, ok := c.scene.Agent(node)
	if !ok {
		return agentRef{}, false, zerr.With(zerr.Wrap(ErrNotAgent, "register agent"), "path", path.String())
	}
	return agentRef{path: path, agent: agent}, true, nil
}

func (c *Cache) connect(ref agentRef) {
	if _, ok := c.agents[ref.path]; ok {
		return
	}
	ref.agent.Connect(c.onAgentCollisionChanged)
	c.agents[ref.path] = struct{}{}

	c.log.Debug("floor agent registered", Fields{"path": ref.path.String()})
}

func (c *Cache) onAgentCollisionChanged(target donburi.Entity) {
	if err := c.OnAgentNotified(target); err != nil {
		c.log.Error("floor agent notification failed", Fields{"target": c.describe(target), "err": err})
	}
}

// describe names node by its path below the root, falling back to the raw
// handle when no path can be computed.
func (c *Cache) describe(node donburi.Entity) any {
	if path, err := c.scene.PathTo(c.root, node); err == nil {
		return path.String()
	}
	return node
}

func (c *Cache) collidable(node donburi.Entity) (Collidable, error) {
	col, ok := c.scene.Collidable(node)
	if !ok {
		return nil, unresolved("resolve collidable", node)
	}
	return col, nil
}

func unresolved(op string, node donburi.Entity) error {
	return zerr.With(zerr.Wrap(ErrUnresolvedReference, op), "entity", node)
}

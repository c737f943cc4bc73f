package floor

import "github.com/yohamta/donburi"

// AgentKindLabel is returned by Agent.KindLabel.
const AgentKindLabel = "FloorAgent"

// Listener receives a collision_changed event. target is the node whose
// subtree may have changed collision state.
type Listener func(target donburi.Entity)

// Agent raises collision_changed events for the part of the tree it is
// attached to. Listeners run synchronously on the caller's goroutine.
type Agent struct {
	owner     donburi.Entity
	tree      ParentLookup
	listeners []Listener
}

// NewAgent creates an agent owned by the given node. tree is used to find the
// default notification target.
func NewAgent(owner donburi.Entity, tree ParentLookup) *Agent {
	return &Agent{owner: owner, tree: tree}
}

func (a *Agent) Owner() donburi.Entity {
	return a.owner
}

// Connect subscribes a listener. Nothing prevents connecting the same
// listener twice; callers that need idempotence track it themselves.
func (a *Agent) Connect(l Listener) {
	a.listeners = append(a.listeners, l)
}

// Listeners returns the number of connected listeners.
func (a *Agent) Listeners() int {
	return len(a.listeners)
}

// Notify raises collision_changed for the agent's parent. The event is
// dropped when the agent has no parent or nothing is listening.
func (a *Agent) Notify() {
	parent, ok := a.tree.Parent(a.owner)
	if !ok {
		return
	}
	a.NotifyTarget(parent)
}

// NotifyTarget raises collision_changed for an explicit target node.
func (a *Agent) NotifyTarget(target donburi.Entity) {
	for _, l := range a.listeners {
		l(target)
	}
}

func (a *Agent) KindLabel() string {
	return AgentKindLabel
}

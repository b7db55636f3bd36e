package component

import "github.com/milk9111/horde/common"

// NavStatus is what the navigation agent reports for its NPC.
type NavStatus int

const (
	// NavUnavailable is the zero value: the agent has no body yet.
	NavUnavailable NavStatus = iota
	NavMoving
	NavReachedTarget
)

func (s NavStatus) String() string {
	switch s {
	case NavMoving:
		return "moving"
	case NavReachedTarget:
		return "reached_target"
	}
	return "unavailable"
}

// NavAgent links an NPC to the navigation system. Reach is the horizontal
// distance at which the target counts as reached.
type NavAgent struct {
	Status NavStatus
	Target common.Vec3
	Reach  float64
}

var NavAgentComponent = NewComponent[NavAgent]()

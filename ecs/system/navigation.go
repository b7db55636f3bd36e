package system

import (
	"math"

	"github.com/milk9111/horde/ecs"
	"github.com/milk9111/horde/ecs/component"
)

// NavigationSystem steers chasing NPCs straight at the player and reports
// whether each one has reached attack range. Agents whose body has not
// been added to the physics space yet report NavUnavailable.
type NavigationSystem struct{}

func NewNavigationSystem() *NavigationSystem {
	return &NavigationSystem{}
}

func (s *NavigationSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	target, hasTarget := playerPosition(w)

	ecs.ForEach2(w, component.NavAgentComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, nav *component.NavAgent, t *component.Transform) {
		pb, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
		if !ok || pb.Body == nil {
			nav.Status = component.NavUnavailable
			return
		}
		if !hasTarget {
			nav.Status = component.NavMoving
			setVelocity(w, e, 0, 0)
			return
		}

		nav.Target = target
		if nav.Reach <= 0 {
			nav.Reach = attackReach(w, e)
		}
		offset := target.Sub(t.Position).Horizontal()
		if offset.Length() <= nav.Reach {
			nav.Status = component.NavReachedTarget
		} else {
			nav.Status = component.NavMoving
		}

		st, ok := ecs.Get(w, e, component.AIStateComponent.Kind())
		if !ok || st.Mode != component.AIChase || nav.Status == component.NavReachedTarget {
			if !ecs.Has(w, e, component.AttackingComponent.Kind()) {
				setVelocity(w, e, 0, 0)
			}
			return
		}

		dir, ok := offset.Normalize()
		if !ok {
			return
		}
		speed := 0.0
		if stats, ok := ecs.Get(w, e, component.NpcStatsComponent.Kind()); ok {
			speed = min(stats.DesiredSpeed, stats.MaxSpeed)
		}
		setVelocity(w, e, dir.X*speed, dir.Z*speed)
		t.Yaw = math.Atan2(dir.Z, dir.X)
	})
}

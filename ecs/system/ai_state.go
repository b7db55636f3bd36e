package system

import (
	"github.com/milk9111/horde/audio"
	"github.com/milk9111/horde/ecs"
	"github.com/milk9111/horde/ecs/component"
)

// BehaviorSystem drives the Chase/Stagger/Attack machine. It is the only
// writer of AIState besides the stagger handler, and at most one
// transition fires per NPC per tick.
type BehaviorSystem struct{}

func NewBehaviorSystem() *BehaviorSystem {
	return &BehaviorSystem{}
}

func (s *BehaviorSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	for _, e := range w.Query(component.AIStateComponent.Kind(), component.NavAgentComponent.Kind()) {
		st, ok := ecs.Get(w, e, component.AIStateComponent.Kind())
		if !ok {
			continue
		}
		nav, ok := ecs.Get(w, e, component.NavAgentComponent.Kind())
		if !ok || nav.Status == component.NavUnavailable {
			continue
		}

		switch st.Mode {
		case component.AIChase:
			if nav.Status == component.NavReachedTarget {
				s.startAttack(w, e, st)
			}
		case component.AIStagger:
			if st.StaggerRemaining <= 0 {
				st.Chase()
			}
		case component.AIAttack:
			if !ecs.Has(w, e, component.AttackingComponent.Kind()) {
				st.Chase()
			}
		}
	}
}

func (s *BehaviorSystem) startAttack(w *ecs.World, e ecs.Entity, st *component.AIState) {
	stats, ok := ecs.Get(w, e, component.NpcStatsComponent.Kind())
	if !ok {
		return
	}
	transform, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return
	}

	attack := component.Attacking{
		Speed:  stats.AttackSpeed.Sample(w.Rand()),
		Damage: stats.AttackDamage,
	}
	if player, ok := playerPosition(w); ok {
		target := player
		target.Y = transform.Position.Y
		attack.Dir, attack.HasDir = target.Sub(transform.Position).Normalize()
	}
	if err := ecs.Add(w, e, component.AttackingComponent.Kind(), &attack); err != nil {
		return
	}
	st.Attack()

	cue := npcCue(w, e, audio.CueAttack, stats)
	cue.Volume = 1.1
	cue.Falloff = 1 / 7.5
	PlayCue(w, cue)
}

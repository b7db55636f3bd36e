package system

import (
	"math"

	"github.com/milk9111/horde/ecs"
	"github.com/milk9111/horde/ecs/component"
)

const (
	// baseSwing is the length of an attack at speed 1, in seconds.
	baseSwing    = 1.0
	attackMargin = 0.6
	lungeSpeed   = 4.0
	// attackCone is the full opening angle a swing connects within.
	attackCone = 60 * math.Pi / 180
)

// AttackSystem plays out Attacking swings: a lunge during the wind-up, one
// strike at the half-way point, then removal so the NPC returns to Chase.
type AttackSystem struct{}

func NewAttackSystem() *AttackSystem {
	return &AttackSystem{}
}

// AttackDuration is how long a swing at speed lasts.
func AttackDuration(speed float64) float64 {
	if speed <= 0 {
		return 0
	}
	return baseSwing / speed
}

func (s *AttackSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.Delta()

	ecs.ForEach(w, component.AttackingComponent.Kind(), func(e ecs.Entity, atk *component.Attacking) {
		duration := AttackDuration(atk.Speed)
		if !atk.HasDir || duration <= 0 {
			s.finish(w, e)
			return
		}

		atk.Elapsed += dt
		strike := duration / 2
		if atk.Elapsed < strike {
			setVelocity(w, e, atk.Dir.X*lungeSpeed, atk.Dir.Z*lungeSpeed)
		} else {
			setVelocity(w, e, 0, 0)
		}

		if !atk.Struck && atk.Elapsed >= strike {
			atk.Struck = true
			if player, ok := s.inReach(w, e, atk); ok {
				ApplyDamage(w, player, atk.Damage, e)
			}
		}

		if atk.Elapsed >= duration {
			s.finish(w, e)
		}
	})
}

func (s *AttackSystem) finish(w *ecs.World, e ecs.Entity) {
	ecs.Remove(w, e, component.AttackingComponent.Kind())
	setVelocity(w, e, 0, 0)
}

// inReach returns the player if it stands within reach and inside the cone
// around the swing direction.
func (s *AttackSystem) inReach(w *ecs.World, e ecs.Entity, atk *component.Attacking) (ecs.Entity, bool) {
	player, ok := w.First(component.PlayerTagComponent.Kind(), component.TransformComponent.Kind())
	if !ok {
		return 0, false
	}
	pt, _ := ecs.Get(w, player, component.TransformComponent.Kind())
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return 0, false
	}

	offset := pt.Position.Sub(t.Position).Horizontal()
	if offset.Length() > attackReach(w, e) {
		return 0, false
	}
	dir, ok := offset.Normalize()
	if !ok {
		return player, true
	}
	if dir.Dot(atk.Dir.Horizontal()) < math.Cos(attackCone/2) {
		return 0, false
	}
	return player, true
}

// attackReach is the horizontal distance at which an NPC can hit the player.
func attackReach(w *ecs.World, e ecs.Entity) float64 {
	if nav, ok := ecs.Get(w, e, component.NavAgentComponent.Kind()); ok && nav.Reach > 0 {
		return nav.Reach
	}
	radius := component.NPCRadius
	if stats, ok := ecs.Get(w, e, component.NpcStatsComponent.Kind()); ok {
		radius = stats.Radius()
	}
	return radius + component.PlayerRadius + attackMargin
}

package system

import (
	"go.uber.org/zap"

	"github.com/milk9111/horde/common"
	"github.com/milk9111/horde/ecs"
	"github.com/milk9111/horde/ecs/component"
)

// HealthSystem applies queued damage. It must be the first damage handler
// registered so later handlers see the post-damage pool.
type HealthSystem struct{}

func NewHealthSystem() *HealthSystem {
	return &HealthSystem{}
}

func (s *HealthSystem) Register(w *ecs.World) {
	ecs.On(w, EventDamage, s.onDamage)
}

func (s *HealthSystem) onDamage(w *ecs.World, evt DamageEvent) {
	health, ok := ecs.Get(w, evt.Target, component.HealthComponent.Kind())
	if !ok {
		return
	}
	if !health.Damage(evt.Amount) {
		return
	}

	var pos common.Vec3
	if t, ok := ecs.Get(w, evt.Target, component.TransformComponent.Kind()); ok {
		pos = t.Position
	}
	w.Logger().Debug("entity died",
		zap.Stringer("entity", evt.Target),
		zap.Stringer("source", evt.Source),
		zap.Float64("amount", evt.Amount),
	)
	ecs.Emit(w, EventDeath, DeathEvent{Entity: evt.Target, Position: pos})
}

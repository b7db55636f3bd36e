package system

import (
	"github.com/milk9111/horde/ecs"
	"github.com/milk9111/horde/ecs/component"
)

// DespawnSystem runs first each tick. Entities marked Despawn during the
// previous tick are destroyed here, so every reader of that tick still saw
// them. DespawnAfter timers are counted down in the same pass.
type DespawnSystem struct{}

func NewDespawnSystem() *DespawnSystem {
	return &DespawnSystem{}
}

func (s *DespawnSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	for _, e := range w.Query(component.DespawnComponent.Kind()) {
		ecs.DestroyEntity(w, e)
	}

	dt := w.Delta()
	ecs.ForEach(w, component.DespawnAfterComponent.Kind(), func(e ecs.Entity, ttl *component.DespawnAfter) {
		ttl.Remaining -= dt
		if ttl.Remaining <= 0 {
			ecs.DestroyEntity(w, e)
		}
	})
}

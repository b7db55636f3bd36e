package system

import (
	"github.com/milk9111/horde/ecs"
	"github.com/milk9111/horde/ecs/component"
)

// ParticleSystem integrates every emitter's particles.
type ParticleSystem struct{}

func NewParticleSystem() *ParticleSystem {
	return &ParticleSystem{}
}

func (s *ParticleSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.Delta()
	ecs.ForEach(w, component.ParticleEmitterComponent.Kind(), func(_ ecs.Entity, em *component.ParticleEmitter) {
		damp := max(1-em.Drag*dt, 0)
		for i := range em.Particles {
			p := &em.Particles[i]
			if p.Age >= p.Lifetime {
				continue
			}
			p.Age += dt
			p.Velocity = p.Velocity.Scale(damp)
			p.Velocity.Y += em.Gravity * dt
			p.Position = p.Position.Add(p.Velocity.Scale(dt))
		}
	})
}

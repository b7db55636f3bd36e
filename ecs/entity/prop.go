package entity

import (
	"fmt"

	"github.com/milk9111/horde/common"
	"github.com/milk9111/horde/ecs"
	"github.com/milk9111/horde/ecs/component"
	"github.com/milk9111/horde/prefabs"
)

const barrelMass = 40.0

// NewBarrel spawns a destructible barrel.
func NewBarrel(w *ecs.World, spec prefabs.PropSpec, pos common.Vec3) (ecs.Entity, error) {
	if spec.Health <= 0 {
		return 0, fmt.Errorf("barrel: health %v must be positive", spec.Health)
	}
	radius := spec.Radius
	if radius <= 0 {
		radius = 0.45
	}

	entity := ecs.CreateEntity(w)
	fail := func(what string, err error) (ecs.Entity, error) {
		ecs.DestroyEntity(w, entity)
		return 0, fmt.Errorf("barrel: add %s: %w", what, err)
	}

	if err := ecs.Add(w, entity, component.PropTagComponent.Kind(), &component.PropTag{}); err != nil {
		return fail("tag", err)
	}
	health := component.NewHealth(spec.Health)
	if err := ecs.Add(w, entity, component.HealthComponent.Kind(), &health); err != nil {
		return fail("health", err)
	}
	if err := ecs.Add(w, entity, component.TransformComponent.Kind(), &component.Transform{Position: pos, Scale: 1}); err != nil {
		return fail("transform", err)
	}
	if err := ecs.Add(w, entity, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Radius:   radius,
		Mass:     barrelMass,
		Friction: 0.6,
	}); err != nil {
		return fail("physics body", err)
	}
	if err := ecs.Add(w, entity, component.CollisionLayerComponent.Kind(), &component.CollisionLayer{
		Category: component.LayerProp,
		Mask:     component.LayerDefault | component.LayerPlayer | component.LayerNPC | component.LayerProp,
	}); err != nil {
		return fail("collision layer", err)
	}
	if err := ecs.Add(w, entity, component.SpriteComponent.Kind(), &component.Sprite{
		Color:  component.ColorByName(spec.Color),
		Radius: radius,
	}); err != nil {
		return fail("sprite", err)
	}
	if spec.ExplodeOnDeath {
		if err := ecs.Add(w, entity, component.ExplodeOnDeathComponent.Kind(), &component.ExplodeOnDeath{}); err != nil {
			return fail("explode on death", err)
		}
	}
	return entity, nil
}

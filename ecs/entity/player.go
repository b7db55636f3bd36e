package entity

import (
	"fmt"

	"github.com/milk9111/horde/common"
	"github.com/milk9111/horde/ecs"
	"github.com/milk9111/horde/ecs/component"
	"github.com/milk9111/horde/prefabs"
)

const playerMass = 80.0

// NewPlayer spawns the player, its weapon and the audio listener.
func NewPlayer(w *ecs.World, spec prefabs.PlayerSpec, pos common.Vec3) (ecs.Entity, error) {
	if spec.Health <= 0 {
		return 0, fmt.Errorf("player: health %v must be positive", spec.Health)
	}

	entity := ecs.CreateEntity(w)
	fail := func(what string, err error) (ecs.Entity, error) {
		ecs.DestroyEntity(w, entity)
		return 0, fmt.Errorf("player: add %s: %w", what, err)
	}

	if err := ecs.Add(w, entity, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return fail("tag", err)
	}
	if err := ecs.Add(w, entity, component.PlayerComponent.Kind(), &component.Player{Aim: common.V3(0, 0, -1)}); err != nil {
		return fail("player", err)
	}
	if err := ecs.Add(w, entity, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return fail("input", err)
	}
	health := component.NewHealth(spec.Health)
	if err := ecs.Add(w, entity, component.HealthComponent.Kind(), &health); err != nil {
		return fail("health", err)
	}

	movement := component.DefaultMovementStats()
	if spec.Speed > 0 {
		movement.Speed = spec.Speed
	}
	if err := ecs.Add(w, entity, component.MovementStatsComponent.Kind(), &movement); err != nil {
		return fail("movement stats", err)
	}

	weapon := component.DefaultWeaponStats()
	if spec.Weapon.Pellets > 0 {
		weapon = component.WeaponStats{
			Damage:       spec.Weapon.Damage,
			Pellets:      spec.Weapon.Pellets,
			SpreadRadius: spec.Weapon.SpreadRadius,
			Pushback:     spec.Weapon.Pushback,
			Range:        spec.Weapon.Range,
		}
	}
	if err := ecs.Add(w, entity, component.WeaponStatsComponent.Kind(), &weapon); err != nil {
		return fail("weapon stats", err)
	}

	if err := ecs.Add(w, entity, component.TransformComponent.Kind(), &component.Transform{Position: pos, Scale: 1}); err != nil {
		return fail("transform", err)
	}
	if err := ecs.Add(w, entity, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Radius: component.PlayerRadius,
		Mass:   playerMass,
	}); err != nil {
		return fail("physics body", err)
	}
	if err := ecs.Add(w, entity, component.CollisionLayerComponent.Kind(), &component.CollisionLayer{
		Category: component.LayerPlayer,
		Mask:     component.LayerDefault | component.LayerNPC | component.LayerProp,
	}); err != nil {
		return fail("collision layer", err)
	}
	if err := ecs.Add(w, entity, component.AudioListenerComponent.Kind(), &component.AudioListener{}); err != nil {
		return fail("audio listener", err)
	}
	if err := ecs.Add(w, entity, component.SpriteComponent.Kind(), &component.Sprite{
		Color:  component.ColorByName(spec.Color),
		Radius: component.PlayerRadius,
	}); err != nil {
		return fail("sprite", err)
	}
	return entity, nil
}

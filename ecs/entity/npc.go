package entity

import (
	"fmt"
	"image/color"

	"github.com/milk9111/horde/common"
	"github.com/milk9111/horde/ecs"
	"github.com/milk9111/horde/ecs/component"
	"github.com/milk9111/horde/prefabs"
)

const npcDensity = 60.0

// NpcStats converts a prefab variant into validated stats.
func NpcStats(spec prefabs.NPCSpec) (component.NpcStats, error) {
	stats := component.NpcStats{
		Health:          spec.Health,
		DesiredSpeed:    spec.DesiredSpeed,
		MaxSpeed:        spec.MaxSpeed,
		AttackDamage:    spec.AttackDamage,
		AttackSpeed:     spec.AttackSpeed,
		Size:            spec.Size,
		StaggerChance:   spec.StaggerChance,
		StaggerDuration: spec.StaggerDuration,
	}
	if err := stats.Validate(); err != nil {
		return component.NpcStats{}, fmt.Errorf("npc %s: %w", spec.Name, err)
	}
	return stats, nil
}

// NewNPC spawns an NPC of the given variant standing at pos on the ground.
func NewNPC(w *ecs.World, spec prefabs.NPCSpec, pos common.Vec3, explode bool) (ecs.Entity, error) {
	stats, err := NpcStats(spec)
	if err != nil {
		return 0, err
	}
	return NewNPCWithStats(w, spec.Name, stats, pos, explode || spec.ExplodeOnDeath, component.ColorByName(spec.Color))
}

// NewNPCWithStats is NewNPC for stats that did not come from a prefab.
func NewNPCWithStats(w *ecs.World, variant string, stats component.NpcStats, pos common.Vec3, explode bool, tint color.RGBA) (ecs.Entity, error) {
	if err := stats.Validate(); err != nil {
		return 0, fmt.Errorf("npc %s: %w", variant, err)
	}

	entity := ecs.CreateEntity(w)
	fail := func(what string, err error) (ecs.Entity, error) {
		ecs.DestroyEntity(w, entity)
		return 0, fmt.Errorf("npc: add %s: %w", what, err)
	}

	if err := ecs.Add(w, entity, component.NPCTagComponent.Kind(), &component.NPCTag{Variant: variant}); err != nil {
		return fail("tag", err)
	}
	if err := ecs.Add(w, entity, component.NpcStatsComponent.Kind(), &stats); err != nil {
		return fail("stats", err)
	}
	health := component.NewHealth(stats.Health)
	if err := ecs.Add(w, entity, component.HealthComponent.Kind(), &health); err != nil {
		return fail("health", err)
	}
	if err := ecs.Add(w, entity, component.AIStateComponent.Kind(), &component.AIState{}); err != nil {
		return fail("ai state", err)
	}
	if err := ecs.Add(w, entity, component.NavAgentComponent.Kind(), &component.NavAgent{}); err != nil {
		return fail("nav agent", err)
	}

	pos.Y = stats.FloatHeight()
	if err := ecs.Add(w, entity, component.TransformComponent.Kind(), &component.Transform{Position: pos, Scale: stats.Size}); err != nil {
		return fail("transform", err)
	}
	if err := ecs.Add(w, entity, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Radius:   stats.Radius(),
		Mass:     npcDensity * stats.Size,
		Friction: 0.2,
	}); err != nil {
		return fail("physics body", err)
	}
	if err := ecs.Add(w, entity, component.CollisionLayerComponent.Kind(), &component.CollisionLayer{
		Category: component.LayerNPC,
		Mask:     component.LayerDefault | component.LayerPlayer | component.LayerNPC | component.LayerProp,
	}); err != nil {
		return fail("collision layer", err)
	}

	sprite := &component.Sprite{Color: tint, Radius: stats.Radius()}
	if err := ecs.Add(w, entity, component.SpriteComponent.Kind(), sprite); err != nil {
		return fail("sprite", err)
	}

	if explode {
		if err := ecs.Add(w, entity, component.ExplodeOnDeathComponent.Kind(), &component.ExplodeOnDeath{}); err != nil {
			return fail("explode on death", err)
		}
	}
	return entity, nil
}

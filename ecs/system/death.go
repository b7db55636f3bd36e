package system

import (
	"math"
	"math/rand/v2"

	"go.uber.org/zap"

	"github.com/milk9111/horde/common"
	"github.com/milk9111/horde/ecs"
	"github.com/milk9111/horde/ecs/component"
)

const (
	GibCount  = 5
	GibSpread = 0.5
	// DefaultGibLifetime is how long debris lies around, in seconds.
	DefaultGibLifetime = 10.0

	gibRadius    = 0.15
	gibMass      = 0.3
	gibLaunchMax = 6.0
)

// DeathSystem turns deaths into gibs, removal and explosions. Players are
// left to the player handler.
type DeathSystem struct {
	gibLifetime float64
}

func NewDeathSystem(gibLifetime float64) *DeathSystem {
	if gibLifetime <= 0 {
		gibLifetime = DefaultGibLifetime
	}
	return &DeathSystem{gibLifetime: gibLifetime}
}

func (s *DeathSystem) Register(w *ecs.World) {
	ecs.On(w, EventDeath, s.onDeath)
}

func (s *DeathSystem) onDeath(w *ecs.World, evt DeathEvent) {
	e := evt.Entity
	if !w.IsAlive(e) || ecs.Has(w, e, component.DespawnComponent.Kind()) {
		return
	}
	if ecs.Has(w, e, component.PlayerTagComponent.Kind()) {
		return
	}

	pos := evt.Position
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		pos = t.Position
	}

	npc := ecs.Has(w, e, component.NPCTagComponent.Kind())
	if npc {
		size := 1.0
		if stats, ok := ecs.Get(w, e, component.NpcStatsComponent.Kind()); ok {
			size = stats.Size
		}
		s.spawnGibs(w, pos, size)
	}

	_ = ecs.Add(w, e, component.DespawnComponent.Kind(), &component.Despawn{})

	if ecs.Has(w, e, component.ExplodeOnDeathComponent.Kind()) {
		ecs.Emit(w, EventExplode, ExplodeEvent{Entity: e, Position: pos, Prop: !npc})
	}
	w.Logger().Debug("despawning", zap.Stringer("entity", e), zap.Bool("npc", npc))
}

// RollGib draws one gib kind, with replacement, from the weighted pool.
func RollGib(rng *rand.Rand) component.GibKind {
	return component.GibKind(common.Weighted(rng, component.GibWeights()))
}

func (s *DeathSystem) spawnGibs(w *ecs.World, pos common.Vec3, size float64) {
	rng := w.Rand()
	lifetime := s.gibLifetime
	for i := 0; i < GibCount; i++ {
		kind := RollGib(rng)
		offset := common.SampleSphere(rng, GibSpread)
		yaw := rng.Float64() * 2 * math.Pi
		launch := offset.Horizontal()
		if dir, ok := launch.Normalize(); ok {
			launch = dir.Scale(rng.Float64() * gibLaunchMax)
		}

		w.Commands().Spawn(func(w *ecs.World, g ecs.Entity) {
			_ = ecs.Add(w, g, component.GibComponent.Kind(), &component.Gib{Kind: kind})
			_ = ecs.Add(w, g, component.TransformComponent.Kind(), &component.Transform{
				Position: pos.Add(offset),
				Yaw:      yaw,
				Scale:    size,
			})
			_ = ecs.Add(w, g, component.DespawnAfterComponent.Kind(), &component.DespawnAfter{Remaining: lifetime})
			_ = ecs.Add(w, g, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
				Radius:   gibRadius * size,
				Mass:     gibMass * size,
				Friction: 0.8,
				Launch:   launch,
			})
			_ = ecs.Add(w, g, component.CollisionLayerComponent.Kind(), &component.CollisionLayer{
				Category: component.LayerGib,
				Mask:     component.LayerDefault,
			})
		})
	}
}

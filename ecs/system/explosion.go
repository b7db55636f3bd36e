package system

import (
	"image/color"

	"golang.org/x/image/colornames"

	"github.com/milk9111/horde/audio"
	"github.com/milk9111/horde/common"
	"github.com/milk9111/horde/ecs"
	"github.com/milk9111/horde/ecs/component"
)

const (
	explosionLifetime = 2.0
	propTrauma        = 0.6
)

type burst struct {
	count    int
	spread   float64
	speed    float64
	lifetime common.Range
	size     common.Range
	color    color.RGBA
	drag     float64
	gravity  float64
}

var (
	enemyBurst = burst{
		count:    48,
		spread:   0.6,
		speed:    6,
		lifetime: common.Range{Min: 0.4, Max: 1.2},
		size:     common.Range{Min: 0.05, Max: 0.15},
		color:    colornames.Darkred,
		drag:     4,
		gravity:  -9.8,
	}
	propBurst = burst{
		count:    64,
		spread:   2,
		speed:    10,
		lifetime: common.Range{Min: 0.2, Max: 1.0},
		size:     common.Range{Min: 0.01, Max: 0.1},
		color:    colornames.Orange,
		drag:     7,
	}
	impactBurst = burst{
		count:    6,
		spread:   0.05,
		speed:    3,
		lifetime: common.Range{Min: 0.1, Max: 0.4},
		size:     common.Range{Min: 0.02, Max: 0.05},
		color:    colornames.Khaki,
		drag:     5,
	}
)

// ExplosionSystem reacts to explosion requests with particle bursts and,
// for props, a blast cue and screen shake.
type ExplosionSystem struct{}

func NewExplosionSystem() *ExplosionSystem {
	return &ExplosionSystem{}
}

func (s *ExplosionSystem) Register(w *ecs.World) {
	ecs.On(w, EventExplode, s.onExplode)
}

func (s *ExplosionSystem) onExplode(w *ecs.World, evt ExplodeEvent) {
	if !evt.Prop {
		scale := 1.0
		if stats, ok := ecs.Get(w, evt.Entity, component.NpcStatsComponent.Kind()); ok {
			scale = stats.Size
		}
		spawnBurst(w, evt.Position, enemyBurst, scale)
		return
	}

	spawnBurst(w, evt.Position.Add(common.V3(0, 1, 0)), propBurst, 1)
	PlayCue(w, audio.Cue{
		Kind:     audio.CueExplosion,
		Position: evt.Position,
		Pitch:    0.9,
		Volume:   3.5,
		Falloff:  1.0 / 10,
		Spatial:  true,
	})
	AddTrauma(w, propTrauma)
}

// spawnBurst queues a one-shot particle emitter.
func spawnBurst(w *ecs.World, at common.Vec3, b burst, scale float64) {
	rng := w.Rand()
	particles := make([]component.Particle, b.count)
	for i := range particles {
		offset := common.SampleSphere(rng, b.spread*scale)
		dir, ok := offset.Normalize()
		if !ok {
			dir = common.V3(0, 1, 0)
		}
		particles[i] = component.Particle{
			Position: at.Add(offset),
			Velocity: dir.Scale(rng.Float64() * b.speed * scale),
			Lifetime: b.lifetime.Sample(rng),
			Size:     b.size.Sample(rng) * scale,
		}
	}

	w.Commands().Spawn(func(w *ecs.World, e ecs.Entity) {
		_ = ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{Position: at, Scale: scale})
		_ = ecs.Add(w, e, component.ParticleEmitterComponent.Kind(), &component.ParticleEmitter{
			Particles: particles,
			Color:     b.color,
			Gravity:   b.gravity,
			Drag:      b.drag,
		})
		_ = ecs.Add(w, e, component.DespawnAfterComponent.Kind(), &component.DespawnAfter{Remaining: explosionLifetime})
	})
}

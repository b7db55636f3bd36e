package system

import (
	"github.com/milk9111/horde/audio"
	"github.com/milk9111/horde/common"
	"github.com/milk9111/horde/ecs"
	"github.com/milk9111/horde/ecs/component"
)

const (
	// shotLength is when the reload starts, reloadLength how long it takes.
	shotLength   = 0.175
	reloadLength = 0.375
	shotTrauma   = 0.4
	impactBias   = 0.1
	impactPitch  = 1.5

	shotMask = component.LayerNPC | component.LayerProp | component.LayerDefault
)

// Raycaster answers segment queries against the physics world.
type Raycaster interface {
	Raycast(from, to common.Vec3, mask uint) (RayHit, bool)
}

// GunplaySystem fires the player's shotgun on ShootEvent and runs the
// shot and reload timers.
type GunplaySystem struct {
	rays Raycaster
}

func NewGunplaySystem(rays Raycaster) *GunplaySystem {
	return &GunplaySystem{rays: rays}
}

func (s *GunplaySystem) Register(w *ecs.World) {
	ecs.On(w, EventShoot, s.onShoot)
}

func (s *GunplaySystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.Delta()
	ecs.ForEach(w, component.ShootingComponent.Kind(), func(e ecs.Entity, shot *component.Shooting) {
		shot.Elapsed += dt
		if !shot.Reloading && shot.Elapsed >= shotLength {
			shot.Reloading = true
			shot.Elapsed -= shotLength
			PlayCue(w, audio.Cue{Kind: audio.CueReload, Pitch: 1, Volume: 1})
		}
		if shot.Reloading && shot.Elapsed >= reloadLength {
			ecs.Remove(w, e, component.ShootingComponent.Kind())
		}
	})
}

func (s *GunplaySystem) onShoot(w *ecs.World, evt ShootEvent) {
	e := evt.Shooter
	if !w.IsAlive(e) || ecs.Has(w, e, component.ShootingComponent.Kind()) {
		return
	}
	if health, ok := ecs.Get(w, e, component.HealthComponent.Kind()); ok && health.IsDead() {
		return
	}
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return
	}
	weapon := component.DefaultWeaponStats()
	if ws, ok := ecs.Get(w, e, component.WeaponStatsComponent.Kind()); ok {
		weapon = *ws
	}
	aim := common.V3(0, 0, -1)
	player, isPlayer := ecs.Get(w, e, component.PlayerComponent.Kind())
	if isPlayer {
		if dir, ok := player.Aim.Normalize(); ok {
			aim = dir
		}
	}

	_ = ecs.Add(w, e, component.ShootingComponent.Kind(), &component.Shooting{})
	AddTrauma(w, shotTrauma)
	PlayCue(w, audio.Cue{Kind: audio.CueShot, Pitch: 1, Volume: 1})

	if isPlayer && player.Airborne {
		applyImpulse(w, e, aim.Scale(-weapon.Pushback))
	}

	s.fire(w, e, t.Position, aim, weapon)
}

// fire casts one ray per pellet, each nudged sideways by a random spread.
func (s *GunplaySystem) fire(w *ecs.World, shooter ecs.Entity, origin, aim common.Vec3, weapon component.WeaponStats) {
	if s.rays == nil {
		return
	}
	rng := w.Rand()
	right := aim.Right()
	for i := 0; i < weapon.Pellets; i++ {
		x, _ := common.SampleCircle(rng, weapon.SpreadRadius)
		dir, ok := aim.Add(right.Scale(x)).Normalize()
		if !ok {
			dir = aim
		}
		hit, ok := s.rays.Raycast(origin, origin.Add(dir.Scale(weapon.Range)), shotMask)
		if !ok {
			continue
		}

		at := origin.Add(dir.Scale(max(hit.Distance-impactBias, 0)))
		spawnBurst(w, at, impactBurst, 1)

		kind := audio.CueImpactWall
		if hit.Entity.Valid() && ecs.Has(w, hit.Entity, component.NPCTagComponent.Kind()) {
			kind = audio.CueImpactFlesh
		}
		PlayCue(w, audio.Cue{Kind: kind, Pitch: impactPitch, Volume: 1})

		if hit.Entity.Valid() && hit.Entity != shooter {
			ApplyDamage(w, hit.Entity, weapon.Damage, shooter)
		}
	}
}

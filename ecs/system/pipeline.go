package system

import "github.com/milk9111/horde/ecs"

// Deps are the collaborators the gameplay systems talk to. Nil members
// disable the systems that need them.
type Deps struct {
	Sink        CueSink
	Durations   CueDurations
	Upgrades    UpgradeSource
	Waves       WaveSource
	Input       ScreenToWorld
	ArenaHalf   float64
	GibLifetime float64
}

// Pipeline keeps handles on systems the shell talks to directly.
type Pipeline struct {
	Physics  *PhysicsSystem
	Audio    *AudioSystem
	Upgrades *UpgradeSystem
}

type registrar interface {
	Register(w *ecs.World)
}

// Install adds every gameplay system to w in update order and registers the
// event handlers. Health is registered first so every other damage handler
// sees the pool after the hit.
func Install(w *ecs.World, deps Deps) *Pipeline {
	p := &Pipeline{
		Physics:  NewPhysicsSystem(deps.ArenaHalf),
		Audio:    NewAudioSystem(deps.Sink),
		Upgrades: NewUpgradeSystem(deps.Upgrades),
	}

	health := NewHealthSystem()
	stagger := NewStaggerSystem()
	player := NewPlayerSystem()
	gunplay := NewGunplaySystem(p.Physics)

	for _, r := range []registrar{
		health,
		stagger,
		player,
		NewDeathSystem(deps.GibLifetime),
		NewExplosionSystem(),
		gunplay,
		p.Audio,
		p.Upgrades,
	} {
		r.Register(w)
	}

	w.AddSystem(NewDespawnSystem())
	if deps.Input != nil {
		w.AddSystem(NewInputSystem(deps.Input))
	}
	w.AddSystem(player)
	if deps.Waves != nil {
		w.AddSystem(NewWaveSystem(deps.Waves))
	}
	w.AddSystem(NewNavigationSystem())
	w.AddSystem(stagger)
	w.AddSystem(NewBehaviorSystem())
	w.AddSystem(NewAttackSystem())
	w.AddSystem(NewVocalSystem(deps.Durations))
	w.AddSystem(gunplay)
	w.AddSystem(p.Physics)
	w.AddSystem(NewParticleSystem())
	w.AddSystem(NewCameraShakeSystem())
	return p
}

package system

import (
	"github.com/milk9111/horde/audio"
	"github.com/milk9111/horde/common"
	"github.com/milk9111/horde/ecs"
)

const (
	EventDamage      ecs.EventKind = "damage"
	EventDeath       ecs.EventKind = "death"
	EventExplode     ecs.EventKind = "explode"
	EventSound       ecs.EventKind = "sound"
	EventShoot       ecs.EventKind = "shoot"
	EventGameOver    ecs.EventKind = "game_over"
	EventWaveStarted ecs.EventKind = "wave_started"
	EventWaveCleared ecs.EventKind = "wave_cleared"
)

// DamageEvent asks the health handler to subtract Amount from Target.
type DamageEvent struct {
	Target ecs.Entity
	Source ecs.Entity
	Amount float64
}

// DeathEvent fires once per entity, on the tick its health reaches zero.
type DeathEvent struct {
	Entity   ecs.Entity
	Position common.Vec3
}

type ExplodeEvent struct {
	Entity   ecs.Entity
	Position common.Vec3
	Prop     bool
}

type SoundEvent struct {
	Cue audio.Cue
}

type ShootEvent struct {
	Shooter ecs.Entity
}

type GameOverEvent struct {
	Wave int
}

type WaveEvent struct {
	Number int
}

// ApplyDamage queues damage for the next barrier.
func ApplyDamage(w *ecs.World, target ecs.Entity, amount float64, source ecs.Entity) {
	ecs.Emit(w, EventDamage, DamageEvent{Target: target, Source: source, Amount: amount})
}

// PlayCue queues a sound request.
func PlayCue(w *ecs.World, cue audio.Cue) {
	ecs.Emit(w, EventSound, SoundEvent{Cue: cue})
}

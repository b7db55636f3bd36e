package system

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/milk9111/horde/audio"
	"github.com/milk9111/horde/common"
	"github.com/milk9111/horde/ecs"
	"github.com/milk9111/horde/ecs/component"
)

// ErrPlayerCount means the world does not hold exactly one player.
var ErrPlayerCount = errors.New("player: expected exactly one player")

// hurtTrauma is camera trauma per point of damage taken.
const hurtTrauma = 0.07

// AssertSinglePlayer checks the one-player invariant every system relies on.
func AssertSinglePlayer(w *ecs.World) error {
	if n := ecs.Count(w, component.PlayerTagComponent.Kind()); n != 1 {
		return fmt.Errorf("%w: found %d", ErrPlayerCount, n)
	}
	return nil
}

func playerPosition(w *ecs.World) (common.Vec3, bool) {
	e, ok := w.First(component.PlayerTagComponent.Kind(), component.TransformComponent.Kind())
	if !ok {
		return common.Vec3{}, false
	}
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return common.Vec3{}, false
	}
	return t.Position, true
}

// PlayerSystem turns Input into movement, aim and trigger pulls, and gives
// feedback when the player is hurt.
type PlayerSystem struct{}

func NewPlayerSystem() *PlayerSystem {
	return &PlayerSystem{}
}

func (s *PlayerSystem) Register(w *ecs.World) {
	ecs.On(w, EventDamage, s.onDamage)
	ecs.On(w, EventDeath, s.onDeath)
}

func (s *PlayerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	ecs.ForEach3(w, component.PlayerComponent.Kind(), component.InputComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, p *component.Player, input *component.Input, t *component.Transform) {
		if health, ok := ecs.Get(w, e, component.HealthComponent.Kind()); ok && health.IsDead() {
			setVelocity(w, e, 0, 0)
			return
		}

		aim := common.V3(input.AimX, t.Position.Y, input.AimZ).Sub(t.Position).Horizontal()
		if dir, ok := aim.Normalize(); ok {
			p.Aim = dir
		}

		speed := component.DefaultMovementStats().Effective()
		if stats, ok := ecs.Get(w, e, component.MovementStatsComponent.Kind()); ok {
			speed = stats.Effective()
		}
		move := common.V3(input.MoveX, 0, input.MoveZ)
		if move.Length() > 1 {
			move, _ = move.Normalize()
		}
		if !p.Airborne {
			setVelocity(w, e, move.X*speed, move.Z*speed)
		}

		if input.Fire {
			ecs.Emit(w, EventShoot, ShootEvent{Shooter: e})
			input.Fire = false
		}
	})
}

func (s *PlayerSystem) onDamage(w *ecs.World, evt DamageEvent) {
	if !ecs.Has(w, evt.Target, component.PlayerTagComponent.Kind()) {
		return
	}
	AddTrauma(w, hurtTrauma*evt.Amount)

	health, ok := ecs.Get(w, evt.Target, component.HealthComponent.Kind())
	if !ok || health.IsDead() {
		return
	}
	PlayCue(w, audio.Cue{Kind: audio.CueHurt, Pitch: 1, Volume: 1})
}

func (s *PlayerSystem) onDeath(w *ecs.World, evt DeathEvent) {
	if !ecs.Has(w, evt.Entity, component.PlayerTagComponent.Kind()) {
		return
	}
	wave := 0
	if _, ws, ok := ecs.First(w, component.WaveStateComponent.Kind()); ok {
		wave = ws.Number
	}
	w.Logger().Info("player died", zap.Int("wave", wave))
	ecs.Emit(w, EventGameOver, GameOverEvent{Wave: wave})
}

package system

import (
	"errors"
	"fmt"
	"slices"

	"github.com/d5/tengo/v2"
	"go.uber.org/zap"

	"github.com/milk9111/horde/ecs"
	"github.com/milk9111/horde/ecs/component"
	"github.com/milk9111/horde/prefabs"
)

var (
	ErrNoOffer        = errors.New("upgrades: no offer pending")
	ErrUnknownUpgrade = errors.New("upgrades: not on offer")
)

// UpgradeSource provides upgrade definitions and their scripts.
type UpgradeSource interface {
	Upgrades() []prefabs.UpgradeSpec
	Upgrade(name string) (prefabs.UpgradeSpec, error)
	Script(name string) ([]byte, error)
}

// UpgradeSystem offers an upgrade after each cleared wave and applies the
// chosen one by running its script against the player's stats.
type UpgradeSystem struct {
	source UpgradeSource
}

func NewUpgradeSystem(source UpgradeSource) *UpgradeSystem {
	return &UpgradeSystem{source: source}
}

func (s *UpgradeSystem) Register(w *ecs.World) {
	ecs.On(w, EventWaveCleared, s.onWaveCleared)
	ecs.On(w, EventWaveStarted, s.onWaveStarted)
}

func (s *UpgradeSystem) onWaveCleared(w *ecs.World, _ WaveEvent) {
	if s.source == nil || ecs.Count(w, component.UpgradeOfferComponent.Kind()) > 0 {
		return
	}
	ups := s.source.Upgrades()
	if len(ups) == 0 {
		return
	}
	choices := make([]string, len(ups))
	for i, u := range ups {
		choices[i] = u.Name
	}
	w.Commands().Spawn(func(w *ecs.World, e ecs.Entity) {
		_ = ecs.Add(w, e, component.UpgradeOfferComponent.Kind(), &component.UpgradeOffer{Choices: choices})
	})
}

// onWaveStarted withdraws an offer the player ignored.
func (s *UpgradeSystem) onWaveStarted(w *ecs.World, _ WaveEvent) {
	for _, e := range w.Query(component.UpgradeOfferComponent.Kind()) {
		w.Commands().Despawn(e)
	}
}

// Offer returns the pending choices, if any.
func (s *UpgradeSystem) Offer(w *ecs.World) ([]string, bool) {
	_, offer, ok := ecs.First(w, component.UpgradeOfferComponent.Kind())
	if !ok {
		return nil, false
	}
	return offer.Choices, true
}

// Choose applies the named upgrade to the player and consumes the offer.
// It runs between ticks, from the upgrade menu.
func (s *UpgradeSystem) Choose(w *ecs.World, name string) error {
	offerEnt, offer, ok := ecs.First(w, component.UpgradeOfferComponent.Kind())
	if !ok {
		return ErrNoOffer
	}
	if !slices.Contains(offer.Choices, name) {
		return fmt.Errorf("%w: %s", ErrUnknownUpgrade, name)
	}
	spec, err := s.source.Upgrade(name)
	if err != nil {
		return err
	}
	src, err := s.source.Script(spec.Script)
	if err != nil {
		return err
	}
	player, ok := w.First(component.PlayerTagComponent.Kind())
	if !ok {
		return ErrPlayerCount
	}
	if err := ApplyUpgradeScript(w, player, src); err != nil {
		return fmt.Errorf("upgrades: %s: %w", name, err)
	}
	ecs.DestroyEntity(w, offerEnt)
	w.Logger().Info("upgrade applied", zap.String("upgrade", name))
	return nil
}

// ApplyUpgradeScript runs src with the player's tunables bound as globals:
// damage, speed_factor, health, max_health and heal_full().
func ApplyUpgradeScript(w *ecs.World, player ecs.Entity, src []byte) error {
	weapon, ok := ecs.Get(w, player, component.WeaponStatsComponent.Kind())
	if !ok {
		return fmt.Errorf("player has no weapon stats")
	}
	movement, ok := ecs.Get(w, player, component.MovementStatsComponent.Kind())
	if !ok {
		return fmt.Errorf("player has no movement stats")
	}
	health, ok := ecs.Get(w, player, component.HealthComponent.Kind())
	if !ok {
		return fmt.Errorf("player has no health")
	}

	healed := false
	script := tengo.NewScript(src)
	vars := map[string]any{
		"damage":       weapon.Damage,
		"speed_factor": movement.SpeedFactor,
		"health":       health.Current,
		"max_health":   health.Max,
		"heal_full": &tengo.UserFunction{Name: "heal_full", Value: func(args ...tengo.Object) (tengo.Object, error) {
			healed = true
			return tengo.UndefinedValue, nil
		}},
	}
	for name, v := range vars {
		if err := script.Add(name, v); err != nil {
			return fmt.Errorf("bind %s: %w", name, err)
		}
	}

	compiled, err := script.Compile()
	if err != nil {
		return fmt.Errorf("compile: %w", err)
	}
	if err := compiled.Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}

	weapon.Damage = compiled.Get("damage").Float()
	movement.SpeedFactor = compiled.Get("speed_factor").Float()
	if m := compiled.Get("max_health").Float(); m > health.Max {
		health.Max = m
	}
	if healed {
		health.HealFull()
	} else if h := compiled.Get("health").Float(); h > health.Current {
		health.Heal(h - health.Current)
	}
	return nil
}

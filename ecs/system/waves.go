package system

import (
	"math"

	"go.uber.org/zap"

	"github.com/milk9111/horde/common"
	"github.com/milk9111/horde/ecs"
	"github.com/milk9111/horde/ecs/component"
	"github.com/milk9111/horde/ecs/entity"
	"github.com/milk9111/horde/prefabs"
)

const arenaInset = 1.5

// WaveSource provides wave layouts and the prefabs they spawn.
type WaveSource interface {
	Waves() prefabs.WavesSpec
	NPC(name string) (prefabs.NPCSpec, error)
	Barrel() prefabs.PropSpec
}

// WaveSystem alternates between a preparation countdown and a fight that
// lasts until every NPC of the wave is dead.
type WaveSystem struct {
	source WaveSource
}

func NewWaveSystem(source WaveSource) *WaveSystem {
	return &WaveSystem{source: source}
}

func (s *WaveSystem) Update(w *ecs.World) {
	if w == nil || s.source == nil {
		return
	}
	_, ws, ok := ecs.First(w, component.WaveStateComponent.Kind())
	if !ok {
		return
	}

	switch ws.Phase {
	case component.WavePreparing:
		ws.Timer -= w.Delta()
		if ws.Timer > 0 {
			return
		}
		ws.Number++
		ws.Phase = component.WaveFighting
		ws.Timer = 0
		s.spawnWave(w, ws.Number)
		w.Logger().Info("wave started", zap.Int("wave", ws.Number))
		ecs.Emit(w, EventWaveStarted, WaveEvent{Number: ws.Number})
	case component.WaveFighting:
		if AliveNPCs(w) > 0 {
			return
		}
		ws.Phase = component.WavePreparing
		ws.Timer = s.source.Waves().Preparation
		w.Logger().Info("wave cleared", zap.Int("wave", ws.Number))
		ecs.Emit(w, EventWaveCleared, WaveEvent{Number: ws.Number})
	}
}

// AliveNPCs counts NPCs that are neither dead nor waiting to despawn.
func AliveNPCs(w *ecs.World) int {
	n := 0
	for _, e := range w.Query(component.NPCTagComponent.Kind()) {
		if ecs.Has(w, e, component.DespawnComponent.Kind()) {
			continue
		}
		if h, ok := ecs.Get(w, e, component.HealthComponent.Kind()); ok && h.IsDead() {
			continue
		}
		n++
	}
	return n
}

// spawnWave queues the wave's NPCs on a ring around the player and its
// barrels anywhere in the arena. Layout rolls happen now; entities are
// built at the barrier.
func (s *WaveSystem) spawnWave(w *ecs.World, number int) {
	spec := s.source.Waves()
	wave := spec.Wave(number)
	rng := w.Rand()
	center, _ := playerPosition(w)
	limit := math.Inf(1)
	if spec.ArenaHalf > 0 {
		limit = spec.ArenaHalf - arenaInset
	}

	for _, group := range wave.Groups {
		npc, err := s.source.NPC(group.Variant)
		if err != nil {
			w.Logger().Warn("skipping wave group", zap.String("variant", group.Variant), zap.Error(err))
			continue
		}
		for i := 0; i < group.Count; i++ {
			angle := rng.Float64() * 2 * math.Pi
			pos := common.V3(
				common.Clamp(center.X+math.Cos(angle)*spec.SpawnRadius, -limit, limit),
				0,
				common.Clamp(center.Z+math.Sin(angle)*spec.SpawnRadius, -limit, limit),
			)
			explode := common.Chance(rng, group.ExplodeChance)
			w.Commands().Run(func(w *ecs.World) {
				if _, err := entity.NewNPC(w, npc, pos, explode); err != nil {
					w.Logger().Warn("spawn npc", zap.String("variant", npc.Name), zap.Error(err))
				}
			})
		}
	}

	barrel := s.source.Barrel()
	for i := 0; i < wave.Barrels; i++ {
		x, z := common.SampleCircle(rng, min(limit, spec.SpawnRadius))
		pos := common.V3(x, 0, z)
		w.Commands().Run(func(w *ecs.World) {
			if _, err := entity.NewBarrel(w, barrel, pos); err != nil {
				w.Logger().Warn("spawn barrel", zap.Error(err))
			}
		})
	}
}

package system

import (
	"math"

	"github.com/milk9111/horde/audio"
	"github.com/milk9111/horde/common"
	"github.com/milk9111/horde/ecs"
	"github.com/milk9111/horde/ecs/component"
)

// gruntRate is the per-second chance a chasing NPC grunts.
const gruntRate = 0.3

const defaultIdleLength = 1.2

// CueDurations reports how long a cue kind plays, in seconds.
type CueDurations interface {
	Duration(kind audio.CueKind) float64
}

// VocalSystem makes chasing NPCs grunt now and then, one grunt at a time.
type VocalSystem struct {
	durations CueDurations
}

func NewVocalSystem(durations CueDurations) *VocalSystem {
	return &VocalSystem{durations: durations}
}

// GruntChance converts the per-second rate into a per-tick probability.
func GruntChance(dt float64) float64 {
	if dt <= 0 {
		return 0
	}
	return 1 - math.Pow(1-gruntRate, dt)
}

func (s *VocalSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.Delta()

	ecs.ForEach(w, component.VocalizingComponent.Kind(), func(e ecs.Entity, v *component.Vocalizing) {
		v.Remaining -= dt
		if v.Remaining <= 0 {
			ecs.Remove(w, e, component.VocalizingComponent.Kind())
		}
	})

	chance := GruntChance(dt)
	for _, e := range w.Query(component.AIStateComponent.Kind(), component.NpcStatsComponent.Kind()) {
		st, ok := ecs.Get(w, e, component.AIStateComponent.Kind())
		if !ok || st.Mode != component.AIChase {
			continue
		}
		if ecs.Has(w, e, component.VocalizingComponent.Kind()) {
			continue
		}
		if !common.Chance(w.Rand(), chance) {
			continue
		}
		stats, _ := ecs.Get(w, e, component.NpcStatsComponent.Kind())
		_ = ecs.Add(w, e, component.VocalizingComponent.Kind(), &component.Vocalizing{Remaining: s.idleLength()})
		PlayCue(w, npcCue(w, e, audio.CueIdle, stats))
	}
}

func (s *VocalSystem) idleLength() float64 {
	if s.durations == nil {
		return defaultIdleLength
	}
	if d := s.durations.Duration(audio.CueIdle); d > 0 {
		return d
	}
	return defaultIdleLength
}

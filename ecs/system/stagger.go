package system

import (
	"github.com/milk9111/horde/audio"
	"github.com/milk9111/horde/common"
	"github.com/milk9111/horde/ecs"
	"github.com/milk9111/horde/ecs/component"
)

// StaggerSystem counts stagger timers down each tick and rolls for a new
// stagger whenever a chasing NPC takes damage.
type StaggerSystem struct{}

func NewStaggerSystem() *StaggerSystem {
	return &StaggerSystem{}
}

func (s *StaggerSystem) Register(w *ecs.World) {
	ecs.On(w, EventDamage, s.onDamage)
}

func (s *StaggerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.Delta()
	ecs.ForEach(w, component.AIStateComponent.Kind(), func(_ ecs.Entity, st *component.AIState) {
		if st.Mode != component.AIStagger {
			return
		}
		st.StaggerRemaining = max(st.StaggerRemaining-dt, 0)
	})
}

func (s *StaggerSystem) onDamage(w *ecs.World, evt DamageEvent) {
	st, ok := ecs.Get(w, evt.Target, component.AIStateComponent.Kind())
	if !ok || st.Mode != component.AIChase {
		return
	}
	stats, ok := ecs.Get(w, evt.Target, component.NpcStatsComponent.Kind())
	if !ok {
		return
	}
	if !common.Chance(w.Rand(), stats.StaggerChance) {
		return
	}
	st.Stagger(stats.StaggerDuration.Sample(w.Rand()))
	PlayCue(w, npcCue(w, evt.Target, audio.CueStagger, stats))
}

// npcCue is the shared voice of an NPC: smaller NPCs sound higher.
func npcCue(w *ecs.World, e ecs.Entity, kind audio.CueKind, stats *component.NpcStats) audio.Cue {
	cue := audio.Cue{
		Kind:    kind,
		Pitch:   1 / stats.Size * (0.9 + 0.2*w.Rand().Float64()),
		Volume:  0.9,
		Falloff: 1 / 5.5,
		Spatial: true,
	}
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		cue.Position = t.Position
	}
	return cue
}

package system

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/horde/audio"
	"github.com/milk9111/horde/common"
	"github.com/milk9111/horde/ecs"
	"github.com/milk9111/horde/ecs/component"
)

func TestGruntChance(t *testing.T) {
	assert.Zero(t, GruntChance(0))
	assert.Zero(t, GruntChance(-1))
	assert.InDelta(t, 0.3, GruntChance(1), 1e-12)
	assert.InDelta(t, 1-math.Pow(0.7, 1.0/60), GruntChance(1.0/60), 1e-12)

	// Two half-second ticks are as likely to grunt as one full second.
	half := GruntChance(0.5)
	assert.InDelta(t, GruntChance(1), 1-(1-half)*(1-half), 1e-12)
}

func TestVocalizingIsClearedAfterCueLength(t *testing.T) {
	w, _ := newWorld(t, 1)
	npc := spawnNPC(t, w, component.DefaultNpcStats(), common.Vec3{})
	require.NoError(t, ecs.Add(w, npc, component.VocalizingComponent.Kind(), &component.Vocalizing{Remaining: 0.5}))
	aiState(t, w, npc).Attack()
	w.AddSystem(NewVocalSystem(fixedDurations(0.5)))

	w.Tick(0.3)
	assert.True(t, ecs.Has(w, npc, component.VocalizingComponent.Kind()))
	w.Tick(0.3)
	assert.False(t, ecs.Has(w, npc, component.VocalizingComponent.Kind()))
}

func TestOnlyChasingNPCsGrunt(t *testing.T) {
	w, rec := newWorld(t, 23)
	chase := spawnNPC(t, w, component.DefaultNpcStats(), common.Vec3{})
	stagger := spawnNPC(t, w, component.DefaultNpcStats(), common.Vec3{})
	aiState(t, w, stagger).Stagger(100)
	attack := spawnNPC(t, w, component.DefaultNpcStats(), common.Vec3{})
	aiState(t, w, attack).Attack()
	w.AddSystem(NewVocalSystem(fixedDurations(1000)))

	// Large steps make a grunt near certain for every eligible NPC.
	for i := 0; i < 10 && !ecs.Has(w, chase, component.VocalizingComponent.Kind()); i++ {
		w.Tick(10)
	}

	assert.True(t, ecs.Has(w, chase, component.VocalizingComponent.Kind()))
	assert.False(t, ecs.Has(w, stagger, component.VocalizingComponent.Kind()))
	assert.False(t, ecs.Has(w, attack, component.VocalizingComponent.Kind()))
	assert.Len(t, rec.ofKind(audio.CueIdle), 1, "one grunt while the marker is held")
}

func TestGruntUsesNpcVoice(t *testing.T) {
	w, rec := newWorld(t, 23)
	stats := component.DefaultNpcStats()
	stats.Size = 2
	stats.MaxSpeed = 10
	spawnNPC(t, w, stats, common.V3(3, 0, 0))
	w.AddSystem(NewVocalSystem(nil))

	for i := 0; i < 20 && len(rec.cues) == 0; i++ {
		w.Tick(10)
	}

	cues := rec.ofKind(audio.CueIdle)
	require.Len(t, cues, 1)
	assert.True(t, cues[0].Spatial)
	assert.Equal(t, common.V3(3, 0, 0), cues[0].Position)
	assert.GreaterOrEqual(t, cues[0].Pitch, 0.45)
	assert.LessOrEqual(t, cues[0].Pitch, 0.55)
}

func TestIdleLengthFallsBack(t *testing.T) {
	assert.Equal(t, defaultIdleLength, NewVocalSystem(nil).idleLength())
	assert.Equal(t, defaultIdleLength, NewVocalSystem(fixedDurations(0)).idleLength())
	assert.Equal(t, 0.8, NewVocalSystem(fixedDurations(0.8)).idleLength())
}

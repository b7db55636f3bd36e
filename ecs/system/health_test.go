package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/horde/common"
	"github.com/milk9111/horde/ecs"
	"github.com/milk9111/horde/ecs/component"
)

func TestDamageIsAppliedAtBarrier(t *testing.T) {
	w, _ := newWorld(t, 1)
	npc := spawnNPC(t, w, component.DefaultNpcStats(), common.Vec3{})

	ApplyDamage(w, npc, 30, 0)
	assert.Equal(t, 100.0, healthOf(t, w, npc).Current, "queued, not applied")

	w.Flush()
	assert.Equal(t, 70.0, healthOf(t, w, npc).Current)
}

func TestOverlappingLethalDamageDiesOnce(t *testing.T) {
	w, _ := newWorld(t, 1)
	deaths := countEvents(w, EventDeath)
	npc := spawnNPC(t, w, component.DefaultNpcStats(), common.Vec3{})

	ApplyDamage(w, npc, 60, 0)
	ApplyDamage(w, npc, 60, 0)
	ApplyDamage(w, npc, 60, 0)
	w.Flush()

	h := healthOf(t, w, npc)
	assert.True(t, h.IsDead())
	assert.Zero(t, h.Current)
	assert.Equal(t, 1, *deaths)

	ApplyDamage(w, npc, 10, 0)
	w.Flush()
	assert.Equal(t, 1, *deaths)
}

func TestLaterDamageHandlersSeePostDamageHealth(t *testing.T) {
	w, _ := newWorld(t, 1)
	npc := spawnNPC(t, w, component.DefaultNpcStats(), common.Vec3{})

	var seen float64
	ecs.On(w, EventDamage, func(w *ecs.World, evt DamageEvent) {
		h, _ := ecs.Get(w, evt.Target, component.HealthComponent.Kind())
		seen = h.Current
	})

	ApplyDamage(w, npc, 25, 0)
	w.Flush()
	assert.Equal(t, 75.0, seen)
}

func TestDamageWithoutHealthIsIgnored(t *testing.T) {
	w, _ := newWorld(t, 1)
	deaths := countEvents(w, EventDeath)
	e := ecs.CreateEntity(w)

	ApplyDamage(w, e, 1000, 0)
	require.NotPanics(t, w.Flush)
	assert.Zero(t, *deaths)
}

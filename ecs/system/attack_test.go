package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/horde/common"
	"github.com/milk9111/horde/ecs"
	"github.com/milk9111/horde/ecs/component"
)

func attackWorld(t *testing.T, playerAt common.Vec3, atk component.Attacking) (*ecs.World, ecs.Entity, ecs.Entity) {
	t.Helper()
	w, _ := newWorld(t, 9)
	player := spawnPlayer(t, w, playerAt)
	npc := spawnNPC(t, w, component.DefaultNpcStats(), common.Vec3{})
	aiState(t, w, npc).Attack()
	require.NoError(t, ecs.Add(w, npc, component.AttackingComponent.Kind(), &atk))
	w.AddSystem(NewAttackSystem())
	return w, player, npc
}

func TestAttackDuration(t *testing.T) {
	assert.Equal(t, 0.5, AttackDuration(2))
	assert.InDelta(t, 1/1.2, AttackDuration(1.2), 1e-12)
	assert.Zero(t, AttackDuration(0))
}

func TestAttackStrikesOnceAtHalfDuration(t *testing.T) {
	w, player, npc := attackWorld(t, common.V3(1, 0, 0), component.Attacking{
		Dir: common.V3(1, 0, 0), HasDir: true, Speed: 2, Damage: 10,
	})

	w.Tick(0.2)
	assert.Equal(t, 100.0, healthOf(t, w, player).Current, "before the strike point")

	w.Tick(0.1)
	assert.Equal(t, 90.0, healthOf(t, w, player).Current)
	assert.True(t, ecs.Has(w, npc, component.AttackingComponent.Kind()))

	w.Tick(0.1)
	assert.Equal(t, 90.0, healthOf(t, w, player).Current, "one strike per swing")

	w.Tick(0.15)
	assert.False(t, ecs.Has(w, npc, component.AttackingComponent.Kind()))
	assert.Equal(t, 90.0, healthOf(t, w, player).Current)
}

func TestAttackMissesOutOfReach(t *testing.T) {
	w, player, npc := attackWorld(t, common.V3(2, 0, 0), component.Attacking{
		Dir: common.V3(1, 0, 0), HasDir: true, Speed: 1, Damage: 10,
	})
	require.InDelta(t, 1.5, attackReach(w, npc), 1e-12)

	for i := 0; i < 12; i++ {
		w.Tick(0.1)
	}
	assert.Equal(t, 100.0, healthOf(t, w, player).Current)
	assert.False(t, ecs.Has(w, npc, component.AttackingComponent.Kind()))
}

func TestAttackCone(t *testing.T) {
	for _, tc := range []struct {
		name   string
		player common.Vec3
		want   float64
	}{
		{name: "inside", player: common.V3(1, 0, 0.5), want: 90},
		{name: "beside", player: common.V3(0, 0, 1), want: 100},
		{name: "behind", player: common.V3(-1, 0, 0), want: 100},
		{name: "height ignored", player: common.V3(1, 3, 0), want: 90},
	} {
		t.Run(tc.name, func(t *testing.T) {
			w, player, _ := attackWorld(t, tc.player, component.Attacking{
				Dir: common.V3(1, 0, 0), HasDir: true, Speed: 2, Damage: 10,
			})
			w.Tick(0.3)
			assert.Equal(t, tc.want, healthOf(t, w, player).Current)
		})
	}
}

func TestAttackWithoutDirectionIsDropped(t *testing.T) {
	w, player, npc := attackWorld(t, common.V3(0.5, 0, 0), component.Attacking{
		Speed: 2, Damage: 10,
	})

	w.Tick(0.01)
	assert.False(t, ecs.Has(w, npc, component.AttackingComponent.Kind()))
	assert.Equal(t, 100.0, healthOf(t, w, player).Current)
}

func TestAttackResolvesBackToChase(t *testing.T) {
	w, _, npc := attackWorld(t, common.V3(1, 0, 0), component.Attacking{
		Dir: common.V3(1, 0, 0), HasDir: true, Speed: 2, Damage: 10,
	})
	setNav(t, w, npc, component.NavMoving)
	w.AddSystem(NewBehaviorSystem())

	w.Tick(0.3)
	assert.Equal(t, component.AIAttack, aiState(t, w, npc).Mode)
	w.Tick(0.3)
	assert.Equal(t, component.AIChase, aiState(t, w, npc).Mode)
}

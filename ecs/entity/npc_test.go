package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"

	"github.com/milk9111/horde/common"
	"github.com/milk9111/horde/ecs"
	"github.com/milk9111/horde/ecs/component"
	"github.com/milk9111/horde/prefabs"
)

func TestNewNPCFromPrefab(t *testing.T) {
	w := ecs.NewWorld()
	spec := prefabs.NPCSpec{
		Name:            "brute",
		Health:          260,
		DesiredSpeed:    2.5,
		MaxSpeed:        2.5,
		AttackDamage:    25,
		AttackSpeed:     common.Range{Min: 0.8, Max: 1.1},
		Size:            1.6,
		StaggerChance:   0.05,
		StaggerDuration: common.Range{Min: 0.1, Max: 0.2},
		Color:           "darkolivegreen",
	}

	e, err := NewNPC(w, spec, common.V3(1, 0, 2), false)
	require.NoError(t, err)

	tag, ok := ecs.Get(w, e, component.NPCTagComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, "brute", tag.Variant)

	h, _ := ecs.Get(w, e, component.HealthComponent.Kind())
	assert.Equal(t, 260.0, h.Current)

	st, _ := ecs.Get(w, e, component.AIStateComponent.Kind())
	assert.Equal(t, component.AIChase, st.Mode)

	nav, _ := ecs.Get(w, e, component.NavAgentComponent.Kind())
	assert.Equal(t, component.NavUnavailable, nav.Status)

	tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	assert.InDelta(t, 1.6*(0.6+0.8)/2+0.5, tr.Position.Y, 1e-9)
	assert.Equal(t, 1.6, tr.Scale)

	sprite, _ := ecs.Get(w, e, component.SpriteComponent.Kind())
	assert.Equal(t, colornames.Darkolivegreen, sprite.Color)
	assert.False(t, ecs.Has(w, e, component.ExplodeOnDeathComponent.Kind()))
}

func TestNewNPCRefusesInvalidStats(t *testing.T) {
	w := ecs.NewWorld()
	stats := component.DefaultNpcStats()
	stats.Size = -1

	_, err := NewNPCWithStats(w, "broken", stats, common.Vec3{}, true, colornames.Red)
	require.ErrorIs(t, err, component.ErrInvalidStats)
	assert.Empty(t, ecs.Entities(w), "nothing left behind")
}

func TestExplodingNPC(t *testing.T) {
	w := ecs.NewWorld()
	e, err := NewNPCWithStats(w, "bloater", component.DefaultNpcStats(), common.Vec3{}, true, colornames.Red)
	require.NoError(t, err)
	assert.True(t, ecs.Has(w, e, component.ExplodeOnDeathComponent.Kind()))
}

func TestNewPlayerUsesWeaponSpec(t *testing.T) {
	w := ecs.NewWorld()
	e, err := NewPlayer(w, prefabs.PlayerSpec{
		Health: 80,
		Weapon: prefabs.WeaponSpec{Damage: 7, Pellets: 8, Range: 50},
	}, common.Vec3{})
	require.NoError(t, err)

	weapon, _ := ecs.Get(w, e, component.WeaponStatsComponent.Kind())
	assert.Equal(t, 7.0, weapon.Damage)
	assert.Equal(t, 8, weapon.Pellets)
	movement, _ := ecs.Get(w, e, component.MovementStatsComponent.Kind())
	assert.Equal(t, component.DefaultMovementStats(), *movement)
	assert.True(t, ecs.Has(w, e, component.AudioListenerComponent.Kind()))

	_, err = NewPlayer(w, prefabs.PlayerSpec{}, common.Vec3{})
	assert.Error(t, err)
}

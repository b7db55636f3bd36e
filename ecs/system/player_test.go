package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/horde/audio"
	"github.com/milk9111/horde/common"
	"github.com/milk9111/horde/ecs"
	"github.com/milk9111/horde/ecs/component"
)

func TestAssertSinglePlayer(t *testing.T) {
	w, _ := newWorld(t, 1)
	assert.ErrorIs(t, AssertSinglePlayer(w), ErrPlayerCount)

	spawnPlayer(t, w, common.Vec3{})
	assert.NoError(t, AssertSinglePlayer(w))

	spawnPlayer(t, w, common.V3(1, 0, 0))
	err := AssertSinglePlayer(w)
	require.ErrorIs(t, err, ErrPlayerCount)
	assert.Contains(t, err.Error(), "found 2")
}

func TestPlayerHurtShakesCamera(t *testing.T) {
	w, rec := newWorld(t, 1)
	shake := spawnCamera(t, w)
	player := spawnPlayer(t, w, common.Vec3{})

	ApplyDamage(w, player, 10, 0)
	w.Flush()

	assert.InDelta(t, 0.7, shake.Trauma, 1e-12)
	assert.Equal(t, 90.0, healthOf(t, w, player).Current)
	assert.Len(t, rec.ofKind(audio.CueHurt), 1)

	ApplyDamage(w, player, 10, 0)
	w.Flush()
	assert.Equal(t, 1.0, shake.Trauma, "trauma saturates")
}

func TestPlayerDeathEndsRun(t *testing.T) {
	w, rec := newWorld(t, 1)
	spawnCamera(t, w)
	player := spawnPlayer(t, w, common.Vec3{})
	_, ws, ok := ecs.First(w, component.WaveStateComponent.Kind())
	require.True(t, ok)
	ws.Number = 3

	var over []GameOverEvent
	ecs.On(w, EventGameOver, func(_ *ecs.World, evt GameOverEvent) { over = append(over, evt) })

	ApplyDamage(w, player, 60, 0)
	ApplyDamage(w, player, 60, 0)
	w.Flush()

	require.Len(t, over, 1)
	assert.Equal(t, 3, over[0].Wave)
	assert.Len(t, rec.ofKind(audio.CueHurt), 1, "no hurt cue once dead")
}

func TestPlayerAimsAtCursorAndFires(t *testing.T) {
	w, _ := newWorld(t, 1)
	player := spawnPlayer(t, w, common.Vec3{})
	input, ok := ecs.Get(w, player, component.InputComponent.Kind())
	require.True(t, ok)
	input.AimX, input.AimZ = 3, 4
	input.Fire = true
	shots := countEvents(w, EventShoot)
	w.AddSystem(NewPlayerSystem())

	w.Tick(1.0 / 60)

	p, _ := ecs.Get(w, player, component.PlayerComponent.Kind())
	assert.InDelta(t, 0.6, p.Aim.X, 1e-9)
	assert.InDelta(t, 0.8, p.Aim.Z, 1e-9)
	assert.Equal(t, 1, *shots)
	assert.False(t, input.Fire, "trigger pull is consumed")

	w.Tick(1.0 / 60)
	assert.Equal(t, 1, *shots)
}

func TestPlayerWalksWithMovementStats(t *testing.T) {
	w, _ := newWorld(t, 1)
	player := spawnPlayer(t, w, common.Vec3{})
	stats, _ := ecs.Get(w, player, component.MovementStatsComponent.Kind())
	stats.SpeedFactor = 1.5
	input, _ := ecs.Get(w, player, component.InputComponent.Kind())
	input.MoveX, input.MoveZ = 1, 1

	NewPhysicsSystem(0).Update(w)
	w.AddSystem(NewPlayerSystem())

	w.Tick(1.0 / 60)

	pb, _ := ecs.Get(w, player, component.PhysicsBodyComponent.Kind())
	require.NotNil(t, pb.Body)
	v := pb.Body.Velocity()
	assert.InDelta(t, 12, v.Length(), 1e-9, "speed 8 x 1.5, diagonal normalised")
	assert.InDelta(t, v.X, v.Y, 1e-9)
}

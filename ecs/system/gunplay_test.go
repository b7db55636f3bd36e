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

type gunRig struct {
	w       *ecs.World
	rec     *cueRecorder
	shake   *component.CameraShake
	player  ecs.Entity
	physics *PhysicsSystem
}

// newGunRig places the player at the origin aiming down -Z with a
// spreadless weapon.
func newGunRig(t *testing.T, arenaHalf float64) *gunRig {
	t.Helper()
	w, rec := newWorld(t, 31)
	r := &gunRig{w: w, rec: rec, shake: spawnCamera(t, w), physics: NewPhysicsSystem(arenaHalf)}
	r.player = spawnPlayer(t, w, common.Vec3{})
	weapon, ok := ecs.Get(w, r.player, component.WeaponStatsComponent.Kind())
	require.True(t, ok)
	weapon.SpreadRadius = 0
	NewGunplaySystem(r.physics).Register(w)
	return r
}

func (r *gunRig) shoot() {
	ecs.Emit(r.w, EventShoot, ShootEvent{Shooter: r.player})
	r.physics.Update(r.w)
	r.w.Flush()
}

func TestEveryPelletHitsTargetInLine(t *testing.T) {
	r := newGunRig(t, 0)
	stats := component.DefaultNpcStats()
	stats.StaggerChance = 0
	npc := spawnNPC(t, r.w, stats, common.V3(0, 0, -5))

	r.shoot()

	assert.Equal(t, 20.0, healthOf(t, r.w, npc).Current, "16 pellets of 5")
	assert.Len(t, r.rec.ofKind(audio.CueShot), 1)
	flesh := r.rec.ofKind(audio.CueImpactFlesh)
	require.Len(t, flesh, 16)
	assert.Equal(t, impactPitch, flesh[0].Pitch)
	assert.InDelta(t, shotTrauma, r.shake.Trauma, 1e-12)
	assert.Len(t, emitters(r.w), 16)
	assert.True(t, ecs.Has(r.w, r.player, component.ShootingComponent.Kind()))
}

func TestWallHitsDoNoDamage(t *testing.T) {
	r := newGunRig(t, 10)

	r.shoot()

	assert.Len(t, r.rec.ofKind(audio.CueImpactWall), 16)
	assert.Empty(t, r.rec.ofKind(audio.CueImpactFlesh))
	assert.Equal(t, 100.0, healthOf(t, r.w, r.player).Current)
}

func TestShotIntoOpenSpaceHitsNothing(t *testing.T) {
	r := newGunRig(t, 0)

	r.shoot()

	assert.Len(t, r.rec.ofKind(audio.CueShot), 1)
	assert.Empty(t, r.rec.ofKind(audio.CueImpactWall))
	assert.Empty(t, emitters(r.w))
}

func TestCannotShootWhileReloading(t *testing.T) {
	r := newGunRig(t, 0)
	r.w.AddSystem(NewGunplaySystem(r.physics))

	r.shoot()
	r.w.Tick(0.1)
	shooting, ok := ecs.Get(r.w, r.player, component.ShootingComponent.Kind())
	require.True(t, ok)
	assert.False(t, shooting.Reloading)

	r.shoot()
	assert.Len(t, r.rec.ofKind(audio.CueShot), 1, "trigger ignored mid-shot")

	r.w.Tick(0.1)
	assert.True(t, shooting.Reloading)
	assert.Len(t, r.rec.ofKind(audio.CueReload), 1)

	r.w.Tick(0.3)
	assert.True(t, ecs.Has(r.w, r.player, component.ShootingComponent.Kind()))
	r.w.Tick(0.1)
	assert.False(t, ecs.Has(r.w, r.player, component.ShootingComponent.Kind()))

	r.shoot()
	assert.Len(t, r.rec.ofKind(audio.CueShot), 2)
}

func TestAirbornePushback(t *testing.T) {
	r := newGunRig(t, 0)
	p, _ := ecs.Get(r.w, r.player, component.PlayerComponent.Kind())
	p.Airborne = true
	r.physics.Update(r.w)

	r.shoot()

	pb, _ := ecs.Get(r.w, r.player, component.PhysicsBodyComponent.Kind())
	v := pb.Body.Velocity()
	assert.Greater(t, v.Y, 0.0, "pushed against an aim of -Z")
	assert.InDelta(t, 0, v.X, 1e-9)
}

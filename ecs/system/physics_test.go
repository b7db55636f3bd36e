package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/horde/common"
	"github.com/milk9111/horde/ecs"
	"github.com/milk9111/horde/ecs/component"
)

func TestPhysicsCreatesAndRemovesBodies(t *testing.T) {
	w, _ := newWorld(t, 1)
	physics := NewPhysicsSystem(0)
	npc := spawnNPC(t, w, component.DefaultNpcStats(), common.V3(3, 0, 4))

	physics.Update(w)
	require.Equal(t, 1, physics.Bodies())
	pb, _ := ecs.Get(w, npc, component.PhysicsBodyComponent.Kind())
	require.NotNil(t, pb.Body)
	assert.Equal(t, npc, pb.Body.UserData)
	pos := pb.Body.Position()
	assert.Equal(t, 3.0, pos.X)
	assert.Equal(t, 4.0, pos.Y, "world Z maps onto the space's Y")

	ecs.DestroyEntity(w, npc)
	physics.Update(w)
	assert.Zero(t, physics.Bodies())
}

func TestPhysicsWritesBackTransforms(t *testing.T) {
	w, _ := newWorld(t, 1)
	physics := NewPhysicsSystem(0)
	w.AddSystem(physics)
	npc := spawnNPC(t, w, component.DefaultNpcStats(), common.Vec3{})
	physics.Update(w)
	setVelocity(w, npc, 2, -1)

	w.Tick(0.1)

	tr, _ := ecs.Get(w, npc, component.TransformComponent.Kind())
	assert.Greater(t, tr.Position.X, 0.0)
	assert.Less(t, tr.Position.Z, 0.0)
	assert.Zero(t, tr.Position.Y, "height is untouched")
}

func TestRaycastReportsEntityAndDistance(t *testing.T) {
	w, _ := newWorld(t, 1)
	physics := NewPhysicsSystem(20)
	npc := spawnNPC(t, w, component.DefaultNpcStats(), common.V3(6, 0, 0))
	physics.Update(w)

	hit, ok := physics.Raycast(common.Vec3{}, common.V3(100, 0, 0), component.LayerNPC)
	require.True(t, ok)
	assert.Equal(t, npc, hit.Entity)
	assert.InDelta(t, 6-component.NPCRadius, hit.Distance, 1e-6)
	assert.InDelta(t, 6-component.NPCRadius, hit.Point.X, 1e-6)

	wall, ok := physics.Raycast(common.Vec3{}, common.V3(0, 0, -100), component.LayerNPC|component.LayerDefault)
	require.True(t, ok)
	assert.False(t, wall.Entity.Valid())
	assert.InDelta(t, 20-wallRadius, wall.Distance, 1e-6)

	_, ok = physics.Raycast(common.Vec3{}, common.V3(0, 0, 10), component.LayerNPC)
	assert.False(t, ok)
}

func TestGibsAreLaunched(t *testing.T) {
	w, _ := newWorld(t, 1)
	physics := NewPhysicsSystem(0)
	g := ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, g, component.GibComponent.Kind(), &component.Gib{Kind: component.GibArm}))
	require.NoError(t, ecs.Add(w, g, component.TransformComponent.Kind(), &component.Transform{Scale: 1}))
	require.NoError(t, ecs.Add(w, g, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Radius: 0.15, Mass: 0.3, Launch: common.V3(3, 0, -2),
	}))

	physics.Update(w)

	vx, vz := bodyVelocity(t, w, g)
	assert.Equal(t, 3.0, vx)
	assert.Equal(t, -2.0, vz)
}

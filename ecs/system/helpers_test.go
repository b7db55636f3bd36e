package system

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/image/colornames"

	"github.com/milk9111/horde/audio"
	"github.com/milk9111/horde/common"
	"github.com/milk9111/horde/ecs"
	"github.com/milk9111/horde/ecs/component"
	"github.com/milk9111/horde/ecs/entity"
	"github.com/milk9111/horde/prefabs"
)

type cueRecorder struct {
	cues []audio.Cue
}

func (r *cueRecorder) Play(c audio.Cue, _, _ common.Vec3) {
	r.cues = append(r.cues, c)
}

func (r *cueRecorder) ofKind(kind audio.CueKind) []audio.Cue {
	var out []audio.Cue
	for _, c := range r.cues {
		if c.Kind == kind {
			out = append(out, c)
		}
	}
	return out
}

type fixedDurations float64

func (d fixedDurations) Duration(audio.CueKind) float64 { return float64(d) }

// newWorld returns a seeded world with the reactive handlers installed in
// production order, but no per-tick systems.
func newWorld(t *testing.T, seed uint64) (*ecs.World, *cueRecorder) {
	t.Helper()
	w := ecs.NewWorld(ecs.WithSeed(seed))
	rec := &cueRecorder{}
	NewHealthSystem().Register(w)
	NewStaggerSystem().Register(w)
	NewPlayerSystem().Register(w)
	NewDeathSystem(0).Register(w)
	NewExplosionSystem().Register(w)
	NewAudioSystem(rec).Register(w)
	return w, rec
}

func spawnPlayer(t *testing.T, w *ecs.World, pos common.Vec3) ecs.Entity {
	t.Helper()
	e, err := entity.NewPlayer(w, prefabs.PlayerSpec{Health: 100, Speed: 8}, pos)
	require.NoError(t, err)
	return e
}

func spawnCamera(t *testing.T, w *ecs.World) *component.CameraShake {
	t.Helper()
	e, err := entity.NewCamera(w, 0)
	require.NoError(t, err)
	shake, ok := ecs.Get(w, e, component.CameraShakeComponent.Kind())
	require.True(t, ok)
	return shake
}

func spawnNPC(t *testing.T, w *ecs.World, stats component.NpcStats, pos common.Vec3) ecs.Entity {
	t.Helper()
	e, err := entity.NewNPCWithStats(w, "test", stats, pos, false, colornames.Green)
	require.NoError(t, err)
	// Stand on the same plane as the player so geometry checks are exact.
	tr, _ := ecs.Get(w, e, component.TransformComponent.Kind())
	tr.Position.Y = pos.Y
	return e
}

func setNav(t *testing.T, w *ecs.World, e ecs.Entity, status component.NavStatus) {
	t.Helper()
	nav, ok := ecs.Get(w, e, component.NavAgentComponent.Kind())
	require.True(t, ok)
	nav.Status = status
}

func aiState(t *testing.T, w *ecs.World, e ecs.Entity) *component.AIState {
	t.Helper()
	st, ok := ecs.Get(w, e, component.AIStateComponent.Kind())
	require.True(t, ok)
	return st
}

func healthOf(t *testing.T, w *ecs.World, e ecs.Entity) *component.Health {
	t.Helper()
	h, ok := ecs.Get(w, e, component.HealthComponent.Kind())
	require.True(t, ok)
	return h
}

// countEvents subscribes a counter for kind.
func countEvents(w *ecs.World, kind ecs.EventKind) *int {
	n := new(int)
	w.Events().Subscribe(kind, func(*ecs.World, ecs.Event) { *n++ })
	return n
}

package prefabs

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func embeddedCatalog(t *testing.T) *Catalog {
	t.Helper()
	c := NewCatalog(NewStore(""))
	require.NoError(t, c.Load(context.Background()))
	return c
}

func TestCatalogLoadsEmbeddedPrefabs(t *testing.T) {
	c := embeddedCatalog(t)

	zombie, err := c.NPC("zombie")
	require.NoError(t, err)
	assert.Equal(t, 100.0, zombie.Health)
	assert.Equal(t, 10.0, zombie.AttackDamage)
	assert.Equal(t, 1.2, zombie.AttackSpeed.Min)
	assert.Equal(t, 2.1, zombie.AttackSpeed.Max)
	assert.Equal(t, 0.1, zombie.StaggerChance)

	assert.Equal(t, []string{"zombie", "runner", "brute"}, c.NPCNames())

	player := c.Player()
	assert.Equal(t, 5.0, player.Weapon.Damage)
	assert.Equal(t, 16, player.Weapon.Pellets)
	assert.Equal(t, 0.15, player.Weapon.SpreadRadius)
	assert.Equal(t, 8.0, player.Speed)

	assert.True(t, c.Barrel().ExplodeOnDeath)
}

func TestCatalogUpgradesCarryScripts(t *testing.T) {
	c := embeddedCatalog(t)

	ups := c.Upgrades()
	require.Len(t, ups, 3)
	for _, u := range ups {
		src, err := c.Script(u.Script)
		require.NoError(t, err, u.Name)
		assert.NotEmpty(t, src)
	}

	src, err := c.Script("damage.tengo")
	require.NoError(t, err)
	assert.Contains(t, string(src), "damage += 3.0")
}

func TestCatalogUnknownNames(t *testing.T) {
	c := embeddedCatalog(t)

	_, err := c.NPC("vampire")
	assert.ErrorIs(t, err, ErrUnknownPrefab)
	_, err = c.Upgrade("luck")
	assert.ErrorIs(t, err, ErrUnknownPrefab)
	assert.ErrorIs(t, c.Reload("levels.yaml"), ErrUnknownPrefab)
}

func TestReloadRejectsUnknownFileOnDisk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "levels.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: x\n"), 0o644))
	c := NewCatalog(NewStore(dir))

	err := c.Reload(path)
	assert.ErrorIs(t, err, ErrUnknownPrefab)
	assert.NotErrorIs(t, err, fs.ErrNotExist)
}

func TestWavesGrowPastTheScript(t *testing.T) {
	ws := WavesSpec{
		Growth: 2,
		Waves: []WaveSpec{
			{Groups: []WaveGroup{{Variant: "zombie", Count: 2}}},
			{Groups: []WaveGroup{{Variant: "zombie", Count: 3}}, Barrels: 1},
		},
	}

	assert.Equal(t, 2, ws.Wave(1).Total())
	assert.Equal(t, 3, ws.Wave(2).Total())
	assert.Equal(t, 6, ws.Wave(3).Total())
	assert.Equal(t, 12, ws.Wave(4).Total())
	assert.Equal(t, 1, ws.Wave(4).Barrels)
	assert.Zero(t, ws.Wave(0).Total())
	assert.Equal(t, 3, ws.Waves[1].Groups[0].Count, "growth must not mutate the script")
}

func TestStorePrefersDiskCopy(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, PropsFile), []byte("barrel:\n  health: 42\n"), 0o644))

	c := NewCatalog(NewStore(dir))
	require.NoError(t, c.Load(context.Background()))
	assert.Equal(t, 42.0, c.Barrel().Health)

	// Files missing on disk fall back to the embedded copy.
	_, err := c.NPC("zombie")
	assert.NoError(t, err)
}

func TestStoreRejectsBadYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, NPCFile), []byte("variants: [\n"), 0o644))

	err := NewCatalog(NewStore(dir)).Reload(NPCFile)
	assert.Error(t, err)
}

func TestWatcherReloadsChangedFile(t *testing.T) {
	dir := t.TempDir()
	c := NewCatalog(NewStore(dir))
	require.NoError(t, c.Load(context.Background()))

	w, err := NewWatcher(dir)
	require.NoError(t, err)
	t.Cleanup(func() { _ = w.Close() })

	require.NoError(t, os.WriteFile(filepath.Join(dir, PlayerFile), []byte("health: 250\nspeed: 8\n"), 0o644))

	assert.Eventually(t, func() bool {
		w.Pump(c, zap.NewNop())
		return c.Player().Health == 250
	}, 2*time.Second, 20*time.Millisecond)
}

func TestWatchedExtensions(t *testing.T) {
	assert.True(t, watched("npc.yaml"))
	assert.True(t, watched("scripts/speed.tengo"))
	assert.False(t, watched("notes.txt"))
}

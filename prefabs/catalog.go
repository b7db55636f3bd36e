package prefabs

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Catalog is the parsed set of prefabs. It is safe for concurrent use and
// can re-read single files when they change on disk.
type Catalog struct {
	store *Store

	mu       sync.RWMutex
	npcs     map[string]NPCSpec
	order    []string
	player   PlayerSpec
	barrel   PropSpec
	upgrades []UpgradeSpec
	scripts  map[string][]byte
	waves    WavesSpec
}

// Files parsed by the catalog.
const (
	NPCFile      = "npc.yaml"
	PlayerFile   = "player.yaml"
	PropsFile    = "props.yaml"
	UpgradesFile = "upgrades.yaml"
	WavesFile    = "waves.yaml"
)

func NewCatalog(store *Store) *Catalog {
	if store == nil {
		store = Default
	}
	return &Catalog{
		store:   store,
		npcs:    make(map[string]NPCSpec),
		scripts: make(map[string][]byte),
	}
}

// Load parses every prefab file concurrently.
func (c *Catalog) Load(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, name := range []string{NPCFile, PlayerFile, PropsFile, UpgradesFile, WavesFile} {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return c.Reload(name)
		})
	}
	return g.Wait()
}

// Reload re-reads one file. Names may be paths; only the base name counts.
func (c *Catalog) Reload(name string) error {
	base := filepath.Base(name)
	if filepath.Ext(base) == ".tengo" {
		return c.reloadScript(base)
	}
	switch base {
	case NPCFile, PlayerFile, PropsFile, UpgradesFile, WavesFile:
	default:
		return fmt.Errorf("%w: %s", ErrUnknownPrefab, base)
	}
	data, err := c.store.Read(base)
	if err != nil {
		return err
	}

	switch base {
	case NPCFile:
		f, err := decode[npcFile](data, base)
		if err != nil {
			return err
		}
		npcs := make(map[string]NPCSpec, len(f.Variants))
		order := make([]string, 0, len(f.Variants))
		for _, v := range f.Variants {
			if v.Name == "" {
				return fmt.Errorf("prefabs: %s: variant without name", base)
			}
			npcs[v.Name] = v
			order = append(order, v.Name)
		}
		c.mu.Lock()
		c.npcs, c.order = npcs, order
		c.mu.Unlock()
	case PlayerFile:
		p, err := decode[PlayerSpec](data, base)
		if err != nil {
			return err
		}
		c.mu.Lock()
		c.player = p
		c.mu.Unlock()
	case PropsFile:
		p, err := decode[propsFile](data, base)
		if err != nil {
			return err
		}
		c.mu.Lock()
		c.barrel = p.Barrel
		c.mu.Unlock()
	case UpgradesFile:
		ups, err := decode[[]UpgradeSpec](data, base)
		if err != nil {
			return err
		}
		for _, u := range ups {
			if err := c.reloadScript(u.Script); err != nil {
				return fmt.Errorf("prefabs: upgrade %s: %w", u.Name, err)
			}
		}
		c.mu.Lock()
		c.upgrades = ups
		c.mu.Unlock()
	case WavesFile:
		ws, err := decode[WavesSpec](data, base)
		if err != nil {
			return err
		}
		c.mu.Lock()
		c.waves = ws
		c.mu.Unlock()
	}
	return nil
}

func (c *Catalog) reloadScript(name string) error {
	src, err := c.store.ReadScript(name)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.scripts[filepath.Base(name)] = src
	c.mu.Unlock()
	return nil
}

func (c *Catalog) NPC(name string) (NPCSpec, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	spec, ok := c.npcs[name]
	if !ok {
		return NPCSpec{}, fmt.Errorf("%w: npc %q", ErrUnknownPrefab, name)
	}
	return spec, nil
}

// NPCNames lists variants in file order.
func (c *Catalog) NPCNames() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]string(nil), c.order...)
}

func (c *Catalog) Player() PlayerSpec {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.player
}

func (c *Catalog) Barrel() PropSpec {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.barrel
}

func (c *Catalog) Upgrades() []UpgradeSpec {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]UpgradeSpec(nil), c.upgrades...)
}

func (c *Catalog) Upgrade(name string) (UpgradeSpec, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, u := range c.upgrades {
		if u.Name == name {
			return u, nil
		}
	}
	return UpgradeSpec{}, fmt.Errorf("%w: upgrade %q", ErrUnknownPrefab, name)
}

func (c *Catalog) Script(name string) ([]byte, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	src, ok := c.scripts[filepath.Base(name)]
	if !ok {
		return nil, fmt.Errorf("%w: script %q", ErrUnknownPrefab, name)
	}
	return src, nil
}

func (c *Catalog) Waves() WavesSpec {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.waves
}

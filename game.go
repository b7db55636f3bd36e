package main

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync/atomic"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	ebaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/milk9111/horde/audio"
	"github.com/milk9111/horde/common"
	"github.com/milk9111/horde/config"
	"github.com/milk9111/horde/ecs"
	"github.com/milk9111/horde/ecs/component"
	"github.com/milk9111/horde/ecs/entity"
	"github.com/milk9111/horde/ecs/system"
	"github.com/milk9111/horde/prefabs"
)

// pixelsPerMeter is the top-down camera zoom.
const pixelsPerMeter = 22.0

type screen int

const (
	screenLoading screen = iota
	screenPlaying
	screenOver
)

type Game struct {
	cfg    config.Config
	logger *zap.Logger

	catalog *prefabs.Catalog
	bank    *audio.Bank
	mixer   *audio.Mixer
	engine  *audio.Engine
	watcher *prefabs.Watcher

	loaded       chan error
	prefabsReady atomic.Bool
	screen       screen

	world    *ecs.World
	pipeline *system.Pipeline
	view     system.View

	paused    bool
	pauseUI   *ebitenui.UI
	upgradeUI *ebitenui.UI
	lastWave  int
	volume    float64
	quit      bool
}

// NewGame starts loading in the background; the loading screen shows until
// the cue bank and prefabs are ready.
func NewGame(cfg config.Config, logger *zap.Logger) *Game {
	audioSeed := cfg.Audio.Seed
	if audioSeed == 0 {
		audioSeed = cfg.Game.Seed
	}

	bank := audio.NewBank(audio.SampleRate, audioSeed)
	mixer := audio.NewMixer(cfg.Audio.Volume)
	g := &Game{
		cfg:     cfg,
		logger:  logger,
		catalog: prefabs.NewCatalog(prefabs.NewStore(cfg.Game.PrefabsDir)),
		bank:    bank,
		mixer:   mixer,
		engine:  audio.NewEngine(bank, mixer, logger),
		loaded:  make(chan error, 1),
		volume:  cfg.Audio.Volume,
		view:    system.View{Zoom: pixelsPerMeter, Width: common.BaseWidth, Height: common.BaseHeight},
	}
	g.pauseUI = NewPauseUI(g)
	go g.load()
	return g
}

func (g *Game) load() {
	eg, ctx := errgroup.WithContext(context.Background())
	eg.Go(func() error {
		return g.bank.Load(ctx)
	})
	eg.Go(func() error {
		if err := g.catalog.Load(ctx); err != nil {
			return err
		}
		g.prefabsReady.Store(true)
		return nil
	})
	g.loaded <- eg.Wait()
}

func (g *Game) finishLoading() error {
	if g.cfg.Audio.Enabled {
		if err := g.engine.Attach(ebaudio.NewContext(int(audio.SampleRate))); err != nil {
			g.logger.Warn("audio disabled", zap.Error(err))
		}
	}
	if g.cfg.Game.HotReload {
		w, err := prefabs.NewWatcher(g.cfg.Game.PrefabsDir)
		if err != nil {
			g.logger.Warn("prefab hot reload disabled", zap.String("dir", g.cfg.Game.PrefabsDir), zap.Error(err))
		} else {
			g.watcher = w
		}
	}
	g.logger.Info("loaded",
		zap.Int("cues", g.bank.Loaded()),
		zap.Strings("variants", g.catalog.NPCNames()),
	)
	return g.startRun()
}

// startRun builds a fresh world for a new attempt.
func (g *Game) startRun() error {
	seed := g.cfg.Game.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	w := ecs.NewWorld(ecs.WithSeed(seed), ecs.WithLogger(g.logger))

	var sink system.CueSink
	if g.cfg.Audio.Enabled {
		sink = g.engine
	}
	waves := g.catalog.Waves()
	p := system.Install(w, system.Deps{
		Sink:        sink,
		Durations:   g.engine,
		Upgrades:    g.catalog,
		Waves:       g.catalog,
		Input:       g.screenToWorld,
		ArenaHalf:   waves.ArenaHalf,
		GibLifetime: g.cfg.Gore.GibLifetime,
	})
	w.AddRenderer(system.NewRenderSystem(waves.ArenaHalf, g.cfg.Game.Debug))

	if _, err := entity.NewPlayer(w, g.catalog.Player(), common.Vec3{}); err != nil {
		return fmt.Errorf("spawn player: %w", err)
	}
	if _, err := entity.NewCamera(w, g.cfg.Game.FirstWave); err != nil {
		return fmt.Errorf("spawn camera: %w", err)
	}
	if err := system.AssertSinglePlayer(w); err != nil {
		return err
	}

	ecs.On(w, system.EventGameOver, func(_ *ecs.World, evt system.GameOverEvent) {
		g.lastWave = evt.Wave
		g.screen = screenOver
	})

	g.mixer.Clear()
	g.world = w
	g.pipeline = p
	g.paused = false
	g.upgradeUI = nil
	g.screen = screenPlaying
	g.logger.Info("run started", zap.Uint64("seed", seed))
	return nil
}

func (g *Game) setPaused(paused bool) {
	g.paused = paused
	if g.pipeline != nil {
		g.pipeline.Audio.SetMuted(paused)
	}
}

func (g *Game) setVolume(v float64) {
	g.volume = common.Clamp(v, 0, 1)
	g.mixer.SetMaster(g.volume)
}

func (g *Game) openUpgrades() {
	names, ok := g.pipeline.Upgrades.Offer(g.world)
	if !ok {
		return
	}
	choices := make([]prefabs.UpgradeSpec, 0, len(names))
	for _, name := range names {
		spec, err := g.catalog.Upgrade(name)
		if err != nil {
			continue
		}
		choices = append(choices, spec)
	}
	g.upgradeUI = NewUpgradeUI(g, choices)
}

func (g *Game) closeUpgrades() {
	g.upgradeUI = nil
}

func (g *Game) chooseUpgrade(name string) {
	if err := g.pipeline.Upgrades.Choose(g.world, name); err != nil {
		g.logger.Warn("upgrade failed", zap.String("upgrade", name), zap.Error(err))
	}
	g.closeUpgrades()
}

func (g *Game) Update() error {
	if g.quit {
		return ebiten.Termination
	}

	switch g.screen {
	case screenLoading:
		select {
		case err := <-g.loaded:
			if err != nil {
				return fmt.Errorf("load: %w", err)
			}
			return g.finishLoading()
		default:
		}
		return nil
	case screenOver:
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			return g.startRun()
		}
		return nil
	}

	if g.watcher != nil {
		g.watcher.Pump(g.catalog, g.logger)
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyMinus):
		g.setVolume(g.volume - 0.1)
	case inpututil.IsKeyJustPressed(ebiten.KeyEqual):
		g.setVolume(g.volume + 0.1)
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if g.upgradeUI != nil {
			g.closeUpgrades()
		} else {
			g.setPaused(!g.paused)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) && !g.paused {
		if g.upgradeUI != nil {
			g.closeUpgrades()
		} else {
			g.openUpgrades()
		}
	}

	switch {
	case g.paused:
		g.pauseUI.Update()
		return nil
	case g.upgradeUI != nil:
		g.upgradeUI.Update()
		return nil
	}

	g.world.Tick(1 / float64(ebiten.TPS()))
	g.follow()
	return nil
}

func (g *Game) screenToWorld(sx, sy float64) (float64, float64) {
	return g.view.ToWorld(sx, sy)
}

// follow centres the camera on the player.
func (g *Game) follow() {
	e, ok := g.world.First(component.PlayerTagComponent.Kind(), component.TransformComponent.Kind())
	if !ok {
		return
	}
	t, _ := ecs.Get(g.world, e, component.TransformComponent.Kind())
	g.view.CamX, g.view.CamZ = t.Position.X, t.Position.Z
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.screen == screenLoading {
		prefabsState := "loading"
		if g.prefabsReady.Load() {
			prefabsState = "ready"
		}
		ebitenutil.DebugPrint(screen, fmt.Sprintf("Loading...\ncues %d/%d\nprefabs %s",
			g.bank.Loaded(), len(audio.CueKinds()), prefabsState))
		return
	}

	g.world.Draw(screen, g.view.CamX, g.view.CamZ, g.view.Zoom)

	switch {
	case g.screen == screenOver:
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("You fell on wave %d. Press Enter to try again.", g.lastWave),
			common.BaseWidth/2-140, common.BaseHeight/2)
	case g.paused:
		g.pauseUI.Draw(screen)
	case g.upgradeUI != nil:
		g.upgradeUI.Draw(screen)
	default:
		if _, ok := g.pipeline.Upgrades.Offer(g.world); ok {
			ebitenutil.DebugPrintAt(screen, "Upgrade ready: press Tab", 10, common.BaseHeight-24)
		}
	}
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return common.BaseWidth, common.BaseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return common.BaseWidth, common.BaseHeight
}

// Close releases audio and the prefab watcher.
func (g *Game) Close() error {
	var errs []error
	if g.watcher != nil {
		errs = append(errs, g.watcher.Close())
	}
	errs = append(errs, g.engine.Close())
	return errors.Join(errs...)
}

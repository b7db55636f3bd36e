package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("config: invalid")

// DefaultPath is read when -config is not given. A missing file is fine.
const DefaultPath = "horde.yaml"

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
	// Seed picks the synthesized cue variants; 0 derives it from Game.Seed.
	Seed    uint64  `yaml:"seed"`
}

type GoreConfig struct {
	GibLifetime float64 `yaml:"gib_lifetime"`
}

type GameConfig struct {
	// Seed fixes the world RNG; 0 picks a random seed per run.
	Seed       uint64  `yaml:"seed"`
	Debug      bool    `yaml:"debug"`
	PrefabsDir string  `yaml:"prefabs_dir"`
	HotReload  bool    `yaml:"hot_reload"`
	FirstWave  float64 `yaml:"first_wave"`
}

type WindowConfig struct {
	Title      string `yaml:"title"`
	Fullscreen bool   `yaml:"fullscreen"`
}

type Config struct {
	Game    GameConfig    `yaml:"game"`
	Audio   AudioConfig   `yaml:"audio"`
	Gore    GoreConfig    `yaml:"gore"`
	Logging LoggingConfig `yaml:"logging"`
	Window  WindowConfig  `yaml:"window"`
}

func Default() Config {
	return Config{
		Game: GameConfig{
			PrefabsDir: "prefabs",
			HotReload:  true,
			FirstWave:  3,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.8,
		},
		Gore: GoreConfig{
			GibLifetime: 10,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Window: WindowConfig{
			Title: "horde",
		},
	}
}

// Load reads path over the defaults. A missing file at DefaultPath yields
// the defaults; a missing explicit path is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	switch {
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return fmt.Errorf("%w: audio volume %v outside [0,1]", ErrInvalidConfig, c.Audio.Volume)
	case c.Gore.GibLifetime < 0:
		return fmt.Errorf("%w: negative gib lifetime", ErrInvalidConfig)
	case c.Game.FirstWave < 0:
		return fmt.Errorf("%w: negative first wave delay", ErrInvalidConfig)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "", "console", "json":
	default:
		return fmt.Errorf("%w: logging format %q", ErrInvalidConfig, c.Logging.Format)
	}
	return nil
}

// FromFlags parses args, loads the file named by -config and applies the
// remaining flags on top of it.
func FromFlags(fset *flag.FlagSet, args []string) (Config, error) {
	path := fset.String("config", "", "path to a YAML config file (default "+DefaultPath+" if present)")
	seed := fset.Uint64("seed", 0, "world RNG seed; 0 picks one at random")
	debug := fset.Bool("debug", false, "draw physics shapes and AI state")
	level := fset.String("log-level", "", "log level: debug, info, warn, error")
	mute := fset.Bool("mute", false, "disable audio output")
	if err := fset.Parse(args); err != nil {
		return Config{}, err
	}

	cfg, err := Load(*path)
	if err != nil {
		return cfg, err
	}

	fset.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.Game.Seed = *seed
		case "debug":
			cfg.Game.Debug = *debug
		case "log-level":
			cfg.Logging.Level = *level
		case "mute":
			cfg.Audio.Enabled = !*mute
		}
	})
	return cfg, nil
}

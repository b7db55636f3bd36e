package prefabs

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/horde/common"
)

var ErrUnknownPrefab = errors.New("prefabs: unknown prefab")

// NPCSpec is one NPC variant from npc.yaml.
type NPCSpec struct {
	Name            string       `yaml:"name"`
	Health          float64      `yaml:"health"`
	DesiredSpeed    float64      `yaml:"desired_speed"`
	MaxSpeed        float64      `yaml:"max_speed"`
	AttackDamage    float64      `yaml:"attack_damage"`
	AttackSpeed     common.Range `yaml:"attack_speed"`
	Size            float64      `yaml:"size"`
	StaggerChance   float64      `yaml:"stagger_chance"`
	StaggerDuration common.Range `yaml:"stagger_duration"`
	ExplodeOnDeath  bool         `yaml:"explode_on_death"`
	Color           string       `yaml:"color"`
}

type npcFile struct {
	Variants []NPCSpec `yaml:"variants"`
}

type WeaponSpec struct {
	Damage       float64 `yaml:"damage"`
	Pellets      int     `yaml:"pellets"`
	SpreadRadius float64 `yaml:"spread_radius"`
	Pushback     float64 `yaml:"pushback"`
	Range        float64 `yaml:"range"`
}

type PlayerSpec struct {
	Health float64    `yaml:"health"`
	Speed  float64    `yaml:"speed"`
	Color  string     `yaml:"color"`
	Weapon WeaponSpec `yaml:"weapon"`
}

type PropSpec struct {
	Health         float64 `yaml:"health"`
	Radius         float64 `yaml:"radius"`
	ExplodeOnDeath bool    `yaml:"explode_on_death"`
	Color          string  `yaml:"color"`
}

type propsFile struct {
	Barrel PropSpec `yaml:"barrel"`
}

// UpgradeSpec names a tengo script run against the player when chosen.
type UpgradeSpec struct {
	Name        string `yaml:"name"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Script      string `yaml:"script"`
}

type WaveGroup struct {
	Variant       string  `yaml:"variant"`
	Count         int     `yaml:"count"`
	ExplodeChance float64 `yaml:"explode_chance"`
}

type WaveSpec struct {
	Groups  []WaveGroup `yaml:"groups"`
	Barrels int         `yaml:"barrels"`
}

// WavesSpec lists the scripted waves. Past the last one, the last wave is
// repeated with counts multiplied by Growth per extra wave.
type WavesSpec struct {
	ArenaHalf   float64    `yaml:"arena_half"`
	Preparation float64    `yaml:"preparation"`
	SpawnRadius float64    `yaml:"spawn_radius"`
	Growth      float64    `yaml:"growth"`
	Waves       []WaveSpec `yaml:"waves"`
}

// Wave returns wave n, counting from 1.
func (s WavesSpec) Wave(n int) WaveSpec {
	if len(s.Waves) == 0 || n < 1 {
		return WaveSpec{}
	}
	if n <= len(s.Waves) {
		return s.Waves[n-1]
	}
	last := s.Waves[len(s.Waves)-1]
	factor := 1.0
	for i := len(s.Waves); i < n; i++ {
		factor *= max(s.Growth, 1)
	}
	out := WaveSpec{Barrels: last.Barrels, Groups: make([]WaveGroup, len(last.Groups))}
	for i, g := range last.Groups {
		g.Count = int(float64(g.Count)*factor + 0.5)
		out.Groups[i] = g
	}
	return out
}

func (s WaveSpec) Total() int {
	n := 0
	for _, g := range s.Groups {
		n += g.Count
	}
	return n
}

// decode parses YAML into a T.
func decode[T any](data []byte, name string) (T, error) {
	var out T
	if err := yaml.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("prefabs: unmarshal %s: %w", name, err)
	}
	return out, nil
}

// LoadSpec reads and parses one prefab file from the default store.
func LoadSpec[T any](name string) (T, error) {
	var zero T
	data, err := Default.Read(name)
	if err != nil {
		return zero, err
	}
	return decode[T](data, name)
}

package component

import (
	"errors"
	"fmt"

	"github.com/milk9111/horde/common"
)

var ErrInvalidStats = errors.New("npc: invalid stats")

const (
	NPCRadius        = 0.4
	NPCCapsuleLength = 0.6
)

// NpcStats are per-NPC tunables. They are fixed once the entity is built.
type NpcStats struct {
	Health          float64
	DesiredSpeed    float64
	MaxSpeed        float64
	AttackDamage    float64
	AttackSpeed     common.Range
	Size            float64
	StaggerChance   float64
	StaggerDuration common.Range
}

// DefaultNpcStats returns the baseline zombie.
func DefaultNpcStats() NpcStats {
	return NpcStats{
		Health:          100,
		DesiredSpeed:    10,
		MaxSpeed:        10,
		AttackDamage:    10,
		AttackSpeed:     common.Range{Min: 1.2, Max: 2.1},
		Size:            1,
		StaggerChance:   0.1,
		StaggerDuration: common.Range{Min: 0.1, Max: 0.3},
	}
}

func (s NpcStats) Validate() error {
	switch {
	case s.Size <= 0:
		return fmt.Errorf("%w: size %v must be positive", ErrInvalidStats, s.Size)
	case s.Health <= 0:
		return fmt.Errorf("%w: health %v must be positive", ErrInvalidStats, s.Health)
	case !s.AttackSpeed.Valid():
		return fmt.Errorf("%w: attack speed range %v..%v", ErrInvalidStats, s.AttackSpeed.Min, s.AttackSpeed.Max)
	case s.AttackSpeed.Min <= 0:
		return fmt.Errorf("%w: attack speed %v must be positive", ErrInvalidStats, s.AttackSpeed.Min)
	case !s.StaggerDuration.Valid():
		return fmt.Errorf("%w: stagger duration range %v..%v", ErrInvalidStats, s.StaggerDuration.Min, s.StaggerDuration.Max)
	case s.StaggerChance < 0 || s.StaggerChance > 1:
		return fmt.Errorf("%w: stagger chance %v outside [0,1]", ErrInvalidStats, s.StaggerChance)
	case s.MaxSpeed < s.DesiredSpeed:
		return fmt.Errorf("%w: max speed %v below desired speed %v", ErrInvalidStats, s.MaxSpeed, s.DesiredSpeed)
	}
	return nil
}

func (s NpcStats) Radius() float64 { return NPCRadius * s.Size }
func (s NpcStats) CapsuleLength() float64 { return NPCCapsuleLength * s.Size }
func (s NpcStats) Height() float64 { return s.CapsuleLength() + 2*s.Radius() }
func (s NpcStats) HalfHeight() float64 { return s.Height() / 2 }
func (s NpcStats) FloatHeight() float64 { return s.HalfHeight() + 0.5 }

var NpcStatsComponent = NewComponent[NpcStats]()

package component

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/milk9111/horde/common"
)

func TestDefaultNpcStats(t *testing.T) {
	s := DefaultNpcStats()
	require.NoError(t, s.Validate())
	assert.Equal(t, 100.0, s.Health)
	assert.Equal(t, 10.0, s.AttackDamage)
	assert.Equal(t, common.Range{Min: 1.2, Max: 2.1}, s.AttackSpeed)
	assert.Equal(t, 0.1, s.StaggerChance)
	assert.Equal(t, common.Range{Min: 0.1, Max: 0.3}, s.StaggerDuration)
}

func TestNpcStatsGeometry(t *testing.T) {
	s := DefaultNpcStats()
	s.Size = 2
	assert.InDelta(t, 0.8, s.Radius(), 1e-12)
	assert.InDelta(t, 1.2, s.CapsuleLength(), 1e-12)
	assert.InDelta(t, 2.8, s.Height(), 1e-12)
	assert.InDelta(t, 1.4, s.HalfHeight(), 1e-12)
	assert.InDelta(t, 1.9, s.FloatHeight(), 1e-12)
}

func TestNpcStatsValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*NpcStats)
	}{
		{"zero size", func(s *NpcStats) { s.Size = 0 }},
		{"no health", func(s *NpcStats) { s.Health = 0 }},
		{"inverted attack speed", func(s *NpcStats) { s.AttackSpeed = common.Range{Min: 2, Max: 1} }},
		{"zero attack speed", func(s *NpcStats) { s.AttackSpeed = common.Range{} }},
		{"inverted stagger", func(s *NpcStats) { s.StaggerDuration = common.Range{Min: 0.3, Max: 0.1} }},
		{"chance above one", func(s *NpcStats) { s.StaggerChance = 1.5 }},
		{"negative chance", func(s *NpcStats) { s.StaggerChance = -0.1 }},
		{"max below desired", func(s *NpcStats) { s.MaxSpeed = 1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultNpcStats()
			tt.mutate(&s)
			assert.ErrorIs(t, s.Validate(), ErrInvalidStats)
		})
	}
}

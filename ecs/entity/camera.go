package entity

import (
	"fmt"

	"github.com/milk9111/horde/ecs"
	"github.com/milk9111/horde/ecs/component"
)

// NewCamera creates the singleton holding screen shake and wave progress.
// The first wave starts after firstWave seconds.
func NewCamera(w *ecs.World, firstWave float64) (ecs.Entity, error) {
	entity := ecs.CreateEntity(w)
	if err := ecs.Add(w, entity, component.CameraShakeComponent.Kind(), &component.CameraShake{
		Decay:     1.5,
		MaxOffset: 18,
	}); err != nil {
		return 0, fmt.Errorf("camera: add camera shake: %w", err)
	}
	if err := ecs.Add(w, entity, component.WaveStateComponent.Kind(), &component.WaveState{Timer: firstWave}); err != nil {
		return 0, fmt.Errorf("camera: add wave state: %w", err)
	}
	return entity, nil
}

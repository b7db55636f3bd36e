package system

import (
	"github.com/milk9111/horde/ecs"
	"github.com/milk9111/horde/ecs/component"
)

const (
	defaultShakeDecay  = 1.5
	defaultShakeOffset = 18.0
)

// AddTrauma raises camera trauma, saturating at 1.
func AddTrauma(w *ecs.World, amount float64) {
	_, shake, ok := ecs.First(w, component.CameraShakeComponent.Kind())
	if !ok {
		return
	}
	shake.Trauma = min(shake.Trauma+amount, 1)
}

// CameraShakeSystem decays trauma and picks this frame's screen offset.
type CameraShakeSystem struct{}

func NewCameraShakeSystem() *CameraShakeSystem {
	return &CameraShakeSystem{}
}

func (s *CameraShakeSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.Delta()
	rng := w.Rand()
	ecs.ForEach(w, component.CameraShakeComponent.Kind(), func(_ ecs.Entity, shake *component.CameraShake) {
		decay := shake.Decay
		if decay <= 0 {
			decay = defaultShakeDecay
		}
		maxOffset := shake.MaxOffset
		if maxOffset <= 0 {
			maxOffset = defaultShakeOffset
		}
		shake.Trauma = max(shake.Trauma-decay*dt, 0)
		amount := shake.Trauma * shake.Trauma * maxOffset
		shake.OffsetX = (rng.Float64()*2 - 1) * amount
		shake.OffsetY = (rng.Float64()*2 - 1) * amount
	})
}

package system

import (
	"github.com/milk9111/horde/audio"
	"github.com/milk9111/horde/common"
	"github.com/milk9111/horde/ecs"
	"github.com/milk9111/horde/ecs/component"
)

// CueSink plays a resolved cue for a listener.
type CueSink interface {
	Play(c audio.Cue, listener, right common.Vec3)
}

// AudioSystem forwards SoundEvents to the sink, heard from the entity
// carrying AudioListener (the player). Listener right is world +X: the
// camera looks straight down with X to the right of the screen.
type AudioSystem struct {
	sink  CueSink
	muted bool
}

func NewAudioSystem(sink CueSink) *AudioSystem {
	return &AudioSystem{sink: sink}
}

func (a *AudioSystem) Register(w *ecs.World) {
	ecs.On(w, EventSound, a.onSound)
}

func (a *AudioSystem) SetMuted(muted bool) {
	a.muted = muted
}

func (a *AudioSystem) onSound(w *ecs.World, evt SoundEvent) {
	if a.sink == nil || a.muted {
		return
	}
	var listener common.Vec3
	if e, ok := w.First(component.AudioListenerComponent.Kind(), component.TransformComponent.Kind()); ok {
		t, _ := ecs.Get(w, e, component.TransformComponent.Kind())
		listener = t.Position
	}
	a.sink.Play(evt.Cue, listener, common.V3(1, 0, 0))
}

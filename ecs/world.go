package ecs

import (
	"math/rand/v2"

	"go.uber.org/zap"

	"github.com/milk9111/horde/ecs/component"
)

// World owns entities, component stores, the system order, the event queue
// and the deferred command buffer.
type World struct {
	entities  entityStore
	stores    map[component.ComponentID]*SparseSet
	scheduler Scheduler
	events    EventQueue
	commands  Commands
	resources map[string]any
	renderers []RenderSystem

	rng    *rand.Rand
	logger *zap.Logger

	dt   float64
	tick uint64
}

// Option configures a World.
type Option func(w *World)

// WithRand injects the random source used by every system. Tests pass a
// seeded source to make rolls reproducible.
func WithRand(r *rand.Rand) Option {
	return func(w *World) {
		if r != nil {
			w.rng = r
		}
	}
}

// WithSeed is shorthand for WithRand with a PCG source.
func WithSeed(seed uint64) Option {
	return WithRand(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// WithLogger sets the logger systems write to.
func WithLogger(l *zap.Logger) Option {
	return func(w *World) {
		if l != nil {
			w.logger = l
		}
	}
}

// NewWorld creates an empty ECS world.
func NewWorld(opts ...Option) *World {
	w := &World{
		stores:    make(map[component.ComponentID]*SparseSet),
		resources: make(map[string]any),
		rng:       rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// AddSystem appends a system to the update order.
func (w *World) AddSystem(s System) {
	if w == nil {
		return
	}
	w.scheduler.Add(s)
}

// Systems returns the registered systems in update order.
func (w *World) Systems() []System {
	if w == nil {
		return nil
	}
	return w.scheduler.Systems()
}

// Tick advances the simulation by dt seconds: every system runs once, then
// the barrier dispatches queued events and applies deferred commands.
func (w *World) Tick(dt float64) {
	if w == nil {
		return
	}
	if dt < 0 {
		dt = 0
	}
	w.dt = dt
	w.tick++
	w.scheduler.Update(w)
	w.Flush()
}

// Flush is the end-of-tick barrier. Events are handled FIFO, then structural
// commands are applied; commands that emit events are drained as well.
func (w *World) Flush() {
	if w == nil {
		return
	}
	for round := 0; round < maxDispatchRounds; round++ {
		if w.events.Len() == 0 && w.commands.Len() == 0 {
			return
		}
		w.events.dispatch(w)
		w.commands.apply(w)
	}
}

// Delta returns the duration of the current tick in seconds.
func (w *World) Delta() float64 {
	if w == nil {
		return 0
	}
	return w.dt
}

// TickCount returns how many ticks have run.
func (w *World) TickCount() uint64 {
	if w == nil {
		return 0
	}
	return w.tick
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}

// Commands returns the deferred command buffer.
func (w *World) Commands() *Commands {
	if w == nil {
		return nil
	}
	return &w.commands
}

// Rand returns the world random source.
func (w *World) Rand() *rand.Rand {
	return w.rng
}

// Logger returns the world logger; never nil.
func (w *World) Logger() *zap.Logger {
	if w == nil || w.logger == nil {
		return zap.NewNop()
	}
	return w.logger
}

// SetResource stores a world-global value (physics space, audio sink, ...).
func (w *World) SetResource(name string, v any) {
	if w == nil {
		return
	}
	w.resources[name] = v
}

// Resource returns a world-global value by name.
func Resource[T any](w *World, name string) (T, bool) {
	var zero T
	if w == nil {
		return zero, false
	}
	v, ok := w.resources[name].(T)
	if !ok {
		return zero, false
	}
	return v, true
}

func (w *World) store(id component.ComponentID, create bool) *SparseSet {
	s, ok := w.stores[id]
	if !ok && create {
		s = &SparseSet{}
		w.stores[id] = s
	}
	return s
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	return w != nil && w.entities.isAlive(e)
}

// First returns any live entity carrying every given kind.
func (w *World) First(kinds ...KindID) (Entity, bool) {
	ents := w.Query(kinds...)
	if len(ents) == 0 {
		return 0, false
	}
	return ents[0], true
}

// Query returns live entities carrying every given kind.
func (w *World) Query(kinds ...KindID) []Entity {
	if w == nil || len(kinds) == 0 {
		return nil
	}
	sets := make([]*SparseSet, len(kinds))
	for i, k := range kinds {
		sets[i] = w.store(k.ID(), false)
	}
	ids := intersect(sets...)
	out := make([]Entity, 0, len(ids))
	for _, id := range ids {
		if e, ok := w.entities.handle(id); ok {
			out = append(out, e)
		}
	}
	return out
}

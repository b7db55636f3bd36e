package ecs

// Commands buffers structural changes (spawns, despawns) so systems and
// handlers never create or destroy entities while others iterate. The buffer
// is applied at the world barrier, after events are dispatched.
type Commands struct {
	ops []func(w *World)
}

// Spawn queues creation of an entity; build populates it at the barrier.
func (c *Commands) Spawn(build func(w *World, e Entity)) {
	if c == nil || build == nil {
		return
	}
	c.ops = append(c.ops, func(w *World) {
		build(w, CreateEntity(w))
	})
}

// Despawn queues destruction of e.
func (c *Commands) Despawn(e Entity) {
	if c == nil {
		return
	}
	c.ops = append(c.ops, func(w *World) {
		DestroyEntity(w, e)
	})
}

// Run queues an arbitrary structural mutation.
func (c *Commands) Run(fn func(w *World)) {
	if c == nil || fn == nil {
		return
	}
	c.ops = append(c.ops, fn)
}

// Len returns the number of pending operations.
func (c *Commands) Len() int {
	if c == nil {
		return 0
	}
	return len(c.ops)
}

func (c *Commands) apply(w *World) {
	ops := c.ops
	c.ops = nil
	for _, op := range ops {
		op(w)
	}
}

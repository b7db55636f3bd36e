package system

import (
	"math"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/horde/common"
	"github.com/milk9111/horde/ecs"
	"github.com/milk9111/horde/ecs/component"
)

const (
	// spaceDamping is the fraction of velocity a free body keeps per second.
	spaceDamping = 0.15
	wallRadius   = 0.25
)

// PhysicsSystem owns the Chipmunk space. Bodies are created for new
// PhysicsBody entities, removed once their entity is gone, and stepped with
// the tick's dt. Positions are written back to Transform on the XZ plane.
type PhysicsSystem struct {
	space    *cp.Space
	entities map[ecs.Entity]*bodyInfo
}

type bodyInfo struct {
	body   *cp.Body
	shapes []*cp.Shape
	static bool
}

// RayHit is the first shape a segment query touched. Entity is zero for
// arena walls.
type RayHit struct {
	Entity   ecs.Entity
	Point    common.Vec3
	Distance float64
}

// NewPhysicsSystem builds a gravity-free space enclosed by a square arena
// of the given half extent. A non-positive extent leaves the arena open.
func NewPhysicsSystem(arenaHalf float64) *PhysicsSystem {
	space := cp.NewSpace()
	space.Iterations = 10
	space.SetDamping(spaceDamping)

	ps := &PhysicsSystem{
		space:    space,
		entities: make(map[ecs.Entity]*bodyInfo),
	}
	if arenaHalf > 0 {
		ps.addArena(arenaHalf)
	}
	return ps
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

// Bodies returns how many entity bodies are in the space.
func (ps *PhysicsSystem) Bodies() int {
	if ps == nil {
		return 0
	}
	return len(ps.entities)
}

func (ps *PhysicsSystem) addArena(half float64) {
	corners := []cp.Vector{
		{X: -half, Y: -half},
		{X: half, Y: -half},
		{X: half, Y: half},
		{X: -half, Y: half},
	}
	for i, a := range corners {
		b := corners[(i+1)%len(corners)]
		wall := cp.NewSegment(ps.space.StaticBody, a, b, wallRadius)
		wall.SetFriction(1)
		wall.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, component.LayerDefault, cp.ALL_CATEGORIES))
		ps.space.AddShape(wall)
	}
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}

	ps.removeStale(w)
	ps.syncEntities(w)
	if dt := w.Delta(); dt > 0 {
		ps.space.Step(dt)
	}
	ps.syncTransforms(w)
}

func (ps *PhysicsSystem) syncEntities(w *ecs.World) {
	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, pb *component.PhysicsBody, t *component.Transform) {
		if pb.Body != nil {
			return
		}

		var body *cp.Body
		switch {
		case pb.Static:
			body = cp.NewStaticBody()
		case pb.Kinematic:
			body = cp.NewKinematicBody()
		default:
			mass := pb.Mass
			if mass <= 0 {
				mass = 1
			}
			moment := math.Inf(1)
			if ecs.Has(w, e, component.GibComponent.Kind()) {
				moment = cp.MomentForCircle(mass, 0, pb.Radius, cp.Vector{})
			}
			body = cp.NewBody(mass, moment)
		}
		body.SetPosition(cp.Vector{X: t.Position.X, Y: t.Position.Z})
		body.SetAngle(t.Yaw)
		body.UserData = e

		radius := pb.Radius
		if radius <= 0 {
			radius = 0.5
		}
		shape := cp.NewCircle(body, radius, cp.Vector{})
		shape.SetFriction(pb.Friction)
		shape.SetFilter(filterFor(w, e))
		shape.UserData = e

		ps.space.AddBody(body)
		ps.space.AddShape(shape)
		if !pb.Static && !pb.Kinematic {
			body.SetVelocity(pb.Launch.X, pb.Launch.Z)
		}

		pb.Body = body
		pb.Shape = shape
		ps.entities[e] = &bodyInfo{body: body, shapes: []*cp.Shape{shape}, static: pb.Static}
	})
}

func filterFor(w *ecs.World, e ecs.Entity) cp.ShapeFilter {
	layer, ok := ecs.Get(w, e, component.CollisionLayerComponent.Kind())
	if !ok {
		return cp.NewShapeFilter(cp.NO_GROUP, component.LayerDefault, cp.ALL_CATEGORIES)
	}
	return cp.NewShapeFilter(cp.NO_GROUP, layer.Category, layer.Mask)
}

func (ps *PhysicsSystem) removeStale(w *ecs.World) {
	for e, info := range ps.entities {
		pb, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
		if ok && pb.Body == info.body {
			continue
		}
		for _, shape := range info.shapes {
			ps.space.RemoveShape(shape)
		}
		ps.space.RemoveBody(info.body)
		delete(ps.entities, e)
	}
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	for e, info := range ps.entities {
		if info.static {
			continue
		}
		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		pos := info.body.Position()
		t.Position.X = pos.X
		t.Position.Z = pos.Y
		if ecs.Has(w, e, component.GibComponent.Kind()) {
			t.Yaw = info.body.Angle()
		}
	}
}

// Raycast returns the first shape on the segment from→to whose category is
// in mask. Heights are ignored; the hit point keeps from's height.
func (ps *PhysicsSystem) Raycast(from, to common.Vec3, mask uint) (RayHit, bool) {
	if ps == nil {
		return RayHit{}, false
	}
	filter := cp.NewShapeFilter(cp.NO_GROUP, cp.ALL_CATEGORIES, mask)
	info := ps.space.SegmentQueryFirst(cp.Vector{X: from.X, Y: from.Z}, cp.Vector{X: to.X, Y: to.Z}, 0, filter)
	if info.Shape == nil {
		return RayHit{}, false
	}
	hit := RayHit{
		Point:    common.V3(info.Point.X, from.Y, info.Point.Y),
		Distance: info.Alpha * from.HorizontalDistance(to),
	}
	if e, ok := info.Shape.UserData.(ecs.Entity); ok {
		hit.Entity = e
	}
	return hit, true
}

// setVelocity drives an entity's body on the XZ plane.
func setVelocity(w *ecs.World, e ecs.Entity, vx, vz float64) {
	pb, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
	if !ok || pb.Body == nil || pb.Static {
		return
	}
	pb.Body.SetVelocity(vx, vz)
}

// applyImpulse pushes an entity's body on the XZ plane.
func applyImpulse(w *ecs.World, e ecs.Entity, impulse common.Vec3) {
	pb, ok := ecs.Get(w, e, component.PhysicsBodyComponent.Kind())
	if !ok || pb.Body == nil || pb.Static || pb.Kinematic {
		return
	}
	pb.Body.ApplyImpulseAtWorldPoint(cp.Vector{X: impulse.X, Y: impulse.Z}, pb.Body.Position())
}

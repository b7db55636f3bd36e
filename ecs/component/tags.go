package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

type NPCTag struct {
	Variant string
}

var NPCTagComponent = NewComponent[NPCTag]()

// PropTag marks destructible scenery such as barrels.
type PropTag struct{}

var PropTagComponent = NewComponent[PropTag]()

// ExplodeOnDeath makes the death reaction fire an explosion.
type ExplodeOnDeath struct{}

var ExplodeOnDeathComponent = NewComponent[ExplodeOnDeath]()

// Despawn schedules removal at the start of the next tick.
type Despawn struct{}

var DespawnComponent = NewComponent[Despawn]()

package component

// CollisionLayer categories. Bodies collide when each one's category is in
// the other's mask.
const (
	LayerDefault uint = 1 << iota
	LayerPlayer
	LayerNPC
	LayerProp
	LayerGib
	LayerAll uint = ^uint(0)
)

type CollisionLayer struct {
	Category uint
	Mask     uint
}

var CollisionLayerComponent = NewComponent[CollisionLayer]()

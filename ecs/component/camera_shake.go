package component

// CameraShake accumulates trauma in [0,1]; the offset grows with trauma².
type CameraShake struct {
	Trauma    float64
	Decay     float64
	MaxOffset float64
	OffsetX   float64
	OffsetY   float64
}

var CameraShakeComponent = NewComponent[CameraShake]()

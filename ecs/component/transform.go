package component

import "github.com/milk9111/horde/common"

type Transform struct {
	Position common.Vec3
	Yaw      float64
	Scale    float64
}

var TransformComponent = NewComponent[Transform]()

package component

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/horde/common"
)

// PhysicsBody stores Chipmunk2D runtime data. The simulation plane is the
// world XZ plane: cp X is world X, cp Y is world Z. Launch is the initial
// velocity given when the body is created.
type PhysicsBody struct {
	Body      *cp.Body
	Shape     *cp.Shape
	Radius    float64
	Mass      float64
	Friction  float64
	Static    bool
	Kinematic bool
	Launch    common.Vec3
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()

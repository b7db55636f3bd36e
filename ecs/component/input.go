package component

// Input stores this frame's intent for the entity it drives. AimX/AimZ is
// the world point under the cursor.
type Input struct {
	MoveX float64
	MoveZ float64
	AimX  float64
	AimZ  float64
	Fire  bool
}

var InputComponent = NewComponent[Input]()

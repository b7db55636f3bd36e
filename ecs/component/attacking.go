package component

import "github.com/milk9111/horde/common"

// Attacking is attached for one attack cycle. The attack resolver removes
// it once the swing completes.
type Attacking struct {
	Dir     common.Vec3
	HasDir  bool
	Speed   float64
	Damage  float64
	Elapsed float64
	Struck  bool
}

var AttackingComponent = NewComponent[Attacking]()

package component

import "github.com/milk9111/horde/common"

const PlayerRadius = 0.5

// Player is the single player character. Aim is a unit vector on the XZ
// plane. Airborne is only set while a jump pad has thrown the player.
type Player struct {
	Aim      common.Vec3
	Airborne bool
}

var PlayerComponent = NewComponent[Player]()

// MovementStats scale player walking speed; upgrades raise SpeedFactor.
type MovementStats struct {
	Speed       float64
	SpeedFactor float64
}

func DefaultMovementStats() MovementStats {
	return MovementStats{Speed: 8, SpeedFactor: 1}
}

func (m MovementStats) Effective() float64 {
	return m.Speed * m.SpeedFactor
}

var MovementStatsComponent = NewComponent[MovementStats]()

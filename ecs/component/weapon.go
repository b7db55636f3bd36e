package component

// WeaponStats describe the player's shotgun.
type WeaponStats struct {
	Damage       float64
	Pellets      int
	SpreadRadius float64
	Pushback     float64
	Range        float64
}

func DefaultWeaponStats() WeaponStats {
	return WeaponStats{
		Damage:       5,
		Pellets:      16,
		SpreadRadius: 0.15,
		Pushback:     12,
		Range:        300,
	}
}

var WeaponStatsComponent = NewComponent[WeaponStats]()

// Shooting is present from trigger pull until the reload finishes.
// Elapsed counts seconds since the shot; Reloading flips once the shot
// sound has played out.
type Shooting struct {
	Elapsed   float64
	Reloading bool
}

var ShootingComponent = NewComponent[Shooting]()

package component

// UpgradeOffer lists the upgrades the player may pick between waves.
type UpgradeOffer struct {
	Choices []string
}

var UpgradeOfferComponent = NewComponent[UpgradeOffer]()

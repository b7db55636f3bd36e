package component

// DespawnAfter destroys its entity once Remaining seconds have elapsed.
type DespawnAfter struct {
	Remaining float64
}

var DespawnAfterComponent = NewComponent[DespawnAfter]()

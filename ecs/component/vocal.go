package component

// Vocalizing marks an NPC whose idle grunt is still playing. Remaining is
// the cue length in seconds; the marker is dropped when it runs out.
type Vocalizing struct {
	Remaining float64
}

var VocalizingComponent = NewComponent[Vocalizing]()

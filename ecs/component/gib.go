package component

// GibKind is the body part a piece of debris represents.
type GibKind int

const (
	GibHead GibKind = iota
	GibTorso
	GibArm
	GibLeg
	GibFoot
	GibPelvis
)

var gibNames = [...]string{"head", "torso", "arm", "leg", "foot", "pelvis"}

func (k GibKind) String() string {
	if k < 0 || int(k) >= len(gibNames) {
		return "unknown"
	}
	return gibNames[k]
}

var gibWeights = [...]int{
	GibHead:   1,
	GibTorso:  1,
	GibArm:    2,
	GibLeg:    2,
	GibFoot:   2,
	GibPelvis: 1,
}

// GibWeights is the relative frequency of each kind, indexed by GibKind.
func GibWeights() []int {
	out := make([]int, len(gibWeights))
	copy(out, gibWeights[:])
	return out
}

// Gib is cosmetic debris left behind by a dismembered NPC.
type Gib struct {
	Kind GibKind
}

var GibComponent = NewComponent[Gib]()

package audio

import (
	"math"

	"github.com/milk9111/horde/common"
)

// CueKind names a family of sound variants in the bank.
type CueKind int

const (
	CueIdle CueKind = iota
	CueStagger
	CueAttack
	CueShot
	CueReload
	CueImpactFlesh
	CueImpactWall
	CueHurt
	CueExplosion
	cueKindCount
)

var cueNames = [...]string{
	CueIdle:        "idle",
	CueStagger:     "stagger",
	CueAttack:      "attack",
	CueShot:        "shot",
	CueReload:      "reload",
	CueImpactFlesh: "impact_flesh",
	CueImpactWall:  "impact_wall",
	CueHurt:        "hurt",
	CueExplosion:   "explosion",
}

func (k CueKind) String() string {
	if k < 0 || k >= cueKindCount {
		return "unknown"
	}
	return cueNames[k]
}

// CueKinds lists every kind the bank knows how to make.
func CueKinds() []CueKind {
	out := make([]CueKind, 0, cueKindCount)
	for k := CueKind(0); k < cueKindCount; k++ {
		out = append(out, k)
	}
	return out
}

// Cue is a request to play one variant of a kind. Spatial cues attenuate
// with distance from the listener; the rest play at Volume.
type Cue struct {
	Kind     CueKind
	Position common.Vec3
	Pitch    float64
	Volume   float64
	Falloff  float64
	Spatial  bool
}

// Gain is Volume/(1 + distance·Falloff) for spatial cues.
func (c Cue) Gain(listener common.Vec3) float64 {
	if c.Volume <= 0 {
		return 0
	}
	if !c.Spatial || c.Falloff <= 0 {
		return c.Volume
	}
	return c.Volume / (1 + c.Position.DistanceTo(listener)*c.Falloff)
}

// Pan places the cue in the stereo field, -1 hard left to 1 hard right,
// given the listener's right-hand direction.
func (c Cue) Pan(listener, right common.Vec3) float64 {
	if !c.Spatial {
		return 0
	}
	dir, ok := c.Position.Sub(listener).Horizontal().Normalize()
	if !ok {
		return 0
	}
	r, ok := right.Horizontal().Normalize()
	if !ok {
		return 0
	}
	return common.Clamp(dir.Dot(r), -1, 1)
}

// Ratio is the playback speed; unset pitch plays at 1.
func (c Cue) Ratio() float64 {
	if c.Pitch <= 0 || math.IsNaN(c.Pitch) || math.IsInf(c.Pitch, 0) {
		return 1
	}
	return c.Pitch
}

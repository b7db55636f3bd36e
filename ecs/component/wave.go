package component

type WavePhase int

const (
	WavePreparing WavePhase = iota
	WaveFighting
)

func (p WavePhase) String() string {
	if p == WaveFighting {
		return "fighting"
	}
	return "preparing"
}

// WaveState is a singleton tracking the horde's progress.
type WaveState struct {
	Phase  WavePhase
	Number int
	Timer  float64
}

var WaveStateComponent = NewComponent[WaveState]()

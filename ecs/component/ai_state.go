package component

// AIMode is the NPC behavior mode.
type AIMode int

const (
	AIChase AIMode = iota
	AIStagger
	AIAttack
)

func (m AIMode) String() string {
	switch m {
	case AIChase:
		return "chase"
	case AIStagger:
		return "stagger"
	case AIAttack:
		return "attack"
	}
	return "unknown"
}

// AIState is owned by the behavior systems. StaggerRemaining is only
// meaningful in AIStagger and counts down in seconds.
type AIState struct {
	Mode             AIMode
	StaggerRemaining float64
}

func (s *AIState) Chase() {
	s.Mode = AIChase
	s.StaggerRemaining = 0
}

func (s *AIState) Stagger(d float64) {
	s.Mode = AIStagger
	s.StaggerRemaining = max(d, 0)
}

func (s *AIState) Attack() {
	s.Mode = AIAttack
	s.StaggerRemaining = 0
}

var AIStateComponent = NewComponent[AIState]()

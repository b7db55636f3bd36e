package component

// Health is a numeric pool. Dead is entered once and never left.
type Health struct {
	Current float64
	Max     float64
	Dead    bool
}

func NewHealth(max float64) Health {
	return Health{Current: max, Max: max}
}

// Damage subtracts amount and reports whether this call crossed from alive
// to dead. Damage to a dead pool is ignored.
func (h *Health) Damage(amount float64) bool {
	if h.Dead || !(amount > 0) {
		return false
	}
	h.Current -= amount
	if h.Current > 0 {
		return false
	}
	h.Current = 0
	h.Dead = true
	return true
}

func (h *Health) Heal(amount float64) {
	if h.Dead || amount <= 0 {
		return
	}
	h.Current = min(h.Current+amount, h.Max)
}

func (h *Health) HealFull() {
	if h.Dead {
		return
	}
	h.Current = h.Max
}

func (h *Health) IsDead() bool {
	return h.Dead
}

// Fraction is Current/Max in [0,1].
func (h *Health) Fraction() float64 {
	if h.Max <= 0 {
		return 0
	}
	return h.Current / h.Max
}

var HealthComponent = NewComponent[Health]()

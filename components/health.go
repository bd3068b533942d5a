package components

import "github.com/yohamta/donburi"

// HealthData is always kept within [0, Max].
type HealthData struct {
	Current int
	Max     int
}

// Damage subtracts n and returns how much was actually taken.
func (h *HealthData) Damage(n int) int {
	before := h.Current
	h.Current = clampHealth(h.Current-n, h.Max)
	return before - h.Current
}

// Heal adds n and returns how much was actually restored.
func (h *HealthData) Heal(n int) int {
	before := h.Current
	h.Current = clampHealth(h.Current+n, h.Max)
	return h.Current - before
}

func (h *HealthData) IsDead() bool {
	return h.Current <= 0
}

// Ratio is the filled fraction used by the health bars.
func (h *HealthData) Ratio() float64 {
	if h.Max <= 0 {
		return 0
	}
	return float64(h.Current) / float64(h.Max)
}

func clampHealth(v, max int) int {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}

var Health = donburi.NewComponentType[HealthData]()

package components

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
)

// DamagePopup is a floating damage number shown over a fighter that was hit.
type DamagePopup struct {
	Amount    int
	X, Y      float64
	CreatedAt int // game tick the hit landed on
	Rise      float64
	tween     *gween.Tween
}

type DamagePopupsData struct {
	Popups []DamagePopup
}

// Add records a new popup. rise is how far the number drifts up over
// duration ticks.
func (d *DamagePopupsData) Add(amount int, x, y float64, tick, duration int, rise float64) {
	d.Popups = append(d.Popups, DamagePopup{
		Amount:    amount,
		X:         x,
		Y:         y,
		CreatedAt: tick,
		tween:     gween.New(0, float32(rise), float32(duration), ease.OutQuad),
	})
}

// Update advances every popup's rise by one tick.
func (d *DamagePopupsData) Update() {
	for i := range d.Popups {
		p := &d.Popups[i]
		if p.tween == nil {
			continue
		}
		rise, _ := p.tween.Update(1)
		p.Rise = float64(rise)
	}
}

// Prune drops every popup that has been alive for duration ticks or more.
func (d *DamagePopupsData) Prune(tick, duration int) {
	kept := d.Popups[:0]
	for _, p := range d.Popups {
		if tick-p.CreatedAt < duration {
			kept = append(kept, p)
		}
	}
	d.Popups = kept
}

// Clear removes every popup, used when a round resets.
func (d *DamagePopupsData) Clear() {
	d.Popups = d.Popups[:0]
}

var DamagePopups = donburi.NewComponentType[DamagePopupsData]()

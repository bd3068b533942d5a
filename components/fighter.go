package components

import (
	cfg "github.com/automoto/brawler/config"
	"github.com/yohamta/donburi"
)

// AttackBox is the last attack rectangle swung, kept for the debug overlay.
type AttackBox struct {
	X, Y, W, H float64
	Timer      int // frames left to draw it
}

type FighterData struct {
	Name        string
	Prefab      string // prefab file key, stable across reloads that rename the fighter
	PlayerIndex int    // 1 or 2
	Target      *donburi.Entry

	Flip bool // true = facing left
	VelY float64

	Running   bool
	Jumping   bool
	Attacking bool
	Hit       bool
	Alive     bool

	AttackType     cfg.AttackType
	AttackCooldown int
	AttackSound    cfg.SoundID
	LastAttack     AttackBox

	// Multiplicative tint applied when drawing; zero value means none.
	Tint    [3]float32
	HasTint bool

	SpawnX float64
	SpawnY float64
}

var Fighter = donburi.NewComponentType[FighterData]()

package config

// StateID identifies a fighter action. The numeric value is also the row of
// the action in a fighter's sprite sheet.
type StateID int

const (
	StateNone StateID = -1

	Idle StateID = iota - 1
	Run
	Jump
	AttackLight
	AttackHeavy
	Hit
	Death

	StateCount // Must be last - used for array sizing
)

// StateToName maps StateID to the name used in specs, logs and debug labels.
var StateToName = map[StateID]string{
	Idle:        "idle",
	Run:         "run",
	Jump:        "jump",
	AttackLight: "attack_light",
	AttackHeavy: "attack_heavy",
	Hit:         "hit",
	Death:       "death",
}

func (s StateID) String() string {
	if name, ok := StateToName[s]; ok {
		return name
	}
	return "unknown"
}

// IsAttack reports whether the state is one of the two attack actions.
func (s StateID) IsAttack() bool {
	return s == AttackLight || s == AttackHeavy
}

// AttackType selects which attack a fighter is performing.
type AttackType int

const (
	AttackNone AttackType = iota
	AttackTypeLight
	AttackTypeHeavy
)

// State returns the action that plays while this attack is in progress.
func (a AttackType) State() StateID {
	if a == AttackTypeLight {
		return AttackLight
	}
	return AttackHeavy
}

// RoundStateID represents the current phase of a round.
type RoundStateID int

const (
	RoundIntro    RoundStateID = iota // Countdown (3, 2, 1)
	RoundFighting                     // Active gameplay
	RoundOver                         // A fighter is down, waiting for reset
)

// HitZone is the part of the target struck by an attack.
type HitZone int

const (
	ZoneHead HitZone = iota
	ZoneBody
	ZoneOther
)

func (z HitZone) String() string {
	switch z {
	case ZoneHead:
		return "head"
	case ZoneBody:
		return "body"
	default:
		return "other"
	}
}

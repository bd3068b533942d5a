package components

import "github.com/yohamta/donburi"

// ClockData counts game ticks since the scene started.
type ClockData struct {
	Tick int
}

var Clock = donburi.NewComponentType[ClockData]()

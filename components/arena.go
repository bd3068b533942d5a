package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// ArenaData is the singleton describing the stage the fight happens on.
type ArenaData struct {
	Name       string
	Width      float64
	Height     float64
	FloorY     float64
	Background *ebiten.Image // nil draws a flat backdrop
}

var Arena = donburi.NewComponentType[ArenaData]()

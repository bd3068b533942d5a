package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

// CenterX is the horizontal middle of the hitbox.
func (o *ObjectData) CenterX() float64 {
	return o.X + o.W/2
}

func (o *ObjectData) CenterY() float64 {
	return o.Y + o.H/2
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the singleton resolv space every hitbox lives in.
var Space = donburi.NewComponentType[resolv.Space]()

package components

import "github.com/yohamta/donburi"

// PauseMenuOption is a row of the pause menu, top to bottom.
type PauseMenuOption int

const (
	MenuResume PauseMenuOption = iota
	MenuRestart
	MenuQuit

	pauseOptionCount
)

// PauseData is the pause singleton. While IsPaused is set the gameplay
// systems are skipped and the menu takes the global keys.
type PauseData struct {
	IsPaused       bool
	SelectedOption PauseMenuOption
	QuitRequested  bool // read by the game loop to end the program
}

// Toggle flips the pause state. Opening the menu always highlights Resume.
func (p *PauseData) Toggle() {
	p.IsPaused = !p.IsPaused
	if p.IsPaused {
		p.SelectedOption = MenuResume
	}
}

// Move shifts the highlight by delta rows, wrapping at both ends.
func (p *PauseData) Move(delta int) {
	n := int(pauseOptionCount)
	p.SelectedOption = PauseMenuOption(((int(p.SelectedOption)+delta)%n + n) % n)
}

var Pause = donburi.NewComponentType[PauseData]()

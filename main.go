package main

import (
	"errors"
	"flag"
	"image"
	"log"

	"github.com/automoto/brawler/config"
	"github.com/automoto/brawler/fonts"
	"github.com/automoto/brawler/scenes"
	"github.com/automoto/brawler/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
	Quit() bool
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(scene Scene) *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scene,
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	if g.scene.Quit() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	p1 := flag.String("p1", "warrior", "fighter prefab for player 1")
	p2 := flag.String("p2", "wizard", "fighter prefab for player 2")
	debug := flag.Bool("debug", false, "draw hitboxes, attack rects and state labels")
	hotReload := flag.Bool("hotreload", false, "re-apply fighter prefabs when their files change")
	fullscreen := flag.Bool("fullscreen", false, "start in fullscreen")
	flag.Parse()

	config.Debug.ShowHitboxes = *debug
	config.Debug.HotReload = *hotReload

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Brawler")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(config.C.TPS)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	saved, err := systems.LoadSettings()
	if err != nil {
		saved = nil
	}
	if *fullscreen || (saved != nil && saved.Fullscreen) {
		ebiten.SetFullscreen(true)
		if saved == nil {
			saved = &systems.SavedSettings{SFXVolume: config.Audio.DefaultSFXVol}
		}
		saved.Fullscreen = true
	}

	battle := scenes.NewBattleScene(*p1, *p2, saved)
	runErr := ebiten.RunGame(NewGame(battle))
	if err := battle.Close(); err != nil {
		log.Printf("Warning: Could not stop prefab watcher: %v", err)
	}
	if runErr != nil && !errors.Is(runErr, ebiten.Termination) {
		log.Fatal(runErr)
	}
}

package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/brawler/assets"
	cfg "github.com/automoto/brawler/config"
	"github.com/automoto/brawler/prefabs"
	"github.com/automoto/brawler/systems"
	"github.com/automoto/brawler/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const arenaFile = "arena.tmx"

// BattleScene is a two-player fight in a single arena, played in rounds.
type BattleScene struct {
	ecs      *ecs.ECS
	fighters [2]string
	saved    *systems.SavedSettings
	watcher  *prefabs.Watcher
	once     sync.Once
}

// NewBattleScene creates a fight between the named fighter prefabs. saved may
// be nil, in which case the default settings apply.
func NewBattleScene(p1, p2 string, saved *systems.SavedSettings) *BattleScene {
	return &BattleScene{
		fighters: [2]string{p1, p2},
		saved:    saved,
	}
}

func (bs *BattleScene) Update() {
	bs.once.Do(bs.configure)
	bs.reloadPrefabs()
	bs.ecs.Update()
}

func (bs *BattleScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if bs.ecs == nil {
		return
	}
	bs.ecs.Draw(screen)
}

// Quit reports whether the player chose Quit from the pause menu.
func (bs *BattleScene) Quit() bool {
	return bs.ecs != nil && systems.QuitRequested(bs.ecs)
}

// Close stops the prefab watcher, if any.
func (bs *BattleScene) Close() error {
	if bs.watcher == nil {
		return nil
	}
	return bs.watcher.Close()
}

func (bs *BattleScene) configure() {
	// Preload assets to avoid lag on first use
	systems.PreloadAllSFX()

	ecs := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdateSettings)
	ecs.AddSystem(systems.UpdatePause)
	ecs.AddSystem(systems.UpdateFighterInput)

	// Game systems wrapped with the pause check. The clock stops too, so
	// damage numbers do not expire behind the pause menu.
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateClock))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateRound))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateFighters))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateFighterStates))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateDamagePopups))
	ecs.AddSystem(systems.WithGameplayChecks(systems.UpdateEffects))

	// Audio last so sounds queued this frame play this frame
	ecs.AddSystem(systems.UpdateAudio)

	ecs.AddRenderer(cfg.Default, systems.DrawArena)
	ecs.AddRenderer(cfg.Default, systems.DrawFighters)
	ecs.AddRenderer(cfg.Default, systems.DrawDamagePopups)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawRound)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	ecs.AddRenderer(cfg.Default, systems.DrawPause)

	bs.ecs = ecs
	systems.ApplySavedSettings(bs.ecs, bs.saved)

	arena := assets.MustLoadArena(arenaFile)
	var background *ebiten.Image
	if arena.Background != "" {
		bg, err := assets.LoadBackground(arena.Background)
		if err != nil {
			log.Printf("Warning: Could not load arena background: %v", err)
		} else {
			background = bg
		}
	}

	factory.CreateSpace(bs.ecs, arena.Width, arena.Height, 20, 20)
	factory.CreateArena(bs.ecs, arena, background)
	factory.CreateRound(bs.ecs)

	var entries [2]*donburi.Entry
	for i, name := range bs.fighters {
		player := i + 1
		spawn, _ := arena.Spawn(player)
		entries[i] = bs.spawnFighter(player, name, spawn)
	}
	factory.LinkOpponents(entries[0], entries[1])

	if cfg.Debug.HotReload {
		w, err := prefabs.NewWatcher(prefabs.Dir)
		if err != nil {
			log.Printf("Warning: Prefab hot reload disabled: %v", err)
		} else {
			bs.watcher = w
			log.Printf("Watching %s for fighter changes", prefabs.Dir)
		}
	}
}

// spawnFighter creates one fighter. A missing sprite sheet is not fatal: the
// fighter is drawn as its hitbox instead.
func (bs *BattleScene) spawnFighter(player int, name string, spawn assets.FighterSpawn) *donburi.Entry {
	spec, sheet, err := factory.LoadFighter(name, assets.LoadSheet)
	if spec == nil {
		panic("failed to load fighter " + name + ": " + err.Error())
	}
	if err != nil {
		log.Printf("Warning: %v", err)
	}

	return factory.CreateFighter(bs.ecs, factory.FighterParams{
		Player: player,
		Prefab: prefabs.SpecName(name),
		Spec:   spec,
		Sheet:  sheet,
		X:      spawn.X,
		Y:      spawn.Y,
		Flip:   player == 2,
	})
}

// reloadPrefabs re-applies every changed fighter prefab to the fighters
// using it. Invalid edits are logged and the old look is kept.
func (bs *BattleScene) reloadPrefabs() {
	if bs.watcher == nil {
		return
	}

	changed, errs := bs.watcher.Drain()
	for _, err := range errs {
		log.Printf("Warning: Prefab watcher: %v", err)
	}

	for _, path := range changed {
		name := prefabs.SpecName(path)
		spec, sheet, err := factory.LoadFighter(name, assets.LoadSheet)
		if spec == nil {
			log.Printf("Warning: Could not reload %s: %v", name, err)
			continue
		}
		if err != nil {
			log.Printf("Warning: %v", err)
		}

		if n := factory.ReapplyPrefab(bs.ecs.World, name, spec, sheet); n > 0 {
			log.Printf("Reloaded %s (%s) for %d fighter(s)", name, spec.Name, n)
		}
	}
}

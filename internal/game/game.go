// Package game implements Dodge, an arcade survival game.
// The player steers a small character around a square field, avoiding
// bouncing obstacles while collecting food for score and power-up items.
// Clearing a level's score threshold and confirming starts a harder level.
//
// All timing runs on a simulated clock: each Step advances the game's
// scheduler by one tick interval, so a seed and an input sequence fully
// determine a run.
package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
	"github.com/vovakirdan/tui-dodge/internal/schedule"
)

// Identity used for score history and display.
const (
	GameID    = "dodge"
	GameTitle = "Dodge"
)

// Game implements the Dodge game logic.
type Game struct {
	cfg   config.DodgeConfig
	store HighScoreStore
	rt    core.RuntimeConfig

	rng       *rand.Rand
	sched     *schedule.Scheduler
	gen       *generator
	char      *Character
	obstacles *ObstacleField
	items     *ItemField
	foods     *FoodField
	progress  *Progress

	cleared       schedule.Slot // Bomb aftermath, suppresses obstacle spawning
	obstacleSpawn schedule.Slot
	itemSpawn     schedule.Slot

	input    core.InputFrame
	paused   bool
	gameOver bool
	survival time.Duration
	ticks    int
	err      error
}

// New creates a game with the given configuration. store may be nil, in
// which case the high score lives only in memory.
func New(cfg config.DodgeConfig, store HighScoreStore) *Game {
	return &Game{cfg: cfg, store: store}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return GameTitle
}

// Reset initializes or restarts the game.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.rt = rt
	if g.sched != nil {
		g.sched.Stop()
	}
	g.rng = rand.New(rand.NewSource(rt.Seed))
	g.sched = schedule.New()
	g.gen = newGenerator(g.rng, &g.cfg)
	canvas := g.cfg.Canvas.Size
	g.char = newCharacter(g.cfg.Character, canvas, g.sched)
	g.obstacles = newObstacleField(g.gen, g.sched, canvas)
	g.items = newItemField(g.gen)
	g.foods = newFoodField(g.gen)
	g.progress = newProgress(&g.cfg, loadHighScore(g.store))
	g.cleared = schedule.Slot{}
	g.obstacleSpawn = schedule.Slot{}
	g.itemSpawn = schedule.Slot{}

	g.input = core.NewInputFrame()
	g.paused = false
	g.gameOver = false
	g.survival = 0
	g.ticks = 0
	g.err = nil

	p := g.progress.Params()
	g.obstacles.SpawnInitial(p)

	g.sched.Every(g.cfg.TickInterval(), g.update)
	g.sched.Every(g.cfg.ClockInterval(), g.clock)
	g.sched.Every(g.cfg.FoodInterval(), g.spawnFood)
	g.armSpawners(p)
}

// armSpawners (re)starts the level-scaled obstacle and item cadences.
func (g *Game) armSpawners(p config.LevelParams) {
	g.obstacleSpawn.ArmEvery(g.sched, p.ObstacleInterval, g.spawnObstacle)
	g.itemSpawn.ArmEvery(g.sched, p.ItemInterval, g.spawnItem)
}

// TickInterval returns the simulated time one Step covers.
func (g *Game) TickInterval() time.Duration {
	return g.cfg.TickInterval()
}

// Step handles the frame's instant actions, then advances the simulated
// clock by one tick, running every timer that falls due.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.input = in.Clone()
	g.handleActions(in)
	if !g.gameOver {
		g.sched.Advance(g.cfg.TickInterval())
	}
	return core.StepResult{State: g.State()}
}

func (g *Game) handleActions(in core.InputFrame) {
	if g.gameOver {
		if in.Has(core.ActionRestart) {
			rt := g.rt
			rt.Seed = g.rng.Int63()
			g.Reset(rt)
		}
		return
	}

	if in.Has(core.ActionConfirm) {
		if g.progress.Pending() {
			g.startNextLevel()
		} else if g.paused {
			g.paused = false
		}
	}
	if in.Has(core.ActionPause) && !g.progress.Pending() {
		g.paused = true
	}
	if in.Has(core.ActionCloak) && g.running() {
		g.char.Cloak()
	}
}

// running reports whether per-tick work should happen.
func (g *Game) running() bool {
	return !g.gameOver && !g.paused && !g.progress.Pending()
}

// update is the fixed-cadence simulation tick. Movement comes first so
// collisions test the updated position.
func (g *Game) update() {
	if !g.running() {
		return
	}
	g.ticks++

	g.char.Move(g.input)
	g.obstacles.Tick()

	if !g.char.Invulnerable() && len(g.obstacles.Collisions(g.char.Hitbox())) > 0 {
		if g.char.Damage() {
			g.endGame()
			return
		}
	}

	for _, it := range g.items.Collisions(g.char.Box()) {
		if e, ok := g.items.Consume(it.ID); ok {
			g.applyEffect(e)
		}
	}

	for _, fd := range g.foods.Collisions(g.char.Position()) {
		if score, ok := g.foods.Consume(fd.ID); ok {
			g.progress.Add(score)
		}
	}
}

func (g *Game) clock() {
	if g.running() {
		g.survival += g.cfg.ClockInterval()
	}
}

func (g *Game) spawnObstacle() {
	if g.running() && !g.cleared.Active() {
		g.obstacles.SpawnOne(g.progress.Params())
	}
}

func (g *Game) spawnItem() {
	if g.running() {
		g.items.Spawn()
	}
}

func (g *Game) spawnFood() {
	if g.running() {
		g.foods.Spawn(g.progress.ScoreWeight())
	}
}

// startNextLevel confirms a pending level-up and rebuilds the field for it.
func (g *Game) startNextLevel() {
	if !g.progress.ConfirmLevelUp() {
		return
	}
	g.char.ResetForLevel()
	g.obstacles.ResetEffects()
	g.cleared.Cancel()

	g.obstacles.ClearAll()
	g.items.Clear()
	g.foods.Clear()

	p := g.progress.Params()
	g.obstacles.SpawnInitial(p)
	g.armSpawners(p)
	g.paused = false
}

// endGame freezes the simulation and records the high score.
func (g *Game) endGame() {
	g.gameOver = true
	if _, err := g.progress.RecordHighScore(g.store); err != nil {
		g.err = err
	}
	g.sched.Stop()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.progress.TotalScore(),
		GameOver: g.gameOver,
		Paused:   g.paused || g.progress.Pending(),
	}
}

// Err returns the last persistence error, if any.
func (g *Game) Err() error {
	return g.err
}

// Stop cancels every pending timer. A stopped game stays frozen until Reset.
func (g *Game) Stop() {
	if g.sched != nil {
		g.sched.Stop()
	}
}

// Paused reports whether the player paused the game.
func (g *Game) Paused() bool { return g.paused }

// LevelUpPending reports whether the game waits for level-up confirmation.
func (g *Game) LevelUpPending() bool { return g.progress.Pending() }

// GameOver reports whether the game has ended.
func (g *Game) GameOver() bool { return g.gameOver }

// Survival returns the time survived while the game was running.
func (g *Game) Survival() time.Duration { return g.survival }

// Ticks returns the number of simulation ticks that ran.
func (g *Game) Ticks() int { return g.ticks }

// HUD returns the values a platform draws around the field.
func (g *Game) HUD() core.HUD {
	high := g.progress.HighScore()
	if t := g.progress.TotalScore(); t > high {
		high = t
	}
	return core.HUD{
		Level:        g.progress.Level(),
		Life:         g.char.Life(),
		MaxLife:      g.cfg.Character.MaxLife,
		Score:        g.progress.Score(),
		LevelUpScore: g.progress.LevelUpScore(),
		TotalScore:   g.progress.TotalScore(),
		HighScore:    high,
		Survival:     g.survival,
		Cloaks:       g.char.Cloaks(),
		Effects:      g.activeEffects(),
	}
}

func (g *Game) activeEffects() []string {
	var out []string
	if g.char.Invulnerable() {
		out = append(out, fmt.Sprintf("invulnerable %.1fs", g.char.InvulnerableRemaining().Seconds()))
	}
	if w := g.obstacles.SpeedWeight(); w != 1 {
		out = append(out, fmt.Sprintf("speed x%.1f %.1fs", w, g.obstacles.SpeedWeightRemaining().Seconds()))
	}
	if g.obstacles.Frozen() {
		out = append(out, fmt.Sprintf("frozen %.1fs", g.obstacles.FreezeRemaining().Seconds()))
	}
	if g.cleared.Active() {
		out = append(out, "cleared")
	}
	return out
}

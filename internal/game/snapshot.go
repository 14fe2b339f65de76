package game

import (
	"encoding/binary"
	"hash/fnv"
	"math"
	"time"

	"github.com/vovakirdan/tui-dodge/internal/core"
)

// Snapshot is a read-only copy of everything a renderer needs for one frame.
type Snapshot struct {
	Canvas   float64
	ItemSize float64

	Character    core.Vec
	Hitbox       core.Box
	Sprite       core.Box
	Invulnerable bool
	Hidden       bool
	Life         int
	Cloaks       int

	Obstacles []Obstacle
	Items     []Item
	Foods     []Food

	Level          int
	Score          int
	LevelUpScore   int
	TotalScore     int
	Paused         bool
	LevelUpPending bool
	GameOver       bool
	Survival       time.Duration
	Now            time.Duration
}

// Snapshot copies the current state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Canvas:         g.cfg.Canvas.Size,
		ItemSize:       g.cfg.Items.Size,
		Character:      g.char.Position(),
		Hitbox:         g.char.Hitbox(),
		Sprite:         g.char.Sprite(),
		Invulnerable:   g.char.Invulnerable(),
		Hidden:         g.char.Hidden(),
		Life:           g.char.Life(),
		Cloaks:         g.char.Cloaks(),
		Obstacles:      g.obstacles.Obstacles(),
		Items:          g.items.Items(),
		Foods:          g.foods.Foods(),
		Level:          g.progress.Level(),
		Score:          g.progress.Score(),
		LevelUpScore:   g.progress.LevelUpScore(),
		TotalScore:     g.progress.TotalScore(),
		Paused:         g.paused,
		LevelUpPending: g.progress.Pending(),
		GameOver:       g.gameOver,
		Survival:       g.survival,
		Now:            g.sched.Now(),
	}
}

// Hash returns an FNV-1a digest of the simulation state. Two runs with the
// same seed and inputs produce the same hash.
func (s Snapshot) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	putF := func(v float64) {
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		h.Write(buf[:])
	}
	putI := func(v int64) {
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
		h.Write(buf[:])
	}
	putB := func(v bool) {
		if v {
			putI(1)
		} else {
			putI(0)
		}
	}

	putF(s.Character.X)
	putF(s.Character.Y)
	putB(s.Invulnerable)
	putB(s.Hidden)
	putI(int64(s.Life))
	putI(int64(s.Cloaks))
	putI(int64(len(s.Obstacles)))
	for _, o := range s.Obstacles {
		putF(o.Pos.X)
		putF(o.Pos.Y)
		putF(o.Vel.X)
		putF(o.Vel.Y)
		putF(o.Size)
	}
	putI(int64(len(s.Items)))
	for _, it := range s.Items {
		putF(it.Pos.X)
		putF(it.Pos.Y)
		putI(int64(it.Effect.Kind))
	}
	putI(int64(len(s.Foods)))
	for _, fd := range s.Foods {
		putF(fd.Pos.X)
		putF(fd.Pos.Y)
		putI(int64(fd.Score))
	}
	putI(int64(s.Level))
	putI(int64(s.Score))
	putI(int64(s.TotalScore))
	putB(s.Paused)
	putB(s.LevelUpPending)
	putB(s.GameOver)
	putI(int64(s.Survival))
	putI(int64(s.Now))
	return h.Sum64()
}

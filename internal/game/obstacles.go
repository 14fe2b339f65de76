package game

import (
	"time"

	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
	"github.com/vovakirdan/tui-dodge/internal/schedule"
)

// Obstacle is a bouncing square that damages the character on contact.
type Obstacle struct {
	ID    uint64
	Pos   core.Vec // Top-left corner
	Vel   core.Vec // Displacement per tick at speed weight 1
	Size  float64
	Color core.Color
	Face  Expression
}

// Box returns the obstacle's bounding box.
func (o Obstacle) Box() core.Box {
	return core.Square(o.Pos, o.Size)
}

// ObstacleField owns the obstacle set and the timed effects that act on it:
// the global speed weight and the freeze.
type ObstacleField struct {
	gen       *generator
	sched     *schedule.Scheduler
	canvas    float64
	obstacles []Obstacle

	weight     float64
	weightSlot schedule.Slot
	frozen     bool
	freezeSlot schedule.Slot
}

func newObstacleField(gen *generator, sched *schedule.Scheduler, canvas float64) *ObstacleField {
	return &ObstacleField{
		gen:       gen,
		sched:     sched,
		canvas:    canvas,
		obstacles: make([]Obstacle, 0, 32),
		weight:    1,
	}
}

// SpawnInitial replaces the set with the level's opening obstacles: all at
// minimum size, stacked on the top-left anchor, moving at the level's max speed.
func (f *ObstacleField) SpawnInitial(p config.LevelParams) {
	f.obstacles = f.obstacles[:0]
	minSize := f.gen.cfg.Obstacles.MinSize
	for i := 0; i < p.InitialObstacles; i++ {
		f.obstacles = append(f.obstacles, f.gen.obstacle(p, minSize, core.Vec{}))
	}
}

// SpawnOne appends a random obstacle away from the character's start.
func (f *ObstacleField) SpawnOne(p config.LevelParams) Obstacle {
	o := f.gen.randomObstacle(p)
	f.obstacles = append(f.obstacles, o)
	return o
}

// Tick moves every obstacle by its velocity times the speed weight. A
// velocity component is negated when the new position lies past a wall and
// the obstacle is still heading outward, so one crossing flips it once.
// Positions are not clamped.
func (f *ObstacleField) Tick() {
	if f.frozen {
		return
	}
	for i := range f.obstacles {
		o := &f.obstacles[i]
		next := o.Pos.Add(o.Vel.Scale(f.weight))
		limit := f.canvas - o.Size
		if (next.X < 0 && o.Vel.X < 0) || (next.X > limit && o.Vel.X > 0) {
			o.Vel.X = -o.Vel.X
		}
		if (next.Y < 0 && o.Vel.Y < 0) || (next.Y > limit && o.Vel.Y > 0) {
			o.Vel.Y = -o.Vel.Y
		}
		o.Pos = next
	}
}

// SetSpeedWeight scales all obstacle motion by w for d, then reverts to 1.
// A new call replaces the pending revert.
func (f *ObstacleField) SetSpeedWeight(w float64, d time.Duration) {
	f.weight = w
	f.weightSlot.Arm(f.sched, d, func() { f.weight = 1 })
}

// SpeedWeight returns the current motion multiplier.
func (f *ObstacleField) SpeedWeight() float64 {
	return f.weight
}

// SpeedWeightRemaining returns how long the current weight lasts.
func (f *ObstacleField) SpeedWeightRemaining() time.Duration {
	return f.weightSlot.Remaining()
}

// Freeze suspends all motion for d. A new call restarts the duration.
func (f *ObstacleField) Freeze(d time.Duration) {
	f.frozen = true
	f.freezeSlot.Arm(f.sched, d, func() { f.frozen = false })
}

// Frozen reports whether motion is suspended.
func (f *ObstacleField) Frozen() bool {
	return f.frozen
}

// FreezeRemaining returns how long the freeze lasts.
func (f *ObstacleField) FreezeRemaining() time.Duration {
	return f.freezeSlot.Remaining()
}

// ResetEffects cancels the speed weight and freeze timers and restores
// normal motion.
func (f *ObstacleField) ResetEffects() {
	f.weightSlot.Cancel()
	f.freezeSlot.Cancel()
	f.weight = 1
	f.frozen = false
}

// ClearAll removes every obstacle.
func (f *ObstacleField) ClearAll() {
	f.obstacles = f.obstacles[:0]
}

// Collisions returns the obstacles overlapping the hitbox.
func (f *ObstacleField) Collisions(hitbox core.Box) []Obstacle {
	var hits []Obstacle
	for _, o := range f.obstacles {
		if hitbox.Intersects(o.Box()) {
			hits = append(hits, o)
		}
	}
	return hits
}

// Obstacles returns a copy of the current set.
func (f *ObstacleField) Obstacles() []Obstacle {
	out := make([]Obstacle, len(f.obstacles))
	copy(out, f.obstacles)
	return out
}

// Len returns the number of obstacles.
func (f *ObstacleField) Len() int {
	return len(f.obstacles)
}

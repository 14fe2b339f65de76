package game

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
	"github.com/vovakirdan/tui-dodge/internal/schedule"
)

// newTestGenerator returns a generator over the default config.
func newTestGenerator(seed int64) *generator {
	cfg := config.DefaultConfig()
	return newGenerator(rand.New(rand.NewSource(seed)), &cfg)
}

func TestExpressionFor(t *testing.T) {
	tests := []struct {
		size  float64
		eyes  Eyes
		mouth Mouth
	}{
		{5, EyesCircle, MouthFrown},
		{25, EyesCircle, MouthFrown},
		{26, EyesCircle, MouthNeutral},
		{30, EyesCircle, MouthNeutral},
		{31, EyesLine, MouthNeutral},
		{40, EyesLine, MouthNeutral},
		{41, EyesLine, MouthSmile},
	}
	for _, tt := range tests {
		e := ExpressionFor(tt.size)
		if e.Eyes != tt.eyes || e.Mouth != tt.mouth {
			t.Errorf("ExpressionFor(%v) = %+v, expected eyes=%d mouth=%d", tt.size, e, tt.eyes, tt.mouth)
		}
	}
}

func TestObstacleSpeedInterpolation(t *testing.T) {
	gen := newTestGenerator(1)
	p := gen.cfg.Level(1) // sizes 5..14, speeds 1..3.5

	tests := []struct {
		name string
		size float64
		want float64
	}{
		{"smallest is fastest", 5, 3.5},
		{"largest is slowest", 14, 1},
		{"midpoint", 9.5, 2.25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := gen.obstacleSpeed(p, tt.size); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("obstacleSpeed(%v) = %v, expected %v", tt.size, got, tt.want)
			}
		})
	}

	t.Run("degenerate range", func(t *testing.T) {
		flat := p
		flat.MaxObstacleSize = gen.cfg.Obstacles.MinSize
		got := gen.obstacleSpeed(flat, gen.cfg.Obstacles.MinSize)
		if math.IsNaN(got) || got != flat.MaxObstacleSpeed {
			t.Errorf("obstacleSpeed with min == max = %v, expected max speed %v", got, flat.MaxObstacleSpeed)
		}
		o := gen.obstacle(flat, gen.cfg.Obstacles.MinSize, core.Vec{})
		if math.IsNaN(o.Vel.X) || math.IsNaN(o.Vel.Y) {
			t.Errorf("velocity is NaN: %+v", o.Vel)
		}
		if o.Color != core.Color(gen.cfg.Obstacles.ColorSmall) {
			t.Errorf("Color = %s, expected %s", o.Color, gen.cfg.Obstacles.ColorSmall)
		}
	})
}

func TestSpawnInitial(t *testing.T) {
	gen := newTestGenerator(7)
	f := newObstacleField(gen, schedule.New(), 400)

	p := gen.cfg.Level(1)
	f.SpawnInitial(p)
	if f.Len() != 4 {
		t.Fatalf("Len() = %d, expected 3 + level = 4", f.Len())
	}
	for _, o := range f.Obstacles() {
		if o.Pos != (core.Vec{}) {
			t.Errorf("initial obstacle at %+v, expected anchor (0,0)", o.Pos)
		}
		if o.Size != 5 {
			t.Errorf("initial obstacle size = %v, expected 5", o.Size)
		}
		if math.Abs(o.Vel.X) > p.MaxObstacleSpeed/2 || math.Abs(o.Vel.Y) > p.MaxObstacleSpeed/2 {
			t.Errorf("velocity %+v exceeds half the max speed", o.Vel)
		}
	}

	// Respawning replaces rather than appends
	f.SpawnInitial(gen.cfg.Level(3))
	if f.Len() != 6 {
		t.Errorf("Len() after level 3 spawn = %d, expected 6", f.Len())
	}
}

func TestSpawnOneKeepsDistance(t *testing.T) {
	gen := newTestGenerator(99)
	f := newObstacleField(gen, schedule.New(), 400)
	p := gen.cfg.Level(2)
	start := gen.start()

	for i := 0; i < 200; i++ {
		o := f.SpawnOne(p)
		if d := o.Pos.Dist(start); d < gen.cfg.Obstacles.SpawnMinDistance {
			t.Fatalf("obstacle %d spawned %v from start, expected >= %v", i, d, gen.cfg.Obstacles.SpawnMinDistance)
		}
		if o.Size < gen.cfg.Obstacles.MinSize || o.Size > p.MaxObstacleSize {
			t.Fatalf("obstacle size %v outside [%v, %v]", o.Size, gen.cfg.Obstacles.MinSize, p.MaxObstacleSize)
		}
	}
}

func TestSafePositionFallback(t *testing.T) {
	gen := newTestGenerator(3)
	p := gen.safePosition(10, 1000, 5)
	corners := map[core.Vec]bool{{X: 0, Y: 0}: true, {X: 390, Y: 0}: true, {X: 0, Y: 390}: true, {X: 390, Y: 390}: true}
	if !corners[p] {
		t.Errorf("fallback position %+v is not a canvas corner", p)
	}
}

func TestObstacleBounce(t *testing.T) {
	tests := []struct {
		name    string
		pos     core.Vec
		vel     core.Vec
		wantVel core.Vec
		wantPos core.Vec
	}{
		{"right wall flips", core.Vec{X: 389, Y: 100}, core.Vec{X: 3, Y: 0}, core.Vec{X: -3, Y: 0}, core.Vec{X: 392, Y: 100}},
		{"left wall flips", core.Vec{X: 1, Y: 100}, core.Vec{X: -2, Y: 0}, core.Vec{X: 2, Y: 0}, core.Vec{X: -1, Y: 100}},
		{"bottom wall flips", core.Vec{X: 100, Y: 389}, core.Vec{X: 0, Y: 2}, core.Vec{X: 0, Y: -2}, core.Vec{X: 100, Y: 391}},
		{"outside but heading in keeps direction", core.Vec{X: 392, Y: 100}, core.Vec{X: -1, Y: 0}, core.Vec{X: -1, Y: 0}, core.Vec{X: 391, Y: 100}},
		{"inside moves freely", core.Vec{X: 100, Y: 100}, core.Vec{X: 1, Y: 1}, core.Vec{X: 1, Y: 1}, core.Vec{X: 101, Y: 101}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newObstacleField(newTestGenerator(1), schedule.New(), 400)
			f.obstacles = append(f.obstacles, Obstacle{Pos: tt.pos, Vel: tt.vel, Size: 10})
			f.Tick()
			o := f.Obstacles()[0]
			if o.Vel != tt.wantVel {
				t.Errorf("Vel = %+v, expected %+v", o.Vel, tt.wantVel)
			}
			if o.Pos != tt.wantPos {
				t.Errorf("Pos = %+v, expected %+v (no clamping)", o.Pos, tt.wantPos)
			}
		})
	}
}

func TestObstacleBounceFlipsOncePerCrossing(t *testing.T) {
	f := newObstacleField(newTestGenerator(1), schedule.New(), 400)
	f.obstacles = append(f.obstacles, Obstacle{Pos: core.Vec{X: 389.5, Y: 200}, Vel: core.Vec{X: 1, Y: 0}, Size: 10})
	f.SetSpeedWeight(0.1, time.Hour)

	flips := 0
	prev := f.obstacles[0].Vel.X
	for i := 0; i < 100; i++ {
		f.Tick()
		if v := f.obstacles[0].Vel.X; v != prev {
			flips++
			prev = v
		}
	}
	if flips != 1 {
		t.Errorf("velocity flipped %d times during one crossing, expected 1", flips)
	}
}

func TestObstacleSpeedWeightAndFreeze(t *testing.T) {
	s := schedule.New()
	f := newObstacleField(newTestGenerator(1), s, 400)
	f.obstacles = append(f.obstacles, Obstacle{Pos: core.Vec{X: 100, Y: 100}, Vel: core.Vec{X: 2, Y: 0}, Size: 10})

	f.SetSpeedWeight(0.5, 100*time.Millisecond)
	f.Tick()
	if x := f.obstacles[0].Pos.X; x != 101 {
		t.Errorf("X at weight 0.5 = %v, expected 101", x)
	}
	s.Advance(100 * time.Millisecond)
	if f.SpeedWeight() != 1 {
		t.Errorf("SpeedWeight() = %v after expiry, expected 1", f.SpeedWeight())
	}
	f.Tick()
	if x := f.obstacles[0].Pos.X; x != 103 {
		t.Errorf("X after revert = %v, expected 103", x)
	}

	f.Freeze(50 * time.Millisecond)
	f.Tick()
	if x := f.obstacles[0].Pos.X; x != 103 {
		t.Errorf("frozen obstacle moved to %v", x)
	}
	s.Advance(30 * time.Millisecond)
	f.Freeze(50 * time.Millisecond) // restart
	s.Advance(30 * time.Millisecond)
	if !f.Frozen() {
		t.Error("freeze should have been restarted by the second call")
	}
	s.Advance(20 * time.Millisecond)
	if f.Frozen() {
		t.Error("freeze should end 50ms after the second call")
	}

	f.SetSpeedWeight(0.1, time.Second)
	f.Freeze(time.Second)
	f.ResetEffects()
	if f.SpeedWeight() != 1 || f.Frozen() {
		t.Error("ResetEffects should restore weight 1 and unfreeze")
	}
	s.Advance(2 * time.Second)
	if s.Pending() != 0 {
		t.Errorf("Pending() = %d, expected ResetEffects to cancel its timers", s.Pending())
	}
}

func TestObstacleCollisions(t *testing.T) {
	f := newObstacleField(newTestGenerator(1), schedule.New(), 400)
	if hits := f.Collisions(core.NewBox(0, 0, 400, 400)); len(hits) != 0 {
		t.Errorf("empty field reported %d collisions", len(hits))
	}

	f.obstacles = append(f.obstacles,
		Obstacle{ID: 1, Pos: core.Vec{X: 100, Y: 100}, Size: 10},
		Obstacle{ID: 2, Pos: core.Vec{X: 200, Y: 200}, Size: 10},
	)
	tests := []struct {
		name   string
		hitbox core.Box
		want   int
	}{
		{"overlap", core.NewBox(108, 108, 5, 5), 1},
		{"touching edge", core.NewBox(110, 100, 5, 5), 0},
		{"miss", core.NewBox(150, 150, 5, 5), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if hits := f.Collisions(tt.hitbox); len(hits) != tt.want {
				t.Errorf("Collisions() = %d hits, expected %d", len(hits), tt.want)
			}
		})
	}
}

func TestItemSpawnCap(t *testing.T) {
	f := newItemField(newTestGenerator(5))
	for i := 0; i < 5; i++ {
		if _, ok := f.Spawn(); !ok {
			t.Fatalf("Spawn() %d refused below the cap", i)
		}
	}
	if _, ok := f.Spawn(); ok {
		t.Error("Spawn() succeeded at the cap")
	}
	if f.Len() != 5 {
		t.Errorf("Len() = %d, expected 5", f.Len())
	}
}

func TestItemSpawnExclusionZone(t *testing.T) {
	gen := newTestGenerator(11)
	f := newItemField(gen)
	start := gen.start()
	kinds := make(map[EffectKind]bool)

	for i := 0; i < 300; i++ {
		it, ok := f.Spawn()
		if !ok {
			f.Clear()
			continue
		}
		if d := it.Pos.Dist(start); d < gen.cfg.Items.ExclusionRadius {
			t.Fatalf("item spawned %v from start, inside the exclusion radius", d)
		}
		kinds[it.Effect.Kind] = true
	}
	if len(kinds) != int(effectKindCount) {
		t.Errorf("saw %d effect kinds in 300 spawns, expected all %d", len(kinds), effectKindCount)
	}
}

func TestItemSpawnFallback(t *testing.T) {
	gen := newTestGenerator(2)
	gen.cfg.Items.SpawnRetries = 0
	gen.cfg.Items.ExclusionRadius = 150

	p := gen.itemPosition()
	if d := p.Dist(gen.start()); math.Abs(d-150) > 1e-9 {
		t.Errorf("fallback position %v from start, expected on the 150 boundary", d)
	}
}

func TestItemCollisionsUseFullBox(t *testing.T) {
	f := newItemField(newTestGenerator(1))
	f.items = append(f.items, Item{ID: 1, Pos: core.Vec{X: 115, Y: 115}, Effect: EffectOf(EffectHeart)})

	// A 5x5 hitbox at (100,100) would miss; the 20x20 box reaches it.
	if hits := f.Collisions(core.NewBox(100, 100, 5, 5)); len(hits) != 0 {
		t.Errorf("hitbox-sized box hit %d items", len(hits))
	}
	if hits := f.Collisions(core.NewBox(100, 100, 20, 20)); len(hits) != 1 {
		t.Errorf("character box hit %d items, expected 1", len(hits))
	}

	e, ok := f.Consume(1)
	if !ok || e.Kind != EffectHeart {
		t.Errorf("Consume(1) = %+v, %v", e, ok)
	}
	if _, ok := f.Consume(1); ok {
		t.Error("second Consume of the same item succeeded")
	}
	if f.Len() != 0 {
		t.Errorf("Len() = %d after consume", f.Len())
	}
}

func TestEffectCatalog(t *testing.T) {
	want := []struct {
		name     string
		duration time.Duration
	}{
		{"ghost", 3000 * time.Millisecond},
		{"bomb", 500 * time.Millisecond},
		{"snail", 1500 * time.Millisecond},
		{"clock", 1000 * time.Millisecond},
		{"magnetic", 0},
		{"heart", 0},
		{"turtle", 3000 * time.Millisecond},
	}
	if int(effectKindCount) != len(want) {
		t.Fatalf("catalog has %d entries, expected %d", effectKindCount, len(want))
	}
	for i := range want {
		e := EffectOf(EffectKind(i))
		if int(e.Kind) != i {
			t.Errorf("catalog[%d].Kind = %d", i, e.Kind)
		}
		if e.Name != want[i].name || e.Duration != want[i].duration {
			t.Errorf("catalog[%d] = %s/%v, expected %s/%v", i, e.Name, e.Duration, want[i].name, want[i].duration)
		}
		if e.Glyph == 0 {
			t.Errorf("catalog[%d] has no glyph", i)
		}
		if e.Kind.String() != e.Name {
			t.Errorf("Kind.String() = %s, expected %s", e.Kind.String(), e.Name)
		}
	}
}

func TestFoodSpawnValues(t *testing.T) {
	f := newFoodField(newTestGenerator(21))
	for i := 0; i < 200; i++ {
		fd := f.Spawn(3)
		if fd.Size < 5 || fd.Size > 12.5 {
			t.Fatalf("food size %v outside [5, 12.5]", fd.Size)
		}
		bonus := fd.Score - 30
		if bonus < 0 || bonus > 15 {
			t.Fatalf("food score %d outside [30, 45] at weight 3", fd.Score)
		}
		if fd.Size != 5+float64(bonus)/2 {
			t.Fatalf("food size %v does not match bonus %d", fd.Size, bonus)
		}
		if fd.Pos.X < 0 || fd.Pos.X >= 380 || fd.Pos.Y < 0 || fd.Pos.Y >= 380 {
			t.Fatalf("food position %+v outside [0, 380)", fd.Pos)
		}
	}
}

func TestFoodTouchesIsStrict(t *testing.T) {
	f := newFoodField(newTestGenerator(1))
	fd := Food{Pos: core.Vec{X: 100, Y: 100}, Size: 5} // margin 5 + 10

	tests := []struct {
		pos  core.Vec
		want bool
	}{
		{core.Vec{X: 100, Y: 100}, true},
		{core.Vec{X: 114.9, Y: 85.1}, true},
		{core.Vec{X: 115, Y: 100}, false},
		{core.Vec{X: 100, Y: 85}, false},
	}
	for _, tt := range tests {
		if got := f.Touches(fd, tt.pos); got != tt.want {
			t.Errorf("Touches(%+v) = %v, expected %v", tt.pos, got, tt.want)
		}
	}
}

func TestFoodConsumeAndCollectAll(t *testing.T) {
	f := newFoodField(newTestGenerator(1))
	f.foods = append(f.foods,
		Food{ID: 1, Pos: core.Vec{X: 10, Y: 10}, Size: 5, Score: 12},
		Food{ID: 2, Pos: core.Vec{X: 300, Y: 300}, Size: 5, Score: 20},
		Food{ID: 3, Pos: core.Vec{X: 200, Y: 10}, Size: 5, Score: 8},
	)

	if hits := f.Collisions(core.Vec{X: 12, Y: 12}); len(hits) != 1 || hits[0].ID != 1 {
		t.Fatalf("Collisions() = %+v, expected food 1", hits)
	}
	if score, ok := f.Consume(1); !ok || score != 12 {
		t.Errorf("Consume(1) = %d, %v", score, ok)
	}
	if total := f.CollectAll(); total != 28 {
		t.Errorf("CollectAll() = %d, expected 28", total)
	}
	if f.Len() != 0 {
		t.Errorf("Len() = %d after CollectAll", f.Len())
	}
	if total := f.CollectAll(); total != 0 {
		t.Errorf("CollectAll() on empty field = %d", total)
	}
}

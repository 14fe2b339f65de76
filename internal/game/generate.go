package game

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
)

// Eyes is the eye style of an obstacle face.
type Eyes uint8

const (
	EyesCircle Eyes = iota
	EyesLine
)

// Mouth is the mouth style of an obstacle face.
type Mouth uint8

const (
	MouthFrown Mouth = iota
	MouthNeutral
	MouthSmile
)

// Expression is the face drawn on large obstacles.
type Expression struct {
	Eyes  Eyes
	Mouth Mouth
}

// ExpressionFor derives the face from obstacle size.
func ExpressionFor(size float64) Expression {
	e := Expression{Eyes: EyesCircle, Mouth: MouthFrown}
	if size > 30 {
		e.Eyes = EyesLine
	}
	switch {
	case size > 40:
		e.Mouth = MouthSmile
	case size > 25:
		e.Mouth = MouthNeutral
	}
	return e
}

// generator produces entities from one shared RNG so a seed fixes the whole run.
type generator struct {
	rng    *rand.Rand
	cfg    *config.DodgeConfig
	nextID uint64
}

func newGenerator(rng *rand.Rand, cfg *config.DodgeConfig) *generator {
	return &generator{rng: rng, cfg: cfg}
}

func (g *generator) id() uint64 {
	g.nextID++
	return g.nextID
}

// start is the character's spawn point, also the center of the exclusion zones.
func (g *generator) start() core.Vec {
	c := (g.cfg.Canvas.Size - g.cfg.Character.Size) / 2
	return core.Vec{X: c, Y: c}
}

// randomPosition samples a top-left corner so a size×size box fits the canvas.
func (g *generator) randomPosition(size float64) core.Vec {
	span := math.Max(g.cfg.Canvas.Size-size, 0)
	return core.Vec{X: g.rng.Float64() * span, Y: g.rng.Float64() * span}
}

// safePosition samples until the point is at least minDist from start.
// After retries attempts it returns the canvas corner farthest from start.
func (g *generator) safePosition(size, minDist float64, retries int) core.Vec {
	center := g.start()
	for i := 0; i < retries; i++ {
		p := g.randomPosition(size)
		if p.Dist(center) >= minDist {
			return p
		}
	}
	far := math.Max(g.cfg.Canvas.Size-size, 0)
	best := core.Vec{}
	for _, c := range []core.Vec{{X: 0, Y: 0}, {X: far, Y: 0}, {X: 0, Y: far}, {X: far, Y: far}} {
		if c.Dist(center) > best.Dist(center) {
			best = c
		}
	}
	return best
}

// obstacleSpeed falls linearly from the level's max speed at min size to
// min speed at max size. A degenerate size range yields the max speed.
func (g *generator) obstacleSpeed(p config.LevelParams, size float64) float64 {
	oc := g.cfg.Obstacles
	ratio := core.Ratio(size, oc.MinSize, p.MaxObstacleSize)
	return core.Lerp(p.MaxObstacleSpeed, oc.MinSpeed, ratio)
}

// obstacle builds an obstacle of the given size at pos.
func (g *generator) obstacle(p config.LevelParams, size float64, pos core.Vec) Obstacle {
	oc := g.cfg.Obstacles
	ratio := core.Ratio(size, oc.MinSize, p.MaxObstacleSize)
	speed := g.obstacleSpeed(p, size)
	color := core.InterpolateColor(core.Color(oc.ColorSmall), core.Color(oc.ColorLarge), ratio)
	return Obstacle{
		ID:    g.id(),
		Pos:   pos,
		Vel:   core.Vec{X: (g.rng.Float64() - 0.5) * speed, Y: (g.rng.Float64() - 0.5) * speed},
		Size:  size,
		Color: color,
		Face:  ExpressionFor(size),
	}
}

func (g *generator) randomObstacle(p config.LevelParams) Obstacle {
	oc := g.cfg.Obstacles
	size := oc.MinSize + g.rng.Float64()*(p.MaxObstacleSize-oc.MinSize)
	pos := g.safePosition(size, oc.SpawnMinDistance, oc.SpawnRetries)
	return g.obstacle(p, size, pos)
}

// itemPosition samples outside the exclusion circle around start. When no
// sample lands outside it falls back to a point on the circle itself.
func (g *generator) itemPosition() core.Vec {
	ic := g.cfg.Items
	center := g.start()
	for i := 0; i < ic.SpawnRetries; i++ {
		p := g.randomPosition(ic.Size)
		if p.Dist(center) >= ic.ExclusionRadius {
			return p
		}
	}
	theta := g.rng.Float64() * 2 * math.Pi
	span := math.Max(g.cfg.Canvas.Size-ic.Size, 0)
	return core.Vec{
		X: core.ClampF(center.X+ic.ExclusionRadius*math.Cos(theta), 0, span),
		Y: core.ClampF(center.Y+ic.ExclusionRadius*math.Sin(theta), 0, span),
	}
}

func (g *generator) item() Item {
	pos := g.itemPosition()
	return Item{
		ID:     g.id(),
		Pos:    pos,
		Effect: EffectOf(EffectKind(g.rng.Intn(int(effectKindCount)))),
	}
}

func (g *generator) food(scoreWeight int) Food {
	fc := g.cfg.Food
	bonus := int(math.Round(g.rng.Float64() * float64(fc.MaxBonus)))
	span := math.Max(g.cfg.Canvas.Size-fc.EdgeMargin, 0)
	return Food{
		ID:    g.id(),
		Pos:   core.Vec{X: g.rng.Float64() * span, Y: g.rng.Float64() * span},
		Size:  fc.BaseSize + float64(bonus)/2,
		Score: bonus + fc.ScorePerWeight*scoreWeight,
	}
}

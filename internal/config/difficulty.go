package config

import (
	"math"
	"time"
)

// LevelParams holds the values that scale with the current level.
type LevelParams struct {
	Level            int
	InitialObstacles int
	MaxObstacleSize  float64
	MaxObstacleSpeed float64
	ObstacleInterval time.Duration
	ItemInterval     time.Duration
	ScoreWeight      int
	LevelUpScore     int
}

// Level computes the parameters for level n (1-based). Values of n below 1
// are treated as level 1.
func (c DodgeConfig) Level(n int) LevelParams {
	if n < 1 {
		n = 1
	}
	lvl := float64(n)
	o := c.Obstacles

	maxSize := o.BaseMaxSize + o.MaxSizePerLevel*lvl
	if maxSize < o.MinSize {
		maxSize = o.MinSize
	}
	scale := c.Difficulty.SpeedScale
	if scale <= 0 {
		scale = 1
	}
	maxSpeed := (o.BaseMaxSpeed + o.MaxSpeedPerLevel*lvl) * scale
	if maxSpeed < o.MinSpeed {
		maxSpeed = o.MinSpeed
	}

	weight := c.ScoreWeight(n)
	return LevelParams{
		Level:            n,
		InitialObstacles: o.BaseCount + n,
		MaxObstacleSize:  maxSize,
		MaxObstacleSpeed: maxSpeed,
		ObstacleInterval: scaledInterval(o.SpawnIntervalMS, o.SpawnIntervalDecay, lvl),
		ItemInterval:     scaledInterval(c.Items.SpawnIntervalMS, c.Items.SpawnIntervalGrowth, lvl),
		ScoreWeight:      weight,
		LevelUpScore:     c.Scoring.LevelUpBase * weight,
	}
}

// ScoreWeight returns round(weight_base^(level-1)), never below 1.
func (c DodgeConfig) ScoreWeight(level int) int {
	if level < 1 {
		level = 1
	}
	w := int(math.Round(math.Pow(c.Scoring.WeightBase, float64(level-1))))
	if w < 1 {
		w = 1
	}
	return w
}

// FoodInterval returns the food spawn cadence.
func (c DodgeConfig) FoodInterval() time.Duration {
	return ms(c.Food.SpawnIntervalMS)
}

// TickInterval returns the main update cadence.
func (c DodgeConfig) TickInterval() time.Duration {
	return ms(c.Loop.TickMS)
}

// ClockInterval returns the survival clock cadence.
func (c DodgeConfig) ClockInterval() time.Duration {
	return ms(c.Loop.ClockMS)
}

// scaledInterval returns round(base * factor^level) milliseconds, at least 1ms.
func scaledInterval(baseMS int, factor, level float64) time.Duration {
	if factor <= 0 {
		factor = 1
	}
	v := math.Round(float64(baseMS) * math.Pow(factor, level))
	return ms(int(clampF(v, 1, math.MaxInt32)))
}

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}

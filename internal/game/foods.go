package game

import (
	"github.com/vovakirdan/tui-dodge/internal/core"
)

// Food is a score pickup.
type Food struct {
	ID    uint64
	Pos   core.Vec
	Size  float64
	Score int
}

// FoodField owns the food on the field. Spawn cadence and gating belong to
// the caller.
type FoodField struct {
	gen   *generator
	reach float64 // Half the character size, added to each food's capture margin
	foods []Food
}

func newFoodField(gen *generator) *FoodField {
	return &FoodField{
		gen:   gen,
		reach: gen.cfg.Character.Size / 2,
		foods: make([]Food, 0, 64),
	}
}

// Spawn appends one food valued for the given score weight.
func (f *FoodField) Spawn(scoreWeight int) Food {
	fd := f.gen.food(scoreWeight)
	f.foods = append(f.foods, fd)
	return fd
}

// Touches reports whether pos lies strictly inside the food's capture box,
// the food position inflated by size + reach on every side.
func (f *FoodField) Touches(fd Food, pos core.Vec) bool {
	m := fd.Size + f.reach
	return pos.X < fd.Pos.X+m && pos.X > fd.Pos.X-m &&
		pos.Y < fd.Pos.Y+m && pos.Y > fd.Pos.Y-m
}

// Collisions returns the food within reach of the character position.
func (f *FoodField) Collisions(pos core.Vec) []Food {
	var hits []Food
	for _, fd := range f.foods {
		if f.Touches(fd, pos) {
			hits = append(hits, fd)
		}
	}
	return hits
}

// Consume removes the food and returns its score.
func (f *FoodField) Consume(id uint64) (int, bool) {
	for i, fd := range f.foods {
		if fd.ID == id {
			f.foods = append(f.foods[:i], f.foods[i+1:]...)
			return fd.Score, true
		}
	}
	return 0, false
}

// CollectAll removes every food and returns the summed score.
func (f *FoodField) CollectAll() int {
	total := 0
	for _, fd := range f.foods {
		total += fd.Score
	}
	f.foods = f.foods[:0]
	return total
}

// Clear removes every food without scoring it.
func (f *FoodField) Clear() {
	f.foods = f.foods[:0]
}

// Foods returns a copy of the food on the field.
func (f *FoodField) Foods() []Food {
	out := make([]Food, len(f.foods))
	copy(out, f.foods)
	return out
}

// Len returns the number of foods.
func (f *FoodField) Len() int {
	return len(f.foods)
}

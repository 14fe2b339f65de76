package game

import (
	"time"

	"github.com/vovakirdan/tui-dodge/internal/core"
)

// EffectKind identifies a power-up.
type EffectKind uint8

const (
	EffectGhost EffectKind = iota
	EffectBomb
	EffectSnail
	EffectClock
	EffectMagnetic
	EffectHeart
	EffectTurtle
	effectKindCount
)

// Effect describes what a picked-up item does and for how long.
type Effect struct {
	Kind     EffectKind
	Name     string
	Duration time.Duration // Zero for instant effects
	Glyph    rune
}

var effectCatalog = [effectKindCount]Effect{
	EffectGhost:    {EffectGhost, "ghost", 3000 * time.Millisecond, 'G'},
	EffectBomb:     {EffectBomb, "bomb", 500 * time.Millisecond, 'B'},
	EffectSnail:    {EffectSnail, "snail", 1500 * time.Millisecond, '@'},
	EffectClock:    {EffectClock, "clock", 1000 * time.Millisecond, 'C'},
	EffectMagnetic: {EffectMagnetic, "magnetic", 0, 'M'},
	EffectHeart:    {EffectHeart, "heart", 0, '♥'},
	EffectTurtle:   {EffectTurtle, "turtle", 3000 * time.Millisecond, 'T'},
}

// String returns the effect name.
func (k EffectKind) String() string {
	if k >= effectKindCount {
		return "unknown"
	}
	return effectCatalog[k].Name
}

// EffectOf returns the catalog entry for a kind.
func EffectOf(k EffectKind) Effect {
	return effectCatalog[k]
}

// Item is a power-up waiting on the field.
type Item struct {
	ID     uint64
	Pos    core.Vec
	Effect Effect
}

// ItemField owns the live items.
type ItemField struct {
	gen   *generator
	size  float64
	cap   int
	items []Item
}

func newItemField(gen *generator) *ItemField {
	return &ItemField{
		gen:   gen,
		size:  gen.cfg.Items.Size,
		cap:   gen.cfg.Items.Cap,
		items: make([]Item, 0, gen.cfg.Items.Cap),
	}
}

// Spawn adds one random item unless the field is at capacity.
func (f *ItemField) Spawn() (Item, bool) {
	if len(f.items) >= f.cap {
		return Item{}, false
	}
	it := f.gen.item()
	f.items = append(f.items, it)
	return it, true
}

// Box returns the item's bounding box.
func (f *ItemField) Box(it Item) core.Box {
	return core.Square(it.Pos, f.size)
}

// Collisions returns the items overlapping box. Callers pass the full
// character box, not the damage hitbox.
func (f *ItemField) Collisions(box core.Box) []Item {
	var hits []Item
	for _, it := range f.items {
		if box.Intersects(f.Box(it)) {
			hits = append(hits, it)
		}
	}
	return hits
}

// Consume removes the item and returns its effect. It reports false when
// the item is already gone.
func (f *ItemField) Consume(id uint64) (Effect, bool) {
	for i, it := range f.items {
		if it.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return it.Effect, true
		}
	}
	return Effect{}, false
}

// Clear removes every item.
func (f *ItemField) Clear() {
	f.items = f.items[:0]
}

// Items returns a copy of the live items.
func (f *ItemField) Items() []Item {
	out := make([]Item, len(f.items))
	copy(out, f.items)
	return out
}

// Len returns the number of live items.
func (f *ItemField) Len() int {
	return len(f.items)
}

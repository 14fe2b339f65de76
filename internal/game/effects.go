package game

// effectHandler applies a picked-up effect to the running game.
type effectHandler func(g *Game, e Effect)

// effectHandlers is indexed by EffectKind; every kind must have an entry.
var effectHandlers = [effectKindCount]effectHandler{
	EffectGhost: func(g *Game, e Effect) {
		g.char.MakeInvulnerable(e.Duration)
	},
	EffectBomb: func(g *Game, e Effect) {
		g.obstacles.ClearAll()
		g.cleared.Arm(g.sched, e.Duration, func() {})
	},
	EffectSnail: func(g *Game, e Effect) {
		g.obstacles.SetSpeedWeight(0.1, e.Duration)
	},
	EffectClock: func(g *Game, e Effect) {
		g.obstacles.Freeze(e.Duration)
	},
	EffectMagnetic: func(g *Game, _ Effect) {
		g.progress.Add(g.foods.CollectAll())
	},
	EffectHeart: func(g *Game, _ Effect) {
		g.char.Heal(1)
	},
	EffectTurtle: func(g *Game, e Effect) {
		g.obstacles.SetSpeedWeight(0.5, e.Duration)
	},
}

func (g *Game) applyEffect(e Effect) {
	if e.Kind >= effectKindCount {
		return
	}
	if h := effectHandlers[e.Kind]; h != nil {
		h(g, e)
	}
}

package game

import (
	"time"

	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/core"
	"github.com/vovakirdan/tui-dodge/internal/schedule"
)

// Character is the player: position, lives, cloaks and the invulnerability
// window. Pos is the top-left of the damage hitbox; the pickup box and the
// clamp range share that anchor, and the sprite is drawn centered on the
// hitbox.
type Character struct {
	cfg    config.CharacterConfig
	canvas float64
	start  core.Vec
	sched  *schedule.Scheduler

	pos    core.Vec
	life   int
	cloaks int

	invulnerable bool
	invulnSlot   schedule.Slot
	hidden       bool // Blink phase, cosmetic only
	blinkSlot    schedule.Slot
	blinkEndSlot schedule.Slot
}

func newCharacter(cfg config.CharacterConfig, canvas float64, sched *schedule.Scheduler) *Character {
	c := (canvas - cfg.Size) / 2
	return &Character{
		cfg:    cfg,
		canvas: canvas,
		start:  core.Vec{X: c, Y: c},
		sched:  sched,
		pos:    core.Vec{X: c, Y: c},
		life:   cfg.StartLife,
		cloaks: cfg.Cloaks,
	}
}

// Speed returns the per-tick step for the held modifiers. Fast wins over slow.
func (c *Character) Speed(in core.InputFrame) float64 {
	switch {
	case in.Has(core.ActionFast):
		return c.cfg.FastSpeed
	case in.Has(core.ActionSlow):
		return c.cfg.SlowSpeed
	default:
		return c.cfg.NormalSpeed
	}
}

// Move applies directional intent and the stick vector, then clamps the
// position to the canvas.
func (c *Character) Move(in core.InputFrame) {
	speed := c.Speed(in)
	if in.Has(core.ActionUp) {
		c.pos.Y -= speed
	}
	if in.Has(core.ActionDown) {
		c.pos.Y += speed
	}
	if in.Has(core.ActionLeft) {
		c.pos.X -= speed
	}
	if in.Has(core.ActionRight) {
		c.pos.X += speed
	}
	if in.HasStick {
		c.pos = c.pos.Add(in.Stick.Scale(c.cfg.FastSpeed))
	}
	c.clamp()
}

func (c *Character) clamp() {
	limit := c.canvas - c.cfg.Size
	c.pos.X = core.ClampF(c.pos.X, 0, limit)
	c.pos.Y = core.ClampF(c.pos.Y, 0, limit)
}

// Position returns the hitbox anchor.
func (c *Character) Position() core.Vec {
	return c.pos
}

// Hitbox returns the damage box.
func (c *Character) Hitbox() core.Box {
	return core.Square(c.pos, c.cfg.HitboxSize)
}

// Box returns the pickup box, larger than the hitbox.
func (c *Character) Box() core.Box {
	return core.Square(c.pos, c.cfg.Size)
}

// Sprite returns the drawn box, centered on the hitbox.
func (c *Character) Sprite() core.Box {
	off := c.cfg.Size/2 - c.cfg.HitboxSize/2
	return core.NewBox(c.pos.X-off, c.pos.Y-off, c.cfg.Size, c.cfg.Size)
}

// Recenter moves the character back to its start.
func (c *Character) Recenter() {
	c.pos = c.start
}

// Life returns the remaining lives.
func (c *Character) Life() int { return c.life }

// Cloaks returns the remaining manual cloaks.
func (c *Character) Cloaks() int { return c.cloaks }

// Hidden reports the blink phase. It never affects collisions.
func (c *Character) Hidden() bool { return c.hidden }

// Invulnerable reports whether obstacle damage is ignored.
func (c *Character) Invulnerable() bool { return c.invulnerable }

// InvulnerableRemaining returns how long invulnerability lasts.
func (c *Character) InvulnerableRemaining() time.Duration {
	return c.invulnSlot.Remaining()
}

// MakeInvulnerable grants invulnerability for d, restarting any running window.
func (c *Character) MakeInvulnerable(d time.Duration) {
	c.invulnerable = true
	c.invulnSlot.Arm(c.sched, d, func() { c.invulnerable = false })
}

// Cloak spends one cloak for a short invulnerability window. It does nothing
// when no cloaks remain or the character is already invulnerable.
func (c *Character) Cloak() bool {
	if c.cloaks <= 0 || c.invulnerable {
		return false
	}
	c.cloaks--
	c.MakeInvulnerable(ms(c.cfg.CloakMS))
	return true
}

// Damage takes one life. With one life left the character dies: life drops
// to zero and Damage returns true. Otherwise the character respawns at the
// start, blinks and becomes invulnerable.
func (c *Character) Damage() (dead bool) {
	if c.life <= 1 {
		c.life = 0
		return true
	}
	c.life--
	c.Recenter()
	c.blink(ms(c.cfg.BlinkIntervalMS), ms(c.cfg.BlinkMS))
	c.MakeInvulnerable(ms(c.cfg.DamageInvulnerableMS))
	return false
}

// blink toggles hidden every interval until d elapses, then shows the sprite.
func (c *Character) blink(interval, d time.Duration) {
	c.blinkSlot.ArmEvery(c.sched, interval, func() { c.hidden = !c.hidden })
	c.blinkEndSlot.Arm(c.sched, d, func() {
		c.blinkSlot.Cancel()
		c.hidden = false
	})
}

// Heal adds n lives up to the maximum.
func (c *Character) Heal(n int) {
	c.life = core.Min(c.life+n, c.cfg.MaxLife)
}

// ResetForLevel restores cloaks, ends invulnerability and blinking, and
// recenters the character. Lives carry over.
func (c *Character) ResetForLevel() {
	c.cloaks = c.cfg.Cloaks
	c.invulnSlot.Cancel()
	c.invulnerable = false
	c.blinkSlot.Cancel()
	c.blinkEndSlot.Cancel()
	c.hidden = false
	c.Recenter()
}

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}

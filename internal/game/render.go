package game

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-dodge/internal/core"
)

// Visual characters for rendering
const (
	ObstacleChar  = '█'
	CharacterChar = '▒'
	HitboxChar    = '◆'
	FoodChar      = '•'
	LifeChar      = '♥'
	LostLifeChar  = '♡'
)

// arena maps canvas space onto the terminal cells inside the border.
// Terminal cells are about twice as tall as wide, so the square canvas
// gets twice as many columns as rows.
type arena struct {
	x, y       int // Top-left inner cell
	cols, rows int
	sx, sy     float64 // Cells per canvas unit
}

func fitArena(w, h int, canvas float64) (arena, bool) {
	availW, availH := w-2, h-1-2 // Border on both sides, status row on top
	rows := availH
	cols := rows * 2
	if cols > availW {
		cols = availW
		rows = cols / 2
	}
	if rows < 1 || cols < 1 || canvas <= 0 {
		return arena{}, false
	}
	return arena{
		x:    (w - cols) / 2,
		y:    2 + (availH-rows)/2,
		cols: cols,
		rows: rows,
		sx:   float64(cols) / canvas,
		sy:   float64(rows) / canvas,
	}, true
}

// cells converts a canvas box to an inclusive cell range clipped to the
// arena. Every box covers at least one cell.
func (a arena) cells(b core.Box) (x0, y0, x1, y1 int) {
	x0 = int(math.Floor(b.X * a.sx))
	y0 = int(math.Floor(b.Y * a.sy))
	x1 = core.Max(x0, int(math.Ceil(b.Right()*a.sx))-1)
	y1 = core.Max(y0, int(math.Ceil(b.Bottom()*a.sy))-1)
	x0 = core.Clamp(x0, 0, a.cols-1)
	x1 = core.Clamp(x1, 0, a.cols-1)
	y0 = core.Clamp(y0, 0, a.rows-1)
	y1 = core.Clamp(y1, 0, a.rows-1)
	return x0 + a.x, y0 + a.y, x1 + a.x, y1 + a.y
}

func (a arena) point(p core.Vec) (int, int) {
	x := core.Clamp(int(p.X*a.sx), 0, a.cols-1)
	y := core.Clamp(int(p.Y*a.sy), 0, a.rows-1)
	return x + a.x, y + a.y
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	s := g.Snapshot()

	g.drawStatus(dst, s)

	a, ok := fitArena(dst.Width(), dst.Height(), s.Canvas)
	if !ok {
		return
	}
	dst.DrawBox(a.x-1, a.y-1, a.cols+2, a.rows+2, core.ColorGray)

	for _, fd := range s.Foods {
		x, y := a.point(fd.Pos)
		dst.SetColored(x, y, FoodChar, core.ColorGreen)
	}

	for _, it := range s.Items {
		x, y := a.point(core.Square(it.Pos, s.ItemSize).Center())
		dst.SetColored(x, y, it.Effect.Glyph, core.ColorYellow)
	}

	for _, o := range s.Obstacles {
		g.drawObstacle(dst, a, o, s.Invulnerable)
	}

	g.drawCharacter(dst, a, s)

	switch {
	case s.GameOver:
		g.drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Total: %d  |  Time: %.2fs  |  Press R to restart", s.TotalScore, s.Survival.Seconds()))
	case s.LevelUpPending:
		g.drawCenteredMessage(dst, fmt.Sprintf("Level %d Cleared!", s.Level), "Press Enter for the next level")
	case s.Paused:
		g.drawCenteredMessage(dst, "PAUSED", "Press Enter to resume")
	}
}

// drawStatus writes the one-line HUD on the top row.
func (g *Game) drawStatus(dst *core.Screen, s Snapshot) {
	lost := core.Max(g.cfg.Character.MaxLife-s.Life, 0)
	hearts := strings.Repeat(string(LifeChar), s.Life) + strings.Repeat(string(LostLifeChar), lost)
	status := fmt.Sprintf(" Lv %d  %s  Score %d/%d  Total %d  Cloak %d  %.2fs ",
		s.Level, hearts, s.Score, s.LevelUpScore, s.TotalScore, s.Cloaks, s.Survival.Seconds())
	dst.DrawText(0, 0, status)
}

// drawObstacle fills the obstacle's cells and, when it is large enough,
// draws a face on it. While the character is invulnerable obstacles are
// tinted pink.
func (g *Game) drawObstacle(dst *core.Screen, a arena, o Obstacle, tint bool) {
	color := o.Color
	if tint {
		color = core.ColorPink
	}
	x0, y0, x1, y1 := a.cells(o.Box())
	dst.DrawRect(x0, y0, x1-x0+1, y1-y0+1, ObstacleChar, color)

	w, h := x1-x0+1, y1-y0+1
	if o.Size <= 20 || w < 3 || h < 2 {
		return
	}
	eye := 'o'
	if o.Face.Eyes == EyesLine {
		eye = '-'
	}
	mouth := '◠'
	switch o.Face.Mouth {
	case MouthSmile:
		mouth = '◡'
	case MouthNeutral:
		mouth = '─'
	}
	eyeY := y0 + h/3
	mouthY := core.Max(y0+(2*h)/3, eyeY+1)
	dst.SetColored(x0+w/3, eyeY, eye, core.ColorBlack)
	dst.SetColored(x1-w/3, eyeY, eye, core.ColorBlack)
	dst.SetColored(x0+w/2, core.Min(mouthY, y1), mouth, core.ColorBlack)
}

// drawCharacter draws the sprite, skipped during the hidden blink phase,
// and the hitbox on top of it.
func (g *Game) drawCharacter(dst *core.Screen, a arena, s Snapshot) {
	if !s.Hidden {
		color := core.ColorWhite
		if s.Invulnerable {
			color = core.ColorBlue
		}
		x0, y0, x1, y1 := a.cells(s.Sprite)
		dst.DrawRect(x0, y0, x1-x0+1, y1-y0+1, CharacterChar, color)
	}
	x, y := a.point(s.Hitbox.Center())
	dst.SetColored(x, y, HitboxChar, core.ColorYellow)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	titleW := len([]rune(title))
	subtitleW := len([]rune(subtitle))

	// Calculate box dimensions
	boxW := core.Max(titleW, subtitleW) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box
	dst.DrawRect(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH, core.ColorWhite)

	// Draw text
	dst.DrawTextColored(boxX+(boxW-titleW)/2, boxY+1, title, core.ColorYellow)
	dst.DrawText(boxX+(boxW-subtitleW)/2, boxY+3, subtitle)
}

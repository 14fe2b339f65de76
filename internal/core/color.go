package core

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is a "#rrggbb" hex color. The empty string means the terminal default.
type Color string

// Colors used by the renderer.
const (
	ColorDefault Color = ""
	ColorBlack   Color = "#000000"
	ColorWhite   Color = "#ffffff"
	ColorBlue    Color = "#3b82f6"
	ColorGreen   Color = "#22c55e"
	ColorYellow  Color = "#facc15"
	ColorPink    Color = "#ffc0cb"
	ColorGray    Color = "#6b7280"
	ColorOrange  Color = "#f97316"
)

// InterpolateColor mixes two hex colors in RGB space.
// Ratio 0 yields from, ratio 1 yields to. Ratios outside [0, 1] are clamped.
// Unparseable input degrades to black.
func InterpolateColor(from, to Color, ratio float64) Color {
	ratio = ClampF(ratio, 0, 1)
	a, err := colorful.Hex(string(from))
	if err != nil {
		a = colorful.Color{}
	}
	b, err := colorful.Hex(string(to))
	if err != nil {
		b = colorful.Color{}
	}
	switch ratio {
	case 0:
		return Color(a.Hex())
	case 1:
		return Color(b.Hex())
	}
	return Color(a.BlendRgb(b, ratio).Clamped().Hex())
}

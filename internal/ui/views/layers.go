package views

import (
	"math"

	"github.com/charmbracelet/lipgloss"

	"edgebubble/internal/geometry"
)

// Round converts a float rect to whole cells
func Round(r geometry.Rect) (x, y, w, h int) {
	return int(math.Round(r.X)), int(math.Round(r.Y)), int(math.Round(r.Width)), int(math.Round(r.Height))
}

// DrawBubble paints the bubble box with its label centred on the middle row
func DrawBubble(c *Canvas, s *Styles, r geometry.Rect, label string, grabbed bool) {
	x, y, w, h := Round(r)
	style := s.Bubble
	border := lipgloss.RoundedBorder()
	if grabbed {
		style = s.BubbleGrabbed
		border = lipgloss.ThickBorder()
	}

	c.Fill(x, y, w, h, ' ', lipgloss.NewStyle())
	c.Box(x, y, w, h, border, style)

	inner := w - 2
	runes := []rune(label)
	if inner <= 0 || h < 3 {
		return
	}
	if len(runes) > inner {
		runes = runes[:inner]
	}
	lx := x + 1 + (inner-len(runes))/2
	c.DrawString(lx, y+h/2, string(runes), s.Label)
}

// DrawBorder paints the drag indicator: a frame around the whole viewport
func DrawBorder(c *Canvas, s *Styles, vp geometry.Viewport) {
	w, h := int(vp.Width), int(vp.Height)
	c.Box(0, 0, w, h, lipgloss.NormalBorder(), s.Border)
}

// ShadowFrame is what the shadow overlay needs to paint itself
type ShadowFrame struct {
	Direction geometry.Direction
	Rect      geometry.Rect
}

// DrawShadow paints a two-cell shadow on the side of the bubble facing the
// edge it is heading toward
func DrawShadow(c *Canvas, s *Styles, f ShadowFrame) {
	x, y, w, h := Round(f.Rect)
	switch f.Direction {
	case geometry.Right:
		c.VLine(x+w, y, h, '▓', s.ShadowNear)
		c.VLine(x+w+1, y, h, '░', s.ShadowFar)
	case geometry.Left:
		c.VLine(x-1, y, h, '▓', s.ShadowNear)
		c.VLine(x-2, y, h, '░', s.ShadowFar)
	case geometry.Top:
		c.HLine(x, y-1, w, '▓', s.ShadowNear)
		c.HLine(x, y-2, w, '░', s.ShadowFar)
	case geometry.Bottom:
		c.HLine(x, y+h, w, '▓', s.ShadowNear)
		c.HLine(x, y+h+1, w, '░', s.ShadowFar)
	}
}

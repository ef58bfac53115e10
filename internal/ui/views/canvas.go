package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// cell is one screen position. style indexes Canvas.styles, 0 means unstyled.
type cell struct {
	r     rune
	style int
}

// Canvas is a fixed-size grid of styled runes that layers are painted onto
// back to front. Writes outside the grid are clipped.
type Canvas struct {
	width  int
	height int
	cells  []cell
	styles []lipgloss.Style
}

// NewCanvas creates a blank canvas
func NewCanvas(width, height int) *Canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	c := &Canvas{
		width:  width,
		height: height,
		cells:  make([]cell, width*height),
		styles: []lipgloss.Style{lipgloss.NewStyle()},
	}
	for i := range c.cells {
		c.cells[i].r = ' '
	}
	return c
}

// Width returns the canvas width in cells
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in cells
func (c *Canvas) Height() int { return c.height }

func (c *Canvas) register(style lipgloss.Style) int {
	c.styles = append(c.styles, style)
	return len(c.styles) - 1
}

// Set paints a single rune
func (c *Canvas) Set(x, y int, r rune, style lipgloss.Style) {
	c.set(x, y, r, c.register(style))
}

func (c *Canvas) set(x, y int, r rune, style int) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	c.cells[y*c.width+x] = cell{r: r, style: style}
}

// At returns the rune at (x, y), or 0 when out of range
func (c *Canvas) At(x, y int) rune {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return 0
	}
	return c.cells[y*c.width+x].r
}

// DrawString paints s left to right starting at (x, y). Wide runes are not
// supported; each rune takes one cell.
func (c *Canvas) DrawString(x, y int, s string, style lipgloss.Style) {
	id := c.register(style)
	for i, r := range []rune(s) {
		c.set(x+i, y, r, id)
	}
}

// HLine paints n copies of r to the right of (x, y)
func (c *Canvas) HLine(x, y, n int, r rune, style lipgloss.Style) {
	id := c.register(style)
	for i := 0; i < n; i++ {
		c.set(x+i, y, r, id)
	}
}

// VLine paints n copies of r below (x, y)
func (c *Canvas) VLine(x, y, n int, r rune, style lipgloss.Style) {
	id := c.register(style)
	for i := 0; i < n; i++ {
		c.set(x, y+i, r, id)
	}
}

// Box paints a w x h frame using border runes, leaving the interior untouched
func (c *Canvas) Box(x, y, w, h int, border lipgloss.Border, style lipgloss.Style) {
	if w < 2 || h < 2 {
		return
	}
	id := c.register(style)
	top, bottom := firstRune(border.Top), firstRune(border.Bottom)
	left, right := firstRune(border.Left), firstRune(border.Right)

	for i := 1; i < w-1; i++ {
		c.set(x+i, y, top, id)
		c.set(x+i, y+h-1, bottom, id)
	}
	for j := 1; j < h-1; j++ {
		c.set(x, y+j, left, id)
		c.set(x+w-1, y+j, right, id)
	}
	c.set(x, y, firstRune(border.TopLeft), id)
	c.set(x+w-1, y, firstRune(border.TopRight), id)
	c.set(x, y+h-1, firstRune(border.BottomLeft), id)
	c.set(x+w-1, y+h-1, firstRune(border.BottomRight), id)
}

// Fill paints every cell of the w x h area with r
func (c *Canvas) Fill(x, y, w, h int, r rune, style lipgloss.Style) {
	id := c.register(style)
	for j := 0; j < h; j++ {
		for i := 0; i < w; i++ {
			c.set(x+i, y+j, r, id)
		}
	}
}

// Render returns the canvas as newline-separated rows. Runs of cells sharing
// a style are rendered together.
func (c *Canvas) Render() string {
	var b strings.Builder
	var run []rune
	for y := 0; y < c.height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		current := -1
		flush := func() {
			if len(run) == 0 {
				return
			}
			if current == 0 {
				b.WriteString(string(run))
			} else {
				b.WriteString(c.styles[current].Render(string(run)))
			}
			run = run[:0]
		}
		for x := 0; x < c.width; x++ {
			cl := c.cells[y*c.width+x]
			if cl.style != current {
				flush()
				current = cl.style
			}
			run = append(run, cl.r)
		}
		flush()
	}
	return b.String()
}

// Plain returns the canvas rows without any styling
func (c *Canvas) Plain() string {
	var b strings.Builder
	for y := 0; y < c.height; y++ {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < c.width; x++ {
			b.WriteRune(c.cells[y*c.width+x].r)
		}
	}
	return b.String()
}

func firstRune(s string) rune {
	for _, r := range s {
		return r
	}
	return ' '
}

package geometry

import "fmt"

// Point is a position in page coordinates (origin top-left, y grows downward)
type Point struct {
	X float64
	Y float64
}

// Add returns p translated by d
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Sub returns the vector from q to p
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Rect is an element bounding box in page coordinates
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Min returns the top-left corner
func (r Rect) Min() Point {
	return Point{X: r.X, Y: r.Y}
}

// WithPosition returns r moved so its top-left corner is p, size unchanged
func (r Rect) WithPosition(p Point) Rect {
	r.X, r.Y = p.X, p.Y
	return r
}

// Contains reports whether p lies inside r. The right and bottom edges are exclusive.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Viewport is a snapshot of the visible surface size
type Viewport struct {
	Width  float64
	Height float64
}

// Direction names the viewport edge an element is nearest to
type Direction int

const (
	Right Direction = iota
	Top
	Bottom
	Left
)

var directionNames = map[Direction]string{
	Top:    "top",
	Bottom: "bottom",
	Left:   "left",
	Right:  "right",
}

func (d Direction) String() string {
	if name, ok := directionNames[d]; ok {
		return name
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}


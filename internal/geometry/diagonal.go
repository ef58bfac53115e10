package geometry

// LineFunc evaluates a line y = f(x) in the bottom-left-origin frame
// (x grows rightward, y grows upward).
type LineFunc func(x float64) float64

// Diagonals holds the two full-viewport diagonals.
// L1 joins top-left and bottom-right, L2 joins top-right and bottom-left.
type Diagonals struct {
	L1 LineFunc
	L2 LineFunc
}

// LineThrough returns the affine function through p1 and p2.
// p1.X must differ from p2.X; equal abscissas produce a non-finite slope.
func LineThrough(p1, p2 Point) LineFunc {
	k := (p2.Y - p1.Y) / (p2.X - p1.X)
	b := p1.Y - k*p1.X
	return func(x float64) float64 {
		return k*x + b
	}
}

// BuildDiagonals computes both diagonals of vp in the bottom-left-origin frame
func BuildDiagonals(vp Viewport) Diagonals {
	lb := Point{X: 0, Y: 0}
	lt := Point{X: 0, Y: vp.Height}
	rt := Point{X: vp.Width, Y: vp.Height}
	rb := Point{X: vp.Width, Y: 0}

	return Diagonals{
		L1: LineThrough(lt, rb),
		L2: LineThrough(rt, lb),
	}
}

// Classify returns the quadrant of p, a page-coordinate point, relative to the
// viewport diagonals. Points exactly on a diagonal resolve to the first
// matching branch in the order top, right, bottom, left. Comparisons that are
// all false (only possible with NaN) fall back to Right.
func Classify(p Point, vp Viewport, d Diagonals) Direction {
	v1 := d.L1(p.X)
	v2 := d.L2(p.X)

	fy := vp.Height - p.Y

	switch {
	case fy >= v1 && fy >= v2:
		return Top
	case fy >= v1 && fy <= v2:
		return Right
	case fy <= v1 && fy <= v2:
		return Bottom
	case fy <= v1 && fy >= v2:
		return Left
	}
	return Right
}

package cubeview

// BresenhamLine returns the integer pixel coordinates of an 8-connected
// straight line from p1 to p2, in traversal order. The result always starts
// at exactly p1 and ends at exactly p2; when p1 == p2 it holds that single
// coordinate. Consecutive coordinates differ by one step along the line's
// dominant axis and by at most one step along the other.
func BresenhamLine(p1, p2 Coord) []Coord {
	if abs(p2.X-p1.X) >= abs(p2.Y-p1.Y) {
		return bresenhamLineLow(p1, p2)
	}
	return bresenhamLineHigh(p1, p2)
}

// bresenhamLineLow rasterizes lines whose horizontal extent dominates,
// stepping along x in either direction.
func bresenhamLineLow(p1, p2 Coord) []Coord {
	coords := make([]Coord, 0, abs(p2.X-p1.X)+1)
	walkBresenham(p2.X-p1.X, p2.Y-p1.Y, func(p, q int) {
		coords = append(coords, Coord{X: p1.X + p, Y: p1.Y + q})
	})
	return coords
}

// bresenhamLineHigh rasterizes lines whose vertical extent dominates,
// stepping along y in either direction.
func bresenhamLineHigh(p1, p2 Coord) []Coord {
	coords := make([]Coord, 0, abs(p2.Y-p1.Y)+1)
	walkBresenham(p2.Y-p1.Y, p2.X-p1.X, func(p, q int) {
		coords = append(coords, Coord{X: p1.X + q, Y: p1.Y + p})
	})
	return coords
}

// walkBresenham visits every point of the integer line from (0, 0) to
// (dp, dq) in (primary, secondary) axis space, where |dp| >= |dq|. It
// advances one unit along the primary axis per step, accumulating an integer
// error term, and steps the secondary axis whenever twice the accumulated
// error exceeds |dp|, decrementing the error by |dp| when it does. Directions
// of travel follow the signs of dp and dq.
func walkBresenham(dp, dq int, visit func(p, q int)) {
	stepP := 1
	if dp < 0 {
		stepP = -1
		dp = -dp
	}
	stepQ := 1
	if dq < 0 {
		stepQ = -1
		dq = -dq
	}
	visit(0, 0)
	d := 0
	q := 0
	for i := 1; i <= dp; i++ {
		d += dq
		if 2*d > dp {
			q += stepQ
			d -= dp
		}
		visit(stepP*i, q)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

package mesh

// Step advances the sheet by one frame.
//
// Free points are damped, moved and pulled toward rest first; spring
// impulses are accumulated afterwards and only reach positions on the next
// Step. Reordering the two passes changes how the sheet moves.
func (g *Grid) Step() {
	for i := range g.points {
		p := &g.points[i]
		if p.Pinned() {
			continue
		}
		p.VX *= Damping
		p.VY *= Damping
		p.X += p.VX
		p.Y += p.VY
		applyRestoring(p)
	}

	rows, cols := g.layout.Rows, g.layout.Cols
	for r := range rows {
		for c := range cols {
			i := g.index(r, c)
			// every undirected edge is visited from both ends
			if r > 0 {
				g.applySpring(i, g.index(r-1, c))
			}
			if r < rows-1 {
				g.applySpring(i, g.index(r+1, c))
			}
			if c > 0 {
				g.applySpring(i, g.index(r, c-1))
			}
			if c < cols-1 {
				g.applySpring(i, g.index(r, c+1))
			}
		}
	}
}

// HitTest returns the first point in row-major order lying strictly within
// ClickRadius of (x, y). It is first-match, not nearest-match.
func (g *Grid) HitTest(x, y float64) (Cell, bool) {
	return g.HitTestWithin(x, y, ClickRadius)
}

// HitTestWithin is HitTest with a caller-chosen radius, for pointers
// coarser than one surface unit.
func (g *Grid) HitTestWithin(x, y, radius float64) (Cell, bool) {
	return g.scan(x, y, radius, 0)
}

// HitTestAfter continues the row-major scan just after prev and wraps
// around, so repeated calls visit every point within radius. prev itself
// is returned last. An out-of-range prev scans from the start.
func (g *Grid) HitTestAfter(x, y, radius float64, prev Cell) (Cell, bool) {
	if !g.Contains(prev) {
		return g.scan(x, y, radius, 0)
	}
	return g.scan(x, y, radius, g.index(prev.Row, prev.Col)+1)
}

func (g *Grid) scan(x, y, radius float64, start int) (Cell, bool) {
	r2 := radius * radius
	n := len(g.points)
	for k := range n {
		i := (start + k) % n
		p := &g.points[i]
		dx := x - p.X
		dy := y - p.Y
		if dx*dx+dy*dy < r2 {
			return Cell{Row: i / g.layout.Cols, Col: i % g.layout.Cols}, true
		}
	}
	return Cell{}, false
}

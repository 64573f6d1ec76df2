package mesh

// Grid is a fixed rows x cols sheet stored row-major in one buffer.
// The simulation step owns the whole buffer and addresses neighbours by
// index, never by aliased pointers held across calls.
type Grid struct {
	layout Layout
	points []Point
}

// New builds a grid centred on the layout's surface, at rest, with the two
// top corners anchored.
func New(l Layout) *Grid {
	g := &Grid{
		layout: l,
		points: make([]Point, l.Rows*l.Cols),
	}
	g.Reset()
	return g
}

// Reset puts every point back to its rest position with zero velocity and
// restores the anchors.
func (g *Grid) Reset() {
	startX, startY := g.layout.Origin()
	for r := range g.layout.Rows {
		for c := range g.layout.Cols {
			x := startX + float64(c)*g.layout.Spacing
			y := startY + float64(r)*g.layout.Spacing
			g.points[g.index(r, c)] = Point{X: x, Y: y, RestX: x, RestY: y}
		}
	}
	if len(g.points) == 0 {
		return
	}
	g.points[g.index(0, 0)].Anchor = true
	g.points[g.index(0, g.layout.Cols-1)].Anchor = true
}

func (g *Grid) Layout() Layout { return g.layout }
func (g *Grid) Rows() int      { return g.layout.Rows }
func (g *Grid) Cols() int      { return g.layout.Cols }

// Contains reports whether c addresses a point of the grid.
func (g *Grid) Contains(c Cell) bool {
	return c.Row >= 0 && c.Row < g.layout.Rows && c.Col >= 0 && c.Col < g.layout.Cols
}

// At returns the point at c. It panics if c is outside the grid.
func (g *Grid) At(c Cell) *Point {
	return &g.points[g.index(c.Row, c.Col)]
}

// Points returns the row-major backing slice. Callers outside the
// simulation loop must treat it as read-only.
func (g *Grid) Points() []Point {
	return g.points
}

func (g *Grid) index(row, col int) int {
	return row*g.layout.Cols + col
}

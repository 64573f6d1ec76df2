package mesh

import "math"

// Point is one mass of the sheet. Mass and time step are both implicitly 1,
// so impulses are added straight to the velocity.
type Point struct {
	X, Y         float64
	VX, VY       float64
	RestX, RestY float64

	Anchor bool // permanent, set at construction
	Held   bool // set while the pointer drags this point
}

// Pinned reports whether physics must leave the point alone.
func (p *Point) Pinned() bool {
	return p.Anchor || p.Held
}

// Displacement is the distance from the rest position.
func (p *Point) Displacement() float64 {
	dx := p.X - p.RestX
	dy := p.Y - p.RestY
	return math.Hypot(dx, dy)
}

// Cell addresses a point by row and column.
type Cell struct {
	Row, Col int
}

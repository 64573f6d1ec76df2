package mesh

import "math"

// SpringImpulse returns the impulse a spring of the given rest length adds
// to a (b receives the negation). ok is false when the endpoints coincide;
// no impulse is defined then, on either axis.
func SpringImpulse(a, b Point, rest float64) (fx, fy float64, ok bool) {
	dx := b.X - a.X
	dy := b.Y - a.Y
	dist := math.Hypot(dx, dy)
	if dist < DegenerateEpsilon {
		return 0, 0, false
	}
	magnitude := (dist - rest) * Stiffness
	return magnitude * (dx / dist), magnitude * (dy / dist), true
}

// ApplySpring adds the spring impulse between a and b to their velocities,
// skipping whichever endpoint is pinned.
func (g *Grid) ApplySpring(a, b Cell) {
	g.applySpring(g.index(a.Row, a.Col), g.index(b.Row, b.Col))
}

func (g *Grid) applySpring(i, j int) {
	fx, fy, ok := SpringImpulse(g.points[i], g.points[j], g.layout.Spacing)
	if !ok {
		return
	}
	if pa := &g.points[i]; !pa.Pinned() {
		pa.VX += fx
		pa.VY += fy
	}
	if pb := &g.points[j]; !pb.Pinned() {
		pb.VX -= fx
		pb.VY -= fy
	}
}

// ApplyRestoring pulls a free point toward its rest position.
func (g *Grid) ApplyRestoring(c Cell) {
	applyRestoring(g.At(c))
}

func applyRestoring(p *Point) {
	if p.Pinned() {
		return
	}
	p.VX += (p.RestX - p.X) * RestoringStrength
	p.VY += (p.RestY - p.Y) * RestoringStrength
}

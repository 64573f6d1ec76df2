package mesh

// Stats summarises how much the sheet is moving.
type Stats struct {
	KineticEnergy   float64 // sum of v²/2 over points free to move
	MaxDisplacement float64 // largest distance from rest of a non-anchor point
}

// Stats measures the sheet as it is now. Pinned points keep whatever
// velocity they had but do not move, so they add no kinetic energy.
func (g *Grid) Stats() Stats {
	var s Stats
	for i := range g.points {
		p := &g.points[i]
		if !p.Pinned() {
			s.KineticEnergy += 0.5 * (p.VX*p.VX + p.VY*p.VY)
		}
		if p.Anchor {
			continue
		}
		if d := p.Displacement(); d > s.MaxDisplacement {
			s.MaxDisplacement = d
		}
	}
	return s
}

// Settled reports whether every non-anchor point is within eps of rest.
func (g *Grid) Settled(eps float64) bool {
	return g.Stats().MaxDisplacement < eps
}

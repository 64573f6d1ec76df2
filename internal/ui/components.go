package ui

import (
	"fmt"
	"math"

	"github.com/olivier-w/dotsheet/internal/mesh"
)

// energyScale is the kinetic energy at which the meter reads about 63%.
const energyScale = 40.0

// energyLevel maps kinetic energy onto [0,1) for the meter.
func energyLevel(s mesh.Stats) float64 {
	if s.KineticEnergy <= 0 {
		return 0
	}
	return 1 - math.Exp(-s.KineticEnergy/energyScale)
}

func renderStats(s mesh.Stats) string {
	return fmt.Sprintf("E %.1f  Δ %.1f", s.KineticEnergy, s.MaxDisplacement)
}

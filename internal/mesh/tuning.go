package mesh

const (
	Stiffness         = 0.2
	Damping           = 0.9
	RestoringStrength = 0.01 // pull toward rest, independent of neighbours
	ClickRadius       = 10.0 // larger than DotRadius so small dots stay grabbable
	DotRadius         = 2.0
	DegenerateEpsilon = 1e-6
)

// Layout fixes the shape of a grid and the surface it is centred on.
type Layout struct {
	Rows, Cols int
	Spacing    float64
	Width      float64
	Height     float64
}

// DefaultLayout is the 30x40 sheet centred on an 800x600 surface.
var DefaultLayout = Layout{
	Rows:    30,
	Cols:    40,
	Spacing: 15,
	Width:   800,
	Height:  600,
}

// Origin returns the position of cell (0,0) when the grid is centred.
func (l Layout) Origin() (x, y float64) {
	x = (l.Width - float64(l.Cols-1)*l.Spacing) / 2
	y = (l.Height - float64(l.Rows-1)*l.Spacing) / 2
	return x, y
}
